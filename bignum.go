package blokus

import "math/big"

// lane128ToDecimal and decimalToLane128 convert a 128-bit lane to and from
// the plain base-10 string used by the FEN format, matching the format
// Rust's u128 Display/FromStr produce.

var lane64 = new(big.Int).Lsh(big.NewInt(1), 64)

func lane128ToDecimal(l lane128) string {
	v := new(big.Int).Mul(new(big.Int).SetUint64(l.hi), lane64)
	v.Add(v, new(big.Int).SetUint64(l.lo))
	return v.String()
}

func decimalToLane128(s string) (lane128, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return lane128{}, errInvalidDecimal(s)
	}
	hi := new(big.Int).Rsh(v, 64)
	lo := new(big.Int).Mod(v, lane64)
	return lane128{hi: hi.Uint64(), lo: lo.Uint64()}, nil
}

type errInvalidDecimal string

func (e errInvalidDecimal) Error() string {
	return "blokus: invalid decimal integer " + string(e)
}
