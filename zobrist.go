package blokus

// Zobrist hash tables. The upstream source this engine is grounded on
// references PLY_HASH/PIECE_HASH/FIELD_HASH throughout its state-update
// code without the generator that builds them ever turning up in the
// retrieved sources, so the tables here are generated from scratch with a
// fixed seed at init time rather than guessed at. Any fixed seed works:
// what do_action/undo_action rely on is that each table is populated with
// independent, high-entropy values and stays constant for the process's
// lifetime, not any specific value.
const zobristSeed = 0xB16B00B5CAFEF00D

const fieldHashSize = 419 // largest valid destination index (418, the bottom-right corner) + 1

var (
	PlyHash   [101]uint64
	PieceHash [91][4]uint64
	FieldHash [fieldHashSize][4]uint64
)

func init() {
	rng := NewRng(zobristSeed)
	for i := range PlyHash {
		PlyHash[i] = rng.Uint64()
	}
	for i := range PieceHash {
		for c := range PieceHash[i] {
			PieceHash[i][c] = rng.Uint64()
		}
	}
	for i := range FieldHash {
		for c := range FieldHash[i] {
			FieldHash[i][c] = rng.Uint64()
		}
	}
}
