package blokus

// The board is 20x20 but every row is stored with a 21st padding column so
// that horizontal neighbour/shift formulas never wrap into the next row.
// That gives 420 bits of address space, split across four 128-bit lanes
// named One (most significant) through Four (least significant), exactly
// like a four-limb big integer. Lane crossing is handled by composing a
// shift of the whole word with a complementary shift of the adjacent lane,
// the same trick dragontoothmg uses for its single 64-bit boards, just
// carried across four limbs instead of one.
//
// Go defines shifts of any count on unsigned integers (a shift count at or
// above the operand's width yields zero), so unlike a hand-rolled u128 the
// lane arithmetic below never needs to special-case a shift amount of 0 or
// 128 the way the original implementation's comments warn about.

const boardWidth = 21 // 20 usable columns + 1 padding column per row

// lane128 is a 128-bit unsigned word split into high/low 64-bit halves,
// standing in for the u128 lane type Go has no native equivalent of.
type lane128 struct {
	hi, lo uint64
}

func (l lane128) and(o lane128) lane128 { return lane128{l.hi & o.hi, l.lo & o.lo} }
func (l lane128) or(o lane128) lane128  { return lane128{l.hi | o.hi, l.lo | o.lo} }
func (l lane128) xor(o lane128) lane128 { return lane128{l.hi ^ o.hi, l.lo ^ o.lo} }
func (l lane128) not() lane128          { return lane128{^l.hi, ^l.lo} }
func (l lane128) isZero() bool          { return l.hi == 0 && l.lo == 0 }
func (l lane128) onesCount() int        { return popcount64(l.hi) + popcount64(l.lo) }

func popcount64(x uint64) int {
	n := 0
	for x != 0 {
		x &= x - 1
		n++
	}
	return n
}

// trailingZeros returns the index of the lowest set bit, or 128 if empty.
func (l lane128) trailingZeros() int {
	if l.lo != 0 {
		return trailingZeros64(l.lo)
	}
	if l.hi != 0 {
		return 64 + trailingZeros64(l.hi)
	}
	return 128
}

func trailingZeros64(x uint64) int {
	if x == 0 {
		return 64
	}
	n := 0
	for x&1 == 0 {
		x >>= 1
		n++
	}
	return n
}

func (l lane128) shl(n uint) lane128 {
	switch {
	case n == 0:
		return l
	case n < 64:
		return lane128{hi: l.hi<<n | l.lo>>(64-n), lo: l.lo << n}
	case n < 128:
		return lane128{hi: l.lo << (n - 64), lo: 0}
	default:
		return lane128{}
	}
}

func (l lane128) shr(n uint) lane128 {
	switch {
	case n == 0:
		return l
	case n < 64:
		return lane128{hi: l.hi >> n, lo: l.lo>>n | l.hi<<(64-n)}
	case n < 128:
		return lane128{hi: 0, lo: l.hi >> (n - 64)}
	default:
		return lane128{}
	}
}

func bitLane(idx uint) lane128 {
	if idx < 64 {
		return lane128{lo: 1 << idx}
	}
	return lane128{hi: 1 << (idx - 64)}
}

// Bitboard is the 400-usable-bit board: four 128-bit lanes covering bit
// indices One=384..511, Two=256..383, Three=128..255, Four=0..127. A
// destination index d in [0,511) lives in exactly one lane.
type Bitboard struct {
	One, Two, Three, Four lane128
}

func (b Bitboard) And(o Bitboard) Bitboard {
	return Bitboard{b.One.and(o.One), b.Two.and(o.Two), b.Three.and(o.Three), b.Four.and(o.Four)}
}

func (b Bitboard) Or(o Bitboard) Bitboard {
	return Bitboard{b.One.or(o.One), b.Two.or(o.Two), b.Three.or(o.Three), b.Four.or(o.Four)}
}

func (b Bitboard) Xor(o Bitboard) Bitboard {
	return Bitboard{b.One.xor(o.One), b.Two.xor(o.Two), b.Three.xor(o.Three), b.Four.xor(o.Four)}
}

func (b Bitboard) Not() Bitboard {
	return Bitboard{b.One.not(), b.Two.not(), b.Three.not(), b.Four.not()}
}

func (b Bitboard) IsZero() bool {
	return b.One.isZero() && b.Two.isZero() && b.Three.isZero() && b.Four.isZero()
}

func (b Bitboard) NotZero() bool { return !b.IsZero() }

func (b Bitboard) Equals(o Bitboard) bool {
	return b.One == o.One && b.Two == o.Two && b.Three == o.Three && b.Four == o.Four
}

func (b Bitboard) CountOnes() int {
	return b.One.onesCount() + b.Two.onesCount() + b.Three.onesCount() + b.Four.onesCount()
}

// TrailingZeros returns the lowest set bit index in [0,512), or 512 if empty.
func (b Bitboard) TrailingZeros() int {
	if b.Four.notZero() {
		return b.Four.trailingZeros()
	}
	if b.Three.notZero() {
		return b.Three.trailingZeros() + 128
	}
	if b.Two.notZero() {
		return b.Two.trailingZeros() + 256
	}
	if b.One.notZero() {
		return b.One.trailingZeros() + 384
	}
	return 512
}

func (l lane128) notZero() bool { return !l.isZero() }

// Shl shifts every bit index up by n, carrying across lane boundaries.
func (b Bitboard) Shl(n uint) Bitboard {
	if n > 128 {
		return b.Shl(128).Shl(n - 128)
	}
	return Bitboard{
		One:   b.One.shl(n).or(b.Two.shr(128 - n)),
		Two:   b.Two.shl(n).or(b.Three.shr(128 - n)),
		Three: b.Three.shl(n).or(b.Four.shr(128 - n)),
		Four:  b.Four.shl(n),
	}
}

// Shr shifts every bit index down by n, carrying across lane boundaries.
func (b Bitboard) Shr(n uint) Bitboard {
	if n > 128 {
		return b.Shr(128).Shr(n - 128)
	}
	return Bitboard{
		One:   b.One.shr(n),
		Two:   b.Two.shr(n).or(b.One.shl(128 - n)),
		Three: b.Three.shr(n).or(b.Two.shl(128 - n)),
		Four:  b.Four.shr(n).or(b.Three.shl(128 - n)),
	}
}

// Bit returns a board with only bitIdx set.
func Bit(bitIdx uint16) Bitboard {
	switch {
	case bitIdx < 128:
		return Bitboard{Four: bitLane(uint(bitIdx))}
	case bitIdx < 256:
		return Bitboard{Three: bitLane(uint(bitIdx - 128))}
	case bitIdx < 384:
		return Bitboard{Two: bitLane(uint(bitIdx - 256))}
	default:
		return Bitboard{One: bitLane(uint(bitIdx - 384))}
	}
}

func (b *Bitboard) FlipBit(bitIdx uint16) {
	switch {
	case bitIdx < 128:
		b.Four = b.Four.xor(bitLane(uint(bitIdx)))
	case bitIdx < 256:
		b.Three = b.Three.xor(bitLane(uint(bitIdx - 128)))
	case bitIdx < 384:
		b.Two = b.Two.xor(bitLane(uint(bitIdx - 256)))
	default:
		b.One = b.One.xor(bitLane(uint(bitIdx - 384)))
	}
}

// Neighbours returns the orthogonal neighbours of every set bit.
func (b Bitboard) Neighbours() Bitboard {
	return b.Shl(1).Or(b.Shr(1)).Or(b.Shr(boardWidth)).Or(b.Shl(boardWidth)).And(ValidFields)
}

// DiagonalNeighbours returns the diagonal neighbours of every set bit.
func (b Bitboard) DiagonalNeighbours() Bitboard {
	return b.Shl(boardWidth + 1).Or(b.Shr(boardWidth + 1)).Or(b.Shr(boardWidth - 1)).Or(b.Shl(boardWidth - 1)).And(ValidFields)
}

// WithPiece places shape at destination to, aligning the lane-zero shape
// mask to the correct lane via the same boundary case split the original
// uses (shifting a 128-bit literal by 0 or 128 would be a degenerate case
// there; Go's shift semantics make this just the natural fallthrough here).
func WithPiece(to uint16, shape int) Bitboard {
	shapeLane := PieceShapes[shape]
	switch {
	case to == 0:
		return Bitboard{Four: shapeLane}
	case to == 128:
		return Bitboard{Three: shapeLane}
	case to == 256:
		return Bitboard{Two: shapeLane}
	case to < 128:
		return Bitboard{Four: lane128{}, Three: shapeLane}.Shr(uint(128 - to))
	case to < 256:
		return Bitboard{Three: lane128{}, Two: shapeLane}.Shr(uint(256 - to))
	case to < 384:
		return Bitboard{Two: lane128{}, One: shapeLane}.Shr(uint(384 - to))
	case to == 384:
		return Bitboard{One: shapeLane}
	default:
		return Bitboard{One: shapeLane}.Shl(uint(to - 384))
	}
}

// RandomField returns the bit index of a uniformly random set bit, used by
// the rollout policy to pick a destination among several legal ones.
func (b Bitboard) RandomField(rng *Rng) uint16 {
	n := b.CountOnes()
	if n == 0 {
		return 512
	}
	target := int(rng.Uint64() % uint64(n))
	copy := b
	for i := 0; ; i++ {
		idx := copy.TrailingZeros()
		if i == target {
			return uint16(idx)
		}
		copy.FlipBit(uint16(idx))
	}
}

func boardLane(one, two, three, four uint64, hi1, hi2, hi3, hi4 uint64) Bitboard {
	return Bitboard{
		One:   lane128{hi: hi1, lo: one},
		Two:   lane128{hi: hi2, lo: two},
		Three: lane128{hi: hi3, lo: three},
		Four:  lane128{hi: hi4, lo: four},
	}
}

// ValidFields marks the 400 usable board cells (the padding column and the
// rows beyond row 20 are excluded).
var ValidFields = Bitboard{
	One:   lane128{0x0000000000000000, 0x00000007FFFFBFFF},
	Two:   lane128{0xFDFFFFEFFFFF7FFF, 0xFBFFFFDFFFFEFFFF},
	Three: lane128{0xF7FFFFBFFFFDFFFF, 0xEFFFFF7FFFFBFFFF},
	Four:  lane128{0xDFFFFEFFFFF7FFFF, 0xBFFFFDFFFFEFFFFF},
}

// ColumnMask marks the first (leftmost) column of every row; kept for parity
// with the reference board geometry even though no current operation reads
// it directly.
var ColumnMask = Bitboard{
	One:   lane128{0x0000000000000000, 0x0000000000008000},
	Two:   lane128{0x0400002000010000, 0x0800004000020000},
	Three: lane128{0x1000008000040000, 0x2000010000080000},
	Four:  lane128{0x4000020000100000, 0x8000040000200001},
}

// RowMask marks the first row.
var RowMask = Bitboard{
	Four: lane128{0x0000000000000000, 0x00000000000FFFFF},
}

// StartFields marks the four cells each color must cover with its first
// piece (one corner per color).
var StartFields = Bitboard{
	One:  lane128{0x0000000000000000, 0x0000000400008000},
	Four: lane128{0x0000000000000000, 0x0000000000080001},
}
