package blokus

import "fmt"

// MaxActions bounds the number of legal actions any single position can
// produce; 1300 comfortably covers the measured worst case of the four-
// color generator.
const MaxActions = 1300

// ActionList is a fixed-capacity action buffer reused across move
// generation calls to avoid per-call allocation in the search hot path.
type ActionList struct {
	actions [MaxActions]Action
	size    int
}

func (al *ActionList) Size() int { return al.size }

func (al *ActionList) Clear() { al.size = 0 }

func (al *ActionList) Push(a Action) {
	al.actions[al.size] = a
	al.size++
}

func (al *ActionList) Swap(i, j int) {
	al.actions[i], al.actions[j] = al.actions[j], al.actions[i]
}

func (al *ActionList) Get(i int) Action { return al.actions[i] }

func (al *ActionList) Set(i int, a Action) { al.actions[i] = a }

func (al *ActionList) Truncate(n int) { al.size = n }

// AppendActions pushes one Set action per bit in destinations, all using
// the given shape, consuming destinations as it scans. pieceType is unused
// by the encoding itself but kept in the signature to match the call sites
// in the move generator, which always know the piece type of the shape
// they're appending and want that documented at the call site.
func (al *ActionList) AppendActions(destinations Bitboard, pieceType PieceType, shape int) {
	_ = pieceType
	for destinations.NotZero() {
		idx := destinations.TrailingZeros()
		al.Push(NewSetAction(uint16(idx), shape))
		destinations.FlipBit(uint16(idx))
	}
}

func (al *ActionList) String() string {
	s := fmt.Sprintf("ActionList(%d): [", al.size)
	for i := 0; i < al.size; i++ {
		if i > 0 {
			s += ", "
		}
		s += al.actions[i].String()
	}
	return s + "]"
}
