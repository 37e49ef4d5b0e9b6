package blokus

// PieceType enumerates the 21 polyomino types a color may place, in the
// declaration order used throughout the move generator's shape-index
// ranges below.
type PieceType int

const (
	Monomino PieceType = iota
	Domino
	ITromino
	ITetromino
	IPentomino
	OTetromino
	XPentomino
	LTromino
	LTetromino
	LPentomino
	TPentomino
	TTetromino
	ZTetromino
	ZPentomino
	UPentomino
	FPentomino
	WPentomino
	NPentomino
	VPentomino
	PPentomino
	YPentomino
)

func (p PieceType) String() string {
	names := [...]string{
		"Monomino", "Domino", "ITromino", "ITetromino", "IPentomino",
		"OTetromino", "XPentomino", "LTromino", "LTetromino", "LPentomino",
		"TPentomino", "TTetromino", "ZTetromino", "ZPentomino", "UPentomino",
		"FPentomino", "WPentomino", "NPentomino", "VPentomino", "PPentomino",
		"YPentomino",
	}
	if int(p) < 0 || int(p) >= len(names) {
		return "InvalidPieceType"
	}
	return names[p]
}

// pieceSizes gives the number of cells each piece type covers, in
// PieceType declaration order.
var pieceSizes = [21]int{
	1, 2, 3, 4, 5, 4, 5, 3, 4, 5, 5, 4, 4, 5, 5, 5, 5, 5, 5, 5, 5,
}

// Size returns the number of cells this piece type covers.
func (p PieceType) Size() int { return pieceSizes[p] }

// PieceTypes lists all 21 piece types in declaration order.
var PieceTypes = [21]PieceType{
	Monomino, Domino, ITromino, ITetromino, IPentomino, OTetromino,
	XPentomino, LTromino, LTetromino, LPentomino, TPentomino, TTetromino,
	ZTetromino, ZPentomino, UPentomino, FPentomino, WPentomino, NPentomino,
	VPentomino, PPentomino, YPentomino,
}

// StartPieceTypes lists the 12 pentomino-sized piece types, one of which a
// game mandates as every color's opening move.
var StartPieceTypes = [12]PieceType{
	IPentomino, XPentomino, LPentomino, TPentomino, ZPentomino, UPentomino,
	FPentomino, WPentomino, NPentomino, VPentomino, PPentomino, YPentomino,
}

// shapeRange gives the [low, high] inclusive index range into PieceShapes
// and PieceOrientations that belongs to each piece type.
var shapeRange = [21][2]int{
	Monomino:    {0, 0},
	Domino:      {1, 2},
	ITromino:    {3, 4},
	ITetromino:  {5, 6},
	IPentomino:  {7, 8},
	OTetromino:  {9, 9},
	XPentomino:  {10, 10},
	LTromino:    {11, 14},
	LTetromino:  {15, 22},
	LPentomino:  {23, 30},
	TPentomino:  {31, 34},
	TTetromino:  {35, 38},
	ZTetromino:  {39, 42},
	ZPentomino:  {43, 46},
	UPentomino:  {47, 50},
	FPentomino:  {51, 58},
	WPentomino:  {59, 62},
	NPentomino:  {63, 70},
	VPentomino:  {71, 74},
	PPentomino:  {75, 82},
	YPentomino:  {83, 90},
}

// PieceTypeFromShape maps an oriented shape index back to its piece type.
func PieceTypeFromShape(shape int) PieceType {
	for _, pt := range PieceTypes {
		r := shapeRange[pt]
		if shape >= r[0] && shape <= r[1] {
			return pt
		}
	}
	panic("blokus: shape index out of range")
}

// PieceOrientation records the rotation (0..3, quarter turns) and whether a
// reflection was applied to produce an oriented shape from its canonical
// piece type.
type PieceOrientation struct {
	Rotation uint8
	Flipped  bool
}

// PieceOrientations gives the (rotation, flipped) metadata for each of the
// 91 oriented shapes in PieceShapes, same indexing.
var PieceOrientations = [91]PieceOrientation{
	{0, false}, {0, false}, {1, false}, {1, false}, {1, false}, {0, false}, {1, false}, {0, false}, {1, false},
	{0, false}, {0, false},
	{0, false}, {1, false}, {2, false}, {3, false},
	{2, true}, {2, false}, {0, true}, {0, false}, {3, true}, {1, false}, {1, true}, {3, false},
	{1, true}, {1, false}, {3, true}, {3, false}, {2, true}, {0, false}, {2, false}, {0, true},
	{0, false}, {2, false}, {3, false}, {1, false},
	{0, false}, {2, false}, {3, false}, {1, false},
	{0, true}, {0, false}, {3, false}, {1, true},
	{3, true}, {3, false}, {0, true}, {0, false},
	{2, false}, {0, false}, {1, false}, {3, false},
	{1, true}, {1, false}, {3, true}, {3, false}, {0, false}, {0, true}, {2, true}, {2, false},
	{0, false}, {3, false}, {2, false}, {1, false},
	{3, true}, {3, false}, {1, true}, {1, false}, {2, false}, {0, true}, {2, true}, {0, false},
	{1, false}, {3, false}, {2, false}, {0, false},
	{0, false}, {0, true}, {3, false}, {1, true}, {1, false}, {3, true}, {2, false}, {2, true},
	{0, true}, {2, false}, {2, true}, {0, false}, {3, true}, {3, false}, {1, false}, {1, true},
}

// PieceShapes holds all 91 oriented shapes (one lane128 word each, aligned
// to the lowest-addressed lane so WithPiece can shift it into place) that a
// piece type may be placed in. Indices follow shapeRange above.
var PieceShapes = [91]lane128{
	{0x0000000000000000, 0x0000000000000001}, // 0
	{0x0000000000000000, 0x0000000000000003}, // 1
	{0x0000000000000000, 0x0000000000200001}, // 2
	{0x0000000000000000, 0x0000000000000007}, // 3
	{0x0000000000000000, 0x0000040000200001}, // 4
	{0x0000000000000000, 0x000000000000000F}, // 5
	{0x0000000000000000, 0x8000040000200001}, // 6
	{0x0000000000000000, 0x000000000000001F}, // 7
	{0x0000000000100000, 0x8000040000200001}, // 8
	{0x0000000000000000, 0x0000000000600003}, // 9
	{0x0000000000000000, 0x0000080000E00002}, // 10
	{0x0000000000000000, 0x0000000000600001}, // 11
	{0x0000000000000000, 0x0000000000200003}, // 12
	{0x0000000000000000, 0x0000000000400003}, // 13
	{0x0000000000000000, 0x0000000000600002}, // 14
	{0x0000000000000000, 0x0000040000200003}, // 15
	{0x0000000000000000, 0x0000080000400003}, // 16
	{0x0000000000000000, 0x00000C0000400002}, // 17
	{0x0000000000000000, 0x00000C0000200001}, // 18
	{0x0000000000000000, 0x0000000000E00001}, // 19
	{0x0000000000000000, 0x0000000000200007}, // 20
	{0x0000000000000000, 0x0000000000800007}, // 21
	{0x0000000000000000, 0x0000000000E00004}, // 22
	{0x0000000000000000, 0x000000000100000F}, // 23
	{0x0000000000000000, 0x000000000020000F}, // 24
	{0x0000000000000000, 0x0000000001E00001}, // 25
	{0x0000000000000000, 0x0000000001E00008}, // 26
	{0x0000000000000000, 0x8000040000200003}, // 27
	{0x0000000000000001, 0x8000040000200001}, // 28
	{0x0000000000000001, 0x0000080000400003}, // 29
	{0x0000000000000001, 0x8000080000400002}, // 30
	{0x0000000000000000, 0x0000080000400007}, // 31
	{0x0000000000000000, 0x00001C0000400002}, // 32
	{0x0000000000000000, 0x0000040000E00001}, // 33
	{0x0000000000000000, 0x0000100000E00004}, // 34
	{0x0000000000000000, 0x0000000000400007}, // 35
	{0x0000000000000000, 0x0000000000E00002}, // 36
	{0x0000000000000000, 0x0000040000600001}, // 37
	{0x0000000000000000, 0x0000080000600002}, // 38
	{0x0000000000000000, 0x0000000000600006}, // 39
	{0x0000000000000000, 0x0000000000C00003}, // 40
	{0x0000000000000000, 0x0000040000600002}, // 41
	{0x0000000000000000, 0x0000080000600001}, // 42
	{0x0000000000000000, 0x0000100000E00001}, // 43
	{0x0000000000000000, 0x0000040000E00004}, // 44
	{0x0000000000000000, 0x00000C0000400006}, // 45
	{0x0000000000000000, 0x0000180000400003}, // 46
	{0x0000000000000000, 0x0000000000A00007}, // 47
	{0x0000000000000000, 0x0000000000E00005}, // 48
	{0x0000000000000000, 0x00000C0000200003}, // 49
	{0x0000000000000000, 0x00000C0000400003}, // 50
	{0x0000000000000000, 0x00000C0000C00002}, // 51
	{0x0000000000000000, 0x0000180000600002}, // 52
	{0x0000000000000000, 0x0000080000600006}, // 53
	{0x0000000000000000, 0x0000080000C00003}, // 54
	{0x0000000000000000, 0x0000080000E00004}, // 55
	{0x0000000000000000, 0x0000080000E00001}, // 56
	{0x0000000000000000, 0x0000100000E00002}, // 57
	{0x0000000000000000, 0x0000040000E00002}, // 58
	{0x0000000000000000, 0x0000180000600001}, // 59
	{0x0000000000000000, 0x00000C0000C00004}, // 60
	{0x0000000000000000, 0x0000100000C00003}, // 61
	{0x0000000000000000, 0x0000040000600006}, // 62
	{0x0000000000000000, 0x80000C0000400002}, // 63
	{0x0000000000000001, 0x00000C0000200001}, // 64
	{0x0000000000000000, 0x8000040000600002}, // 65
	{0x0000000000000001, 0x0000080000600001}, // 66
	{0x0000000000000000, 0x0000000000E0000C}, // 67
	{0x0000000000000000, 0x0000000001800007}, // 68
	{0x0000000000000000, 0x0000000001C00003}, // 69
	{0x0000000000000000, 0x000000000060000E}, // 70
	{0x0000000000000000, 0x0000040000200007}, // 71
	{0x0000000000000000, 0x00001C0000800004}, // 72
	{0x0000000000000000, 0x0000100000800007}, // 73
	{0x0000000000000000, 0x00001C0000200001}, // 74
	{0x0000000000000000, 0x0000040000600003}, // 75
	{0x0000000000000000, 0x0000080000600003}, // 76
	{0x0000000000000000, 0x0000000000E00003}, // 77
	{0x0000000000000000, 0x0000000000600007}, // 78
	{0x0000000000000000, 0x0000000000C00007}, // 79
	{0x0000000000000000, 0x0000000000E00006}, // 80
	{0x0000000000000000, 0x00000C0000600002}, // 81
	{0x0000000000000000, 0x00000C0000600001}, // 82
	{0x0000000000000000, 0x8000040000600001}, // 83
	{0x0000000000000000, 0x80000C0000200001}, // 84
	{0x0000000000000001, 0x00000C0000400002}, // 85
	{0x0000000000000001, 0x0000080000600002}, // 86
	{0x0000000000000000, 0x000000000080000F}, // 87
	{0x0000000000000000, 0x000000000040000F}, // 88
	{0x0000000000000000, 0x0000000001E00004}, // 89
	{0x0000000000000000, 0x0000000001E00002}, // 90
}
