package blokus

import (
	"fmt"
	"strconv"
	"strings"
)

// GameState is the complete state of a four-color Blokus game: one board
// per color, whose turn it is, which pieces each color still holds, and
// enough bookkeeping (monomino-last, skip bitmask, Zobrist hash) to score
// a finished game and to support incremental do/undo during search.
type GameState struct {
	Ply                uint8
	Board              [4]Bitboard
	CurrentPlayer      Color
	PiecesLeft         [21][4]bool
	MonominoPlacedLast [4]bool
	Skipped            uint8
	StartPieceType     PieceType
	Hash               uint64
}

// NewGameState returns the empty starting position. rng picks which of the
// twelve pentominoes every color must open with.
func NewGameState(rng *Rng) GameState {
	var gs GameState
	gs.CurrentPlayer = Blue
	for i := range gs.PiecesLeft {
		gs.PiecesLeft[i] = [4]bool{true, true, true, true}
	}
	gs.StartPieceType = StartPieceTypes[rng.IntN(len(StartPieceTypes))]
	return gs
}

// Clone returns an independent copy; GameState holds only value types, so
// this is plain assignment, exposed as a method to make the simulation
// copy-step explicit at call sites the way the search and perft code need.
func (gs GameState) Clone() GameState { return gs }

// CheckIntegrity verifies CurrentPlayer is consistent with Ply and that
// every color's board popcount matches the pieces it has actually placed.
func (gs *GameState) CheckIntegrity() bool {
	for color := Color(0); color < 4; color++ {
		if Color(gs.Ply%4) == color && gs.CurrentPlayer != color {
			return false
		}
	}
	for player := Color(0); player < 4; player++ {
		var shouldHave int
		for _, pt := range PieceTypes {
			if !gs.PiecesLeft[pt][player] {
				shouldHave += pt.Size()
			}
		}
		if shouldHave != gs.Board[player].CountOnes() {
			return false
		}
	}
	return true
}

// DoAction applies action (assumed legal - callers are expected to draw
// actions from GetPossibleActions or have validated them separately, the
// way the original elides this check outside of debug builds).
func (gs *GameState) DoAction(action Action) {
	gs.Hash ^= PlyHash[gs.Ply]
	if action.IsSkip() {
		gs.Skipped |= 1 << uint(gs.CurrentPlayer)
	} else {
		shape := action.Shape()
		to := action.Destination()
		pieceType := PieceTypeFromShape(shape)
		gs.Hash ^= PieceHash[shape][gs.CurrentPlayer]
		gs.Hash ^= FieldHash[to][gs.CurrentPlayer]
		piece := WithPiece(to, shape)
		gs.Skipped &= ^uint8(1) << uint(gs.CurrentPlayer)
		gs.PiecesLeft[pieceType][gs.CurrentPlayer] = false
		gs.Board[gs.CurrentPlayer] = gs.Board[gs.CurrentPlayer].Xor(piece)
		gs.MonominoPlacedLast[gs.CurrentPlayer] = pieceType == Monomino
	}
	gs.CurrentPlayer = gs.CurrentPlayer.Next()
	gs.Ply++
}

// UndoAction reverses the most recent DoAction(action) call. Note it does
// not restore MonominoPlacedLast to its prior value, and undoing a Skip
// leaves the Skipped bitmask as it is - matching the original, which
// leaves both sticky across undo. Search code that relies on them must
// not read them mid-rollback.
func (gs *GameState) UndoAction(action Action) {
	gs.CurrentPlayer = gs.CurrentPlayer.Previous()
	gs.Ply--
	gs.Hash ^= PlyHash[gs.Ply]
	if action.IsSet() {
		shape := action.Shape()
		to := action.Destination()
		pieceType := PieceTypeFromShape(shape)
		gs.Hash ^= PieceHash[shape][gs.CurrentPlayer]
		gs.Hash ^= FieldHash[to][gs.CurrentPlayer]
		piece := WithPiece(to, shape)
		gs.PiecesLeft[pieceType][gs.CurrentPlayer] = true
		gs.Board[gs.CurrentPlayer] = gs.Board[gs.CurrentPlayer].Xor(piece)
	}
}

// ValidateAction reports whether action is legal in the current position.
func (gs *GameState) ValidateAction(action Action) bool {
	if action.IsSkip() {
		return true
	}
	shape := action.Shape()
	to := action.Destination()
	pieceType := PieceTypeFromShape(shape)
	if !gs.PiecesLeft[pieceType][gs.CurrentPlayer] {
		return false
	}
	if gs.Ply < 4 && pieceType != gs.StartPieceType {
		return false
	}
	piece := WithPiece(to, shape)
	ownFields := gs.Board[gs.CurrentPlayer]
	otherFields := gs.Board[0].Or(gs.Board[1]).Or(gs.Board[2]).Or(gs.Board[3]).And(ownFields.Not())
	legalFields := ownFields.Or(otherFields).Or(ownFields.Neighbours()).Not().And(ValidFields)
	var placementFields Bitboard
	if gs.Ply > 3 {
		placementFields = ownFields.DiagonalNeighbours().And(legalFields)
	} else {
		placementFields = StartFields.And(otherFields.Not())
	}
	isValid := true
	if piece.And(placementFields).IsZero() {
		isValid = false
	}
	if !piece.And(legalFields).Equals(piece) {
		isValid = false
	}
	if pieceType.Size() != piece.CountOnes() {
		isValid = false
	}
	return isValid
}

// GetPossibleActions fills al with every legal action in the current
// position (Skip if there are none). Every case is a closed-form bitmask
// formula over the current player's legal placement fields - one per
// oriented shape - rather than a generic per-cell search, the same
// lookup-table-free brute-force-at-compile-time approach the catalog of
// 91 oriented shapes itself is built on.
func (gs *GameState) GetPossibleActions(al *ActionList) {
	al.Clear()

	ownFields := gs.Board[gs.CurrentPlayer]
	otherFields := gs.Board[0].Or(gs.Board[1]).Or(gs.Board[2]).Or(gs.Board[3]).And(ownFields.Not())
	legalFields := ownFields.Or(otherFields).Or(ownFields.Neighbours()).Not().And(ValidFields)

	var pf Bitboard
	if gs.Ply > 3 {
		pf = ownFields.DiagonalNeighbours().And(legalFields)
	} else {
		pf = StartFields.And(otherFields.Not())
	}

	twoRight := legalFields.And(legalFields.Shr(1).And(ValidFields))
	twoLeft := legalFields.And(legalFields.Shl(1).And(ValidFields))
	twoDown := legalFields.And(legalFields.Shr(21).And(ValidFields))
	twoUp := legalFields.And(legalFields.Shl(21).And(ValidFields))

	threeRight := twoRight.And(legalFields.Shr(2).And(ValidFields))
	threeLeft := twoLeft.And(legalFields.Shl(2).And(ValidFields))
	threeDown := twoDown.And(legalFields.Shr(42).And(ValidFields))
	threeUp := twoUp.And(legalFields.Shl(42).And(ValidFields))

	fourRight := threeRight.And(legalFields.Shr(3).And(ValidFields))
	fourLeft := threeLeft.And(legalFields.Shl(3).And(ValidFields))
	fourDown := threeDown.And(legalFields.Shr(63).And(ValidFields))
	fourUp := threeUp.And(legalFields.Shl(63).And(ValidFields))

	if gs.PiecesLeft[Domino][gs.CurrentPlayer] {
		al.AppendActions(twoRight.And(pf).Or(twoLeft.And(pf).Shr(1)), Domino, 1)
		al.AppendActions(twoDown.And(pf).Or(twoUp.And(pf).Shr(21)), Domino, 2)
	}

	if gs.PiecesLeft[ITromino][gs.CurrentPlayer] {
		al.AppendActions(threeRight.And(pf).Or(threeLeft.And(pf).Shr(2)), ITromino, 3)
		al.AppendActions(threeUp.And(pf).Shr(42).Or(threeDown.And(pf)), ITromino, 4)
	}

	if gs.PiecesLeft[ITetromino][gs.CurrentPlayer] {
		al.AppendActions(fourRight.And(pf).Or(fourLeft.And(pf).Shr(3)), ITetromino, 5)
		al.AppendActions(fourDown.And(pf).Or(fourUp.And(pf).Shr(63)), ITetromino, 6)
	}

	if gs.PiecesLeft[IPentomino][gs.CurrentPlayer] {
		al.AppendActions(
			fourRight.And(legalFields.Shr(4)).And(pf).Or(
				fourLeft.And(legalFields.Shl(4)).And(pf).Shr(4)),
			IPentomino, 7)
		al.AppendActions(
			fourDown.And(legalFields.Shr(84)).And(pf).Or(
				fourUp.And(legalFields.Shl(84)).And(pf).Shr(84)),
			IPentomino, 8)
	}

	if gs.PiecesLeft[XPentomino][gs.CurrentPlayer] {
		al.AppendActions(
			threeRight.Shr(20).And(threeDown).And(
				pf.Or(pf.Shr(20)).Or(pf.Shr(22)).Or(pf.Shr(42))).Shr(1),
			XPentomino, 10)
	}

	if gs.PiecesLeft[LTromino][gs.CurrentPlayer] {
		al.AppendActions(twoUp.And(twoRight).Shr(21).And(pf.Or(pf.Shr(21)).Or(pf.Shr(22))), LTromino, 11)
		al.AppendActions(twoDown.And(twoRight).And(pf.Or(pf.Shr(1)).Or(pf.Shr(21))), LTromino, 12)
		al.AppendActions(twoDown.Shr(1).And(twoRight).And(pf.Or(pf.Shr(1)).Or(pf.Shr(22))), LTromino, 13)
		al.AppendActions(
			twoDown.Shr(1).And(twoRight.Shr(21)).And(pf.Shr(1).Or(pf.Shr(21)).Or(pf.Shr(22))),
			LTromino, 14)
	}

	if gs.PiecesLeft[LPentomino][gs.CurrentPlayer] {
		al.AppendActions(fourRight.And(legalFields.Shr(24)).And(pf.Or(pf.Shr(3)).Or(pf.Shr(24))), LPentomino, 23)
		al.AppendActions(fourRight.And(twoDown).And(pf.Or(pf.Shr(3)).Or(pf.Shr(21))), LPentomino, 24)
		al.AppendActions(legalFields.And(fourRight.Shr(21)).And(pf.Or(pf.Shr(21)).Or(pf.Shr(24))), LPentomino, 25)
		al.AppendActions(
			fourLeft.And(twoUp).Shr(24).And(pf.Shr(3).Or(pf.Shr(21)).Or(pf.Shr(24))),
			LPentomino, 26)
		al.AppendActions(twoRight.And(fourDown).And(pf.Or(pf.Shr(1)).Or(pf.Shr(63))), LPentomino, 27)
		al.AppendActions(fourDown.And(legalFields.Shr(64)).And(pf.Or(pf.Shr(63)).Or(pf.Shr(64))), LPentomino, 28)
		al.AppendActions(twoRight.And(fourDown.Shr(1)).And(pf.Or(pf.Shr(1)).Or(pf.Shr(64))), LPentomino, 29)
		al.AppendActions(
			fourUp.And(twoLeft).Shr(64).And(pf.Shr(1).Or(pf.Shr(63)).Or(pf.Shr(64))),
			LPentomino, 30)
	}

	if gs.PiecesLeft[TPentomino][gs.CurrentPlayer] {
		al.AppendActions(threeRight.And(threeDown.Shr(1)).And(pf.Or(pf.Shr(2)).Or(pf.Shr(43))), TPentomino, 31)
		al.AppendActions(
			twoLeft.And(twoRight).And(threeUp).Shr(43).And(pf.Shr(1).Or(pf.Shr(42)).Or(pf.Shr(44))),
			TPentomino, 32)
		al.AppendActions(threeDown.And(threeRight.Shr(21)).And(pf.Or(pf.Shr(23)).Or(pf.Shr(42))), TPentomino, 33)
		al.AppendActions(
			threeLeft.And(twoUp).And(twoDown).Shr(23).And(pf.Shr(2).Or(pf.Shr(21)).Or(pf.Shr(44))),
			TPentomino, 34)
	}

	if gs.PiecesLeft[ZPentomino][gs.CurrentPlayer] {
		al.AppendActions(
			legalFields.And(threeLeft.And(twoDown).Shr(23)).And(
				pf.Or(pf.Shr(21)).Or(pf.Shr(23)).Or(pf.Shr(44))),
			ZPentomino, 43)
		al.AppendActions(
			legalFields.And(threeRight.And(twoDown).Shr(19)).And(
				pf.Or(pf.Shr(19)).Or(pf.Shr(21)).Or(pf.Shr(40))).Shr(2),
			ZPentomino, 44)
		al.AppendActions(
			legalFields.Shr(2).And(threeUp.And(twoLeft).Shr(43)).And(
				pf.Shr(1).Or(pf.Shr(2)).Or(pf.Shr(42)).Or(pf.Shr(43))),
			ZPentomino, 45)
		al.AppendActions(
			twoRight.And(twoRight.And(threeUp).Shr(43)).And(
				pf.Or(pf.Shr(1)).Or(pf.Shr(43)).Or(pf.Shr(44))),
			ZPentomino, 46)
	}

	if gs.PiecesLeft[UPentomino][gs.CurrentPlayer] {
		al.AppendActions(
			threeRight.And(twoDown).And(legalFields.Shr(23)).And(
				pf.Or(pf.Shr(2)).Or(pf.Shr(21)).Or(pf.Shr(23))),
			UPentomino, 47)
		al.AppendActions(
			legalFields.And(threeLeft.And(twoUp).Shr(23)).And(
				pf.Or(pf.Shr(2)).Or(pf.Shr(21)).Or(pf.Shr(23))),
			UPentomino, 48)
		al.AppendActions(
			threeDown.And(twoRight).And(legalFields.Shr(43)).And(
				pf.Or(pf.Shr(1)).Or(pf.Shr(42)).Or(pf.Shr(43))),
			UPentomino, 49)
		al.AppendActions(
			twoRight.And(twoLeft.And(threeUp).Shr(43)).And(
				pf.Or(pf.Shr(1)).Or(pf.Shr(42)).Or(pf.Shr(43))),
			UPentomino, 50)
	}

	if gs.PiecesLeft[FPentomino][gs.CurrentPlayer] {
		al.AppendActions(
			threeUp.And(twoLeft).Shr(43).And(legalFields.Shr(23)).And(
				pf.Shr(1).Or(pf.Shr(23)).Or(pf.Shr(42)).Or(pf.Shr(43))),
			FPentomino, 51)
		al.AppendActions(
			legalFields.Shr(21).And(threeUp.And(twoRight).Shr(43)).And(
				pf.Shr(1).Or(pf.Shr(21)).Or(pf.Shr(43)).Or(pf.Shr(44))),
			FPentomino, 52)
		al.AppendActions(
			threeDown.And(twoRight).And(legalFields.Shr(20)).And(
				pf.Or(pf.Shr(1)).Or(pf.Shr(20)).Or(pf.Shr(42))).Shr(1),
			FPentomino, 53)
		al.AppendActions(
			threeDown.And(twoLeft).Shr(1).And(legalFields.Shr(23)).And(
				pf.Or(pf.Shr(1)).Or(pf.Shr(23)).Or(pf.Shr(43))),
			FPentomino, 54)
		al.AppendActions(
			threeLeft.And(twoUp).Shr(23).And(legalFields.Shr(43)).And(
				pf.Shr(2).Or(pf.Shr(21)).Or(pf.Shr(23)).Or(pf.Shr(43))),
			FPentomino, 55)
		al.AppendActions(
			threeRight.And(twoUp).Shr(21).And(legalFields.Shr(43)).And(
				pf.Or(pf.Shr(21)).Or(pf.Shr(23)).Or(pf.Shr(43))),
			FPentomino, 56)
		al.AppendActions(
			legalFields.And(threeLeft.And(twoDown).Shr(22)).And(
				pf.Or(pf.Shr(20)).Or(pf.Shr(22)).Or(pf.Shr(43))).Shr(1),
			FPentomino, 57)
		al.AppendActions(
			legalFields.And(threeRight.And(twoDown).Shr(20)).And(
				pf.Or(pf.Shr(20)).Or(pf.Shr(22)).Or(pf.Shr(41))).Shr(1),
			FPentomino, 58)
	}

	if gs.PiecesLeft[WPentomino][gs.CurrentPlayer] {
		al.AppendActions(
			twoDown.And(twoUp.And(twoRight).Shr(43)).And(
				pf.Or(pf.Shr(21)).Or(pf.Shr(22)).Or(pf.Shr(43)).Or(pf.Shr(44))),
			WPentomino, 59)
		al.AppendActions(
			twoUp.And(twoLeft).Shr(23).And(twoRight.Shr(42)).And(
				pf.Shr(2).Or(pf.Shr(22)).Or(pf.Shr(23)).Or(pf.Shr(42)).Or(pf.Shr(43))),
			WPentomino, 60)
		al.AppendActions(
			twoRight.And(twoDown.And(twoLeft).Shr(23)).And(
				pf.Or(pf.Shr(1)).Or(pf.Shr(22)).Or(pf.Shr(23)).Or(pf.Shr(44))),
			WPentomino, 61)
		al.AppendActions(
			twoRight.And(twoRight.And(twoDown).Shr(20)).And(
				pf.Or(pf.Shr(1)).Or(pf.Shr(20)).Or(pf.Shr(21)).Or(pf.Shr(41))).Shr(1),
			WPentomino, 62)
	}

	if gs.PiecesLeft[NPentomino][gs.CurrentPlayer] {
		al.AppendActions(
			threeDown.And(twoDown.Shr(41)).And(
				pf.Or(pf.Shr(41)).Or(pf.Shr(42)).Or(pf.Shr(62))).Shr(1),
			NPentomino, 63)
		al.AppendActions(
			threeDown.And(twoDown.Shr(43)).And(pf.Or(pf.Shr(42)).Or(pf.Shr(43)).Or(pf.Shr(64))),
			NPentomino, 64)
		al.AppendActions(
			twoDown.And(threeDown.Shr(20)).And(
				pf.Or(pf.Shr(20)).Or(pf.Shr(21)).Or(pf.Shr(62))).Shr(1),
			NPentomino, 65)
		al.AppendActions(
			twoDown.And(threeDown.Shr(22)).And(pf.Or(pf.Shr(21)).Or(pf.Shr(22)).Or(pf.Shr(64))),
			NPentomino, 66)
		al.AppendActions(
			twoRight.And(threeRight.Shr(19)).And(
				pf.Or(pf.Shr(1)).Or(pf.Shr(19)).Or(pf.Shr(21))).Shr(2),
			NPentomino, 67)
		al.AppendActions(
			threeRight.And(twoRight.Shr(23)).And(pf.Or(pf.Shr(2)).Or(pf.Shr(23)).Or(pf.Shr(24))),
			NPentomino, 68)
		al.AppendActions(
			twoRight.And(threeRight.Shr(22)).And(pf.Or(pf.Shr(1)).Or(pf.Shr(22)).Or(pf.Shr(24))),
			NPentomino, 69)
		al.AppendActions(
			threeRight.And(twoRight.Shr(20)).And(
				pf.Or(pf.Shr(2)).Or(pf.Shr(20)).Or(pf.Shr(21))).Shr(1),
			NPentomino, 70)
	}

	if gs.PiecesLeft[VPentomino][gs.CurrentPlayer] {
		al.AppendActions(threeRight.And(threeDown).And(pf.Or(pf.Shr(2)).Or(pf.Shr(42))), VPentomino, 71)
		al.AppendActions(threeUp.And(threeLeft).Shr(44).And(pf.Shr(2).Or(pf.Shr(42)).Or(pf.Shr(44))), VPentomino, 72)
		al.AppendActions(threeRight.And(threeDown.Shr(2)).And(pf.Or(pf.Shr(2)).Or(pf.Shr(44))), VPentomino, 73)
		al.AppendActions(threeDown.And(threeRight.Shr(42)).And(pf.Or(pf.Shr(42)).Or(pf.Shr(44))), VPentomino, 74)
	}

	if gs.PiecesLeft[YPentomino][gs.CurrentPlayer] {
		al.AppendActions(fourDown.And(legalFields.Shr(22)).And(pf.Or(pf.Shr(22)).Or(pf.Shr(63))), YPentomino, 83)
		al.AppendActions(fourDown.And(legalFields.Shr(43)).And(pf.Or(pf.Shr(43)).Or(pf.Shr(63))), YPentomino, 84)
		al.AppendActions(
			fourDown.And(legalFields.Shr(41)).And(pf.Or(pf.Shr(41)).Or(pf.Shr(63))).Shr(1),
			YPentomino, 85)
		al.AppendActions(
			fourDown.And(legalFields.Shr(20)).And(pf.Or(pf.Shr(20)).Or(pf.Shr(63))).Shr(1),
			YPentomino, 86)
		al.AppendActions(fourRight.And(legalFields.Shr(23)).And(pf.Or(pf.Shr(3)).Or(pf.Shr(23))), YPentomino, 87)
		al.AppendActions(fourRight.And(legalFields.Shr(22)).And(pf.Or(pf.Shr(3)).Or(pf.Shr(22))), YPentomino, 88)
		al.AppendActions(
			twoUp.And(twoRight).And(threeLeft).Shr(23).And(pf.Shr(2).Or(pf.Shr(21)).Or(pf.Shr(24))),
			YPentomino, 89)
		al.AppendActions(
			legalFields.And(fourRight.Shr(20)).And(pf.Or(pf.Shr(20)).Or(pf.Shr(23))).Shr(1),
			YPentomino, 90)
	}

	if gs.PiecesLeft[TTetromino][gs.CurrentPlayer] {
		al.AppendActions(threeRight.And(legalFields.Shr(22)).And(pf.Or(pf.Shr(2)).Or(pf.Shr(22))), TTetromino, 35)
		al.AppendActions(
			twoUp.And(twoRight).And(twoLeft).Shr(22).And(pf.Shr(1).Or(pf.Shr(21)).Or(pf.Shr(23))),
			TTetromino, 36)
		al.AppendActions(threeDown.And(legalFields.Shr(22)).And(pf.Or(pf.Shr(22)).Or(pf.Shr(42))), TTetromino, 37)
		al.AppendActions(
			twoUp.And(twoDown).And(twoLeft).Shr(22).And(pf.Shr(1).Or(pf.Shr(21)).Or(pf.Shr(43))),
			TTetromino, 38)
	}

	{
		square := twoRight.And(twoRight.Shr(21))
		if gs.PiecesLeft[OTetromino][gs.CurrentPlayer] {
			al.AppendActions(
				square.And(pf.Or(pf.Shr(1)).Or(pf.Shr(21)).Or(pf.Shr(22))),
				OTetromino, 9)
		}
		if gs.PiecesLeft[PPentomino][gs.CurrentPlayer] {
			al.AppendActions(square.And(legalFields.Shr(42)).And(pf.Or(pf.Shr(1)).Or(pf.Shr(22)).Or(pf.Shr(42))), PPentomino, 75)
			al.AppendActions(square.And(legalFields.Shr(43)).And(pf.Or(pf.Shr(1)).Or(pf.Shr(21)).Or(pf.Shr(43))), PPentomino, 76)
			al.AppendActions(square.And(legalFields.Shr(23)).And(pf.Or(pf.Shr(1)).Or(pf.Shr(21)).Or(pf.Shr(23))), PPentomino, 77)
			al.AppendActions(square.And(legalFields.Shr(2)).And(pf.Or(pf.Shr(2)).Or(pf.Shr(21)).Or(pf.Shr(22))), PPentomino, 78)
			al.AppendActions(square.Shr(1).And(legalFields).And(pf.Or(pf.Shr(2)).Or(pf.Shr(22)).Or(pf.Shr(23))), PPentomino, 79)
			al.AppendActions(
				square.And(legalFields.Shr(20)).And(pf.Or(pf.Shr(1)).Or(pf.Shr(20)).Or(pf.Shr(22))).Shr(1),
				PPentomino, 80)
			al.AppendActions(
				legalFields.And(square.Shr(20)).And(pf.Or(pf.Shr(20)).Or(pf.Shr(41)).Or(pf.Shr(42))).Shr(1),
				PPentomino, 81)
			al.AppendActions(legalFields.And(square.Shr(21)).And(pf.Or(pf.Shr(22)).Or(pf.Shr(42)).Or(pf.Shr(43))), PPentomino, 82)
		}
	}

	if gs.PiecesLeft[ZTetromino][gs.CurrentPlayer] {
		al.AppendActions(
			twoRight.And(twoRight.Shr(20)).And(pf.Or(pf.Shr(1)).Or(pf.Shr(20)).Or(pf.Shr(21))).Shr(1),
			ZTetromino, 39)
		al.AppendActions(twoRight.And(twoRight.Shr(22)).And(pf.Or(pf.Shr(1)).Or(pf.Shr(22)).Or(pf.Shr(23))), ZTetromino, 40)
		al.AppendActions(
			twoDown.And(twoDown.Shr(20)).And(pf.Or(pf.Shr(20)).Or(pf.Shr(21)).Or(pf.Shr(41))).Shr(1),
			ZTetromino, 41)
		al.AppendActions(twoDown.And(twoDown.Shr(22)).And(pf.Or(pf.Shr(21)).Or(pf.Shr(22)).Or(pf.Shr(43))), ZTetromino, 42)
	}

	if gs.PiecesLeft[LTetromino][gs.CurrentPlayer] {
		al.AppendActions(threeDown.And(twoRight).And(pf.Or(pf.Shr(1)).Or(pf.Shr(42))), LTetromino, 15)
		al.AppendActions(twoRight.And(threeDown.Shr(1)).And(pf.Or(pf.Shr(1)).Or(pf.Shr(43))), LTetromino, 16)
		al.AppendActions(
			threeDown.And(twoRight.Shr(41)).And(pf.Or(pf.Shr(41)).Or(pf.Shr(42))).Shr(1),
			LTetromino, 17)
		al.AppendActions(threeDown.And(twoRight.Shr(42)).And(pf.Or(pf.Shr(42)).Or(pf.Shr(43))), LTetromino, 18)
		al.AppendActions(legalFields.And(threeRight.Shr(21)).And(pf.Or(pf.Shr(21)).Or(pf.Shr(23))), LTetromino, 19)
		al.AppendActions(threeRight.And(legalFields.Shr(21)).And(pf.Or(pf.Shr(2)).Or(pf.Shr(21))), LTetromino, 20)
		al.AppendActions(threeRight.And(legalFields.Shr(23)).And(pf.Or(pf.Shr(2)).Or(pf.Shr(23))), LTetromino, 21)
		al.AppendActions(
			twoUp.And(threeLeft).Shr(23).And(pf.Shr(2).Or(pf.Shr(21)).Or(pf.Shr(23))),
			LTetromino, 22)
	}

	if gs.PiecesLeft[Monomino][gs.CurrentPlayer] {
		al.AppendActions(pf, Monomino, 0)
	}

	if gs.Ply < 4 {
		idx := 0
		for i := 0; i < al.Size(); i++ {
			a := al.Get(i)
			if a.IsSet() && PieceTypeFromShape(a.Shape()) == gs.StartPieceType {
				al.Swap(idx, i)
				idx++
			}
		}
		al.Truncate(idx)
	}

	if al.Size() == 0 {
		al.Push(Skip)
	}
}

// IsGameOver reports whether every color has skipped or the hard ply cap
// (25 rounds) has been reached.
func (gs *GameState) IsGameOver() bool {
	return gs.Skipped == 0b1111 || gs.Ply > 100
}

// GameResult scores a finished (or mid-game, for rollout purposes) position
// from team BLUE/RED's perspective: positive favors BLUE+RED, negative
// favors YELLOW+GREEN.
func (gs *GameState) GameResult() int16 {
	scores := [4]int16{
		int16(gs.Board[Blue].CountOnes()),
		int16(gs.Board[Yellow].CountOnes()),
		int16(gs.Board[Red].CountOnes()),
		int16(gs.Board[Green].CountOnes()),
	}
	for i := range scores {
		if scores[i] == 89 {
			scores[i] += 5
		}
		if gs.MonominoPlacedLast[i] {
			scores[i] += 15
		}
	}
	return scores[0] + scores[2] - scores[1] - scores[3]
}

// CurrentColorIndex is the plain integer form of CurrentPlayer, for use as
// an array index at call sites that would otherwise need a cast at every
// use.
func (gs *GameState) CurrentColorIndex() int { return int(gs.CurrentPlayer) }

// Team returns the signed team membership of the player to move.
func (gs *GameState) Team() int16 { return gs.CurrentPlayer.Team() }

// OccupiedFields is the union of all four colors' boards.
func (gs *GameState) OccupiedFields() Bitboard {
	return gs.Board[0].Or(gs.Board[1]).Or(gs.Board[2]).Or(gs.Board[3])
}

// HasColorSkipped reports whether color has already passed this game.
func (gs *GameState) HasColorSkipped(color Color) bool {
	return gs.Skipped>>uint(color)&1 != 0
}

// PieceInfoToInt packs PiecesLeft, MonominoPlacedLast, StartPieceType and
// Skipped into a single value for the FEN encoding.
func (gs *GameState) PieceInfoToInt() (hi, lo uint64) {
	var info lane128
	for player := 0; player < 4; player++ {
		if gs.MonominoPlacedLast[player] {
			info = info.or(bitLane(uint(player)))
		}
		for i := 0; i < 21; i++ {
			if gs.PiecesLeft[i][player] {
				info = info.or(bitLane(uint(i + 21*player + 4)))
			}
		}
	}
	for startIdx, pt := range PieceTypes {
		if pt == gs.StartPieceType {
			info = info.or(lane128{lo: uint64(startIdx)}.shl(110))
			break
		}
	}
	info = info.or(lane128{lo: uint64(gs.Skipped)}.shl(120))
	return info.hi, info.lo
}

// IntToPieceInfo is the inverse of PieceInfoToInt.
func (gs *GameState) IntToPieceInfo(hi, lo uint64) {
	info := lane128{hi, lo}
	gs.Skipped = uint8(info.shr(120).lo)
	for player := 0; player < 4; player++ {
		gs.MonominoPlacedLast[player] = info.and(bitLane(uint(player))).notZero()
		for i := 0; i < 21; i++ {
			gs.PiecesLeft[i][player] = info.and(bitLane(uint(i + 21*player + 4))).notZero()
		}
	}
	startIdx := info.shr(110).lo & 31
	gs.StartPieceType = PieceTypes[startIdx]
}

// ToFEN serializes the position as whitespace-separated decimal integers:
// ply, then each color's four lane words, then the packed piece info.
func (gs *GameState) ToFEN() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d", gs.Ply)
	for c := 0; c < 4; c++ {
		board := gs.Board[c]
		for _, lane := range []lane128{board.One, board.Two, board.Three, board.Four} {
			fmt.Fprintf(&b, " %s", lane128ToDecimal(lane))
		}
	}
	hi, lo := gs.PieceInfoToInt()
	fmt.Fprintf(&b, " %s", lane128ToDecimal(lane128{hi, lo}))
	return b.String()
}

// FromFEN parses the format written by ToFEN.
func FromFEN(fen string) (GameState, error) {
	fields := strings.Fields(fen)
	if len(fields) != 18 {
		return GameState{}, wrapFENError(fen, fenFieldCountError(len(fields), 18))
	}
	var gs GameState
	ply, err := strconv.ParseUint(fields[0], 10, 8)
	if err != nil {
		return GameState{}, wrapFENError(fen, err)
	}
	gs.Ply = uint8(ply)
	switch gs.Ply % 4 {
	case 0:
		gs.CurrentPlayer = Blue
	case 1:
		gs.CurrentPlayer = Yellow
	case 2:
		gs.CurrentPlayer = Red
	default:
		gs.CurrentPlayer = Green
	}

	idx := 1
	for c := 0; c < 4; c++ {
		lanes := make([]lane128, 4)
		for i := 0; i < 4; i++ {
			l, err := decimalToLane128(fields[idx])
			if err != nil {
				return GameState{}, wrapFENError(fen, err)
			}
			lanes[i] = l
			idx++
		}
		gs.Board[c] = Bitboard{One: lanes[0], Two: lanes[1], Three: lanes[2], Four: lanes[3]}
	}
	info, err := decimalToLane128(fields[idx])
	if err != nil {
		return GameState{}, wrapFENError(fen, err)
	}
	gs.IntToPieceInfo(info.hi, info.lo)
	return gs, nil
}

// String renders the board as plain ASCII, one character per color, dots
// for empty cells - a terminal-safe stand-in for the emoji/box-drawing
// renderer the source client used.
func (gs *GameState) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Turn %d Round %d\n", gs.CurrentPlayer, gs.Ply, gs.Ply/4)
	letters := [4]byte{'B', 'Y', 'R', 'G'}
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			field := uint16(x + y*boardWidth)
			bit := Bit(field)
			ch := byte('.')
			for c := 0; c < 4; c++ {
				if gs.Board[c].And(bit).Equals(bit) {
					ch = letters[c]
					break
				}
			}
			b.WriteByte(ch)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
