package blokus

// movegenRetries bounds how many random shapes a rollout tries before
// giving up and skipping, matching the fixed retry budget used to keep
// random-move generation from stalling rollouts on sparse boards.
const movegenRetries = 40

// ResultToValue maps a signed GameResult into a [0, 1] value from the
// perspective that a positive result is a win: ~1 for a Blue/Red win, ~0
// for a Yellow/Green win, 0.5 for an exact draw. The magnitude of the
// score difference nudges the value away from the boundary so the search
// prefers winning by more.
func ResultToValue(result int16) float32 {
	abs := float32(result)
	if abs < 0 {
		abs = -abs
	}
	abs /= 100_000.0
	switch {
	case result > 0:
		return 0.999 + abs
	case result < 0:
		return 0.001 - abs
	default:
		return 0.5
	}
}

// Playout plays a game to completion with uniformly random legal moves
// (pentomino-only for the first few plies), recording every move played
// into rave so later searches can use the all-moves-as-first statistic.
// Recurses one stack frame per ply so that each move's RAVE value can be
// updated on the way back up with the eventual game result.
func Playout(state *GameState, rng *Rng, rave *RaveTable) float32 {
	if state.IsGameOver() {
		return ResultToValue(state.GameResult())
	}
	color := state.CurrentPlayer
	action := RandomAction(state, rng, state.Ply < 12)
	state.DoAction(action)
	result := Playout(state, rng, rave)
	rave.AddValue(action, color, result)
	return result
}

// RandomAction samples a uniformly random legal move without building the
// full action list, retrying a bounded number of times before skipping.
// During the first four plies only orientations of the game's start piece
// are sampled. When pentominoOnly is set, only five-square pieces are
// sampled, matching the rollout policy's early-game bias toward larger
// pieces.
func RandomAction(state *GameState, rng *Rng, pentominoOnly bool) Action {
	color := state.CurrentPlayer
	if state.HasColorSkipped(color) {
		return Skip
	}
	ownFields := state.Board[color]
	otherFields := state.OccupiedFields().And(ownFields.Not())
	legalFields := ownFields.Or(otherFields).Or(ownFields.Neighbours()).Not().And(ValidFields)
	var p Bitboard
	if state.Ply > 3 {
		p = ownFields.DiagonalNeighbours().And(legalFields)
	} else {
		p = StartFields.And(otherFields.Not())
	}
	if p.IsZero() {
		return Skip
	}
	for i := 0; i < movegenRetries; i++ {
		var shape int
		if state.Ply < 4 {
			r := shapeRange[state.StartPieceType]
			shape = r[0] + rng.IntN(r[1]-r[0]+1)
		} else if pentominoOnly {
			shape = pentominoShapes[rng.Uint64()%uint64(len(pentominoShapes))]
		} else {
			shape = int(rng.Uint64() % 91)
		}
		if state.PiecesLeft[PieceTypeFromShape(shape)][color] {
			destinations := shapeFunctions[shape](legalFields, p)
			if destinations.NotZero() {
				return NewSetAction(destinations.RandomField(rng), shape)
			}
		}
	}
	return Skip
}

type shapeFunc func(l, p Bitboard) Bitboard

func shape0(_, p Bitboard) Bitboard { return p }

func shape1(l, p Bitboard) Bitboard {
	return l.And(l.Shr(1)).And(p.Or(p.Shr(1)))
}
func shape2(l, p Bitboard) Bitboard {
	return l.And(l.Shr(21)).And(p.Or(p.Shr(21)))
}
func shape3(l, p Bitboard) Bitboard {
	return l.And(l.Shr(1)).And(l.Shr(2)).And(p.Or(p.Shr(2)))
}
func shape4(l, p Bitboard) Bitboard {
	return l.And(l.Shr(21)).And(l.Shr(42)).And(p.Or(p.Shr(42)))
}
func shape5(l, p Bitboard) Bitboard {
	return l.And(l.Shr(1)).And(l.Shr(2)).And(l.Shr(3)).And(p.Or(p.Shr(3)))
}
func shape6(l, p Bitboard) Bitboard {
	return l.And(l.Shr(21)).And(l.Shr(42)).And(l.Shr(63)).And(p.Or(p.Shr(63)))
}
func shape7(l, p Bitboard) Bitboard {
	return l.And(l.Shr(1)).And(l.Shr(2)).And(l.Shr(3)).And(l.Shr(4)).And(p.Or(p.Shr(4)))
}
func shape8(l, p Bitboard) Bitboard {
	return l.And(l.Shr(21)).And(l.Shr(42)).And(l.Shr(63)).And(l.Shr(84)).And(p.Or(p.Shr(84)))
}
func shape9(l, p Bitboard) Bitboard {
	return l.And(l.Shr(1)).And(l.Shr(21)).And(l.Shr(22)).And(p.Or(p.Shr(1)).Or(p.Shr(21)).Or(p.Shr(22)))
}
func shape10(l, p Bitboard) Bitboard {
	return l.Shr(1).And(l.Shr(21)).And(l.Shr(22)).And(l.Shr(23)).And(l.Shr(43)).
		And(p.Shr(1).Or(p.Shr(21)).Or(p.Shr(23)).Or(p.Shr(43)))
}
func shape11(l, p Bitboard) Bitboard {
	return l.And(l.Shr(21)).And(l.Shr(22)).And(p.Or(p.Shr(21)).Or(p.Shr(22)))
}
func shape12(l, p Bitboard) Bitboard {
	return l.And(l.Shr(1)).And(l.Shr(21)).And(p.Or(p.Shr(1)).Or(p.Shr(21)))
}
func shape13(l, p Bitboard) Bitboard {
	return l.And(l.Shr(1)).And(l.Shr(22)).And(p.Or(p.Shr(1)).Or(p.Shr(22)))
}
func shape14(l, p Bitboard) Bitboard {
	return l.Shr(1).And(l.Shr(21)).And(l.Shr(22)).And(p.Shr(1).Or(p.Shr(21)).Or(p.Shr(22)))
}
func shape15(l, p Bitboard) Bitboard {
	return l.And(l.Shr(1)).And(l.Shr(21)).And(l.Shr(42)).And(p.Or(p.Shr(1)).Or(p.Shr(42)))
}
func shape16(l, p Bitboard) Bitboard {
	return l.And(l.Shr(1)).And(l.Shr(22)).And(l.Shr(43)).And(p.Or(p.Shr(1)).Or(p.Shr(43)))
}
func shape17(l, p Bitboard) Bitboard {
	return l.Shr(1).And(l.Shr(22)).And(l.Shr(42)).And(l.Shr(43)).And(p.Shr(1).Or(p.Shr(42)).Or(p.Shr(43)))
}
func shape18(l, p Bitboard) Bitboard {
	return l.And(l.Shr(21)).And(l.Shr(42)).And(l.Shr(43)).And(p.Or(p.Shr(42)).Or(p.Shr(43)))
}
func shape19(l, p Bitboard) Bitboard {
	return l.And(l.Shr(21)).And(l.Shr(22)).And(l.Shr(23)).And(p.Or(p.Shr(21)).Or(p.Shr(23)))
}
func shape20(l, p Bitboard) Bitboard {
	return l.And(l.Shr(1)).And(l.Shr(2)).And(l.Shr(21)).And(p.Or(p.Shr(2)).Or(p.Shr(21)))
}
func shape21(l, p Bitboard) Bitboard {
	return l.And(l.Shr(1)).And(l.Shr(2)).And(l.Shr(23)).And(p.Or(p.Shr(2)).Or(p.Shr(23)))
}
func shape22(l, p Bitboard) Bitboard {
	return l.Shr(2).And(l.Shr(21)).And(l.Shr(22)).And(l.Shr(23)).And(p.Shr(2).Or(p.Shr(21)).Or(p.Shr(23)))
}
func shape23(l, p Bitboard) Bitboard {
	return l.And(l.Shr(1)).And(l.Shr(2)).And(l.Shr(3)).And(l.Shr(24)).And(p.Or(p.Shr(3)).Or(p.Shr(24)))
}
func shape24(l, p Bitboard) Bitboard {
	return l.And(l.Shr(1)).And(l.Shr(2)).And(l.Shr(3)).And(l.Shr(21)).And(p.Or(p.Shr(3)).Or(p.Shr(21)))
}
func shape25(l, p Bitboard) Bitboard {
	return l.And(l.Shr(21)).And(l.Shr(22)).And(l.Shr(23)).And(l.Shr(24)).And(p.Or(p.Shr(21)).Or(p.Shr(24)))
}
func shape26(l, p Bitboard) Bitboard {
	return l.Shr(3).And(l.Shr(21)).And(l.Shr(22)).And(l.Shr(23)).And(l.Shr(24)).
		And(p.Shr(3).Or(p.Shr(21)).Or(p.Shr(24)))
}
func shape27(l, p Bitboard) Bitboard {
	return l.And(l.Shr(1)).And(l.Shr(21)).And(l.Shr(42)).And(l.Shr(63)).And(p.Or(p.Shr(1)).Or(p.Shr(63)))
}
func shape28(l, p Bitboard) Bitboard {
	return l.And(l.Shr(21)).And(l.Shr(42)).And(l.Shr(63)).And(l.Shr(64)).And(p.Or(p.Shr(63)).Or(p.Shr(64)))
}
func shape29(l, p Bitboard) Bitboard {
	return l.And(l.Shr(1)).And(l.Shr(22)).And(l.Shr(43)).And(l.Shr(64)).And(p.Or(p.Shr(1)).Or(p.Shr(64)))
}
func shape30(l, p Bitboard) Bitboard {
	return l.Shr(1).And(l.Shr(22)).And(l.Shr(43)).And(l.Shr(63)).And(l.Shr(64)).
		And(p.Shr(1).Or(p.Shr(63)).Or(p.Shr(64)))
}
func shape31(l, p Bitboard) Bitboard {
	return l.And(l.Shr(1)).And(l.Shr(2)).And(l.Shr(22)).And(l.Shr(43)).And(p.Or(p.Shr(2)).Or(p.Shr(43)))
}
func shape32(l, p Bitboard) Bitboard {
	return l.Shr(1).And(l.Shr(22)).And(l.Shr(42)).And(l.Shr(43)).And(l.Shr(44)).
		And(p.Shr(1).Or(p.Shr(42)).Or(p.Shr(44)))
}
func shape33(l, p Bitboard) Bitboard {
	return l.And(l.Shr(21)).And(l.Shr(22)).And(l.Shr(23)).And(l.Shr(42)).And(p.Or(p.Shr(23)).Or(p.Shr(42)))
}
func shape34(l, p Bitboard) Bitboard {
	return l.Shr(2).And(l.Shr(21)).And(l.Shr(22)).And(l.Shr(23)).And(l.Shr(44)).
		And(p.Shr(2).Or(p.Shr(21)).Or(p.Shr(44)))
}
func shape35(l, p Bitboard) Bitboard {
	return l.And(l.Shr(1)).And(l.Shr(2)).And(l.Shr(22)).And(p.Or(p.Shr(2)).Or(p.Shr(22)))
}
func shape36(l, p Bitboard) Bitboard {
	return l.Shr(1).And(l.Shr(21)).And(l.Shr(22)).And(l.Shr(23)).And(p.Shr(1).Or(p.Shr(21)).Or(p.Shr(23)))
}
func shape37(l, p Bitboard) Bitboard {
	return l.And(l.Shr(21)).And(l.Shr(22)).And(l.Shr(42)).And(p.Or(p.Shr(22)).Or(p.Shr(42)))
}
func shape38(l, p Bitboard) Bitboard {
	return l.Shr(1).And(l.Shr(21)).And(l.Shr(22)).And(l.Shr(43)).And(p.Shr(1).Or(p.Shr(21)).Or(p.Shr(43)))
}
func shape39(l, p Bitboard) Bitboard {
	return l.Shr(1).And(l.Shr(2)).And(l.Shr(21)).And(l.Shr(22)).
		And(p.Shr(1).Or(p.Shr(2)).Or(p.Shr(21)).Or(p.Shr(22)))
}
func shape40(l, p Bitboard) Bitboard {
	return l.And(l.Shr(1)).And(l.Shr(22)).And(l.Shr(23)).
		And(p.Or(p.Shr(1)).Or(p.Shr(22)).Or(p.Shr(23)))
}
func shape41(l, p Bitboard) Bitboard {
	return l.Shr(1).And(l.Shr(21)).And(l.Shr(22)).And(l.Shr(42)).
		And(p.Shr(1).Or(p.Shr(21)).Or(p.Shr(22)).Or(p.Shr(42)))
}
func shape42(l, p Bitboard) Bitboard {
	return l.And(l.Shr(21)).And(l.Shr(22)).And(l.Shr(43)).
		And(p.Or(p.Shr(21)).Or(p.Shr(22)).Or(p.Shr(43)))
}
func shape43(l, p Bitboard) Bitboard {
	return l.And(l.Shr(21)).And(l.Shr(22)).And(l.Shr(23)).And(l.Shr(44)).
		And(p.Or(p.Shr(21)).Or(p.Shr(23)).Or(p.Shr(44)))
}
func shape44(l, p Bitboard) Bitboard {
	return l.Shr(2).And(l.Shr(21)).And(l.Shr(22)).And(l.Shr(23)).And(l.Shr(42)).
		And(p.Shr(2).Or(p.Shr(21)).Or(p.Shr(23)).Or(p.Shr(42)))
}
func shape45(l, p Bitboard) Bitboard {
	return l.Shr(1).And(l.Shr(2)).And(l.Shr(22)).And(l.Shr(42)).And(l.Shr(43)).
		And(p.Shr(1).Or(p.Shr(2)).Or(p.Shr(42)).Or(p.Shr(43)))
}
func shape46(l, p Bitboard) Bitboard {
	return l.And(l.Shr(1)).And(l.Shr(22)).And(l.Shr(43)).And(l.Shr(44)).
		And(p.Or(p.Shr(1)).Or(p.Shr(43)).Or(p.Shr(44)))
}
func shape47(l, p Bitboard) Bitboard {
	return l.And(l.Shr(1)).And(l.Shr(2)).And(l.Shr(21)).And(l.Shr(23)).
		And(p.Or(p.Shr(2)).Or(p.Shr(21)).Or(p.Shr(23)))
}
func shape48(l, p Bitboard) Bitboard {
	return l.And(l.Shr(2)).And(l.Shr(21)).And(l.Shr(22)).And(l.Shr(23)).
		And(p.Or(p.Shr(2)).Or(p.Shr(21)).Or(p.Shr(23)))
}
func shape49(l, p Bitboard) Bitboard {
	return l.And(l.Shr(1)).And(l.Shr(21)).And(l.Shr(42)).And(l.Shr(43)).
		And(p.Or(p.Shr(1)).Or(p.Shr(42)).Or(p.Shr(43)))
}
func shape50(l, p Bitboard) Bitboard {
	return l.And(l.Shr(1)).And(l.Shr(22)).And(l.Shr(42)).And(l.Shr(43)).
		And(p.Or(p.Shr(1)).Or(p.Shr(42)).Or(p.Shr(43)))
}
func shape51(l, p Bitboard) Bitboard {
	return l.Shr(1).And(l.Shr(22)).And(l.Shr(23)).And(l.Shr(42)).And(l.Shr(43)).
		And(p.Shr(1).Or(p.Shr(23)).Or(p.Shr(42)).Or(p.Shr(43)))
}
func shape52(l, p Bitboard) Bitboard {
	return l.Shr(1).And(l.Shr(21)).And(l.Shr(22)).And(l.Shr(43)).And(l.Shr(44)).
		And(p.Shr(1).Or(p.Shr(21)).Or(p.Shr(43)).Or(p.Shr(44)))
}
func shape53(l, p Bitboard) Bitboard {
	return l.Shr(1).And(l.Shr(2)).And(l.Shr(21)).And(l.Shr(22)).And(l.Shr(43)).
		And(p.Shr(1).Or(p.Shr(2)).Or(p.Shr(21)).Or(p.Shr(43)))
}
func shape54(l, p Bitboard) Bitboard {
	return l.And(l.Shr(1)).And(l.Shr(22)).And(l.Shr(23)).And(l.Shr(43)).
		And(p.Or(p.Shr(1)).Or(p.Shr(23)).Or(p.Shr(43)))
}
func shape55(l, p Bitboard) Bitboard {
	return l.Shr(2).And(l.Shr(21)).And(l.Shr(22)).And(l.Shr(23)).And(l.Shr(43)).
		And(p.Shr(2).Or(p.Shr(21)).Or(p.Shr(23)).Or(p.Shr(43)))
}
func shape56(l, p Bitboard) Bitboard {
	return l.And(l.Shr(21)).And(l.Shr(22)).And(l.Shr(23)).And(l.Shr(43)).
		And(p.Or(p.Shr(21)).Or(p.Shr(23)).Or(p.Shr(43)))
}
func shape57(l, p Bitboard) Bitboard {
	return l.Shr(1).And(l.Shr(21)).And(l.Shr(22)).And(l.Shr(23)).And(l.Shr(44)).
		And(p.Shr(1).Or(p.Shr(21)).Or(p.Shr(23)).Or(p.Shr(44)))
}
func shape58(l, p Bitboard) Bitboard {
	return l.Shr(1).And(l.Shr(21)).And(l.Shr(22)).And(l.Shr(23)).And(l.Shr(42)).
		And(p.Shr(1).Or(p.Shr(21)).Or(p.Shr(23)).Or(p.Shr(42)))
}
func shape59(l, p Bitboard) Bitboard {
	return l.And(l.Shr(21)).And(l.Shr(22)).And(l.Shr(43)).And(l.Shr(44)).
		And(p.Or(p.Shr(21)).Or(p.Shr(22)).Or(p.Shr(43)).Or(p.Shr(44)))
}
func shape60(l, p Bitboard) Bitboard {
	return l.Shr(2).And(l.Shr(22)).And(l.Shr(23)).And(l.Shr(42)).And(l.Shr(43)).
		And(p.Shr(2).Or(p.Shr(22)).Or(p.Shr(23)).Or(p.Shr(42)).Or(p.Shr(43)))
}
func shape61(l, p Bitboard) Bitboard {
	return l.And(l.Shr(1)).And(l.Shr(22)).And(l.Shr(23)).And(l.Shr(44)).
		And(p.Or(p.Shr(1)).Or(p.Shr(22)).Or(p.Shr(23)).Or(p.Shr(44)))
}
func shape62(l, p Bitboard) Bitboard {
	return l.Shr(1).And(l.Shr(2)).And(l.Shr(21)).And(l.Shr(22)).And(l.Shr(42)).
		And(p.Shr(1).Or(p.Shr(2)).Or(p.Shr(21)).Or(p.Shr(22)).Or(p.Shr(42)))
}
func shape63(l, p Bitboard) Bitboard {
	return l.Shr(1).And(l.Shr(22)).And(l.Shr(42)).And(l.Shr(43)).And(l.Shr(63)).
		And(p.Shr(1).Or(p.Shr(42)).Or(p.Shr(43)).Or(p.Shr(63)))
}
func shape64(l, p Bitboard) Bitboard {
	return l.And(l.Shr(21)).And(l.Shr(42)).And(l.Shr(43)).And(l.Shr(64)).
		And(p.Or(p.Shr(42)).Or(p.Shr(43)).Or(p.Shr(64)))
}
func shape65(l, p Bitboard) Bitboard {
	return l.Shr(1).And(l.Shr(21)).And(l.Shr(22)).And(l.Shr(42)).And(l.Shr(63)).
		And(p.Shr(1).Or(p.Shr(21)).Or(p.Shr(22)).Or(p.Shr(63)))
}
func shape66(l, p Bitboard) Bitboard {
	return l.And(l.Shr(21)).And(l.Shr(22)).And(l.Shr(43)).And(l.Shr(64)).
		And(p.Or(p.Shr(21)).Or(p.Shr(22)).Or(p.Shr(64)))
}
func shape67(l, p Bitboard) Bitboard {
	return l.Shr(2).And(l.Shr(3)).And(l.Shr(21)).And(l.Shr(22)).And(l.Shr(23)).
		And(p.Shr(2).Or(p.Shr(3)).Or(p.Shr(21)).Or(p.Shr(23)))
}
func shape68(l, p Bitboard) Bitboard {
	return l.And(l.Shr(1)).And(l.Shr(2)).And(l.Shr(23)).And(l.Shr(24)).
		And(p.Or(p.Shr(2)).Or(p.Shr(23)).Or(p.Shr(24)))
}
func shape69(l, p Bitboard) Bitboard {
	return l.And(l.Shr(1)).And(l.Shr(22)).And(l.Shr(23)).And(l.Shr(24)).
		And(p.Or(p.Shr(1)).Or(p.Shr(22)).Or(p.Shr(24)))
}
func shape70(l, p Bitboard) Bitboard {
	return l.Shr(1).And(l.Shr(2)).And(l.Shr(3)).And(l.Shr(21)).And(l.Shr(22)).
		And(p.Shr(1).Or(p.Shr(3)).Or(p.Shr(21)).Or(p.Shr(22)))
}
func shape71(l, p Bitboard) Bitboard {
	return l.And(l.Shr(1)).And(l.Shr(2)).And(l.Shr(21)).And(l.Shr(42)).
		And(p.Or(p.Shr(2)).Or(p.Shr(42)))
}
func shape72(l, p Bitboard) Bitboard {
	return l.Shr(2).And(l.Shr(23)).And(l.Shr(42)).And(l.Shr(43)).And(l.Shr(44)).
		And(p.Shr(2).Or(p.Shr(42)).Or(p.Shr(44)))
}
func shape73(l, p Bitboard) Bitboard {
	return l.And(l.Shr(1)).And(l.Shr(2)).And(l.Shr(23)).And(l.Shr(44)).
		And(p.Or(p.Shr(2)).Or(p.Shr(44)))
}
func shape74(l, p Bitboard) Bitboard {
	return l.And(l.Shr(21)).And(l.Shr(42)).And(l.Shr(43)).And(l.Shr(44)).
		And(p.Or(p.Shr(42)).Or(p.Shr(44)))
}
func shape75(l, p Bitboard) Bitboard {
	return l.And(l.Shr(1)).And(l.Shr(21)).And(l.Shr(22)).And(l.Shr(42)).
		And(p.Or(p.Shr(1)).Or(p.Shr(22)).Or(p.Shr(42)))
}
func shape76(l, p Bitboard) Bitboard {
	return l.And(l.Shr(1)).And(l.Shr(21)).And(l.Shr(22)).And(l.Shr(43)).
		And(p.Or(p.Shr(1)).Or(p.Shr(21)).Or(p.Shr(43)))
}
func shape77(l, p Bitboard) Bitboard {
	return l.And(l.Shr(1)).And(l.Shr(21)).And(l.Shr(22)).And(l.Shr(23)).
		And(p.Or(p.Shr(1)).Or(p.Shr(21)).Or(p.Shr(23)))
}
func shape78(l, p Bitboard) Bitboard {
	return l.And(l.Shr(1)).And(l.Shr(2)).And(l.Shr(21)).And(l.Shr(22)).
		And(p.Or(p.Shr(2)).Or(p.Shr(21)).Or(p.Shr(22)))
}
func shape79(l, p Bitboard) Bitboard {
	return l.And(l.Shr(1)).And(l.Shr(2)).And(l.Shr(22)).And(l.Shr(23)).
		And(p.Or(p.Shr(2)).Or(p.Shr(22)).Or(p.Shr(23)))
}
func shape80(l, p Bitboard) Bitboard {
	return l.Shr(1).And(l.Shr(2)).And(l.Shr(21)).And(l.Shr(22)).And(l.Shr(23)).
		And(p.Shr(1).Or(p.Shr(2)).Or(p.Shr(21)).Or(p.Shr(23)))
}
func shape81(l, p Bitboard) Bitboard {
	return l.Shr(1).And(l.Shr(21)).And(l.Shr(22)).And(l.Shr(42)).And(l.Shr(43)).
		And(p.Shr(1).Or(p.Shr(21)).Or(p.Shr(42)).Or(p.Shr(43)))
}
func shape82(l, p Bitboard) Bitboard {
	return l.And(l.Shr(21)).And(l.Shr(22)).And(l.Shr(42)).And(l.Shr(43)).
		And(p.Or(p.Shr(22)).Or(p.Shr(42)).Or(p.Shr(43)))
}
func shape83(l, p Bitboard) Bitboard {
	return l.And(l.Shr(21)).And(l.Shr(22)).And(l.Shr(42)).And(l.Shr(63)).
		And(p.Or(p.Shr(22)).Or(p.Shr(63)))
}
func shape84(l, p Bitboard) Bitboard {
	return l.And(l.Shr(21)).And(l.Shr(42)).And(l.Shr(43)).And(l.Shr(63)).
		And(p.Or(p.Shr(43)).Or(p.Shr(63)))
}
func shape85(l, p Bitboard) Bitboard {
	return l.Shr(1).And(l.Shr(22)).And(l.Shr(42)).And(l.Shr(43)).And(l.Shr(64)).
		And(p.Shr(1).Or(p.Shr(42)).Or(p.Shr(64)))
}
func shape86(l, p Bitboard) Bitboard {
	return l.Shr(1).And(l.Shr(21)).And(l.Shr(22)).And(l.Shr(43)).And(l.Shr(64)).
		And(p.Shr(1).Or(p.Shr(21)).Or(p.Shr(64)))
}
func shape87(l, p Bitboard) Bitboard {
	return l.And(l.Shr(1)).And(l.Shr(2)).And(l.Shr(3)).And(l.Shr(23)).
		And(p.Or(p.Shr(3)).Or(p.Shr(23)))
}
func shape88(l, p Bitboard) Bitboard {
	return l.And(l.Shr(1)).And(l.Shr(2)).And(l.Shr(3)).And(l.Shr(22)).
		And(p.Or(p.Shr(3)).Or(p.Shr(22)))
}
func shape89(l, p Bitboard) Bitboard {
	return l.Shr(2).And(l.Shr(21)).And(l.Shr(22)).And(l.Shr(23)).And(l.Shr(24)).
		And(p.Shr(2).Or(p.Shr(21)).Or(p.Shr(24)))
}
func shape90(l, p Bitboard) Bitboard {
	return l.Shr(1).And(l.Shr(21)).And(l.Shr(22)).And(l.Shr(23)).And(l.Shr(24)).
		And(p.Shr(1).Or(p.Shr(21)).Or(p.Shr(24)))
}

var shapeFunctions = [91]shapeFunc{
	shape0, shape1, shape2, shape3, shape4, shape5, shape6, shape7, shape8, shape9,
	shape10, shape11, shape12, shape13, shape14, shape15, shape16, shape17, shape18,
	shape19, shape20, shape21, shape22, shape23, shape24, shape25, shape26, shape27,
	shape28, shape29, shape30, shape31, shape32, shape33, shape34, shape35, shape36,
	shape37, shape38, shape39, shape40, shape41, shape42, shape43, shape44, shape45,
	shape46, shape47, shape48, shape49, shape50, shape51, shape52, shape53, shape54,
	shape55, shape56, shape57, shape58, shape59, shape60, shape61, shape62, shape63,
	shape64, shape65, shape66, shape67, shape68, shape69, shape70, shape71, shape72,
	shape73, shape74, shape75, shape76, shape77, shape78, shape79, shape80, shape81,
	shape82, shape83, shape84, shape85, shape86, shape87, shape88, shape89, shape90,
}

var pentominoShapes = [63]int{
	7, 8, 10, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 43, 44, 45, 46, 47, 48, 49, 50, 51,
	52, 53, 54, 55, 56, 57, 58, 59, 60, 61, 62, 63, 64, 65, 66, 67, 68, 69, 70, 71, 72, 73, 74, 75,
	76, 77, 78, 79, 80, 81, 82, 83, 84, 85, 86, 87, 88, 89, 90,
}
