package blokus

import "time"

// Player is anything that can be asked for a move in a running game:
// MCTS and RandomPlayer both implement it, and cmd/blokusworker selects
// between them by flag.
type Player interface {
	OnMoveRequest(state *GameState) Action
	OnReset()
	SetTimeLimit(limit time.Duration)
}

// RandomPlayer selects uniformly among the legal actions in the current
// position, ignoring the time limit entirely. Useful as a cheap baseline
// opponent and in tests that only care about rule legality.
type RandomPlayer struct {
	rng        *Rng
	actionList ActionList
}

func NewRandomPlayer(seed uint64) *RandomPlayer {
	return &RandomPlayer{rng: NewRng(seed)}
}

func (p *RandomPlayer) OnMoveRequest(state *GameState) Action {
	state.GetPossibleActions(&p.actionList)
	return p.actionList.Get(int(p.rng.Uint64() % uint64(p.actionList.Size())))
}

func (p *RandomPlayer) OnReset()                        {}
func (p *RandomPlayer) SetTimeLimit(_ time.Duration)     {}

var (
	_ Player = (*MCTS)(nil)
	_ Player = (*RandomPlayer)(nil)
)
