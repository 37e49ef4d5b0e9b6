package blokus

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SearchOptions configures an MCTS instance at construction time: how a
// search is bounded (wall clock or a fixed iteration count, for
// deterministic tests) and which PRNG seed drives rollouts.
type SearchOptions struct {
	TimeLimit      time.Duration
	IterationLimit int // 0 means "use TimeLimit instead"
	Seed           uint64
	Params         SearchParams
	Logger         *zerolog.Logger // nil uses the package-level zerolog.log.Logger
}

// MCTS is a persistent Monte-Carlo search tree reused across moves within
// one game: SearchAction advances the root to the observed position
// (reusing the matching subtree when possible) before spending its time
// or iteration budget.
type MCTS struct {
	rootNode  Node
	rootState GameState
	timeLimit time.Duration
	iterLimit int
	rave      RaveTable
	rng       *Rng
	params    SearchParams
	log       zerolog.Logger
}

// NewMCTS builds a search with the given weights/bias and options. A zero
// SearchOptions gives the engine's defaults: a 1960ms time limit and the
// tuned heuristic parameters.
func NewMCTS(opts SearchOptions) *MCTS {
	timeLimit := opts.TimeLimit
	if timeLimit == 0 && opts.IterationLimit == 0 {
		timeLimit = 1960 * time.Millisecond
	}
	params := opts.Params
	if params.Weights == ([heuristicParamCount]float32{}) {
		params = DefaultSearchParams
	}
	logger := log.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	rng := NewRng(opts.Seed)
	return &MCTS{
		rootNode:  EmptyNode(),
		rootState: NewGameState(rng),
		timeLimit: timeLimit,
		iterLimit: opts.IterationLimit,
		rave:      *NewRaveTable(),
		rng:       rng,
		params:    params,
		log:       logger,
	}
}

func (m *MCTS) GetValue() float32 { return 1 - m.rootNode.GetValue() }

// GetActionValuePairs exposes every root child's action and current value
// estimate, useful for diagnostics and for building an opening book offline.
func (m *MCTS) GetActionValuePairs() []struct {
	Action Action
	Value  float32
} {
	out := make([]struct {
		Action Action
		Value  float32
	}, 0, len(m.rootNode.Children))
	for i := range m.rootNode.Children {
		out = append(out, struct {
			Action Action
			Value  float32
		}{m.rootNode.Children[i].Action, m.rootNode.Children[i].GetValue()})
	}
	return out
}

// setRoot advances the stored root to state, reusing the matching child
// subtree ply by ply when the observed move chain matches a line already
// explored, and falling back to a fresh node otherwise.
func (m *MCTS) setRoot(state *GameState) {
	for {
		color := m.rootState.CurrentPlayer
		lastBoard := m.rootState.Board[color]
		changedFields := state.Board[color].And(lastBoard.Not())
		action := ActionFromBitboard(changedFields)
		found := false
		for i := range m.rootNode.Children {
			if m.rootNode.Children[i].Action == action {
				m.rootState.DoAction(action)
				m.rootNode = m.rootNode.Children[i]
				found = true
				break
			}
		}
		if m.rootState.Ply == state.Ply {
			break
		}
		if !found {
			m.rootNode = EmptyNode()
			break
		}
	}
	m.rootState = state.Clone()
}

func (m *MCTS) doIterations(n int) {
	var al ActionList
	for i := 0; i < n; i++ {
		clone := m.rootState.Clone()
		m.rootNode.Iteration(&al, &clone, m.rng, &m.rave, m.params, true)
	}
}

// SearchAction runs MCTS from state until the configured time or
// iteration budget is exhausted and returns the best root action found.
func (m *MCTS) SearchAction(state *GameState) Action {
	startTime := time.Now()
	m.setRoot(state)
	var pv ActionList
	iterationsPerMs := 5.0
	iterations := 0
	searchStart := time.Now()

	for {
		pv.Clear()
		clone := m.rootState.Clone()
		m.rootNode.PV(&clone, &pv)

		var nextIterations int
		var stop bool
		if m.iterLimit == 0 {
			timeLeft := m.timeLimit - time.Since(startTime)
			m.log.Debug().
				Dur("time_left", timeLeft).
				Int("pv_len", pv.Size()).
				Int("iterations", iterations).
				Float32("value_pct", min32((1-m.rootNode.GetValue())*100, 100)).
				Str("pv", pv.String()).
				Msg("mcts iteration batch")
			next := (float64(timeLeft.Milliseconds()) / 6.0)
			if next > 5000 {
				next = 5000
			}
			next *= iterationsPerMs
			if next < 1 {
				next = 1
			}
			nextIterations = int(next)
			stop = timeLeft < 30*time.Millisecond
		} else {
			if iterations >= m.iterLimit {
				nextIterations, stop = 0, true
			} else {
				left := m.iterLimit - iterations
				m.log.Debug().
					Int("iterations_left", left).
					Int("pv_len", pv.Size()).
					Int("iterations", iterations).
					Float32("value_pct", min32((1-m.rootNode.GetValue())*100, 100)).
					Str("pv", pv.String()).
					Msg("mcts iteration batch")
				nextIterations = left / 2
				stop = nextIterations < 100
			}
		}
		if stop {
			break
		}
		m.doIterations(nextIterations)
		iterations += nextIterations
		elapsedUs := float64(time.Since(searchStart).Microseconds())
		if elapsedUs > 0 {
			iterationsPerMs = float64(iterations) / elapsedUs * 1000.0
		}
	}

	m.log.Info().
		Dur("elapsed", time.Since(startTime)).
		Float32("value_pct", min32((1-m.rootNode.GetValue())*100, 100)).
		Int("pv_len", pv.Size()).
		Int("iterations", iterations).
		Float64("iterations_per_sec", iterationsPerMs*1000.0).
		Str("pv", pv.String()).
		Msg("search_action finished")
	return m.rootNode.BestAction()
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func (m *MCTS) OnMoveRequest(state *GameState) Action { return m.SearchAction(state) }

func (m *MCTS) OnReset() {
	m.rootNode = EmptyNode()
	m.rave = *NewRaveTable()
}

func (m *MCTS) SetTimeLimit(limit time.Duration) {
	m.iterLimit = 0
	m.timeLimit = limit
}

func (m *MCTS) SetIterationLimit(limit int) {
	m.timeLimit = 0
	m.iterLimit = limit
}
