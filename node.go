package blokus

import "math"

const (
	uctC       float32 = 0.0
	uctCBase   float32 = 220.0
	uctCFactor float32 = 1.4142135 // sqrt(2)
	raveBSq    float32 = 0.8
	fpuR       float32 = 0.1
)

func fln(x float32) float32  { return float32(math.Log(float64(x))) }
func fsqrt(x float32) float32 { return float32(math.Sqrt(float64(x))) }

// SearchParams carries the heuristic priors used when a node is first
// expanded, kept as an explicit value rather than a package-level global so
// a caller can tune or disable them per search.
type SearchParams struct {
	Weights [heuristicParamCount]float32
	Bias    float32
}

// Node is one position in the search tree: the action that led to it, its
// visit count and accumulated value, and its (possibly not yet expanded)
// children.
type Node struct {
	Children []Node
	Action   Action
	N        float32
	Q        float32
}

func EmptyNode() Node {
	return Node{Action: Skip}
}

func (n *Node) GetValue() float32 {
	if n.N > 0 {
		return n.Q / n.N
	}
	return float32(math.Inf(-1))
}

func (n *Node) getUCTValue(parentN, c float32, color Color, rave *RaveTable, fpuBase float32, isRoot bool) float32 {
	if isRoot {
		if n.N > 0 {
			return n.Q/n.N + c*fsqrt(fln(parentN)/n.N)
		}
		return float32(math.Inf(1))
	}
	raveN, raveQ := rave.GetValues(n.Action, color)
	var beta, raveValue float32
	if raveN > 0 {
		beta = raveN / (raveN + n.N + 4*raveBSq*raveN*n.N)
		raveValue = raveQ / raveN
	}
	if beta > 1 {
		beta = 1
	}
	if n.N > 0 {
		return (1-beta)*n.Q/n.N + beta*raveValue + n.Q/n.N + c*fsqrt(fln(parentN)/n.N)
	}
	return beta*raveValue + (1-beta)*fpuBase + c*fsqrt(fln(parentN))
}

func (n *Node) childWithMaxUCTValue(color Color, rave *RaveTable, isRoot bool) *Node {
	cAdjusted := uctC + uctCFactor*fln((1+n.N+uctCBase)/uctCBase)
	fpuBase := (n.N-n.Q)/n.N - fpuR
	best := 0
	bestValue := float32(math.Inf(-1))
	for i := range n.Children {
		value := n.Children[i].getUCTValue(n.N, cAdjusted, color, rave, fpuBase, isRoot)
		if value > bestValue {
			bestValue = value
			best = i
		}
	}
	return &n.Children[best]
}

func (n *Node) backpropagate(q float32) {
	n.N++
	n.Q += q
}

func (n *Node) expand(state *GameState, al *ActionList, params SearchParams) {
	state.GetPossibleActions(al)
	n.Children = make([]Node, 0, al.Size())
	if state.Ply < 32 && !al.Get(0).IsSkip() {
		expandNodeWithHeuristics(n, state, al, params)
	} else {
		for i := 0; i < al.Size(); i++ {
			n.Children = append(n.Children, Node{Action: al.Get(i)})
		}
	}
}

// Iteration runs one MCTS simulation starting at this node: select down to
// a leaf (expanding it lazily on its second visit), roll out from there,
// and backpropagate the result. Returns the value from the parent's
// perspective (1 - delta, since Blokus alternates the scoring side every
// ply).
func (n *Node) Iteration(al *ActionList, state *GameState, rng *Rng, rave *RaveTable, params SearchParams, isRoot bool) float32 {
	var delta float32
	if len(n.Children) == 0 {
		if !state.IsGameOver() {
			if n.N == 1 {
				n.expand(state, al, params)
			}
			clone := state.Clone()
			result := Playout(&clone, rng, rave)
			if state.Ply%2 == 0 {
				delta = 1 - result
			} else {
				delta = result
			}
		} else if n.N == 0 {
			result := state.GameResult() * state.CurrentPlayer.Previous().Team()
			n.Q = ResultToValue(result)
			n.N = 1
			delta = n.Q
		} else {
			delta = n.Q / n.N
		}
		n.backpropagate(delta)
		return 1 - delta
	}
	nextChild := n.childWithMaxUCTValue(state.CurrentPlayer, rave, isRoot)
	state.DoAction(nextChild.Action)
	delta = nextChild.Iteration(al, state, rng, rave, params, false)
	n.backpropagate(delta)
	return 1 - delta
}

// PV plays out the principal variation from this node into al, applying
// each action to state as it goes.
func (n *Node) PV(state *GameState, al *ActionList) {
	if len(n.Children) == 0 {
		return
	}
	child := n.BestChild()
	action := child.Action
	al.Push(action)
	state.DoAction(action)
	child.PV(state, al)
}

// BestChild picks the highest-value child, with a small penalty against
// playing the Monomino when a near-certain win is already in reach, so it
// is kept back for the last-piece bonus, matching the original's end-game
// heuristic.
func (n *Node) BestChild() *Node {
	value := 1 - n.GetValue()
	best := 0
	bestValue := float32(math.Inf(-1))
	for i := range n.Children {
		child := &n.Children[i]
		childValue := child.GetValue()
		if value > 0.99 && child.Action.IsSet() && child.Action.Shape() == 0 {
			childValue -= 0.05
		}
		if childValue > bestValue {
			bestValue = childValue
			best = i
		}
	}
	return &n.Children[best]
}

func (n *Node) BestAction() Action {
	if len(n.Children) == 0 {
		return Skip
	}
	return n.BestChild().Action
}
