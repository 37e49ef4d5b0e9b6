package blokus

import (
	"math"
	"time"
)

// heuristicParamCount is the number of tunable weights in a heuristic
// placement evaluation, one per term accumulated in expandNodeWithHeuristics.
const heuristicParamCount = 11

// searchSeedingVisits is the pseudo-visit count given to a heuristically
// seeded child so that early UCT comparisons are not swamped by a handful
// of real rollouts.
const searchSeedingVisits float32 = 18.0

// DefaultHeuristicWeights and DefaultHeuristicBias are a tuned parameter
// set for expandNodeWithHeuristics, carried over as the engine's built-in
// defaults.
var DefaultHeuristicWeights = [heuristicParamCount]float32{
	0.06481217,
	0.03788412,
	0.0128481835,
	0.034261946,
	0.014906124,
	0.03253359,
	0.02333225,
	0.027018376,
	0.026275534,
	0.01905919,
	0.027598862,
}

const DefaultHeuristicBias float32 = 0.052122455

// DefaultSearchParams bundles the tuned weights and bias for passing into
// MCTS node expansion.
var DefaultSearchParams = SearchParams{Weights: DefaultHeuristicWeights, Bias: DefaultHeuristicBias}

// calculatePlacementFields finds, for each color, the corners where it is
// legally allowed to place its next piece.
func calculatePlacementFields(state *GameState, occupied Bitboard) [4]Bitboard {
	var placementFields [4]Bitboard
	for color := 0; color < 4; color++ {
		currentColorFields := state.Board[color]
		otherColorsFields := occupied.And(currentColorFields.Not())
		legalFields := occupied.Or(currentColorFields.Neighbours()).Not().And(ValidFields)
		if state.Ply > 3 {
			placementFields[color] = currentColorFields.DiagonalNeighbours().And(legalFields)
		} else {
			placementFields[color] = StartFields.And(otherColorsFields.Not())
		}
	}
	return placementFields
}

// estimateReachableFields flood-fills a fixed four steps out from each
// color's placement corners to approximate the area it could still claim.
func estimateReachableFields(state *GameState, placementFields [4]Bitboard, occupied Bitboard) [4]Bitboard {
	var reachableFields [4]Bitboard
	for color := 0; color < 4; color++ {
		reachable := placementFields[color]
		unreachable := state.Board[color].Neighbours().Or(occupied)
		for i := 0; i < 4; i++ {
			reachable = reachable.Or(reachable.Neighbours().And(unreachable.Not()))
		}
		reachableFields[color] = reachable
	}
	return reachableFields
}

// calculateLeaks finds fields that would let a color break into territory
// it otherwise could not reach.
func calculateLeaks(state *GameState, placementFields, reachableFields [4]Bitboard, occupied Bitboard) [4]Bitboard {
	var leaks [4]Bitboard
	for color := 0; color < 4; color++ {
		inner := placementFields[color].
			And(occupied.Neighbours()).
			And(occupied.Or(state.Board[color].Neighbours()).Not())
		leaks[color] = reachableFields[color].
			And(inner.DiagonalNeighbours()).
			And(occupied.Neighbours())
	}
	return leaks
}

// expandNodeWithHeuristics populates node's children with a heuristic
// estimate of each legal action's value, seeded with searchSeedingVisits
// pseudo-visits so that MCTS selection has useful priors before any real
// rollout passes through them.
func expandNodeWithHeuristics(node *Node, state *GameState, al *ActionList, params SearchParams) {
	currentColor := int(state.CurrentPlayer)
	nextOpponentColor := (currentColor + 1) & 0b11
	secondColor := (currentColor + 2) & 0b11
	lastOpponentColor := (currentColor + 3) & 0b11
	occupied := state.OccupiedFields()

	placementFields := calculatePlacementFields(state, occupied)
	reachableFields := estimateReachableFields(state, placementFields, occupied)
	leaks := calculateLeaks(state, placementFields, reachableFields, occupied)

	opponentPlacementFields := placementFields[nextOpponentColor].Or(placementFields[lastOpponentColor])
	opponentReachableFields := reachableFields[nextOpponentColor].Or(reachableFields[lastOpponentColor])

	notOwn := occupied.And(state.Board[currentColor].Not())
	k := reachableFields[currentColor].
		And(notOwn.Neighbours()).
		And(notOwn.DiagonalNeighbours().Not())

	w := params.Weights
	for i := 0; i < al.Size(); i++ {
		action := al.Get(i)
		shape := action.Shape()
		destination := action.Destination()
		pieceType := PieceTypeFromShape(shape)
		pieceSize := pieceType.Size()
		if state.Ply < 8 && pieceSize < 5 {
			continue
		}
		piece := WithPiece(destination, shape)
		value := float32(pieceSize) * w[0]

		value += float32(piece.And(leaks[currentColor]).CountOnes()) * w[1]
		value += float32(piece.And(leaks[currentColor].DiagonalNeighbours()).And(opponentReachableFields.Or(occupied).Not()).CountOnes()) * w[2]
		value += float32(piece.And(leaks[nextOpponentColor]).DiagonalNeighbours().CountOnes()) * w[3]
		value += float32(piece.And(leaks[lastOpponentColor]).DiagonalNeighbours().CountOnes()) * w[4]

		value += float32(piece.And(opponentPlacementFields).CountOnes()) * w[5]

		newPlacementFields := piece.DiagonalNeighbours().
			And(piece.Or(state.Board[currentColor]).Neighbours().Not()).
			And(occupied.Not())

		value += float32(newPlacementFields.And(reachableFields[nextOpponentColor]).CountOnes()) * w[6]
		value += float32(newPlacementFields.And(reachableFields[lastOpponentColor]).CountOnes()) * w[7]
		value += float32(newPlacementFields.CountOnes()) * w[8]
		value += float32(piece.And(placementFields[secondColor]).CountOnes()) * w[9]
		value += float32(piece.And(k).CountOnes()) * w[10]

		node.Children = append(node.Children, Node{
			Action: action,
			N:      searchSeedingVisits,
			Q:      (value + params.Bias) * searchSeedingVisits,
		})
	}
}

// HeuristicPlayer picks a move by heuristic evaluation alone, with no tree
// search - useful as a fast opponent or as the rollout policy's sanity
// check during development.
type HeuristicPlayer struct {
	al     ActionList
	params SearchParams
}

func NewHeuristicPlayer() *HeuristicPlayer {
	return &HeuristicPlayer{params: DefaultSearchParams}
}

func (p *HeuristicPlayer) OnMoveRequest(state *GameState) Action {
	var node Node
	state.GetPossibleActions(&p.al)
	if p.al.Get(0).IsSkip() {
		return Skip
	}
	node.Children = make([]Node, 0, p.al.Size())
	expandNodeWithHeuristics(&node, state, &p.al, p.params)
	bestAction := p.al.Get(0)
	bestValue := float32(math.Inf(-1))
	for i := range node.Children {
		v := node.Children[i].GetValue()
		if v > bestValue {
			bestValue = v
			bestAction = node.Children[i].Action
		}
	}
	return bestAction
}

func (p *HeuristicPlayer) OnReset()                 {}
func (p *HeuristicPlayer) SetTimeLimit(_ time.Duration) {}

var _ Player = (*HeuristicPlayer)(nil)
