package blokus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCTSDeterministicUnderFixedSeedAndIterationLimit(t *testing.T) {
	newSearch := func() *MCTS {
		return NewMCTS(SearchOptions{Seed: 123, IterationLimit: 400})
	}
	state := NewGameState(NewRng(5))

	m1 := newSearch()
	a1 := m1.SearchAction(&state)

	m2 := newSearch()
	a2 := m2.SearchAction(&state)

	assert.Equal(t, a1, a2, "same seed and iteration budget must reproduce the same move")
}

func TestMCTSReturnsLegalAction(t *testing.T) {
	state := NewGameState(NewRng(9))
	var al ActionList
	state.GetPossibleActions(&al)

	m := NewMCTS(SearchOptions{Seed: 1, IterationLimit: 300})
	action := m.SearchAction(&state)

	if action.IsSkip() {
		assert.True(t, al.Get(0).IsSkip())
		return
	}
	found := false
	for i := 0; i < al.Size(); i++ {
		if al.Get(i) == action {
			found = true
			break
		}
	}
	assert.True(t, found)
}

func TestHeuristicPlayerReturnsLegalAction(t *testing.T) {
	state := NewGameState(NewRng(3))
	var al ActionList
	state.GetPossibleActions(&al)

	p := NewHeuristicPlayer()
	action := p.OnMoveRequest(&state)

	if al.Get(0).IsSkip() {
		assert.True(t, action.IsSkip())
		return
	}
	found := false
	for i := 0; i < al.Size(); i++ {
		if al.Get(i) == action {
			found = true
			break
		}
	}
	assert.True(t, found)
}

func TestRandomPlayerReturnsLegalAction(t *testing.T) {
	state := NewGameState(NewRng(4))
	var al ActionList
	state.GetPossibleActions(&al)

	p := NewRandomPlayer(11)
	action := p.OnMoveRequest(&state)

	found := false
	for i := 0; i < al.Size(); i++ {
		if al.Get(i) == action {
			found = true
			break
		}
	}
	require.True(t, found)
}
