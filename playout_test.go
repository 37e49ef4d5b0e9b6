package blokus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultToValue(t *testing.T) {
	assert.InDelta(t, 0.5, ResultToValue(0), 1e-6)
	assert.Greater(t, ResultToValue(10), float32(0.999))
	assert.Less(t, ResultToValue(-10), float32(0.001))
	assert.Greater(t, ResultToValue(200), ResultToValue(10))
	assert.Less(t, ResultToValue(-200), ResultToValue(-10))
}

// TestRandomActionAlwaysLegal ports the original's test_random_actions:
// every sampled action must appear in the real legal move list, and
// repeatedly consuming the legal list down to empty must terminate.
func TestRandomActionAlwaysLegal(t *testing.T) {
	var al ActionList
	rng := NewRng(7)
	for game := 0; game < 20; game++ {
		state := NewGameState(rng)
		state.GetPossibleActions(&al)
		for i := 0; i < 50; i++ {
			action := RandomAction(&state, rng, false)
			found := false
			for j := 0; j < al.Size(); j++ {
				if al.Get(j) == action {
					found = true
					break
				}
			}
			require.True(t, found, "RandomAction produced an action outside GetPossibleActions's list")
		}

		var action Action
		for al.Size() > 0 {
			action = RandomAction(&state, rng, false)
			for j := 0; j < al.Size(); j++ {
				if al.Get(j) == action {
					al.Swap(j, al.Size()-1)
					al.Truncate(al.Size() - 1)
					break
				}
			}
		}
		state.DoAction(action)
	}
}

func TestPlayoutTerminates(t *testing.T) {
	rng := NewRng(99)
	rave := NewRaveTable()
	state := NewGameState(rng)
	value := Playout(&state, rng, rave)
	assert.True(t, state.IsGameOver())
	assert.GreaterOrEqual(t, value, float32(0))
	assert.LessOrEqual(t, value, float32(1))
}
