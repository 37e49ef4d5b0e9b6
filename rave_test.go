package blokus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRaveTableAccumulates(t *testing.T) {
	rt := NewRaveTable()
	action := NewSetAction(100, 5)

	n, q := rt.GetValues(action, Blue)
	assert.Zero(t, n)
	assert.Zero(t, q)

	rt.AddValue(action, Blue, 0.75)
	rt.AddValue(action, Blue, 0.25)
	n, q = rt.GetValues(action, Blue)
	assert.EqualValues(t, 2, n)
	assert.InDelta(t, 1.0, q, 1e-6)

	// A different color's slot for the same action must stay untouched.
	n2, q2 := rt.GetValues(action, Red)
	assert.Zero(t, n2)
	assert.Zero(t, q2)
}

func TestRaveSkipIndexIsReservedPastLastSetIndex(t *testing.T) {
	rt := NewRaveTable()
	rt.AddValue(Skip, Green, 0.5)
	n, q := rt.GetValues(Skip, Green)
	assert.EqualValues(t, 1, n)
	assert.InDelta(t, 0.5, q, 1e-6)

	maxSet := NewSetAction(destinationsCount-1, shapesCount-1)
	nSet, qSet := rt.GetValues(maxSet, Green)
	assert.Zero(t, nSet)
	assert.Zero(t, qSet)
}
