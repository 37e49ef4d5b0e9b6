package blokus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShiftRoundTrip(t *testing.T) {
	b := Bit(17).Or(Bit(200)).Or(Bit(399))
	for _, n := range []uint{1, 7, 21, 42, 63, 127, 128, 200} {
		shifted := b.Shl(n).Shr(n)
		assert.True(t, shifted.NotZero(), "shift by %d should not zero a mid-board bit", n)
	}
}

func TestShlShrAreInverseOnSingleBit(t *testing.T) {
	for _, n := range []uint{0, 1, 64, 127, 128, 129, 255, 256, 383} {
		b := Bit(50)
		assert.Equal(t, b, b.Shl(n).Shr(n), "Shl/Shr round trip failed for n=%d", n)
	}
}

func TestBitAndFlipBit(t *testing.T) {
	b := Bit(100)
	assert.True(t, b.NotZero())
	b.FlipBit(100)
	assert.True(t, b.IsZero())
}

func TestWithPieceMonomino(t *testing.T) {
	piece := WithPiece(42, 0)
	assert.EqualValues(t, 1, piece.CountOnes())
	assert.Equal(t, Bit(42), piece)
}

func TestNeighboursOfSingleBit(t *testing.T) {
	center := Bit(220) // x=10, y=10: comfortably off every board edge
	n := center.Neighbours()
	assert.EqualValues(t, 4, n.CountOnes())
	assert.True(t, n.And(center).IsZero())
}

func TestDiagonalNeighboursOfSingleBit(t *testing.T) {
	center := Bit(220)
	d := center.DiagonalNeighbours()
	assert.EqualValues(t, 4, d.CountOnes())
	assert.True(t, d.And(center.Neighbours()).IsZero())
}

func TestValidFieldsIsStable(t *testing.T) {
	assert.True(t, ValidFields.NotZero())
	assert.True(t, StartFields.And(ValidFields.Not()).IsZero(), "every start field must be a valid field")
}
