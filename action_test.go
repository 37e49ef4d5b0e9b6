package blokus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionSerializationRoundTrip(t *testing.T) {
	var al ActionList
	for _, fen := range testFENs {
		state, err := FromFEN(fen)
		require.NoError(t, err)
		state.GetPossibleActions(&al)
		for i := 0; i < al.Size()/10; i++ {
			action := al.Get(i)
			got, err := DeserializeAction(action.Serialize())
			require.NoError(t, err)
			assert.Equal(t, action, got)
		}
	}
}

func TestActionFromBitboardRoundTrip(t *testing.T) {
	var al ActionList
	for _, fen := range testFENs {
		state, err := FromFEN(fen)
		require.NoError(t, err)
		state.GetPossibleActions(&al)
		for i := 0; i < al.Size()/10; i++ {
			action := al.Get(i)
			if !action.IsSet() {
				continue
			}
			piece := WithPiece(action.Destination(), action.Shape())
			assert.Equal(t, action, ActionFromBitboard(piece))
		}
	}
}

func TestSkipSerialization(t *testing.T) {
	assert.Equal(t, "65535", Skip.Serialize())
	got, err := DeserializeAction("65535")
	require.NoError(t, err)
	assert.Equal(t, Skip, got)
	assert.True(t, got.IsSkip())
}

func TestActionFromBitboardEmptyIsSkip(t *testing.T) {
	assert.Equal(t, Skip, ActionFromBitboard(Bitboard{}))
}

func TestDeserializeActionInvalid(t *testing.T) {
	_, err := DeserializeAction("not-a-number")
	assert.Error(t, err)
}
