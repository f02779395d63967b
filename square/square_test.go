package square_test

import (
	"testing"

	"github.com/shaobingxie/gochess/square"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsOutOfRange(t *testing.T) {
	cases := []struct{ rank, file int }{
		{-1, 0}, {8, 0}, {0, -1}, {0, 8}, {8, 8},
	}
	for _, c := range cases {
		_, err := square.New(c.rank, c.file)
		assert.ErrorIs(t, err, square.ErrOutOfRange)
	}
}

func TestNewAndCoordRoundTrip(t *testing.T) {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq, err := square.New(rank, file)
			require.NoError(t, err)
			gotRank, gotFile := sq.Coord()
			assert.Equal(t, rank, gotRank)
			assert.Equal(t, file, gotFile)
		}
	}
}

func TestStringAndFromAlgebraic(t *testing.T) {
	sq, err := square.New(3, 4)
	require.NoError(t, err)
	assert.Equal(t, "e4", sq.String())

	parsed, ok := square.FromAlgebraic("e4")
	require.True(t, ok)
	assert.Equal(t, sq, parsed)

	_, ok = square.FromAlgebraic("-")
	require.True(t, ok)

	_, ok = square.FromAlgebraic("i9")
	assert.False(t, ok)

	_, ok = square.FromAlgebraic("e")
	assert.False(t, ok)
}
