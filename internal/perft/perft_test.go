package perft_test

import (
	"testing"

	"github.com/shaobingxie/gochess/bitboard"
	"github.com/shaobingxie/gochess/internal/perft"
	"github.com/shaobingxie/gochess/mapboard"
	"github.com/stretchr/testify/assert"
)

// Known perft node counts from the standard starting position.
// See https://www.chessprogramming.org/Perft_Results
var startingPerft = []int{1, 20, 400}

func TestBitboardPerftFromStartingPosition(t *testing.T) {
	b := bitboard.Init()
	for depth, want := range startingPerft {
		assert.Equal(t, want, perft.Count(b, depth), "depth %d", depth)
	}
}

func TestMapboardPerftFromStartingPosition(t *testing.T) {
	b := mapboard.InitEngine()
	for depth, want := range startingPerft {
		assert.Equal(t, want, perft.Count(b, depth), "depth %d", depth)
	}
}
