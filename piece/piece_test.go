package piece_test

import (
	"testing"

	"github.com/shaobingxie/gochess/piece"
	"github.com/stretchr/testify/assert"
)

func TestIndexRoundTrip(t *testing.T) {
	for c := piece.White; c <= piece.Black; c++ {
		for k := piece.Pawn; k <= piece.King; k++ {
			p := piece.Piece{Color: c, Kind: k}
			assert.Equal(t, p, piece.FromIndex(p.Index()))
		}
	}
}

func TestSymbolRoundTrip(t *testing.T) {
	for c := piece.White; c <= piece.Black; c++ {
		for k := piece.Pawn; k <= piece.King; k++ {
			p := piece.Piece{Color: c, Kind: k}
			parsed, ok := piece.FromSymbol(p.Symbol())
			assert.True(t, ok)
			assert.Equal(t, p, parsed)
		}
	}
}

func TestFromSymbolRejectsUnknown(t *testing.T) {
	_, ok := piece.FromSymbol('x')
	assert.False(t, ok)
}
