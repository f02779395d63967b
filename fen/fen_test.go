package fen_test

import (
	"testing"

	"github.com/shaobingxie/gochess/board"
	"github.com/shaobingxie/gochess/fen"
	"github.com/shaobingxie/gochess/piece"
	"github.com/shaobingxie/gochess/square"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const startingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"

func TestDecodeStartingPosition(t *testing.T) {
	pos, ok := fen.Decode(startingFEN)
	require.True(t, ok)

	assert.Equal(t, piece.White, pos.ToPlay)
	assert.Equal(t, square.None, pos.EPTarget)
	assert.True(t, pos.Rights.Has(board.WhiteKingside|board.WhiteQueenside|board.BlackKingside|board.BlackQueenside))

	whiteRook, _ := piece.FromSymbol('R')
	a1, _ := square.FromAlgebraic("a1")
	assert.NotZero(t, pos.Bitboards[whiteRook.Index()]&a1.Bit())
}

func TestDecodeRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"not a fen at all",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq -",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq -",
	}
	for _, c := range cases {
		_, ok := fen.Decode(c)
		assert.False(t, ok, "expected rejection for %q", c)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	pos, ok := fen.Decode(startingFEN)
	require.True(t, ok)
	assert.Equal(t, startingFEN, fen.Encode(pos))
}

func TestEncodeDecodeEnPassantTarget(t *testing.T) {
	const withEP = "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6"
	pos, ok := fen.Decode(withEP)
	require.True(t, ok)
	f6, _ := square.FromAlgebraic("f6")
	assert.Equal(t, f6, pos.EPTarget)
	assert.Equal(t, withEP, fen.Encode(pos))
}

func TestEncodeNoCastlingRights(t *testing.T) {
	pos, ok := fen.Decode("8/P7/8/8/8/8/8/k6K w - -")
	require.True(t, ok)
	assert.Equal(t, board.CastlingRights(0), pos.Rights)
	assert.Contains(t, fen.Encode(pos), " - ")
}
