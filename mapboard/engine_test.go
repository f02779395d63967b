package mapboard_test

import (
	"testing"

	"github.com/shaobingxie/gochess/board"
	"github.com/shaobingxie/gochess/mapboard"
	"github.com/shaobingxie/gochess/piece"
	"github.com/shaobingxie/gochess/square"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAlgebraic(t *testing.T, text string) square.Square {
	t.Helper()
	s, ok := square.FromAlgebraic(text)
	require.True(t, ok)
	return s
}

func playStandard(t *testing.T, b board.Board, from, to string) board.Board {
	t.Helper()
	m := board.NewStandard(mustAlgebraic(t, from), mustAlgebraic(t, to))
	next, ok := b.Play(m)
	require.True(t, ok, "expected %s->%s to be legal from %s", from, to, b.FEN())
	return next
}

func TestStartingPositionMoveCount(t *testing.T) {
	b := mapboard.InitEngine()
	assert.Len(t, b.AllMoves(), 20)
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -", b.FEN())
}

func TestScholarsMate(t *testing.T) {
	b := mapboard.InitEngine()
	b = playStandard(t, b, "e2", "e4")
	b = playStandard(t, b, "e7", "e5")
	b = playStandard(t, b, "d1", "h5")
	b = playStandard(t, b, "b8", "c6")
	b = playStandard(t, b, "f1", "c4")
	b = playStandard(t, b, "g8", "f6")
	b = playStandard(t, b, "h5", "f7")

	assert.True(t, b.Check())
	assert.True(t, b.Checkmate())
}

func TestEnPassantCapture(t *testing.T) {
	const startFEN = "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6"
	b, ok := mapboard.DecodeEngine(startFEN)
	require.True(t, ok)

	next := playStandard(t, b, "e5", "f6")

	f5 := mustAlgebraic(t, "f5")
	f6 := mustAlgebraic(t, "f6")
	var sawPawnOnF5, sawWhitePawnOnF6 bool
	for _, pa := range next.AllPieces() {
		if pa.Square == f5 {
			sawPawnOnF5 = true
		}
		if pa.Square == f6 && pa.Piece == (piece.Piece{Color: piece.White, Kind: piece.Pawn}) {
			sawWhitePawnOnF6 = true
		}
	}
	assert.False(t, sawPawnOnF5)
	assert.True(t, sawWhitePawnOnF6)
}

func TestCastlingThroughCheckRejected(t *testing.T) {
	b, ok := mapboard.DecodeEngine("r3k2r/8/8/8/8/8/4r3/R3K2R w KQkq -")
	require.True(t, ok)

	_, ok = b.Play(board.NewCastle(board.Kingside))
	assert.False(t, ok)
}

func TestPromotionToQueen(t *testing.T) {
	b, ok := mapboard.DecodeEngine("8/P7/8/8/8/8/8/k6K w - -")
	require.True(t, ok)

	next := playStandard(t, b, "a7", "a8")

	a8 := mustAlgebraic(t, "a8")
	var sawQueenOnA8 bool
	for _, pa := range next.AllPieces() {
		if pa.Square == a8 && pa.Piece == (piece.Piece{Color: piece.White, Kind: piece.Queen}) {
			sawQueenOnA8 = true
		}
	}
	assert.True(t, sawQueenOnA8)
}

func TestStalemateIsNotCheckmate(t *testing.T) {
	b, ok := mapboard.DecodeEngine("7k/5Q2/6K1/8/8/8/8/8 b - -")
	require.True(t, ok)

	assert.False(t, b.Check())
	assert.Empty(t, b.AllMoves())
	assert.False(t, b.Checkmate())
}

func TestFENRoundTrip(t *testing.T) {
	for _, f := range []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -",
		"r3k2r/8/8/8/8/8/4r3/R3K2R w KQkq -",
	} {
		b, ok := mapboard.DecodeEngine(f)
		require.True(t, ok)
		assert.Equal(t, f, b.FEN())
	}
}
