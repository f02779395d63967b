package chess_test

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shaobingxie/gochess/board"
	"github.com/shaobingxie/gochess/chess"
	"github.com/stretchr/testify/require"
)

// sortedPieces returns b's pieces sorted by square, so two boards with
// identical occupancy compare equal regardless of map iteration order.
func sortedPieces(b board.Board) []board.PieceAt {
	pieces := b.AllPieces()
	sort.Slice(pieces, func(i, j int) bool { return pieces[i].Square < pieces[j].Square })
	return pieces
}

// TestFENRoundTripPreservesBoard checks the invariant that decoding a
// board's own FEN encoding yields an equal board in piece placement,
// side to move, and FEN text, for both engines.
func TestFENRoundTripPreservesBoard(t *testing.T) {
	for _, e := range []chess.Engine{chess.Bitboard, chess.MapBacked} {
		b := chess.Init(e)
		b, ok := b.Play(board.NewStandard(mustSquare(t, "e2"), mustSquare(t, "e4")))
		require.True(t, ok)

		roundTripped, ok := chess.Decode(e, chess.Encode(b))
		require.True(t, ok)

		if diff := cmp.Diff(sortedPieces(b), sortedPieces(roundTripped)); diff != "" {
			t.Errorf("piece placement changed across FEN round-trip (-original +round-tripped):\n%s", diff)
		}
		if diff := cmp.Diff(b.ToPlay(), roundTripped.ToPlay()); diff != "" {
			t.Errorf("side to move changed across FEN round-trip: %s", diff)
		}
		if diff := cmp.Diff(chess.Encode(b), chess.Encode(roundTripped)); diff != "" {
			t.Errorf("FEN text changed across round-trip: %s", diff)
		}
	}
}

// TestCheckmateImpliesCheckAndNoMoves is the checkmate invariant from
// the specification's testable properties.
func TestCheckmateImpliesCheckAndNoMoves(t *testing.T) {
	for _, e := range []chess.Engine{chess.Bitboard, chess.MapBacked} {
		b := chess.Init(e)
		b, ok := b.Play(board.NewStandard(mustSquare(t, "e2"), mustSquare(t, "e4")))
		require.True(t, ok)
		b, ok = b.Play(board.NewStandard(mustSquare(t, "e7"), mustSquare(t, "e5")))
		require.True(t, ok)
		b, ok = b.Play(board.NewStandard(mustSquare(t, "d1"), mustSquare(t, "h5")))
		require.True(t, ok)
		b, ok = b.Play(board.NewStandard(mustSquare(t, "b8"), mustSquare(t, "c6")))
		require.True(t, ok)
		b, ok = b.Play(board.NewStandard(mustSquare(t, "f1"), mustSquare(t, "c4")))
		require.True(t, ok)
		b, ok = b.Play(board.NewStandard(mustSquare(t, "g8"), mustSquare(t, "f6")))
		require.True(t, ok)
		b, ok = b.Play(board.NewStandard(mustSquare(t, "h5"), mustSquare(t, "f7")))
		require.True(t, ok)

		if !b.Checkmate() {
			t.Fatalf("engine %v: expected checkmate after scholar's mate", e)
		}
		if !b.Check() {
			t.Errorf("engine %v: checkmate implies check", e)
		}
		if len(b.AllMoves()) != 0 {
			t.Errorf("engine %v: checkmate implies no legal moves, got %d", e, len(b.AllMoves()))
		}
	}
}
