// Package board declares the shared move and position contract that
// every engine implementation (bitboard, map-backed) satisfies, so that
// callers cannot distinguish one engine from the other through the
// public interface.
package board

import (
	"github.com/shaobingxie/gochess/piece"
	"github.com/shaobingxie/gochess/square"
)

// MoveKind distinguishes a standard source/destination move from a
// castle, matching the specification's tagged-union Move type.
type MoveKind int

const (
	Standard MoveKind = iota
	Castle
)

// CastleSide is Kingside or Queenside.
type CastleSide int

const (
	Kingside CastleSide = iota
	Queenside
)

// Move is the public move representation: a Standard(src, dst) move or
// a Castle(side) move. Src/Dst are meaningful only for Standard moves;
// Side is meaningful only for Castle moves.
type Move struct {
	Kind MoveKind
	Src  square.Square
	Dst  square.Square
	Side CastleSide
}

// NewStandard builds a Standard(src, dst) move.
func NewStandard(src, dst square.Square) Move {
	return Move{Kind: Standard, Src: src, Dst: dst}
}

// NewCastle builds a Castle(side) move.
func NewCastle(side CastleSide) Move {
	return Move{Kind: Castle, Side: side}
}

// CastlingRights packs the four independent castling booleans into a
// bitmask: white kingside, white queenside, black kingside, black
// queenside.
type CastlingRights int

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// Has reports whether every right in want is present in r.
func (r CastlingRights) Has(want CastlingRights) bool { return r&want == want }

// PieceAt pairs an occupied square with the piece standing on it, the
// element type returned by AllPieces.
type PieceAt struct {
	Square square.Square
	Piece  piece.Piece
}

// Board is the public contract shared by the bitboard and the
// map-backed reference engine. Every value is immutable: Play returns a
// new Board rather than mutating the receiver, and the zero value of
// neither implementation is meaningful without going through Init or
// Decode.
type Board interface {
	// ToPlay returns the color whose turn it is to move.
	ToPlay() piece.Color
	// AllPieces returns every occupied square and the piece on it, in
	// unspecified but deterministic order for a given occupancy.
	AllPieces() []PieceAt
	// AllMoves enumerates every legal move for the side to move.
	AllMoves() []Move
	// Play applies m, returning the resulting Board. It reports false
	// if m is illegal (including moves that leave the mover's own king
	// attacked); the receiver is never mutated.
	Play(m Move) (Board, bool)
	// Check reports whether the side to move's king is attacked.
	Check() bool
	// Checkmate reports whether the side to move is in check with no
	// legal moves.
	Checkmate() bool
	// FEN encodes the board's current state.
	FEN() string
}
