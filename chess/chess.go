// Package chess is the public facade: it selects a concrete engine
// (bitboard by default) behind the board.Board interface, mirroring
// the teacher's top-level chego package which re-exports the engine's
// public operations for callers that don't care which implementation
// backs a Board.
package chess

import (
	"github.com/shaobingxie/gochess/bitboard"
	"github.com/shaobingxie/gochess/board"
	"github.com/shaobingxie/gochess/mapboard"
)

// Engine selects which concrete implementation backs a Board.
type Engine int

const (
	// Bitboard is the performance-oriented default.
	Bitboard Engine = iota
	// MapBacked is the auditable reference implementation.
	MapBacked
)

// Init materialises the standard starting position using the given
// engine.
func Init(e Engine) board.Board {
	switch e {
	case MapBacked:
		return mapboard.InitEngine()
	default:
		return bitboard.Init()
	}
}

// Decode parses a FEN string into a Board backed by the given engine.
// It reports false on any syntactic mismatch.
func Decode(e Engine, text string) (board.Board, bool) {
	switch e {
	case MapBacked:
		return mapboard.DecodeEngine(text)
	default:
		return bitboard.Decode(text)
	}
}

// Encode renders b as a FEN string; it delegates to the Board's own
// FEN method since both engines encode identically.
func Encode(b board.Board) string { return b.FEN() }
