// Package bitboard implements the board.Board contract over twelve
// 64-bit occupancy masks, with branch-light sliding-piece attack
// generation and in-place-style transforms, following the structure of
// the teacher's movegen and position packages.
package bitboard

import (
	"github.com/shaobingxie/gochess/board"
	"github.com/shaobingxie/gochess/piece"
)

// Engine adapts Position to the board.Board interface.
type Engine struct {
	pos Position
}

// Init returns the bitboard engine at the standard starting position.
func Init() board.Board { return Engine{pos: initPosition()} }

// Decode parses a FEN string into a bitboard-backed Board.
func Decode(text string) (board.Board, bool) {
	pos, ok := decodePosition(text)
	if !ok {
		return nil, false
	}
	return Engine{pos: pos}, true
}

func (e Engine) ToPlay() piece.Color        { return e.pos.ToPlay() }
func (e Engine) AllPieces() []board.PieceAt { return e.pos.AllPieces() }
func (e Engine) AllMoves() []board.Move     { return e.pos.AllMoves() }
func (e Engine) Check() bool                { return e.pos.Check() }
func (e Engine) Checkmate() bool            { return e.pos.Checkmate() }
func (e Engine) FEN() string                { return e.pos.FEN() }

func (e Engine) Play(m board.Move) (board.Board, bool) {
	next, ok := e.pos.Play(m)
	if !ok {
		return nil, false
	}
	return Engine{pos: next}, true
}
