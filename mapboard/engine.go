package mapboard

import (
	"github.com/shaobingxie/gochess/board"
	"github.com/shaobingxie/gochess/piece"
)

// Engine adapts Position to the board.Board interface.
type Engine struct {
	pos Position
}

// InitEngine returns the map-backed engine at the standard starting
// position.
func InitEngine() board.Board { return Engine{pos: Init()} }

// DecodeEngine parses a FEN string into a map-backed Board.
func DecodeEngine(text string) (board.Board, bool) {
	pos, ok := Decode(text)
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
