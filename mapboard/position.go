// Package mapboard implements the board.Board contract with a
// straightforward map[square.Square]piece.Piece representation: the
// reference engine used to define semantics, auditable at the cost of
// the bitboard engine's performance. It mirrors the teacher's
// game.Position state (active color, castling rights, en-passant
// target) but replaces the bitboard occupancy with a square map.
package mapboard

import (
	"sort"

	"github.com/shaobingxie/gochess/board"
	"github.com/shaobingxie/gochess/fen"
	"github.com/shaobingxie/gochess/piece"
	"github.com/shaobingxie/gochess/square"
)

// Position is the map-backed engine's internal state.
type Position struct {
	pieces   map[square.Square]piece.Piece
	toPlay   piece.Color
	rights   board.CastlingRights
	epTarget square.Square
}

// Init builds the standard starting position.
func Init() Position {
	p, ok := Decode("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	if !ok {
		panic("mapboard: starting FEN must decode")
	}
	return p
}

// Decode parses a FEN string into a Position.
func Decode(text string) (Position, bool) {
	raw, ok := fen.Decode(text)
	if !ok {
		return Position{}, false
	}
	pieces := map[square.Square]piece.Piece{}
	for idx, bb := range raw.Bitboards {
		pc := piece.FromIndex(idx)
		for sqIdx := 0; sqIdx < 64; sqIdx++ {
			if bb&(uint64(1)<<uint(sqIdx)) != 0 {
				s, _ := square.New(sqIdx/8, sqIdx%8)
				pieces[s] = pc
			}
		}
	}
	return Position{
		pieces:   pieces,
		toPlay:   raw.ToPlay,
		rights:   raw.Rights,
		epTarget: raw.EPTarget,
	}, true
}

// FEN encodes the position.
func (p Position) FEN() string {
	var bitboards [12]uint64
	for s, pc := range p.pieces {
		bitboards[pc.Index()] |= s.Bit()
	}
	return fen.Encode(fen.Position{
		Bitboards: bitboards,
		ToPlay:    p.toPlay,
		Rights:    p.rights,
		EPTarget:  p.epTarget,
	})
}

// ToPlay returns the color to move.
func (p Position) ToPlay() piece.Color { return p.toPlay }

// AllPieces returns every occupied square paired with its piece, sorted
// by square so repeated calls on the same occupancy return the same
// order despite Go's randomized map iteration.
func (p Position) AllPieces() []board.PieceAt {
	out := make([]board.PieceAt, 0, len(p.pieces))
	for s, pc := range p.pieces {
		out = append(out, board.PieceAt{Square: s, Piece: pc})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Square < out[j].Square })
	return out
}

func (p Position) clone() Position {
	next := Position{
		pieces:   make(map[square.Square]piece.Piece, len(p.pieces)),
		toPlay:   p.toPlay,
		rights:   p.rights,
		epTarget: p.epTarget,
	}
	for s, pc := range p.pieces {
		next.pieces[s] = pc
	}
	return next
}
