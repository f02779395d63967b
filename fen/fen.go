// Package fen implements Forsyth-Edwards Notation decoding and encoding
// against a neutral twelve-bitboard array, shared by the bitboard and
// map-backed engines, following the style of the teacher's fen package.
// Unlike the teacher, Decode never panics: a syntactically invalid FEN
// yields (Position{}, false).
package fen

import (
	"regexp"
	"strings"

	"github.com/shaobingxie/gochess/board"
	"github.com/shaobingxie/gochess/internal/bitutil"
	"github.com/shaobingxie/gochess/piece"
	"github.com/shaobingxie/gochess/square"
)

// Position is the neutral, engine-agnostic decoding of a FEN string: one
// bitboard per of the 12 colored pieces (indexed by piece.Index), side
// to move, castling rights, and an optional en-passant target.
type Position struct {
	Bitboards [12]uint64
	ToPlay    piece.Color
	Rights    board.CastlingRights
	EPTarget  square.Square // square.None if absent
}

// grammar matches the four whitespace-separated FEN fields this core
// reads, case-insensitively. Trailing fields (halfmove/fullmove
// counters) are rejected, matching the source's strict regex anchor.
var grammar = regexp.MustCompile(`(?i)^([pnbrqk1-8]+/){7}[pnbrqk1-8]+\s+(w|b)\s+([kq]+|-)\s+([a-h][1-8]|-)$`)

// Decode parses text and reports whether it matched the FEN grammar.
func Decode(text string) (Position, bool) {
	text = strings.TrimSpace(text)
	if !grammar.MatchString(text) {
		return Position{}, false
	}
	fields := strings.Fields(text)
	if len(fields) != 4 {
		return Position{}, false
	}

	bitboards, ok := decodePlacement(fields[0])
	if !ok {
		return Position{}, false
	}

	toPlay := piece.White
	if strings.EqualFold(fields[1], "b") {
		toPlay = piece.Black
	}

	rights := decodeRights(fields[2])

	epTarget := square.None
	if fields[3] != "-" {
		sq, ok := square.FromAlgebraic(strings.ToLower(fields[3]))
		if !ok {
			return Position{}, false
		}
		epTarget = sq
	}

	return Position{
		Bitboards: bitboards,
		ToPlay:    toPlay,
		Rights:    rights,
		EPTarget:  epTarget,
	}, true
}

// decodePlacement reads a placement field, rank 7 down to rank 0, file 0
// across to 7, following the teacher's ToBitboardArray.
func decodePlacement(field string) ([12]uint64, bool) {
	var bitboards [12]uint64
	sq := 56 // a8, per the rank7-to-rank0 reading order.

	for i := 0; i < len(field); i++ {
		c := field[i]
		switch {
		case c == '/':
			sq -= 16
		case c >= '1' && c <= '8':
			sq += int(c - '0')
		default:
			p, ok := piece.FromSymbol(c)
			if !ok {
				return [12]uint64{}, false
			}
			if sq < 0 || sq > 63 {
				return [12]uint64{}, false
			}
			bitboards[p.Index()] |= 1 << uint(sq)
			sq++
		}
	}
	return bitboards, true
}

func decodeRights(field string) board.CastlingRights {
	if field == "-" {
		return 0
	}
	var rights board.CastlingRights
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			rights |= board.WhiteKingside
		case 'Q':
			rights |= board.WhiteQueenside
		case 'k':
			rights |= board.BlackKingside
		case 'q':
			rights |= board.BlackQueenside
		}
	}
	return rights
}

var pieceSymbols = [12]byte{
	'P', 'N', 'B', 'R', 'Q', 'K',
	'p', 'n', 'b', 'r', 'q', 'k',
}

// Encode renders p as a FEN string, coalescing empty-square runs to a
// single decimal digit per the grammar.
func Encode(p Position) string {
	var board [8][8]byte
	for kind, bb := range p.Bitboards {
		bitutil.Fold(bb, func(sq int) bool {
			board[sq/8][sq%8] = pieceSymbols[kind]
			return true
		})
	}

	var placement strings.Builder
	placement.Grow(64)
	for rank := 7; rank >= 0; rank-- {
		var empties byte
		for file := 0; file < 8; file++ {
			c := board[rank][file]
			if c == 0 {
				empties++
				continue
			}
			if empties > 0 {
				placement.WriteByte('0' + empties)
				empties = 0
			}
			placement.WriteByte(c)
		}
		if empties > 0 {
			placement.WriteByte('0' + empties)
		}
		if rank != 0 {
			placement.WriteByte('/')
		}
	}

	toPlay := "w"
	if p.ToPlay == piece.Black {
		toPlay = "b"
	}

	rights := encodeRights(p.Rights)

	epTarget := "-"
	if p.EPTarget != square.None {
		epTarget = p.EPTarget.String()
	}

	return strings.Join([]string{placement.String(), toPlay, rights, epTarget}, " ")
}

func encodeRights(rights board.CastlingRights) string {
	var b strings.Builder
	if rights.Has(board.WhiteKingside) {
		b.WriteByte('K')
	}
	if rights.Has(board.WhiteQueenside) {
		b.WriteByte('Q')
	}
	if rights.Has(board.BlackKingside) {
		b.WriteByte('k')
	}
	if rights.Has(board.BlackQueenside) {
		b.WriteByte('q')
	}
	if b.Len() == 0 {
		return "-"
	}
	return b.String()
}
