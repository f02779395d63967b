package mapboard

import (
	"sort"

	"github.com/shaobingxie/gochess/board"
	"github.com/shaobingxie/gochess/piece"
	"github.com/shaobingxie/gochess/square"
)

type castleSquares struct {
	right            board.CastlingRights
	kingFrom, kingTo square.Square
	rookFrom, rookTo square.Square
	betweenSquares   []square.Square
	traversal        []square.Square
}

func sq(rank, file int) square.Square {
	s, _ := square.New(rank, file)
	return s
}

var castlingTable = map[piece.Color]map[board.CastleSide]castleSquares{
	piece.White: {
		board.Kingside: {
			right: board.WhiteKingside,
			kingFrom: sq(0, 4), kingTo: sq(0, 6),
			rookFrom: sq(0, 7), rookTo: sq(0, 5),
			betweenSquares: []square.Square{sq(0, 5), sq(0, 6)},
			traversal:      []square.Square{sq(0, 4), sq(0, 5), sq(0, 6)},
		},
		board.Queenside: {
			right: board.WhiteQueenside,
			kingFrom: sq(0, 4), kingTo: sq(0, 2),
			rookFrom: sq(0, 0), rookTo: sq(0, 3),
			betweenSquares: []square.Square{sq(0, 1), sq(0, 2), sq(0, 3)},
			traversal:      []square.Square{sq(0, 4), sq(0, 3), sq(0, 2)},
		},
	},
	piece.Black: {
		board.Kingside: {
			right: board.BlackKingside,
			kingFrom: sq(7, 4), kingTo: sq(7, 6),
			rookFrom: sq(7, 7), rookTo: sq(7, 5),
			betweenSquares: []square.Square{sq(7, 5), sq(7, 6)},
			traversal:      []square.Square{sq(7, 4), sq(7, 5), sq(7, 6)},
		},
		board.Queenside: {
			right: board.BlackQueenside,
			kingFrom: sq(7, 4), kingTo: sq(7, 2),
			rookFrom: sq(7, 0), rookTo: sq(7, 3),
			betweenSquares: []square.Square{sq(7, 1), sq(7, 2), sq(7, 3)},
			traversal:      []square.Square{sq(7, 4), sq(7, 3), sq(7, 2)},
		},
	},
}

var rookHomeRights = map[square.Square]board.CastlingRights{
	sq(0, 0): board.WhiteQueenside,
	sq(0, 7): board.WhiteKingside,
	sq(7, 0): board.BlackQueenside,
	sq(7, 7): board.BlackKingside,
}

// Check reports whether the side to move's king is attacked.
func (p Position) Check() bool {
	kingSq, ok := p.findKing(p.toPlay)
	if !ok {
		return false
	}
	return p.isAttacked(kingSq, p.toPlay.Other())
}

func (p Position) findKing(c piece.Color) (square.Square, bool) {
	for s, pc := range p.pieces {
		if pc.Color == c && pc.Kind == piece.King {
			return s, true
		}
	}
	return square.None, false
}

func (p Position) isValid(m board.Move) bool {
	switch m.Kind {
	case board.Standard:
		pc, ok := p.pieces[m.Src]
		if !ok || pc.Color != p.toPlay {
			return false
		}
		return p.moveTargets(m.Src)[m.Dst]
	case board.Castle:
		return p.canCastle(m.Side)
	}
	return false
}

func (p Position) canCastle(side board.CastleSide) bool {
	c := castlingTable[p.toPlay][side]
	if !p.rights.Has(c.right) {
		return false
	}
	for _, s := range c.betweenSquares {
		if _, occ := p.pieces[s]; occ {
			return false
		}
	}
	enemy := p.toPlay.Other()
	for _, s := range c.traversal {
		if p.isAttacked(s, enemy) {
			return false
		}
	}
	return true
}

func (p Position) execute(m board.Move) Position {
	switch m.Kind {
	case board.Standard:
		return p.executeStandard(m.Src, m.Dst)
	case board.Castle:
		return p.executeCastle(m.Side)
	}
	return p
}

func (p Position) executeStandard(src, dst square.Square) Position {
	next := p.clone()
	mover := next.pieces[src]

	if _, captured := next.pieces[dst]; captured {
		next.clearRightsOnHomeSquare(dst)
	}

	if mover.Kind == piece.Pawn && dst == p.epTarget && p.epTarget != square.None {
		dr := -1
		if mover.Color == piece.Black {
			dr = 1
		}
		rank, file := dst.Coord()
		capturedSq, _ := square.New(rank+dr, file)
		delete(next.pieces, capturedSq)
	}

	delete(next.pieces, src)

	placed := mover
	backRank := 7
	if mover.Color == piece.Black {
		backRank = 0
	}
	if mover.Kind == piece.Pawn && dst.Rank() == backRank {
		placed = piece.Piece{Color: mover.Color, Kind: piece.Queen}
	}
	next.pieces[dst] = placed

	next.epTarget = square.None
	if mover.Kind == piece.Pawn {
		rankDelta := dst.Rank() - src.Rank()
		if rankDelta == 2 {
			next.epTarget, _ = square.New(src.Rank()+1, src.File())
		} else if rankDelta == -2 {
			next.epTarget, _ = square.New(src.Rank()-1, src.File())
		}
	}

	if mover.Kind == piece.King {
		if mover.Color == piece.White {
			next.rights &^= board.WhiteKingside | board.WhiteQueenside
		} else {
			next.rights &^= board.BlackKingside | board.BlackQueenside
		}
	}
	if mover.Kind == piece.Rook {
		next.clearRightsOnHomeSquare(src)
	}

	return next
}

// clearRightsOnHomeSquare clears whichever castling right is keyed to
// sq being a rook's home square, regardless of whether the square was
// vacated by the rook's own move or by an enemy capturing it there:
// this applies the captured-rook fix the bitboard engine applies,
// correcting the map engine's historical mover-keyed bug.
func (p *Position) clearRightsOnHomeSquare(s square.Square) {
	if right, ok := rookHomeRights[s]; ok {
		p.rights &^= right
	}
}

func (p Position) executeCastle(side board.CastleSide) Position {
	c := castlingTable[p.toPlay][side]
	next := p.executeStandard(c.rookFrom, c.rookTo)
	next = next.executeStandard(c.kingFrom, c.kingTo)
	return next
}

// Play validates m, executes it, and rejects the result if it leaves
// the mover's own king attacked.
func (p Position) Play(m board.Move) (Position, bool) {
	if !p.isValid(m) {
		return Position{}, false
	}
	next := p.execute(m)
	mover := p.toPlay
	kingSq, ok := next.findKing(mover)
	if ok && next.isAttacked(kingSq, mover.Other()) {
		return Position{}, false
	}
	next.toPlay = mover.Other()
	return next, true
}

// AllMoves enumerates every legal move for the side to move, in
// deterministic square order: Go's map iteration order is randomized
// per run, so both the source squares and each source's destinations
// are sorted before appending moves.
func (p Position) AllMoves() []board.Move {
	var moves []board.Move
	for _, pa := range p.AllPieces() {
		if pa.Piece.Color != p.toPlay {
			continue
		}
		for _, dst := range sortedSquares(p.moveTargets(pa.Square)) {
			m := board.NewStandard(pa.Square, dst)
			if _, ok := p.Play(m); ok {
				moves = append(moves, m)
			}
		}
	}
	for _, side := range []board.CastleSide{board.Kingside, board.Queenside} {
		m := board.NewCastle(side)
		if _, ok := p.Play(m); ok {
			moves = append(moves, m)
		}
	}
	return moves
}

// sortedSquares returns the keys of a square set in ascending order.
func sortedSquares(set map[square.Square]bool) []square.Square {
	out := make([]square.Square, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Checkmate reports whether the side to move is in check with no legal
// moves.
func (p Position) Checkmate() bool {
	return p.Check() && len(p.AllMoves()) == 0
}
