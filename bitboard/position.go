package bitboard

import (
	"github.com/shaobingxie/gochess/board"
	"github.com/shaobingxie/gochess/fen"
	"github.com/shaobingxie/gochess/internal/bitutil"
	"github.com/shaobingxie/gochess/piece"
	"github.com/shaobingxie/gochess/square"
)

// castleSquares describes one castling side for one color: the squares
// that must be empty, the squares the king stands on and crosses (which
// must be unattacked), and the king/rook source and
// destination squares, following the home-square constants the
// teacher's movegen package hardcodes for O-O / O-O-O.
type castleSquares struct {
	right             board.CastlingRights
	kingFrom, kingTo  square.Square
	rookFrom, rookTo  square.Square
	mustBeEmpty       uint64
	kingTraversalSqs  [3]square.Square
}

var castlingTable = map[piece.Color]map[board.CastleSide]castleSquares{
	piece.White: {
		board.Kingside: {
			right: board.WhiteKingside,
			kingFrom: sq(0, 4), kingTo: sq(0, 6),
			rookFrom: sq(0, 7), rookTo: sq(0, 5),
			mustBeEmpty:      sq(0, 5).Bit() | sq(0, 6).Bit(),
			kingTraversalSqs: [3]square.Square{sq(0, 4), sq(0, 5), sq(0, 6)},
		},
		board.Queenside: {
			right: board.WhiteQueenside,
			kingFrom: sq(0, 4), kingTo: sq(0, 2),
			rookFrom: sq(0, 0), rookTo: sq(0, 3),
			mustBeEmpty:      sq(0, 1).Bit() | sq(0, 2).Bit() | sq(0, 3).Bit(),
			kingTraversalSqs: [3]square.Square{sq(0, 4), sq(0, 3), sq(0, 2)},
		},
	},
	piece.Black: {
		board.Kingside: {
			right: board.BlackKingside,
			kingFrom: sq(7, 4), kingTo: sq(7, 6),
			rookFrom: sq(7, 7), rookTo: sq(7, 5),
			mustBeEmpty:      sq(7, 5).Bit() | sq(7, 6).Bit(),
			kingTraversalSqs: [3]square.Square{sq(7, 4), sq(7, 5), sq(7, 6)},
		},
		board.Queenside: {
			right: board.BlackQueenside,
			kingFrom: sq(7, 4), kingTo: sq(7, 2),
			rookFrom: sq(7, 0), rookTo: sq(7, 3),
			mustBeEmpty:      sq(7, 1).Bit() | sq(7, 2).Bit() | sq(7, 3).Bit(),
			kingTraversalSqs: [3]square.Square{sq(7, 4), sq(7, 3), sq(7, 2)},
		},
	},
}

func sq(rank, file int) square.Square {
	s, _ := square.New(rank, file)
	return s
}

// rookHomeRights maps a rook's home square to the single castling
// right it guards, used both when a rook moves away from home and when
// an enemy captures a rook standing on its home square.
var rookHomeRights = map[square.Square]board.CastlingRights{
	sq(0, 0): board.WhiteQueenside,
	sq(0, 7): board.WhiteKingside,
	sq(7, 0): board.BlackQueenside,
	sq(7, 7): board.BlackKingside,
}

// Position is the bitboard engine's internal state: twelve piece
// bitboards, side to move, castling rights and an optional en-passant
// target. It is a value type; Play returns a new Position rather than
// mutating the receiver.
type Position struct {
	bitboards [12]uint64
	toPlay    piece.Color
	rights    board.CastlingRights
	epTarget  square.Square
}

// initPosition builds the standard starting position.
func initPosition() Position {
	p, ok := decodePosition("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	if !ok {
		panic("bitboard: starting FEN must decode")
	}
	return p
}

// decodePosition parses a FEN string into a Position.
func decodePosition(text string) (Position, bool) {
	raw, ok := fen.Decode(text)
	if !ok {
		return Position{}, false
	}
	return Position{
		bitboards: raw.Bitboards,
		toPlay:    raw.ToPlay,
		rights:    raw.Rights,
		epTarget:  raw.EPTarget,
	}, true
}

// FEN encodes the position.
func (p Position) FEN() string {
	return fen.Encode(fen.Position{
		Bitboards: p.bitboards,
		ToPlay:    p.toPlay,
		Rights:    p.rights,
		EPTarget:  p.epTarget,
	})
}

func (p Position) occupied() uint64 {
	var occ uint64
	for _, bb := range p.bitboards {
		occ |= bb
	}
	return occ
}

func (p Position) colorOccupied(c piece.Color) uint64 {
	var occ uint64
	for kind := piece.Pawn; kind <= piece.King; kind++ {
		occ |= p.bitboards[(piece.Piece{Color: c, Kind: kind}).Index()]
	}
	return occ
}

// pieceAt returns the piece standing on sq, if any.
func (p Position) pieceAt(s square.Square) (piece.Piece, bool) {
	bit := s.Bit()
	for idx, bb := range p.bitboards {
		if bb&bit != 0 {
			return piece.FromIndex(idx), true
		}
	}
	return piece.Piece{}, false
}

// AllPieces returns every occupied square paired with its piece.
func (p Position) AllPieces() []board.PieceAt {
	var out []board.PieceAt
	for idx, bb := range p.bitboards {
		pc := piece.FromIndex(idx)
		bitutil.Fold(bb, func(sqIdx int) bool {
			s, _ := square.New(sqIdx/8, sqIdx%8)
			out = append(out, board.PieceAt{Square: s, Piece: pc})
			return true
		})
	}
	return out
}

// ToPlay returns the color to move.
func (p Position) ToPlay() piece.Color { return p.toPlay }

// isAttacked reports whether sq is attacked by a piece of color by.
func (p Position) isAttacked(s square.Square, by piece.Color) bool {
	return attackSet(by, p.bitboards, p.occupied())&s.Bit() != 0
}

// Check reports whether the side to move's king is attacked.
func (p Position) Check() bool {
	kingBB := p.bitboards[(piece.Piece{Color: p.toPlay, Kind: piece.King}).Index()]
	kingSq := bitutil.LSB(kingBB)
	if kingSq < 0 {
		return false
	}
	s, _ := square.New(kingSq/8, kingSq%8)
	return p.isAttacked(s, p.toPlay.Other())
}

// pseudoLegalTargets returns the pseudo-legal destination set for the
// piece standing on src (empty if src is unoccupied or not the side to
// move's piece), including forward pawn pushes.
func (p Position) pseudoLegalTargets(src square.Square) uint64 {
	pc, ok := p.pieceAt(src)
	if !ok || pc.Color != p.toPlay {
		return 0
	}
	occ := p.occupied()
	own := p.colorOccupied(p.toPlay)
	enemy := occ &^ own

	var targets uint64
	switch pc.Kind {
	case piece.Pawn:
		targets = PawnPushTargets(pc.Color, int(src), occ)
		attacks := PawnAttacks(pc.Color, int(src)) & enemy
		if p.epTarget != square.None {
			attacks |= PawnAttacks(pc.Color, int(src)) & p.epTarget.Bit()
		}
		targets |= attacks
	case piece.Knight:
		targets = KnightAttacks(int(src))
	case piece.Bishop:
		targets = BishopAttacks(int(src), occ)
	case piece.Rook:
		targets = RookAttacks(int(src), occ)
	case piece.Queen:
		targets = QueenAttacks(int(src), occ)
	case piece.King:
		targets = KingAttacks(int(src))
	}
	return targets &^ own
}

// isValid implements the is_valid predicate of the legality filter.
func (p Position) isValid(m board.Move) bool {
	switch m.Kind {
	case board.Standard:
		pc, ok := p.pieceAt(m.Src)
		if !ok || pc.Color != p.toPlay {
			return false
		}
		return p.pseudoLegalTargets(m.Src)&m.Dst.Bit() != 0
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
	if p.occupied()&c.mustBeEmpty != 0 {
		return false
	}
	enemy := p.toPlay.Other()
	for _, s := range c.kingTraversalSqs {
		if p.isAttacked(s, enemy) {
			return false
		}
	}
	return true
}

// execute applies a pseudo-legal Standard or Castle move, producing the
// resulting Position without flipping side to move or testing check,
// matching the decomposition in the move-execution component.
func (p Position) execute(m board.Move) Position {
	next := p
	switch m.Kind {
	case board.Standard:
		next = next.executeStandard(m.Src, m.Dst)
	case board.Castle:
		next = next.executeCastle(m.Side)
	}
	return next
}

func (p Position) executeStandard(src, dst square.Square) Position {
	next := p
	mover, _ := p.pieceAt(src)
	srcBit, dstBit := src.Bit(), dst.Bit()

	if captured, ok := next.pieceAt(dst); ok {
		next.bitboards[captured.Index()] &^= dstBit
		next.clearRightsOnHomeSquare(dst)
	}

	// En passant: the captured pawn sits one rank behind dst.
	if mover.Kind == piece.Pawn && dst == p.epTarget && p.epTarget != square.None {
		var capturedSq square.Square
		if mover.Color == piece.White {
			capturedSq, _ = square.New(dst.Rank()-1, dst.File())
		} else {
			capturedSq, _ = square.New(dst.Rank()+1, dst.File())
		}
		capturedPiece := piece.Piece{Color: mover.Color.Other(), Kind: piece.Pawn}
		next.bitboards[capturedPiece.Index()] &^= capturedSq.Bit()
	}

	next.bitboards[mover.Index()] &^= srcBit
	placed := mover
	backRank := 7
	if mover.Color == piece.Black {
		backRank = 0
	}
	if mover.Kind == piece.Pawn && dst.Rank() == backRank {
		placed = piece.Piece{Color: mover.Color, Kind: piece.Queen}
	}
	next.bitboards[placed.Index()] |= dstBit

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
// sq being a rook's home square, regardless of which side's move (or
// capture) vacated it: this applies the captured-rook fix described in
// the design notes uniformly to both movement and capture.
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
// the mover's own king attacked. On success the side to move is
// flipped.
func (p Position) Play(m board.Move) (Position, bool) {
	if !p.isValid(m) {
		return Position{}, false
	}
	next := p.execute(m)
	mover := p.toPlay
	kingBB := next.bitboards[(piece.Piece{Color: mover, Kind: piece.King}).Index()]
	kingSq := bitutil.LSB(kingBB)
	if kingSq >= 0 {
		s, _ := square.New(kingSq/8, kingSq%8)
		if next.isAttacked(s, mover.Other()) {
			return Position{}, false
		}
	}
	next.toPlay = mover.Other()
	return next, true
}

// AllMoves enumerates every legal move for the side to move.
func (p Position) AllMoves() []board.Move {
	var moves []board.Move
	own := p.colorOccupied(p.toPlay)
	bitutil.Fold(own, func(sqIdx int) bool {
		src, _ := square.New(sqIdx/8, sqIdx%8)
		targets := p.pseudoLegalTargets(src)
		bitutil.Fold(targets, func(dstIdx int) bool {
			dst, _ := square.New(dstIdx/8, dstIdx%8)
			m := board.NewStandard(src, dst)
			if _, ok := p.Play(m); ok {
				moves = append(moves, m)
			}
			return true
		})
		return true
	})
	for _, side := range []board.CastleSide{board.Kingside, board.Queenside} {
		m := board.NewCastle(side)
		if _, ok := p.Play(m); ok {
			moves = append(moves, m)
		}
	}
	return moves
}

// Checkmate reports whether the side to move is in check with no legal
// moves.
func (p Position) Checkmate() bool {
	return p.Check() && len(p.AllMoves()) == 0
}
