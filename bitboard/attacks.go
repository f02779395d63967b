package bitboard

import (
	"github.com/shaobingxie/gochess/internal/bitutil"
	"github.com/shaobingxie/gochess/piece"
)

// knightAttacks and kingAttacks are precomputed once, the way the
// teacher precomputes its non-sliding attack tables at init time. Each
// entry is built by shifting the source bit by the constant offset
// that encodes one leg of the L-shape (or one king step) and masking
// against the file-wrap table appropriate to that shift, so a shift
// off the left or right edge never reappears on the opposite file.
var (
	knightAttacks [64]uint64
	kingAttacks   [64]uint64
	// pawnAttacks[color][sq] is the diagonal-capture-only attack set,
	// used both for generating captures and for the side's attack set
	// (pushes are never attacks, per the specification).
	pawnAttacks [2][64]uint64
)

func init() {
	for sq := 0; sq < 64; sq++ {
		bb := squareBit(sq)
		knightAttacks[sq] = knightAttacksFrom(bb)
		kingAttacks[sq] = kingAttacksFrom(bb)
		pawnAttacks[piece.White][sq] = shift(bb, 9)&notAFile | shift(bb, 7)&notHFile
		pawnAttacks[piece.Black][sq] = shift(bb, -7)&notAFile | shift(bb, -9)&notHFile
	}
}

// shift performs a left shift for positive n and a right shift for
// negative n, returning 0 instead of relying on undefined/wraparound
// behaviour for out-of-range shifts.
func shift(bb uint64, n int) uint64 {
	if n >= 0 {
		if n >= 64 {
			return 0
		}
		return bb << uint(n)
	}
	n = -n
	if n >= 64 {
		return 0
	}
	return bb >> uint(n)
}

// knightAttacksFrom multiplies (via shift) the source bit by each of
// the eight L-shape offsets, masking against whichever file-wrap table
// matches that offset's horizontal displacement.
func knightAttacksFrom(bb uint64) uint64 {
	var attacks uint64
	attacks |= shift(bb, 17) & notAFile
	attacks |= shift(bb, 15) & notHFile
	attacks |= shift(bb, 10) & notABFile
	attacks |= shift(bb, 6) & notGHFile
	attacks |= shift(bb, -6) & notABFile
	attacks |= shift(bb, -10) & notGHFile
	attacks |= shift(bb, -15) & notAFile
	attacks |= shift(bb, -17) & notHFile
	return attacks
}

func kingAttacksFrom(bb uint64) uint64 {
	var attacks uint64
	attacks |= shift(bb, 8)
	attacks |= shift(bb, -8)
	attacks |= shift(bb, 1) & notAFile
	attacks |= shift(bb, -1) & notHFile
	attacks |= shift(bb, 9) & notAFile
	attacks |= shift(bb, 7) & notHFile
	attacks |= shift(bb, -7) & notAFile
	attacks |= shift(bb, -9) & notHFile
	return attacks
}

// direction is a ray step expressed as a square-index delta, paired
// with the file-wrap mask that must be applied before each step so the
// ray stops at the board edge instead of wrapping.
type direction struct {
	delta int
	mask  uint64
}

var (
	rookDirections = []direction{
		{delta: 8, mask: allSquares}, // north
		{delta: 1, mask: notHFile},   // east
		{delta: -8, mask: allSquares}, // south
		{delta: -1, mask: notAFile},  // west
	}
	bishopDirections = []direction{
		{delta: 9, mask: notHFile},  // north-east
		{delta: 7, mask: notAFile},  // north-west
		{delta: -7, mask: notHFile}, // south-east
		{delta: -9, mask: notAFile}, // south-west
	}
)

// rayAttacks walks sq along dirs one step at a time, stopping as soon
// as it leaves the board (via the direction's file mask) or hits the
// first occupied square, including that blocker in the result the way
// the specification's blocker-inclusive ray construction does: the
// caller intersects the result with (empty ∪ enemy) to drop own-piece
// blockers from the final target set.
func rayAttacks(sq int, occupied uint64, dirs []direction) uint64 {
	var attacks uint64
	for _, d := range dirs {
		cur := squareBit(sq)
		for {
			if cur&d.mask == 0 {
				break
			}
			cur = shift(cur, d.delta)
			if cur == 0 {
				break
			}
			attacks |= cur
			if cur&occupied != 0 {
				break
			}
		}
	}
	return attacks
}

// RookAttacks returns the rook's target squares from sq given occupied,
// before own/enemy filtering.
func RookAttacks(sq int, occupied uint64) uint64 { return rayAttacks(sq, occupied, rookDirections) }

// BishopAttacks returns the bishop's target squares from sq given
// occupied, before own/enemy filtering.
func BishopAttacks(sq int, occupied uint64) uint64 { return rayAttacks(sq, occupied, bishopDirections) }

// QueenAttacks is the union of rook and bishop attacks.
func QueenAttacks(sq int, occupied uint64) uint64 {
	return RookAttacks(sq, occupied) | BishopAttacks(sq, occupied)
}

// KnightAttacks returns the precomputed knight target set from sq.
func KnightAttacks(sq int) uint64 { return knightAttacks[sq] }

// KingAttacks returns the precomputed king target set from sq.
func KingAttacks(sq int) uint64 { return kingAttacks[sq] }

// PawnAttacks returns the diagonal-capture-only target set for a pawn
// of color c standing on sq; it excludes forward pushes, matching the
// attack-only set used for check detection.
func PawnAttacks(c piece.Color, sq int) uint64 { return pawnAttacks[c][sq] }

// PawnPushTargets returns the forward-push destinations available to a
// pawn of color c on sq given occupied, honouring the two-step rule
// from the starting rank and the requirement that both intermediate
// and destination squares be empty.
func PawnPushTargets(c piece.Color, sq int, occupied uint64) uint64 {
	bb := squareBit(sq)
	var one, two uint64
	var startRank uint64
	if c == piece.White {
		one = shift(bb, 8) &^ occupied
		startRank = rank1 << 8
		if one != 0 {
			two = shift(bb, 16) &^ occupied
		}
	} else {
		one = shift(bb, -8) &^ occupied
		startRank = rank8 >> 8
		if one != 0 {
			two = shift(bb, -16) &^ occupied
		}
	}
	if bb&startRank == 0 {
		two = 0
	}
	return one | two
}

// attacksFrom returns the pseudo-legal attack-only target set of a
// single piece kind standing on sq, used to build a side's full attack
// set for check detection.
func attacksFrom(p piece.Piece, sq int, occupied uint64) uint64 {
	switch p.Kind {
	case piece.Pawn:
		return PawnAttacks(p.Color, sq)
	case piece.Knight:
		return KnightAttacks(sq)
	case piece.Bishop:
		return BishopAttacks(sq, occupied)
	case piece.Rook:
		return RookAttacks(sq, occupied)
	case piece.Queen:
		return QueenAttacks(sq, occupied)
	case piece.King:
		return KingAttacks(sq)
	}
	return 0
}

// attackSet unions attacksFrom across every square occupied by a piece
// of color c, matching the specification's "attack set of the moving
// side".
func attackSet(c piece.Color, bitboards [12]uint64, occupied uint64) uint64 {
	var attacks uint64
	for kind := piece.Pawn; kind <= piece.King; kind++ {
		p := piece.Piece{Color: c, Kind: kind}
		bb := bitboards[p.Index()]
		bitutil.Fold(bb, func(sq int) bool {
			attacks |= attacksFrom(p, sq, occupied)
			return true
		})
	}
	return attacks
}
