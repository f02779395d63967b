package mapboard

import (
	"github.com/shaobingxie/gochess/piece"
	"github.com/shaobingxie/gochess/square"
)

var knightDeltas = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingDeltas = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var rookDeltas = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDeltas = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// attackTargets returns the attack-only target set of the piece at src
// (diagonal captures only for pawns, no forward pushes), by walking
// rank/file offsets directly against the map rather than any bitboard
// trick, so the logic reads as plain coordinate arithmetic.
func (p Position) attackTargets(src square.Square) map[square.Square]bool {
	pc := p.pieces[src]
	targets := map[square.Square]bool{}
	rank, file := src.Coord()

	add := func(r, f int) {
		if s, err := square.New(r, f); err == nil {
			targets[s] = true
		}
	}

	switch pc.Kind {
	case piece.Pawn:
		dr := 1
		if pc.Color == piece.Black {
			dr = -1
		}
		add(rank+dr, file+1)
		add(rank+dr, file-1)
	case piece.Knight:
		for _, d := range knightDeltas {
			add(rank+d[0], file+d[1])
		}
	case piece.King:
		for _, d := range kingDeltas {
			add(rank+d[0], file+d[1])
		}
	case piece.Rook:
		p.walkRays(rank, file, rookDeltas[:], targets)
	case piece.Bishop:
		p.walkRays(rank, file, bishopDeltas[:], targets)
	case piece.Queen:
		p.walkRays(rank, file, rookDeltas[:], targets)
		p.walkRays(rank, file, bishopDeltas[:], targets)
	}
	return targets
}

// walkRays steps from (rank, file) along each delta direction one
// square at a time until it runs off the board or reaches the first
// occupied square, including that square (own or enemy) in targets:
// own-piece filtering happens in moveTargets, not here, matching the
// blocker-inclusive ray construction used to detect defended squares.
func (p Position) walkRays(rank, file int, deltas [][2]int, targets map[square.Square]bool) {
	for _, d := range deltas {
		r, f := rank+d[0], file+d[1]
		for {
			s, err := square.New(r, f)
			if err != nil {
				break
			}
			targets[s] = true
			if _, occupied := p.pieces[s]; occupied {
				break
			}
			r += d[0]
			f += d[1]
		}
	}
}

// moveTargets returns the pseudo-legal destination set for the piece at
// src, including forward pawn pushes and excluding squares occupied by
// the mover's own color.
func (p Position) moveTargets(src square.Square) map[square.Square]bool {
	pc, ok := p.pieces[src]
	if !ok {
		return nil
	}
	targets := map[square.Square]bool{}
	rank, file := src.Coord()

	if pc.Kind == piece.Pawn {
		dr := 1
		startRank := 1
		if pc.Color == piece.Black {
			dr = -1
			startRank = 6
		}
		if oneAhead, err := square.New(rank+dr, file); err == nil {
			if _, occ := p.pieces[oneAhead]; !occ {
				targets[oneAhead] = true
				if rank == startRank {
					if twoAhead, err := square.New(rank+2*dr, file); err == nil {
						if _, occ := p.pieces[twoAhead]; !occ {
							targets[twoAhead] = true
						}
					}
				}
			}
		}
	}

	for s := range p.attackTargets(src) {
		occupant, occ := p.pieces[s]
		if pc.Kind == piece.Pawn {
			isEP := s == p.epTarget && p.epTarget != square.None
			if !isEP && !occ {
				continue
			}
			if !isEP && occupant.Color == pc.Color {
				continue
			}
		} else if occ && occupant.Color == pc.Color {
			continue
		}
		targets[s] = true
	}
	return targets
}

// isAttacked reports whether sq is attacked by any piece of color by.
func (p Position) isAttacked(sq square.Square, by piece.Color) bool {
	for s, pc := range p.pieces {
		if pc.Color != by {
			continue
		}
		if p.attackTargets(s)[sq] {
			return true
		}
	}
	return false
}
