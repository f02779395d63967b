// Package perft implements a move generation performance/correctness
// test: walk the legal move tree to a given depth and count leaf
// nodes, the way the teacher's perft walks chego.GenLegalMoves, but
// against the board.Board interface so it exercises whichever engine
// is passed in.
package perft

import "github.com/shaobingxie/gochess/board"

// Count walks b's legal move tree to depth plies and returns the
// number of leaf positions reached.
func Count(b board.Board, depth int) int {
	if depth == 0 {
		return 1
	}
	moves := b.AllMoves()
	if depth == 1 {
		return len(moves)
	}
	nodes := 0
	for _, m := range moves {
		next, ok := b.Play(m)
		if !ok {
			continue
		}
		nodes += Count(next, depth-1)
	}
	return nodes
}
