// Package bitutil implements bit-scan and bit-folding helpers shared by
// the bitboard engine's attack generators, following the teacher's
// bitutil package.
package bitutil

import "math/bits"

// LSB returns the index of the least significant set bit of bitboard.
// It returns -1 for an empty bitboard.
func LSB(bitboard uint64) int {
	if bitboard == 0 {
		return -1
	}
	return bits.TrailingZeros64(bitboard)
}

// PopLSB clears the least significant set bit of *bitboard and returns
// its index, or -1 if the bitboard was already empty.
func PopLSB(bitboard *uint64) int {
	sq := LSB(*bitboard)
	if sq < 0 {
		return sq
	}
	*bitboard &= *bitboard - 1
	return sq
}

// PopCount returns the number of set bits in bitboard.
func PopCount(bitboard uint64) int { return bits.OnesCount64(bitboard) }

// Fold iterates over the set bits of bitboard from least to most
// significant, calling visit with each bit index.
func Fold(bitboard uint64, visit func(sq int) bool) {
	for bitboard != 0 {
		sq := PopLSB(&bitboard)
		visit(sq)
	}
}
