// Package bitboard implements the 64-bit bitboard primitives the rest of
// the engine is built on: one bit per square, bit i denotes file i%8,
// rank i/8+1.
package bitboard

// Precalculated magic used to hash a lone set bit into a De Bruijn-style
// lookup index.
const bitScanMagic uint64 = 0x07EDD5E59A4E28C2

// bitScanLookup maps the hash of the lowest set bit to its index.
// See http://pradu.us/old/Nov27_2008/Buzz/research/magic/Bitboards.pdf §3.2.
var bitScanLookup = [64]int{
	63, 0, 58, 1, 59, 47, 53, 2,
	60, 39, 48, 27, 54, 33, 42, 3,
	61, 51, 37, 40, 49, 18, 28, 20,
	55, 30, 34, 11, 43, 14, 22, 4,
	62, 57, 46, 52, 38, 26, 32, 41,
	50, 36, 17, 19, 29, 10, 13, 21,
	56, 45, 25, 31, 35, 16, 9, 12,
	44, 24, 15, 8, 23, 7, 6, 5,
}

// Board is a set of the 64 chessboard squares, one bit per square.
type Board uint64

// Set returns b with square i set.
func Set(b Board, i int) Board { return b | 1<<uint(i) }

// Clear returns b with square i cleared.
func Clear(b Board, i int) Board { return b &^ (1 << uint(i)) }

// Test reports whether square i is set in b.
func Test(b Board, i int) bool { return b&(1<<uint(i)) != 0 }

// FirstSet returns the index of the least significant set bit.
// Precondition: b != 0.
func FirstSet(b Board) int { return bitScanLookup[uint64(b&-b)*bitScanMagic>>58] }

// PopLSB clears the least significant set bit of *b and returns its index.
// Returns -1 if *b is already empty.
func PopLSB(b *Board) int {
	if *b == 0 {
		return -1
	}
	i := FirstSet(*b)
	*b &= *b - 1
	return i
}

// PopCount returns the number of set bits in b.
func PopCount(b Board) int {
	cnt := 0
	for b > 0 {
		cnt++
		b &= b - 1
	}
	return cnt
}

// Iterate calls fn once for every set bit in b, in ascending order, by
// repeatedly extracting and clearing the lowest set bit. Iteration order
// is part of this package's contract.
func Iterate(b Board, fn func(square int)) {
	for b > 0 {
		fn(PopLSB(&b))
	}
}
