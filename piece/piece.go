// Package piece declares the small, shared vocabulary (colors, piece
// types, castling rights, square indices) used by every other package in
// the engine. It has no dependencies of its own so that it can sit
// underneath bitboard, magic, zobrist, board, movegen, eval and search
// without creating import cycles.
package piece

// Color is one of White or Black. White is the zero value.
type Color int

const (
	White Color = iota
	Black
)

// Opponent returns the other color.
func (c Color) Opponent() Color { return c ^ 1 }

// Type is one of the six chess piece types.
type Type int

const (
	Pawn Type = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// Symbol returns the uppercase FEN letter for t, lowercased by the caller
// when the piece belongs to Black.
func (t Type) Symbol() byte {
	return [...]byte{'P', 'N', 'B', 'R', 'Q', 'K'}[t]
}

// CastlingRights is a 4-bit set of {WK, WQ, BK, BQ} rights.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// RightsForColor returns the kingside/queenside rights belonging to c.
func RightsForColor(c Color) (kingside, queenside CastlingRights) {
	if c == White {
		return WhiteKingside, WhiteQueenside
	}
	return BlackKingside, BlackQueenside
}

// Square name tables: bit index i is file i%8 (a..h), rank i/8+1 (1..8).
const (
	A1 = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NoSquare distinguishes the absence of an en-passant target.
const NoSquare = -1

// SquareNames maps a square index to its algebraic name.
var SquareNames = [64]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// File returns the file (0=a .. 7=h) of square sq.
func File(sq int) int { return sq % 8 }

// Rank returns the rank (0-indexed, 0=rank1 .. 7=rank8) of square sq.
func Rank(sq int) int { return sq / 8 }

// SquareFromName parses an algebraic square name ("e4") into its index.
// Returns NoSquare and false if str does not name a valid square.
func SquareFromName(str string) (int, bool) {
	if len(str) != 2 {
		return NoSquare, false
	}
	if str[0] < 'a' || str[0] > 'h' || str[1] < '1' || str[1] > '8' {
		return NoSquare, false
	}
	return int(str[0]-'a') + int(str[1]-'1')*8, true
}
