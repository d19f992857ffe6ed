// Package zobrist provides the random key tables and incremental update
// helpers used to hash a board position into a single uint64, the key the
// transposition table and the opening book rely on.
package zobrist

import (
	"math/rand/v2"

	"github.com/chooklii/rustyrook/piece"
)

// PieceSquare[color][pieceType][square] is the random key XOR'd in for
// every occupied (color, piece, square) triple.
var PieceSquare = initPieceSquareKeys()

// Side is XOR'd into the hash whenever Black is to move.
var Side = rand.Uint64()

// EnPassantFile[file] is XOR'd in when an en-passant target square exists
// on that file.
var EnPassantFile = initEnPassantFileKeys()

// Castling[right] is XOR'd in for every enabled castling right, indexed by
// the bit position of piece.WhiteKingside/WhiteQueenside/BlackKingside/
// BlackQueenside (0..3).
var Castling = initCastlingKeys()

func initPieceSquareKeys() [2][6][64]uint64 {
	var keys [2][6][64]uint64
	for c := 0; c < 2; c++ {
		for pt := 0; pt < 6; pt++ {
			for sq := 0; sq < 64; sq++ {
				keys[c][pt][sq] = rand.Uint64()
			}
		}
	}
	return keys
}

func initEnPassantFileKeys() [8]uint64 {
	var keys [8]uint64
	for f := 0; f < 8; f++ {
		keys[f] = rand.Uint64()
	}
	return keys
}

func initCastlingKeys() [4]uint64 {
	var keys [4]uint64
	for i := 0; i < 4; i++ {
		keys[i] = rand.Uint64()
	}
	return keys
}

// castlingBitToIndex maps a single-set CastlingRights bit to an index into
// Castling.
func castlingBitToIndex(right piece.CastlingRights) int {
	switch right {
	case piece.WhiteKingside:
		return 0
	case piece.WhiteQueenside:
		return 1
	case piece.BlackKingside:
		return 2
	case piece.BlackQueenside:
		return 3
	default:
		panic("zobrist: castlingBitToIndex called with a non-single-bit right")
	}
}

// CastlingKey returns the XOR contribution of every right set in rights.
func CastlingKey(rights piece.CastlingRights) uint64 {
	var key uint64
	for bit := piece.CastlingRights(1); bit <= piece.BlackQueenside; bit <<= 1 {
		if rights&bit != 0 {
			key ^= Castling[castlingBitToIndex(bit)]
		}
	}
	return key
}

// Hash computes a position's Zobrist key from scratch, given the full set
// of state that contributes to it. Callers normally only need this once,
// at FEN load; thereafter the hash is maintained incrementally.
func Hash(pieceAt func(sq int) (piece.Color, piece.Type, bool), sideToMove piece.Color, castlingRights piece.CastlingRights, enPassant int) uint64 {
	var h uint64
	for sq := 0; sq < 64; sq++ {
		if c, pt, ok := pieceAt(sq); ok {
			h ^= PieceSquare[c][pt][sq]
		}
	}
	if sideToMove == piece.Black {
		h ^= Side
	}
	h ^= CastlingKey(castlingRights)
	if enPassant != piece.NoSquare {
		h ^= EnPassantFile[piece.File(enPassant)]
	}
	return h
}
