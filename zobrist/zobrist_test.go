package zobrist

import (
	"testing"

	"github.com/chooklii/rustyrook/piece"
)

func TestCastlingKeyEmptyIsZero(t *testing.T) {
	if got := CastlingKey(0); got != 0 {
		t.Fatalf("CastlingKey(0) = %d, want 0", got)
	}
}

func TestCastlingKeyIsAdditiveAcrossRights(t *testing.T) {
	all := CastlingKey(piece.WhiteKingside | piece.WhiteQueenside | piece.BlackKingside | piece.BlackQueenside)
	sum := Castling[0] ^ Castling[1] ^ Castling[2] ^ Castling[3]
	if all != sum {
		t.Fatalf("CastlingKey(all rights) = %d, want %d", all, sum)
	}
}

func TestHashFromScratchMatchesPieceSquareKeys(t *testing.T) {
	occ := map[int]struct {
		c  piece.Color
		pt piece.Type
	}{
		piece.E1: {piece.White, piece.King},
		piece.E8: {piece.Black, piece.King},
	}
	lookup := func(sq int) (piece.Color, piece.Type, bool) {
		v, ok := occ[sq]
		return v.c, v.pt, ok
	}

	got := Hash(lookup, piece.White, 0, piece.NoSquare)
	want := PieceSquare[piece.White][piece.King][piece.E1] ^ PieceSquare[piece.Black][piece.King][piece.E8]
	if got != want {
		t.Fatalf("Hash = %d, want %d", got, want)
	}
}

func TestHashIncludesSideToMove(t *testing.T) {
	lookup := func(sq int) (piece.Color, piece.Type, bool) { return piece.White, piece.Pawn, false }
	white := Hash(lookup, piece.White, 0, piece.NoSquare)
	black := Hash(lookup, piece.Black, 0, piece.NoSquare)
	if white^black != Side {
		t.Fatalf("Hash(White) xor Hash(Black) = %d, want Side key %d", white^black, Side)
	}
}

func TestHashIncludesEnPassantFile(t *testing.T) {
	lookup := func(sq int) (piece.Color, piece.Type, bool) { return piece.White, piece.Pawn, false }
	without := Hash(lookup, piece.White, 0, piece.NoSquare)
	with := Hash(lookup, piece.White, 0, piece.E3)
	if without^with != EnPassantFile[piece.File(piece.E3)] {
		t.Fatalf("en-passant XOR mismatch")
	}
}
