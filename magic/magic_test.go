package magic

import (
	"testing"

	"github.com/chooklii/rustyrook/bitboard"
	"github.com/chooklii/rustyrook/piece"
)

func TestRookAttacksEmptyBoardCorner(t *testing.T) {
	attacks := RookAttacks(piece.A1, 0)
	if got := bitboard.PopCount(attacks); got != 14 {
		t.Fatalf("rook on a1, empty board: PopCount = %d, want 14", got)
	}
}

func TestBishopAttacksEmptyBoardCenter(t *testing.T) {
	attacks := BishopAttacks(piece.D4, 0)
	if got := bitboard.PopCount(attacks); got != 13 {
		t.Fatalf("bishop on d4, empty board: PopCount = %d, want 13", got)
	}
}

func TestRookAttacksBlocked(t *testing.T) {
	// Rook on a1, blocker on a4: should see a2, a3, a4 (stop at blocker)
	// plus the full first rank.
	occ := bitboard.Board(1) << uint(piece.A4)
	attacks := RookAttacks(piece.A1, occ)
	want := []int{piece.A2, piece.A3, piece.A4, piece.B1, piece.C1, piece.D1, piece.E1, piece.F1, piece.G1, piece.H1}
	for _, sq := range want {
		if !bitboard.Test(attacks, sq) {
			t.Fatalf("expected rook a1 (blocker a4) to attack %s", piece.SquareNames[sq])
		}
	}
	if bitboard.Test(attacks, piece.A5) {
		t.Fatalf("rook a1 should not see past blocker on a4")
	}
}

func TestQueenAttacksIsUnion(t *testing.T) {
	occ := bitboard.Board(0)
	got := QueenAttacks(piece.D4, occ)
	want := BishopAttacks(piece.D4, occ) | RookAttacks(piece.D4, occ)
	if got != want {
		t.Fatalf("QueenAttacks is not the union of bishop+rook attacks")
	}
}

func TestKnightAttacksCorner(t *testing.T) {
	if got := bitboard.PopCount(KnightAttacks[piece.A1]); got != 2 {
		t.Fatalf("knight on a1: PopCount = %d, want 2", got)
	}
}

func TestKingAttacksCorner(t *testing.T) {
	if got := bitboard.PopCount(KingAttacks[piece.A1]); got != 3 {
		t.Fatalf("king on a1: PopCount = %d, want 3", got)
	}
}

func TestPawnAttacksCenter(t *testing.T) {
	if got := bitboard.PopCount(PawnAttacks[piece.White][piece.E4]); got != 2 {
		t.Fatalf("white pawn on e4: PopCount = %d, want 2", got)
	}
	if !bitboard.Test(PawnAttacks[piece.White][piece.E4], piece.D5) ||
		!bitboard.Test(PawnAttacks[piece.White][piece.E4], piece.F5) {
		t.Fatalf("white pawn on e4 should attack d5 and f5")
	}
}

func TestFileMask(t *testing.T) {
	if got := bitboard.PopCount(FileMask[0]); got != 8 {
		t.Fatalf("a-file mask PopCount = %d, want 8", got)
	}
}
