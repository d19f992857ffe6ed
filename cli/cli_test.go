package cli

import (
	"strings"
	"testing"

	"github.com/chooklii/rustyrook/board"
)

func TestFormatBoardContainsBackRankPieces(t *testing.T) {
	b := board.NewStartPosition()
	out := FormatBoard(&b)
	if !strings.Contains(out, "♖") || !strings.Contains(out, "♜") {
		t.Fatalf("expected both rook glyphs in output:\n%s", out)
	}
	if !strings.Contains(out, "Side to move: white") {
		t.Fatalf("expected side to move line, got:\n%s", out)
	}
	if !strings.Contains(out, "En passant: none") {
		t.Fatalf("expected no en-passant target at the start position, got:\n%s", out)
	}
	if !strings.Contains(out, "Castling rights: KQkq") {
		t.Fatalf("expected full castling rights, got:\n%s", out)
	}
}

func TestFormatBoardShowsEnPassantTarget(t *testing.T) {
	b, err := board.FromFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	if err != nil {
		t.Fatal(err)
	}
	out := FormatBoard(&b)
	if !strings.Contains(out, "En passant: e3") {
		t.Fatalf("expected e3 en-passant target, got:\n%s", out)
	}
}
