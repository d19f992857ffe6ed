package uci

import (
	"bytes"
	"strings"
	"testing"

	"github.com/chooklii/rustyrook/board"
)

func TestUCIHandshake(t *testing.T) {
	var out bytes.Buffer
	e := NewEngine(&out, nil)
	e.Loop(strings.NewReader("uci\nisready\nquit\n"))

	got := out.String()
	if !strings.Contains(got, "id name "+EngineName) {
		t.Fatalf("expected engine identity, got:\n%s", got)
	}
	if !strings.Contains(got, "uciok") {
		t.Fatalf("expected uciok, got:\n%s", got)
	}
	if !strings.Contains(got, "readyok") {
		t.Fatalf("expected readyok, got:\n%s", got)
	}
}

func TestPositionStartposWithMoves(t *testing.T) {
	var out bytes.Buffer
	e := NewEngine(&out, nil)
	e.Loop(strings.NewReader("position startpos moves e2e4 e7e5\nquit\n"))

	want, _ := board.FromFEN("rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2")
	if e.board.Hash != want.Hash {
		t.Fatalf("position after e2e4 e7e5 did not match expected hash")
	}
}

func TestPositionFEN(t *testing.T) {
	var out bytes.Buffer
	e := NewEngine(&out, nil)
	e.Loop(strings.NewReader("position fen 8/8/8/8/8/8/8/k6K w - - 0 1\nquit\n"))

	if e.board.SideToMove != board.NewStartPosition().SideToMove {
		t.Fatalf("expected white to move")
	}
	if e.board.CastlingRights != 0 {
		t.Fatalf("expected no castling rights in a bare-kings position")
	}
}

func TestGoEmitsBestMove(t *testing.T) {
	var out bytes.Buffer
	e := NewEngine(&out, nil)
	e.Loop(strings.NewReader("position startpos\ngo depth 1\nquit\n"))

	if !strings.Contains(out.String(), "bestmove ") {
		t.Fatalf("expected a bestmove line, got:\n%s", out.String())
	}
}

func TestParseMoveTextAcceptsBothKnightLetters(t *testing.T) {
	for _, text := range []string{"e7e8n", "e7e8k"} {
		_, _, promo, ok := parseMoveText(text)
		if !ok || promo != board.PromoteKnight {
			t.Fatalf("parseMoveText(%q) = promo %v, ok %v; want knight promotion", text, promo, ok)
		}
	}
}

func TestFormatMoveAlwaysEmitsLowercaseN(t *testing.T) {
	m := board.NewPromotionMove(52, 60, board.PromoteKnight)
	if got := FormatMove(m); !strings.HasSuffix(got, "n") {
		t.Fatalf("FormatMove(%v) = %q, want suffix 'n'", m, got)
	}
}
