package book

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chooklii/rustyrook/board"
)

func writeBookFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "openings.txt")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadParsesPositionsAndMoves(t *testing.T) {
	path := writeBookFile(t, `
pos rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1
e2e4
d2d4
`)
	b, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	start := board.NewStartPosition()
	moves := b.Lookup(start.Hash)
	if len(moves) != 2 {
		t.Fatalf("expected 2 moves for the start position, got %d", len(moves))
	}
}

func TestLoadParsesPromotionLetter(t *testing.T) {
	path := writeBookFile(t, `
pos 8/P7/8/8/8/8/8/k6K w - - 0 1
a7a8q
`)
	b, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	pos, err := board.FromFEN("8/P7/8/8/8/8/8/k6K w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	moves := b.Lookup(pos.Hash)
	if len(moves) != 1 || moves[0].Promotion != 'q' {
		t.Fatalf("expected a single queen-promotion move, got %+v", moves)
	}
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatalf("expected an error for a missing book file")
	}
}

func TestEmptyHasNoEntries(t *testing.T) {
	b := Empty()
	if b.Len() != 0 {
		t.Fatalf("expected an empty book")
	}
	if moves := b.Lookup(1234); moves != nil {
		t.Fatalf("expected no moves from an empty book")
	}
}
