package perft

import (
	"testing"

	"github.com/chooklii/rustyrook/board"
)

func TestPerftStartPosition(t *testing.T) {
	cases := []struct {
		depth int
		want  int64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}
	b := board.NewStartPosition()
	for _, tc := range cases {
		if got := Count(b, tc.depth); got != tc.want {
			t.Errorf("perft(start, %d) = %d, want %d", tc.depth, got, tc.want)
		}
	}
}

// Kiwipete: the standard second perft-suite position, exercising castling,
// en-passant and promotions that the start position never reaches this
// shallow.
func TestPerftKiwipete(t *testing.T) {
	b, err := board.FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		depth int
		want  int64
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
	}
	for _, tc := range cases {
		if got := Count(b, tc.depth); got != tc.want {
			t.Errorf("perft(kiwipete, %d) = %d, want %d", tc.depth, got, tc.want)
		}
	}
}

// The "position 3" suite entry: exercises en-passant discovered-check
// rejection heavily, since both kings sit on the fourth/fifth rank files
// adjacent to rook-infested ranks.
func TestPerftEnPassantPosition(t *testing.T) {
	b, err := board.FromFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		depth int
		want  int64
	}{
		{1, 14},
		{2, 191},
		{3, 2812},
	}
	for _, tc := range cases {
		if got := Count(b, tc.depth); got != tc.want {
			t.Errorf("perft(position3, %d) = %d, want %d", tc.depth, got, tc.want)
		}
	}
}

func TestDivideSumsToCount(t *testing.T) {
	b := board.NewStartPosition()
	entries, total := Divide(b, 3)
	if total != Count(b, 3) {
		t.Fatalf("Divide total = %d, want %d", total, Count(b, 3))
	}
	var sum int64
	for _, e := range entries {
		sum += e.Nodes
	}
	if sum != total {
		t.Fatalf("sum of Divide entries = %d, want %d", sum, total)
	}
}
