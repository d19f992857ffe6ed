package search

import (
	"context"
	"testing"

	"github.com/chooklii/rustyrook/board"
)

func TestSearchFindsMateInOne(t *testing.T) {
	// White to move, mate in one: back-rank mate Ra1-a8#.
	b, err := board.FromFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	s := NewSearcher(1 << 16)
	result := s.Search(context.Background(), b, 3)
	if result.Score < MateScore/2 {
		t.Fatalf("expected a mate score, got %v", result.Score)
	}
}

func TestSearchReturnsALegalMove(t *testing.T) {
	b := board.NewStartPosition()
	s := NewSearcher(1 << 16)
	result := s.Search(context.Background(), b, 2)

	undo := b.MakeMove(result.BestMove)
	b.UnmakeMove(undo)
	if result.BestMove == 0 && result.Depth == 0 {
		t.Fatalf("expected a completed search iteration")
	}
}

func TestSearchRespectsCancellation(t *testing.T) {
	b := board.NewStartPosition()
	s := NewSearcher(1 << 16)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result := s.Search(ctx, b, 10)
	if result.Depth > 1 {
		t.Fatalf("search kept deepening after cancellation: reached depth %d", result.Depth)
	}
}

func TestDeeperSearchReachesAtLeastShallowDepth(t *testing.T) {
	b, err := board.FromFEN("r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3")
	if err != nil {
		t.Fatal(err)
	}
	s := NewSearcher(1 << 16)
	shallow := s.Search(context.Background(), b, 1)
	s2 := NewSearcher(1 << 16)
	deep := s2.Search(context.Background(), b, 3)
	if deep.Depth < shallow.Depth {
		t.Fatalf("deeper search should reach depth >= shallow: %d < %d", deep.Depth, shallow.Depth)
	}
}
