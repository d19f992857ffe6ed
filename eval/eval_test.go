package eval

import (
	"testing"

	"github.com/chooklii/rustyrook/board"
)

func TestStartPositionIsBalanced(t *testing.T) {
	b := board.NewStartPosition()
	if got := Evaluate(&b); got != 0 {
		t.Fatalf("Evaluate(start) = %v, want 0 (symmetric position)", got)
	}
}

func TestExtraQueenIsClearlyBetter(t *testing.T) {
	b, err := board.FromFEN("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if got := Evaluate(&b); got <= 5.0 {
		t.Fatalf("Evaluate(lone extra queen) = %v, want > 5.0", got)
	}
}

func TestDoubledPawnsArePenalized(t *testing.T) {
	clean, err := board.FromFEN("4k3/8/8/8/8/3P4/4P3/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	doubled, err := board.FromFEN("4k3/8/8/8/8/4P3/4P3/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if Evaluate(&doubled) >= Evaluate(&clean) {
		t.Fatalf("doubled pawns should score lower than split pawns")
	}
}

func TestPassedPawnOutscoresBlockedPawn(t *testing.T) {
	passed, err := board.FromFEN("4k3/8/8/4P3/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	blocked, err := board.FromFEN("4k3/4p3/8/4P3/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if Evaluate(&passed) <= Evaluate(&blocked) {
		t.Fatalf("unblocked passed pawn should score higher than a pawn with an opponent blocker ahead")
	}
}
