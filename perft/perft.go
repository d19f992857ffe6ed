// Package perft counts leaf nodes of the legal-move tree to a fixed depth,
// the standard correctness oracle for a move generator: any deviation from
// the published reference counts pinpoints a move-generation bug.
package perft

import (
	"fmt"

	"github.com/chooklii/rustyrook/board"
	"github.com/chooklii/rustyrook/movegen"
	"github.com/chooklii/rustyrook/piece"
)

// Count returns the number of leaf positions reachable from b in exactly
// depth plies.
func Count(b board.Board, depth int) int64 {
	if depth == 0 {
		return 1
	}
	moves := movegen.Generate(&b)
	if depth == 1 {
		return int64(moves.Count)
	}
	var nodes int64
	for _, m := range moves.Slice() {
		undo := b.MakeMove(m)
		nodes += Count(b, depth-1)
		b.UnmakeMove(undo)
	}
	return nodes
}

// DivideEntry is one root move's subtree count, as reported by Divide.
type DivideEntry struct {
	Move  board.Move
	Nodes int64
}

// Divide runs perft one ply at a time from the root, reporting the node
// count contributed by each individual root move — the standard technique
// for isolating which branch of the move generator has a bug.
func Divide(b board.Board, depth int) ([]DivideEntry, int64) {
	moves := movegen.Generate(&b)
	entries := make([]DivideEntry, 0, moves.Count)
	var total int64
	for _, m := range moves.Slice() {
		undo := b.MakeMove(m)
		n := Count(b, depth-1)
		b.UnmakeMove(undo)
		entries = append(entries, DivideEntry{Move: m, Nodes: n})
		total += n
	}
	return entries, total
}

// FormatMove renders m in long-algebraic UCI notation, e.g. "e2e4",
// "e7e8q".
func FormatMove(m board.Move) string {
	s := piece.SquareNames[m.From()] + piece.SquareNames[m.To()]
	if m.Type() == board.MovePromotion {
		s += string("nbrq"[m.Promotion()])
	}
	return s
}

// FormatDivide renders a Divide report the way UCI front-ends and test
// harnesses expect: one "<move>: <count>" line per root move, followed by
// the grand total.
func FormatDivide(entries []DivideEntry, total int64) string {
	out := ""
	for _, e := range entries {
		out += fmt.Sprintf("%s: %d\n", FormatMove(e.Move), e.Nodes)
	}
	out += fmt.Sprintf("\nNodes searched: %d\n", total)
	return out
}
