// Package search implements iterative-deepening negamax with alpha-beta
// pruning, backed by a transposition table and MVV-LVA move ordering.
package search

import (
	"context"
	"sort"

	"github.com/chooklii/rustyrook/board"
	"github.com/chooklii/rustyrook/eval"
	"github.com/chooklii/rustyrook/movegen"
	"github.com/chooklii/rustyrook/piece"
	"github.com/chooklii/rustyrook/tt"
)

// MateScore is the magnitude assigned to a forced checkmate; actual
// scores are this value minus the ply at which the mate occurs, so
// shorter mates score higher in absolute value.
const MateScore float32 = 1_000_000

// NodePollInterval is how many nodes elapse between deadline/cancellation
// checks.
const NodePollInterval = 2048

// Result is the outcome of a completed (or time-cut) search.
type Result struct {
	BestMove board.Move
	Score    float32
	Depth    int // deepest iteration completed; a cancelled first iteration is still reported as depth 1
	Nodes    int64
}

// Searcher runs iterative-deepening negamax searches against a shared
// transposition table.
type Searcher struct {
	TT *tt.Table

	nodes    int64
	deadline func() bool
}

// NewSearcher returns a Searcher backed by a transposition table sized
// for tableSize entries.
func NewSearcher(tableSize int) *Searcher {
	return &Searcher{TT: tt.New(tableSize)}
}

// Search runs iterative deepening up to maxDepth plies, or until ctx is
// done, returning the best result found at the deepest completed
// iteration.
func (s *Searcher) Search(ctx context.Context, b board.Board, maxDepth int) Result {
	s.nodes = 0
	s.deadline = func() bool {
		select {
		case <-ctx.Done():
			return true
		default:
			return false
		}
	}

	var best Result
	for depth := 1; depth <= maxDepth; depth++ {
		score, move, cancelled := s.rootSearch(&b, depth)
		if cancelled && depth > 1 {
			break
		}
		best = Result{BestMove: move, Score: score, Depth: depth, Nodes: s.nodes}
		if cancelled {
			break
		}
	}
	return best
}

func (s *Searcher) rootSearch(b *board.Board, depth int) (score float32, best board.Move, cancelled bool) {
	moves := movegen.Generate(b)
	if moves.Count == 0 {
		if b.InCheck() {
			return -MateScore, 0, false
		}
		return 0, 0, false
	}

	ttBest := board.Move(0)
	if e, ok := s.TT.Probe(b.Hash); ok {
		ttBest = e.BestMove
	}
	orderMoves(moves.Slice(), b, ttBest)

	alpha, beta := -MateScore*2, MateScore*2
	best = moves.Moves[0]
	score = alpha

	for _, m := range moves.Slice() {
		undo := b.MakeMove(m)
		childScore := -s.negamax(b, depth-1, 1, -beta, -alpha)
		b.UnmakeMove(undo)

		if s.deadline() {
			cancelled = true
		}

		if childScore > score || best == 0 {
			score = childScore
			best = m
		}
		if score > alpha {
			alpha = score
		}
		if cancelled {
			break
		}
	}
	return score, best, cancelled
}

// negamax searches one node at the given remaining depth and ply from the
// search root, returning a score from the side-to-move's perspective.
func (s *Searcher) negamax(b *board.Board, depth, ply int, alpha, beta float32) float32 {
	s.nodes++
	if s.nodes%NodePollInterval == 0 && s.deadline() {
		return eval.Evaluate(b) * perspective(b.SideToMove)
	}

	origAlpha := alpha
	var ttBest board.Move
	if e, ok := s.TT.Probe(b.Hash); ok {
		ttBest = e.BestMove
		if e.Depth >= depth {
			switch e.Flag {
			case tt.Exact:
				return e.Evaluation
			case tt.LowerBound:
				if e.Evaluation >= beta {
					return beta
				}
			case tt.UpperBound:
				if e.Evaluation <= alpha {
					return alpha
				}
			}
		}
	}

	moves := movegen.Generate(b)
	if moves.Count == 0 {
		if b.InCheck() {
			return -(MateScore - float32(ply))
		}
		return 0
	}

	if depth == 0 {
		return s.quiescence(b, ply, alpha, beta)
	}

	orderMoves(moves.Slice(), b, ttBest)

	best := moves.Moves[0]
	bestScore := -MateScore * 2
	for _, m := range moves.Slice() {
		undo := b.MakeMove(m)
		score := -s.negamax(b, depth-1, ply+1, -beta, -alpha)
		b.UnmakeMove(undo)

		if score > bestScore {
			bestScore = score
			best = m
		}
		if bestScore > alpha {
			alpha = bestScore
		}
		if alpha >= beta {
			break
		}
	}

	flag := tt.Exact
	if bestScore <= origAlpha {
		flag = tt.UpperBound
	} else if bestScore >= beta {
		flag = tt.LowerBound
	}
	s.TT.Store(b.Hash, depth, bestScore, best, flag)

	return bestScore
}

// quiescence extends the search over captures only, to avoid misjudging
// a position mid-capture-sequence (the horizon effect).
func (s *Searcher) quiescence(b *board.Board, ply int, alpha, beta float32) float32 {
	s.nodes++
	standPat := eval.Evaluate(b) * perspective(b.SideToMove)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	captures := movegen.GenerateCaptures(b)
	orderMoves(captures.Slice(), b, 0)
	for _, m := range captures.Slice() {
		undo := b.MakeMove(m)
		score := -s.quiescence(b, ply+1, -beta, -alpha)
		b.UnmakeMove(undo)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

func perspective(c piece.Color) float32 {
	if c == piece.Black {
		return -1
	}
	return 1
}

// pieceValueForOrdering assigns MVV-LVA weights; higher is more valuable.
var pieceValueForOrdering = [6]int{1, 3, 3, 5, 9, 100}

// orderMoves sorts moves in place: the transposition-table best move
// first, then captures by most-valuable-victim/least-valuable-attacker,
// then quiet moves in generation order.
func orderMoves(moves []board.Move, b *board.Board, ttBest board.Move) {
	score := func(m board.Move) int {
		if m == ttBest {
			return 1 << 30
		}
		_, victimType, captured := b.PieceAt(m.To())
		if !captured {
			return 0
		}
		_, attackerType, _ := b.PieceAt(m.From())
		return 1000 + pieceValueForOrdering[victimType]*10 - pieceValueForOrdering[attackerType]
	}
	sort.SliceStable(moves, func(i, j int) bool {
		return score(moves[i]) > score(moves[j])
	})
}
