// Package movegen produces fully legal moves for a board.Board: checkers
// and pin detection up front, then per-piece pseudo-legal generation
// filtered against them.
package movegen

import (
	"github.com/chooklii/rustyrook/bitboard"
	"github.com/chooklii/rustyrook/board"
	"github.com/chooklii/rustyrook/magic"
	"github.com/chooklii/rustyrook/piece"
)

// rayDirections enumerates the 8 compass directions a slider can attack
// along, paired with the file-mask that must hold for one more step.
type rayStep struct {
	fileMask bitboard.Board
	shift    int // positive = <<, negative = >>
}

var rayDirections = [8]rayStep{
	{magic.NotAFile, -9}, {magic.NotRank1, -8}, {magic.NotHFile, -7}, {magic.NotHFile, 1},
	{magic.NotHFile, 9}, {magic.NotRank8, 8}, {magic.NotAFile, 7}, {magic.NotAFile, -1},
}

// isDiagonal reports whether ray direction i is a bishop-type (diagonal)
// direction as opposed to a rook-type (orthogonal) one.
func isDiagonal(i int) bool { return i%2 == 0 }

func step(from bitboard.Board, r rayStep) bitboard.Board {
	if r.shift > 0 {
		return (from & r.fileMask) << uint(r.shift)
	}
	return (from & r.fileMask) >> uint(-r.shift)
}

// state bundles the per-call-site analysis the algorithm in spec.md §4.F
// performs once before generating any moves.
type state struct {
	b        *board.Board
	us, them piece.Color
	kingSq   int
	checkers bitboard.Board
	threats  bitboard.Board
	pinned   map[int]bitboard.Board // square -> allowed ray (including the pinner)
}

// Generate returns every fully legal move available to the side to move.
func Generate(b *board.Board) board.MoveList {
	return generate(b, false)
}

// GenerateCaptures returns only legal moves that capture a piece (plus
// en-passant and promotions), for use in a quiescence search.
func GenerateCaptures(b *board.Board) board.MoveList {
	return generate(b, true)
}

func generate(b *board.Board, capturesOnly bool) board.MoveList {
	var list board.MoveList
	s := analyze(b)

	if bitboard.PopCount(s.checkers) >= 2 {
		s.genKingMoves(&list, capturesOnly)
		return list
	}

	s.genPawnMoves(&list, capturesOnly)
	s.genKnightMoves(&list, capturesOnly)
	s.genSliderMoves(&list, piece.Bishop, capturesOnly)
	s.genSliderMoves(&list, piece.Rook, capturesOnly)
	s.genSliderMoves(&list, piece.Queen, capturesOnly)
	s.genKingMoves(&list, capturesOnly)
	if !capturesOnly {
		s.genCastling(&list)
	}
	return list
}

func analyze(b *board.Board) *state {
	s := &state{b: b, us: b.SideToMove, them: b.SideToMove.Opponent()}
	s.kingSq = b.KingSquare(s.us)
	s.checkers = s.computeCheckers()
	s.threats = s.computeThreats()
	s.pinned = s.computePinned()
	return s
}

// computeCheckers finds every opponent piece currently attacking the
// king's square.
func (s *state) computeCheckers() bitboard.Board {
	b := s.b
	var checkers bitboard.Board
	checkers |= magic.PawnAttacks[s.us][s.kingSq] & b.Pieces[s.them][piece.Pawn]
	checkers |= magic.KnightAttacks[s.kingSq] & b.Pieces[s.them][piece.Knight]
	bishopsQueens := b.Pieces[s.them][piece.Bishop] | b.Pieces[s.them][piece.Queen]
	checkers |= magic.BishopAttacks(s.kingSq, b.AllOcc) & bishopsQueens
	rooksQueens := b.Pieces[s.them][piece.Rook] | b.Pieces[s.them][piece.Queen]
	checkers |= magic.RookAttacks(s.kingSq, b.AllOcc) & rooksQueens
	return checkers
}

// computeThreats returns every square the opponent attacks, with the
// king's own square removed from the occupancy used by sliders so the
// king cannot retreat "along" an attacker's ray.
func (s *state) computeThreats() bitboard.Board {
	b := s.b
	occWithoutKing := b.AllOcc &^ (bitboard.Board(1) << uint(s.kingSq))

	var threats bitboard.Board
	bitboard.Iterate(b.Pieces[s.them][piece.Pawn], func(sq int) {
		threats |= magic.PawnAttacks[s.them][sq]
	})
	bitboard.Iterate(b.Pieces[s.them][piece.Knight], func(sq int) {
		threats |= magic.KnightAttacks[sq]
	})
	bitboard.Iterate(b.Pieces[s.them][piece.King], func(sq int) {
		threats |= magic.KingAttacks[sq]
	})
	bitboard.Iterate(b.Pieces[s.them][piece.Bishop]|b.Pieces[s.them][piece.Queen], func(sq int) {
		threats |= magic.BishopAttacks(sq, occWithoutKing)
	})
	bitboard.Iterate(b.Pieces[s.them][piece.Rook]|b.Pieces[s.them][piece.Queen], func(sq int) {
		threats |= magic.RookAttacks(sq, occWithoutKing)
	})
	return threats
}

// computePinned walks each of the 8 ray directions from the king; if the
// first piece encountered is ours and the next is an opponent slider that
// attacks along that direction, the first piece is pinned and may only
// move along the ray (including capturing the pinner).
func (s *state) computePinned() map[int]bitboard.Board {
	b := s.b
	pinned := make(map[int]bitboard.Board)
	kingBit := bitboard.Board(1) << uint(s.kingSq)

	for dir, r := range rayDirections {
		var ray bitboard.Board
		sq := kingBit
		var firstOurs int = -1
		for {
			sq = step(sq, r)
			if sq == 0 {
				break
			}
			ray |= sq
			if sq&b.AllOcc == 0 {
				continue
			}
			if sq&b.ColorOcc[s.us] != 0 {
				if firstOurs != -1 {
					break // a second friendly piece blocks the ray entirely
				}
				firstOurs = bitboard.FirstSet(sq)
				continue
			}
			// First blocker is an opponent piece.
			var sliders bitboard.Board
			if isDiagonal(dir) {
				sliders = b.Pieces[s.them][piece.Bishop] | b.Pieces[s.them][piece.Queen]
			} else {
				sliders = b.Pieces[s.them][piece.Rook] | b.Pieces[s.them][piece.Queen]
			}
			if firstOurs != -1 && sq&sliders != 0 {
				pinned[firstOurs] = ray
			}
			break
		}
	}
	return pinned
}

// checkRay returns the squares between the king and a single checking
// slider (exclusive of both ends), or 0 if the checker is not a slider or
// there is no single checker.
func (s *state) checkRay() bitboard.Board {
	if bitboard.PopCount(s.checkers) != 1 {
		return 0
	}
	checkerSq := bitboard.FirstSet(s.checkers)
	_, t, _ := s.b.PieceAt(checkerSq)
	if t != piece.Bishop && t != piece.Rook && t != piece.Queen {
		return 0
	}
	for dir, r := range rayDirections {
		if isDiagonal(dir) != (t == piece.Bishop) && t != piece.Queen {
			continue
		}
		var ray bitboard.Board
		sq := bitboard.Board(1) << uint(s.kingSq)
		for {
			sq = step(sq, r)
			if sq == 0 {
				break
			}
			if sq&(bitboard.Board(1)<<uint(checkerSq)) != 0 {
				return ray
			}
			ray |= sq
			if sq&s.b.AllOcc != 0 {
				break
			}
		}
	}
	return 0
}

// legalDestinations narrows a non-king piece's pseudo-legal destination
// set to the squares that resolve check (if any) and respect a pin (if
// the piece is pinned).
func (s *state) legalDestinations(from int, pseudo bitboard.Board) bitboard.Board {
	if ray, ok := s.pinned[from]; ok {
		pseudo &= ray
	}
	if bitboard.PopCount(s.checkers) == 1 {
		allowed := s.checkers | s.checkRay()
		pseudo &= allowed
	}
	return pseudo
}

func (s *state) genKnightMoves(list *board.MoveList, capturesOnly bool) {
	b := s.b
	bitboard.Iterate(b.Pieces[s.us][piece.Knight], func(from int) {
		targets := magic.KnightAttacks[from] &^ b.ColorOcc[s.us]
		targets = s.legalDestinations(from, targets)
		if capturesOnly {
			targets &= b.ColorOcc[s.them]
		}
		bitboard.Iterate(targets, func(to int) {
			list.Add(board.NewMove(from, to, board.MoveNormal))
		})
	})
}

func (s *state) genSliderMoves(list *board.MoveList, t piece.Type, capturesOnly bool) {
	b := s.b
	bitboard.Iterate(b.Pieces[s.us][t], func(from int) {
		var targets bitboard.Board
		switch t {
		case piece.Bishop:
			targets = magic.BishopAttacks(from, b.AllOcc)
		case piece.Rook:
			targets = magic.RookAttacks(from, b.AllOcc)
		case piece.Queen:
			targets = magic.QueenAttacks(from, b.AllOcc)
		}
		targets &^= b.ColorOcc[s.us]
		targets = s.legalDestinations(from, targets)
		if capturesOnly {
			targets &= b.ColorOcc[s.them]
		}
		bitboard.Iterate(targets, func(to int) {
			list.Add(board.NewMove(from, to, board.MoveNormal))
		})
	})
}

func (s *state) genKingMoves(list *board.MoveList, capturesOnly bool) {
	b := s.b
	targets := magic.KingAttacks[s.kingSq] &^ b.ColorOcc[s.us] &^ s.threats
	if capturesOnly {
		targets &= b.ColorOcc[s.them]
	}
	bitboard.Iterate(targets, func(to int) {
		list.Add(board.NewMove(s.kingSq, to, board.MoveNormal))
	})
}

func (s *state) genCastling(list *board.MoveList) {
	if bitboard.PopCount(s.checkers) != 0 {
		return
	}
	b := s.b
	kingside, queenside := piece.RightsForColor(s.us)

	type castle struct {
		right   piece.CastlingRights
		kingTo  int
		transit int
		// path must be empty; for queenside this includes the knight's
		// home square, which only needs to be empty, not unattacked.
		path bitboard.Board
	}

	var cs []castle
	if s.us == piece.White {
		cs = []castle{
			{kingside, piece.G1, piece.F1, sq2(piece.F1, piece.G1)},
			{queenside, piece.C1, piece.D1, sq3(piece.B1, piece.C1, piece.D1)},
		}
	} else {
		cs = []castle{
			{kingside, piece.G8, piece.F8, sq2(piece.F8, piece.G8)},
			{queenside, piece.C8, piece.D8, sq3(piece.B8, piece.C8, piece.D8)},
		}
	}

	for _, c := range cs {
		if b.CastlingRights&c.right == 0 {
			continue
		}
		if b.AllOcc&c.path != 0 {
			continue
		}
		if s.threats&(bitboard.Board(1)<<uint(s.kingSq)) != 0 {
			continue
		}
		if s.threats&(bitboard.Board(1)<<uint(c.transit)) != 0 {
			continue
		}
		if s.threats&(bitboard.Board(1)<<uint(c.kingTo)) != 0 {
			continue
		}
		list.Add(board.NewMove(s.kingSq, c.kingTo, board.MoveCastling))
	}
}

func sq2(a, b int) bitboard.Board {
	return bitboard.Board(1)<<uint(a) | bitboard.Board(1)<<uint(b)
}

func sq3(a, b, c int) bitboard.Board {
	return sq2(a, b) | bitboard.Board(1)<<uint(c)
}
