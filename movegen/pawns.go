package movegen

import (
	"github.com/chooklii/rustyrook/bitboard"
	"github.com/chooklii/rustyrook/board"
	"github.com/chooklii/rustyrook/magic"
	"github.com/chooklii/rustyrook/piece"
)

// pawnPushOne, pawnStartRank and pawnPromoRank depend on color;
// these helpers centralize that so genPawnMoves reads the same for both
// sides.
func pawnPushOne(from bitboard.Board, us piece.Color) bitboard.Board {
	if us == piece.White {
		return from << 8
	}
	return from >> 8
}

func pawnStartRank(us piece.Color) bitboard.Board {
	if us == piece.White {
		return magic.Rank2
	}
	return magic.Rank7
}

func pawnPromoRank(us piece.Color) bitboard.Board {
	if us == piece.White {
		return magic.Rank8
	}
	return magic.Rank1
}

func (s *state) genPawnMoves(list *board.MoveList, capturesOnly bool) {
	b := s.b
	promoRank := pawnPromoRank(s.us)

	bitboard.Iterate(b.Pieces[s.us][piece.Pawn], func(from int) {
		fromBit := bitboard.Board(1) << uint(from)

		var targets bitboard.Board
		one := pawnPushOne(fromBit, s.us) &^ b.AllOcc
		if capturesOnly {
			targets |= one & promoRank
		} else {
			targets |= one
			if one != 0 && fromBit&pawnStartRank(s.us) != 0 {
				two := pawnPushOne(one, s.us) &^ b.AllOcc
				targets |= two
			}
		}
		targets |= magic.PawnAttacks[s.us][from] & b.ColorOcc[s.them]

		targets = s.legalDestinations(from, targets)

		bitboard.Iterate(targets, func(to int) {
			toBit := bitboard.Board(1) << uint(to)
			if toBit&promoRank != 0 {
				list.Add(board.NewPromotionMove(from, to, board.PromoteQueen))
				list.Add(board.NewPromotionMove(from, to, board.PromoteRook))
				list.Add(board.NewPromotionMove(from, to, board.PromoteBishop))
				list.Add(board.NewPromotionMove(from, to, board.PromoteKnight))
			} else {
				list.Add(board.NewMove(from, to, board.MoveNormal))
			}
		})

		if b.EnPassant != piece.NoSquare {
			epBit := bitboard.Board(1) << uint(b.EnPassant)
			if magic.PawnAttacks[s.us][from]&epBit != 0 &&
				s.enPassantResolvesCheck(from, b.EnPassant) &&
				s.enPassantRespectsPin(from, b.EnPassant) &&
				s.enPassantIsLegal(from, b.EnPassant) {
				list.Add(board.NewMove(from, b.EnPassant, board.MoveEnPassant))
			}
		}
	})
}

// enPassantRespectsPin rejects an en-passant capture by a pinned pawn
// whose destination does not lie on the pin ray.
func (s *state) enPassantRespectsPin(from, epSquare int) bool {
	ray, pinned := s.pinned[from]
	if !pinned {
		return true
	}
	return ray&(bitboard.Board(1)<<uint(epSquare)) != 0
}

// enPassantResolvesCheck rejects an en-passant capture while in check
// unless the captured pawn is the checking piece (en passant can only
// remove a checker, never block a sliding check).
func (s *state) enPassantResolvesCheck(from, epSquare int) bool {
	if bitboard.PopCount(s.checkers) == 0 {
		return true
	}
	capturedSq := epSquare - 8
	if s.us == piece.Black {
		capturedSq = epSquare + 8
	}
	return s.checkers&(bitboard.Board(1)<<uint(capturedSq)) != 0
}

// enPassantIsLegal rejects the rare case where an en-passant capture
// removes both the capturing and captured pawn from the same rank as the
// king, exposing it to a rook or queen along that rank.
func (s *state) enPassantIsLegal(from, epSquare int) bool {
	b := s.b
	capturedSq := epSquare - 8
	if s.us == piece.Black {
		capturedSq = epSquare + 8
	}

	if piece.Rank(s.kingSq) != piece.Rank(from) || piece.Rank(s.kingSq) != piece.Rank(capturedSq) {
		return true
	}

	occAfter := b.AllOcc
	occAfter &^= bitboard.Board(1) << uint(from)
	occAfter &^= bitboard.Board(1) << uint(capturedSq)
	occAfter |= bitboard.Board(1) << uint(epSquare)

	rooksQueens := b.Pieces[s.them][piece.Rook] | b.Pieces[s.them][piece.Queen]
	return magic.RookAttacks(s.kingSq, occAfter)&rooksQueens == 0
}
