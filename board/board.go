// Package board implements the position representation the rest of the
// engine operates on: piece bitboards, side to move, castling rights, the
// en-passant target, and an incrementally maintained Zobrist hash.
package board

import (
	"github.com/chooklii/rustyrook/bitboard"
	"github.com/chooklii/rustyrook/magic"
	"github.com/chooklii/rustyrook/piece"
	"github.com/chooklii/rustyrook/zobrist"
)

// Board is a chessboard position: piece placement, side to move, castling
// rights, en-passant target and incremental Zobrist hash.
//
// Invariants (see MakeMove/UnmakeMove): Pieces[c][t] for distinct (c, t)
// never intersect; ColorOcc[c] is the union of Pieces[c][*]; AllOcc is
// ColorOcc[White]|ColorOcc[Black]; Hash equals zobrist.Hash of the current
// state.
type Board struct {
	Pieces   [2][6]bitboard.Board
	ColorOcc [2]bitboard.Board
	AllOcc   bitboard.Board

	SideToMove     piece.Color
	CastlingRights piece.CastlingRights
	EnPassant      int // piece.NoSquare when absent

	HalfmoveClock  int
	FullmoveNumber int

	Hash uint64
}

// MoveType is the move-kind tag stored in the top 2 bits of a Move.
type MoveType int

const (
	MoveNormal MoveType = iota
	MoveEnPassant
	MoveCastling
	MovePromotion
)

// Promotion identifies the piece type a pawn promotes to. Only Knight,
// Bishop, Rook and Queen are valid promotion targets.
type Promotion int

const (
	PromoteKnight Promotion = iota
	PromoteBishop
	PromoteRook
	PromoteQueen
)

// pieceForPromotion maps a Promotion tag to its piece.Type.
func (p Promotion) pieceForPromotion() piece.Type {
	return [...]piece.Type{piece.Knight, piece.Bishop, piece.Rook, piece.Queen}[p]
}

// Move is a chess move encoded as a 16-bit word:
//
//	0-5:   To square
//	6-11:  From square
//	12-13: Promotion piece (meaningful only when Type == MovePromotion)
//	14-15: MoveType
type Move uint16

// NewMove builds a non-promotion move of the given type.
func NewMove(from, to int, t MoveType) Move {
	return Move(to | from<<6 | int(t)<<14)
}

// NewPromotionMove builds a promotion move.
func NewPromotionMove(from, to int, promo Promotion) Move {
	return Move(to | from<<6 | int(promo)<<12 | int(MovePromotion)<<14)
}

func (m Move) From() int             { return int(m>>6) & 0x3F }
func (m Move) To() int               { return int(m) & 0x3F }
func (m Move) Promotion() Promotion  { return Promotion(m>>12) & 0x3 }
func (m Move) Type() MoveType        { return MoveType(m>>14) & 0x3 }

// MoveList is a fixed-capacity buffer of legal moves; 218 is the largest
// known legal move count in any reachable chess position.
type MoveList struct {
	Moves [218]Move
	Count int
}

// Add appends m to the list.
func (l *MoveList) Add(m Move) {
	l.Moves[l.Count] = m
	l.Count++
}

// Slice returns the populated prefix of the list.
func (l *MoveList) Slice() []Move { return l.Moves[:l.Count] }

// NewStartPosition returns the standard chess starting position.
func NewStartPosition() Board {
	b, err := FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		panic("board: start position FEN is malformed: " + err.Error())
	}
	return b
}

// PieceAt reports the color and type of the piece occupying sq, if any.
func (b *Board) PieceAt(sq int) (piece.Color, piece.Type, bool) {
	bit := bitboard.Board(1) << uint(sq)
	for c := 0; c < 2; c++ {
		if b.ColorOcc[c]&bit == 0 {
			continue
		}
		for t := 0; t < 6; t++ {
			if b.Pieces[c][t]&bit != 0 {
				return piece.Color(c), piece.Type(t), true
			}
		}
	}
	return 0, 0, false
}

// placePiece adds a piece to the board and updates occupancy/hash.
func (b *Board) placePiece(c piece.Color, t piece.Type, sq int) {
	bit := bitboard.Board(1) << uint(sq)
	b.Pieces[c][t] |= bit
	b.ColorOcc[c] |= bit
	b.AllOcc |= bit
	b.Hash ^= zobrist.PieceSquare[c][t][sq]
}

// removePiece removes a piece from the board and updates occupancy/hash.
func (b *Board) removePiece(c piece.Color, t piece.Type, sq int) {
	bit := bitboard.Board(1) << uint(sq)
	b.Pieces[c][t] &^= bit
	b.ColorOcc[c] &^= bit
	b.AllOcc &^= bit
	b.Hash ^= zobrist.PieceSquare[c][t][sq]
}

// IsAttacked reports whether sq is attacked by any piece of color by.
func (b *Board) IsAttacked(sq int, by piece.Color) bool {
	opp := by
	if magic.PawnAttacks[opp.Opponent()][sq]&b.Pieces[opp][piece.Pawn] != 0 {
		return true
	}
	if magic.KnightAttacks[sq]&b.Pieces[opp][piece.Knight] != 0 {
		return true
	}
	if magic.KingAttacks[sq]&b.Pieces[opp][piece.King] != 0 {
		return true
	}
	bishopsQueens := b.Pieces[opp][piece.Bishop] | b.Pieces[opp][piece.Queen]
	if magic.BishopAttacks(sq, b.AllOcc)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := b.Pieces[opp][piece.Rook] | b.Pieces[opp][piece.Queen]
	if magic.RookAttacks(sq, b.AllOcc)&rooksQueens != 0 {
		return true
	}
	return false
}

// KingSquare returns the square of c's king.
func (b *Board) KingSquare(c piece.Color) int {
	return bitboard.FirstSet(b.Pieces[c][piece.King])
}

// InCheck reports whether the side to move is currently in check.
func (b *Board) InCheck() bool {
	return b.IsAttacked(b.KingSquare(b.SideToMove), b.SideToMove.Opponent())
}

// MakeMove applies m and returns the board snapshot needed to undo it.
// The caller must ensure m is at least pseudo-legal.
func (b *Board) MakeMove(m Move) Board {
	undo := *b

	us := b.SideToMove
	them := us.Opponent()
	from, to := m.From(), m.To()

	_, movedType, ok := b.PieceAt(from)
	if !ok {
		panic("board: MakeMove called with no piece on the origin square")
	}

	if b.EnPassant != piece.NoSquare {
		b.Hash ^= zobrist.EnPassantFile[piece.File(b.EnPassant)]
	}
	b.EnPassant = piece.NoSquare

	isCapture := m.Type() == MoveEnPassant
	if capColor, capType, ok := b.PieceAt(to); ok && m.Type() != MoveEnPassant {
		b.removePiece(capColor, capType, to)
		isCapture = true
	}

	switch m.Type() {
	case MoveNormal:
		b.removePiece(us, movedType, from)
		b.placePiece(us, movedType, to)

	case MoveEnPassant:
		b.removePiece(us, piece.Pawn, from)
		b.placePiece(us, piece.Pawn, to)
		capSq := to - 8
		if us == piece.Black {
			capSq = to + 8
		}
		b.removePiece(them, piece.Pawn, capSq)

	case MoveCastling:
		b.removePiece(us, piece.King, from)
		b.placePiece(us, piece.King, to)
		switch to {
		case piece.G1:
			b.removePiece(us, piece.Rook, piece.H1)
			b.placePiece(us, piece.Rook, piece.F1)
		case piece.G8:
			b.removePiece(us, piece.Rook, piece.H8)
			b.placePiece(us, piece.Rook, piece.F8)
		case piece.C1:
			b.removePiece(us, piece.Rook, piece.A1)
			b.placePiece(us, piece.Rook, piece.D1)
		case piece.C8:
			b.removePiece(us, piece.Rook, piece.A8)
			b.placePiece(us, piece.Rook, piece.D8)
		}

	case MovePromotion:
		b.removePiece(us, piece.Pawn, from)
		b.placePiece(us, m.Promotion().pieceForPromotion(), to)
	}

	if movedType == piece.Pawn || isCapture {
		b.HalfmoveClock = 0
	} else {
		b.HalfmoveClock++
	}
	if movedType == piece.Pawn {
		if us == piece.White && to-from == 16 {
			b.EnPassant = from + 8
		} else if us == piece.Black && from-to == 16 {
			b.EnPassant = from - 8
		}
	}
	if b.EnPassant != piece.NoSquare {
		b.Hash ^= zobrist.EnPassantFile[piece.File(b.EnPassant)]
	}

	prevRights := b.CastlingRights
	b.updateCastlingRights(movedType, us, from, to)
	if prevRights != b.CastlingRights {
		b.Hash ^= zobrist.CastlingKey(prevRights)
		b.Hash ^= zobrist.CastlingKey(b.CastlingRights)
	}

	if us == piece.Black {
		b.FullmoveNumber++
	}
	b.SideToMove = them
	b.Hash ^= zobrist.Side

	return undo
}

// updateCastlingRights clears rights invalidated by a king or rook move
// (or a rook being captured on its home square).
func (b *Board) updateCastlingRights(movedType piece.Type, us piece.Color, from, to int) {
	kingside, queenside := piece.RightsForColor(us)
	switch movedType {
	case piece.King:
		b.CastlingRights &^= kingside | queenside
	case piece.Rook:
		homeKingside, homeQueenside := piece.H1, piece.A1
		if us == piece.Black {
			homeKingside, homeQueenside = piece.H8, piece.A8
		}
		if from == homeKingside {
			b.CastlingRights &^= kingside
		} else if from == homeQueenside {
			b.CastlingRights &^= queenside
		}
	}
	// A captured rook on its home square also forfeits that right,
	// regardless of which side moved.
	whiteKingside, whiteQueenside := piece.RightsForColor(piece.White)
	blackKingside, blackQueenside := piece.RightsForColor(piece.Black)
	if to == piece.H1 {
		b.CastlingRights &^= whiteKingside
	}
	if to == piece.A1 {
		b.CastlingRights &^= whiteQueenside
	}
	if to == piece.H8 {
		b.CastlingRights &^= blackKingside
	}
	if to == piece.A8 {
		b.CastlingRights &^= blackQueenside
	}
}

// UnmakeMove restores the board to the snapshot returned by MakeMove.
func (b *Board) UnmakeMove(undo Board) {
	*b = undo
}
