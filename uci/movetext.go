package uci

import (
	"strings"

	"github.com/chooklii/rustyrook/board"
	"github.com/chooklii/rustyrook/piece"
)

// parseMoveText parses a long-algebraic move "e2e4" or "e7e8q". The
// source protocol this engine was built to speak spells a knight
// promotion 'k' rather than the standard 'n'; both are accepted here.
func parseMoveText(text string) (from, to int, promo board.Promotion, ok bool) {
	if len(text) < 4 {
		return 0, 0, 0, false
	}
	from, ok = piece.SquareFromName(text[0:2])
	if !ok {
		return 0, 0, 0, false
	}
	to, ok = piece.SquareFromName(text[2:4])
	if !ok {
		return 0, 0, 0, false
	}
	if len(text) == 4 {
		return from, to, 0, true
	}
	p, ok := promotionFromLetter(text[4])
	return from, to, p, ok
}

func promotionFromLetter(c byte) (board.Promotion, bool) {
	switch c {
	case 'n', 'k':
		return board.PromoteKnight, true
	case 'b':
		return board.PromoteBishop, true
	case 'r':
		return board.PromoteRook, true
	case 'q':
		return board.PromoteQueen, true
	default:
		return 0, false
	}
}

func promotionLetterMatches(p board.Promotion, letter byte) bool {
	parsed, ok := promotionFromLetter(letter)
	return ok && parsed == p
}

// FormatMove renders m in long algebraic notation. Promotions always
// emit the standard 'n' for knight, regardless of which letter produced
// them on input.
func FormatMove(m board.Move) string {
	if m == 0 {
		return "0000"
	}
	var b strings.Builder
	b.Grow(5)
	b.WriteString(piece.SquareNames[m.From()])
	b.WriteString(piece.SquareNames[m.To()])
	if m.Type() == board.MovePromotion {
		b.WriteByte("nbrq"[m.Promotion()])
	}
	return b.String()
}
