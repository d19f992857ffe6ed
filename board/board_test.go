package board

import (
	"testing"

	"github.com/chooklii/rustyrook/piece"
	"github.com/chooklii/rustyrook/zobrist"
)

func TestStartPositionFEN(t *testing.T) {
	b := NewStartPosition()
	want := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	if got := b.FEN(); got != want {
		t.Fatalf("FEN() = %q, want %q", got, want)
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 b - - 0 1",
	}
	for _, fen := range fens {
		b, err := FromFEN(fen)
		if err != nil {
			t.Fatalf("FromFEN(%q) error: %v", fen, err)
		}
		if got := b.FEN(); got != fen {
			t.Fatalf("round trip %q -> %q", fen, got)
		}
	}
}

func TestHashMatchesFromScratch(t *testing.T) {
	b := NewStartPosition()
	want := zobrist.Hash(b.PieceAt, b.SideToMove, b.CastlingRights, b.EnPassant)
	if b.Hash != want {
		t.Fatalf("Hash = %d, want %d", b.Hash, want)
	}
}

func TestMakeUnmakeRoundTrip(t *testing.T) {
	b := NewStartPosition()
	before := b
	m := NewMove(piece.E2, piece.E4, MoveNormal)
	undo := b.MakeMove(m)

	color, typ, ok := b.PieceAt(piece.E4)
	if !ok || color != piece.White || typ != piece.Pawn {
		t.Fatalf("expected white pawn on e4 after e2e4")
	}
	if b.EnPassant != piece.E3 {
		t.Fatalf("EnPassant = %d, want e3 (%d)", b.EnPassant, piece.E3)
	}

	b.UnmakeMove(undo)
	if b != before {
		t.Fatalf("UnmakeMove did not restore the original board")
	}
}

func TestCastlingMovesRook(t *testing.T) {
	b, err := FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	b.MakeMove(NewMove(piece.E1, piece.G1, MoveCastling))

	if _, typ, ok := b.PieceAt(piece.F1); !ok || typ != piece.Rook {
		t.Fatalf("expected rook on f1 after O-O")
	}
	if _, _, ok := b.PieceAt(piece.H1); ok {
		t.Fatalf("expected h1 empty after O-O")
	}
	if b.CastlingRights&(piece.WhiteKingside|piece.WhiteQueenside) != 0 {
		t.Fatalf("expected white castling rights cleared after castling")
	}
}

func TestEnPassantCapture(t *testing.T) {
	b, err := FromFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	if err != nil {
		t.Fatal(err)
	}
	b.MakeMove(NewMove(piece.E5, piece.D6, MoveEnPassant))

	if _, _, ok := b.PieceAt(piece.D5); ok {
		t.Fatalf("expected captured pawn removed from d5")
	}
	if _, typ, ok := b.PieceAt(piece.D6); !ok || typ != piece.Pawn {
		t.Fatalf("expected capturing pawn on d6")
	}
}

func TestPromotion(t *testing.T) {
	b, err := FromFEN("8/P7/8/8/8/8/8/k6K w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	b.MakeMove(NewPromotionMove(piece.A7, piece.A8, PromoteQueen))

	if _, typ, ok := b.PieceAt(piece.A8); !ok || typ != piece.Queen {
		t.Fatalf("expected queen on a8 after promotion")
	}
}
