package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chooklii/rustyrook/bitboard"
	"github.com/chooklii/rustyrook/piece"
	"github.com/chooklii/rustyrook/zobrist"
)

// pieceSymbols maps (color, type) to its FEN letter.
var pieceSymbols = [2][6]byte{
	piece.White: {'P', 'N', 'B', 'R', 'Q', 'K'},
	piece.Black: {'p', 'n', 'b', 'r', 'q', 'k'},
}

// FromFEN parses a Forsyth-Edwards Notation string into a Board.
func FromFEN(fen string) (Board, error) {
	var b Board
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return b, fmt.Errorf("board: FEN %q has fewer than 4 fields", fen)
	}

	if err := parsePlacement(&b, fields[0]); err != nil {
		return b, err
	}

	switch fields[1] {
	case "w":
		b.SideToMove = piece.White
	case "b":
		b.SideToMove = piece.Black
	default:
		return b, fmt.Errorf("board: FEN %q has invalid active color %q", fen, fields[1])
	}

	for _, c := range fields[2] {
		switch c {
		case 'K':
			b.CastlingRights |= piece.WhiteKingside
		case 'Q':
			b.CastlingRights |= piece.WhiteQueenside
		case 'k':
			b.CastlingRights |= piece.BlackKingside
		case 'q':
			b.CastlingRights |= piece.BlackQueenside
		case '-':
		default:
			return b, fmt.Errorf("board: FEN %q has invalid castling field %q", fen, fields[2])
		}
	}

	b.EnPassant = piece.NoSquare
	if fields[3] != "-" {
		sq, ok := piece.SquareFromName(fields[3])
		if !ok {
			return b, fmt.Errorf("board: FEN %q has invalid en-passant square %q", fen, fields[3])
		}
		b.EnPassant = sq
	}

	b.HalfmoveClock = 0
	b.FullmoveNumber = 1
	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return b, fmt.Errorf("board: FEN %q has invalid halfmove clock: %w", fen, err)
		}
		b.HalfmoveClock = n
	}
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return b, fmt.Errorf("board: FEN %q has invalid fullmove number: %w", fen, err)
		}
		b.FullmoveNumber = n
	}

	b.Hash = zobrist.Hash(b.PieceAt, b.SideToMove, b.CastlingRights, b.EnPassant)
	return b, nil
}

func parsePlacement(b *Board, placement string) error {
	sq := 56 // FEN ranks run 8 -> 1, files a -> h within each rank.
	for _, c := range placement {
		switch {
		case c == '/':
			sq -= 16
		case c >= '1' && c <= '8':
			sq += int(c - '0')
		default:
			color, typ, ok := symbolToPiece(byte(c))
			if !ok {
				return fmt.Errorf("board: FEN placement %q has invalid character %q", placement, c)
			}
			if sq < 0 || sq > 63 {
				return fmt.Errorf("board: FEN placement %q overflows the board", placement)
			}
			b.placePieceNoHash(color, typ, sq)
			sq++
		}
	}
	return nil
}

// placePieceNoHash is placePiece without the Zobrist XOR, used while
// loading a FEN since the whole hash is recomputed from scratch afterward.
func (b *Board) placePieceNoHash(c piece.Color, t piece.Type, sq int) {
	bit := bitboard.Board(1) << uint(sq)
	b.Pieces[c][t] |= bit
	b.ColorOcc[c] |= bit
	b.AllOcc |= bit
}

func symbolToPiece(c byte) (piece.Color, piece.Type, bool) {
	for color := 0; color < 2; color++ {
		for t := 0; t < 6; t++ {
			if pieceSymbols[color][t] == c {
				return piece.Color(color), piece.Type(t), true
			}
		}
	}
	return 0, 0, false
}

// FEN serializes b into Forsyth-Edwards Notation.
func (b *Board) FEN() string {
	var s strings.Builder
	s.Grow(64)

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			color, typ, ok := b.PieceAt(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				s.WriteByte('0' + byte(empty))
				empty = 0
			}
			s.WriteByte(pieceSymbols[color][typ])
		}
		if empty > 0 {
			s.WriteByte('0' + byte(empty))
		}
		if rank != 0 {
			s.WriteByte('/')
		}
	}

	if b.SideToMove == piece.White {
		s.WriteString(" w ")
	} else {
		s.WriteString(" b ")
	}

	before := s.Len()
	if b.CastlingRights&piece.WhiteKingside != 0 {
		s.WriteByte('K')
	}
	if b.CastlingRights&piece.WhiteQueenside != 0 {
		s.WriteByte('Q')
	}
	if b.CastlingRights&piece.BlackKingside != 0 {
		s.WriteByte('k')
	}
	if b.CastlingRights&piece.BlackQueenside != 0 {
		s.WriteByte('q')
	}
	if s.Len() == before {
		s.WriteByte('-')
	}
	s.WriteByte(' ')

	if b.EnPassant == piece.NoSquare {
		s.WriteString("- ")
	} else {
		s.WriteString(piece.SquareNames[b.EnPassant])
		s.WriteByte(' ')
	}

	s.WriteString(strconv.Itoa(b.HalfmoveClock))
	s.WriteByte(' ')
	s.WriteString(strconv.Itoa(b.FullmoveNumber))

	return s.String()
}
