// Package book loads a line-oriented opening book: a sequence of
// "pos <FEN>" headers each followed by the long-algebraic moves known
// good from that position, keyed for lookup by the position's Zobrist
// hash. A missing or malformed book file is non-fatal — the engine
// simply plays without one.
package book

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/chooklii/rustyrook/board"
	"github.com/chooklii/rustyrook/piece"
)

// Move is a raw long-algebraic move read from the book: a (from, to)
// square pair and an optional promotion letter. The book does not
// validate these against any position; the caller matches them against
// the legal moves actually available.
type Move struct {
	From, To  int
	Promotion byte // 0 if the line carried no promotion letter
}

// Book maps a position's Zobrist hash to the moves recorded for it.
type Book struct {
	entries map[uint64][]Move
}

// Empty returns a Book with no entries, equivalent to playing without a
// book.
func Empty() *Book {
	return &Book{entries: make(map[uint64][]Move)}
}

// Load reads an opening book file. On any read or parse error it logs
// nothing itself — callers should report the error via their own logger
// and fall back to Empty() — since failing to find a book must never
// abort the engine.
func Load(path string) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("book: open %q: %w", path, err)
	}
	defer f.Close()

	b := &Book{entries: make(map[uint64][]Move)}
	var currentHash uint64
	haveCurrent := false

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "pos") {
			fen := strings.TrimSpace(strings.TrimPrefix(line, "pos"))
			pos, err := board.FromFEN(fen)
			if err != nil {
				return nil, fmt.Errorf("book: %q line %d: %w", path, lineNo, err)
			}
			currentHash = pos.Hash
			haveCurrent = true
			if _, ok := b.entries[currentHash]; !ok {
				b.entries[currentHash] = nil
			}
			continue
		}
		if !haveCurrent {
			return nil, fmt.Errorf("book: %q line %d: move line before any \"pos\" header", path, lineNo)
		}
		m, ok := parseMoveLine(line)
		if !ok {
			return nil, fmt.Errorf("book: %q line %d: malformed move %q", path, lineNo, line)
		}
		b.entries[currentHash] = append(b.entries[currentHash], m)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("book: reading %q: %w", path, err)
	}
	return b, nil
}

// parseMoveLine parses a bare "e2e4" or "e7e8q" move line. Knight
// promotions may be spelled with either 'k' or 'n', matching the UCI
// layer's own input leniency.
func parseMoveLine(line string) (Move, bool) {
	if len(line) < 4 {
		return Move{}, false
	}
	from, ok := piece.SquareFromName(line[0:2])
	if !ok {
		return Move{}, false
	}
	to, ok := piece.SquareFromName(line[2:4])
	if !ok {
		return Move{}, false
	}
	m := Move{From: from, To: to}
	if len(line) >= 5 {
		m.Promotion = line[4]
	}
	return m, true
}

// Lookup returns the moves recorded for the position with the given
// Zobrist hash, or nil if the position is not in the book.
func (b *Book) Lookup(hash uint64) []Move {
	return b.entries[hash]
}

// Len reports how many distinct positions the book covers.
func (b *Book) Len() int { return len(b.entries) }
