// Package uci implements the Universal Chess Interface text protocol
// loop: it parses uci/isready/ucinewgame/position/go/debug/quit command
// lines from a reader, drives the board/search/book core, and writes the
// matching UCI responses to a writer.
package uci

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"github.com/chooklii/rustyrook/board"
	"github.com/chooklii/rustyrook/book"
	"github.com/chooklii/rustyrook/cli"
	"github.com/chooklii/rustyrook/movegen"
	"github.com/chooklii/rustyrook/search"
)

var log = logging.MustGetLogger("uci")

// EngineName and EngineAuthor are reported in response to the "uci"
// command.
const (
	EngineName   = "RustyRook"
	EngineAuthor = "Benjamin Zenth"
)

// DefaultSearchDepth bounds "go" when the caller supplies no depth
// parameter of its own; time parameters are not read.
const DefaultSearchDepth = 6

// DefaultTableSize is the number of transposition-table slots allocated
// for a fresh Engine.
const DefaultTableSize = 1 << 20

// Engine holds the protocol loop's per-game state: the current position,
// the search driver and its transposition table, and an optional opening
// book.
type Engine struct {
	board    board.Board
	searcher *search.Searcher
	book     *book.Book

	out io.Writer
}

// NewEngine returns an Engine at the standard starting position with a
// fresh transposition table. A nil book is replaced with an empty one.
func NewEngine(out io.Writer, b *book.Book) *Engine {
	if b == nil {
		b = book.Empty()
	}
	return &Engine{
		board:    board.NewStartPosition(),
		searcher: search.NewSearcher(DefaultTableSize),
		book:     b,
		out:      out,
	}
}

// Loop reads whitespace-split command lines from in until EOF or a
// "quit" command, dispatching each to the matching handler.
func (e *Engine) Loop(in io.Reader) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		log.Debugf("recv: %s", line)
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if e.dispatch(fields) {
			return
		}
	}
	if err := scanner.Err(); err != nil {
		log.Errorf("reading stdin: %v", err)
	}
}

// dispatch handles one command line, returning true if the loop should
// stop (a "quit" command).
func (e *Engine) dispatch(fields []string) (quit bool) {
	switch fields[0] {
	case "uci":
		e.sendUCI()
	case "isready":
		e.send("readyok")
	case "ucinewgame":
		e.newGame()
	case "position":
		e.setPosition(fields[1:])
	case "go":
		e.goSearch(fields[1:])
	case "debug":
		e.send(cli.FormatBoard(&e.board))
	case "quit":
		return true
	default:
		log.Warningf("unrecognized command: %s", fields[0])
	}
	return false
}

func (e *Engine) send(msg string) {
	fmt.Fprintln(e.out, msg)
}

func (e *Engine) sendUCI() {
	e.send("id name " + EngineName)
	e.send("id author " + EngineAuthor)
	e.send("uciok")
}

func (e *Engine) newGame() {
	e.board = board.NewStartPosition()
	e.searcher.TT.Clear()
}

// setPosition handles "position [startpos | fen <FEN>] [moves ...]".
func (e *Engine) setPosition(fields []string) {
	if len(fields) == 0 {
		return
	}

	i := 0
	switch fields[0] {
	case "startpos":
		e.board = board.NewStartPosition()
		i = 1
	case "fen":
		end := i + 1
		for end < len(fields) && fields[end] != "moves" {
			end++
		}
		fen := strings.Join(fields[1:end], " ")
		b, err := board.FromFEN(fen)
		if err != nil {
			log.Warningf("position fen: %v", err)
			return
		}
		e.board = b
		i = end
	default:
		log.Warningf("position: expected startpos or fen, got %q", fields[0])
		return
	}

	if i < len(fields) && fields[i] == "moves" {
		for _, text := range fields[i+1:] {
			if !e.applyUCIMove(text) {
				log.Warningf("position: illegal or malformed move %q", text)
				return
			}
		}
	}
}

// applyUCIMove parses a long-algebraic move, matches it against the
// legal moves in the current position and, if legal, plays it.
func (e *Engine) applyUCIMove(text string) bool {
	from, to, promo, ok := parseMoveText(text)
	if !ok {
		return false
	}
	legal := movegen.Generate(&e.board)
	for _, m := range legal.Slice() {
		if m.From() != from || m.To() != to {
			continue
		}
		if m.Type() == board.MovePromotion && m.Promotion() != promo {
			continue
		}
		e.board.MakeMove(m)
		return true
	}
	return false
}

// goSearch runs a search to DefaultSearchDepth (or an explicit "depth N"
// if present) and emits "bestmove <move>". A book hit short-circuits the
// search entirely.
func (e *Engine) goSearch(fields []string) {
	depth := DefaultSearchDepth
	for i, f := range fields {
		if f == "depth" && i+1 < len(fields) {
			if d, err := strconv.Atoi(fields[i+1]); err == nil {
				depth = d
			}
		}
	}

	if moves := e.book.Lookup(e.board.Hash); len(moves) > 0 {
		if m, ok := e.matchBookMove(moves[0]); ok {
			e.send("bestmove " + FormatMove(m))
			return
		}
	}

	result := e.searcher.Search(context.Background(), e.board, depth)
	e.send("bestmove " + FormatMove(result.BestMove))
}

// matchBookMove resolves a book.Move (a bare from/to/promotion letter)
// against the legal moves of the current position, since the book
// itself never records a move's Type.
func (e *Engine) matchBookMove(bm book.Move) (board.Move, bool) {
	legal := movegen.Generate(&e.board)
	for _, m := range legal.Slice() {
		if m.From() != bm.From || m.To() != bm.To {
			continue
		}
		if m.Type() == board.MovePromotion && bm.Promotion != 0 && !promotionLetterMatches(m.Promotion(), bm.Promotion) {
			continue
		}
		return m, true
	}
	return 0, false
}
