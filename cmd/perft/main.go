// Command perft walks the legal-move tree from a position to a fixed
// depth and reports the leaf count, the standard correctness oracle for
// a move generator.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/clinaresl/table"
	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chooklii/rustyrook/board"
	"github.com/chooklii/rustyrook/perft"
)

var log = logging.MustGetLogger("perft")

func main() {
	depth := flag.Int("depth", 5, "perft depth")
	fen := flag.String("fen", "", "FEN to start from (defaults to the initial position)")
	divide := flag.Bool("divide", false, "report per-root-move node counts")
	cpuprofile := flag.String("cpuprofile", "", "file to write a CPU profile to")
	memprofile := flag.String("memprofile", "", "file to write a memory profile to")
	flag.Parse()

	setupLogging()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	var b board.Board
	if *fen == "" {
		b = board.NewStartPosition()
	} else {
		var err error
		b, err = board.FromFEN(*fen)
		if err != nil {
			log.Fatalf("parsing -fen: %v", err)
		}
	}

	start := time.Now()
	if *divide {
		entries, total := perft.Divide(b, *depth)
		if err := printDivideTable(entries, total); err != nil {
			log.Warningf("table rendering failed, falling back to plain output: %v", err)
			fmt.Print(perft.FormatDivide(entries, total))
		}
		log.Noticef("depth %d: %d nodes in %s", *depth, total, time.Since(start))
	} else {
		nodes := perft.Count(b, *depth)
		log.Noticef("depth %d: %d nodes in %s", *depth, nodes, time.Since(start))
	}

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal(err)
		}
	}
}

func setupLogging() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:.4s} %{module}: %{message}`,
	))
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
}

// printDivideTable renders a Divide report as an aligned table, with
// node counts thousands-separated for readability on deep perft runs.
func printDivideTable(entries []perft.DivideEntry, total int64) error {
	t, err := table.NewTable("lr")
	if err != nil {
		return err
	}
	p := message.NewPrinter(language.English)
	for _, e := range entries {
		if err := t.AddRow(perft.FormatMove(e.Move), p.Sprintf("%d", e.Nodes)); err != nil {
			return err
		}
	}
	if err := t.AddThickRule(); err != nil {
		return err
	}
	if err := t.AddRow("total", p.Sprintf("%d", total)); err != nil {
		return err
	}
	fmt.Print(t.String())
	return nil
}
