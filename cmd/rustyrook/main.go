// Command rustyrook runs the engine's UCI protocol loop against stdin
// and stdout, the binary a UCI-speaking chess GUI launches as a
// sub-process.
package main

import (
	"flag"
	"os"

	"github.com/op/go-logging"

	"github.com/chooklii/rustyrook/book"
	"github.com/chooklii/rustyrook/uci"
)

var log = logging.MustGetLogger("rustyrook")

func main() {
	bookPath := flag.String("book", "openings.txt", "opening book file (missing/unreadable is non-fatal)")
	verbose := flag.Bool("verbose", false, "enable debug-level logging to stderr")
	flag.Parse()

	setupLogging(*verbose)

	b, err := book.Load(*bookPath)
	if err != nil {
		log.Warningf("opening book unavailable, playing without one: %v", err)
		b = book.Empty()
	} else {
		log.Infof("loaded opening book %q: %d positions", *bookPath, b.Len())
	}

	engine := uci.NewEngine(os.Stdout, b)
	engine.Loop(os.Stdin)
}

func setupLogging(verbose bool) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:.4s} %{module}: %{message}`,
	))
	level := logging.INFO
	if verbose {
		level = logging.DEBUG
	}
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(level, "")
	logging.SetBackend(leveled)
}
