// chessplay plays a two-player chess game from coordinate moves and prints
// the resulting position.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessplay version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	setupLogFile(cfg)
	moves, closeMoves := openMoveSource()

	err := run(cfg, moves)
	closeMoves()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// openMoveSource picks where moves come from: -moves and positional
// arguments first, then -i, then stdin.
func openMoveSource() (io.Reader, func()) {
	noop := func() {}

	var inline []string
	if *moveList != "" {
		inline = append(inline, *moveList)
	}
	inline = append(inline, flag.Args()...)
	if len(inline) > 0 {
		return strings.NewReader(strings.Join(inline, " ")), noop
	}

	if *inputFile != "" {
		file, err := os.Open(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening move file %s: %v\n", *inputFile, err)
			os.Exit(1)
		}
		return file, func() { file.Close() }
	}

	return os.Stdin, noop
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessplay [options] [moves...]\n\n")
	fmt.Fprintf(os.Stderr, "Plays coordinate moves (e2e4 or e2-e4) from the start position or -fen\n")
	fmt.Fprintf(os.Stderr, "and prints the resulting board. Stops at the first illegal move.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
