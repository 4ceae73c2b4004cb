// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Game setup
	startFEN  = flag.String("fen", "", "Start from this FEN position (default: standard start)")
	moveList  = flag.String("moves", "", "Moves to play, e.g. \"e2e4 e7e5 g1f3\"")
	inputFile = flag.String("i", "", "Read moves from this file (default: stdin when -moves is absent)")

	// Output options
	asciiBoard = flag.Bool("ascii", false, "Draw pieces as letters instead of Unicode glyphs")
	noCoords   = flag.Bool("nocoords", false, "Don't draw rank and file labels")
	showLegal  = flag.Bool("legal", false, "List legal moves for the side to move")
	selectSq   = flag.String("select", "", "List legal destinations of the piece on this square, e.g. e2")
	showFEN    = flag.Bool("showfen", false, "Print the final position as FEN")
	jsonOutput = flag.Bool("json", false, "Output the final state in JSON format")

	// Logging
	verbose = flag.Bool("v", false, "Log every move played")
	quiet   = flag.Bool("q", false, "Quiet mode (no summary)")
	logFile = flag.String("l", "", "Write log messages to this file (default: stderr)")

	// Misc
	version = flag.Bool("version", false, "Show version")
	help    = flag.Bool("h", false, "Show help")
)

// applyFlags copies command-line flag values into cfg.
func applyFlags(cfg *config.Config) {
	if *startFEN != "" {
		cfg.StartFEN = *startFEN
	}

	if *asciiBoard {
		cfg.Output.Glyphs = config.LetterGlyphs
	}
	cfg.Output.ShowCoordinates = !*noCoords
	cfg.Output.ShowLegalMoves = *showLegal
	cfg.Output.Select = *selectSq
	cfg.Output.ShowFEN = *showFEN
	cfg.Output.JSONFormat = *jsonOutput

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}
