package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

// Command-line flags
var (
	// Position input
	boardFile    = flag.String("board", "", "Board file (default: standard start position)")
	compactBoard = flag.String("compact", "", "Board in compact form, e.g. 8/8/8/3k4/8/8/4K3/8")
	sideToMove   = flag.String("side", "", "Side to move: white or black")
	prevMove     = flag.String("prev", "", "Opponent's previous move as two square names, e.g. e7e5")

	// Commands
	listLegal = flag.Bool("legal", false, "List every legal move for the side to move")
	showState = flag.Bool("state", false, "Print SAFE, CHECK or CHECKMATE for the side to move")
	moveList  = flag.String("moves", "", "Space-separated moves in algebraic notation to play in turn")
	batchFile = flag.String("batch", "", "Classify each 'COMPACT SIDE' line of this file")

	// Output
	outputFormat = flag.String("format", "", "Board output format: text or compact")
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	noBoard      = flag.Bool("noboard", false, "Don't print the board after -moves")
	coordinates  = flag.Bool("coords", false, "Follow each played move with its square coordinates")

	// Diagnostics
	logFile = flag.String("l", "", "Write diagnostics to this file")
	verbose = flag.Bool("v", false, "Running commentary on stderr")
	quiet   = flag.Bool("s", false, "Silent mode (no diagnostics)")

	// Concurrency
	workers = flag.Int("workers", 0, "Number of worker goroutines (0 = one per CPU)")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration. Flags win
// over the environment.
func applyFlags(cfg *config.Config) error {
	if err := applySideFlag(cfg); err != nil {
		return err
	}
	if err := applyFormatFlags(cfg); err != nil {
		return err
	}
	applyOutputFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	if *workers != 0 {
		cfg.Workers = *workers
	}
	return cfg.Validate()
}

// applySideFlag sets the side to move.
func applySideFlag(cfg *config.Config) error {
	if *sideToMove == "" {
		return nil
	}
	side, ok := chess.ParseSide(*sideToMove)
	if !ok {
		return fmt.Errorf("unknown side %q (want white or black)", *sideToMove)
	}
	cfg.Side = side
	return nil
}

// applyFormatFlags configures board input and output formats.
func applyFormatFlags(cfg *config.Config) error {
	if *compactBoard != "" {
		cfg.InputFormat = config.CompactFormat
	}
	if *outputFormat == "" {
		return nil
	}
	format, err := config.ParseBoardFormat(*outputFormat)
	if err != nil {
		return err
	}
	cfg.Output.Format = format
	return nil
}

// applyOutputFlags configures what -moves prints.
func applyOutputFlags(cfg *config.Config) {
	if *noBoard {
		cfg.Output.ShowBoard = false
	}
	if *coordinates {
		cfg.Output.Coordinates = true
	}
}
