// chess-rules is a tool for checking chess positions: legal moves, check
// state and algebraic move sequences on boards of any size.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
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
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := config.LoadEnv(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, cfg)
	stop()
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

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// run dispatches to the requested commands. With no command it prints the
// board and its check state. ctx only bounds a batch run.
func run(ctx context.Context, cfg *config.Config) error {
	if *batchFile != "" {
		file, err := os.Open(*batchFile) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			return fmt.Errorf("opening batch file: %w", err)
		}
		defer file.Close() //nolint:errcheck // read-only
		return runBatch(ctx, file, cfg)
	}

	pos, err := loadPosition(cfg)
	if err != nil {
		return err
	}
	cfg.Logf(2, "%dx%d board, %s to move", pos.board.Rows(), pos.board.Cols(), pos.side)

	ran := false
	if *showState {
		if err := runState(pos, cfg); err != nil {
			return err
		}
		ran = true
	}
	if *listLegal {
		if err := runLegal(pos, cfg); err != nil {
			return err
		}
		ran = true
	}
	if *moveList != "" {
		if err := runMoves(pos, strings.Fields(*moveList), cfg); err != nil {
			return err
		}
		ran = true
	}

	if !ran {
		fmt.Fprintln(cfg.OutputFile, formatBoard(pos.board, cfg.Output.Format))
		return runState(pos, cfg)
	}
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Checks chess positions on boards of any size.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
	fmt.Fprintf(os.Stderr, "  %sVERBOSITY, %sWORKERS, %sSIDE, %sINPUT_FORMAT,\n",
		config.EnvPrefix, config.EnvPrefix, config.EnvPrefix, config.EnvPrefix)
	fmt.Fprintf(os.Stderr, "  %sOUTPUT_FORMAT, %sOUTPUT_SHOW_BOARD, %sOUTPUT_COORDINATES\n",
		config.EnvPrefix, config.EnvPrefix, config.EnvPrefix)
}
