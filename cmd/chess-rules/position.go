package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

// position bundles the inputs every command works from.
type position struct {
	board *chess.Board
	side  chess.Side
	prev  *chess.Move
}

// loadPosition builds the starting position from flags and configuration.
func loadPosition(cfg *config.Config) (position, error) {
	board, err := loadBoard(cfg)
	if err != nil {
		return position{}, err
	}
	prev, err := parsePrevMove(*prevMove, board)
	if err != nil {
		return position{}, err
	}
	return position{board: board, side: cfg.Side, prev: prev}, nil
}

// loadBoard reads the board named by -compact or -board, falling back to
// the standard start position.
func loadBoard(cfg *config.Config) (*chess.Board, error) {
	if *compactBoard != "" {
		return chess.ParseCompact(*compactBoard)
	}
	if *boardFile == "" {
		return chess.StandardBoard(), nil
	}

	data, err := os.ReadFile(*boardFile) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, fmt.Errorf("reading board file: %w", err)
	}
	return parseBoard(string(data), cfg.InputFormat)
}

// parseBoard parses board text in the given format.
func parseBoard(text string, format config.BoardFormat) (*chess.Board, error) {
	if format == config.CompactFormat {
		return chess.ParseCompact(strings.TrimSpace(text))
	}
	return chess.Parse(text)
}

// formatBoard renders the board in the given format.
func formatBoard(b *chess.Board, format config.BoardFormat) string {
	if format == config.CompactFormat {
		return chess.SerializeCompact(b)
	}
	return chess.Serialize(b)
}

// parsePrevMove parses a move written as two adjacent square names, such as
// "e7e5" or "a10a8". An empty string means there is no previous move.
func parsePrevMove(s string, board *chess.Board) (*chess.Move, error) {
	if s == "" {
		return nil, nil
	}

	split := -1
	for i := 1; i < len(s); i++ {
		if s[i] >= 'a' && s[i] <= 'z' {
			split = i
			break
		}
	}
	if split < 0 {
		return nil, fmt.Errorf("previous move %q: want two square names such as e7e5", s)
	}

	from, err := chess.ParseSquare(s[:split], board.Rows(), board.Cols())
	if err != nil {
		return nil, fmt.Errorf("previous move %q: %w", s, err)
	}
	to, err := chess.ParseSquare(s[split:], board.Rows(), board.Cols())
	if err != nil {
		return nil, fmt.Errorf("previous move %q: %w", s, err)
	}
	return &chess.Move{From: from, To: to}, nil
}
