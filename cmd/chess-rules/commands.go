package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/notation"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// promotionChoices lists the pieces a promoting pawn may become, strongest first.
var promotionChoices = []chess.PieceType{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// runState prints the check state of the side to move.
func runState(pos position, cfg *config.Config) error {
	state, err := engine.Classify(pos.prev, pos.side, pos.board)
	if err != nil {
		return err
	}
	fmt.Fprintf(cfg.OutputFile, "%s: %s\n", pos.side, state)
	return nil
}

// runLegal prints every legal move of the side to move in algebraic
// notation, one per line, in row-major order of origin square.
func runLegal(pos position, cfg *config.Config) error {
	moves, err := engine.AllLegalMoves(pos.prev, pos.side, pos.board, cfg.Workers)
	if err != nil {
		return err
	}
	cfg.Logf(2, "%d legal move(s) for %s", len(moves), pos.side)

	for _, m := range moves {
		names, err := encodeChoices(m, pos)
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(cfg.OutputFile, name)
		}
	}
	return nil
}

// encodeChoices encodes a legal move, expanding promotions into one
// notation per promotion piece.
func encodeChoices(m chess.MoveWithTake, pos position) ([]string, error) {
	full := chess.FullMove{Move: m.Move, Take: m.Take}

	promotes, err := engine.CanPromote(m.Move, pos.side, pos.board)
	if err != nil {
		return nil, err
	}
	if !promotes {
		name, err := notation.Encode(full, pos.prev, pos.side, pos.board)
		if err != nil {
			return nil, err
		}
		return []string{name}, nil
	}

	names := make([]string, 0, len(promotionChoices))
	for _, pt := range promotionChoices {
		full.Promotion = pt
		name, err := notation.Encode(full, pos.prev, pos.side, pos.board)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// runMoves decodes and plays each move in turn, alternating sides, and
// prints the re-encoded move list followed by the final board and state.
func runMoves(pos position, moves []string, cfg *config.Config) error {
	moveNumber := 1
	for i, text := range moves {
		decoded, err := notation.Decode(text, pos.side, pos.board)
		if err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
		result, err := engine.Execute(decoded.Move, pos.prev, decoded.Promotion, pos.side, pos.board)
		if err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
		name, err := notation.Encode(result.Move, pos.prev, pos.side, pos.board)
		if err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
		cfg.Logf(2, "%s plays %q as %v", pos.side, text, result.Move.Move)

		fmt.Fprint(cfg.OutputFile, moveLabel(moveNumber, pos.side), name)
		if cfg.Output.Coordinates {
			fmt.Fprintf(cfg.OutputFile, " %v", result.Move.Move)
		}
		fmt.Fprintln(cfg.OutputFile)

		if pos.side == chess.Black {
			moveNumber++
		}
		played := result.Move.Move
		pos = position{board: result.Board, side: pos.side.Opposite(), prev: &played}
	}

	if cfg.Output.ShowBoard {
		fmt.Fprintln(cfg.OutputFile, formatBoard(pos.board, cfg.Output.Format))
	}
	return runState(pos, cfg)
}

// moveLabel returns the move-number prefix: "3. " for white, "3... " for black.
func moveLabel(number int, side chess.Side) string {
	if side == chess.Black {
		return fmt.Sprintf("%d... ", number)
	}
	return fmt.Sprintf("%d. ", number)
}

// batchLine is one position from a batch file.
type batchLine struct {
	text    string
	compact string
	side    string
}

// runBatch classifies each "COMPACT SIDE" line of r on the worker pool and
// prints the results in input order. Blank lines and lines starting with
// '#' are skipped. A line that fails to parse or classify is reported
// in place and does not stop the batch; a done ctx does, and nothing is
// printed.
func runBatch(ctx context.Context, r io.Reader, cfg *config.Config) error {
	var lines []batchLine
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		line := batchLine{text: text}
		if fields := strings.Fields(text); len(fields) == 2 {
			line.compact, line.side = fields[0], fields[1]
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading batch: %w", err)
	}

	numWorkers := cfg.Workers
	if numWorkers < 1 {
		numWorkers = worker.DefaultWorkers()
	}
	cfg.Logf(2, "classifying %d position(s) on %d worker(s)", len(lines), numWorkers)

	results, err := worker.MapContext(ctx, lines, numWorkers, func(line batchLine) (string, error) {
		return classifyLine(line), nil
	})
	if err != nil {
		return err
	}

	for i, line := range lines {
		fmt.Fprintf(cfg.OutputFile, "%s %s\n", line.text, results[i])
	}
	cfg.Logf(1, "%d position(s) classified.", len(lines))
	return nil
}

// classifyLine returns the check state of one batch position, or an
// "error: ..." description.
func classifyLine(line batchLine) string {
	if line.compact == "" {
		return "error: want 'COMPACT SIDE'"
	}
	side, ok := chess.ParseSide(line.side)
	if !ok {
		return fmt.Sprintf("error: unknown side %q", line.side)
	}
	board, err := chess.ParseCompact(line.compact)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	state, err := engine.Classify(nil, side, board)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return state.String()
}
