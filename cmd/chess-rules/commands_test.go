package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
)

// testConfig returns a configuration writing output to buf.
func testConfig(buf *bytes.Buffer) *config.Config {
	return config.NewConfigBuilder().
		WithOutput(buf).
		WithLog(io.Discard).
		ShowBoard(false).
		WithWorkers(2).
		Build()
}

func mustPosition(t *testing.T, compact string, side chess.Side) position {
	t.Helper()
	b, err := chess.ParseCompact(compact)
	if err != nil {
		t.Fatalf("ParseCompact(%q) error = %v", compact, err)
	}
	return position{board: b, side: side}
}

func outputLines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func TestRunState(t *testing.T) {
	tests := []struct {
		name    string
		compact string
		side    chess.Side
		want    string
	}{
		{"start position", chess.StandardCompact, chess.White, "white: SAFE\n"},
		{"back rank mate", "R5k1/5ppp/8/8/8/8/8/6K1", chess.Black, "black: CHECKMATE\n"},
		{"rook check", "4k3/8/8/8/8/8/8/4R1K1", chess.Black, "black: CHECK\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := runState(mustPosition(t, tt.compact, tt.side), testConfig(&buf)); err != nil {
				t.Fatalf("runState() error = %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("runState() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestRunState_NoKing(t *testing.T) {
	var buf bytes.Buffer
	if err := runState(mustPosition(t, "8/8/8/8/8/8/8/R7", chess.White), testConfig(&buf)); err == nil {
		t.Error("runState() should fail without a king")
	}
}

func TestRunLegal(t *testing.T) {
	t.Run("start position", func(t *testing.T) {
		var buf bytes.Buffer
		if err := runLegal(mustPosition(t, chess.StandardCompact, chess.White), testConfig(&buf)); err != nil {
			t.Fatalf("runLegal() error = %v", err)
		}
		lines := outputLines(&buf)
		if len(lines) != 20 {
			t.Errorf("runLegal() printed %d moves; want 20:\n%s", len(lines), buf.String())
		}
		for _, want := range []string{"a3", "e4", "Nf3", "Na3"} {
			if !strings.Contains("\n"+buf.String(), "\n"+want+"\n") {
				t.Errorf("runLegal() output missing %q", want)
			}
		}
	})

	t.Run("promotion choices", func(t *testing.T) {
		var buf bytes.Buffer
		if err := runLegal(mustPosition(t, "k7/4P3/8/8/8/8/8/7K", chess.White), testConfig(&buf)); err != nil {
			t.Fatalf("runLegal() error = %v", err)
		}
		got := outputLines(&buf)
		sort.Strings(got)
		want := []string{"Kg1", "Kg2", "Kh2", "e8=B", "e8=N", "e8=Q+", "e8=R+"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("runLegal() mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestRunMoves(t *testing.T) {
	var buf bytes.Buffer
	moves := strings.Fields("e4 e5 Qh5 Nc6 Bc4 Nf6 Qxf7")
	if err := runMoves(mustPosition(t, chess.StandardCompact, chess.White), moves, testConfig(&buf)); err != nil {
		t.Fatalf("runMoves() error = %v", err)
	}

	want := strings.Join([]string{
		"1. e4",
		"1... e5",
		"2. Qh5",
		"2... Nc6",
		"3. Bc4",
		"3... Nf6",
		"4. Qxf7#",
		"black: CHECKMATE",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("runMoves() mismatch (-want +got):\n%s", diff)
	}
}

func TestRunMoves_BoardAndCoordinates(t *testing.T) {
	var buf bytes.Buffer
	cfg := testConfig(&buf)
	cfg.Output.ShowBoard = true
	cfg.Output.Coordinates = true
	cfg.Output.Format = config.CompactFormat

	if err := runMoves(mustPosition(t, chess.StandardCompact, chess.White), []string{"e4"}, cfg); err != nil {
		t.Fatalf("runMoves() error = %v", err)
	}

	want := "1. e4 (6,4)->(4,4)\n" +
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR\n" +
		"black: SAFE\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("runMoves() mismatch (-want +got):\n%s", diff)
	}
}

func TestRunMoves_BlackFirst(t *testing.T) {
	var buf bytes.Buffer
	pos := mustPosition(t, chess.StandardCompact, chess.Black)
	if err := runMoves(pos, []string{"e5", "e4"}, testConfig(&buf)); err != nil {
		t.Fatalf("runMoves() error = %v", err)
	}
	lines := outputLines(&buf)
	if lines[0] != "1... e5" || lines[1] != "2. e4" {
		t.Errorf("runMoves() labels = %q; want 1... e5, 2. e4", lines[:2])
	}
}

func TestRunMoves_Errors(t *testing.T) {
	tests := []struct {
		name  string
		moves []string
		want  string
	}{
		{"unreachable", []string{"e4", "e4"}, "move 2"},
		{"garbage", []string{"hello"}, "move 1"},
		{"blocked king", []string{"Ke2"}, "move 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := runMoves(mustPosition(t, chess.StandardCompact, chess.White), tt.moves, testConfig(&buf))
			if err == nil {
				t.Fatal("runMoves() should fail")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("runMoves() error = %q; want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestRunBatch(t *testing.T) {
	input := strings.Join([]string{
		"# positions to classify",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR white",
		"",
		"R5k1/5ppp/8/8/8/8/8/6K1 black",
		"4k3/8/8/8/8/8/8/4R1K1 black",
		"8/8 purple",
		"8/8/8/8",
	}, "\n")

	var buf bytes.Buffer
	if err := runBatch(context.Background(), strings.NewReader(input), testConfig(&buf)); err != nil {
		t.Fatalf("runBatch() error = %v", err)
	}

	want := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR white SAFE",
		"R5k1/5ppp/8/8/8/8/8/6K1 black CHECKMATE",
		"4k3/8/8/8/8/8/8/4R1K1 black CHECK",
		`8/8 purple error: unknown side "purple"`,
		"8/8/8/8 error: want 'COMPACT SIDE'",
	}
	if diff := cmp.Diff(want, outputLines(&buf)); diff != "" {
		t.Errorf("runBatch() mismatch (-want +got):\n%s", diff)
	}
}

func TestRunBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	input := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR white\n"
	err := runBatch(ctx, strings.NewReader(input), testConfig(&buf))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("runBatch() error = %v; want context.Canceled", err)
	}
	if buf.Len() != 0 {
		t.Errorf("runBatch() wrote %q after cancellation", buf.String())
	}
}

func TestMoveLabel(t *testing.T) {
	if got := moveLabel(3, chess.White); got != "3. " {
		t.Errorf("moveLabel(3, white) = %q", got)
	}
	if got := moveLabel(3, chess.Black); got != "3... " {
		t.Errorf("moveLabel(3, black) = %q", got)
	}
}
