package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// MustParseBoard parses a board in text format.
// It calls t.Fatal if parsing fails.
func MustParseBoard(t testing.TB, text string) *chess.Board {
	t.Helper()
	b, err := chess.Parse(text)
	if err != nil {
		t.Fatalf("failed to parse test board: %v\n%s", err, text)
	}
	return b
}

// MustParseCompact parses a board in compact format.
// It calls t.Fatal if parsing fails.
func MustParseCompact(t testing.TB, compact string) *chess.Board {
	t.Helper()
	b, err := chess.ParseCompact(compact)
	if err != nil {
		t.Fatalf("failed to parse compact board %q: %v", compact, err)
	}
	return b
}

// MustPlace returns an empty rows x cols board with the given pieces placed.
func MustPlace(t testing.TB, rows, cols int, pieces map[chess.Square]chess.Piece) *chess.Board {
	t.Helper()
	b, err := chess.NewBoard(rows, cols)
	if err != nil {
		t.Fatalf("NewBoard(%d, %d): %v", rows, cols, err)
	}
	muts := make([]chess.Mutation, 0, len(pieces))
	for sq, p := range pieces {
		muts = append(muts, chess.Place(sq, p))
	}
	b, err = b.Mutate(muts...)
	if err != nil {
		t.Fatalf("placing test pieces: %v", err)
	}
	return b
}

// Destinations returns the sorted destination squares of the moves.
func Destinations(moves []chess.MoveWithTake) []chess.Square {
	squares := make([]chess.Square, 0, len(moves))
	for _, m := range moves {
		squares = append(squares, m.To)
	}
	SortSquares(squares)
	return squares
}

// SortSquares sorts squares in row-major order.
func SortSquares(squares []chess.Square) {
	sort.Slice(squares, func(i, j int) bool {
		if squares[i].Row != squares[j].Row {
			return squares[i].Row < squares[j].Row
		}
		return squares[i].Col < squares[j].Col
	})
}
