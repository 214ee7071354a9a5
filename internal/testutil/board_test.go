package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func TestMustParseBoard(t *testing.T) {
	b := MustParseBoard(t, "-------\n|wK|  |\n-------\n|  |bK|\n-------")
	AssertEqual(t, b.Rows(), 2)
	AssertEqual(t, b.Cols(), 2)
	AssertEqual(t, b.FindPieces(chess.OfType(chess.King)), []chess.Square{chess.Sq(0, 0), chess.Sq(1, 1)})
}

func TestMustPlace(t *testing.T) {
	b := MustPlace(t, 3, 4, map[chess.Square]chess.Piece{
		chess.Sq(0, 3): chess.B(chess.King),
		chess.Sq(2, 0): chess.W(chess.Rook),
	})
	AssertBoardEqual(t, b, MustParseCompact(t, "3k/4/R3"))
}

func TestDestinations(t *testing.T) {
	moves := []chess.MoveWithTake{
		{Move: chess.Move{To: chess.Sq(2, 1)}},
		{Move: chess.Move{To: chess.Sq(0, 3)}},
		{Move: chess.Move{To: chess.Sq(2, 0)}},
	}
	AssertEqual(t, Destinations(moves), []chess.Square{chess.Sq(0, 3), chess.Sq(2, 0), chess.Sq(2, 1)})
	AssertEqual(t, Destinations(nil), []chess.Square{})
}
