package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// LegalMoves returns the feasible moves of the piece on from that do not
// leave side's king in check. An empty square yields no moves.
//
// Each move is tried on a board with from cleared and the piece placed on the
// destination. The pawn taken en passant stays on that board, so a capture
// that exposes the king along the vacated rank is not filtered out.
func LegalMoves(from chess.Square, prev *chess.Move, side chess.Side, board *chess.Board) ([]chess.MoveWithTake, error) {
	piece, err := board.At(from)
	if err != nil {
		return nil, err
	}
	if piece.IsEmpty() {
		return nil, nil
	}

	feasible, err := GenerateFeasible(from, prev, side, board)
	if err != nil {
		return nil, err
	}

	legal := make([]chess.MoveWithTake, 0, len(feasible))
	for _, m := range feasible {
		next, err := board.Mutate(chess.Clear(from), chess.Place(m.To, piece))
		if err != nil {
			return nil, err
		}
		if !IsInCheck(prev, side, next) {
			legal = append(legal, m)
		}
	}
	return legal, nil
}

// IsLegalMove returns true if move is among the legal moves of its origin piece.
func IsLegalMove(move chess.Move, prev *chess.Move, side chess.Side, board *chess.Board) (bool, error) {
	_, ok, err := findLegal(move, prev, side, board)
	return ok, err
}

// findLegal returns the legal move matching move's destination.
func findLegal(move chess.Move, prev *chess.Move, side chess.Side, board *chess.Board) (chess.MoveWithTake, bool, error) {
	legal, err := LegalMoves(move.From, prev, side, board)
	if err != nil {
		return chess.MoveWithTake{}, false, err
	}
	for _, m := range legal {
		if m.To == move.To {
			return m, true, nil
		}
	}
	return chess.MoveWithTake{}, false, nil
}

// AllLegalMoves returns the legal moves of every piece of side. Origins are
// evaluated concurrently on numWorkers goroutines; the complete result is
// returned grouped by origin square in row-major order.
func AllLegalMoves(prev *chess.Move, side chess.Side, board *chess.Board, numWorkers int) ([]chess.MoveWithTake, error) {
	if numWorkers < 1 {
		numWorkers = worker.DefaultWorkers()
	}
	origins := board.FindPieces(chess.OfSide(side))
	perOrigin, err := worker.Map(origins, numWorkers, func(from chess.Square) ([]chess.MoveWithTake, error) {
		return LegalMoves(from, prev, side, board)
	})
	if err != nil {
		return nil, err
	}

	var moves []chess.MoveWithTake
	for _, ms := range perOrigin {
		moves = append(moves, ms...)
	}
	return moves, nil
}
