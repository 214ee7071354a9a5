package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Result is the outcome of executing a move.
type Result struct {
	Board *chess.Board
	Move  chess.FullMove
}

// Execute validates and plays move for side, returning the new board and
// the resolved capture and promotion. promotion is only consulted when the
// move promotes; pass chess.NoPiece otherwise. The input board is never
// modified, and on error no board is returned.
func Execute(move chess.Move, prev *chess.Move, promotion chess.PieceType, side chess.Side, board *chess.Board) (Result, error) {
	fail := func(err error) (Result, error) {
		return Result{}, &errors.MoveError{
			Err:  err,
			From: move.From.Name(board.Rows()),
			To:   move.To.Name(board.Rows()),
		}
	}

	legal, ok, err := findLegal(move, prev, side, board)
	if err != nil {
		return fail(err)
	}
	if !ok {
		return fail(errors.ErrIllegalMove)
	}

	piece, _ := board.At(move.From)
	full := chess.FullMove{Move: move, Take: legal.Take}

	promotes, err := CanPromote(move, side, board)
	if err != nil {
		return fail(err)
	}
	if promotes {
		if promotion == chess.NoPiece {
			return fail(errors.ErrMissingPromotion)
		}
		if !validPromotion(promotion) {
			return fail(errors.Wrapf(errors.ErrIllegalMove, "cannot promote to %s", promotion))
		}
		piece.Type = promotion
		full.Promotion = promotion
	}

	muts := []chess.Mutation{chess.Clear(move.From), chess.Place(move.To, piece)}
	if full.IsEnPassant() {
		muts = append(muts, chess.Clear(full.Take.Square))
	}
	next, err := board.Mutate(muts...)
	if err != nil {
		return fail(err)
	}
	return Result{Board: next, Move: full}, nil
}
