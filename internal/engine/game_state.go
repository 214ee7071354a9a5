package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Classify returns the check state of side. Checkmate only considers the
// king's own escapes; blocking or capturing the attacker with another piece
// is not searched.
func Classify(prev *chess.Move, side chess.Side, board *chess.Board) (chess.CheckState, error) {
	kings := board.FindPieces(chess.OfType(chess.King), chess.OfSide(side))
	if len(kings) == 0 {
		return chess.Safe, errors.Wrapf(errors.ErrPieceState, "no %s king", side)
	}

	if !IsInCheck(prev, side, board) {
		return chess.Safe, nil
	}

	escapes, err := LegalMoves(kings[0], prev, side, board)
	if err != nil {
		return chess.Safe, err
	}
	if len(escapes) == 0 {
		return chess.Checkmate, nil
	}
	return chess.Check, nil
}
