package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsInCheck returns true if any feasible move of the enemy side lands on a
// king of side. A side without a king is never in check.
func IsInCheck(prev *chess.Move, side chess.Side, board *chess.Board) bool {
	kings := board.FindPieces(chess.OfType(chess.King), chess.OfSide(side))
	if len(kings) == 0 {
		return false
	}
	return isAttacked(kings, side.Opposite(), prev, board)
}

// isAttacked returns true if a feasible move of attacker targets any of the squares.
func isAttacked(squares []chess.Square, attacker chess.Side, prev *chess.Move, board *chess.Board) bool {
	for _, m := range AllFeasibleMoves(prev, attacker, board) {
		for _, sq := range squares {
			if m.To == sq {
				return true
			}
		}
	}
	return false
}
