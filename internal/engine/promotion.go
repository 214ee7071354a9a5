package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// CanPromote returns true if move takes a pawn of side to the far rank:
// row 0 for white, the last row for black.
func CanPromote(move chess.Move, side chess.Side, board *chess.Board) (bool, error) {
	piece, err := ownPiece(move.From, side, board)
	if err != nil {
		return false, err
	}
	if piece.Type != chess.Pawn {
		return false, nil
	}
	return move.To.Row == promotionRow(side, board.Rows()), nil
}

func promotionRow(side chess.Side, rows int) int {
	if side == chess.White {
		return 0
	}
	return rows - 1
}

// validPromotion reports whether a pawn may become pieceType.
func validPromotion(pieceType chess.PieceType) bool {
	switch pieceType {
	case chess.Knight, chess.Bishop, chess.Rook, chess.Queen:
		return true
	}
	return false
}
