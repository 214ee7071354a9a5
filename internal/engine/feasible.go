// Package engine implements the chess rules over immutable boards: feasible
// move generation, check detection, legality filtering, check-state
// classification and move execution.
//
// Every function is pure. The previous move is always passed in by the caller
// and is only consulted for en passant.
package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

type shapeKind int

const (
	sliding shapeKind = iota
	leaping
	pawnShape
)

// moveShape describes how a piece type moves.
type moveShape struct {
	kind    shapeKind
	offsets [][2]int // (dRow, dCol)
}

var (
	diagonalOffsets = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightOffsets = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	knightOffsets   = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	royalOffsets    = append(append([][2]int{}, diagonalOffsets...), straightOffsets...)
)

var shapes = map[chess.PieceType]moveShape{
	chess.Pawn:   {kind: pawnShape},
	chess.Knight: {kind: leaping, offsets: knightOffsets},
	chess.Bishop: {kind: sliding, offsets: diagonalOffsets},
	chess.Rook:   {kind: sliding, offsets: straightOffsets},
	chess.Queen:  {kind: sliding, offsets: royalOffsets},
	chess.King:   {kind: leaping, offsets: royalOffsets}, // no castling
}

// GenerateFeasible returns the moves the piece on from can make by its
// movement rules, ignoring whether they leave its own king in check.
// The piece must exist and belong to side. The order of the result is
// unspecified.
func GenerateFeasible(from chess.Square, prev *chess.Move, side chess.Side, board *chess.Board) ([]chess.MoveWithTake, error) {
	piece, err := ownPiece(from, side, board)
	if err != nil {
		return nil, err
	}
	return feasibleMoves(piece, from, prev, board), nil
}

// AllFeasibleMoves returns the feasible moves of every piece of side,
// grouped by origin square in row-major order.
func AllFeasibleMoves(prev *chess.Move, side chess.Side, board *chess.Board) []chess.MoveWithTake {
	var moves []chess.MoveWithTake
	for _, from := range board.FindPieces(chess.OfSide(side)) {
		piece, _ := board.At(from)
		moves = append(moves, feasibleMoves(piece, from, prev, board)...)
	}
	return moves
}

// ownPiece returns the piece on from, failing unless it belongs to side.
func ownPiece(from chess.Square, side chess.Side, board *chess.Board) (chess.Piece, error) {
	piece, err := board.At(from)
	if err != nil {
		return chess.Piece{}, err
	}
	if piece.IsEmpty() {
		return chess.Piece{}, errors.Wrapf(errors.ErrPieceState, "no piece at %v", from)
	}
	if piece.Side != side {
		return chess.Piece{}, errors.Wrapf(errors.ErrPieceState, "piece at %v is %s, not %s", from, piece.Side, side)
	}
	return piece, nil
}

// feasibleMoves dispatches on the piece's move shape.
func feasibleMoves(piece chess.Piece, from chess.Square, prev *chess.Move, board *chess.Board) []chess.MoveWithTake {
	shape := shapes[piece.Type]
	switch shape.kind {
	case sliding:
		return slidingMoves(piece, from, shape.offsets, board)
	case leaping:
		return leapingMoves(piece, from, shape.offsets, board)
	}
	return pawnMoves(piece, from, prev, board)
}

// target classifies a destination square for a piece of side.
// ok is false when the square is off the board or holds an own piece.
func target(sq chess.Square, side chess.Side, board *chess.Board) (move chess.MoveWithTake, occupied, ok bool) {
	occupant, err := board.At(sq)
	if err != nil {
		return chess.MoveWithTake{}, false, false
	}
	if occupant.IsEmpty() {
		return chess.MoveWithTake{Move: chess.Move{To: sq}}, false, true
	}
	if occupant.Side == side {
		return chess.MoveWithTake{}, true, false
	}
	return chess.MoveWithTake{Move: chess.Move{To: sq}, Take: &chess.Take{Square: sq, Piece: occupant}}, true, true
}

// slidingMoves steps outward in each direction until the edge or the first
// occupied square, which is included only when it holds an enemy piece.
func slidingMoves(piece chess.Piece, from chess.Square, dirs [][2]int, board *chess.Board) []chess.MoveWithTake {
	var moves []chess.MoveWithTake
	for _, dir := range dirs {
		for sq := from.Shift(dir[0], dir[1]); board.InBoard(sq); sq = sq.Shift(dir[0], dir[1]) {
			m, occupied, ok := target(sq, piece.Side, board)
			if ok {
				m.From = from
				moves = append(moves, m)
			}
			if occupied {
				break
			}
		}
	}
	return moves
}

// leapingMoves tries each fixed offset regardless of what lies between.
func leapingMoves(piece chess.Piece, from chess.Square, offsets [][2]int, board *chess.Board) []chess.MoveWithTake {
	var moves []chess.MoveWithTake
	for _, off := range offsets {
		if m, _, ok := target(from.Shift(off[0], off[1]), piece.Side, board); ok {
			m.From = from
			moves = append(moves, m)
		}
	}
	return moves
}

// Forward returns the row direction a side's pawns advance in.
// White starts at the bottom and moves towards row 0.
func Forward(side chess.Side) int {
	if side == chess.White {
		return -1
	}
	return 1
}

// pawnStartRow returns the row a side's pawns start on.
func pawnStartRow(side chess.Side, rows int) int {
	if side == chess.White {
		return rows - 2
	}
	return 1
}

func pawnMoves(piece chess.Piece, from chess.Square, prev *chess.Move, board *chess.Board) []chess.MoveWithTake {
	var moves []chess.MoveWithTake
	fwd := Forward(piece.Side)

	if one := from.Shift(fwd, 0); isEmpty(one, board) {
		moves = append(moves, chess.MoveWithTake{Move: chess.Move{From: from, To: one}})
		if two := from.Shift(2*fwd, 0); from.Row == pawnStartRow(piece.Side, board.Rows()) && isEmpty(two, board) {
			moves = append(moves, chess.MoveWithTake{Move: chess.Move{From: from, To: two}})
		}
	}

	for _, dc := range []int{-1, 1} {
		sq := from.Shift(fwd, dc)
		if m, occupied, ok := target(sq, piece.Side, board); ok && occupied {
			m.From = from
			moves = append(moves, m)
		}
	}

	if m, ok := enPassant(piece, from, prev, board); ok {
		moves = append(moves, m)
	}
	return moves
}

// enPassant returns the en passant capture available to the pawn on from,
// if the previous move was an enemy pawn's double step landing beside it.
func enPassant(piece chess.Piece, from chess.Square, prev *chess.Move, board *chess.Board) (chess.MoveWithTake, bool) {
	if prev == nil {
		return chess.MoveWithTake{}, false
	}
	victim, err := board.At(prev.To)
	if err != nil || victim.Type != chess.Pawn || victim.Side == piece.Side {
		return chess.MoveWithTake{}, false
	}

	enemy := victim.Side
	enemyStart := pawnStartRow(enemy, board.Rows())
	if prev.From.Row != enemyStart || prev.From.Col != prev.To.Col ||
		prev.To.Row != enemyStart+2*Forward(enemy) || prev.To.Row != from.Row ||
		abs(prev.To.Col-from.Col) != 1 {
		return chess.MoveWithTake{}, false
	}

	to := chess.Square{Row: from.Row + Forward(piece.Side), Col: prev.To.Col}
	if !isEmpty(to, board) {
		return chess.MoveWithTake{}, false
	}
	return chess.MoveWithTake{
		Move: chess.Move{From: from, To: to},
		Take: &chess.Take{Square: prev.To, Piece: victim},
	}, true
}

// isEmpty returns true if sq is on the board and unoccupied.
func isEmpty(sq chess.Square, board *chess.Board) bool {
	p, err := board.At(sq)
	return err == nil && p.IsEmpty()
}
