// Package notation converts between executed moves and algebraic notation.
//
// Squares are named relative to the board height: file letter 'a'+col and
// rank rows-row. En passant captures carry a trailing " e.p." marker.
package notation

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// EnPassantSuffix marks a capture whose square differs from the destination.
const EnPassantSuffix = " e.p."

// Encode returns the algebraic notation of move played by side. The move is
// executed to decide the check suffix, so it must be legal.
func Encode(move chess.FullMove, prev *chess.Move, side chess.Side, board *chess.Board) (string, error) {
	piece, err := board.At(move.From)
	if err != nil {
		return "", err
	}
	if piece.IsEmpty() || piece.Side != side {
		return "", errors.Wrapf(errors.ErrPieceState, "no %s piece at %v", side, move.From)
	}

	var sb strings.Builder
	if piece.Type != chess.Pawn {
		sb.WriteByte(piece.Type.Letter())
	}

	disambiguation, err := disambiguate(piece, move, prev, board)
	if err != nil {
		return "", err
	}
	sb.WriteString(disambiguation)

	if move.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(move.To.Name(board.Rows()))

	if move.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte(move.Promotion.Letter())
	}

	suffix, err := checkSuffix(move, prev, side, board)
	if err != nil {
		return "", err
	}
	sb.WriteString(suffix)

	if move.IsEnPassant() {
		sb.WriteString(EnPassantSuffix)
	}
	return sb.String(), nil
}

// disambiguate returns the origin file and/or rank needed to tell the mover
// apart from other pieces of the same type that could reach the destination.
// Pawn captures always carry the origin file.
func disambiguate(piece chess.Piece, move chess.FullMove, prev *chess.Move, board *chess.Board) (string, error) {
	rows := board.Rows()
	file := move.From.Name(rows)[:1]
	rank := move.From.Name(rows)[1:]

	if piece.Type == chess.Pawn {
		if move.IsCapture() {
			return file, nil
		}
		return "", nil
	}

	var needed, sharesFile, sharesRank bool
	for _, sq := range board.FindPieces(chess.OfType(piece.Type), chess.OfSide(piece.Side)) {
		if sq == move.From {
			continue
		}
		reaches, err := canReach(sq, move.To, prev, piece.Side, board)
		if err != nil {
			return "", err
		}
		if !reaches {
			continue
		}
		needed = true
		if sq.Col == move.From.Col {
			sharesFile = true
		}
		if sq.Row == move.From.Row {
			sharesRank = true
		}
	}

	var s string
	if sharesRank || (needed && !sharesFile) {
		s = file
	}
	if sharesFile {
		s += rank
	}
	return s, nil
}

// canReach returns true if the piece on from has a feasible move to to.
func canReach(from, to chess.Square, prev *chess.Move, side chess.Side, board *chess.Board) (bool, error) {
	moves, err := engine.GenerateFeasible(from, prev, side, board)
	if err != nil {
		return false, err
	}
	for _, m := range moves {
		if m.To == to {
			return true, nil
		}
	}
	return false, nil
}

// checkSuffix plays the move and classifies the opponent: "+" for check,
// "#" for checkmate. A board without an opposing king gets no suffix.
func checkSuffix(move chess.FullMove, prev *chess.Move, side chess.Side, board *chess.Board) (string, error) {
	res, err := engine.Execute(move.Move, prev, move.Promotion, side, board)
	if err != nil {
		return "", err
	}

	played := move.Move
	state, err := engine.Classify(&played, side.Opposite(), res.Board)
	if errors.Is(err, errors.ErrPieceState) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	switch state {
	case chess.Check:
		return "+", nil
	case chess.Checkmate:
		return "#", nil
	}
	return "", nil
}
