package notation

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// parsedMove holds the pieces of a notation string before it is resolved
// against a board.
type parsedMove struct {
	pieceType chess.PieceType
	to        chess.Square
	fromFile  int // -1 if absent
	fromRow   int // -1 if absent
	capture   bool
	enPassant bool
	promotion chess.PieceType
}

// Decode resolves notation for side against board. Pieces other than pawns
// must be the only one of their type able to reach the destination; pawns
// prefer a single step over a double step.
func Decode(notation string, side chess.Side, board *chess.Board) (chess.FullMove, error) {
	fail := func(err error) (chess.FullMove, error) {
		return chess.FullMove{}, &errors.MoveError{Err: err, Notation: notation}
	}

	p, err := parse(notation, board)
	if err != nil {
		return fail(err)
	}

	var move chess.FullMove
	if p.pieceType == chess.Pawn {
		move, err = resolvePawn(p, side, board)
	} else {
		move, err = resolvePiece(p, side, board)
	}
	if err != nil {
		return fail(err)
	}
	move.Promotion = p.promotion
	return move, nil
}

func parseError(notation, expected string) error {
	return &errors.ParseError{Err: errors.ErrParse, Input: "notation", Expected: expected, Got: notation}
}

// parse splits notation into its parts. Once suffixes are removed the
// destination is the trailing rank number and the file letter before it.
func parse(notation string, board *chess.Board) (parsedMove, error) {
	p := parsedMove{pieceType: chess.Pawn, fromFile: -1, fromRow: -1}

	s := notation
	if strings.HasSuffix(s, EnPassantSuffix) {
		p.enPassant = true
		s = strings.TrimSuffix(s, EnPassantSuffix)
	}
	s = strings.TrimRight(s, "+#")

	if i := strings.IndexByte(s, '='); i >= 0 {
		promo := s[i+1:]
		if len(promo) != 1 {
			return p, parseError(notation, "single promotion letter")
		}
		p.promotion = chess.PieceTypeFromLetter(promo[0])
		if p.promotion == chess.NoPiece {
			return p, parseError(notation, "promotion piece letter")
		}
		s = s[:i]
	}

	start := len(s) - trailingDigits(s) - 1
	if start < 0 || start == len(s)-1 {
		return p, parseError(notation, "destination square")
	}
	to, err := chess.ParseSquare(s[start:], board.Rows(), board.Cols())
	if err != nil {
		return p, err
	}
	p.to = to
	s = s[:start]

	if strings.HasSuffix(s, "x") {
		p.capture = true
		s = s[:len(s)-1]
	}

	if s != "" && s[0] >= 'A' && s[0] <= 'Z' {
		p.pieceType = chess.PieceTypeFromLetter(s[0])
		if p.pieceType == chess.NoPiece {
			return p, parseError(notation, "piece letter")
		}
		s = s[1:]
	}

	if s != "" && s[0] >= 'a' && s[0] <= 'z' {
		p.fromFile = int(s[0] - 'a')
		s = s[1:]
	}
	if n := trailingDigits(s); n > 0 {
		if n != len(s) || s[0] == '0' {
			return p, parseError(notation, "disambiguation of file and rank")
		}
		rank, err := strconv.Atoi(s)
		if err != nil {
			return p, parseError(notation, "disambiguation rank")
		}
		p.fromRow = board.Rows() - rank
		s = ""
	}
	if s != "" {
		return p, parseError(notation, "disambiguation of file and rank")
	}

	if p.enPassant && (p.pieceType != chess.Pawn || !p.capture) {
		return p, parseError(notation, "en passant pawn capture")
	}
	if p.promotion != chess.NoPiece && p.pieceType != chess.Pawn {
		return p, parseError(notation, "promotion by a pawn")
	}
	return p, nil
}

// trailingDigits returns the length of the run of digits ending s.
func trailingDigits(s string) int {
	n := 0
	for n < len(s) && s[len(s)-1-n] >= '0' && s[len(s)-1-n] <= '9' {
		n++
	}
	return n
}

// matches reports whether sq satisfies the file and rank constraints.
func (p parsedMove) matches(sq chess.Square) bool {
	return (p.fromFile < 0 || sq.Col == p.fromFile) && (p.fromRow < 0 || sq.Row == p.fromRow)
}

// resolvePiece finds the single piece of the parsed type that can reach the
// destination, capturing there exactly when the notation says so.
func resolvePiece(p parsedMove, side chess.Side, board *chess.Board) (chess.FullMove, error) {
	var found []chess.MoveWithTake
	for _, sq := range board.FindPieces(chess.OfType(p.pieceType), chess.OfSide(side)) {
		if !p.matches(sq) {
			continue
		}
		moves, err := engine.GenerateFeasible(sq, nil, side, board)
		if err != nil {
			return chess.FullMove{}, err
		}
		for _, m := range moves {
			if m.To == p.to && (m.Take != nil) == p.capture {
				found = append(found, m)
			}
		}
	}

	switch len(found) {
	case 0:
		return chess.FullMove{}, errors.Wrapf(errors.ErrNoMatch, "no %s reaches %v", p.pieceType, p.to)
	case 1:
		return chess.FullMove{Move: found[0].Move, Take: found[0].Take}, nil
	}
	return chess.FullMove{}, errors.Wrapf(errors.ErrAmbiguousNotation, "%d %ss reach %v", len(found), p.pieceType, p.to)
}

// resolvePawn locates the moving pawn from the destination: one row back
// (preferred) or two rows back for an advance, one row back on an adjacent
// file for a capture.
func resolvePawn(p parsedMove, side chess.Side, board *chess.Board) (chess.FullMove, error) {
	fwd := engine.Forward(side)
	pawn := chess.NewPiece(side, chess.Pawn)

	var cols []int
	switch {
	case p.fromFile >= 0:
		cols = []int{p.fromFile}
	case p.capture:
		cols = []int{p.to.Col - 1, p.to.Col + 1}
	default:
		cols = []int{p.to.Col}
	}
	steps := []int{1}
	if !p.capture {
		steps = append(steps, 2)
	}

	var from []chess.Square
	for _, step := range steps {
		for _, col := range cols {
			sq := chess.Square{Row: p.to.Row - step*fwd, Col: col}
			if !p.matches(sq) {
				continue
			}
			if piece, err := board.At(sq); err == nil && piece == pawn {
				from = append(from, sq)
			}
		}
		if len(from) > 0 {
			break
		}
	}

	switch {
	case len(from) == 0:
		return chess.FullMove{}, errors.Wrapf(errors.ErrNoMatch, "no pawn reaches %v", p.to)
	case len(from) > 1:
		return chess.FullMove{}, errors.Wrapf(errors.ErrAmbiguousNotation, "%d pawns reach %v", len(from), p.to)
	}

	move := chess.FullMove{Move: chess.Move{From: from[0], To: p.to}}
	target, _ := board.At(p.to)

	if !p.capture {
		if !target.IsEmpty() {
			return chess.FullMove{}, errors.Wrapf(errors.ErrNoMatch, "pawn advance to occupied %v", p.to)
		}
		return move, nil
	}

	takeSq := p.to
	if p.enPassant {
		takeSq = chess.Square{Row: p.to.Row - fwd, Col: p.to.Col}
		target, _ = board.At(takeSq)
		if target.Type != chess.Pawn {
			return chess.FullMove{}, errors.Wrapf(errors.ErrNoMatch, "no pawn to take en passant on %v", takeSq)
		}
	}
	if target.IsEmpty() || target.Side == side {
		return chess.FullMove{}, errors.Wrapf(errors.ErrNoMatch, "nothing to capture on %v", takeSq)
	}
	move.Take = &chess.Take{Square: takeSq, Piece: target}
	return move, nil
}
