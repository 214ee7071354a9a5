package chess

import (
	"fmt"
	"strconv"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Square is a zero-based (row, col) board coordinate. Row 0 is the top rank
// as rendered.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Shift returns the square offset by (dRow, dCol).
func (s Square) Shift(dRow, dCol int) Square {
	return Square{Row: s.Row + dRow, Col: s.Col + dCol}
}

// String returns the coordinate form "(row,col)".
func (s Square) String() string {
	return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
}

// Name returns the algebraic name of the square on a board with the given
// number of rows: file letter 'a'+col followed by rank rows-row.
func (s Square) Name(rows int) string {
	return fmt.Sprintf("%c%d", 'a'+s.Col, rows-s.Row)
}

// ParseSquare converts an algebraic square name ("e4", "b10") to a Square
// on a board with the given dimensions.
func ParseSquare(name string, rows, cols int) (Square, error) {
	if len(name) < 2 || name[0] < 'a' || name[0] > 'z' {
		return Square{}, &errors.ParseError{Err: errors.ErrParse, Input: "square", Expected: "file letter and rank number", Got: name}
	}
	digits := name[1:]
	if !isRankDigits(digits) {
		return Square{}, &errors.ParseError{Err: errors.ErrParse, Input: "square", Expected: "rank number", Got: name}
	}
	rank, err := strconv.Atoi(digits)
	if err != nil || rank < 1 {
		return Square{}, &errors.ParseError{Err: errors.ErrParse, Input: "square", Expected: "rank number", Got: name}
	}
	sq := Square{Row: rows - rank, Col: int(name[0] - 'a')}
	if sq.Row < 0 || sq.Row >= rows || sq.Col >= cols {
		return Square{}, errors.Wrapf(errors.ErrOutOfBounds, "square %s on %dx%d board", name, rows, cols)
	}
	return sq, nil
}

// isRankDigits reports whether s is a rank number without sign or leading zero.
func isRankDigits(s string) bool {
	if s == "" || s[0] == '0' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
