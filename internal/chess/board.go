package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// StandardCompact is the compact form of the standard starting position.
const StandardCompact = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// Board is an immutable rectangular grid of optional pieces.
// Squares are stored row-major; row 0 is the top rank as rendered.
// Every mutation returns a new Board, so a *Board may be shared freely.
type Board struct {
	rows    int
	cols    int
	squares []Piece
}

// MaxBoardSize bounds the number of rows and of columns of a board.
const MaxBoardSize = 256

// NewBoard creates an empty board of the given dimensions.
func NewBoard(rows, cols int) (*Board, error) {
	if rows < 1 || cols < 1 || rows > MaxBoardSize || cols > MaxBoardSize {
		return nil, &errors.ParseError{
			Err:      errors.ErrParse,
			Input:    "board",
			Expected: fmt.Sprintf("between 1 and %d rows and columns", MaxBoardSize),
			Got:      fmt.Sprintf("%dx%d", rows, cols),
		}
	}
	return &Board{rows: rows, cols: cols, squares: make([]Piece, rows*cols)}, nil
}

// NewBoardFromRows creates a board from a grid of pieces. All rows must have
// the same, non-zero length.
func NewBoardFromRows(grid [][]Piece) (*Board, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, &errors.ParseError{Err: errors.ErrParse, Input: "board", Expected: "at least one row and one column"}
	}
	b, err := NewBoard(len(grid), len(grid[0]))
	if err != nil {
		return nil, err
	}
	for r, row := range grid {
		if len(row) != b.cols {
			return nil, &errors.ParseError{
				Err:      errors.ErrParse,
				Input:    "board",
				Line:     r + 1,
				Expected: fmt.Sprintf("%d columns", b.cols),
				Got:      fmt.Sprintf("%d columns", len(row)),
			}
		}
		copy(b.squares[r*b.cols:], row)
	}
	return b, nil
}

// StandardBoard returns the standard 8x8 starting position.
func StandardBoard() *Board {
	b, err := ParseCompact(StandardCompact)
	if err != nil {
		panic(fmt.Sprintf("standard position: %v", err))
	}
	return b
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns.
func (b *Board) Cols() int {
	return b.cols
}

// InBoard returns true if the square lies on the board.
func (b *Board) InBoard(sq Square) bool {
	return sq.Row >= 0 && sq.Row < b.rows && sq.Col >= 0 && sq.Col < b.cols
}

// At returns the piece on the square; an empty square yields the zero Piece.
func (b *Board) At(sq Square) (Piece, error) {
	if !b.InBoard(sq) {
		return Piece{}, b.outOfBounds(sq)
	}
	return b.squares[sq.Row*b.cols+sq.Col], nil
}

// get returns the piece on a square already known to be in bounds.
func (b *Board) get(sq Square) Piece {
	return b.squares[sq.Row*b.cols+sq.Col]
}

func (b *Board) outOfBounds(sq Square) error {
	return errors.Wrapf(errors.ErrOutOfBounds, "square %v on %dx%d board", sq, b.rows, b.cols)
}

// PieceFilter selects pieces in FindPieces.
type PieceFilter func(Piece) bool

// OfType matches pieces of the given type.
func OfType(pieceType PieceType) PieceFilter {
	return func(p Piece) bool { return p.Type == pieceType }
}

// OfSide matches pieces of the given side.
func OfSide(side Side) PieceFilter {
	return func(p Piece) bool { return p.Side == side }
}

// FindPieces returns the squares of all pieces matching every filter,
// in row-major order.
func (b *Board) FindPieces(filters ...PieceFilter) []Square {
	var squares []Square
	for i, p := range b.squares {
		if p.IsEmpty() {
			continue
		}
		matched := true
		for _, f := range filters {
			if !f(p) {
				matched = false
				break
			}
		}
		if matched {
			squares = append(squares, Square{Row: i / b.cols, Col: i % b.cols})
		}
	}
	return squares
}

// Mutation places a piece on a square. The zero Piece clears it.
type Mutation struct {
	Square Square
	Piece  Piece
}

// Clear returns a mutation that empties the square.
func Clear(sq Square) Mutation {
	return Mutation{Square: sq}
}

// Place returns a mutation that puts the piece on the square.
func Place(sq Square, p Piece) Mutation {
	return Mutation{Square: sq, Piece: p}
}

// Mutate applies all mutations as one batch and returns the new board.
// If any square is out of bounds nothing is applied. When a square appears
// more than once the last mutation wins.
func (b *Board) Mutate(mutations ...Mutation) (*Board, error) {
	for _, m := range mutations {
		if !b.InBoard(m.Square) {
			return nil, b.outOfBounds(m.Square)
		}
	}
	next := &Board{rows: b.rows, cols: b.cols, squares: make([]Piece, len(b.squares))}
	copy(next.squares, b.squares)
	for _, m := range mutations {
		next.squares[m.Square.Row*b.cols+m.Square.Col] = m.Piece
	}
	return next, nil
}

// Equal returns true if both boards have the same dimensions and pieces.
func (b *Board) Equal(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.rows != other.rows || b.cols != other.cols {
		return false
	}
	for i := range b.squares {
		if b.squares[i] != other.squares[i] {
			return false
		}
	}
	return true
}

// String returns the board in text format.
func (b *Board) String() string {
	return Serialize(b)
}
