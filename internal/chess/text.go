package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Board text format:
//
//	----------
//	|bK|  |wR|
//	----------
//	|  |wP|  |
//	----------
//
// Dividers are 3*cols+1 dashes, cells are two characters: "  " for an empty
// square, otherwise a side letter (w/b) followed by a piece letter.

// Serialize renders the board in text format. Parse(Serialize(b)) == b.
func Serialize(b *Board) string {
	divider := strings.Repeat("-", 3*b.cols+1)

	var sb strings.Builder
	sb.WriteString(divider)
	for r := 0; r < b.rows; r++ {
		sb.WriteByte('\n')
		sb.WriteByte('|')
		for c := 0; c < b.cols; c++ {
			sb.WriteString(b.get(Square{Row: r, Col: c}).String())
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
		sb.WriteString(divider)
	}
	return sb.String()
}

// Parse reads a board in text format. A single trailing newline is accepted.
func Parse(text string) (*Board, error) {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if len(lines) < 3 || len(lines)%2 == 0 {
		return nil, &errors.ParseError{
			Err:      errors.ErrParse,
			Input:    "board",
			Expected: "rows separated by dividers",
			Got:      fmt.Sprintf("%d lines", len(lines)),
		}
	}

	numRows := (len(lines) - 1) / 2
	grid := make([][]Piece, 0, numRows)
	for r := 0; r < numRows; r++ {
		row, err := parseTextRow(lines[2*r+1], 2*r+2)
		if err != nil {
			return nil, err
		}
		grid = append(grid, row)
	}

	board, err := NewBoardFromRows(grid)
	if err != nil {
		return nil, err
	}

	width := 3*board.cols + 1
	for i := 0; i < len(lines); i += 2 {
		if !isDivider(lines[i], width) {
			return nil, &errors.ParseError{
				Err:      errors.ErrParse,
				Input:    "board",
				Line:     i + 1,
				Expected: fmt.Sprintf("divider of %d dashes", width),
				Got:      lines[i],
			}
		}
	}
	return board, nil
}

// isDivider returns true if line is exactly width dashes.
func isDivider(line string, width int) bool {
	return len(line) == width && strings.Count(line, "-") == width
}

// parseTextRow parses one "|wK|  |bP|" row.
func parseTextRow(line string, lineNo int) ([]Piece, error) {
	if len(line) < 4 || line[0] != '|' || line[len(line)-1] != '|' || (len(line)-1)%3 != 0 {
		return nil, &errors.ParseError{
			Err:      errors.ErrParse,
			Input:    "board",
			Line:     lineNo,
			Expected: "row of |-delimited two-character cells",
			Got:      line,
		}
	}

	cells := strings.Split(line[1:len(line)-1], "|")
	row := make([]Piece, 0, len(cells))
	for i, cell := range cells {
		p, ok := parseCell(cell)
		if !ok {
			return nil, &errors.ParseError{
				Err:      errors.ErrParse,
				Input:    "board",
				Line:     lineNo,
				Column:   3*i + 2,
				Expected: "piece code",
				Got:      cell,
			}
		}
		row = append(row, p)
	}
	return row, nil
}

// parseCell parses a two-character cell code.
func parseCell(cell string) (Piece, bool) {
	if len(cell) != 2 {
		return Piece{}, false
	}
	if cell == "  " {
		return Piece{}, true
	}
	side, ok := sideFromLetter(cell[0])
	if !ok {
		return Piece{}, false
	}
	pieceType := PieceTypeFromLetter(cell[1])
	if pieceType == NoPiece {
		return Piece{}, false
	}
	return NewPiece(side, pieceType), true
}
