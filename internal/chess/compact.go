package chess

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ParseCompact reads a board in compact format: '/'-separated ranks, digit
// runs for empty squares, piece letters for pieces (uppercase white,
// lowercase black). Runs longer than nine are written as multi-digit numbers.
func ParseCompact(compact string) (*Board, error) {
	ranks := strings.Split(compact, "/")
	grid := make([][]Piece, 0, len(ranks))
	for i, rank := range ranks {
		row, err := parseCompactRank(rank, i+1)
		if err != nil {
			return nil, err
		}
		grid = append(grid, row)
	}

	board, err := NewBoardFromRows(grid)
	if err != nil {
		return nil, errors.Wrap(err, "compact board")
	}
	return board, nil
}

// parseCompactRank parses one rank of a compact board.
func parseCompactRank(rank string, lineNo int) ([]Piece, error) {
	var row []Piece
	for i := 0; i < len(rank); i++ {
		c := rank[i]
		if c >= '0' && c <= '9' {
			j := i
			for j < len(rank) && rank[j] >= '0' && rank[j] <= '9' {
				j++
			}
			n, err := strconv.Atoi(rank[i:j])
			if err != nil || n == 0 || n > MaxBoardSize-len(row) {
				return nil, &errors.ParseError{
					Err:      errors.ErrParse,
					Input:    "compact board",
					Line:     lineNo,
					Column:   i + 1,
					Expected: fmt.Sprintf("run length between 1 and %d", MaxBoardSize-len(row)),
					Got:      rank[i:j],
				}
			}
			row = append(row, make([]Piece, n)...)
			i = j - 1
			continue
		}

		pieceType := PieceTypeFromLetter(byte(unicode.ToUpper(rune(c))))
		if pieceType == NoPiece || len(row) == MaxBoardSize {
			return nil, &errors.ParseError{
				Err:      errors.ErrParse,
				Input:    "compact board",
				Line:     lineNo,
				Column:   i + 1,
				Expected: "piece letter or digit",
				Got:      string(c),
			}
		}
		side := White
		if unicode.IsLower(rune(c)) {
			side = Black
		}
		row = append(row, NewPiece(side, pieceType))
	}
	return row, nil
}

// SerializeCompact renders the board in compact format.
// ParseCompact(SerializeCompact(b)) == b.
func SerializeCompact(b *Board) string {
	ranks := make([]string, b.rows)
	for r := 0; r < b.rows; r++ {
		var sb strings.Builder
		empty := 0
		for c := 0; c < b.cols; c++ {
			p := b.get(Square{Row: r, Col: c})
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			letter := p.Type.Letter()
			if p.Side == Black {
				letter = byte(unicode.ToLower(rune(letter)))
			}
			sb.WriteByte(letter)
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		ranks[r] = sb.String()
	}
	return strings.Join(ranks, "/")
}
