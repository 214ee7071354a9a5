// Package chess provides core chess types and the immutable board model.
package chess

// Side represents the side (colour) of a piece or player.
type Side int

const (
	White Side = iota
	Black
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == Black {
		return "black"
	}
	return "white"
}

// Opposite returns the opposite side.
func (s Side) Opposite() Side {
	if s == White {
		return Black
	}
	return White
}

// Letter returns the board-text side letter ('w' or 'b').
func (s Side) Letter() byte {
	if s == Black {
		return 'b'
	}
	return 'w'
}

// ParseSide converts "white"/"black" (or "w"/"b") to a Side.
func ParseSide(s string) (Side, bool) {
	switch s {
	case "white", "w", "White", "W":
		return White, true
	case "black", "b", "Black", "B":
		return Black, true
	}
	return White, false
}

// sideFromLetter converts a board-text side letter to a Side.
func sideFromLetter(c byte) (Side, bool) {
	switch c {
	case 'w':
		return White, true
	case 'b':
		return Black, true
	}
	return White, false
}

// PieceType represents a chess piece type.
type PieceType int

const (
	NoPiece PieceType = iota // Empty square or absent promotion
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceTypeFromLetter converts an uppercase piece letter to a piece type.
// It returns NoPiece for anything else.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'P':
		return Pawn
	case 'N':
		return Knight
	case 'B':
		return Bishop
	case 'R':
		return Rook
	case 'Q':
		return Queen
	case 'K':
		return King
	}
	return NoPiece
}

// Piece is a typed, sided piece. The zero value is an empty square.
type Piece struct {
	Type PieceType
	Side Side
}

// NewPiece creates a piece of the given side and type.
func NewPiece(side Side, pieceType PieceType) Piece {
	return Piece{Type: pieceType, Side: side}
}

// W creates a white piece.
func W(pieceType PieceType) Piece {
	return NewPiece(White, pieceType)
}

// B creates a black piece.
func B(pieceType PieceType) Piece {
	return NewPiece(Black, pieceType)
}

// IsEmpty returns true if the piece represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPiece
}

// String returns the two-character board-text code ("wK", "bP") or two
// spaces for an empty square.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "  "
	}
	return string([]byte{p.Side.Letter(), p.Type.Letter()})
}

// CheckState classifies a side's king safety.
type CheckState int

const (
	Safe CheckState = iota
	Check
	Checkmate
)

// String returns the string representation of a check state.
func (c CheckState) String() string {
	switch c {
	case Check:
		return "CHECK"
	case Checkmate:
		return "CHECKMATE"
	}
	return "SAFE"
}
