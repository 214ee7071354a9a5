package chess

// Move is a from/to square pair.
type Move struct {
	From Square
	To   Square
}

// String returns the coordinate form of the move.
func (m Move) String() string {
	return m.From.String() + "->" + m.To.String()
}

// Take is a captured piece and the square it was captured on. The square
// differs from the move destination for en passant.
type Take struct {
	Square Square
	Piece  Piece
}

// MoveWithTake is a move plus the capture it makes, if any.
type MoveWithTake struct {
	Move
	Take *Take
}

// IsEnPassant returns true if the capture square differs from the destination.
func (m MoveWithTake) IsEnPassant() bool {
	return m.Take != nil && m.Take.Square != m.To
}

// FullMove is a move with its resolved capture and promotion.
// Promotion is NoPiece when the move does not promote.
type FullMove struct {
	Move
	Take      *Take
	Promotion PieceType
}

// IsCapture returns true if this move captures.
func (m FullMove) IsCapture() bool {
	return m.Take != nil
}

// IsPromotion returns true if this move promotes a pawn.
func (m FullMove) IsPromotion() bool {
	return m.Promotion != NoPiece
}

// IsEnPassant returns true if the capture square differs from the destination.
func (m FullMove) IsEnPassant() bool {
	return m.Take != nil && m.Take.Square != m.To
}
