package chess

// Move represents a single move as a value: source square, destination
// square and an optional promotion piece. The promotion field is only
// meaningful when a pawn reaches the far rank; it carries no captured-piece
// information, callers re-read the board before the destination is
// overwritten if they need it.
type Move struct {
	From Square
	To   Square

	// The piece promoted to (Empty if not specified; appliers default
	// an unset promotion to Queen).
	Promotion Piece
}

// Equal reports whether two moves have the same source, destination and
// promotion piece.
func (m Move) Equal(other Move) bool {
	return m.From == other.From && m.To == other.To && m.Promotion == other.Promotion
}

// SameSquares reports whether two moves share source and destination,
// ignoring the promotion piece.
func (m Move) SameSquares(other Move) bool {
	return m.From == other.From && m.To == other.To
}
