package chess

// Move is a played move. Captured is the piece removed from To, or NoPiece.
type Move struct {
	From Square
	To   Square

	// The piece that moved, as it stood on From.
	Piece Piece

	Captured Piece

	// Set when a pawn reached the last row and became a queen.
	Promotion bool
}

// IsCapture reports whether the move removed an enemy piece.
func (m Move) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// String returns the move as a coordinate pair, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}
