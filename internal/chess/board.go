package chess

// Board is an 8x8 grid of squares. It stores pieces and nothing else:
// turn, status and legality live in the engine.
type Board struct {
	// Squares[row][col]; row 0 is rank 8.
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// Get returns the piece at sq. Squares off the board read as empty.
func (b Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.Squares[sq.Row][sq.Col]
}

// Set places a piece at sq. Setting NoPiece clears it.
// Squares off the board are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.Valid() {
		b.Squares[sq.Row][sq.Col] = piece
	}
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	b.Set(sq, NoPiece)
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Count returns the number of pieces on the board.
func (b Board) Count() int {
	n := 0
	b.Each(func(Square, Piece) { n++ })
	return n
}

// CountColour returns the number of pieces of the given colour.
func (b Board) CountColour(colour Colour) int {
	n := 0
	b.Each(func(_ Square, p Piece) {
		if p.Colour == colour {
			n++
		}
	})
	return n
}

// Each calls fn for every occupied square, row 0 first, left to right.
func (b Board) Each(fn func(Square, Piece)) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.Squares[row][col]; !p.IsEmpty() {
				fn(Square{Row: row, Col: col}, p)
			}
		}
	}
}

// Find returns the first square holding piece, scanning from row 0.
func (b Board) Find(piece Piece) (Square, bool) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == piece {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return Square{}, false
}
