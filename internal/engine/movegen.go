package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Direction tables as {row delta, col delta}.
var (
	straightDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	queenDirs    = append(append([][2]int{}, straightDirs...), diagonalDirs...)

	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// PseudoLegalMoves returns the destinations the piece on sq could move to
// by its movement pattern, ignoring whether its own king is left attacked.
// It does not look at whose turn it is: the attack detector asks it about
// pieces of the side not to move. An empty square yields no moves.
func PseudoLegalMoves(board *chess.Board, sq chess.Square) []chess.Square {
	piece := board.Get(sq)
	if piece.IsEmpty() {
		return nil
	}

	switch piece.Kind {
	case chess.Pawn:
		return pawnMoves(board, sq, piece.Colour)
	case chess.Knight:
		return offsetMoves(board, sq, piece.Colour, knightOffsets)
	case chess.King:
		return offsetMoves(board, sq, piece.Colour, kingOffsets)
	case chess.Bishop:
		return slidingMoves(board, sq, piece.Colour, diagonalDirs)
	case chess.Rook:
		return slidingMoves(board, sq, piece.Colour, straightDirs)
	case chess.Queen:
		return slidingMoves(board, sq, piece.Colour, queenDirs)
	}
	return nil
}

// slidingMoves casts a ray along each direction until the board edge, a
// friendly piece (excluded) or an enemy piece (included as a capture).
func slidingMoves(board *chess.Board, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Square {
	var moves []chess.Square
	for _, dir := range dirs {
		for to := from.Offset(dir[0], dir[1]); to.Valid(); to = to.Offset(dir[0], dir[1]) {
			target := board.Get(to)
			if !target.IsEmpty() {
				if target.Colour != colour {
					moves = append(moves, to)
				}
				break // Blocked
			}
			moves = append(moves, to)
		}
	}
	return moves
}

// offsetMoves handles knights and kings: fixed jumps onto empty or enemy squares.
func offsetMoves(board *chess.Board, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Square {
	var moves []chess.Square
	for _, offset := range offsets {
		to := from.Offset(offset[0], offset[1])
		if !to.Valid() {
			continue
		}
		if board.Get(to).Is(colour) {
			continue
		}
		moves = append(moves, to)
	}
	return moves
}

// pawnMoves generates pushes and diagonal captures. There is no en passant.
func pawnMoves(board *chess.Board, from chess.Square, colour chess.Colour) []chess.Square {
	var moves []chess.Square
	dir := colour.Forward()

	// Forward move
	one := from.Offset(dir, 0)
	if one.Valid() && board.Get(one).IsEmpty() {
		moves = append(moves, one)

		// Double push from starting row
		two := from.Offset(2*dir, 0)
		if from.Row == chess.HomeRow(colour) && two.Valid() && board.Get(two).IsEmpty() {
			moves = append(moves, two)
		}
	}

	// Captures
	for dc := -1; dc <= 1; dc += 2 {
		to := from.Offset(dir, dc)
		if !to.Valid() {
			continue
		}
		if board.Get(to).Is(colour.Opposite()) {
			moves = append(moves, to)
		}
	}
	return moves
}
