package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsAttacked returns true if any piece of byColour has sq among its
// pseudo-legal destinations.
func IsAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	attacked := false
	board.Each(func(from chess.Square, piece chess.Piece) {
		if attacked || piece.Colour != byColour {
			return
		}
		for _, to := range PseudoLegalMoves(board, from) {
			if to == sq {
				attacked = true
				return
			}
		}
	})
	return attacked
}

// IsInCheck returns true if the given colour's king is attacked.
// A board without that king reports false.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq, ok := KingSquare(board, colour)
	if !ok {
		return false // No king found
	}
	return IsAttacked(board, kingSq, colour.Opposite())
}

// KingSquare finds the king of the given colour on the board.
func KingSquare(board *chess.Board, colour chess.Colour) (chess.Square, bool) {
	return board.Find(chess.MakePiece(colour, chess.King))
}
