package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// LegalMoves returns the destinations the piece on sq may legally move to
// when turn is the side to move. An empty square or a piece of the other
// side yields no moves. Each pseudo-legal destination is played on a
// scratch copy of the board and kept only if the mover's king is not
// attacked afterwards.
func LegalMoves(board *chess.Board, sq chess.Square, turn chess.Colour) []chess.Square {
	if !board.Get(sq).Is(turn) {
		return nil
	}

	var legal []chess.Square
	for _, to := range PseudoLegalMoves(board, sq) {
		if tryMove(board, sq, to, turn) {
			legal = append(legal, to)
		}
	}
	return legal
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			if !board.Get(sq).Is(colour) {
				continue
			}
			for _, to := range PseudoLegalMoves(board, sq) {
				if tryMove(board, sq, to, colour) {
					return true
				}
			}
		}
	}
	return false
}

// AllLegalMoves lists every legal move for colour, ordered by origin
// square (row 0 first) and then by generation order.
func AllLegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	board.Each(func(from chess.Square, piece chess.Piece) {
		if piece.Colour != colour {
			return
		}
		for _, to := range LegalMoves(board, from, colour) {
			moves = append(moves, describeMove(board, from, to))
		}
	})
	return moves
}

// tryMove makes a move on a copied board and reports whether it leaves
// the mover's king safe. Promotion is not applied; it cannot change
// whether the mover's own king is attacked.
func tryMove(board *chess.Board, from, to chess.Square, colour chess.Colour) bool {
	testBoard := board.Copy()

	piece := testBoard.Get(from)
	testBoard.Clear(from)
	testBoard.Set(to, piece)

	return !IsInCheck(testBoard, colour)
}

// describeMove builds the Move record for from->to on the current board.
func describeMove(board *chess.Board, from, to chess.Square) chess.Move {
	piece := board.Get(from)
	return chess.Move{
		From:      from,
		To:        to,
		Piece:     piece,
		Captured:  board.Get(to),
		Promotion: piece.Kind == chess.Pawn && chess.IsPromotionRow(to.Row),
	}
}
