// Package engine provides chess move generation, legality checking and
// game state transitions.
package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialPlacement is the piece placement field of the standard starting position.
const InitialPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = InitialPlacement + " w - - 0 1"

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board, err := ParsePlacement(InitialPlacement)
	if err != nil {
		panic(err)
	}
	return board
}

// NewBoardFromFEN creates a board and side to move from a FEN string.
// Only the placement and side-to-move fields are read; a missing side
// defaults to White. Castling, en passant and clock fields are ignored.
func NewBoardFromFEN(fen string) (*chess.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board, err := ParsePlacement(parts[0])
	if err != nil {
		return nil, chess.White, err
	}

	turn, err := parseSideToMove(parts)
	if err != nil {
		return nil, chess.White, err
	}
	return board, turn, nil
}

// ParsePlacement parses the piece placement field of a FEN string. Ranks
// are listed from row 0 (rank 8) down, separated by '/'; digits stand for
// runs of empty squares. Every rank must describe exactly 8 squares.
func ParsePlacement(placement string) (*chess.Board, error) {
	board := chess.NewBoard()
	row, col := 0, 0

	fail := func(i int, expected, got string) error {
		return &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Input:    placement,
			Rank:     row + 1,
			Offset:   i + 1,
			Expected: expected,
			Got:      got,
		}
	}

	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c == '/':
			if col != chess.BoardSize {
				return nil, fail(i, "8 squares in rank", fmt.Sprintf("%d", col))
			}
			row++
			col = 0
			if row >= chess.BoardSize {
				return nil, fail(i, "8 ranks", "more")
			}
		case c >= '1' && c <= '8':
			col += int(c - '0')
			if col > chess.BoardSize {
				return nil, fail(i, "8 squares in rank", fmt.Sprintf("%d", col))
			}
		default:
			kind := chess.KindFromLetter(c)
			if kind == chess.Empty {
				return nil, fail(i, "piece letter or digit", fmt.Sprintf("%q", c))
			}
			if col >= chess.BoardSize {
				return nil, fail(i, "8 squares in rank", "more")
			}
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			board.Set(chess.Sq(row, col), chess.MakePiece(colour, kind))
			col++
		}
	}

	if row != chess.LastRow || col != chess.BoardSize {
		return nil, fail(len(placement)-1, "8 full ranks", fmt.Sprintf("%d ranks", row+1))
	}
	return board, nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// BoardToPlacement converts a board to a FEN piece placement field.
func BoardToPlacement(board *chess.Board) string {
	var sb strings.Builder

	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Get(chess.Sq(row, col))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.LastRow {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// BoardToFEN converts a board and side to move to a FEN string. Castling
// and en passant are always "-" since the engine does not play them.
func BoardToFEN(board *chess.Board, turn chess.Colour) string {
	side := "w"
	if turn == chess.Black {
		side = "b"
	}
	return BoardToPlacement(board) + " " + side + " - - 0 1"
}
