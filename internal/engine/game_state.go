package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// GameState is one position of a game together with the side to move and
// its status. It is a value: ApplyMove returns a new GameState and leaves
// the receiver untouched, so a rejected move cannot change anything.
type GameState struct {
	id      uuid.UUID
	board   chess.Board
	turn    chess.Colour
	status  chess.Status
	history []chess.Move
}

// NewGame starts a game from the standard initial position with White to move.
func NewGame() GameState {
	return newGameState(NewInitialBoard(), chess.White)
}

// NewGameFromFEN starts a game from the placement and side-to-move fields
// of fen. The status is computed for the side to move, so a position that
// is already mate or stalemate starts terminal.
func NewGameFromFEN(fen string) (GameState, error) {
	board, turn, err := NewBoardFromFEN(fen)
	if err != nil {
		return GameState{}, err
	}
	return newGameState(board, turn), nil
}

func newGameState(board *chess.Board, turn chess.Colour) GameState {
	return GameState{
		id:     uuid.New(),
		board:  *board,
		turn:   turn,
		status: ComputeStatus(board, turn),
	}
}

// ID identifies the game. It is shared by every state derived from the
// same NewGame call.
func (s GameState) ID() uuid.UUID {
	return s.id
}

// Board returns a snapshot of the board.
func (s GameState) Board() chess.Board {
	return s.board
}

// Turn returns the side to move.
func (s GameState) Turn() chess.Colour {
	return s.turn
}

// Status returns the status for the side to move.
func (s GameState) Status() chess.Status {
	return s.status
}

// IsOver reports whether the game ended in checkmate or stalemate.
func (s GameState) IsOver() bool {
	return s.status.IsTerminal()
}

// History returns the moves played so far, oldest first.
func (s GameState) History() []chess.Move {
	return append([]chess.Move(nil), s.history...)
}

// Ply returns the number of moves played.
func (s GameState) Ply() int {
	return len(s.history)
}

// FEN returns the position as a FEN string.
func (s GameState) FEN() string {
	return BoardToFEN(&s.board, s.turn)
}

// Winner returns the side that delivered mate. ok is false unless the
// game ended in checkmate.
func (s GameState) Winner() (winner chess.Colour, ok bool) {
	if s.status != chess.Checkmate {
		return chess.White, false
	}
	return s.turn.Opposite(), true
}

// LegalMoves returns the legal destinations for the piece on sq. It is
// empty for an empty square, a piece of the side not to move, or a
// finished game.
func (s GameState) LegalMoves(sq chess.Square) []chess.Square {
	if s.IsOver() {
		return nil
	}
	return LegalMoves(&s.board, sq, s.turn)
}

// AllLegalMoves lists every legal move for the side to move.
func (s GameState) AllLegalMoves() []chess.Move {
	if s.IsOver() {
		return nil
	}
	return AllLegalMoves(&s.board, s.turn)
}

// ApplyMove plays from->to and returns the resulting state. A pawn reaching
// the last row becomes a queen. The move is rejected with ErrGameOver once
// the game has finished and with ErrIllegalMove when from does not hold a
// piece of the side to move or to is not one of its legal destinations.
func (s GameState) ApplyMove(from, to chess.Square) (GameState, error) {
	if err := s.validateMove(from, to); err != nil {
		return s, err
	}

	move := describeMove(&s.board, from, to)

	next := s
	next.board.Clear(from)
	if move.Promotion {
		next.board.Set(to, chess.MakePiece(move.Piece.Colour, chess.Queen))
	} else {
		next.board.Set(to, move.Piece)
	}

	next.history = make([]chess.Move, len(s.history), len(s.history)+1)
	copy(next.history, s.history)
	next.history = append(next.history, move)

	next.turn = s.turn.Opposite()
	next.status = ComputeStatus(&next.board, next.turn)
	return next, nil
}

// validateMove checks a requested move against the current state.
func (s GameState) validateMove(from, to chess.Square) error {
	moveErr := func(err error, reason string) error {
		return &errors.MoveError{
			Err:    err,
			Ply:    len(s.history) + 1,
			From:   from.String(),
			To:     to.String(),
			Reason: reason,
		}
	}

	if s.IsOver() {
		return moveErr(errors.ErrGameOver, s.status.String())
	}
	if !from.Valid() || !to.Valid() {
		return moveErr(errors.ErrIllegalMove, "square off the board")
	}

	piece := s.board.Get(from)
	if piece.IsEmpty() {
		return moveErr(errors.ErrIllegalMove, "no piece on origin")
	}
	if piece.Colour != s.turn {
		return moveErr(errors.ErrIllegalMove, fmt.Sprintf("%s to move", s.turn))
	}

	for _, legal := range LegalMoves(&s.board, from, s.turn) {
		if legal == to {
			return nil
		}
	}
	return moveErr(errors.ErrIllegalMove, "not a legal destination")
}

// ComputeStatus derives the status of the side to move.
func ComputeStatus(board *chess.Board, turn chess.Colour) chess.Status {
	inCheck := IsInCheck(board, turn)
	hasMoves := HasLegalMoves(board, turn)

	switch {
	case inCheck && !hasMoves:
		return chess.Checkmate
	case !inCheck && !hasMoves:
		return chess.Stalemate
	case inCheck:
		return chess.Check
	default:
		return chess.Ongoing
	}
}

// IsCheckmate returns true if turn is checkmated on board.
func IsCheckmate(board *chess.Board, turn chess.Colour) bool {
	return ComputeStatus(board, turn) == chess.Checkmate
}

// IsStalemate returns true if turn is stalemated on board.
func IsStalemate(board *chess.Board, turn chess.Colour) bool {
	return ComputeStatus(board, turn) == chess.Stalemate
}
