// Package output renders game states as text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// WriteBoard draws the board, row 0 (rank 8) at the top.
func WriteBoard(w io.Writer, board chess.Board, cfg *config.OutputConfig) error {
	var sb strings.Builder

	for row := 0; row < chess.BoardSize; row++ {
		if cfg.ShowCoordinates {
			fmt.Fprintf(&sb, "%d ", chess.BoardSize-row)
		}
		for col := 0; col < chess.BoardSize; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(glyph(board.Get(chess.Sq(row, col)), cfg.Glyphs))
		}
		sb.WriteByte('\n')
	}
	if cfg.ShowCoordinates {
		sb.WriteString("  a b c d e f g h\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// glyph returns the drawing for one square; empty squares are dots.
func glyph(piece chess.Piece, style config.GlyphStyle) string {
	if piece.IsEmpty() {
		return "."
	}
	if style == config.LetterGlyphs {
		return string(piece.Letter())
	}
	return piece.Symbol()
}

// StatusLine describes the state for a player: who is to move, check, or
// the final result.
func StatusLine(s engine.GameState) string {
	switch s.Status() {
	case chess.Checkmate:
		winner, _ := s.Winner()
		return fmt.Sprintf("Checkmate! %s wins!", winner)
	case chess.Stalemate:
		return "Stalemate! Draw."
	case chess.Check:
		return fmt.Sprintf("Check! %s to move", s.Turn())
	default:
		return fmt.Sprintf("%s to move", s.Turn())
	}
}

// SelectionLine lists the legal destinations of the piece on sq, e.g.
// "e2: e3 e4". A square with nothing playable lists "none".
func SelectionLine(s engine.GameState, sq chess.Square) string {
	targets := s.LegalMoves(sq)
	if len(targets) == 0 {
		return sq.String() + ": none"
	}
	parts := make([]string, len(targets))
	for i, to := range targets {
		parts[i] = to.String()
	}
	return sq.String() + ": " + strings.Join(parts, " ")
}

// FormatMoves joins moves as coordinate pairs, e.g. "e2e4 g1f3".
func FormatMoves(moves []chess.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
