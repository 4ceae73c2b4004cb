package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// StateWriter is the interface for writing game states to output.
// Different implementations handle different output formats (text, JSON).
type StateWriter interface {
	// WriteState writes a single game state to the output.
	WriteState(s engine.GameState) error
}

// TextWriter draws the board followed by a status line.
type TextWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.OutputConfig) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteState writes the board, the status and the optional extras.
func (tw *TextWriter) WriteState(s engine.GameState) error {
	if err := WriteBoard(tw.w, s.Board(), tw.cfg); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(tw.w, StatusLine(s)); err != nil {
		return err
	}
	if tw.cfg.ShowFEN {
		if _, err := fmt.Fprintln(tw.w, s.FEN()); err != nil {
			return err
		}
	}
	if tw.cfg.ShowLegalMoves && !s.IsOver() {
		if _, err := fmt.Fprintf(tw.w, "Legal: %s\n", FormatMoves(s.AllLegalMoves())); err != nil {
			return err
		}
	}
	if tw.cfg.Select != "" {
		sq, err := chess.ParseSquare(tw.cfg.Select)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(tw.w, SelectionLine(s, sq)); err != nil {
			return err
		}
	}
	return nil
}

// JSONWriter writes game states in JSON format.
type JSONWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer, cfg *config.OutputConfig) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg}
}

// WriteState writes one JSON document.
func (jw *JSONWriter) WriteState(s engine.GameState) error {
	js := StateToJSON(s, jw.cfg.ShowLegalMoves)
	if jw.cfg.Select != "" {
		sq, err := chess.ParseSquare(jw.cfg.Select)
		if err != nil {
			return err
		}
		js.Selected = SelectionToJSON(s, sq)
	}
	return writeJSON(jw.w, js)
}

// NewStateWriter picks the writer matching cfg.
func NewStateWriter(w io.Writer, cfg *config.OutputConfig) StateWriter {
	if cfg.JSONFormat {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}
