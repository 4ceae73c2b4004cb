package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// JSONState represents a game state in JSON format.
type JSONState struct {
	ID     string            `json:"id"`
	FEN    string            `json:"fen"`
	Turn   string            `json:"turn"`
	Status string            `json:"status"`
	Board  map[string]string `json:"board"`
	Moves  []JSONMove        `json:"moves,omitempty"`
	Legal  []string          `json:"legal,omitempty"`

	Selected *JSONSelection `json:"selected,omitempty"`
}

// JSONSelection lists the legal destinations of one square.
type JSONSelection struct {
	Square  string   `json:"square"`
	Targets []string `json:"targets"`
}

// JSONMove represents a played move in JSON format.
type JSONMove struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Piece     string `json:"piece"`
	Captured  string `json:"captured,omitempty"`
	Promotion bool   `json:"promotion,omitempty"`
}

// StateToJSON converts a game state to JSON format. Board maps occupied
// squares ("e1") to placement letters ("K"); empty squares are omitted.
// Legal moves are included when withLegal is set.
func StateToJSON(s engine.GameState, withLegal bool) *JSONState {
	js := &JSONState{
		ID:     s.ID().String(),
		FEN:    s.FEN(),
		Turn:   s.Turn().String(),
		Status: s.Status().String(),
		Board:  make(map[string]string),
	}

	board := s.Board()
	board.Each(func(sq chess.Square, piece chess.Piece) {
		js.Board[sq.String()] = string(piece.Letter())
	})

	for _, m := range s.History() {
		jm := JSONMove{
			From:      m.From.String(),
			To:        m.To.String(),
			Piece:     string(m.Piece.Letter()),
			Promotion: m.Promotion,
		}
		if m.IsCapture() {
			jm.Captured = string(m.Captured.Letter())
		}
		js.Moves = append(js.Moves, jm)
	}

	if withLegal {
		for _, m := range s.AllLegalMoves() {
			js.Legal = append(js.Legal, m.String())
		}
	}
	return js
}

// SelectionToJSON converts the legal destinations of sq.
func SelectionToJSON(s engine.GameState, sq chess.Square) *JSONSelection {
	sel := &JSONSelection{Square: sq.String(), Targets: []string{}}
	for _, to := range s.LegalMoves(sq) {
		sel.Targets = append(sel.Targets, to.String())
	}
	return sel
}

// OutputStateJSON writes a game state as indented JSON.
func OutputStateJSON(w io.Writer, s engine.GameState, withLegal bool) error {
	return writeJSON(w, StateToJSON(s, withLegal))
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
