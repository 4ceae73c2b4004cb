package config

// GlyphStyle selects how pieces are drawn.
type GlyphStyle int

const (
	UnicodeGlyphs GlyphStyle = iota // ♔ ♚ ...
	LetterGlyphs                    // K k ...
)

// OutputConfig holds settings related to board output.
type OutputConfig struct {
	// Glyphs selects Unicode symbols or placement letters
	Glyphs GlyphStyle

	// ShowCoordinates prints file letters and rank numbers around the board
	ShowCoordinates bool

	// ShowLegalMoves lists the legal moves of the side to move after the board
	ShowLegalMoves bool

	// ShowFEN prints the final position as FEN
	ShowFEN bool

	// JSONFormat enables JSON output instead of a drawn board
	JSONFormat bool

	// Select names a square ("e2") whose legal destinations are listed
	Select string
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Glyphs:          UnicodeGlyphs,
		ShowCoordinates: true,
	}
}
