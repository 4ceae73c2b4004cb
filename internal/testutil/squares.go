package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// MustSquares parses algebraic coordinates, failing the test on bad input.
func MustSquares(t *testing.T, names ...string) []chess.Square {
	t.Helper()
	squares := make([]chess.Square, 0, len(names))
	for _, name := range names {
		sq, err := chess.ParseSquare(name)
		if err != nil {
			t.Fatalf("MustSquares(%q): %v", name, err)
		}
		squares = append(squares, sq)
	}
	return squares
}

// MustSquare parses a single square.
func MustSquare(t *testing.T, name string) chess.Square {
	t.Helper()
	return MustSquares(t, name)[0]
}

// SortSquares returns a sorted copy of squares (row, then column).
func SortSquares(squares []chess.Square) []chess.Square {
	sorted := append([]chess.Square{}, squares...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Row != sorted[j].Row {
			return sorted[i].Row < sorted[j].Row
		}
		return sorted[i].Col < sorted[j].Col
	})
	return sorted
}

// AssertSquares compares two square sets ignoring order.
func AssertSquares(t *testing.T, got []chess.Square, want []chess.Square, msgAndArgs ...interface{}) {
	t.Helper()
	AssertEqual(t, SortSquares(got), SortSquares(want), msgAndArgs...)
}
