package engine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// play applies coordinate moves such as "e2e4", failing the test on the first rejection.
func play(t *testing.T, s GameState, moves ...string) GameState {
	t.Helper()
	for _, m := range moves {
		from := testutil.MustSquare(t, m[:2])
		to := testutil.MustSquare(t, m[2:])
		next, err := s.ApplyMove(from, to)
		if err != nil {
			t.Fatalf("ApplyMove(%s) error: %v", m, err)
		}
		s = next
	}
	return s
}

func mustGame(t *testing.T, fen string) GameState {
	t.Helper()
	s, err := NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q) error: %v", fen, err)
	}
	return s
}

// assertSameState compares every field, including unexported ones.
func assertSameState(t *testing.T, got, want GameState) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(GameState{})); diff != "" {
		t.Errorf("state changed (-want +got):\n%s", diff)
	}
}

func TestNewGame(t *testing.T) {
	s := NewGame()
	board := s.Board()

	if got := board.CountColour(chess.White); got != 16 {
		t.Errorf("white pieces = %d; want 16", got)
	}
	if got := board.CountColour(chess.Black); got != 16 {
		t.Errorf("black pieces = %d; want 16", got)
	}
	testutil.AssertEqual(t, board, *NewInitialBoard(), "initial layout")

	if s.Turn() != chess.White {
		t.Errorf("Turn() = %v; want White", s.Turn())
	}
	if s.Status() != chess.Ongoing {
		t.Errorf("Status() = %v; want Ongoing", s.Status())
	}
	if s.Ply() != 0 || len(s.History()) != 0 {
		t.Errorf("Ply() = %d, len(History()) = %d; want 0, 0", s.Ply(), len(s.History()))
	}
	if s.ID() == uuid.Nil {
		t.Error("ID() = uuid.Nil; want a generated id")
	}
	if s.FEN() != InitialFEN {
		t.Errorf("FEN() = %q; want %q", s.FEN(), InitialFEN)
	}
	if NewGame().ID() == s.ID() {
		t.Error("two games share an id")
	}
}

func TestApplyMove_TurnAlternationAndConservation(t *testing.T) {
	s := NewGame()
	moves := []struct {
		move      string
		wantCount int
	}{
		{"e2e4", 32},
		{"d7d5", 32},
		{"e4d5", 31}, // capture
		{"d8d5", 30}, // recapture
		{"b1c3", 30},
	}

	for _, tt := range moves {
		before := s
		s = play(t, s, tt.move)
		if s.Turn() == before.Turn() {
			t.Errorf("after %s Turn() = %v; want it to change", tt.move, s.Turn())
		}
		board := s.Board()
		if got := board.Count(); got != tt.wantCount {
			t.Errorf("after %s Count() = %d; want %d", tt.move, got, tt.wantCount)
		}
		if s.ID() != before.ID() {
			t.Errorf("after %s ID changed", tt.move)
		}
	}

	history := s.History()
	if len(history) != 5 {
		t.Fatalf("len(History()) = %d; want 5", len(history))
	}
	if !history[2].IsCapture() || history[2].Captured != chess.B(chess.Pawn) {
		t.Errorf("History()[2] = %+v; want capture of Black Pawn", history[2])
	}
	if history[0].IsCapture() {
		t.Errorf("History()[0] = %+v; want quiet move", history[0])
	}
}

func TestApplyMove_DoesNotModifyReceiver(t *testing.T) {
	s := NewGame()
	snapshot := s
	next := play(t, s, "e2e4")

	assertSameState(t, s, snapshot)
	after := next.Board()
	if after.Get(chess.Sq(4, 4)) != chess.W(chess.Pawn) {
		t.Error("pawn did not arrive on e4")
	}
	before := s.Board()
	if before.Get(chess.Sq(4, 4)) != chess.NoPiece {
		t.Error("original state sees the pawn on e4")
	}

	// Mutating returned slices and snapshots must not leak into the state.
	history := next.History()
	history[0].To = chess.Sq(0, 0)
	board := next.Board()
	board.Clear(chess.Sq(4, 4))
	if next.History()[0].To != chess.Sq(4, 4) {
		t.Error("History() exposes internal storage")
	}
	again := next.Board()
	if again.Get(chess.Sq(4, 4)).IsEmpty() {
		t.Error("Board() exposes internal storage")
	}
}

func TestBoard_SnapshotReadsChain(t *testing.T) {
	s := play(t, NewGame(), "e2e4", "d7d5", "e4d5")

	if got := s.Board().Get(chess.Sq(3, 3)); got != chess.W(chess.Pawn) {
		t.Errorf("Board().Get(d5) = %v; want White Pawn", got)
	}
	if got := s.Board().Count(); got != 31 {
		t.Errorf("Board().Count() = %d; want 31", got)
	}
	if got := s.Board().CountColour(chess.Black); got != 15 {
		t.Errorf("Board().CountColour(Black) = %d; want 15", got)
	}
	if sq, ok := s.Board().Find(chess.W(chess.King)); !ok || sq != chess.Sq(7, 4) {
		t.Errorf("Board().Find(White King) = %v, %v; want e1, true", sq, ok)
	}
	n := 0
	s.Board().Each(func(chess.Square, chess.Piece) { n++ })
	if n != 31 {
		t.Errorf("Board().Each visited %d squares; want 31", n)
	}
}

func TestApplyMove_SharedHistoryDoesNotAlias(t *testing.T) {
	base := play(t, NewGame(), "e2e4")
	a := play(t, base, "e7e5")
	b := play(t, base, "c7c5")

	if got := a.History()[1].String(); got != "e7e5" {
		t.Errorf("a.History()[1] = %s; want e7e5", got)
	}
	if got := b.History()[1].String(); got != "c7c5" {
		t.Errorf("b.History()[1] = %s; want c7c5", got)
	}
}

func TestApplyMove_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		from    chess.Square
		to      chess.Square
		wantErr error
	}{
		{"destination not legal", chess.Sq(6, 4), chess.Sq(3, 4), chesserrors.ErrIllegalMove},
		{"empty origin", chess.Sq(4, 4), chess.Sq(3, 4), chesserrors.ErrIllegalMove},
		{"opponent piece", chess.Sq(1, 4), chess.Sq(3, 4), chesserrors.ErrIllegalMove},
		{"origin off the board", chess.Sq(8, 4), chess.Sq(4, 4), chesserrors.ErrIllegalMove},
		{"destination off the board", chess.Sq(6, 4), chess.Sq(-1, 4), chesserrors.ErrIllegalMove},
		{"capture own piece", chess.Sq(7, 3), chess.Sq(6, 3), chesserrors.ErrIllegalMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewGame()
			got, err := s.ApplyMove(tt.from, tt.to)
			testutil.AssertErrorIs(t, err, tt.wantErr, "ApplyMove(%v, %v)", tt.from, tt.to)
			assertSameState(t, got, s)
		})
	}
}

func TestApplyMove_RejectedMoveError(t *testing.T) {
	s := play(t, NewGame(), "e2e4")
	_, err := s.ApplyMove(chess.Sq(1, 4), chess.Sq(4, 4))

	var moveErr *chesserrors.MoveError
	if !errors.As(err, &moveErr) {
		t.Fatalf("ApplyMove() error = %v; want *MoveError", err)
	}
	if moveErr.Ply != 2 {
		t.Errorf("MoveError.Ply = %d; want 2", moveErr.Ply)
	}
	if moveErr.From != "e7" || moveErr.To != "e4" {
		t.Errorf("MoveError squares = %s%s; want e7e4", moveErr.From, moveErr.To)
	}
}

func TestFoolsMate(t *testing.T) {
	s := play(t, NewGame(), "f2f3", "e7e5", "g2g4", "d8h4")

	if s.Status() != chess.Checkmate {
		t.Fatalf("Status() = %v; want Checkmate", s.Status())
	}
	if s.Turn() != chess.White {
		t.Errorf("Turn() = %v; want White", s.Turn())
	}
	board := s.Board()
	if HasLegalMoves(&board, chess.White) {
		t.Error("HasLegalMoves(White) = true after mate")
	}
	if winner, ok := s.Winner(); !ok || winner != chess.Black {
		t.Errorf("Winner() = %v, %v; want Black, true", winner, ok)
	}
	if !s.IsOver() {
		t.Error("IsOver() = false after mate")
	}
}

func TestScholarsMate(t *testing.T) {
	s := NewGame()
	statuses := []struct {
		move string
		want chess.Status
	}{
		{"e2e4", chess.Ongoing},
		{"e7e5", chess.Ongoing},
		{"f1c4", chess.Ongoing},
		{"b8c6", chess.Ongoing},
		{"d1h5", chess.Ongoing},
		{"g8f6", chess.Ongoing},
		{"h5f7", chess.Checkmate},
	}

	for _, tt := range statuses {
		s = play(t, s, tt.move)
		if s.Status() != tt.want {
			t.Errorf("after %s Status() = %v; want %v", tt.move, s.Status(), tt.want)
		}
	}

	last := s.History()[len(s.History())-1]
	if last.Captured != chess.B(chess.Pawn) {
		t.Errorf("mating move captured %v; want Black Pawn", last.Captured)
	}
	if winner, ok := s.Winner(); !ok || winner != chess.White {
		t.Errorf("Winner() = %v, %v; want White, true", winner, ok)
	}
}

func TestCheckStatus(t *testing.T) {
	// 1.e4 f6 2.Qh5+ g6 is a blockable check.
	s := play(t, NewGame(), "e2e4", "f7f6", "d1h5")
	if s.Status() != chess.Check {
		t.Fatalf("Status() = %v; want Check", s.Status())
	}

	// Only moves that answer the check are offered.
	for _, m := range s.AllLegalMoves() {
		next := play(t, s, m.String())
		board := next.Board()
		if IsInCheck(&board, chess.Black) {
			t.Errorf("legal move %v leaves Black in check", m)
		}
	}
	if got := s.LegalMoves(chess.Sq(1, 0)); len(got) != 0 {
		t.Errorf("LegalMoves(a7) while in check = %v; want none", got)
	}

	s = play(t, s, "g7g6")
	if s.Status() != chess.Ongoing {
		t.Errorf("Status() after block = %v; want Ongoing", s.Status())
	}
}

func TestStalemate(t *testing.T) {
	s := mustGame(t, "k7/8/8/2Q5/8/8/8/7K w")
	if s.Status() != chess.Ongoing {
		t.Fatalf("Status() before Qb6 = %v; want Ongoing", s.Status())
	}

	s = play(t, s, "c5b6")
	if s.Status() != chess.Stalemate {
		t.Fatalf("Status() = %v; want Stalemate", s.Status())
	}
	board := s.Board()
	if IsInCheck(&board, chess.Black) {
		t.Error("stalemated side is in check")
	}
	if _, ok := s.Winner(); ok {
		t.Error("Winner() reported a winner for stalemate")
	}
	if !IsStalemate(&board, chess.Black) || IsCheckmate(&board, chess.Black) {
		t.Error("IsStalemate/IsCheckmate disagree with Status()")
	}
}

func TestNewGameFromFEN_TerminalStart(t *testing.T) {
	s := mustGame(t, "k7/1Q6/2K5/8/8/8/8/8 b")
	if s.Status() != chess.Checkmate {
		t.Errorf("Status() = %v; want Checkmate", s.Status())
	}

	s = mustGame(t, "k7/8/1Q6/8/8/8/8/7K b")
	if s.Status() != chess.Stalemate {
		t.Errorf("Status() = %v; want Stalemate", s.Status())
	}

	if _, err := NewGameFromFEN("not a fen"); !errors.Is(err, chesserrors.ErrInvalidFEN) {
		t.Errorf("NewGameFromFEN(bad) error = %v; want ErrInvalidFEN", err)
	}
}

func TestTerminalImmutability(t *testing.T) {
	s := play(t, NewGame(), "f2f3", "e7e5", "g2g4", "d8h4")

	attempts := [][2]chess.Square{
		{chess.Sq(6, 0), chess.Sq(5, 0)}, // a2a3
		{chess.Sq(0, 4), chess.Sq(1, 4)}, // black king, wrong side
		{chess.Sq(4, 4), chess.Sq(3, 4)}, // empty square
		{chess.Sq(7, 4), chess.Sq(6, 5)}, // Kf2, the only square near the king
	}
	for _, a := range attempts {
		got, err := s.ApplyMove(a[0], a[1])
		testutil.AssertErrorIs(t, err, chesserrors.ErrGameOver, "ApplyMove(%v, %v)", a[0], a[1])
		assertSameState(t, got, s)
	}

	if got := s.LegalMoves(chess.Sq(6, 0)); len(got) != 0 {
		t.Errorf("LegalMoves(a2) after mate = %v; want none", got)
	}
	if got := s.AllLegalMoves(); len(got) != 0 {
		t.Errorf("AllLegalMoves() after mate = %v; want none", got)
	}
}

func TestPromotion(t *testing.T) {
	tests := []struct {
		name       string
		fen        string
		move       string
		wantPiece  chess.Piece
		wantCount  int
		wantStatus chess.Status
	}{
		{
			name:       "white pawn reaches row 0",
			fen:        "k7/4P3/8/8/8/8/8/7K w",
			move:       "e7e8",
			wantPiece:  chess.W(chess.Queen),
			wantCount:  3,
			wantStatus: chess.Check,
		},
		{
			name:       "black pawn captures onto row 7",
			fen:        "k7/8/8/8/8/8/6p1/5R1K b",
			move:       "g2f1",
			wantPiece:  chess.B(chess.Queen),
			wantCount:  3,
			wantStatus: chess.Check,
		},
		{
			name:       "black pawn pushes onto row 7",
			fen:        "k7/8/8/8/8/8/p7/7K b",
			move:       "a2a1",
			wantPiece:  chess.B(chess.Queen),
			wantCount:  3,
			wantStatus: chess.Check,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustGame(t, tt.fen)
			s = play(t, s, tt.move)

			to := testutil.MustSquare(t, tt.move[2:])
			board := s.Board()
			if got := board.Get(to); got != tt.wantPiece {
				t.Errorf("Get(%s) = %v; want %v", tt.move[2:], got, tt.wantPiece)
			}
			if got := board.Count(); got != tt.wantCount {
				t.Errorf("Count() = %d; want %d", got, tt.wantCount)
			}
			if s.Status() != tt.wantStatus {
				t.Errorf("Status() = %v; want %v", s.Status(), tt.wantStatus)
			}
			last := s.History()[s.Ply()-1]
			if !last.Promotion || last.Piece.Kind != chess.Pawn {
				t.Errorf("History() last = %+v; want pawn promotion", last)
			}
		})
	}
}

func TestLegalMoves_KnightShape(t *testing.T) {
	s := mustGame(t, "8/8/8/3N4/8/8/8/8 w")
	got := s.LegalMoves(chess.Sq(3, 3))
	want := []chess.Square{
		chess.Sq(1, 2), chess.Sq(1, 4), chess.Sq(2, 1), chess.Sq(2, 5),
		chess.Sq(4, 1), chess.Sq(4, 5), chess.Sq(5, 2), chess.Sq(5, 4),
	}
	testutil.AssertSquares(t, got, want)
}

func TestLegalMoves_InvalidSelection(t *testing.T) {
	s := NewGame()
	for _, sq := range []chess.Square{chess.Sq(4, 4), chess.Sq(1, 4), chess.Sq(9, 9)} {
		if got := s.LegalMoves(sq); len(got) != 0 {
			t.Errorf("LegalMoves(%v) = %v; want none", sq, got)
		}
	}
}

// TestSelfPlay walks a deterministic game and checks the move invariants at
// every ply: no legal move leaves the mover in check, captures remove exactly
// one piece, other moves conserve the count, and the turn alternates.
func TestSelfPlay(t *testing.T) {
	s := NewGame()
	for ply := 0; ply < 120 && !s.IsOver(); ply++ {
		moves := s.AllLegalMoves()
		if len(moves) == 0 {
			t.Fatalf("ply %d: no legal moves but Status() = %v", ply, s.Status())
		}

		for _, m := range moves {
			next, err := s.ApplyMove(m.From, m.To)
			if err != nil {
				t.Fatalf("ply %d: legal move %v rejected: %v", ply, m, err)
			}
			board := next.Board()
			if IsInCheck(&board, s.Turn()) {
				t.Errorf("ply %d: %v leaves %v in check", ply, m, s.Turn())
			}
			if next.Turn() == s.Turn() {
				t.Errorf("ply %d: turn did not alternate after %v", ply, m)
			}
			before := s.Board()
			want := before.Count()
			if m.IsCapture() {
				want--
			}
			if got := board.Count(); got != want {
				t.Errorf("ply %d: %v count = %d; want %d", ply, m, got, want)
			}
		}

		pick := moves[(ply*7+3)%len(moves)]
		s = play(t, s, pick.String())
	}
}
