package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/output"
)

// parseMoveToken splits "e2e4" or "e2-e4" into its two squares.
func parseMoveToken(token string) (from, to chess.Square, err error) {
	text := strings.Replace(token, "-", "", 1)
	if len(text) != 4 {
		return from, to, fmt.Errorf("move %q: %w", token, errors.ErrInvalidSquare)
	}
	if from, err = chess.ParseSquare(text[:2]); err != nil {
		return from, to, errors.Wrapf(err, "move %q", token)
	}
	if to, err = chess.ParseSquare(text[2:]); err != nil {
		return from, to, errors.Wrapf(err, "move %q", token)
	}
	return from, to, nil
}

// readMoveTokens returns the whitespace-separated tokens of r.
func readMoveTokens(r io.Reader) ([]string, error) {
	var tokens []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading moves")
	}
	return tokens, nil
}

// playMoves applies tokens in order and stops at the first one that is
// malformed or rejected. The last accepted state is always returned.
func playMoves(cfg *config.Config, state engine.GameState, tokens []string) (engine.GameState, error) {
	for _, token := range tokens {
		from, to, err := parseMoveToken(token)
		if err != nil {
			return state, err
		}
		next, err := state.ApplyMove(from, to)
		if err != nil {
			return state, err
		}
		state = next

		if cfg.Verbosity > 1 {
			last := state.History()[state.Ply()-1]
			fmt.Fprintf(cfg.LogFile, "%d. %s %s: %s\n", state.Ply(), last.Piece, last, state.Status())
		}
	}
	return state, nil
}

// run plays the moves read from moves and writes the final state. A rejected
// move is returned after the state reached so far has been written.
func run(cfg *config.Config, moves io.Reader) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	state, err := engine.NewGameFromFEN(cfg.StartFEN)
	if err != nil {
		return err
	}
	if cfg.Verbosity > 1 {
		fmt.Fprintf(cfg.LogFile, "Game %s from %s\n", state.ID(), state.FEN())
	}

	var tokens []string
	if moves != nil {
		if tokens, err = readMoveTokens(moves); err != nil {
			return err
		}
	}

	state, playErr := playMoves(cfg, state, tokens)

	if err := output.NewStateWriter(cfg.OutputFile, &cfg.Output).WriteState(state); err != nil {
		return errors.Wrap(err, "writing state")
	}
	if cfg.Verbosity > 0 {
		reportSummary(cfg, state)
	}
	return playErr
}

func reportSummary(cfg *config.Config, state engine.GameState) {
	fmt.Fprintf(cfg.LogFile, "%d ply played, %s.\n", state.Ply(), state.Status())
	if state.IsOver() {
		return
	}
	board := state.Board()
	if engine.HasInsufficientMaterial(&board) {
		fmt.Fprintf(cfg.LogFile, "Neither side has mating material.\n")
	}
}
