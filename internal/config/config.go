// Package config provides run-time configuration for the chessplay front end.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// StartFEN is the position play starts from.
	StartFEN string

	// Output settings
	Output OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		StartFEN:   engine.InitialFEN,
		Output:     *NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate reports configuration values the front end cannot run with.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d out of range 0-2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if _, _, err := engine.NewBoardFromFEN(c.StartFEN); err != nil {
		return fmt.Errorf("start position: %w: %w", errors.ErrInvalidConfig, err)
	}
	if c.Output.Select != "" {
		if _, err := chess.ParseSquare(c.Output.Select); err != nil {
			return fmt.Errorf("selected square: %w: %w", errors.ErrInvalidConfig, err)
		}
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return fmt.Errorf("nil output stream: %w", errors.ErrInvalidConfig)
	}
	return nil
}
