// Package config provides configuration for the chess-rules command.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// BoardFormat selects how boards are read and written.
type BoardFormat int

const (
	TextFormat    BoardFormat = iota // Dash-divided grid of two-character cells
	CompactFormat                    // '/'-separated ranks with digit runs
)

// String returns the flag spelling of the format.
func (f BoardFormat) String() string {
	if f == CompactFormat {
		return "compact"
	}
	return "text"
}

// ParseBoardFormat converts "text" or "compact" to a BoardFormat.
func ParseBoardFormat(s string) (BoardFormat, error) {
	switch s {
	case "text":
		return TextFormat, nil
	case "compact":
		return CompactFormat, nil
	}
	return TextFormat, fmt.Errorf("unknown board format %q (want text or compact)", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *BoardFormat) UnmarshalText(text []byte) error {
	parsed, err := ParseBoardFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Config holds all program configuration.
type Config struct {
	Verbosity int `env:"VERBOSITY"` // 0=nothing, 1=summaries, 2=running commentary

	// Workers is the goroutine count for legal move generation and batch
	// classification; 0 means one per CPU.
	Workers int `env:"WORKERS"`

	// Side to move
	Side chess.Side `env:"SIDE"`

	// Board input
	InputFormat BoardFormat `env:"INPUT_FORMAT"`

	Output OutputConfig `envPrefix:"OUTPUT_"`

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:   1,
		Side:        chess.White,
		InputFormat: TextFormat,
		Output:      *NewOutputConfig(),
		OutputFile:  os.Stdout,
		LogFile:     os.Stderr,
	}
}

// Validate checks the configuration for impossible values.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d must not be negative", c.Verbosity)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers %d must not be negative", c.Workers)
	}
	return nil
}

// Logf writes a diagnostic line when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
