package config

import (
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithWorkers sets the worker count.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithSide sets the side to move.
func (b *ConfigBuilder) WithSide(side chess.Side) *ConfigBuilder {
	b.cfg.Side = side
	return b
}

// WithInputFormat sets the board input format.
func (b *ConfigBuilder) WithInputFormat(format BoardFormat) *ConfigBuilder {
	b.cfg.InputFormat = format
	return b
}

// WithOutputFormat sets the board output format.
func (b *ConfigBuilder) WithOutputFormat(format BoardFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// ShowBoard controls whether the final board is printed.
func (b *ConfigBuilder) ShowBoard(show bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = show
	return b
}

// WithCoordinates controls whether moves are followed by their coordinates.
func (b *ConfigBuilder) WithCoordinates(enabled bool) *ConfigBuilder {
	b.cfg.Output.Coordinates = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostic writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
