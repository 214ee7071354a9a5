package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format is the board format used when printing positions
	Format BoardFormat `env:"FORMAT"`

	// ShowBoard prints the resulting board after a move sequence
	ShowBoard bool `env:"SHOW_BOARD"`

	// Coordinates appends the (row,col) form after each move
	Coordinates bool `env:"COORDINATES"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:    TextFormat,
		ShowBoard: true,
	}
}
