package config

import (
	"fmt"
	"reflect"

	"github.com/caarlos0/env/v11"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "CHESS_RULES_"

// LoadEnv overlays CHESS_RULES_* environment variables onto cfg. Unset
// variables leave the existing values in place.
func LoadEnv(cfg *Config) error {
	opts := env.Options{
		Prefix: EnvPrefix,
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(chess.White): parseSideEnv,
		},
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return cfg.Validate()
}

func parseSideEnv(v string) (interface{}, error) {
	side, ok := chess.ParseSide(v)
	if !ok {
		return nil, fmt.Errorf("unknown side %q (want white or black)", v)
	}
	return side, nil
}
