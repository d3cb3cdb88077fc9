package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds process-level overrides read from the environment. Command-line
// flags take precedence over these.
type Env struct {
	FPS     int    `env:"SKYFALL_FPS" envDefault:"60"`
	Seed    int64  `env:"SKYFALL_SEED"`
	Mute    bool   `env:"SKYFALL_MUTE"`
	SSHAddr string `env:"SKYFALL_SSH_ADDR" envDefault:":23234"`
}

// LoadEnv parses the SKYFALL_* variables.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("config: parse env: %w", err)
	}
	if e.FPS <= 0 {
		return Env{}, fmt.Errorf("config: SKYFALL_FPS must be positive, got %d", e.FPS)
	}
	return e, nil
}
