package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings are the simsvc defaults read from the environment. Command line
// flags override them.
type Settings struct {
	ConfigDir string `env:"ADHOP_CONFIG" envDefault:"assets"`
	Out       string `env:"ADHOP_OUT" envDefault:"out.json"`
	Seed      int64  `env:"ADHOP_SEED" envDefault:"0"`
	Runs      int    `env:"ADHOP_RUNS" envDefault:"1"`
	Workers   int    `env:"ADHOP_WORKERS" envDefault:"8"`
	Verbose   bool   `env:"ADHOP_VERBOSE"`
	Debug     bool   `env:"ADHOP_DEBUG"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
