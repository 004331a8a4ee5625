package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ServerEnv configures the battle service from the environment.
type ServerEnv struct {
	Addr      string `env:"BATTLED_ADDR" envDefault:":8080"`
	UnitsFile string `env:"BATTLED_UNITS_FILE" envDefault:"assets/units.yaml"`
	LogFile   string `env:"BATTLED_LOG_FILE"`
	LogLevel  string `env:"BATTLED_LOG_LEVEL" envDefault:"info"`
	MaxRounds int    `env:"BATTLED_MAX_ROUNDS"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
