package app

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Key       string `env:"BIFID_KEY"`                          // keyword for the square; empty means plain alphabet
	Padding   string `env:"BIFID_PADDING" envDefault:"X"`       // single letter appended to odd-length plaintext
	LogLevel  string `env:"BIFID_LOG_LEVEL" envDefault:"info"`  // zerolog level name
	LogPretty bool   `env:"BIFID_LOG_PRETTY" envDefault:"false"` // console writer instead of JSON
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
