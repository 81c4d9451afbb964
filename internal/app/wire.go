package app

import (
	"io"

	"github.com/rs/zerolog"

	"bifid/internal/observability"
	ciphersvc "bifid/internal/services/cipher"
)

// Wire bundles the logger and services for the CLI.
type Wire struct {
	Cipher  *ciphersvc.Service
	Logger  zerolog.Logger
	Padding rune
}

// NewWire constructs the dependency graph from cfg. Logs are written to logOut.
func NewWire(cfg Config, logOut io.Writer) (*Wire, error) {
	padding, err := parsePadding(cfg.Padding)
	if err != nil {
		return nil, err
	}

	log := observability.NewLogger("bifid", cfg.LogLevel, cfg.LogPretty, logOut)
	svc := ciphersvc.New(cfg.Key, padding, log)

	return &Wire{
		Cipher:  svc,
		Logger:  log,
		Padding: padding,
	}, nil
}
