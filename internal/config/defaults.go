package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flippy.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		TickRate: 60,
		Seed:     0,
		Backend:  BackendBubbleTea,
		Keys: KeyConfig{
			Play: []string{"p"},
			Quit: []string{"q"},
			Flap: []string{" "},
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.flippy/flippy.log",
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
