// Package config provides YAML-based configuration loading for the Flippy
// Bird hosts. Only host concerns live here; game rules are constants in the
// game package.
package config

import (
	"time"

	"github.com/vovakirdan/flippy-bird/internal/core"
)

// Supported terminal backends.
const (
	BackendBubbleTea = "bubbletea"
	BackendTcell     = "tcell"
)

// Config contains all host configuration.
type Config struct {
	TickRate int       `yaml:"tick_rate"`
	Seed     int64     `yaml:"seed"`
	Backend  string    `yaml:"backend"`
	Keys     KeyConfig `yaml:"keys"`
	Log      LogConfig `yaml:"log"`
	SSH      SSHConfig `yaml:"ssh"`
}

// KeyConfig binds key names to game actions. Names use Bubble Tea's key
// notation ("p", " ", "up", "enter").
type KeyConfig struct {
	Play []string `yaml:"play"`
	Quit []string `yaml:"quit"`
	Flap []string `yaml:"flap"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Used by local play, the SSH server logs to stderr
}

// SSHConfig defines the SSH server parameters.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"` // Empty means ~/.flippy/host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Runtime returns the subset of the config the game host needs.
func (c Config) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		TickRate: c.TickRate,
		Seed:     c.Seed,
	}
}
