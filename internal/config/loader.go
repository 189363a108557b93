package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Load loads the host configuration.
// Search order: customPath -> ~/.flippy/config.yaml -> ./configs/flippy.yaml -> embedded default
// Files only need to set the fields they change; everything else keeps the
// default value.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/flippy.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of DefaultConfig and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate reports the first problem that would keep a host from starting.
func (c Config) Validate() error {
	if c.TickRate <= 0 || c.TickRate > 240 {
		return fmt.Errorf("tick_rate must be between 1 and 240, got %d", c.TickRate)
	}

	switch c.Backend {
	case BackendBubbleTea, BackendTcell:
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s)", c.Backend, BackendBubbleTea, BackendTcell)
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	if len(c.Keys.Play) == 0 || len(c.Keys.Quit) == 0 || len(c.Keys.Flap) == 0 {
		return errors.New("keys: play, quit and flap each need at least one binding")
	}

	if c.SSH.IdleTimeout < 0 {
		return fmt.Errorf("ssh.idle_timeout must not be negative, got %s", c.SSH.IdleTimeout)
	}

	return nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/")), nil
}

// DataDir returns ~/.flippy, where logs, screenshots and the host key live.
func DataDir() (string, error) {
	return ExpandHome("~/.flippy")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir, err := DataDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, filename)
}
