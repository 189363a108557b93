package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flippy-bird/internal/config"
)

func TestSSHServerConfigFrom(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.TickRate = 30
	cfg.SSH.Address = ":2222"
	cfg.SSH.HostKey = "/tmp/key"
	cfg.SSH.IdleTimeout = 5 * time.Minute

	got := SSHServerConfigFrom(cfg)
	if got.Address != ":2222" || got.HostKeyPath != "/tmp/key" {
		t.Errorf("address/key = %q/%q", got.Address, got.HostKeyPath)
	}
	if got.IdleTimeout != 5*time.Minute {
		t.Errorf("IdleTimeout = %v, expected 5m", got.IdleTimeout)
	}
	if got.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", got.TickRate)
	}
	if len(got.Keys.Flap) != 1 || got.Keys.Flap[0] != " " {
		t.Errorf("Keys.Flap = %q", got.Keys.Flap)
	}
}

func TestNewSSHServerGeneratesHostKey(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "keys", "host_key")

	srv, err := NewSSHServer(SSHServerConfig{
		Address:     "127.0.0.1:0",
		HostKeyPath: keyPath,
		TickRate:    60,
		Keys:        config.DefaultConfig().Keys,
	}, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer failed: %v", err)
	}

	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr = %q", srv.Addr())
	}
	if _, err := os.Stat(keyPath); err != nil {
		t.Errorf("host key not written: %v", err)
	}
}
