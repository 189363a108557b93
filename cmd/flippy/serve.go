package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flippy-bird/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Flippy Bird SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game with its own random walls.
Sessions need a PTY; connect with a terminal of at least 80x50.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.flippy/host_key

Examples:
  flippy serve                           # Listen on :23234 with auto-generated key
  flippy serve --ssh :2222               # Listen on port 2222
  flippy serve --host-key ./my_host_key  # Use specific host key
  flippy serve --idle-timeout 5m         # Drop idle sessions after five minutes

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address host:port (overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting, 0 disables (overrides config)")
}

func runServe(cmd *cobra.Command, _ []string) {
	cfg := loadConfig()

	flags := cmd.Flags()
	if flags.Changed("ssh") {
		cfg.SSH.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		cfg.SSH.HostKey = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		cfg.SSH.IdleTimeout = flagIdleTimeout
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The server does not own a terminal, so it logs to stderr.
	logger := newLogger(os.Stderr, cfg.Log.Level)

	server, err := tui.NewSSHServer(tui.SSHServerConfigFrom(cfg), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Flippy Bird SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
