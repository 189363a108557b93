// flippy is a terminal side-scroller: flap between the walls, score a point
// for every wall you pass.
//
// Usage:
//
//	flippy                 - Play locally (same as flippy play)
//	flippy play            - Play locally
//	flippy serve           - Start SSH server for remote play
//	flippy config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>  - Load configuration from a YAML file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flippy-bird/internal/config"
)

var (
	// Global flags
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flippy",
	Short: "Flippy Bird - flap through the walls in your terminal",
	Long: `Flippy Bird is a terminal side-scroller. Keep the bird in the air and
fly it through the gaps in the walls. Every wall passed scores a point, and
the gaps shrink as the score grows.

Available commands:
  play     - Play locally (default)
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  flippy
  flippy play --seed 42
  flippy play --backend tcell
  flippy serve --ssh :2222
  flippy config > ~/.flippy/config.yaml`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML (default: ~/.flippy/config.yaml)")
	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration or exits.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
