package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flippy-bird/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration flippy would run with, as YAML.

The output is a complete config file; save it to ~/.flippy/config.yaml
and edit it to change keys, frame rate or server settings.

Examples:
  flippy config
  flippy config --config ./my-flippy.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		data, err := config.Marshal(loadConfig())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(string(data))
	},
}
