package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flippy-bird/internal/config"
	"github.com/vovakirdan/flippy-bird/internal/games/flippy"
	"github.com/vovakirdan/flippy-bird/internal/platform/cell"
	"github.com/vovakirdan/flippy-bird/internal/platform/tui"
)

var (
	flagBackend string
	flagFPS     int
	flagSeed    int64
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play locally",
	Long: `Start a local game in this terminal.

Controls:
  Space    - Flap
  P        - Play (menu and game over screens)
  Q        - Quit (menu and game over screens)
  Ctrl+S   - Save a screenshot to ~/.flippy/screenshots (bubbletea backend)
  Ctrl+C   - Exit immediately

The playfield is 80x50; smaller terminals clip it.

Examples:
  flippy play
  flippy play --seed 42
  flippy play --fps 30 --backend tcell
  flippy play --config ./my-flippy.yaml --log-file /tmp/flippy.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the play flags. The root command shares them since
// it plays by default.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagBackend, "backend", "", "Rendering backend: bubbletea or tcell (overrides config)")
	cmd.Flags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (overrides config)")
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	cmd.Flags().StringVar(&flagLogFile, "log-file", "", "Log file path (overrides config)")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg := loadConfig()

	// Command line flags win over the config file
	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend = flagBackend
	}
	if flags.Changed("fps") {
		cfg.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var logOut io.Writer = io.Discard
	if cfg.Log.File != "" {
		f, err := openLogFile(cfg.Log.File)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		} else {
			defer f.Close()
			logOut = f
		}
	}
	logger := newLogger(logOut, cfg.Log.Level)

	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		if w < flippy.ScreenWidth || h < flippy.ScreenHeight {
			fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the playfield needs %dx%d and will be clipped\n",
				w, h, flippy.ScreenWidth, flippy.ScreenHeight)
			logger.Warn("terminal smaller than the playfield", "width", w, "height", h)
		}
	}

	logger.Info("starting", "backend", cfg.Backend, "fps", cfg.TickRate, "seed", cfg.Seed)

	var runErr error
	switch cfg.Backend {
	case config.BackendTcell:
		runErr = cell.Run(cfg.Runtime(), cfg.Keys, logger)
	default:
		runErr = tui.Run(cfg.Runtime(), cfg.Keys, logger)
	}

	if runErr != nil {
		logger.Error("game stopped", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
