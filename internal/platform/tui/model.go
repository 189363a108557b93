package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flippy-bird/internal/config"
	"github.com/vovakirdan/flippy-bird/internal/core"
	"github.com/vovakirdan/flippy-bird/internal/games/flippy"
)

// Model is the Bubble Tea model that hosts one Flippy Bird game.
type Model struct {
	game     *flippy.State
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	pending  core.Action // Last action pressed since the previous tick
	lastTick time.Time
	quitting bool
}

// NewModel creates a new Bubble Tea model for a fresh game.
func NewModel(cfg core.RuntimeConfig, keys config.KeyConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:   flippy.New(flippy.NewRandomSource(cfg.Seed)),
		screen: core.NewScreen(flippy.ScreenWidth, flippy.ScreenHeight),
		config: cfg,
		keys:   NewKeyMap(keys),
		help:   help.New(),
		logger: logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("game started", "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the action for the next tick. Only the latest key
// pressed between two ticks is delivered to the game.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if action := m.keys.Action(msg); action != core.ActionNone {
		m.pending = action
	}
	return m, nil
}

// handleTick runs one game frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed float64
	if !m.lastTick.IsZero() {
		elapsed = float64(now.Sub(m.lastTick)) / float64(time.Millisecond)
	}
	m.lastTick = now

	frame := m.step(m.pending, elapsed)
	m.pending = core.ActionNone

	if frame.QuitRequested() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// step ticks the game once and logs mode changes.
func (m Model) step(action core.Action, elapsedMs float64) *flippy.Frame {
	before := m.game.Mode()

	frame := flippy.NewFrame(m.screen, action, elapsedMs)
	m.game.Tick(frame)

	if after := m.game.Mode(); after != before {
		m.logger.Debug("mode changed", "from", before, "to", after)
		if after == flippy.ModeEnded {
			m.logger.Info("round over", "score", m.game.Score(), "distance", m.game.Player().X)
		}
	}
	return frame
}

// saveScreenshot writes the current screen as plain text under the data
// directory.
func (m Model) saveScreenshot() (string, error) {
	dataDir, err := config.DataDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(dataDir, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("flippy_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Game returns the hosted game.
func (m Model) Game() *flippy.State {
	return m.game
}

// Run starts the Bubble Tea program for a local game.
func Run(cfg core.RuntimeConfig, keys config.KeyConfig, logger *log.Logger) error {
	model := NewModel(cfg, keys, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
