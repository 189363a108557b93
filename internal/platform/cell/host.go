package cell

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/flippy-bird/internal/config"
	"github.com/vovakirdan/flippy-bird/internal/core"
	"github.com/vovakirdan/flippy-bird/internal/games/flippy"
)

// Host drives one game on a tcell screen.
type Host struct {
	screen   tcell.Screen
	buf      *core.Screen
	game     *flippy.State
	bindings Bindings
	logger   *log.Logger
	config   core.RuntimeConfig
	pending  core.Action
	lastTick time.Time
}

// NewHost creates a host for an initialized screen.
func NewHost(screen tcell.Screen, cfg core.RuntimeConfig, keys config.KeyConfig, logger *log.Logger) *Host {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Host{
		screen:   screen,
		buf:      core.NewScreen(flippy.ScreenWidth, flippy.ScreenHeight),
		game:     flippy.New(flippy.NewRandomSource(cfg.Seed)),
		bindings: NewBindings(keys),
		logger:   logger,
		config:   cfg,
	}
}

// Run opens the terminal and plays until the player quits.
func Run(cfg core.RuntimeConfig, keys config.KeyConfig, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("cell: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("cell: cannot init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	NewHost(screen, cfg, keys, logger).Loop()
	return nil
}

// Loop polls input and ticks the game at the configured rate until the game
// or ctrl+c asks to stop.
func (h *Host) Loop() {
	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				// Screen finalized.
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(h.config.TickRate))
	defer ticker.Stop()

	h.logger.Debug("game started", "seed", h.config.Seed, "fps", h.config.TickRate)

	for {
		select {
		case ev, ok := <-events:
			if !ok || !h.HandleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			if !h.Frame(now) {
				return
			}
		}
	}
}

// HandleEvent records input for the next frame. It returns false when the
// host should stop immediately.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if action := h.bindings.Action(ev); action != core.ActionNone {
			h.pending = action
		}
	case *tcell.EventResize:
		w, hgt := ev.Size()
		if w < flippy.ScreenWidth || hgt < flippy.ScreenHeight {
			h.logger.Warn("terminal smaller than the playfield", "width", w, "height", hgt)
		}
		h.screen.Sync()
	}
	return true
}

// Frame ticks the game once and draws the result. It returns false once the
// game has asked to quit.
func (h *Host) Frame(now time.Time) bool {
	var elapsed float64
	if !h.lastTick.IsZero() {
		elapsed = float64(now.Sub(h.lastTick)) / float64(time.Millisecond)
	}
	h.lastTick = now

	before := h.game.Mode()
	frame := flippy.NewFrame(h.buf, h.pending, elapsed)
	h.pending = core.ActionNone
	h.game.Tick(frame)

	if after := h.game.Mode(); after != before {
		h.logger.Debug("mode changed", "from", before, "to", after)
		if after == flippy.ModeEnded {
			h.logger.Info("round over", "score", h.game.Score(), "distance", h.game.Player().X)
		}
	}

	if frame.QuitRequested() {
		return false
	}

	h.draw()
	return true
}

// draw copies the frame buffer to the terminal.
func (h *Host) draw() {
	for y := range h.buf.Height() {
		for x := range h.buf.Width() {
			c := h.buf.GetCell(x, y)
			style := tcell.StyleDefault.Foreground(tcellColor(c.Fg)).Background(tcellColor(c.Bg))
			h.screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
	h.screen.Show()
}

// Game returns the hosted game.
func (h *Host) Game() *flippy.State {
	return h.game
}
