// Package cell hosts the game directly on a tcell screen, without the
// Bubble Tea runtime. It is the lighter backend for terminals where the
// full-screen redraw of the TUI host flickers.
package cell

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/flippy-bird/internal/config"
	"github.com/vovakirdan/flippy-bird/internal/core"
)

// specialKeys names the non-rune keys the same way the Bubble Tea host
// does, so one key config serves both backends.
var specialKeys = map[tcell.Key]string{
	tcell.KeyEnter:      "enter",
	tcell.KeyEscape:     "esc",
	tcell.KeyTab:        "tab",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyCtrlC:      "ctrl+c",
	tcell.KeyCtrlS:      "ctrl+s",
}

// keyName returns the config name of a key event, or "" if it has none.
func keyName(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return "alt+" + string(ev.Rune())
		}
		return string(ev.Rune())
	}
	return specialKeys[ev.Key()]
}

// Bindings maps key names to game actions.
type Bindings map[string]core.Action

// NewBindings builds the lookup table from the configured key names.
// When a key is bound twice, flap wins over play and play over quit.
func NewBindings(cfg config.KeyConfig) Bindings {
	b := make(Bindings)
	for _, k := range cfg.Quit {
		b[k] = core.ActionQuit
	}
	for _, k := range cfg.Play {
		b[k] = core.ActionPlay
	}
	for _, k := range cfg.Flap {
		b[k] = core.ActionFlap
	}
	return b
}

// Action returns the action bound to ev, or core.ActionNone.
func (b Bindings) Action(ev *tcell.EventKey) core.Action {
	if action, ok := b[keyName(ev)]; ok {
		return action
	}
	return core.ActionNone
}

// tcellColor converts a cell color to the matching tcell palette entry.
func tcellColor(c core.Color) tcell.Color {
	switch c {
	case core.ColorBlack:
		return tcell.PaletteColor(0)
	case core.ColorRed:
		return tcell.PaletteColor(1)
	case core.ColorGreen:
		return tcell.PaletteColor(2)
	case core.ColorYellow:
		return tcell.PaletteColor(3)
	case core.ColorBlue:
		return tcell.PaletteColor(4)
	case core.ColorMagenta:
		return tcell.PaletteColor(5)
	case core.ColorCyan:
		return tcell.PaletteColor(6)
	case core.ColorWhite:
		return tcell.PaletteColor(7)
	case core.ColorNavy:
		return tcell.PaletteColor(17)
	case core.ColorGray:
		return tcell.PaletteColor(245)
	default:
		return tcell.ColorDefault
	}
}
