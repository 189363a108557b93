package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flippy-bird/internal/config"
	"github.com/vovakirdan/flippy-bird/internal/core"
)

// KeyMap defines the key bindings for the game.
// Play, Quit and Flap come from configuration; ForceQuit and Screenshot are
// fixed host keys.
type KeyMap struct {
	Play       key.Binding
	Quit       key.Binding
	Flap       key.Binding
	ForceQuit  key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Flap, k.Quit, k.Screenshot}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Play, k.Flap},
		{k.Quit, k.ForceQuit, k.Screenshot},
	}
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(cfg config.KeyConfig) KeyMap {
	return KeyMap{
		Play: key.NewBinding(
			key.WithKeys(cfg.Play...),
			key.WithHelp(helpKeys(cfg.Play), "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys(cfg.Quit...),
			key.WithHelp(helpKeys(cfg.Quit), "quit"),
		),
		Flap: key.NewBinding(
			key.WithKeys(cfg.Flap...),
			key.WithHelp(helpKeys(cfg.Flap), "flap"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// Action translates a key message to a game action.
// Keys bound to nothing return core.ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Flap):
		return core.ActionFlap
	case key.Matches(msg, k.Play):
		return core.ActionPlay
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	}
	return core.ActionNone
}

// helpKeys formats key names for the help footer.
func helpKeys(keys []string) string {
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == " " {
			k = "space"
		}
		names = append(names, k)
	}
	return strings.Join(names, "/")
}
