package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flippy-bird/internal/config"
	"github.com/vovakirdan/flippy-bird/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func spaceKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
}

func TestKeyMapDefaultActions(t *testing.T) {
	km := NewKeyMap(config.DefaultConfig().Keys)

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"p plays", runeKey('p'), core.ActionPlay},
		{"q quits", runeKey('q'), core.ActionQuit},
		{"space flaps", spaceKey(), core.ActionFlap},
		{"unbound rune", runeKey('x'), core.ActionNone},
		{"enter unbound", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Action(tc.msg); got != tc.expected {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapCustomBindings(t *testing.T) {
	km := NewKeyMap(config.KeyConfig{
		Play: []string{"enter"},
		Quit: []string{"esc"},
		Flap: []string{"up", "w"},
	})

	if got := km.Action(tea.KeyMsg{Type: tea.KeyEnter}); got != core.ActionPlay {
		t.Errorf("enter = %v, expected Play", got)
	}
	if got := km.Action(tea.KeyMsg{Type: tea.KeyEsc}); got != core.ActionQuit {
		t.Errorf("esc = %v, expected Quit", got)
	}
	if got := km.Action(tea.KeyMsg{Type: tea.KeyUp}); got != core.ActionFlap {
		t.Errorf("up = %v, expected Flap", got)
	}
	if got := km.Action(runeKey('w')); got != core.ActionFlap {
		t.Errorf("w = %v, expected Flap", got)
	}
	if got := km.Action(runeKey('p')); got != core.ActionNone {
		t.Errorf("p should be unbound, got %v", got)
	}
}

func TestHelpKeys(t *testing.T) {
	if got := helpKeys([]string{" ", "up"}); got != "space/up" {
		t.Errorf("helpKeys = %q, expected %q", got, "space/up")
	}
	km := NewKeyMap(config.DefaultConfig().Keys)
	if h := km.Flap.Help(); h.Key != "space" || h.Desc != "flap" {
		t.Errorf("Flap help = %+v", h)
	}
	if len(km.ShortHelp()) == 0 || len(km.FullHelp()) == 0 {
		t.Error("help views should list bindings")
	}
}
