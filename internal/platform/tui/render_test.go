package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/flippy-bird/internal/core"
)

func TestRenderScreenKeepsContent(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.ClearBg(core.ColorNavy)
	s.DrawText(0, 0, "Score: 7")
	s.SetCell(4, 1, core.ColorYellow, core.ColorBlack, '@')
	s.SetCell(9, 2, core.ColorRed, core.ColorBlack, '|')

	out := RenderScreen(s)

	if lines := strings.Split(out, "\n"); len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for _, want := range []string{"Score: 7", "@", "|"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q:\n%s", want, out)
		}
	}
}

func TestStyleForDefaultColors(t *testing.T) {
	style := styleFor(cellStyle{})
	if got := style.Render("abc"); got != "abc" {
		t.Errorf("default style should not decorate text, got %q", got)
	}
}
