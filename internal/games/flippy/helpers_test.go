package flippy

import "github.com/vovakirdan/flippy-bird/internal/core"

// seqRandom returns a scripted sequence of values and records the requested
// ranges.
type seqRandom struct {
	values []int
	next   int
	calls  [][2]int
}

func (r *seqRandom) Range(min, max int) int {
	r.calls = append(r.calls, [2]int{min, max})
	v := r.values[r.next%len(r.values)]
	r.next++
	return v
}

// drawCall is one Set call captured by recordingCanvas.
type drawCall struct {
	x, y   int
	fg, bg core.Color
	glyph  rune
}

// recordingCanvas captures Set calls without clipping.
type recordingCanvas struct {
	calls []drawCall
}

func (c *recordingCanvas) Cls() {}
func (c *recordingCanvas) ClsBg(core.Color) {}
func (c *recordingCanvas) Print(int, int, string) {}
func (c *recordingCanvas) PrintCentered(int, string) {}
func (c *recordingCanvas) Set(x, y int, fg, bg core.Color, glyph rune) {
	c.calls = append(c.calls, drawCall{x: x, y: y, fg: fg, bg: bg, glyph: glyph})
}

// newTestFrame returns a full-size frame for one tick.
func newTestFrame(key core.Action, elapsedMs float64) (*Frame, *core.Screen) {
	screen := core.NewScreen(ScreenWidth, ScreenHeight)
	return NewFrame(screen, key, elapsedMs), screen
}
