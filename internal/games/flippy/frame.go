package flippy

import "github.com/vovakirdan/flippy-bird/internal/core"

// Frame is a Context backed by a core.Screen. Hosts build one per frame
// from the key they observed and the time since the previous frame.
type Frame struct {
	screen  *core.Screen
	key     core.Action
	elapsed float64
	quit    bool
}

// NewFrame creates a frame that draws into screen.
func NewFrame(screen *core.Screen, key core.Action, elapsedMs float64) *Frame {
	return &Frame{
		screen:  screen,
		key:     key,
		elapsed: elapsedMs,
	}
}

func (f *Frame) Cls() {
	f.screen.Clear()
}

func (f *Frame) ClsBg(bg core.Color) {
	f.screen.ClearBg(bg)
}

func (f *Frame) Set(x, y int, fg, bg core.Color, glyph rune) {
	f.screen.SetCell(x, y, fg, bg, glyph)
}

func (f *Frame) Print(x, y int, text string) {
	f.screen.DrawText(x, y, text)
}

func (f *Frame) PrintCentered(y int, text string) {
	f.screen.DrawTextCentered(y, text)
}

func (f *Frame) Key() core.Action {
	return f.key
}

func (f *Frame) FrameTimeMs() float64 {
	return f.elapsed
}

func (f *Frame) Quit() {
	f.quit = true
}

// QuitRequested reports whether the game asked the host to stop.
func (f *Frame) QuitRequested() bool {
	return f.quit
}
