// Package flippy implements Flippy Bird, a side-scrolling game where a single
// glyph falls under gravity and must flap through gaps in a stream of walls.
//
// The package is pure game logic. Hosts drive it by calling State.Tick once
// per rendered frame with a Context that supplies drawing, the key pressed
// this frame and the elapsed frame time.
package flippy

import "github.com/vovakirdan/flippy-bird/internal/core"

// Fixed world dimensions and pacing. Score and gap formulas depend on these
// values, so they are not runtime configurable.
const (
	ScreenWidth   = 80
	ScreenHeight  = 50
	FrameDuration = 75.0 // Milliseconds between physics steps
	PlayerScreenX = 10   // Column the player is always drawn in
	DistBetween   = 50   // World distance between consecutive obstacles
)

// Canvas is the drawing half of the host sink.
// Coordinates outside the grid must be ignored by implementations.
type Canvas interface {
	Cls()
	ClsBg(bg core.Color)
	Set(x, y int, fg, bg core.Color, glyph rune)
	Print(x, y int, text string)
	PrintCentered(y int, text string)
}

// Context is everything the game needs from its host for one frame.
type Context interface {
	Canvas

	// Key returns the action pressed this frame, or core.ActionNone.
	Key() core.Action

	// FrameTimeMs returns milliseconds elapsed since the previous frame.
	FrameTimeMs() float64

	// Quit asks the host to stop the frame loop.
	Quit()
}
