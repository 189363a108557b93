package flippy

import (
	"math"

	"github.com/vovakirdan/flippy-bird/internal/core"
)

// Player physics.
const (
	Gravity     = 0.2
	MaxVelocity = 2.0
	FlapImpulse = -2.0
	PlayerChar  = '@'
)

// Player is the glyph the user steers. X is world-space progress, Y is the
// screen row.
type Player struct {
	X        int
	Y        int
	Velocity float64
}

// NewPlayer creates a player at rest at the given position.
func NewPlayer(x, y int) Player {
	return Player{X: x, Y: y}
}

// GravityAndMove runs one physics step: accelerate downward until the
// velocity saturates, fall by the truncated velocity and advance one world
// column. Y never goes above the top row.
func (p *Player) GravityAndMove() {
	if p.Velocity < MaxVelocity {
		// Keep velocity on a 0.1 grid so repeated steps land exactly on
		// whole numbers and saturate at MaxVelocity.
		v := math.Round((p.Velocity+Gravity)*10) / 10
		p.Velocity = math.Min(v, MaxVelocity)
	}

	p.Y += int(p.Velocity)
	p.X++
	p.Y = core.Max(p.Y, 0)
}

// Flap sets an upward velocity regardless of the current one.
func (p *Player) Flap() {
	p.Velocity = FlapImpulse
}

// Render draws the player in its fixed column.
func (p *Player) Render(dst Canvas) {
	dst.Set(PlayerScreenX, p.Y, core.ColorYellow, core.ColorBlack, PlayerChar)
}
