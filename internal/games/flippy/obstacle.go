package flippy

import "github.com/vovakirdan/flippy-bird/internal/core"

// Obstacle generation bounds.
const (
	MinGapY     = 10
	MaxGapY     = 40 // Exclusive
	BaseGapSize = 20
	MinGapSize  = 2
	WallChar    = '|'
)

// Obstacle is a wall spanning the full screen height with one gap in it.
type Obstacle struct {
	X      int  // World-space column
	GapY   int  // Center row of the gap
	Size   int  // Full height of the gap
	Passed bool // Whether the player has scored this obstacle
}

// NewObstacle creates an obstacle at world column x. The gap shrinks by one
// row per point of score, down to MinGapSize.
func NewObstacle(x, score int, rng RandomSource) Obstacle {
	return Obstacle{
		X:    x,
		GapY: rng.Range(MinGapY, MaxGapY),
		Size: GapSizeForScore(score),
	}
}

// GapSizeForScore returns the gap height for an obstacle spawned at score.
func GapSizeForScore(score int) int {
	return core.Max(MinGapSize, BaseGapSize-score)
}

// ScreenX returns the column the obstacle is drawn in when the player has
// reached world column playerX.
func (o *Obstacle) ScreenX(playerX int) int {
	return o.X - playerX + PlayerScreenX
}

// Render draws both wall segments, leaving the gap rows empty.
// The canvas clips anything outside the grid.
func (o *Obstacle) Render(dst Canvas, playerX int) {
	screenX := o.ScreenX(playerX)
	halfSize := o.Size / 2

	for y := 0; y < o.GapY-halfSize; y++ {
		dst.Set(screenX, y, core.ColorRed, core.ColorBlack, WallChar)
	}
	for y := o.GapY + halfSize; y < ScreenHeight; y++ {
		dst.Set(screenX, y, core.ColorRed, core.ColorBlack, WallChar)
	}
}

// HitsPlayer reports whether the player is in the obstacle's column and
// outside its gap. Only the exact column counts.
func (o *Obstacle) HitsPlayer(p *Player) bool {
	halfSize := o.Size / 2
	xMatch := p.X == o.X
	aboveGap := p.Y < o.GapY-halfSize
	belowGap := p.Y > o.GapY+halfSize
	return xMatch && (aboveGap || belowGap)
}
