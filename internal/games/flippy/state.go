package flippy

import (
	"fmt"

	"github.com/vovakirdan/flippy-bird/internal/core"
)

// Mode is the screen the game is currently showing.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeEnded
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Player start position.
const (
	StartX = 0
	StartY = 25
)

// State owns the whole game: the player, the live obstacles, the score and
// the frame-time accumulator that paces physics.
type State struct {
	player    Player
	frameTime float64 // Milliseconds since the last physics step
	mode      Mode
	obstacles []Obstacle // Ascending by X, one or two while playing
	score     int
	rng       RandomSource
}

// New creates a game that starts on the main menu.
func New(rng RandomSource) *State {
	return &State{
		player:    NewPlayer(StartX, StartY),
		mode:      ModeMenu,
		obstacles: []Obstacle{NewObstacle(ScreenWidth, 0, rng)},
		rng:       rng,
	}
}

// Tick advances the game by one host frame.
func (s *State) Tick(ctx Context) {
	switch s.mode {
	case ModeMenu:
		s.mainMenu(ctx)
	case ModeEnded:
		s.dead(ctx)
	case ModePlaying:
		s.play(ctx)
	}
}

// mainMenu shows the title screen.
func (s *State) mainMenu(ctx Context) {
	ctx.Cls()
	ctx.PrintCentered(5, "Welcome to Flippy Bird")
	ctx.PrintCentered(8, "(P) play")
	ctx.PrintCentered(9, "(Q) quit")

	s.handleMenuKey(ctx)
}

// dead shows the game over screen with the final score.
func (s *State) dead(ctx Context) {
	ctx.Cls()
	ctx.PrintCentered(5, "You are dead")
	ctx.PrintCentered(6, fmt.Sprintf("Score: %d", s.score))
	ctx.PrintCentered(8, "(P) play again")
	ctx.PrintCentered(9, "(Q) quit")

	s.handleMenuKey(ctx)
}

// handleMenuKey applies the transitions shared by the menu and game over
// screens.
func (s *State) handleMenuKey(ctx Context) {
	switch ctx.Key() {
	case core.ActionPlay:
		s.Restart()
	case core.ActionQuit:
		ctx.Quit()
	}
}

// play runs one frame of the round.
func (s *State) play(ctx Context) {
	ctx.ClsBg(core.ColorNavy)

	// Physics runs at a fixed cadence regardless of the host frame rate.
	s.frameTime += ctx.FrameTimeMs()
	if s.frameTime > FrameDuration {
		s.frameTime = 0
		s.player.GravityAndMove()
	}

	// Flap is sampled every frame, not only on physics steps.
	if ctx.Key() == core.ActionFlap {
		s.player.Flap()
	}

	s.player.Render(ctx)
	ctx.Print(0, 0, "Press space to flap")
	ctx.Print(0, 1, fmt.Sprintf("Score: %d", s.score))

	for i := range s.obstacles {
		obs := &s.obstacles[i]
		obs.Render(ctx, s.player.X)

		if s.player.X > obs.X && !obs.Passed {
			obs.Passed = true
			s.score++
		}

		if obs.HitsPlayer(&s.player) {
			s.mode = ModeEnded
		}
	}

	s.spawnObstacle()
	s.retireObstacle()

	if s.player.Y > ScreenHeight {
		s.mode = ModeEnded
	}
}

// spawnObstacle appends the next obstacle once the player is within
// DistBetween of the last one, keeping at most two alive.
func (s *State) spawnObstacle() {
	if len(s.obstacles) == 0 || len(s.obstacles) >= 2 {
		return
	}
	last := s.obstacles[len(s.obstacles)-1]
	if s.player.X > last.X-DistBetween {
		s.obstacles = append(s.obstacles, NewObstacle(last.X+DistBetween, s.score, s.rng))
	}
}

// retireObstacle drops the front obstacle once it has scrolled off the left
// edge.
func (s *State) retireObstacle() {
	if len(s.obstacles) == 0 {
		return
	}
	if s.obstacles[0].ScreenX(s.player.X) < 0 {
		s.obstacles = s.obstacles[1:]
	}
}

// Restart begins a fresh round.
func (s *State) Restart() {
	s.player = NewPlayer(StartX, StartY)
	s.frameTime = 0
	s.mode = ModePlaying
	s.obstacles = []Obstacle{NewObstacle(ScreenWidth, 0, s.rng)}
	s.score = 0
}

// Mode returns the current mode.
func (s *State) Mode() Mode {
	return s.mode
}

// Score returns the score of the current or last round.
func (s *State) Score() int {
	return s.score
}

// Player returns a copy of the player.
func (s *State) Player() Player {
	return s.player
}

// Obstacles returns a copy of the live obstacles in ascending X order.
func (s *State) Obstacles() []Obstacle {
	out := make([]Obstacle, len(s.obstacles))
	copy(out, s.obstacles)
	return out
}
