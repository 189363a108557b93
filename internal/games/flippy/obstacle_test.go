package flippy

import (
	"testing"

	"github.com/vovakirdan/flippy-bird/internal/core"
)

func TestGapSizeForScore(t *testing.T) {
	tests := []struct {
		score, expected int
	}{
		{0, 20},
		{1, 19},
		{5, 15},
		{17, 3},
		{18, 2},
		{19, 2}, // 20-19 is below the floor
		{100, 2},
	}

	for _, tc := range tests {
		if got := GapSizeForScore(tc.score); got != tc.expected {
			t.Errorf("GapSizeForScore(%d) = %d, expected %d", tc.score, got, tc.expected)
		}
	}

	prev := GapSizeForScore(0)
	for s := 1; s < 60; s++ {
		size := GapSizeForScore(s)
		if size > prev {
			t.Errorf("gap size grew from %d to %d at score %d", prev, size, s)
		}
		if size < MinGapSize {
			t.Errorf("gap size %d below floor at score %d", size, s)
		}
		prev = size
	}
}

func TestNewObstacle(t *testing.T) {
	rng := &seqRandom{values: []int{33}}
	o := NewObstacle(130, 4, rng)

	if o.X != 130 || o.GapY != 33 || o.Size != 16 || o.Passed {
		t.Errorf("NewObstacle = %+v, expected {X:130 GapY:33 Size:16 Passed:false}", o)
	}
	if len(rng.calls) != 1 || rng.calls[0] != [2]int{MinGapY, MaxGapY} {
		t.Errorf("gap should be drawn from [%d, %d), calls = %v", MinGapY, MaxGapY, rng.calls)
	}
}

func TestRandomSourceBounds(t *testing.T) {
	rng := NewRandomSource(7)
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		v := rng.Range(MinGapY, MaxGapY)
		if v < MinGapY || v >= MaxGapY {
			t.Fatalf("Range(%d, %d) returned %d", MinGapY, MaxGapY, v)
		}
		seen[v] = true
	}
	if len(seen) != MaxGapY-MinGapY {
		t.Errorf("expected every gap row to appear, saw %d distinct values", len(seen))
	}

	if v := rng.Range(5, 5); v != 5 {
		t.Errorf("empty range should return min, got %d", v)
	}
}

func TestRandomSourceDeterminism(t *testing.T) {
	a := NewRandomSource(12345)
	b := NewRandomSource(12345)
	for i := 0; i < 50; i++ {
		if x, y := a.Range(MinGapY, MaxGapY), b.Range(MinGapY, MaxGapY); x != y {
			t.Fatalf("draw %d differs with the same seed: %d vs %d", i, x, y)
		}
	}
}

func TestObstacleHitsPlayer(t *testing.T) {
	obs := Obstacle{X: 50, GapY: 25, Size: 10}

	tests := []struct {
		name     string
		player   Player
		expected bool
	}{
		{"inside gap center", Player{X: 50, Y: 25}, false},
		{"gap top edge", Player{X: 50, Y: 20}, false},
		{"gap bottom edge", Player{X: 50, Y: 30}, false},
		{"above gap", Player{X: 50, Y: 10}, true},
		{"just above gap", Player{X: 50, Y: 19}, true},
		{"just below gap", Player{X: 50, Y: 31}, true},
		{"above gap one column early", Player{X: 49, Y: 10}, false},
		{"above gap one column late", Player{X: 51, Y: 10}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := obs.HitsPlayer(&tc.player); got != tc.expected {
				t.Errorf("HitsPlayer(%+v) = %v, expected %v", tc.player, got, tc.expected)
			}
		})
	}
}

func TestObstacleHitsPlayerMatchesDistanceRule(t *testing.T) {
	for _, obs := range []Obstacle{
		{X: 50, GapY: 25, Size: 10},
		{X: 50, GapY: 12, Size: 7}, // odd size, half rounds down
		{X: 50, GapY: 39, Size: 2},
	} {
		half := obs.Size / 2
		for x := 48; x <= 52; x++ {
			for y := 0; y < ScreenHeight+2; y++ {
				p := Player{X: x, Y: y}
				expected := x == obs.X && core.Abs(y-obs.GapY) > half
				if got := obs.HitsPlayer(&p); got != expected {
					t.Errorf("obstacle %+v, player (%d, %d): HitsPlayer = %v, expected %v",
						obs, x, y, got, expected)
				}
			}
		}
	}
}

func TestObstacleRender(t *testing.T) {
	obs := Obstacle{X: 50, GapY: 25, Size: 10}
	rec := &recordingCanvas{}
	obs.Render(rec, 40)

	// Rows [0, 20) and [30, 50)
	if len(rec.calls) != 40 {
		t.Fatalf("expected 40 wall cells, got %d", len(rec.calls))
	}
	for _, c := range rec.calls {
		if c.x != 20 {
			t.Errorf("wall drawn at column %d, expected 20", c.x)
		}
		if c.y >= 20 && c.y < 30 {
			t.Errorf("wall drawn inside gap at row %d", c.y)
		}
		if c.glyph != WallChar || c.fg != core.ColorRed || c.bg != core.ColorBlack {
			t.Errorf("unexpected wall cell %+v", c)
		}
	}
}

func TestObstacleRenderOffscreen(t *testing.T) {
	obs := Obstacle{X: 5, GapY: 25, Size: 10}
	frame, screen := newTestFrame(core.ActionNone, 0)

	if sx := obs.ScreenX(20); sx != -5 {
		t.Fatalf("ScreenX = %d, expected -5", sx)
	}
	obs.Render(frame, 20)

	for y := 0; y < ScreenHeight; y++ {
		if row := screen.Row(y); row != blankRow() {
			t.Fatalf("offscreen obstacle should not reach the screen, row %d = %q", y, row)
		}
	}
}

func blankRow() string {
	return core.NewScreen(ScreenWidth, 1).Row(0)
}
