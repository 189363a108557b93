package core

// RuntimeConfig contains configuration passed to the game host at startup.
type RuntimeConfig struct {
	TickRate int   // Host frames per second (default 60)
	Seed     int64 // RNG seed for obstacle gaps, 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
