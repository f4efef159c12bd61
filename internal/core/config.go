package core

// RuntimeConfig carries the platform parameters handed to the game at
// reset: terminal dimensions, simulation tick rate, and the RNG seed
// used for deterministic runs.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in character cells
	ScreenH  int   // Screen height in character cells
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultRuntimeConfig returns sensible defaults for an 80x24 terminal.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}
