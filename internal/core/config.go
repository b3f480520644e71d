package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to size the play field and seed its simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the snapshot the platform reads after every tick.
type GameState struct {
	Score    int    // Current score
	Lives    int    // Remaining lives
	Tier     string // Current difficulty tier name
	GameOver bool   // Whether the game has ended
	Paused   bool   // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// GameOverNow is true only on the tick the game ended, so the platform
	// can record the run exactly once.
	GameOverNow bool
}
