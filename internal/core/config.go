package core

// RuntimeConfig is handed to games when they are reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Ticks per second requested from the host
	Seed     int64 // RNG seed; 0 lets the platform pick one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the status a game reports back to the platform.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
	Started  bool // false while a game waits on its ready screen
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}
