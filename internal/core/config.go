package core

// RuntimeConfig is what the platform layer hands to a new session.
type RuntimeConfig struct {
	ScreenW int   // Terminal width in characters
	ScreenH int   // Terminal height in characters
	FPS     int   // Frame ticks per second requested from the event loop
	Seed    int64 // 0 means derive from wall-clock seconds
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 60 FPS.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		FPS:     60,
	}
}

// GameState is the summary the platform needs after every frame.
type GameState struct {
	Score    int  // Rows scrolled so far
	Life     int  // Remaining life, 0..100
	GameOver bool // Life reached zero
	Finished bool // Game-over epilogue has played out
}
