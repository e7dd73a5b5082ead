package core

// RuntimeConfig contains configuration passed to the board at initialization.
// The game adapts board dimensions to the screen size and seeds its RNG.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driving the tick loop (default 60)
	Seed     int64 // RNG seed for random fills
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

// GameState is the status the board reports back to the platform.
type GameState struct {
	Paused     bool
	Quit       bool
	Generation uint64 // Since the board was last cleared or reloaded
	Population int
	Peak       int    // Highest population since the last clear
	Total      uint64 // Generations computed this session
	BestPeak   int    // Highest population this session
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State    GameState
	Advanced bool // A generation was computed this frame
}
