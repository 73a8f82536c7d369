package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frontend frame rate (the simulation tick is fixed)
	Seed     int64 // RNG seed for procedural levels and effects
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

// GameState is the set of values the simulation exposes to HUD, storage
// and the platform layer.
type GameState struct {
	Score      int  // Monotonic, non-negative
	Level      int  // 1-based level index
	Health     int  // 0..MaxHealth
	MaxHealth  int  // Player maximum health
	ExtraLives int  // Remaining extra lives
	GameOver   bool // Player died; simulation is frozen
	Won        bool // Last level cleared; simulation is frozen
	Paused     bool // Set by the platform layer, never by the simulation
}

// Finished reports whether the run reached a terminal state.
func (s GameState) Finished() bool {
	return s.GameOver || s.Won
}
