package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Frontends fill the screen size; the game itself only needs the seed.
type RuntimeConfig struct {
	ScreenW int   // Terminal width in characters (terminal frontends only)
	ScreenH int   // Terminal height in characters (terminal frontends only)
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}
