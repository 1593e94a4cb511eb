package core

// RuntimeConfig contains configuration passed to a game session at creation.
// The renderer uses the screen size; the session uses the rest.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for reproducible wedge picks (0 = time based)

	// StartAtLastLevel boots the session at the final level with 100 points
	// to exercise the end-game path.
	StartAtLastLevel bool
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}
