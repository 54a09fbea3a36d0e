package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed, 0 means use current time in platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GameState is the platform-facing summary of a round.
// Returned by Game.State() after every event.
type GameState struct {
	Over      bool     // Round ended, either won or lost
	Won       bool     // Round ended with every letter found
	Wrong     int      // Wrong guesses so far
	Lives     int      // Life budget of the round
	LivesLeft int      // Wrong guesses still tolerated
	Loading   bool     // Waiting for a challenge to arrive
	Words     []string // Target words, for summaries once the round is over
}

// StepResult is returned by Game.Step() after each input event.
type StepResult struct {
	State   GameState
	Changed bool // Whether the event altered the round
}
