// Package registry provides a global registry of game modes.
// Modes register themselves in init() functions, so the CLI and the SSH
// server can list and create them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/words"
)

// Game is the interface every game mode implements.
// Games are event-driven: Step runs once per input event, never on a timer.
type Game interface {
	// ID returns a unique identifier (e.g., "classic").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game for a new session.
	Reset(cfg core.RuntimeConfig)

	// Resize adapts the layout to new screen dimensions without resetting.
	Resize(w, h int)

	// Step applies one input event and returns the resulting state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// ChallengeGame is a Game whose words arrive asynchronously from a word supply.
type ChallengeGame interface {
	Game

	// WantsChallenge reports whether the platform should fetch challenges.
	WantsChallenge() bool

	// SetLoading marks a challenge request as in flight.
	SetLoading(loading bool)

	// ApplyChallenge starts a new round on the delivered challenge.
	ApplyChallenge(ch words.Challenge)

	// Challenge returns the challenge currently played.
	Challenge() words.Challenge
}

// FramedGame is a Game drawn above rows the host keeps for itself,
// such as a help footer.
type FramedGame interface {
	Game

	// SetReservedRows tells the game how many terminal rows lie below its screen.
	SetReservedRows(n int)
}

// GameInfo contains metadata about a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
