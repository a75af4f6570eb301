// Package registry maps game IDs to factories.
// Games register themselves in init() so that the terminal frontend and the
// CLI can start them by name without importing the game package directly.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// ErrUnknownGame is returned by Create for an ID that was never registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is what the frontend drives. Implementations hold only game rules;
// input mapping, frame pacing and drawing to the terminal live in the platform.
type Game interface {
	// ID returns a stable identifier used on the command line (e.g. "blocks").
	ID() string

	// Title returns the display name.
	Title() string

	// Reset discards any game in progress and starts a new one.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of input and advances the clock by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the game into dst. The screen is cleared beforehand.
	Render(dst *core.Screen)

	// State returns the score summary and the pause/game over flags.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new, not yet reset, game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory. It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns every registered game sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create returns a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
