// Package registry maps game ids to factories. Games register themselves in
// init(), so the CLI and the SSH server only need a blank import of the game
// package to find it.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-doodle/internal/core"
)

// Game is a fixed-step simulation driven by the terminal platform.
// Games never touch the terminal: the platform maps keys to actions,
// drives the clock and turns the screen buffer into text.
type Game interface {
	// ID returns a unique identifier used by the CLI and score storage.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset starts the game over for the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns score, high score, game over and pause flags.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	games = make(map[string]entry)
	mu    sync.RWMutex
)

// Register adds a game factory under id.
// Panics if id is empty or already registered.
func Register(id string, f Factory) {
	if id == "" || f == nil {
		panic("registry: register needs an id and a factory")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := games[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	// The title comes from a throwaway instance
	games[id] = entry{
		info:    GameInfo{ID: id, Title: f().Title()},
		factory: f,
	}
}

// List returns all registered games sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(games))
	for _, e := range games {
		result = append(result, e.info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Get returns the metadata of a registered game.
func Get(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := games[id]
	return e.info, ok
}

// Create instantiates a new game by its id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := games[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Get(id)
	return ok
}
