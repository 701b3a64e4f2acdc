// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cube-blast/internal/config"
	"github.com/vovakirdan/cube-blast/internal/core"
)

// Game is the interface every game implements.
// Games contain pure logic with no Bubble Tea dependency.
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game, used by the CLI.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset loads or reloads the game for the given runtime settings.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Progress is the persisted campaign position a game may read and advance.
type Progress interface {
	CurrentLevel() (int, error)
	SetCurrentLevel(n int) error
}

// Env carries platform services into a game before its first Reset.
type Env struct {
	Logger   *log.Logger
	Progress Progress // nil plays without saving
	LevelDir string   // empty uses the built-in pack
	Level    int      // explicit level; 0 resumes from Progress
	Config   config.BlastConfig
}

// Configurable is implemented by games that accept an Env.
type Configurable interface {
	Configure(env Env) error
}

// Resizable is implemented by games that follow terminal resizes
// without being reset.
type Resizable interface {
	Resize(width, height int)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = title
}

// List returns information about all registered games, sorted by ID.
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

// Create instantiates a game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// CreateWith instantiates a game and hands it env when it is Configurable.
func CreateWith(id string, env Env) (Game, error) {
	g, err := Create(id)
	if err != nil {
		return nil, err
	}
	if c, ok := g.(Configurable); ok {
		if err := c.Configure(env); err != nil {
			return nil, fmt.Errorf("registry: configuring %q: %w", id, err)
		}
	}
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
