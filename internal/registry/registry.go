// Package registry maps mode IDs to game constructors.
// Game packages register their modes from init, so the CLI, the menu and
// the SSH server can start a mode by its ID alone.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/blockbreaker/internal/core"
)

// Game is a playable mode driven by the platform loop.
// Implementations hold only simulation state; the platform owns input
// mapping, timing and terminal output.
type Game interface {
	// ID is the stable key used on the command line and in score storage.
	ID() string

	// Title is the name shown in menus and on the scoreboard.
	Title() string

	// Reset starts a fresh run from cfg. Called on start and on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into a cleared screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// Describer is implemented by modes that carry a one-line description.
type Describer interface {
	Description() string
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries []entry
	byID    = make(map[string]int)
)

// Register adds a mode. Modes are listed in registration order.
// Panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := byID[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}

	byID[id] = len(entries)
	entries = append(entries, entry{info: info, factory: f})
}

// List returns every registered mode in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, len(entries))
	for i, e := range entries {
		result[i] = e.info
	}
	return result
}

// Create instantiates the mode registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	i, ok := byID[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return entries[i].factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := byID[id]
	return ok
}
