// Package registry maps game identifiers to factories. Games add themselves
// from init() so the command layer and the TUI never import them directly.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/swiftbox/internal/core"
)

// ErrUnknownGame is returned by Create for an identifier nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is a puzzle the platform can drive one tick at a time.
// Implementations hold pure logic; the platform owns input, timing and output.
type Game interface {
	// ID is the stable key used on the command line and in the score table.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a fresh game. Called at start and on every restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one tick using the actions pressed since the last tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the game into dst.
	Render(dst *core.Screen)

	// State reports score, game over and pause status.
	State() core.GameState
}

// Resizable is implemented by games that can follow a terminal resize
// without restarting.
type Resizable interface {
	Resize(w, h int)
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a factory under id. It panics on an empty or duplicate id.
func Register(id string, f Factory) {
	if strings.TrimSpace(id) == "" {
		panic("registry: empty game id")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered game sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(out, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Create returns a new instance of the game registered as id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}

// unregister removes id. Tests only.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()
	delete(entries, id)
}
