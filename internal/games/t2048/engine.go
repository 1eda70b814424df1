package t2048

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	// ErrInvalidDirection is returned for a direction outside the four moves.
	ErrInvalidDirection = errors.New("t2048: invalid direction")
	// ErrGameOver is returned when a move is applied to a terminal state.
	// Only Reset leaves the game-over state.
	ErrGameOver = errors.New("t2048: game is over")
)

// DefaultFourProbability is the chance that a spawned tile is a 4.
const DefaultFourProbability = 0.10

// State is a complete game position. It is a plain value: ApplyMove returns
// a new State and never mutates its argument.
type State struct {
	Board    Board
	Score    int
	Terminal bool
}

// Engine applies moves and spawns tiles. Its random source is the only
// randomness in the game, so two engines built from the same seed play
// identical games for identical input.
//
// An Engine is not safe for concurrent use; the caller owning the State
// serializes calls.
type Engine struct {
	rng     *rand.Rand
	fourPct float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithFourProbability sets the chance that a spawned tile is a 4.
// Values outside [0, 1] are clamped.
func WithFourProbability(p float64) Option {
	return func(e *Engine) {
		e.fourPct = min(max(p, 0), 1)
	}
}

// NewEngine creates an engine drawing from rng.
func NewEngine(rng *rand.Rand, opts ...Option) *Engine {
	if rng == nil {
		panic("t2048: NewEngine requires a random source")
	}
	e := &Engine{
		rng:     rng,
		fourPct: DefaultFourProbability,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewSeeded creates an engine with its own source seeded from seed.
func NewSeeded(seed int64, opts ...Option) *Engine {
	return NewEngine(rand.New(rand.NewSource(seed)), opts...)
}

// FourProbability returns the configured spawn-4 probability.
func (e *Engine) FourProbability() float64 {
	return e.fourPct
}

// Initialize returns a fresh game: an empty board with two spawned tiles.
func (e *Engine) Initialize() State {
	var b Board
	b = e.SpawnRandomTile(b)
	b = e.SpawnRandomTile(b)
	return State{Board: b}
}

// Reset discards any previous game and starts a new one.
func (e *Engine) Reset() State {
	return e.Initialize()
}

// SpawnRandomTile places a 2 (or a 4, with the configured probability) on a
// uniformly chosen empty cell. A full board is returned unchanged.
func (e *Engine) SpawnRandomTile(b Board) Board {
	b, _, _ = e.spawn(b)
	return b
}

// spawn is SpawnRandomTile that also reports where the tile landed.
func (e *Engine) spawn(b Board) (Board, Cell, bool) {
	empty := EmptyCells(b)
	if len(empty) == 0 {
		return b, Cell{}, false
	}

	cell := empty[e.rng.Intn(len(empty))]

	value := 2
	if e.rng.Float64() < e.fourPct {
		value = 4
	}

	b[cell.Row][cell.Col] = value
	return b, cell, true
}

// ApplyMove slides the board in dir. A move that changes no cell returns s
// unchanged with a nil error and spawns nothing. A changing move adds the
// merge score, spawns one tile and recomputes Terminal.
//
// An invalid direction fails with ErrInvalidDirection and a terminal state
// fails with ErrGameOver; in both cases s is returned untouched.
func (e *Engine) ApplyMove(s State, dir Direction) (State, error) {
	next, _, err := e.applyMove(s, dir)
	return next, err
}

// Move is the outcome of one ApplyMove call, for hosts that want to
// animate or give feedback.
type Move struct {
	Direction Direction
	Changed   bool
	Gained    int
	Spawned   Cell
}

// ApplyMoveDetailed is ApplyMove that also describes what happened.
func (e *Engine) ApplyMoveDetailed(s State, dir Direction) (State, Move, error) {
	return e.applyMove(s, dir)
}

func (e *Engine) applyMove(s State, dir Direction) (State, Move, error) {
	mv := Move{Direction: dir}

	if !dir.Valid() {
		return s, mv, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}
	if s.Terminal {
		return s, mv, ErrGameOver
	}

	board, gained, changed := Slide(s.Board, dir)
	if !changed {
		return s, mv, nil
	}

	board, spawned, _ := e.spawn(board)

	mv.Changed = true
	mv.Gained = gained
	mv.Spawned = spawned

	return State{
		Board:    board,
		Score:    s.Score + gained,
		Terminal: IsTerminal(board),
	}, mv, nil
}
