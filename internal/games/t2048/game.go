// Package t2048 implements the 2048 sliding-tile puzzle: a pure board engine
// plus the adapter that plugs it into the terminal platform.
package t2048

import (
	"github.com/vovakirdan/swiftbox/internal/config"
	"github.com/vovakirdan/swiftbox/internal/core"
	"github.com/vovakirdan/swiftbox/internal/registry"
)

// GameID is the registry identifier and the score table key.
const GameID = "2048"

// Package-level tuning, set once by the command layer before games are created.
var tuning = config.DefaultT2048Config()

// SetTuning sets the configuration used by games created afterwards.
func SetTuning(cfg config.T2048Config) {
	tuning = cfg
}

// Game drives an Engine from platform input frames.
type Game struct {
	tuning config.T2048Config
	engine *Engine
	state  State
	tick   uint64
	moves  int

	lastMove Move
	rejected bool // last move input did not change the board

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// New creates a 2048 game using the current package tuning.
func New() *Game {
	return NewWithTuning(tuning)
}

// NewWithTuning creates a game with its own tuning, e.g. a per-session
// difficulty choice.
func NewWithTuning(cfg config.T2048Config) *Game {
	return &Game{tuning: cfg}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset starts a new game seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.engine = NewSeeded(cfg.Seed, WithFourProbability(g.tuning.Spawn.FourProbability))
	g.state = g.engine.Reset()
	g.tick = 0
	g.moves = 0
	g.lastMove = Move{}
	g.rejected = false
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts to a new terminal size without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < g.tuning.Display.MinWidth || h < g.tuning.Display.MinHeight
}

// Step advances the game by one tick, applying at most one move.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall || in.Empty() {
		return g.result()
	}

	if in.Has(core.ActionPause) && !g.state.Terminal {
		g.paused = !g.paused
	}

	// Restart is handled by the platform calling Reset.
	if g.paused || g.state.Terminal {
		return g.result()
	}

	dir, ok := directionFromInput(in)
	if !ok {
		return g.result()
	}

	// dir is valid and the state is not terminal, so ApplyMove cannot fail.
	next, mv, err := g.engine.ApplyMoveDetailed(g.state, dir)
	if err != nil {
		return g.result()
	}

	g.state = next
	g.lastMove = mv
	g.rejected = !mv.Changed
	if mv.Changed {
		g.moves++
	}

	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Rejected: g.rejected}
}

// directionFromInput picks the move for this frame. Vertical wins over
// horizontal when several keys arrive in one tick.
func directionFromInput(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// State returns the current game state for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		MaxTile:  MaxTile(g.state.Board),
		GameOver: g.state.Terminal,
		Paused:   g.paused || g.tooSmall,
	}
}
