package t2048

// GameStateType is the coarse state of a running game.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick            uint64
	Moves           int
	Score           int
	Board           Board
	MaxTile         int
	FourProbability float64
	State           GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.state.Terminal:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	var fourPct float64
	if g.engine != nil {
		fourPct = g.engine.FourProbability()
	}

	return Snapshot{
		Tick:            g.tick,
		Moves:           g.moves,
		Score:           g.state.Score,
		Board:           g.state.Board,
		MaxTile:         MaxTile(g.state.Board),
		FourProbability: fourPct,
		State:           state,
	}
}
