package t2048

import (
	"strings"
	"testing"

	"github.com/vovakirdan/swiftbox/internal/config"
	"github.com/vovakirdan/swiftbox/internal/core"
	"github.com/vovakirdan/swiftbox/internal/registry"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     seed,
	}
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("registry.Create(%q) error: %v", GameID, err)
	}
	if g.Title() != "2048" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestDeterministicReset(t *testing.T) {
	g1 := New()
	g1.Reset(testConfig(12345))

	g2 := New()
	g2.Reset(testConfig(12345))

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("same seed should produce the same initial game:\n%v\nvs\n%v", g1.state.Board, g2.state.Board)
	}
	if CountTiles(g1.state.Board) != 2 {
		t.Errorf("new game has %d tiles, want 2", CountTiles(g1.state.Board))
	}
}

func TestStepAppliesMove(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.state = State{Board: Board{{2, 2, 0, 0}}}

	res := g.Step(frame(core.ActionLeft))

	if g.state.Board[0][0] != 4 {
		t.Errorf("row 0 = %v, want merged 4 at the left edge", g.state.Board[0])
	}
	if res.State.Score != 4 || res.Rejected {
		t.Errorf("Step() = %+v, want score 4 and not rejected", res)
	}
	if g.Snapshot().Moves != 1 {
		t.Errorf("Moves = %d, want 1", g.Snapshot().Moves)
	}
}

func TestStepRejectedMove(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.state = State{Board: Board{{4, 2, 0, 0}}}
	before := g.state

	res := g.Step(frame(core.ActionLeft))
	if !res.Rejected {
		t.Error("move that changes nothing should be reported as rejected")
	}
	if g.state != before {
		t.Error("rejected move changed the board")
	}

	// Idle ticks keep the hint; the next real move clears it.
	if !g.Step(core.NewInputFrame()).Rejected {
		t.Error("rejected hint should survive idle ticks")
	}
	if g.Step(frame(core.ActionRight)).Rejected {
		t.Error("a changing move should clear the rejected hint")
	}
}

func TestPauseBlocksMoves(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	before := g.state

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("P should pause the game")
	}

	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		g.Step(frame(a))
	}
	if g.state != before {
		t.Error("moves while paused must not change the board")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("second P should resume")
	}
}

func TestGameOverIgnoresMoves(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.state = State{
		Board: Board{
			{2, 4, 2, 4},
			{4, 2, 4, 2},
			{2, 4, 2, 4},
			{4, 2, 4, 2},
		},
		Score:    120,
		Terminal: true,
	}
	before := g.state

	res := g.Step(frame(core.ActionLeft))
	if !res.State.GameOver || res.State.Score != 120 {
		t.Errorf("Step() = %+v, want game over with score 120", res.State)
	}
	if g.state != before {
		t.Error("moves after game over must not change the board")
	}
	if g.Snapshot().State != StateGameOver {
		t.Errorf("Snapshot State = %s, want game_over", g.Snapshot().State)
	}

	// Pause is not offered on the game-over screen.
	g.Step(frame(core.ActionPause))
	if g.paused {
		t.Error("pause should be ignored after game over")
	}
}

func TestTooSmallWindow(t *testing.T) {
	g := New()
	cfg := testConfig(1)
	cfg.ScreenW = 20
	g.Reset(cfg)

	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("Snapshot State = %s, want paused_small_window", g.Snapshot().State)
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("too small notice should be rendered")
	}

	before := g.state
	g.Resize(80, 24)
	if g.Snapshot().State != StatePlaying {
		t.Error("growing the window should resume play")
	}
	if g.state != before {
		t.Error("Resize must not touch the board")
	}
}

func TestTuningApplied(t *testing.T) {
	defer SetTuning(config.DefaultT2048Config())

	cfg := config.DefaultT2048Config()
	cfg.Spawn.FourProbability = 1
	SetTuning(cfg)

	g := New()
	g.Reset(testConfig(8))

	if g.Snapshot().FourProbability != 1 {
		t.Errorf("FourProbability = %v, want 1", g.Snapshot().FourProbability)
	}
	if MaxTile(g.state.Board) != 4 || tileSum(g.state.Board) != 8 {
		t.Errorf("with p=1 both initial tiles should be 4s:\n%v", g.state.Board)
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.state = State{Board: Board{{2048, 0, 0, 2}}, Score: 20480}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Score: 20480", "Best: 2048", "2048", "┌", "┘"} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q", want)
		}
	}

	g.state.Terminal = true
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay should be rendered")
	}
}

func TestTileColor(t *testing.T) {
	tests := []struct {
		value int
		want  core.Color
	}{
		{2, core.ColorBeige},
		{4, core.ColorBeige},
		{8, core.ColorOrange},
		{64, core.ColorBrightRed},
		{128, core.ColorGold},
		{2048, core.ColorGold},
		{4096, core.ColorMagenta},
	}
	for _, tt := range tests {
		if got := tileColor(tt.value); got != tt.want {
			t.Errorf("tileColor(%d) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestNewWithTuningIgnoresPackageTuning(t *testing.T) {
	cfg := config.DefaultT2048Config()
	cfg.Spawn.FourProbability = 0

	g := NewWithTuning(cfg)
	g.Reset(testConfig(99))

	if g.Snapshot().FourProbability != 0 {
		t.Errorf("FourProbability = %v, want 0", g.Snapshot().FourProbability)
	}
	if tileSum(g.state.Board) != 4 {
		t.Errorf("with p=0 both initial tiles should be 2s:\n%v", g.state.Board)
	}
}
