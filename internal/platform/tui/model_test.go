package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/swiftbox/internal/core"
	"github.com/vovakirdan/swiftbox/internal/storage"
)

// scriptedGame ends after the first Right move.
type scriptedGame struct {
	resets  int
	resized int
	state   core.GameState
}

func (g *scriptedGame) ID() string { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRight) && !g.state.GameOver {
		g.state = core.GameState{Score: 256, MaxTile: 64, GameOver: true}
	}
	return core.StepResult{State: g.state}
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) State() core.GameState { return g.state }
func (g *scriptedGame) Resize(int, int) { g.resized++ }

func testEnv(t *testing.T) Env {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return Env{Store: store, Logger: log.New(&strings.Builder{})}
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1}
}

func send(m GameModel, msgs ...tea.Msg) GameModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(GameModel)
	}
	return m
}

func (m GameModel) tick() TickMsg {
	return TickMsg{Time: time.Now(), Gen: m.tickGen}
}

func TestGameModelSavesScoreOnce(t *testing.T) {
	env := testEnv(t)
	game := &scriptedGame{}
	m := NewGameModel(game, env, testRuntime())
	m.Init()

	m = send(m, tea.KeyMsg{Type: tea.KeyRight}, m.tick())
	if !m.GameState().GameOver {
		t.Fatal("game should be over after the scripted move")
	}
	m = send(m, m.tick(), m.tick(), m.tick())

	scores, err := env.Store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("got %d stored results, want exactly 1", len(scores))
	}
	if scores[0].Score != 256 || scores[0].MaxTile != 64 {
		t.Errorf("stored %d/%d, want 256/64", scores[0].Score, scores[0].MaxTile)
	}
}

func TestGameModelRestartAfterGameOver(t *testing.T) {
	env := testEnv(t)
	game := &scriptedGame{}
	m := NewGameModel(game, env, testRuntime())
	m.Init()

	// r is ignored while playing.
	m = send(m, runeKey('r'), m.tick())
	if game.resets != 1 {
		t.Fatalf("resets = %d, want 1", game.resets)
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyRight}, m.tick())
	m = send(m, runeKey('r'), m.tick())
	if game.resets != 2 {
		t.Errorf("resets = %d, want 2 after r on game over", game.resets)
	}
	if m.GameState().GameOver {
		t.Error("state should be fresh after restart")
	}

	// A second finished game is recorded too.
	m = send(m, tea.KeyMsg{Type: tea.KeyRight}, m.tick())
	scores, _ := env.Store.TopScores("scripted", 10)
	if len(scores) != 2 {
		t.Errorf("got %d stored results, want 2", len(scores))
	}
}

func TestGameModelNewGameAnyTime(t *testing.T) {
	game := &scriptedGame{}
	m := NewGameModel(game, Env{}, testRuntime())
	m.Init()

	m = send(m, runeKey('n'), m.tick())
	if game.resets != 2 {
		t.Errorf("resets = %d, want 2 after n", game.resets)
	}
}

func TestGameModelIgnoresStaleTicks(t *testing.T) {
	game := &scriptedGame{}
	m := NewGameModel(game, Env{}, testRuntime())
	m.Init()

	stale := TickMsg{Time: time.Now(), Gen: m.tickGen + 1000}
	m = send(m, tea.KeyMsg{Type: tea.KeyRight}, stale)
	if m.GameState().GameOver {
		t.Error("a tick from another model must not advance this game")
	}
}

func TestGameModelResize(t *testing.T) {
	game := &scriptedGame{}
	m := NewGameModel(game, Env{}, testRuntime())
	m.Init()

	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if game.resized != 1 || game.resets != 1 {
		t.Errorf("resized=%d resets=%d, want the board kept via Resize", game.resized, game.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, want 100x40", m.screen.Width(), m.screen.Height())
	}
}

func TestGameModelBackAndQuit(t *testing.T) {
	m := NewGameModel(&scriptedGame{}, Env{}, testRuntime())
	m.Init()

	back := send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.BackToMenu() || back.IsQuitting() {
		t.Error("esc inside a session should return to the menu")
	}

	m.standalone = true
	quit := send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !quit.IsQuitting() {
		t.Error("esc in standalone play should quit")
	}

	quit = send(m, runeKey('q'))
	if !quit.IsQuitting() || quit.View() != "" {
		t.Error("q should quit and blank the view")
	}
}

func TestGameModelView(t *testing.T) {
	m := NewGameModel(&scriptedGame{}, Env{}, testRuntime())
	m.Init()
	if !strings.Contains(m.View(), "scripted") {
		t.Error("View() should contain the rendered game")
	}
}
