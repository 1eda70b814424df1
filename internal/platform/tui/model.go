package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/swiftbox/internal/config"
	"github.com/vovakirdan/swiftbox/internal/core"
	"github.com/vovakirdan/swiftbox/internal/registry"
	"github.com/vovakirdan/swiftbox/internal/storage"
)

// Env carries the shared dependencies of every screen.
// A nil Store disables score keeping; a nil Logger uses log.Default().
type Env struct {
	Store  *storage.Store
	Logger *log.Logger
	Tuning config.T2048Config
}

func (e Env) logger() *log.Logger {
	if e.Logger == nil {
		return log.Default()
	}
	return e.Logger
}

// GameModel runs one game: it feeds key presses to the game once per tick,
// records the result when the game ends and renders the game screen.
type GameModel struct {
	game       registry.Game
	env        Env
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	tickGen    uint64
	standalone bool // back key quits instead of returning to a menu
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel creates a model for game. A zero cfg.Seed is replaced by the clock.
func NewGameModel(game registry.Game, env Env, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		env:        env,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		tickGen:    nextTickGen(),
	}
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.tickGen)
}

// Update handles key, resize and tick messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		if msg.Gen != m.tickGen {
			return m, nil
		}
		return m.handleTick()
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, m.gameState.GameOver, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.keyMapper.IsBack(msg) {
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
	}
	return m, nil
}

// handleResize keeps the board when the game can follow a new size and
// restarts it otherwise.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate, m.tickGen)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver && !m.scoreSaved {
		m.recordResult()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate, m.tickGen)
}

// recordResult stores the finished game. Storage failures are logged and
// never interrupt play.
func (m GameModel) recordResult() {
	logger := m.env.logger()
	logger.Info("game over",
		"game", m.game.ID(),
		"score", m.gameState.Score,
		"max_tile", m.gameState.MaxTile,
	)

	if m.env.Store == nil {
		return
	}
	if _, err := m.env.Store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.MaxTile); err != nil {
		logger.Error("could not save score", "game", m.game.ID(), "err", err)
	}
}

// View renders the game screen.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting reports whether the player asked to quit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the player asked to return to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// GameState returns the state seen on the last tick.
func (m GameModel) GameState() core.GameState {
	return m.gameState
}

// Run plays game in the current terminal until the player quits.
func Run(game registry.Game, env Env, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, env, cfg)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
