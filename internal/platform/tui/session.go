package tui

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/swiftbox/internal/core"
	"github.com/vovakirdan/swiftbox/internal/games/t2048"
	"github.com/vovakirdan/swiftbox/internal/registry"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenDifficulty
	screenGame
	screenQuote
	screenScores
)

// SessionModel is the top-level toolkit flow used by `swiftbox menu` and by
// every SSH session: menu, then a game, quote or scoreboard, then back.
type SessionModel struct {
	env       Env
	config    core.RuntimeConfig
	sessionID string
	screen    sessionScreen

	menu       MenuModel
	difficulty DifficultyModel
	game       GameModel
	quote      QuoteModel
	scores     ScoreboardModel

	quitting bool
}

// NewSessionModel starts a session on the menu. sessionID only labels log lines.
func NewSessionModel(env Env, cfg core.RuntimeConfig, sessionID string) SessionModel {
	return SessionModel{
		env:       env,
		config:    cfg,
		sessionID: sessionID,
		menu:      NewMenuModel(env, cfg),
	}
}

// Init implements tea.Model.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes msg to the active screen and handles screen changes.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenDifficulty:
		return m.updateDifficulty(msg)
	case screenGame:
		return m.updateGame(msg)
	case screenQuote:
		return m.updateQuote(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	switch selected.Kind {
	case MenuQuote:
		m.quote = NewQuoteModel(rand.New(rand.NewSource(time.Now().UnixNano())), m.config.ScreenW, m.config.ScreenH)
		m.screen = screenQuote
		return m, m.quote.Init()
	case MenuScores:
		m.scores = NewScoreboardModel(m.env.Store, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScores
		return m, m.scores.Init()
	}

	if selected.GameID == t2048.GameID {
		m.difficulty = NewDifficultyModel(m.env.Tuning, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenDifficulty
		return m, m.difficulty.Init()
	}

	game, err := registry.Create(selected.GameID)
	if err != nil {
		m.env.logger().Error("cannot create game", "session", m.sessionID, "err", err)
		return m.toMenu()
	}
	return m.startGame(game)
}

func (m SessionModel) updateDifficulty(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.difficulty.Update(msg)
	m.difficulty = next.(DifficultyModel)

	switch {
	case m.difficulty.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.difficulty.WantsBack():
		return m.toMenu()
	}

	if preset, ok := m.difficulty.Selected(); ok {
		tuning := m.difficulty.Tuning(m.env.Tuning)
		m.env.logger().Debug("starting 2048",
			"session", m.sessionID,
			"difficulty", string(preset),
			"four_probability", tuning.Spawn.FourProbability,
		)
		return m.startGame(t2048.NewWithTuning(tuning))
	}
	return m, cmd
}

func (m SessionModel) startGame(game registry.Game) (tea.Model, tea.Cmd) {
	cfg := m.config
	cfg.Seed = 0 // fresh seed per game
	m.game = NewGameModel(game, m.env, cfg)
	m.screen = screenGame
	return m, m.game.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(GameModel)

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.game.BackToMenu():
		// Pending ticks from the finished game are dropped by the menu.
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateQuote(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.quote.Update(msg)
	m.quote = next.(QuoteModel)

	switch {
	case m.quote.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.quote.WantsBack():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

// toMenu rebuilds the menu so best scores are current.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.env, m.config)
	m.screen = screenMenu
	return m, m.menu.Init()
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenDifficulty:
		return m.difficulty.View()
	case screenGame:
		return m.game.View()
	case screenQuote:
		return m.quote.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the toolkit menu flow in the local terminal.
func RunSession(env Env, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(NewSessionModel(env, cfg, "local"), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
