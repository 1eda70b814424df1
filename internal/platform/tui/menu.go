package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/swiftbox/internal/core"
	"github.com/vovakirdan/swiftbox/internal/registry"
)

// MenuKind says what a menu entry opens.
type MenuKind int

const (
	MenuPlay MenuKind = iota
	MenuQuote
	MenuScores
)

// MenuItem is one selectable line of the toolkit menu.
type MenuItem struct {
	Kind   MenuKind
	GameID string // set for MenuPlay
	Title  string
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the toolkit start screen.
type MenuModel struct {
	items     []MenuItem
	best      map[string]int
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem
}

// NewMenuModel lists every registered game followed by the tool entries.
func NewMenuModel(env Env, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games)+2)
	best := make(map[string]int, len(games))

	for _, g := range games {
		items = append(items, MenuItem{Kind: MenuPlay, GameID: g.ID, Title: g.Title})
		if env.Store == nil {
			continue
		}
		if high, err := env.Store.HighScore(g.ID); err == nil && high > 0 {
			best[g.ID] = high
		}
	}
	items = append(items,
		MenuItem{Kind: MenuQuote, Title: "Daily Quote"},
		MenuItem{Kind: MenuScores, Title: "High Scores"},
	)

	return MenuModel{
		items:     items,
		best:      best,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys and resizes.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = (m.cursor - 1 + len(m.items)) % len(m.items)
	case MenuActionDown:
		m.cursor = (m.cursor + 1) % len(m.items)
	case MenuActionSelect:
		item := m.items[m.cursor]
		m.selected = &item
	case MenuActionScoreboard:
		for _, item := range m.items {
			if item.Kind == MenuScores {
				m.selected = &item
			}
		}
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("S W I F T B O X"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuDimStyle.Render("Pick something to do"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if high, ok := m.best[item.GameID]; ok && item.Kind == MenuPlay {
			line += fmt.Sprintf("  (best %d)", high)
		}
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + strings.TrimPrefix(line, "  "))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen entry, or nil while the user is still choosing.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting reports whether the user left the menu.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the runtime config including any resize seen by the menu.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText pads text on the left so it is centred within width.
// Width is measured without ANSI escapes.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
