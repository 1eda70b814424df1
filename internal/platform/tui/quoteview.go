package tui

import (
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/swiftbox/internal/quote"
)

const maxCardWidth = 64

var (
	cardStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("35")).Padding(1, 3)
	cardTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("35"))
	quoteTextStyle   = lipgloss.NewStyle().Italic(true)
	quoteAuthorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// QuoteKeyMap defines the key bindings for the quote screen.
type QuoteKeyMap struct {
	Refresh key.Binding
	Today   key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp implements help.KeyMap.
func (k QuoteKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.Today, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k QuoteKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultQuoteKeyMap returns the default bindings.
func DefaultQuoteKeyMap() QuoteKeyMap {
	return QuoteKeyMap{
		Refresh: key.NewBinding(key.WithKeys("r", " "), key.WithHelp("r", "another")),
		Today:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today's")),
		Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// QuoteModel shows the quote of the day and lets the user draw random ones.
type QuoteModel struct {
	current quote.Quote
	daily   bool
	now     func() time.Time
	rng     *rand.Rand
	keys    QuoteKeyMap
	help    help.Model
	width   int
	height  int
	back    bool
	quit    bool
}

// NewQuoteModel opens on today's quote. rng drives the refresh key.
func NewQuoteModel(rng *rand.Rand, width, height int) QuoteModel {
	m := QuoteModel{
		now:    time.Now,
		rng:    rng,
		keys:   DefaultQuoteKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.showToday()
	return m
}

func (m *QuoteModel) showToday() {
	m.current = quote.ForDate(m.now())
	m.daily = true
}

// Init implements tea.Model.
func (m QuoteModel) Init() tea.Cmd {
	return nil
}

// Update handles key bindings and resizes.
func (m QuoteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quit = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
		case key.Matches(msg, m.keys.Refresh):
			m.current = quote.Random(m.rng)
			m.daily = false
		case key.Matches(msg, m.keys.Today):
			m.showToday()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// View renders the quote card and key help.
func (m QuoteModel) View() string {
	if m.quit {
		return ""
	}

	title := "Quote of the Day"
	if !m.daily {
		title = "Random Quote"
	}

	card := RenderQuoteCard(title, m.current, m.width)
	body := lipgloss.JoinVertical(lipgloss.Center, card, "", menuDimStyle.Render(m.help.View(m.keys)))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// Current returns the quote on screen.
func (m QuoteModel) Current() quote.Quote {
	return m.current
}

// WantsBack reports whether the user left the screen.
func (m QuoteModel) WantsBack() bool {
	return m.back
}

// IsQuitting reports whether the user asked to quit.
func (m QuoteModel) IsQuitting() bool {
	return m.quit
}

// RenderQuoteCard draws q in a bordered card that fits termWidth.
func RenderQuoteCard(title string, q quote.Quote, termWidth int) string {
	width := maxCardWidth
	if termWidth > 0 {
		width = min(width, termWidth-2)
	}
	inner := max(width-cardStyle.GetHorizontalFrameSize(), 10)

	text := quoteTextStyle.Width(inner).Render("“" + q.Text + "”")
	author := quoteAuthorStyle.Width(inner).Align(lipgloss.Right).Render("- " + q.Author)

	return cardStyle.Render(strings.Join([]string{
		cardTitleStyle.Render(title),
		"",
		text,
		"",
		author,
	}, "\n"))
}
