package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/swiftbox/internal/config"
)

type difficultyOption struct {
	preset config.DifficultyPreset
	label  string
	four   float64
}

// DifficultyModel lets the player choose the spawn-4 rate before a 2048 game.
type DifficultyModel struct {
	options   []difficultyOption
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	chosen    bool
	quitting  bool
	back      bool
}

// NewDifficultyModel offers the configured tuning first, then every preset.
func NewDifficultyModel(base config.T2048Config, width, height int) DifficultyModel {
	options := []difficultyOption{
		{preset: config.DifficultyDefault, label: "Configured", four: base.Spawn.FourProbability},
	}
	for _, preset := range []config.DifficultyPreset{config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard} {
		p, _ := config.FourProbabilityForPreset(preset)
		options = append(options, difficultyOption{
			preset: preset,
			label:  strings.ToUpper(string(preset[:1])) + string(preset[1:]),
			four:   p,
		})
	}

	return DifficultyModel{
		options:   options,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init implements tea.Model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys and resizes.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.chosen = true
	case MenuActionBack:
		m.back = true
	}
	return m, nil
}

// View renders the option list.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("2 0 4 8"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, opt := range m.options {
		line := fmt.Sprintf("%-10s  4s spawn %2.0f%%", opt.label, opt.four*100)
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render("Enter: Play  |  Esc: Back  |  Q: Quit"), m.width))
	return b.String()
}

// Selected returns the chosen preset once the player confirmed.
// DifficultyDefault keeps the configured tuning.
func (m DifficultyModel) Selected() (config.DifficultyPreset, bool) {
	if !m.chosen {
		return "", false
	}
	return m.options[m.cursor].preset, true
}

// Tuning applies the chosen preset to base.
func (m DifficultyModel) Tuning(base config.T2048Config) config.T2048Config {
	if preset, ok := m.Selected(); ok {
		config.ApplyT2048Preset(&base, preset)
	}
	return base
}

// IsQuitting reports whether the player asked to quit.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack reports whether the player backed out to the menu.
func (m DifficultyModel) WantsBack() bool {
	return m.back
}
