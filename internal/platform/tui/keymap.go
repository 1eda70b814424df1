package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/swiftbox/internal/core"
)

// KeyMapper translates key presses into game and menu actions.
type KeyMapper struct{}

// NewKeyMapper returns a mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapGameKey returns the game action for msg and whether it asks to quit.
// "r" restarts only once the game is over; "n" starts a new game at any time.
func (km *KeyMapper) MapGameKey(msg tea.KeyMsg, gameOver bool) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "up", "w":
		return core.ActionUp, false
	case "down", "s":
		return core.ActionDown, false
	case "left", "a":
		return core.ActionLeft, false
	case "right", "d":
		return core.ActionRight, false
	case "p":
		return core.ActionPause, false
	case "n":
		return core.ActionRestart, false
	case "r":
		if gameOver {
			return core.ActionRestart, false
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame records the action for msg in frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, gameOver bool, frame *core.InputFrame) bool {
	action, isQuit := km.MapGameKey(msg, gameOver)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// IsBack reports whether msg asks to leave the current screen.
func (km *KeyMapper) IsBack(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "esc", "b":
		return true
	}
	return false
}

// MenuAction is a navigation action on list screens.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "up", "w", "k":
		return MenuActionUp
	case "down", "s", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "esc", "b":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
