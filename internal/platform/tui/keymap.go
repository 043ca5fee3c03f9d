package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-rogue/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q", "esc":
		return core.ActionQuit, true
	}

	// Movement, arrows plus wasd and vim keys
	switch key {
	case "w", "k", "up":
		return core.ActionMoveNorth, false
	case "s", "j", "down":
		return core.ActionMoveSouth, false
	case "a", "h", "left":
		return core.ActionMoveWest, false
	case "d", "l", "right":
		return core.ActionMoveEast, false
	}

	return core.ActionNone, false
}
