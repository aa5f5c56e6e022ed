package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/qube2048/internal/core"
)

// keyToAction maps a Bubble Tea key message to a platform action.
// Arrows, WASD and vi keys all issue swipes; returns ActionNone for keys
// the game loop does not care about.
func keyToAction(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "up", "w", "k":
		return core.ActionUp
	case "down", "s", "j":
		return core.ActionDown
	case "left", "a", "h":
		return core.ActionLeft
	case "right", "d", "l":
		return core.ActionRight
	case "enter":
		return core.ActionConfirm
	case "p", "esc":
		return core.ActionPause
	case "r":
		return core.ActionRestart
	case "q", "ctrl+c":
		return core.ActionQuit
	default:
		return core.ActionNone
	}
}
