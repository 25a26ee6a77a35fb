package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/scavenger/internal/world"
)

// Action is a non-movement command from the keyboard.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionRestart
)

// KeyDirection maps arrow keys, WASD and hjkl to a direction.
func KeyDirection(ev *tcell.EventKey) world.Direction {
	switch ev.Key() {
	case tcell.KeyUp:
		return world.Up
	case tcell.KeyDown:
		return world.Down
	case tcell.KeyLeft:
		return world.Left
	case tcell.KeyRight:
		return world.Right
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W', 'k':
			return world.Up
		case 's', 'S', 'j':
			return world.Down
		case 'a', 'A', 'h':
			return world.Left
		case 'd', 'D', 'l':
			return world.Right
		}
	}
	return world.None
}

// KeyAction maps quit and restart keys.
func KeyAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyEnter:
		return ActionRestart
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return ActionQuit
		case 'r', 'R':
			return ActionRestart
		}
	}
	return ActionNone
}

// ClickDirection resolves a click on target relative to the player's cell
// to the dominant axis. A click on the player's own cell is no move.
func ClickDirection(player, target world.Cell) world.Direction {
	return world.Dominant(float64(target.X-player.X), float64(target.Y-player.Y))
}
