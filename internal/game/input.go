package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/termsnake/internal/world"
)

// directionForKey maps arrow keys to headings.
func directionForKey(k tcell.Key) (world.Direction, bool) {
	switch k {
	case tcell.KeyLeft:
		return world.Left, true
	case tcell.KeyRight:
		return world.Right, true
	case tcell.KeyUp:
		return world.Up, true
	case tcell.KeyDown:
		return world.Down, true
	default:
		return 0, false
	}
}

// isQuitKey reports whether the key ends the program.
func isQuitKey(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC
}

// isRestartKey reports whether the key starts a new game after a collision.
func isRestartKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEnter {
		return true
	}
	return ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R')
}
