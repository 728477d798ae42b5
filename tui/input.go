package tui

import (
	"snake-arcade/game/types"

	"github.com/gdamore/tcell/v2"
)

// directionFor maps arrow keys and WASD to a direction
func directionFor(ev *tcell.EventKey) (types.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return types.Up, true
	case tcell.KeyDown:
		return types.Down, true
	case tcell.KeyLeft:
		return types.Left, true
	case tcell.KeyRight:
		return types.Right, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return types.Up, true
		case 's', 'S':
			return types.Down, true
		case 'a', 'A':
			return types.Left, true
		case 'd', 'D':
			return types.Right, true
		}
	}
	return types.Direction{}, false
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
