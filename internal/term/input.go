package term

import "github.com/gdamore/tcell/v2"

type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionFire // also restarts a finished round
	ActionQuit
)

// ActionFor maps a key press to a game action.
func ActionFor(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyLeft:
		return ActionLeft
	case tcell.KeyRight:
		return ActionRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return ActionQuit
		case 'a', 'h':
			return ActionLeft
		case 'd', 'l':
			return ActionRight
		case ' ':
			return ActionFire
		}
	}
	return ActionNone
}
