package game

import "github.com/samdwyer/roguelike/internal/ui"

// Command is the action bound to a key.
type Command int

const (
	CmdNone Command = iota
	CmdMoveUp
	CmdMoveDown
	CmdMoveLeft
	CmdMoveRight
	CmdToggleFullscreen
	CmdExit
)

// String returns the command name used in logs.
func (c Command) String() string {
	switch c {
	case CmdNone:
		return "none"
	case CmdMoveUp:
		return "move_up"
	case CmdMoveDown:
		return "move_down"
	case CmdMoveLeft:
		return "move_left"
	case CmdMoveRight:
		return "move_right"
	case CmdToggleFullscreen:
		return "toggle_fullscreen"
	case CmdExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Delta returns the MoveBy arguments for a movement command. Up is +1 on
// the vertical axis.
func (c Command) Delta() (dx, dy int, ok bool) {
	switch c {
	case CmdMoveUp:
		return 0, 1, true
	case CmdMoveDown:
		return 0, -1, true
	case CmdMoveLeft:
		return -1, 0, true
	case CmdMoveRight:
		return 1, 0, true
	default:
		return 0, 0, false
	}
}

// CommandFor maps a key press to a command.
func CommandFor(k ui.Key) Command {
	switch k.Code {
	case ui.KeyUp:
		return CmdMoveUp
	case ui.KeyDown:
		return CmdMoveDown
	case ui.KeyLeft:
		return CmdMoveLeft
	case ui.KeyRight:
		return CmdMoveRight
	case ui.KeyEnter:
		if k.Ctrl {
			return CmdToggleFullscreen
		}
	case ui.KeyF11:
		return CmdToggleFullscreen
	case ui.KeyEscape:
		return CmdExit
	}
	return CmdNone
}
