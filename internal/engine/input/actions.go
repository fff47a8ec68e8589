package input

import "github.com/veandco/go-sdl2/sdl"

// Action is a keyboard command.
type Action int

const (
	ActionNone Action = iota
	ActionFocusNext
	ActionToggleSound
	ActionRestart
	ActionScreenshot
	ActionFullscreen
	ActionDebug
	ActionQuit
)

var keyActions = map[sdl.Scancode]Action{
	sdl.SCANCODE_F:      ActionFocusNext,
	sdl.SCANCODE_M:      ActionToggleSound,
	sdl.SCANCODE_R:      ActionRestart,
	sdl.SCANCODE_F12:    ActionScreenshot,
	sdl.SCANCODE_F11:    ActionFullscreen,
	sdl.SCANCODE_F3:     ActionDebug,
	sdl.SCANCODE_ESCAPE: ActionQuit,
}

// KeyAction maps a scancode to its command.
func KeyAction(sc sdl.Scancode) Action {
	return keyActions[sc]
}

func (a Action) String() string {
	switch a {
	case ActionFocusNext:
		return "focus-next"
	case ActionToggleSound:
		return "toggle-sound"
	case ActionRestart:
		return "restart"
	case ActionScreenshot:
		return "screenshot"
	case ActionFullscreen:
		return "fullscreen"
	case ActionDebug:
		return "debug"
	case ActionQuit:
		return "quit"
	}
	return "none"
}
