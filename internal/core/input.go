package core

// Action is a semantic input, abstracted from physical key presses, so the
// board screen works with intents rather than raw key strings.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // cursor up
	ActionDown           // cursor down
	ActionLeft           // cursor left
	ActionRight          // cursor right
	ActionConfirm        // select the cursor cell / commit a swap
	ActionCancel         // drop the current selection
	ActionRestart        // restart the session
	ActionPause          // pause/unpause
	ActionQuit           // leave the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
