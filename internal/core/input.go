package core

// Action represents a semantic board action, abstracted from physical key presses.
// This allows the board to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // k, Up arrow - move edit cursor up
	ActionDown               // j, Down arrow - move edit cursor down
	ActionLeft               // h, Left arrow - move edit cursor left
	ActionRight              // l, Right arrow - move edit cursor right
	ActionToggleCell         // Enter, x - toggle the cell under the cursor
	ActionPause              // Space - pause/unpause
	ActionClear              // e - erase the board
	ActionStep               // n, . - advance one generation while paused
	ActionSpeedUp            // +, = - shorten the delay
	ActionSlowDown           // - - lengthen the delay
	ActionResetSpeed         // 0 - restore the default delay
	ActionRandomize          // r - random fill
	ActionNextPattern        // p - load the next built-in pattern
	ActionHelp               // ? - toggle the full control legend
	ActionQuit               // Esc, q, Ctrl+C - exit
	ActionClick              // Left mouse press, carries screen coordinates
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
	case ActionToggleCell:
		return "ToggleCell"
	case ActionPause:
		return "Pause"
	case ActionClear:
		return "Clear"
	case ActionStep:
		return "Step"
	case ActionSpeedUp:
		return "SpeedUp"
	case ActionSlowDown:
		return "SlowDown"
	case ActionResetSpeed:
		return "ResetSpeed"
	case ActionRandomize:
		return "Randomize"
	case ActionNextPattern:
		return "NextPattern"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	case ActionClick:
		return "Click"
	default:
		return "Unknown"
	}
}

// Event is one input in arrival order. X and Y are screen coordinates
// (terminal columns and rows) and are only set for ActionClick.
type Event struct {
	Action Action
	X, Y   int
}

// InputFrame collects the input that arrived during one frame.
// Events are applied in arrival order so that, for example, a click
// followed by a pause in the same frame behaves like two separate frames.
type InputFrame struct {
	Events []Event
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an action for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Events = append(f.Events, Event{Action: a})
}

// Click records a mouse press for this frame.
func (f *InputFrame) Click(x, y int) {
	f.Events = append(f.Events, Event{Action: ActionClick, X: x, Y: y})
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, e := range f.Events {
		if e.Action == a {
			return true
		}
	}
	return false
}

// Empty reports whether no input arrived this frame.
func (f InputFrame) Empty() bool {
	return len(f.Events) == 0
}

// Clear resets all input for the next frame, keeping capacity.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}
