package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move up (held)
	ActionDown           // S, Down arrow - move down (held)
	ActionLeft           // A, Left arrow - move left (held)
	ActionRight          // D, Right arrow - move right (held)
	ActionFire           // Space - fire (held, gated by cooldown)
	ActionConfirm        // Enter or click - continue / restart (edge)
	ActionCancel         // Escape, P - pause / resume (edge)
	ActionRestart        // R - restart from pause (edge)
	ActionBack           // B - abandon the run and return to the intro (edge)
	ActionQuit           // Q, Ctrl+C - exit
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
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Pointer is the mouse state for one frame, in screen cells.
type Pointer struct {
	X, Y    int
	Clicked bool // Primary button went down this frame
}

// InputFrame represents the player's input during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	// Held actions (movement, fire) stay set while the key is held;
	// edge actions are set only on the tick after the press.
	Actions map[Action]bool

	// Pointer carries the pointer position and click edge.
	Pointer Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Click records a primary-button press at the given cell.
func (f *InputFrame) Click(x, y int) {
	f.Pointer = Pointer{X: x, Y: y, Clicked: true}
}

// Clear resets all actions and the click edge for the next frame.
// The pointer position is kept.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer.Clicked = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	return clone
}
