package core

// Controls is the per-tick control vector consumed by the simulation.
// Jump is expected to be pulsed for a single tick by the input collector.
type Controls struct {
	Left  bool
	Right bool
	Jump  bool
	Run   bool
}

// Any reports whether any control is active.
func (c Controls) Any() bool {
	return c.Left || c.Right || c.Jump || c.Run
}

// Action represents a semantic host action, abstracted from physical key presses.
// Movement actions are folded into Controls; the rest drive the game-status machine.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionJump           // Space, W, Up
	ActionRun            // Shift / X - run modifier
	ActionPause          // P - pause/unpause
	ActionConfirm        // Enter - start game, next level
	ActionBack           // Esc, B - back to menu
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit
	ActionSwitch         // Tab - cycle character in menu
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionRun:
		return "Run"
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionSwitch:
		return "Switch"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered during one host frame.
type InputFrame struct {
	Actions map[Action]bool
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Controls folds the movement actions of this frame into a control vector.
func (f InputFrame) Controls() Controls {
	return Controls{
		Left:  f.Has(ActionLeft),
		Right: f.Has(ActionRight),
		Jump:  f.Has(ActionJump),
		Run:   f.Has(ActionRun),
	}
}
