package game

import "time"

// Action represents a semantic game action, abstracted from physical key
// presses. The host maps keys, button clicks and Enter presses to actions
// so the games never see raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionStart          // begin the game from the instructions phase
	ActionConfirm        // submit the current answer (button or Enter)
	ActionNext           // advance to the next question / continue
	ActionPrev           // go back to the previous question
	ActionAbort          // return to menu, discarding the attempt
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionConfirm:
		return "Confirm"
	case ActionNext:
		return "Next"
	case ActionPrev:
		return "Prev"
	case ActionAbort:
		return "Abort"
	default:
		return "Unknown"
	}
}

// Frame carries everything a game may observe during one update call: the
// frame timestamp, the actions triggered since the last frame, and the
// current contents of the host's input widgets. Games never read the clock
// or the terminal themselves; all waiting is an elapsed-time comparison
// against Now.
type Frame struct {
	Now     time.Time
	Actions map[Action]bool

	// Text is the content of the single free-text field, when the active
	// phase shows one.
	Text string

	// Fields holds the per-slot box contents for grid input phases.
	Fields []string

	// Option is the multiple-choice option picked this frame, -1 if none.
	Option int
}

// NewFrame creates an empty frame stamped with the given time.
func NewFrame(now time.Time) Frame {
	return Frame{
		Now:     now,
		Actions: make(map[Action]bool),
		Option:  -1,
	}
}

// Set marks an action as triggered for this frame.
func (f *Frame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f Frame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets actions and input contents for the next frame. The timestamp
// is left alone; the host restamps it every tick.
func (f *Frame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Text = ""
	f.Fields = nil
	f.Option = -1
}
