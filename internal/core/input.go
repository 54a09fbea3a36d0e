package core

// Action represents a semantic command, abstracted from physical key presses.
// Letter keys are never actions: they always travel as guesses in InputFrame.Letters.
type Action int

const (
	ActionNone    Action = iota
	ActionRestart        // Enter - clear guesses, keep words
	ActionZoomIn         // + or =
	ActionZoomOut        // - or _
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRestart:
		return "Restart"
	case ActionZoomIn:
		return "ZoomIn"
	case ActionZoomOut:
		return "ZoomOut"
	default:
		return "Unknown"
	}
}

// InputFrame collects everything the player did during one input event.
type InputFrame struct {
	// Actions maps action types to whether they were triggered.
	Actions map[Action]bool

	// Letters holds normalized guess letters in the order they were typed.
	Letters []rune
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

// AddLetter appends a guess letter to the frame.
func (f *InputFrame) AddLetter(r rune) {
	f.Letters = append(f.Letters, r)
}

// Empty reports whether the frame carries neither actions nor letters.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Letters) == 0
}

// Clear resets all actions and letters for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Letters = f.Letters[:0]
}
