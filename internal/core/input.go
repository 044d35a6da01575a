package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow - sweep up / previous entry
	ActionDown             // S, Down arrow - sweep down / next entry
	ActionLeft             // A, Left arrow - sweep left / previous tab
	ActionRight            // D, Right arrow - sweep right / next tab
	ActionDig              // Space - held to dig
	ActionConfirm          // Enter - collect, buy, travel
	ActionBack             // Esc, B - close overlay, discard reveal
	ActionShop             // Tab - shop overlay
	ActionInventory        // I - inventory overlay
	ActionHelp             // H, ? - encyclopedia overlay
	ActionTravel           // T - area list
	ActionSell             // X - sell everything in the bag
	ActionPause            // P - pause/unpause
	ActionQuit             // Q, Ctrl+C - save and exit
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
	case ActionDig:
		return "Dig"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionShop:
		return "Shop"
	case ActionInventory:
		return "Inventory"
	case ActionHelp:
		return "Help"
	case ActionTravel:
		return "Travel"
	case ActionSell:
		return "Sell"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
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

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
