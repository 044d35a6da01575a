package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/metal-tycoon/internal/core"
)

// holdable are the actions that repeat while their key is held:
// sweeping and digging.
var holdable = []core.Action{
	core.ActionUp,
	core.ActionDown,
	core.ActionLeft,
	core.ActionRight,
	core.ActionDig,
}

// KeyMapper translates Bubble Tea key messages to game actions.
// Terminals send no key release, so movement and digging are tracked with
// hold windows: a key stays down while its auto-repeat keeps arriving.
type KeyMapper struct {
	holds map[core.Action]*core.HoldTracker
}

// NewKeyMapper creates a key mapper whose held keys expire after window.
func NewKeyMapper(window time.Duration) *KeyMapper {
	km := &KeyMapper{holds: make(map[core.Action]*core.HoldTracker, len(holdable))}
	for _, a := range holdable {
		km.holds[a] = core.NewHoldTracker(window)
	}
	return km
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up", "k":
		return core.ActionUp, false
	case "s", "down", "j":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case " ":
		return core.ActionDig, false
	case "enter", "e":
		return core.ActionConfirm, false
	case "esc", "b":
		return core.ActionBack, false
	case "tab":
		return core.ActionShop, false
	case "i":
		return core.ActionInventory, false
	case "h", "?":
		return core.ActionHelp, false
	case "t":
		return core.ActionTravel, false
	case "x":
		return core.ActionSell, false
	case "p":
		return core.ActionPause, false
	}
	return core.ActionNone, false
}

// Press records a key at now and sets its action on the frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) Press(msg tea.KeyMsg, now time.Time, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action == core.ActionNone {
		return isQuit
	}
	if h, ok := km.holds[action]; ok {
		h.Press(now)
	}
	frame.Set(action)
	return isQuit
}

// Held adds every action whose key is still held at now to the frame.
func (km *KeyMapper) Held(now time.Time, frame *core.InputFrame) {
	for _, a := range holdable {
		if km.holds[a].Held(now) {
			frame.Set(a)
		}
	}
}

// ReleaseAll drops every held key, e.g. when an overlay opens.
func (km *KeyMapper) ReleaseAll() {
	for _, h := range km.holds {
		h.Release()
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionFinds
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab", "f":
		return MenuActionFinds
	}
	return MenuActionNone
}
