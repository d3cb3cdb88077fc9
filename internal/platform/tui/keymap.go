package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyfall/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "a", "h", "left":
		return core.ActionLeft, false
	case "d", "l", "right":
		return core.ActionRight, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionResume, false
	case "esc", " ":
		return core.ActionToggle, false
	case "enter":
		return core.ActionConfirm, false
	case "b":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// Terminals report key presses but never releases. A direction counts as
// held until its window runs out; the first press gets a window long enough
// to bridge the keyboard's auto-repeat delay, repeats extend it briefly.
const (
	holdInitial = 450 * time.Millisecond
	holdRepeat  = 120 * time.Millisecond
)

// HoldTracker turns discrete Left/Right presses into a held direction.
type HoldTracker struct {
	action core.Action
	until  time.Time
}

// Press records a Left or Right press at the given time. Other actions are
// ignored. Pressing the opposite direction replaces the held one.
func (h *HoldTracker) Press(a core.Action, at time.Time) {
	if a != core.ActionLeft && a != core.ActionRight {
		return
	}
	window := holdInitial
	if h.Held(at) == a {
		window = holdRepeat
	}
	if h.action != a {
		h.action = a
		h.until = time.Time{}
	}
	if end := at.Add(window); end.After(h.until) {
		h.until = end
	}
}

// Held returns the direction held at the given time, or ActionNone.
func (h *HoldTracker) Held(at time.Time) core.Action {
	if h.action == core.ActionNone || !at.Before(h.until) {
		return core.ActionNone
	}
	return h.action
}

// Apply sets the held direction, if any, on the frame.
func (h *HoldTracker) Apply(frame *core.InputFrame, at time.Time) {
	if a := h.Held(at); a != core.ActionNone {
		frame.Set(a)
	}
}

// Release drops the held direction.
func (h *HoldTracker) Release() {
	*h = HoldTracker{}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
