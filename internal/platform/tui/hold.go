package tui

import "github.com/vovakirdan/tui-shooter/internal/core"

// DefaultHoldTicks is how long a key counts as held after its last press.
// Terminals report presses and auto-repeat but never releases, so a held
// key is one whose repeat keeps arriving inside this window.
const DefaultHoldTicks = 18

// HeldTracker turns terminal key presses into per-tick held actions.
// Movement and fire stay held until their window expires; every other
// action is delivered on the next tick only.
type HeldTracker struct {
	holdTicks int
	remaining map[core.Action]int
	pending   core.InputFrame
}

// NewHeldTracker creates a tracker. A non-positive holdTicks uses the default.
func NewHeldTracker(holdTicks int) *HeldTracker {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &HeldTracker{
		holdTicks: holdTicks,
		remaining: make(map[core.Action]int),
		pending:   core.NewInputFrame(),
	}
}

// isHeld reports whether an action is continuous rather than one-shot.
func isHeld(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionFire:
		return true
	}
	return false
}

// opposite returns the action on the other side of the same axis.
func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}

// Press records a key press. Pressing a direction releases the opposite
// one, since its release was never reported.
func (h *HeldTracker) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if !isHeld(a) {
		h.pending.Set(a)
		return
	}
	h.remaining[a] = h.holdTicks
	if o := opposite(a); o != core.ActionNone {
		delete(h.remaining, o)
	}
}

// Click records a primary-button click at the given cell.
func (h *HeldTracker) Click(x, y int) {
	h.pending.Click(x, y)
}

// Release drops every held action.
func (h *HeldTracker) Release() {
	clear(h.remaining)
}

// Next returns the input for the coming tick and advances the hold windows.
func (h *HeldTracker) Next() core.InputFrame {
	frame := h.pending.Clone()
	for a, n := range h.remaining {
		frame.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
	h.pending.Clear()
	return frame
}
