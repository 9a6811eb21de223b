// Package view keeps the current fractal view and the stack of views it
// replaced.
package view

import "mandelzoom/internal/fractal"

// History owns the current view rect and the undo stack.
// The zero value is not usable; call New.
type History struct {
	current fractal.Rect
	stack   []fractal.Rect
	dirty   bool
}

// New returns a History showing start. It starts dirty so the first frame
// gets rendered.
func New(start fractal.Rect) *History {
	return &History{current: start, dirty: true}
}

// Current returns the view being displayed.
func (h *History) Current() fractal.Rect { return h.current }

// ApplyZoom pushes the current view and replaces it with r.
func (h *History) ApplyZoom(r fractal.Rect) {
	h.stack = append(h.stack, h.current)
	h.current = r
	h.dirty = true
}

// Undo restores the most recently replaced view. With an empty stack it
// does nothing and returns false.
func (h *History) Undo() bool {
	n := len(h.stack)
	if n == 0 {
		return false
	}
	h.current = h.stack[n-1]
	h.stack = h.stack[:n-1]
	h.dirty = true
	return true
}

// Depth is the number of views that Undo can restore.
func (h *History) Depth() int { return len(h.stack) }

// Entries returns a copy of the stack, oldest first.
func (h *History) Entries() []fractal.Rect {
	out := make([]fractal.Rect, len(h.stack))
	copy(out, h.stack)
	return out
}

// Dirty reports whether the view changed since the last ClearDirty.
func (h *History) Dirty() bool { return h.dirty }

func (h *History) ClearDirty() { h.dirty = false }
