package view

import (
	"testing"

	"mandelzoom/internal/fractal"
)

func TestApplyZoomThenUndo(t *testing.T) {
	h := New(fractal.DefaultRect)
	h.ClearDirty()

	zoomed := fractal.Rect{MinX: -0.8, MaxX: -0.7, MinY: 0.05, MaxY: 0.15}
	h.ApplyZoom(zoomed)
	if h.Current() != zoomed {
		t.Fatalf("Current() = %+v, want %+v", h.Current(), zoomed)
	}
	if !h.Dirty() {
		t.Error("ApplyZoom did not mark dirty")
	}
	if h.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", h.Depth())
	}

	h.ClearDirty()
	if !h.Undo() {
		t.Fatal("Undo() = false, want true")
	}
	if h.Current() != fractal.DefaultRect {
		t.Errorf("Current() after undo = %+v, want %+v", h.Current(), fractal.DefaultRect)
	}
	if !h.Dirty() {
		t.Error("Undo did not mark dirty")
	}
	if h.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", h.Depth())
	}
}

func TestUndoEmpty(t *testing.T) {
	h := New(fractal.DefaultRect)
	h.ClearDirty()
	if h.Undo() {
		t.Error("Undo() on empty history = true, want false")
	}
	if h.Current() != fractal.DefaultRect {
		t.Errorf("Current() = %+v, want unchanged", h.Current())
	}
	if h.Dirty() {
		t.Error("Undo on empty history marked dirty")
	}
}

func TestUndoOrder(t *testing.T) {
	h := New(fractal.DefaultRect)
	views := []fractal.Rect{
		fractal.DefaultRect.Scale(0.5),
		fractal.DefaultRect.Scale(0.25),
		fractal.DefaultRect.Scale(0.125),
	}
	for _, v := range views {
		h.ApplyZoom(v)
	}
	entries := h.Entries()
	if len(entries) != 3 || entries[0] != fractal.DefaultRect || entries[2] != views[1] {
		t.Fatalf("Entries() = %+v", entries)
	}
	entries[0] = fractal.Rect{}
	if h.Entries()[0] != fractal.DefaultRect {
		t.Error("Entries() exposed internal storage")
	}
	for i := len(views) - 2; i >= 0; i-- {
		h.Undo()
		if h.Current() != views[i] {
			t.Errorf("after undo Current() = %+v, want %+v", h.Current(), views[i])
		}
	}
	h.Undo()
	if h.Current() != fractal.DefaultRect {
		t.Errorf("Current() = %+v, want default", h.Current())
	}
}

func TestNewStartsDirty(t *testing.T) {
	if !New(fractal.DefaultRect).Dirty() {
		t.Error("New history is not dirty")
	}
}
