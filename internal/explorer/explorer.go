// Package explorer holds the state of an interactive Mandelbrot session:
// the view history, the pixel buffer, and the in-progress drag gesture.
// Presentation layers translate their input into Events and call Frame
// before displaying the buffer.
package explorer

import (
	"errors"
	"fmt"
	"time"

	"mandelzoom/internal/fractal"
	"mandelzoom/internal/view"
)

// ErrInvalidRect is returned by Goto for a rect without min < max on both axes.
var ErrInvalidRect = errors.New("explorer: invalid bounds")

// Selection is a drag rectangle in buffer pixels. W and H are negative when
// the drag goes left or up from the anchor.
type Selection struct {
	X, Y int
	W, H int
}

type Explorer struct {
	history *view.History
	buf     *fractal.PixelBuffer

	held     bool
	dragging bool
	anchorX  int
	anchorY  int
	curX     int
	curY     int

	modifier bool
	running  bool
}

// New returns an explorer with a w×h buffer showing the default view.
func New(w, h int) *Explorer {
	return NewAt(w, h, fractal.DefaultRect)
}

// NewAt is like New but starts at r.
func NewAt(w, h int, r fractal.Rect) *Explorer {
	return &Explorer{
		history: view.New(r),
		buf:     fractal.NewPixelBuffer(w, h),
		running: true,
	}
}

// Buffer returns the pixel buffer. Callers must not write to it.
func (e *Explorer) Buffer() *fractal.PixelBuffer { return e.buf }

// History returns the view history.
func (e *Explorer) History() *view.History { return e.history }

// Current returns the view being displayed.
func (e *Explorer) Current() fractal.Rect { return e.history.Current() }

// Running is false once a Quit event was handled.
func (e *Explorer) Running() bool { return e.running }

// Dragging reports whether a selection is in progress.
func (e *Explorer) Dragging() bool { return e.dragging }

// Selection returns the in-progress drag rectangle.
func (e *Explorer) Selection() (Selection, bool) {
	if !e.dragging {
		return Selection{}, false
	}
	return Selection{X: e.anchorX, Y: e.anchorY, W: e.curX - e.anchorX, H: e.curY - e.anchorY}, true
}

// PointAt maps a buffer pixel to the complex plane under the current view.
func (e *Explorer) PointAt(x, y int) (re, im float64) {
	return fractal.ToFractal(float64(x), float64(y), e.history.Current(), e.buf.Width(), e.buf.Height())
}

// Handle applies one input event.
func (e *Explorer) Handle(ev Event) {
	log := Logger()
	switch ev.Kind {
	case ButtonDown:
		log.Debug("mouse down", "x", ev.X, "y", ev.Y)
		e.held = true
		e.dragging = false
		e.anchorX, e.anchorY = ev.X, ev.Y
		e.curX, e.curY = ev.X, ev.Y
	case Motion:
		if !e.held {
			return
		}
		e.dragging = true
		e.curX, e.curY = ev.X, ev.Y
	case ButtonUp:
		log.Debug("mouse up", "x", ev.X, "y", ev.Y)
		if e.dragging {
			e.curX, e.curY = ev.X, ev.Y
			e.finishDrag()
		} else if e.held {
			log.Debug("click without drag ignored")
		}
		e.held = false
		e.dragging = false
	case KeyDown:
		if ev.Key == KeyModifier {
			e.modifier = true
		}
	case KeyUp:
		switch ev.Key {
		case KeyModifier:
			e.modifier = false
		case KeyUndo:
			if e.modifier {
				e.Undo()
			}
		}
	case Quit:
		log.Debug("quit")
		e.running = false
	}
}

func (e *Explorer) finishDrag() {
	r, err := fractal.SelectionRect(e.anchorX, e.anchorY, e.curX, e.curY,
		e.history.Current(), e.buf.Width(), e.buf.Height())
	if err != nil {
		Logger().Debug("selection abandoned", "err", err)
		return
	}
	e.apply(r, "zoom")
}

func (e *Explorer) apply(r fractal.Rect, reason string) {
	e.history.ApplyZoom(r)
	Logger().Info(reason, "rect", fmtRect(r), "depth", e.history.Depth())
}

// Undo restores the previous view. It returns false when there is none.
func (e *Explorer) Undo() bool {
	if !e.history.Undo() {
		Logger().Debug("undo with empty history")
		return false
	}
	Logger().Info("undo", "rect", fmtRect(e.history.Current()), "depth", e.history.Depth())
	return true
}

// Goto replaces the current view with r.
func (e *Explorer) Goto(r fractal.Rect) error {
	if !r.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidRect, fmtRect(r))
	}
	e.apply(r, "goto")
	return nil
}

// ZoomBy scales the current view about its center. f < 1 zooms in.
func (e *Explorer) ZoomBy(f float64) {
	e.apply(e.history.Current().Scale(f), "zoom")
}

// Pan shifts the current view by fractions of its size.
func (e *Explorer) Pan(fx, fy float64) {
	e.apply(e.history.Current().Translate(fx, fy), "pan")
}

// Reset goes back to the default view. It is undoable.
func (e *Explorer) Reset() {
	e.apply(fractal.DefaultRect, "reset")
}

// Frame renders the buffer if the view changed and reports whether it did.
func (e *Explorer) Frame() bool {
	if !e.history.Dirty() {
		return false
	}
	start := time.Now()
	fractal.Render(e.buf, e.history.Current())
	e.history.ClearDirty()
	Logger().Info("rendered",
		"width", e.buf.Width(), "height", e.buf.Height(),
		"duration", time.Since(start))
	return true
}

func fmtRect(r fractal.Rect) string {
	return fmt.Sprintf("[%g, %g]x[%g, %g]", r.MinX, r.MaxX, r.MinY, r.MaxY)
}
