package fractal

import "math"

// Rect is an axis-aligned view of the complex plane.
type Rect struct {
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// DefaultRect is the view shown at startup.
var DefaultRect = Rect{MinX: -2, MaxX: 2, MinY: -2, MaxY: 2}

// Valid reports whether r is finite with min < max on both axes.
func (r Rect) Valid() bool {
	for _, v := range [...]float64{r.MinX, r.MaxX, r.MinY, r.MaxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return r.MinX < r.MaxX && r.MinY < r.MaxY
}

func (r Rect) Width() float64  { return r.MaxX - r.MinX }
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Center returns the midpoint of r.
func (r Rect) Center() (x, y float64) {
	return (r.MinX + r.MaxX) / 2, (r.MinY + r.MaxY) / 2
}

// Scale returns r resized by f about its center. f < 1 zooms in.
func (r Rect) Scale(f float64) Rect {
	cx, cy := r.Center()
	hw := r.Width() / 2 * f
	hh := r.Height() / 2 * f
	return Rect{MinX: cx - hw, MaxX: cx + hw, MinY: cy - hh, MaxY: cy + hh}
}

// Translate shifts r by fractions of its own width and height.
func (r Rect) Translate(fx, fy float64) Rect {
	dx := r.Width() * fx
	dy := r.Height() * fy
	return Rect{MinX: r.MinX + dx, MaxX: r.MaxX + dx, MinY: r.MinY + dy, MaxY: r.MaxY + dy}
}
