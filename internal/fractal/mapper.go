package fractal

import "errors"

// ErrDegenerateSelection is returned for a selection with zero width or height.
var ErrDegenerateSelection = errors.New("fractal: degenerate selection")

// ToFractal maps a pixel position in a w×h raster onto r. Positions outside
// the raster extrapolate linearly.
func ToFractal(px, py float64, r Rect, w, h int) (re, im float64) {
	re = r.MinX + px/float64(w)*(r.MaxX-r.MinX)
	im = r.MinY + py/float64(h)*(r.MaxY-r.MinY)
	return re, im
}

// ToPixel is the inverse of ToFractal.
func ToPixel(re, im float64, r Rect, w, h int) (px, py float64) {
	px = (re - r.MinX) / (r.MaxX - r.MinX) * float64(w)
	py = (im - r.MinY) / (r.MaxY - r.MinY) * float64(h)
	return px, py
}

// SelectionRect converts the pixel rectangle spanned by two corners into a
// new view inside r. The corners may be given in any order.
func SelectionRect(x1, y1, x2, y2 int, r Rect, w, h int) (Rect, error) {
	minX, maxX := min(x1, x2), max(x1, x2)
	minY, maxY := min(y1, y2), max(y1, y2)
	if minX == maxX || minY == maxY {
		return Rect{}, ErrDegenerateSelection
	}
	var out Rect
	out.MinX, out.MinY = ToFractal(float64(minX), float64(minY), r, w, h)
	out.MaxX, out.MaxY = ToFractal(float64(maxX), float64(maxY), r, w, h)
	return out, nil
}
