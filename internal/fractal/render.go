// Package fractal rasterizes the Mandelbrot set and maps between raster
// pixels and the complex plane.
package fractal

// MaxIterations is the iteration cap. A point that reaches it is treated as
// inside the set and its count wraps to 0, like an 8-bit counter would.
const MaxIterations = 255

// escapeRadius2 is the squared escape radius.
const escapeRadius2 = 4

// Escape returns the escape-time count for c, starting from z = c.
// The first step always runs, so a point already outside radius 2 counts 1.
// Points that never escape within MaxIterations return 0.
func Escape(c complex128) uint8 {
	z := c
	var i uint8
	for {
		z = z*z + c
		i++
		if i == MaxIterations {
			return 0
		}
		if mag2(z) >= escapeRadius2 {
			return i
		}
	}
}

func mag2(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}

// Render overwrites every pixel of buf with the grayscale escape count of
// the matching point in r.
func Render(buf *PixelBuffer, r Rect) {
	w, h := buf.Width(), buf.Height()
	stepX := (r.MaxX - r.MinX) / float64(w)
	stepY := (r.MaxY - r.MinY) / float64(h)

	sy := r.MinY
	for y := 0; y < h; y, sy = y+1, sy+stepY {
		sx := r.MinX
		for x := 0; x < w; x, sx = x+1, sx+stepX {
			buf.Set(x, y, Gray(Escape(complex(sx, sy))))
		}
	}
}
