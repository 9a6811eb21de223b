package fractal

import (
	"image"
	"image/color"
)

// RGB is one pixel of a PixelBuffer.
type RGB struct {
	R, G, B uint8
}

// Gray returns an RGB with all channels set to v.
func Gray(v uint8) RGB { return RGB{R: v, G: v, B: v} }

// PixelBuffer is a fixed-size grid of RGB triples, 3 bytes per pixel.
// It implements image.Image so it can be handed to image scalers.
type PixelBuffer struct {
	width  int
	height int
	pix    []uint8
}

// NewPixelBuffer allocates a black buffer of w×h pixels.
func NewPixelBuffer(w, h int) *PixelBuffer {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &PixelBuffer{width: w, height: h, pix: make([]uint8, w*h*3)}
}

func (b *PixelBuffer) Width() int  { return b.width }
func (b *PixelBuffer) Height() int { return b.height }

// Pix returns the raw pixel bytes in row-major RGB order.
func (b *PixelBuffer) Pix() []uint8 { return b.pix }

func (b *PixelBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes the pixel at (x, y). Out-of-range writes are ignored.
func (b *PixelBuffer) Set(x, y int, c RGB) {
	if !b.inBounds(x, y) {
		return
	}
	i := (y*b.width + x) * 3
	b.pix[i+0] = c.R
	b.pix[i+1] = c.G
	b.pix[i+2] = c.B
}

// RGBAt returns the pixel at (x, y), or black when out of range.
func (b *PixelBuffer) RGBAt(x, y int) RGB {
	if !b.inBounds(x, y) {
		return RGB{}
	}
	i := (y*b.width + x) * 3
	return RGB{R: b.pix[i+0], G: b.pix[i+1], B: b.pix[i+2]}
}

// CopyRGBA writes the buffer into dst as opaque RGBA bytes. dst must hold
// at least Width*Height*4 bytes.
func (b *PixelBuffer) CopyRGBA(dst []byte) {
	for i, j := 0, 0; i < len(b.pix) && j+3 < len(dst); i, j = i+3, j+4 {
		dst[j+0] = b.pix[i+0]
		dst[j+1] = b.pix[i+1]
		dst[j+2] = b.pix[i+2]
		dst[j+3] = 0xff
	}
}

func (b *PixelBuffer) ColorModel() color.Model { return color.RGBAModel }

func (b *PixelBuffer) Bounds() image.Rectangle { return image.Rect(0, 0, b.width, b.height) }

func (b *PixelBuffer) At(x, y int) color.Color {
	c := b.RGBAt(x, y)
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}
