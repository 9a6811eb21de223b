package tui

// dotBits maps a dot position inside a cell (column, row) to its bit in the
// U+2800 braille block.
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// brailleBuf is a monochrome canvas with 2x4 dots per terminal cell.
type brailleBuf struct {
	w, h int     // in cells
	mask []uint8 // one 8-bit dot mask per cell, row-major
}

func newBrailleBuf(w, h int) *brailleBuf {
	return &brailleBuf{w: w, h: h, mask: make([]uint8, w*h)}
}

// setPixel lights the dot at dot coordinates (dx, dy).
func (b *brailleBuf) setPixel(dx, dy int) {
	if dx < 0 || dy < 0 {
		return
	}
	cx, cy := dx/2, dy/4
	if cx >= b.w || cy >= b.h {
		return
	}
	b.mask[cy*b.w+cx] |= dotBits[dx%2][dy%4]
}

// drawLine lights the dots on a Bresenham line.
func (b *brailleBuf) drawLine(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// strokeRect outlines the rectangle with corners (x0,y0) and (x1,y1).
func (b *brailleBuf) strokeRect(x0, y0, x1, y1 int) {
	b.drawLine(x0, y0, x1, y0)
	b.drawLine(x1, y0, x1, y1)
	b.drawLine(x1, y1, x0, y1)
	b.drawLine(x0, y1, x0, y0)
}

func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	row := make([]rune, b.w)
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			mask := b.mask[y*b.w+x]
			if mask == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = string(row)
	}
	return out
}
