package tui

import "testing"

func TestBrailleSetPixel(t *testing.T) {
	b := newBrailleBuf(2, 1)
	b.setPixel(0, 0)
	b.setPixel(1, 3)
	b.setPixel(2, 1)
	b.setPixel(-1, 0)
	b.setPixel(4, 0)
	b.setPixel(0, 4)
	lines := b.toLines()
	if len(lines) != 1 {
		t.Fatalf("toLines() = %d lines, want 1", len(lines))
	}
	want := string([]rune{0x2800 + 0x01 + 0x80, 0x2800 + 0x02})
	if lines[0] != want {
		t.Errorf("toLines()[0] = %q, want %q", lines[0], want)
	}
}

func TestBrailleStrokeRect(t *testing.T) {
	b := newBrailleBuf(2, 2)
	b.strokeRect(3, 7, 0, 0)
	lit := 0
	for _, m := range b.mask {
		for ; m != 0; m &= m - 1 {
			lit++
		}
	}
	// perimeter of a 4x8 dot rectangle
	if lit != 2*4+2*8-4 {
		t.Errorf("lit dots = %d, want 20", lit)
	}
}
