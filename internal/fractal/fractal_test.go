package fractal

import (
	"errors"
	"image"
	"math"
	"testing"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name string
		c    complex128
		want uint8
	}{
		{"origin never escapes", 0, 0},
		{"period two cycle", -1, 0},
		{"cusp", 0.25, 0},
		{"far outside", 3 + 3i, 1},
		{"on radius after one step", 1, 1},
		{"slow escape", 0.5, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.c); got != tt.want {
				t.Errorf("Escape(%v) = %d, want %d", tt.c, got, tt.want)
			}
		})
	}
}

func TestRenderNeverWrites255(t *testing.T) {
	buf := NewPixelBuffer(96, 80)
	Render(buf, DefaultRect)
	for _, v := range buf.Pix() {
		if v == MaxIterations {
			t.Fatalf("found intensity %d, cap must wrap to 0", v)
		}
	}
}

func TestRenderCenterIsBlack(t *testing.T) {
	buf := NewPixelBuffer(64, 48)
	Render(buf, DefaultRect)
	if got := buf.RGBAt(32, 24); got != (RGB{}) {
		t.Errorf("center pixel = %v, want black", got)
	}
}

func TestRenderFarPointIsOne(t *testing.T) {
	// Pixel (0,0) of this view maps to c = 3+3i.
	r := Rect{MinX: 3, MaxX: 4, MinY: 3, MaxY: 4}
	buf := NewPixelBuffer(8, 8)
	Render(buf, r)
	if got := buf.RGBAt(0, 0); got != Gray(1) {
		t.Errorf("pixel for 3+3i = %v, want %v", got, Gray(1))
	}
}

func TestRenderOverwritesEveryPixel(t *testing.T) {
	buf := NewPixelBuffer(16, 16)
	for i := range buf.Pix() {
		buf.Pix()[i] = 0xAB
	}
	Render(buf, DefaultRect)
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			c := buf.RGBAt(x, y)
			if c.R != c.G || c.G != c.B {
				t.Fatalf("pixel (%d,%d) = %v, want gray", x, y, c)
			}
			if c.R == 0xAB {
				t.Fatalf("pixel (%d,%d) was not overwritten", x, y)
			}
		}
	}
}

func TestToFractalRoundTrip(t *testing.T) {
	const w, h = 37, 23
	rects := []Rect{
		DefaultRect,
		{MinX: -0.8, MaxX: -0.7, MinY: 0.05, MaxY: 0.15},
		{MinX: -1.7390, MaxX: -1.7375, MinY: -0.0235, MaxY: -0.0220},
	}
	for _, r := range rects {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				re, im := ToFractal(float64(x), float64(y), r, w, h)
				px, py := ToPixel(re, im, r, w, h)
				if math.Abs(px-float64(x)) > 1e-6 || math.Abs(py-float64(y)) > 1e-6 {
					t.Fatalf("round trip of (%d,%d) in %+v = (%v,%v)", x, y, r, px, py)
				}
			}
		}
	}
}

func TestToFractalExtrapolates(t *testing.T) {
	re, im := ToFractal(-10, 20, DefaultRect, 10, 10)
	if re != -6 || im != 6 {
		t.Errorf("ToFractal(-10, 20) = (%v, %v), want (-6, 6)", re, im)
	}
}

func TestSelectionRectDirections(t *testing.T) {
	const w, h = 200, 100
	ax, ay, bx, by := 20, 10, 120, 70
	want, err := SelectionRect(ax, ay, bx, by, DefaultRect, w, h)
	if err != nil {
		t.Fatal(err)
	}
	if !want.Valid() {
		t.Fatalf("selection %+v is not valid", want)
	}
	corners := [][4]int{
		{bx, by, ax, ay}, // up-left
		{ax, by, bx, ay}, // up-right
		{bx, ay, ax, by}, // down-left
	}
	for _, c := range corners {
		got, err := SelectionRect(c[0], c[1], c[2], c[3], DefaultRect, w, h)
		if err != nil {
			t.Fatalf("SelectionRect(%v) error: %v", c, err)
		}
		if got != want {
			t.Errorf("SelectionRect(%v) = %+v, want %+v", c, got, want)
		}
	}
	wantRect := Rect{MinX: -1.6, MaxX: 0.4, MinY: -1.6, MaxY: 0.8}
	if math.Abs(want.MinX-wantRect.MinX) > 1e-12 || math.Abs(want.MaxY-wantRect.MaxY) > 1e-12 {
		t.Errorf("SelectionRect = %+v, want %+v", want, wantRect)
	}
}

func TestSelectionRectDegenerate(t *testing.T) {
	cases := [][4]int{
		{5, 5, 5, 5},
		{5, 5, 50, 5},
		{5, 5, 5, 50},
	}
	for _, c := range cases {
		_, err := SelectionRect(c[0], c[1], c[2], c[3], DefaultRect, 100, 100)
		if !errors.Is(err, ErrDegenerateSelection) {
			t.Errorf("SelectionRect(%v) error = %v, want ErrDegenerateSelection", c, err)
		}
	}
}

func TestRectValid(t *testing.T) {
	tests := []struct {
		r    Rect
		want bool
	}{
		{DefaultRect, true},
		{Rect{MinX: 1, MaxX: 1, MinY: 0, MaxY: 1}, false},
		{Rect{MinX: 0, MaxX: 1, MinY: 2, MaxY: 1}, false},
		{Rect{MinX: math.NaN(), MaxX: 1, MinY: 0, MaxY: 1}, false},
		{Rect{MinX: 0, MaxX: math.Inf(1), MinY: 0, MaxY: 1}, false},
	}
	for _, tt := range tests {
		if got := tt.r.Valid(); got != tt.want {
			t.Errorf("%+v.Valid() = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestRectScaleTranslate(t *testing.T) {
	got := DefaultRect.Scale(0.5)
	if want := (Rect{MinX: -1, MaxX: 1, MinY: -1, MaxY: 1}); got != want {
		t.Errorf("Scale(0.5) = %+v, want %+v", got, want)
	}
	got = DefaultRect.Translate(0.25, -0.5)
	if want := (Rect{MinX: -1, MaxX: 3, MinY: -4, MaxY: 0}); got != want {
		t.Errorf("Translate(0.25, -0.5) = %+v, want %+v", got, want)
	}
}

func TestPixelBufferBounds(t *testing.T) {
	buf := NewPixelBuffer(4, 3)
	buf.Set(-1, 0, Gray(9))
	buf.Set(4, 0, Gray(9))
	buf.Set(0, 3, Gray(9))
	for _, v := range buf.Pix() {
		if v != 0 {
			t.Fatal("out-of-range Set modified the buffer")
		}
	}
	buf.Set(3, 2, RGB{R: 1, G: 2, B: 3})
	if got := buf.RGBAt(3, 2); got != (RGB{R: 1, G: 2, B: 3}) {
		t.Errorf("RGBAt(3,2) = %v", got)
	}
	if got := buf.RGBAt(10, 10); got != (RGB{}) {
		t.Errorf("RGBAt out of range = %v, want black", got)
	}
	if got := buf.Bounds(); got != image.Rect(0, 0, 4, 3) {
		t.Errorf("Bounds() = %v", got)
	}

	rgba := make([]byte, 4*3*4)
	buf.CopyRGBA(rgba)
	if i := (2*4 + 3) * 4; rgba[i] != 1 || rgba[i+1] != 2 || rgba[i+2] != 3 || rgba[i+3] != 0xff {
		t.Errorf("CopyRGBA pixel = %v", rgba[i:i+4])
	}
}
