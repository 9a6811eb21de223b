package tui

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"

	"mandelzoom/internal/explorer"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2

	// lightness above which a braille dot is lit
	monoThreshold = 0.05
)

var selectionColor = color.RGBA{R: 0, G: 234, B: 0, A: 0xff}

// mapArea returns the origin and size of the map canvas in terminal cells.
// Update and View must agree on it.
func (m Model) mapArea() (x, y, w, h int) {
	contentHeight := max(4, m.height-headerHeight-footerHeight)
	contentWidth := max(10, m.width)
	w = contentWidth - 1
	if m.showSidebar {
		w -= sidebarWidth
		x = sidebarWidth + 1
	}
	return x, headerHeight, max(10, w), contentHeight
}

// subpixels per cell for the current mode
func (m Model) cellRes() (sx, sy int) {
	if m.mono {
		return 2, 4
	}
	return 1, 2
}

// cellToPixel maps a map cell to the buffer pixel under its center.
func (m Model) cellToPixel(cx, cy int) (int, int) {
	_, _, w, h := m.mapArea()
	buf := m.ex.Buffer()
	px := (2*cx + 1) * buf.Width() / (2 * w)
	py := (2*cy + 1) * buf.Height() / (2 * h)
	return px, py
}

// pixelToSub maps a buffer pixel to canvas subpixel coordinates.
func (m Model) pixelToSub(px, py int) (int, int) {
	_, _, w, h := m.mapArea()
	rx, ry := m.cellRes()
	buf := m.ex.Buffer()
	return px * w * rx / buf.Width(), py * h * ry / buf.Height()
}

// rescale renders the view if needed and scales the buffer to the canvas.
func (m *Model) rescale() {
	rendered := m.ex.Frame()
	_, _, w, h := m.mapArea()
	rx, ry := m.cellRes()
	b := image.Rect(0, 0, w*rx, h*ry)
	if !rendered && m.scaled != nil && m.scaled.Bounds() == b {
		return
	}
	dst := image.NewRGBA(b)
	src := m.ex.Buffer()
	xdraw.ApproxBiLinear.Scale(dst, b, src, src.Bounds(), xdraw.Src, nil)
	m.scaled = dst
}

func (m Model) renderCanvas() string {
	if m.scaled == nil {
		return ""
	}
	if m.mono {
		return m.renderBraille()
	}
	return m.renderHalfBlocks()
}

// renderHalfBlocks draws two pixel rows per line: the top pixel as the
// foreground of '▀' and the bottom one as its background.
func (m Model) renderHalfBlocks() string {
	img := m.scaled
	if sel, ok := m.ex.Selection(); ok {
		img = cloneRGBA(img)
		m.strokeSelection(img, sel)
	}
	b := img.Bounds()
	lines := make([]string, 0, b.Dy()/2)
	var sb strings.Builder
	for y := 0; y+1 < b.Dy(); y += 2 {
		sb.Reset()
		for x := 0; x < b.Dx(); x++ {
			top := hexOf(img.RGBAAt(x, y))
			bottom := hexOf(img.RGBAAt(x, y+1))
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render("▀"))
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

// renderBraille lights a dot for every subpixel brighter than monoThreshold.
func (m Model) renderBraille() string {
	b := m.scaled.Bounds()
	br := newBrailleBuf(b.Dx()/2, b.Dy()/4)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			if lightness(m.scaled.RGBAAt(x, y)) > monoThreshold {
				br.setPixel(x, y)
			}
		}
	}
	if sel, ok := m.ex.Selection(); ok {
		x0, y0 := m.pixelToSub(sel.X, sel.Y)
		x1, y1 := m.pixelToSub(sel.X+sel.W, sel.Y+sel.H)
		br.strokeRect(x0, y0, x1, y1)
	}
	return strings.Join(br.toLines(), "\n")
}

func (m Model) strokeSelection(img *image.RGBA, sel explorer.Selection) {
	x0, y0 := m.pixelToSub(sel.X, sel.Y)
	x1, y1 := m.pixelToSub(sel.X+sel.W, sel.Y+sel.H)
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for x := x0; x <= x1; x++ {
		img.SetRGBA(x, y0, selectionColor)
		img.SetRGBA(x, y1, selectionColor)
	}
	for y := y0; y <= y1; y++ {
		img.SetRGBA(x0, y, selectionColor)
		img.SetRGBA(x1, y, selectionColor)
	}
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}

func hexOf(c color.RGBA) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

func lightness(c color.RGBA) float64 {
	cf, _ := colorful.MakeColor(c)
	l, _, _ := cf.Lab()
	return l
}
