// Command mandelzoom-gui explores the Mandelbrot set in a desktop window.
// Drag with the left button to zoom; hold Cmd or Ctrl and release Z to undo.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mandelzoom/internal/explorer"
)

var selectionColor = color.RGBA{R: 0, G: 234, B: 0, A: 0xff}

type Game struct {
	ex           *explorer.Explorer
	offscreen    *ebiten.Image
	offscreenPix []byte

	lastX, lastY int
}

func NewGame(w, h int) *Game {
	return &Game{
		ex:           explorer.New(w, h),
		offscreen:    ebiten.NewImage(w, h),
		offscreenPix: make([]byte, w*h*4),
	}
}

func isModifier(k ebiten.Key) bool {
	switch k {
	case ebiten.KeyMetaLeft, ebiten.KeyMetaRight, ebiten.KeyControlLeft, ebiten.KeyControlRight:
		return true
	}
	return false
}

// events polls ebiten input state and turns it into explorer events.
func (g *Game) events() []explorer.Event {
	var evs []explorer.Event
	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		evs = append(evs, explorer.Down(x, y))
	} else if (x != g.lastX || y != g.lastY) && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		evs = append(evs, explorer.Move(x, y))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		evs = append(evs, explorer.Up(x, y))
	}
	g.lastX, g.lastY = x, y

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if isModifier(k) {
			evs = append(evs, explorer.Press(explorer.KeyModifier))
		}
	}
	for _, k := range inpututil.AppendJustReleasedKeys(nil) {
		switch {
		case isModifier(k):
			evs = append(evs, explorer.Release(explorer.KeyModifier))
		case k == ebiten.KeyZ:
			evs = append(evs, explorer.Release(explorer.KeyUndo))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		evs = append(evs, explorer.QuitEvent())
	}
	return evs
}

func (g *Game) Update() error {
	for _, ev := range g.events() {
		g.ex.Handle(ev)
	}
	if !g.ex.Running() {
		return ebiten.Termination
	}
	if g.ex.Frame() {
		g.ex.Buffer().CopyRGBA(g.offscreenPix)
		g.offscreen.WritePixels(g.offscreenPix)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.offscreen, nil)

	// If we are dragging currently, draw the rectangle overlay.
	if sel, ok := g.ex.Selection(); ok {
		vector.StrokeRect(screen, float32(sel.X), float32(sel.Y), float32(sel.W), float32(sel.H),
			1, selectionColor, false)
	}
	r := g.ex.Current()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("[%.6g, %.6g]x[%.6g, %.6g]  depth %d",
		r.MinX, r.MaxX, r.MinY, r.MaxY, g.ex.History().Depth()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.ex.Buffer()
	return b.Width(), b.Height()
}

func main() {
	var (
		width   = flag.Int("width", 1280, "window and buffer width")
		height  = flag.Int("height", 1080, "window and buffer height")
		verbose = flag.Bool("v", false, "log events and render timings to stderr")
	)
	flag.Parse()

	if *verbose {
		explorer.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Mandelbrot")
	if err := ebiten.RunGame(NewGame(*width, *height)); err != nil {
		log.Fatal(err)
	}
}
