// Package landmark provides named views of the Mandelbrot set and loaders
// for user-supplied lists of them.
package landmark

import (
	"errors"
	"path/filepath"
	"strings"

	"mandelzoom/internal/fractal"
)

type Landmark struct {
	Name string
	Rect fractal.Rect
}

// Builtin returns the classic regions, starting with the full view.
func Builtin() []Landmark {
	return []Landmark{
		{Name: "Full set", Rect: fractal.DefaultRect},
		// dense filaments and repeating curls
		{Name: "Seahorse Valley", Rect: fractal.Rect{MinX: -0.8, MaxX: -0.7, MinY: 0.05, MaxY: 0.15}},
		{Name: "Elephant Valley", Rect: fractal.Rect{MinX: -1.85, MaxX: -1.75, MinY: -0.10, MaxY: -0.02}},
		{Name: "Spiral Minibrot", Rect: fractal.Rect{MinX: -0.7435, MaxX: -0.7420, MinY: 0.1310, MaxY: 0.1325}},
		{Name: "Triple Spiral", Rect: fractal.Rect{MinX: -0.7480, MaxX: -0.7450, MinY: 0.0950, MaxY: 0.0980}},
		{Name: "Valley of the Dragon", Rect: fractal.Rect{MinX: -0.7400, MaxX: -0.7350, MinY: 0.1800, MaxY: 0.1850}},
		{Name: "Minibrot in a Mini-Spiral", Rect: fractal.Rect{MinX: -1.7390, MaxX: -1.7375, MinY: -0.0235, MaxY: -0.0220}},
	}
}

// Load reads landmarks from a .csv or .json file.
func Load(path string) ([]Landmark, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path)
	case ".json":
		return LoadJSON(path)
	}
	return nil, errors.New("landmark: unsupported file: " + filepath.Ext(path))
}
