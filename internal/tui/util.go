package tui

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"mandelzoom/internal/fractal"
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func fmtRect(r fractal.Rect) string {
	return fmt.Sprintf("[%.6g, %.6g]x[%.6g, %.6g]", r.MinX, r.MaxX, r.MinY, r.MaxY)
}

// parseBounds reads "min_x max_x min_y max_y", separated by spaces or commas.
func parseBounds(s string) (fractal.Rect, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) != 4 {
		return fractal.Rect{}, fmt.Errorf("want 4 numbers, got %d", len(fields))
	}
	var v [4]float64
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return fractal.Rect{}, fmt.Errorf("bad number %q: %w", f, err)
		}
		v[i] = x
	}
	return fractal.Rect{MinX: v[0], MaxX: v[1], MinY: v[2], MaxY: v[3]}, nil
}
