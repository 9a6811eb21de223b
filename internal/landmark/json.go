package landmark

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"mandelzoom/internal/fractal"
)

type jsonLandmark struct {
	Name string   `json:"name"`
	MinX *float64 `json:"min_x"`
	MaxX *float64 `json:"max_x"`
	MinY *float64 `json:"min_y"`
	MaxY *float64 `json:"max_y"`
}

// LoadJSON reads landmarks from a JSON array of
// {"name", "min_x", "max_x", "min_y", "max_y"} objects.
func LoadJSON(path string) ([]Landmark, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	out, err := ParseJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

// ParseJSON is LoadJSON for in-memory data. Entries with missing bounds
// or an invalid rect are skipped.
func ParseJSON(data []byte) ([]Landmark, error) {
	var raw []jsonLandmark
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	var out []Landmark
	for _, l := range raw {
		if l.MinX == nil || l.MaxX == nil || l.MinY == nil || l.MaxY == nil {
			continue
		}
		rect := fractal.Rect{MinX: *l.MinX, MaxX: *l.MaxX, MinY: *l.MinY, MaxY: *l.MaxY}
		if !rect.Valid() {
			continue
		}
		out = append(out, Landmark{Name: l.Name, Rect: rect})
	}
	if len(out) == 0 {
		return nil, errors.New("json: no valid landmarks parsed")
	}
	return out, nil
}
