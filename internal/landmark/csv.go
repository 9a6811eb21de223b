package landmark

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"mandelzoom/internal/fractal"
)

// LoadCSV reads landmarks from a CSV file with a header row.
// Columns are found by name (case-insensitive): name, min_x, max_x, min_y, max_y.
func LoadCSV(path string) ([]Landmark, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	out, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

// ReadCSV is LoadCSV for an open reader.
func ReadCSV(rd io.Reader) ([]Landmark, error) {
	r := csv.NewReader(rd)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	recs, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.New("empty csv")
	}
	idx := map[string]int{"name": -1, "min_x": -1, "max_x": -1, "min_y": -1, "max_y": -1}
	for i, h := range recs[0] {
		k := strings.ToLower(strings.TrimSpace(h))
		if j, ok := idx[k]; ok && j == -1 {
			idx[k] = i
		}
	}
	for k, i := range idx {
		if i == -1 {
			return nil, errors.New("csv: column not found: " + k)
		}
	}
	var out []Landmark
	for _, row := range recs[1:] {
		var v [4]float64
		ok := true
		for n, col := range [...]string{"min_x", "max_x", "min_y", "max_y"} {
			i := idx[col]
			if i >= len(row) {
				ok = false
				break
			}
			f, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
			if err != nil {
				ok = false
				break
			}
			v[n] = f
		}
		if !ok || idx["name"] >= len(row) {
			continue
		}
		rect := fractal.Rect{MinX: v[0], MaxX: v[1], MinY: v[2], MaxY: v[3]}
		if !rect.Valid() {
			continue
		}
		out = append(out, Landmark{Name: strings.TrimSpace(row[idx["name"]]), Rect: rect})
	}
	if len(out) == 0 {
		return nil, errors.New("csv: no valid landmarks parsed")
	}
	return out, nil
}
