package tui

import (
	list "github.com/charmbracelet/bubbles/list"

	"mandelzoom/internal/fractal"
	"mandelzoom/internal/landmark"
)

type landmarkItem struct {
	title, desc string
	rect        fractal.Rect
}

func (f landmarkItem) Title() string       { return f.title }
func (f landmarkItem) Description() string { return f.desc }
func (f landmarkItem) FilterValue() string { return f.title }

func (m *Model) setLandmarks(lms []landmark.Landmark) {
	items := make([]list.Item, 0, len(lms))
	for _, l := range lms {
		items = append(items, landmarkItem{title: l.Name, desc: fmtRect(l.Rect), rect: l.Rect})
	}
	m.items = items
	m.l.SetItems(items)
}

// gotoSelected jumps to the landmark under the sidebar cursor.
func (m *Model) gotoSelected() {
	it, ok := m.l.SelectedItem().(landmarkItem)
	if !ok {
		return
	}
	if err := m.ex.Goto(it.rect); err != nil {
		m.fail(err)
		return
	}
	m.setStatus("landmark: " + it.title)
}
