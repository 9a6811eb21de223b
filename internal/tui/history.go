package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
)

func historyColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "min_x", Width: 14},
		{Title: "max_x", Width: 14},
		{Title: "min_y", Width: 14},
		{Title: "max_y", Width: 14},
	}
}

// refreshHistory rebuilds the table from the view history: the current view
// first, marked "*", then older views newest first.
func (m *Model) refreshHistory() {
	h := m.ex.History()
	entries := h.Entries()
	rows := make([]table.Row, 0, len(entries)+1)
	cur := h.Current()
	rows = append(rows, table.Row{"*",
		fmt.Sprintf("%.8g", cur.MinX), fmt.Sprintf("%.8g", cur.MaxX),
		fmt.Sprintf("%.8g", cur.MinY), fmt.Sprintf("%.8g", cur.MaxY)})
	for i := len(entries) - 1; i >= 0; i-- {
		r := entries[i]
		rows = append(rows, table.Row{fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.8g", r.MinX), fmt.Sprintf("%.8g", r.MaxX),
			fmt.Sprintf("%.8g", r.MinY), fmt.Sprintf("%.8g", r.MaxY)})
	}
	m.tbl.SetRows(rows)
	m.tbl.GotoTop()
}
