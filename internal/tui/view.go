package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	contentWidth := max(10, m.width)
	_, _, mapWidth, mapHeight := m.mapArea()

	// Header
	header := titleStyle.Render(" mandelzoom ─ terminal mandelbrot explorer ")
	header = lipgloss.NewStyle().Width(contentWidth).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	var mapView string
	switch {
	case m.showHistory:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(mapWidth, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(mapHeight-2, 20))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(mapWidth, mapHeight, lipgloss.Center, lipgloss.Center, box)
	case m.gotoMode:
		m.ta.SetWidth(min(mapWidth-4, 60))
		box := boxStyle.Render(titleStyle.Render("goto bounds") + "\n" + m.ta.View())
		mapView = lipgloss.Place(mapWidth, mapHeight, lipgloss.Center, lipgloss.Center, box)
	default:
		// plain canvas: no border, no background highlight
		mapView = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(m.renderCanvas())
	}

	// Body row
	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	} else {
		body = mapView
	}

	// Footer / help
	help := m.renderHelp()
	st := dimStyle
	if m.statusErr {
		st = errStyle
	}
	status := st.Render(" " + m.status + " ")
	// hover coords at bottom-right
	coords := ""
	if m.hovering {
		coords = dimStyle.Render(fmt.Sprintf("  re=%.10g im=%.10g it=%d  ", m.hoverRe, m.hoverIm, m.hoverIt))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, contentWidth-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	view := dimStyle.Render(fmt.Sprintf(" view %s  depth %d", fmtRect(m.ex.Current()), m.ex.History().Depth()))
	footer := lipgloss.NewStyle().Width(contentWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, view, lipgloss.JoinHorizontal(lipgloss.Bottom, left, right)))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"drag zoom",
		"^z/u undo",
		"+/- zoom",
		"↑↓←→ pan",
		"r reset",
		"Tab landmarks",
		"t history",
		"g goto",
		"b braille",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
