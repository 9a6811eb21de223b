package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"mandelzoom/internal/explorer"
)

const (
	zoomStep = 1.2
	panStep  = 0.1
)

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) fail(err error) {
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		_, _, _, h := m.mapArea()
		m.l.SetSize(sidebarWidth-2, h-2)
	case tea.KeyMsg:
		var quit bool
		cmd, quit = m.handleKey(msg)
		if quit {
			m.ex.Handle(explorer.QuitEvent())
			return m, tea.Quit
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	m.rescale()
	if m.showHistory {
		m.refreshHistory()
	}
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	// If list is visible and filtering, send keys to list and ignore global commands
	if m.showSidebar && m.l.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return cmd, false
	}
	if m.gotoMode {
		switch msg.String() {
		case "esc":
			m.gotoMode = false
			m.ta.Blur()
			m.setStatus("view mode")
			return nil, false
		case "enter":
			s := strings.TrimSpace(m.ta.Value())
			if s == "" {
				m.setStatus("goto: empty")
				return nil, false
			}
			r, err := parseBounds(s)
			if err != nil {
				m.fail(fmt.Errorf("goto: %w", err))
				return nil, false
			}
			if err := m.ex.Goto(r); err != nil {
				m.fail(err)
				return nil, false
			}
			m.setStatus("goto " + fmtRect(r))
			m.gotoMode = false
			m.ta.Blur()
			return nil, false
		}
		var cmd tea.Cmd
		m.ta, cmd = m.ta.Update(msg)
		return cmd, false
	}
	if m.showSidebar {
		switch msg.String() {
		case "enter":
			m.gotoSelected()
			return nil, false
		case "up", "down", "pgup", "pgdown", "/", "home", "end":
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return cmd, false
		}
	}
	if m.showHistory {
		switch msg.String() {
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return cmd, false
		case "esc":
			m.showHistory = false
			return nil, false
		}
	}
	switch msg.String() {
	case "ctrl+c", "q":
		return nil, true
	case "ctrl+z", "u":
		// terminals report no key releases, so replay the full chord
		depth := m.ex.History().Depth()
		m.ex.Handle(explorer.Press(explorer.KeyModifier))
		m.ex.Handle(explorer.Press(explorer.KeyUndo))
		m.ex.Handle(explorer.Release(explorer.KeyUndo))
		m.ex.Handle(explorer.Release(explorer.KeyModifier))
		if m.ex.History().Depth() < depth {
			m.setStatus(fmt.Sprintf("undo  depth: %d", m.ex.History().Depth()))
		} else {
			m.setStatus("nothing to undo")
		}
	case "+", "=":
		m.ex.ZoomBy(1 / zoomStep)
		m.setStatus("zoom in")
	case "-", "_":
		m.ex.ZoomBy(zoomStep)
		m.setStatus("zoom out")
	case "up":
		m.ex.Pan(0, -panStep)
	case "down":
		m.ex.Pan(0, panStep)
	case "left":
		m.ex.Pan(-panStep, 0)
	case "right":
		m.ex.Pan(panStep, 0)
	case "r":
		m.ex.Reset()
		m.setStatus("reset view")
	case "tab":
		m.showSidebar = !m.showSidebar
		_, _, _, h := m.mapArea()
		m.l.SetSize(sidebarWidth-2, h-2)
	case "t":
		m.showHistory = !m.showHistory
		if m.showHistory {
			m.refreshHistory()
		}
	case "g":
		m.gotoMode = true
		m.ta.SetValue("")
		m.ta.Focus()
		m.setStatus("goto mode")
	case "b":
		m.mono = !m.mono
		m.scaled = nil
		m.setStatus(fmt.Sprintf("braille: %v", m.mono))
	case "h":
		m.helpVisible = !m.helpVisible
	}
	return nil, false
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	ox, oy, w, h := m.mapArea()
	cx, cy := msg.X-ox, msg.Y-oy
	inside := cx >= 0 && cx < w && cy >= 0 && cy < h
	if !inside && !m.ex.Dragging() {
		m.hovering = false
		if msg.Action == tea.MouseActionRelease {
			m.ex.Handle(explorer.Up(0, 0))
		}
		return
	}
	// a drag leaving the map sticks to its edge
	cx = min(max(cx, 0), w-1)
	cy = min(max(cy, 0), h-1)
	px, py := m.cellToPixel(cx, cy)

	m.hovering = true
	m.hoverRe, m.hoverIm = m.ex.PointAt(px, py)
	m.hoverIt = m.ex.Buffer().RGBAt(px, py).R

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.ex.Handle(explorer.Down(px, py))
		case tea.MouseButtonWheelUp:
			m.ex.ZoomBy(1 / zoomStep)
		case tea.MouseButtonWheelDown:
			m.ex.ZoomBy(zoomStep)
		}
	case tea.MouseActionMotion:
		m.ex.Handle(explorer.Move(px, py))
	case tea.MouseActionRelease:
		depth := m.ex.History().Depth()
		m.ex.Handle(explorer.Up(px, py))
		if m.ex.History().Depth() > depth {
			m.setStatus("zoom " + fmtRect(m.ex.Current()))
		}
	}
}
