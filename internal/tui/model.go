package tui

import (
	"image"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"mandelzoom/internal/explorer"
	"mandelzoom/internal/landmark"
)

// Options configure a new Model.
type Options struct {
	// Width and Height are the fixed pixel buffer size.
	Width  int
	Height int
	// Landmarks are shown in the sidebar after the built-in ones.
	Landmarks []landmark.Landmark
	// Mono starts in braille mode.
	Mono bool
}

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool
	mono        bool

	status    string
	statusErr bool

	ex *explorer.Explorer

	// buffer scaled to the map area, rebuilt after each render or resize
	scaled *image.RGBA

	// landmark sidebar
	l     list.Model
	items []list.Item

	// goto mode
	gotoMode bool
	ta       textarea.Model

	// history table
	showHistory bool
	tbl         table.Model

	// hover state
	hovering bool
	hoverRe  float64
	hoverIm  float64
	hoverIt  uint8
}

func New(opts Options) Model {
	if opts.Width <= 0 {
		opts.Width = 640
	}
	if opts.Height <= 0 {
		opts.Height = 480
	}
	m := Model{
		helpVisible: true,
		mono:        opts.Mono,
		status:      "mandelzoom ready",
		ex:          explorer.New(opts.Width, opts.Height),
	}
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = true
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Landmarks"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	m.setLandmarks(append(landmark.Builtin(), opts.Landmarks...))
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "min_x max_x min_y max_y  (Enter to go, Esc to cancel)"
	m.ta.CharLimit = 256
	m.ta.ShowLineNumbers = false
	m.ta.SetWidth(50)
	m.ta.SetHeight(3)
	// history table setup
	m.tbl = table.New(table.WithColumns(historyColumns()), table.WithFocused(true))
	m.tbl.SetHeight(12)
	return m
}

// Explorer exposes the session state driven by the model.
func (m Model) Explorer() *explorer.Explorer { return m.ex }

func (m Model) Init() tea.Cmd { return nil }
