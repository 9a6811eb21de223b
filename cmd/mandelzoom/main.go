package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"mandelzoom/internal/explorer"
	"mandelzoom/internal/landmark"
	"mandelzoom/internal/tui"
)

func main() {
	var (
		width     = flag.Int("width", 640, "pixel buffer width")
		height    = flag.Int("height", 480, "pixel buffer height")
		landmarks = flag.String("landmarks", "", "extra landmarks file (.csv or .json)")
		logPath   = flag.String("log", "", "write debug log to this file")
		mono      = flag.Bool("mono", false, "start in braille mode")
	)
	flag.Parse()

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		explorer.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	opts := tui.Options{Width: *width, Height: *height, Mono: *mono}
	if *landmarks != "" {
		lms, err := landmark.Load(*landmarks)
		if err != nil {
			log.Fatal(err)
		}
		opts.Landmarks = lms
	}

	p := tea.NewProgram(tui.New(opts), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}
