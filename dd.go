package main

import (
	"fmt"
	"os"

	"github.com/ha1tch/deluxeanim/internal/app"
	"github.com/ha1tch/deluxeanim/internal/config"
	"github.com/ha1tch/deluxeanim/internal/logging"
	"github.com/ha1tch/deluxeanim/internal/rlwindow"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "deluxeanim: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.SetLogger(logging.New(os.Stderr, cfg.Level()))

	win, err := rlwindow.Open(rlwindow.Config{
		Title:     cfg.Window.Title,
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		FPS:       cfg.Window.FPS,
		Resizable: cfg.Window.Resizable,
		VSync:     cfg.Window.VSync,
		LogLevel:  cfg.Level(),
	})
	if err != nil {
		return err
	}
	defer win.Close()

	font, err := rlwindow.LoadFont(cfg.Font.Path, cfg.Font.Fallback, cfg.Font.Size)
	if err != nil {
		return err
	}
	defer font.Unload()

	// The window manager may not honour the requested size.
	width, height := win.Size()
	editor := app.New(app.Options{
		Width:         width,
		Height:        height,
		Font:          font,
		PanelWidth:    min(cfg.Timeline.PanelWidth, width),
		Timeline:      cfg.TimelineOptions(),
		ToolbarHeight: cfg.Toolbar.Height,
		ToolbarItems:  cfg.Toolbar.Items,
	})
	editor.Run(win)
	return nil
}
