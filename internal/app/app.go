// Package app is the editor shell. It owns the widgets, routes input to
// them by screen region, advances time and renders back to front.
package app

import (
	"image/color"
	"time"

	"github.com/ha1tch/deluxeanim/internal/canvas"
	"github.com/ha1tch/deluxeanim/internal/logging"
	"github.com/ha1tch/deluxeanim/internal/menu"
	"github.com/ha1tch/deluxeanim/internal/timeline"
	"github.com/ha1tch/deluxeanim/internal/toolbar"
	"github.com/ha1tch/deluxeanim/internal/ui"
)

// Window is what the shell needs from a windowing backend.
type Window interface {
	Size() (width, height int)
	// PollEvents returns the input gathered since the previous call.
	PollEvents() []ui.Event
	// FrameTime is the duration of the previous frame.
	FrameTime() time.Duration
	ShouldClose() bool
	BeginFrame(bg color.RGBA)
	EndFrame()
	Surface() ui.Surface
	SetCursor(c ui.Cursor)
}

// Options configures New. Empty ToolbarItems falls back to
// toolbar.DefaultItems.
type Options struct {
	Width, Height int
	Font          ui.Font
	PanelWidth    int
	Timeline      timeline.Options
	ToolbarHeight int
	ToolbarItems  []string
}

// App is the editor state. It is not safe for concurrent use; the whole
// program runs on the thread that owns the window.
type App struct {
	width, height int

	menu    *menu.Bar
	toolbar *toolbar.Toolbar
	panel   *timeline.Panel
	canvas  *canvas.Canvas

	pointer ui.Point
	cursor  ui.Cursor
	quit    bool
}

// New builds the widgets and lays them out for the window size in opts.
func New(opts Options) *App {
	items := opts.ToolbarItems
	if len(items) == 0 {
		items = toolbar.DefaultItems
	}
	a := &App{
		width:   opts.Width,
		height:  opts.Height,
		menu:    menu.New(opts.Font, opts.Width),
		toolbar: toolbar.New(items, opts.ToolbarHeight),
		panel:   timeline.NewWithOptions(opts.Width, opts.Height, opts.PanelWidth, opts.Timeline),
		canvas:  canvas.New(),
	}
	a.toolbar.SetFont(opts.Font)
	a.toolbar.Resize(opts.Width, opts.Height)
	a.panel.SetFont(opts.Font)
	a.selectToolItem(a.canvas.Tool())
	a.Update(0)
	return a
}

func (a *App) Menu() *menu.Bar           { return a.menu }
func (a *App) Toolbar() *toolbar.Toolbar { return a.toolbar }
func (a *App) Panel() *timeline.Panel    { return a.panel }
func (a *App) Canvas() *canvas.Canvas    { return a.canvas }
func (a *App) Quit() bool                { return a.quit }
func (a *App) Size() (width, height int) { return a.width, a.height }

// Run drives the frame loop until the window closes or Quit is chosen.
func (a *App) Run(w Window) {
	log := logging.Logger()
	log.Info("editor started", "width", a.width, "height", a.height)

	for !a.quit && !w.ShouldClose() {
		for _, e := range w.PollEvents() {
			a.HandleEvent(e)
		}
		a.Update(w.FrameTime())

		if c := a.ResolveCursor(); c != a.cursor {
			a.cursor = c
			w.SetCursor(c)
		}

		w.BeginFrame(canvas.Background)
		a.Render(w.Surface())
		w.EndFrame()
	}
	log.Info("editor stopped", "quit", a.quit)
}

// Update advances animations and playback by dt and re-lays out the
// regions, which depend on the toolbar height and panel width.
func (a *App) Update(dt time.Duration) {
	a.menu.Update(dt)
	a.toolbar.Update(dt, menu.BarHeight)
	a.panel.AdvancePlayback(dt)
	a.layout()
}

func (a *App) layout() {
	top := menu.BarHeight
	bottom := int(a.toolbar.Top())
	a.panel.SetVerticalBounds(top, bottom)
	a.canvas.SetBounds(ui.R(0, float32(top),
		float32(max(a.width-a.panel.Width(), 0)),
		float32(max(bottom-top, 0))))
}

// ResolveCursor asks the panel, toolbar and menu in that order and
// returns the first non-default answer.
func (a *App) ResolveCursor() ui.Cursor {
	for _, c := range []ui.Cursor{
		a.panel.DesiredCursor(a.pointer),
		a.toolbar.DesiredCursor(a.pointer),
		a.menu.DesiredCursor(a.pointer),
	} {
		if c != ui.CursorDefault {
			return c
		}
	}
	return ui.CursorDefault
}

// Render paints the canvas, menu bar, panel and toolbar in that order.
func (a *App) Render(s ui.Surface) {
	a.canvas.Render(s, len(a.panel.Layers()), a.panel.CurrentFrame())
	a.menu.Render(s)
	a.panel.Render(s)
	a.toolbar.Render(s)
}
