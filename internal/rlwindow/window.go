// Package rlwindow is the raylib backend: it opens the window, turns
// raylib's polled input into ui events and implements ui.Surface.
package rlwindow

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/deluxeanim/internal/logging"
	"github.com/ha1tch/deluxeanim/internal/ui"
)

var (
	ErrWindowInit = errors.New("window initialization failed")
	ErrFontLoad   = errors.New("font load failed")
)

// Config describes the window to open.
type Config struct {
	Title     string
	Width     int
	Height    int
	FPS       int
	Resizable bool
	VSync     bool
	LogLevel  slog.Level
}

// Window is an open raylib window. Only one can exist per process.
type Window struct {
	width, height int
	surface       *Surface
	lastMouse     rl.Vector2
	cursor        ui.Cursor
}

// Open creates the window and its GL context.
func Open(cfg Config) (*Window, error) {
	if cfg.LogLevel > slog.LevelDebug {
		rl.SetTraceLogLevel(rl.LogWarning)
	}

	var flags uint32
	if cfg.Resizable {
		flags |= rl.FlagWindowResizable
	}
	if cfg.VSync {
		flags |= rl.FlagVsyncHint
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	if !rl.IsWindowReady() {
		return nil, fmt.Errorf("%w: %dx%d %q", ErrWindowInit, cfg.Width, cfg.Height, cfg.Title)
	}
	if cfg.FPS > 0 {
		rl.SetTargetFPS(int32(cfg.FPS))
	}
	// Escape is used by nothing; keep it from closing the editor.
	rl.SetExitKey(rl.KeyNull)

	w := &Window{
		width:     rl.GetScreenWidth(),
		height:    rl.GetScreenHeight(),
		surface:   &Surface{},
		lastMouse: rl.GetMousePosition(),
	}
	logging.Logger().Info("window opened", "width", w.width, "height", w.height, "fps", cfg.FPS)
	return w, nil
}

// Close destroys the window.
func (w *Window) Close() {
	if rl.IsWindowReady() {
		rl.CloseWindow()
		logging.Logger().Debug("window closed")
	}
}

func (w *Window) Size() (int, int)    { return w.width, w.height }
func (w *Window) ShouldClose() bool   { return rl.WindowShouldClose() }
func (w *Window) Surface() ui.Surface { return w.surface }

// FrameTime returns the duration of the last frame.
func (w *Window) FrameTime() time.Duration {
	return time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
}

func (w *Window) BeginFrame(bg color.RGBA) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Color(bg))
}

func (w *Window) EndFrame() {
	w.surface.reset()
	rl.EndDrawing()
}

var cursors = map[ui.Cursor]int32{
	ui.CursorDefault:  rl.MouseCursorDefault,
	ui.CursorPointer:  rl.MouseCursorPointingHand,
	ui.CursorResizeEW: rl.MouseCursorResizeEW,
	ui.CursorResizeNS: rl.MouseCursorResizeNS,
}

// SetCursor switches the system cursor shape.
func (w *Window) SetCursor(c ui.Cursor) {
	if c == w.cursor {
		return
	}
	w.cursor = c
	rl.SetMouseCursor(cursors[c])
}
