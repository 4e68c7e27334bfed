package rlwindow

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/deluxeanim/internal/ui"
)

var keys = map[int32]ui.Key{
	rl.KeySpace: ui.KeySpace,
	rl.KeyLeft:  ui.KeyLeft,
	rl.KeyRight: ui.KeyRight,
	rl.KeyHome:  ui.KeyHome,
	rl.KeyA:     ui.KeyA,
	rl.KeyK:     ui.KeyK,
	rl.KeyL:     ui.KeyL,
	rl.KeyY:     ui.KeyY,
	rl.KeyZ:     ui.KeyZ,
	rl.KeyEqual: ui.KeyEqual,
	rl.KeyMinus: ui.KeyMinus,
}

func modifiers() ui.Modifiers {
	var m ui.Modifiers
	if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) {
		m |= ui.ModShift
	}
	if rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) {
		m |= ui.ModCtrl
	}
	return m
}

// PollEvents drains this frame's input. raylib polls rather than
// queues, so state changes are turned into events here: resize first,
// then pointer motion, buttons, wheel and keys.
func (w *Window) PollEvents() []ui.Event {
	var events []ui.Event
	mods := modifiers()

	if rl.IsWindowResized() {
		w.width, w.height = rl.GetScreenWidth(), rl.GetScreenHeight()
		events = append(events, ui.Resized(w.width, w.height))
	}

	mouse := rl.GetMousePosition()
	pos := ui.Pt(mouse.X, mouse.Y)
	if mouse != w.lastMouse {
		w.lastMouse = mouse
		events = append(events, ui.Event{Kind: ui.EventPointerMove, Pos: pos, Mods: mods})
	}
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		events = append(events, ui.Event{Kind: ui.EventPointerDown, Pos: pos, Mods: mods})
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		events = append(events, ui.Event{Kind: ui.EventPointerUp, Pos: pos, Mods: mods})
	}

	if wheel := rl.GetMouseWheelMoveV(); wheel.X != 0 || wheel.Y != 0 {
		events = append(events, ui.WheelAt(pos.X, pos.Y, wheel.X, wheel.Y, mods))
	}

	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		if key, ok := keys[k]; ok {
			events = append(events, ui.KeyDown(key, mods))
		}
	}
	return events
}
