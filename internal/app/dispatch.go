package app

import (
	"github.com/ha1tch/deluxeanim/internal/canvas"
	"github.com/ha1tch/deluxeanim/internal/logging"
	"github.com/ha1tch/deluxeanim/internal/menu"
	"github.com/ha1tch/deluxeanim/internal/ui"
)

// HandleEvent routes one input event.
func (a *App) HandleEvent(e ui.Event) {
	switch e.Kind {
	case ui.EventResize:
		a.resize(e)
	case ui.EventPointerMove:
		a.pointerMove(e)
	case ui.EventPointerDown:
		a.pointer = e.Pos
		a.pointerDown(e)
	case ui.EventPointerUp:
		a.pointer = e.Pos
		a.toolbar.HandleUp()
		a.panel.HandleEvent(e)
		a.canvas.HandleEvent(e, a.panel.ActiveLayer(), a.panel.CurrentFrame())
	case ui.EventWheel:
		if a.panel.Contains(e.Pos) {
			a.panel.HandleEvent(e)
		}
	case ui.EventKeyDown:
		a.keyDown(e)
	}
	a.layout()
}

func (a *App) resize(e ui.Event) {
	a.width, a.height = e.Width, e.Height
	a.menu.Resize(e.Width)
	a.toolbar.Resize(e.Width, e.Height)
	a.panel.HandleEvent(e)
	logging.Logger().Debug("window resized", "width", e.Width, "height", e.Height)
}

func (a *App) pointerMove(e ui.Event) {
	a.pointer = e.Pos
	a.menu.HandleMotion(e.Pos)
	a.toolbar.HandleMotion(e.Pos)
	a.panel.HandleEvent(e)
	a.canvas.HandleEvent(e, a.panel.ActiveLayer(), a.panel.CurrentFrame())
}

// pointerDown goes to the first region that claims the point: the
// toolbar's resize edge, the menu bar and its open dropdown, the
// toolbar, the panel and finally the canvas.
func (a *App) pointerDown(e ui.Event) {
	pt := e.Pos
	if a.toolbar.OnEdge(pt) {
		a.menu.CloseAll()
		a.toolbar.BeginResize(pt.Y)
		return
	}
	if a.menu.Contains(pt) {
		a.perform(a.menu.HandleClick(pt))
		return
	}
	a.menu.CloseAll()

	switch {
	case a.toolbar.Contains(pt):
		if i, ok := a.toolbar.HandleClick(pt); ok {
			a.toolbarClick(i)
		}
	case a.panel.Contains(pt):
		a.panel.HandleEvent(e)
	default:
		a.canvas.HandleEvent(e, a.panel.ActiveLayer(), a.panel.CurrentFrame())
	}
}

func (a *App) keyDown(e ui.Event) {
	if e.Mods.Has(ui.ModCtrl) {
		switch e.Key {
		case ui.KeyZ:
			a.canvas.Undo()
		case ui.KeyY:
			a.canvas.Redo()
		}
		return
	}
	a.panel.HandleEvent(e)
}

func (a *App) toolbarClick(i int) {
	name := a.toolbar.Items()[i].Text
	if tool, ok := canvas.ToolByName(name); ok {
		a.canvas.SetTool(tool)
		a.toolbar.Select(i)
		return
	}
	switch name {
	case "Undo":
		a.canvas.Undo()
	case "Redo":
		a.canvas.Redo()
	default:
		logging.Logger().Debug("toolbar item has no action", "item", name)
	}
}

var menuTools = map[menu.Action]canvas.Tool{
	menu.ActionToolPencil:    canvas.ToolPencil,
	menu.ActionToolLine:      canvas.ToolLine,
	menu.ActionToolRectangle: canvas.ToolRectangle,
	menu.ActionToolCircle:    canvas.ToolCircle,
	menu.ActionToolEraser:    canvas.ToolEraser,
}

func (a *App) perform(act menu.Action) {
	if tool, ok := menuTools[act]; ok {
		a.canvas.SetTool(tool)
		a.selectToolItem(tool)
		return
	}
	switch act {
	case menu.ActionNone:
	case menu.ActionNew:
		a.canvas.Clear()
	case menu.ActionQuit:
		a.quit = true
	case menu.ActionUndo:
		a.canvas.Undo()
	case menu.ActionRedo:
		a.canvas.Redo()
	case menu.ActionAddLayer:
		a.panel.AddLayer()
	case menu.ActionAddFrame:
		a.panel.AddColumn()
	case menu.ActionTogglePlayback:
		a.panel.TogglePlayback()
	case menu.ActionAbout:
		logging.Logger().Info("Deluxe Anim: layered frame-by-frame animation editor")
	}
}

// selectToolItem highlights the toolbar item named after t, or clears
// the highlight when the toolbar has no such item.
func (a *App) selectToolItem(t canvas.Tool) {
	for i, item := range a.toolbar.Items() {
		if item.Text == t.String() {
			a.toolbar.Select(i)
			return
		}
	}
	a.toolbar.Select(-1)
}
