package timeline

import (
	"math"

	"github.com/ha1tch/deluxeanim/internal/ui"
)

// HandleEvent applies one input event. Input outside the panel's active
// regions is ignored.
func (p *Panel) HandleEvent(e ui.Event) {
	switch e.Kind {
	case ui.EventPointerDown:
		p.pointerDown(e.Pos)
	case ui.EventPointerMove:
		if p.resizing {
			p.dragResize(e.Pos.X)
		}
	case ui.EventPointerUp:
		p.resizing = false
	case ui.EventWheel:
		p.wheel(e.Wheel.Y, e.Mods.Has(ui.ModShift))
	case ui.EventKeyDown:
		p.keyDown(e.Key)
	case ui.EventResize:
		p.Resize(e.Width, e.Height)
	}
}

func (p *Panel) pointerDown(pt ui.Point) {
	l := p.ComputeLayout()
	switch {
	case pt.In(l.Handle):
		p.resizing = true
		p.anchorX = pt.X
	case pt.In(l.AddLayer) && pt.In(l.LayerColumn):
		p.AddLayer()
	case pt.In(l.LayerColumn):
		p.SelectLayer(l.rowAt(pt.Y))
	case pt.In(l.AddColumn) && pt.In(l.Header):
		p.AddColumn()
	case pt.In(l.Transport):
		p.transportClick(pt, l)
	case pt.In(l.Grid):
		c := l.CellAt(pt)
		if c.Layer >= 0 && c.Layer < len(p.layers) && c.Frame >= 0 && c.Frame < len(p.columns) {
			p.SelectCell(c.Layer, c.Frame)
		}
	}
}

func (p *Panel) transportClick(pt ui.Point, l Layout) {
	switch {
	case pt.In(l.Rewind):
		p.Rewind()
	case pt.In(l.PlayPause):
		p.TogglePlayback()
	case pt.In(l.Forward):
		p.StepForward()
	}
}

// dragResize grows the panel when the grip moves left. The anchor
// follows the pointer so each move applies only its own delta.
func (p *Panel) dragResize(x float32) {
	delta := int(math.Round(float64(x - p.anchorX)))
	p.panelWidth = clampWidth(p.panelWidth-delta, p.screenWidth)
	p.anchorX = x
}

func (p *Panel) wheel(dy float32, shift bool) {
	step := int(math.Round(float64(-dy * ScrollStep)))
	if shift {
		p.scrollX = max(p.scrollX+step, 0)
		return
	}
	p.scrollY = max(p.scrollY+step, 0)
}

func (p *Panel) keyDown(k ui.Key) {
	switch k {
	case ui.KeySpace:
		p.TogglePlayback()
	case ui.KeyL:
		p.AddLayer()
	case ui.KeyA:
		p.AddColumn()
	case ui.KeyK:
		p.ToggleKeyframe(p.activeLayer, p.currentFrame)
	case ui.KeyRight:
		p.StepForward()
	case ui.KeyLeft:
		p.StepBack()
	case ui.KeyHome:
		p.Rewind()
	case ui.KeyEqual:
		p.SetSpeed(math.Min(p.speed+SpeedStep, MaxSpeed))
	case ui.KeyMinus:
		p.SetSpeed(math.Max(p.speed-SpeedStep, MinSpeed))
	}
}
