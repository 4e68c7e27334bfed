package timeline

import (
	"fmt"
	"image/color"

	"github.com/ha1tch/deluxeanim/internal/ui"
)

var (
	colorPanel      = ui.RGB(50, 50, 50)
	colorHeader     = ui.RGB(40, 40, 40)
	colorRow        = ui.RGB(60, 60, 60)
	colorRowActive  = ui.RGB(80, 80, 120)
	colorCellEven   = ui.RGB(58, 58, 58)
	colorCellOdd    = ui.RGB(66, 66, 66)
	colorCellActive = ui.RGB(100, 100, 150)
	colorGridLine   = ui.RGB(45, 45, 45)
	colorKeyframe   = ui.RGB(230, 200, 80)
	colorPlayhead   = ui.RGB(220, 60, 60)
	colorButton     = ui.RGB(70, 70, 70)
	colorBorder     = ui.RGB(90, 90, 90)
	colorGlyph      = ui.RGB(230, 230, 230)
	colorGrip       = ui.RGB(90, 90, 90)
	colorGripActive = ui.RGB(120, 120, 170)
	colorText       = ui.RGB(255, 255, 255)
	colorTextDim    = ui.RGB(200, 200, 200)
)

// Render draws the panel. It only reads state.
func (p *Panel) Render(s ui.Surface) {
	l := p.ComputeLayout()
	if l.Panel.Empty() {
		return
	}
	s.FillRect(l.Panel, colorPanel)

	p.renderHeader(s, l)
	p.renderLayers(s, l)
	p.renderGrid(s, l)
	p.renderTransport(s, l)
	p.renderGrip(s, l)
}

func (p *Panel) renderHeader(s ui.Surface, l Layout) {
	s.FillRect(l.Header, colorHeader)
	s.PushClip(l.Header)
	defer s.PopClip()

	p.label(s, "Layers", ui.Pt(l.Header.X+8, l.Header.Y), headerHeight, colorTextDim)

	// Column labels scroll with the grid but never draw over the layer
	// name strip.
	s.PushClip(ui.R(l.Grid.X, l.Header.Y, l.Grid.Width, l.Header.Height))
	for j, r := range l.Columns {
		s.StrokeRect(r, colorGridLine)
		p.label(s, p.columns[j], ui.Pt(r.X+4, r.Y), headerHeight, colorTextDim)
	}
	s.FillRect(l.AddColumn, colorButton)
	s.StrokeRect(l.AddColumn, colorBorder)
	plus(s, l.AddColumn, colorGlyph)
	s.PopClip()
}

func (p *Panel) renderLayers(s ui.Surface, l Layout) {
	s.PushClip(l.LayerColumn)
	defer s.PopClip()

	for i, r := range l.Rows {
		bg := colorRow
		if i == p.activeLayer {
			bg = colorRowActive
		}
		s.FillRect(r, bg)
		s.StrokeRect(r, colorGridLine)
		p.label(s, p.layers[i], ui.Pt(r.X+8, r.Y), rowHeight, colorText)
	}

	s.FillRect(l.AddLayer, colorButton)
	s.StrokeRect(l.AddLayer, colorBorder)
	p.label(s, "+ Layer", ui.Pt(l.AddLayer.X+6, l.AddLayer.Y), l.AddLayer.Height, colorTextDim)
}

func (p *Panel) renderGrid(s ui.Surface, l Layout) {
	s.PushClip(l.Grid)
	defer s.PopClip()

	for i := range p.layers {
		for j := range p.columns {
			r := l.Cell(i, j)
			bg := colorCellEven
			if (i+j)%2 == 1 {
				bg = colorCellOdd
			}
			if i == p.activeLayer && j == p.currentFrame {
				bg = colorCellActive
			}
			s.FillRect(r, bg)
			s.StrokeRect(r, colorGridLine)
			if p.IsKeyframe(i, j) {
				s.DrawCircle(r.Center(), 5, colorKeyframe)
			}
		}
	}

	// The playhead is drawn even past the last column.
	x := l.Cell(0, p.currentFrame).Center().X
	s.DrawLine(ui.Pt(x, l.Grid.Y), ui.Pt(x, l.Grid.Bottom()), 2, colorPlayhead)
	s.DrawPoint(ui.Pt(x, l.Grid.Y), colorPlayhead)
}

func (p *Panel) renderTransport(s ui.Surface, l Layout) {
	s.FillRect(l.Transport, colorHeader)
	s.DrawLine(ui.Pt(l.Transport.X, l.Transport.Y), ui.Pt(l.Transport.Right(), l.Transport.Y), 1, colorBorder)

	for _, r := range []ui.Rect{l.Rewind, l.PlayPause, l.Forward} {
		s.FillRect(r, colorButton)
		s.StrokeRect(r, colorBorder)
	}

	// Rewind: bar then a left-pointing triangle.
	g := l.Rewind.Inset(6)
	s.FillRect(ui.R(g.X, g.Y, 2, g.Height), colorGlyph)
	triangle(s, ui.R(g.X+3, g.Y, g.Width-3, g.Height), false, colorGlyph)

	g = l.PlayPause.Inset(6)
	if p.playing {
		s.FillRect(ui.R(g.X+1, g.Y, 4, g.Height), colorGlyph)
		s.FillRect(ui.R(g.Right()-5, g.Y, 4, g.Height), colorGlyph)
	} else {
		triangle(s, g, true, colorGlyph)
	}

	g = l.Forward.Inset(6)
	triangle(s, ui.R(g.X, g.Y, g.Width-3, g.Height), true, colorGlyph)
	s.FillRect(ui.R(g.Right()-2, g.Y, 2, g.Height), colorGlyph)

	if p.font != nil {
		text := fmt.Sprintf("Frame: %d", p.currentFrame)
		if p.speed != 1 {
			text += fmt.Sprintf("  %.2gx", p.speed)
		}
		s.DrawText(p.font, text, l.FrameLabel, colorText)
	}
}

func (p *Panel) renderGrip(s ui.Surface, l Layout) {
	c := colorGrip
	if p.resizing {
		c = colorGripActive
	}
	s.FillRect(l.Grip, c)
}

// label draws text vertically centred in a band of height h starting
// at pos. Without a font it draws nothing.
func (p *Panel) label(s ui.Surface, text string, pos ui.Point, h float32, c color.RGBA) {
	if p.font == nil {
		return
	}
	_, th := p.font.Measure(text)
	s.DrawText(p.font, text, ui.Pt(pos.X, pos.Y+(h-th)/2), c)
}

func triangle(s ui.Surface, r ui.Rect, right bool, c color.RGBA) {
	tip := ui.Pt(r.Right(), r.Center().Y)
	a, b := ui.Pt(r.X, r.Y), ui.Pt(r.X, r.Bottom())
	if !right {
		tip = ui.Pt(r.X, r.Center().Y)
		a, b = ui.Pt(r.Right(), r.Y), ui.Pt(r.Right(), r.Bottom())
	}
	s.DrawLine(a, b, 1, c)
	s.DrawLine(b, tip, 1, c)
	s.DrawLine(tip, a, 1, c)
}

func plus(s ui.Surface, r ui.Rect, c color.RGBA) {
	ctr := r.Center()
	s.DrawLine(ui.Pt(ctr.X-5, ctr.Y), ui.Pt(ctr.X+5, ctr.Y), 2, c)
	s.DrawLine(ui.Pt(ctr.X, ctr.Y-5), ui.Pt(ctr.X, ctr.Y+5), 2, c)
}
