package toolbar

import "github.com/ha1tch/deluxeanim/internal/ui"

var (
	colorBar      = ui.RGB(240, 240, 240)
	colorBorder   = ui.RGB(220, 220, 220)
	colorItemOver = ui.RGB(255, 255, 255)
	colorSelected = ui.RGB(200, 210, 240)
	colorText     = ui.RGB(80, 80, 80)
	colorTextOver = ui.RGB(50, 50, 50)
)

// Render draws the strip, its top border and the items.
func (t *Toolbar) Render(s ui.Surface) {
	r := t.Rect()
	s.FillRect(r, colorBar)
	s.FillRect(ui.R(0, r.Y-1, r.Width, 1), colorBorder)

	s.PushClip(r)
	defer s.PopClip()
	for _, item := range t.items {
		bg := ui.Lerp(colorBar, colorItemOver, item.Hover.Amount)
		if item.Selected {
			bg = colorSelected
		}
		s.FillRect(item.Rect, bg)
		if t.font == nil {
			continue
		}
		_, h := t.font.Measure(item.Text)
		pos := ui.Pt(item.Rect.X+itemPadding/2, item.Rect.Y+(item.Rect.Height-h)/2)
		s.DrawText(t.font, item.Text, pos, ui.Lerp(colorText, colorTextOver, item.Hover.Amount))
	}
}
