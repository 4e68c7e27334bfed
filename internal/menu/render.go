package menu

import (
	"image/color"

	"github.com/ha1tch/deluxeanim/internal/ui"
)

var (
	colorBar        = ui.RGB(230, 230, 230)
	colorText       = ui.RGB(50, 50, 50)
	colorTextHover  = ui.RGB(0, 0, 0)
	colorBgHover    = ui.RGB(200, 200, 200)
	colorDropdownBg = ui.RGB(240, 240, 240)
	colorBorder     = ui.RGB(200, 200, 200)
)

// Render draws the bar and the open dropdown, if any.
func (b *Bar) Render(s ui.Surface) {
	s.FillRect(b.Rect(), colorBar)

	for _, item := range b.items {
		s.FillRect(item.Rect, ui.Lerp(colorBar, colorBgHover, item.Hover.Amount))
		b.text(s, item.Text, item.Rect, ui.Lerp(colorText, colorTextHover, item.Hover.Amount))
	}

	// Dropdowns go last so they sit above the other menus.
	if i := b.OpenIndex(); i >= 0 {
		for _, d := range b.items[i].Dropdown {
			s.FillRect(d.Rect, ui.Lerp(colorDropdownBg, colorBgHover, d.Hover.Amount))
			s.StrokeRect(d.Rect, colorBorder)
			b.text(s, d.Text, d.Rect, ui.Lerp(colorText, colorTextHover, d.Hover.Amount))
		}
	}
}

func (b *Bar) text(s ui.Surface, text string, r ui.Rect, c color.RGBA) {
	if b.font == nil {
		return
	}
	_, h := b.font.Measure(text)
	s.DrawText(b.font, text, ui.Pt(r.X+10, r.Y+(r.Height-h)/2), c)
}
