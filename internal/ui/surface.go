package ui

import "image/color"

// Surface is the drawing context handed to every Render call.
type Surface interface {
	FillRect(r Rect, c color.RGBA)
	StrokeRect(r Rect, c color.RGBA)
	DrawLine(from, to Point, thick float32, c color.RGBA)
	DrawPoint(p Point, c color.RGBA)
	DrawCircle(center Point, radius float32, c color.RGBA)
	DrawText(f Font, text string, pos Point, c color.RGBA)

	// PushClip restricts drawing to r intersected with the current clip
	// until the matching PopClip.
	PushClip(r Rect)
	PopClip()
}

// Font measures text. Each backend pairs it with its own glyph drawing.
type Font interface {
	Measure(text string) (w, h float32)
}

// Approximate metrics used for layout when no font is set.
const (
	fallbackGlyphWidth = 8
	fallbackLineHeight = 14
)

// MeasureText measures text with f, or estimates when f is nil so that
// hit regions still get a sensible size.
func MeasureText(f Font, text string) (w, h float32) {
	if f == nil {
		return float32(len([]rune(text)) * fallbackGlyphWidth), fallbackLineHeight
	}
	return f.Measure(text)
}

// Cursor is the pointer shape the shell should show.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorPointer
	CursorResizeEW
	CursorResizeNS
)

func (c Cursor) String() string {
	switch c {
	case CursorPointer:
		return "pointer"
	case CursorResizeEW:
		return "resize-ew"
	case CursorResizeNS:
		return "resize-ns"
	}
	return "default"
}
