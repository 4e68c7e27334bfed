package rlwindow

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/deluxeanim/internal/ui"
)

// Surface draws through raylib. It is only valid between BeginFrame and
// EndFrame.
type Surface struct {
	clips []ui.Rect
}

var _ ui.Surface = (*Surface)(nil)

func rect(r ui.Rect) rl.Rectangle {
	return rl.Rectangle{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

func vec(p ui.Point) rl.Vector2 {
	return rl.Vector2{X: p.X, Y: p.Y}
}

func (s *Surface) FillRect(r ui.Rect, c color.RGBA) {
	rl.DrawRectangleRec(rect(r), rl.Color(c))
}

func (s *Surface) StrokeRect(r ui.Rect, c color.RGBA) {
	rl.DrawRectangleLinesEx(rect(r), 1, rl.Color(c))
}

func (s *Surface) DrawLine(from, to ui.Point, thick float32, c color.RGBA) {
	rl.DrawLineEx(vec(from), vec(to), thick, rl.Color(c))
}

func (s *Surface) DrawPoint(p ui.Point, c color.RGBA) {
	rl.DrawPixelV(vec(p), rl.Color(c))
}

func (s *Surface) DrawCircle(center ui.Point, radius float32, c color.RGBA) {
	rl.DrawCircleLines(int32(center.X), int32(center.Y), radius, rl.Color(c))
}

// DrawText uses f when it is a loaded raylib font and raylib's built-in
// font otherwise.
func (s *Surface) DrawText(f ui.Font, text string, pos ui.Point, c color.RGBA) {
	if font, ok := f.(*Font); ok && font != nil {
		rl.DrawTextEx(font.font, text, vec(pos), font.size, font.spacing, rl.Color(c))
		return
	}
	rl.DrawText(text, int32(pos.X), int32(pos.Y), defaultFontSize, rl.Color(c))
}

// raylib's scissor mode does not nest, so the stack is kept here and
// the intersection of every open clip is applied.
func (s *Surface) PushClip(r ui.Rect) {
	if n := len(s.clips); n > 0 {
		r = r.Intersect(s.clips[n-1])
		rl.EndScissorMode()
	}
	s.clips = append(s.clips, r)
	scissor(r)
}

func (s *Surface) PopClip() {
	if len(s.clips) == 0 {
		return
	}
	s.clips = s.clips[:len(s.clips)-1]
	rl.EndScissorMode()
	if n := len(s.clips); n > 0 {
		scissor(s.clips[n-1])
	}
}

func (s *Surface) reset() {
	if len(s.clips) > 0 {
		rl.EndScissorMode()
	}
	s.clips = s.clips[:0]
}

func scissor(r ui.Rect) {
	rl.BeginScissorMode(int32(r.X), int32(r.Y), int32(max(r.Width, 0)), int32(max(r.Height, 0)))
}
