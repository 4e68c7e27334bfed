package canvas

import (
	"math"

	"github.com/ha1tch/deluxeanim/internal/ui"
)

// Render paints the background, then the strokes of frame for layers
// 0..layers-1 bottom to top, then the stroke being drawn.
func (c *Canvas) Render(s ui.Surface, layers, frame int) {
	if c.bounds.Empty() {
		return
	}
	s.PushClip(c.bounds)
	defer s.PopClip()

	s.FillRect(c.bounds, Background)
	origin := ui.Pt(c.bounds.X, c.bounds.Y)
	for layer := 0; layer < layers; layer++ {
		for _, st := range c.strokes[Key{Layer: layer, Frame: frame}] {
			drawStroke(s, st, origin)
		}
	}
	if c.drawing {
		drawStroke(s, c.current, origin)
	}
}

func drawStroke(s ui.Surface, st Stroke, origin ui.Point) {
	pts := make([]ui.Point, len(st.Points))
	for i, p := range st.Points {
		pts[i] = p.Add(origin)
	}
	start, end := pts[0], pts[len(pts)-1]

	switch st.Tool {
	case ToolPencil, ToolPen:
		if len(pts) == 2 && start == end {
			s.DrawPoint(start, st.Color)
			return
		}
		for i := 1; i < len(pts); i++ {
			s.DrawLine(pts[i-1], pts[i], st.Width, st.Color)
		}
	case ToolEraser:
		for i := 1; i < len(pts); i++ {
			drawSquareLine(s, pts[i-1], pts[i], st.Width, st)
		}
	case ToolLine:
		s.DrawLine(start, end, st.Width, st.Color)
	case ToolRectangle:
		x := min(start.X, end.X)
		y := min(start.Y, end.Y)
		w := abs(end.X - start.X)
		h := abs(end.Y - start.Y)
		s.StrokeRect(ui.R(x, y, w, h), st.Color)
	case ToolCircle:
		center := ui.Pt((start.X+end.X)/2, (start.Y+end.Y)/2)
		s.DrawCircle(center, start.Dist(end)/2, st.Color)
	}
}

// drawSquareLine stamps a size x size square at every step of a
// Bresenham walk from start to end.
func drawSquareLine(s ui.Surface, start, end ui.Point, size float32, st Stroke) {
	x0, y0 := round(start.X), round(start.Y)
	x1, y1 := round(end.X), round(end.Y)

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := float32(1)
	sy := float32(1)
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	for {
		s.FillRect(ui.R(x0-size/2, y0-size/2, size, size), st.Color)

		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(a float32) float32 {
	if a < 0 {
		return -a
	}
	return a
}

func round(a float32) float32 {
	return float32(math.Round(float64(a)))
}
