// Package ui holds the backend-neutral pieces shared by every widget:
// geometry, input events, the drawing surface contract, cursors and
// hover animation. Nothing in here talks to raylib.
package ui

import "math"

// Point is a position in window pixels.
type Point struct {
	X, Y float32
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// In reports whether p lies inside r.
func (p Point) In(r Rect) bool {
	return r.Contains(p)
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float32 {
	dx := float64(p.X - q.X)
	dy := float64(p.Y - q.Y)
	return float32(math.Hypot(dx, dy))
}

// Rect is an axis aligned rectangle, laid out like rl.Rectangle.
type Rect struct {
	X, Y, Width, Height float32
}

// R is shorthand for Rect{X: x, Y: y, Width: w, Height: h}.
func R(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Contains reports whether p is inside r. The left and top edges are
// inclusive, the right and bottom edges exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float32 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float32 { return r.Y + r.Height }

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Inset shrinks r by d on every side.
func (r Rect) Inset(d float32) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, Width: r.Width - 2*d, Height: r.Height - 2*d}
}

// Intersect returns the overlap of r and s. The result is empty when
// they do not overlap.
func (r Rect) Intersect(s Rect) Rect {
	x0 := max(r.X, s.X)
	y0 := max(r.Y, s.Y)
	x1 := min(r.Right(), s.Right())
	y1 := min(r.Bottom(), s.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Clamp limits v to [lo, hi].
func Clamp[T int | float32 | float64](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
