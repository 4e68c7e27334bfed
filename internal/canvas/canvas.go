// Package canvas is the drawing area. Strokes belong to a (layer,
// frame) cell of the timeline; the canvas shows every layer's strokes
// for the current frame.
package canvas

import (
	"image/color"

	"github.com/ha1tch/deluxeanim/internal/ui"
)

// Tool types
type Tool int

const (
	ToolPencil Tool = iota
	ToolPen
	ToolLine
	ToolRectangle
	ToolCircle
	ToolEraser
)

var toolNames = []string{"Pencil", "Pen", "Line", "Rectangle", "Circle", "Eraser"}

func (t Tool) String() string {
	if int(t) >= 0 && int(t) < len(toolNames) {
		return toolNames[t]
	}
	return "Unknown"
}

// ToolByName maps a toolbar or menu label to a tool.
func ToolByName(name string) (Tool, bool) {
	for i, n := range toolNames {
		if n == name {
			return Tool(i), true
		}
	}
	return 0, false
}

// freehand tools add a point per pointer move; the others only track
// the start and end of the drag.
func (t Tool) freehand() bool {
	return t == ToolPencil || t == ToolPen || t == ToolEraser
}

func (t Tool) width() float32 {
	switch t {
	case ToolPen:
		return 4
	case ToolEraser:
		return 8
	}
	return 1
}

var (
	Background = ui.RGB(250, 250, 250)
	Ink        = ui.RGB(0, 0, 0)
)

// Key addresses the cell a stroke belongs to.
type Key struct {
	Layer, Frame int
}

// Stroke is one committed drag. Points are relative to the canvas
// origin so strokes stay put when the canvas is resized.
type Stroke struct {
	Tool   Tool
	Points []ui.Point
	Color  color.RGBA
	Width  float32
}

type commit struct {
	key    Key
	stroke Stroke
}

// Canvas holds the strokes of every cell and the undo history.
type Canvas struct {
	bounds ui.Rect
	tool   Tool
	color  color.RGBA

	strokes map[Key][]Stroke
	history []commit
	redo    []commit

	drawing bool
	current Stroke
	key     Key
}

// New returns an empty canvas with the pencil selected.
func New() *Canvas {
	return &Canvas{
		tool:    ToolPencil,
		color:   Ink,
		strokes: make(map[Key][]Stroke),
	}
}

func (c *Canvas) SetBounds(r ui.Rect)       { c.bounds = r }
func (c *Canvas) Bounds() ui.Rect           { return c.bounds }
func (c *Canvas) Contains(pt ui.Point) bool { return pt.In(c.bounds) }
func (c *Canvas) Tool() Tool                { return c.tool }
func (c *Canvas) SetColor(col color.RGBA)   { c.color = col }
func (c *Canvas) Drawing() bool             { return c.drawing }
func (c *Canvas) CanUndo() bool             { return len(c.history) > 0 }
func (c *Canvas) CanRedo() bool             { return len(c.redo) > 0 }
func (c *Canvas) Strokes(layer, frame int) []Stroke {
	return c.strokes[Key{Layer: layer, Frame: frame}]
}

// SetTool switches tools. A stroke in progress is dropped.
func (c *Canvas) SetTool(t Tool) {
	c.tool = t
	c.drawing = false
}

// HandleEvent draws into the cell (layer, frame).
func (c *Canvas) HandleEvent(e ui.Event, layer, frame int) {
	switch e.Kind {
	case ui.EventPointerDown:
		if !c.Contains(e.Pos) {
			return
		}
		p := c.local(e.Pos)
		c.drawing = true
		c.key = Key{Layer: layer, Frame: frame}
		c.current = Stroke{
			Tool:   c.tool,
			Points: []ui.Point{p, p},
			Color:  c.color,
			Width:  c.tool.width(),
		}
		if c.tool == ToolEraser {
			c.current.Color = Background
		}
	case ui.EventPointerMove:
		if !c.drawing {
			return
		}
		p := c.local(c.clampToBounds(e.Pos))
		if c.tool.freehand() {
			if last := c.current.Points[len(c.current.Points)-1]; last != p {
				c.current.Points = append(c.current.Points, p)
			}
			return
		}
		c.current.Points[1] = p
	case ui.EventPointerUp:
		if !c.drawing {
			return
		}
		c.drawing = false
		if !c.tool.freehand() {
			c.current.Points[1] = c.local(c.clampToBounds(e.Pos))
		}
		c.commit(c.key, c.current)
	}
}

func (c *Canvas) local(pt ui.Point) ui.Point {
	return pt.Sub(ui.Pt(c.bounds.X, c.bounds.Y))
}

func (c *Canvas) clampToBounds(pt ui.Point) ui.Point {
	return ui.Pt(
		ui.Clamp(pt.X, c.bounds.X, c.bounds.Right()),
		ui.Clamp(pt.Y, c.bounds.Y, c.bounds.Bottom()),
	)
}

func (c *Canvas) commit(k Key, s Stroke) {
	c.strokes[k] = append(c.strokes[k], s)
	c.history = append(c.history, commit{key: k, stroke: s})
	c.redo = nil
}

// Undo removes the most recent stroke. It reports whether there was one.
func (c *Canvas) Undo() bool {
	if len(c.history) == 0 {
		return false
	}
	last := c.history[len(c.history)-1]
	c.history = c.history[:len(c.history)-1]

	strokes := c.strokes[last.key]
	c.strokes[last.key] = strokes[:len(strokes)-1]
	if len(c.strokes[last.key]) == 0 {
		delete(c.strokes, last.key)
	}
	c.redo = append(c.redo, last)
	return true
}

// Redo restores the most recently undone stroke.
func (c *Canvas) Redo() bool {
	if len(c.redo) == 0 {
		return false
	}
	next := c.redo[len(c.redo)-1]
	c.redo = c.redo[:len(c.redo)-1]
	c.strokes[next.key] = append(c.strokes[next.key], next.stroke)
	c.history = append(c.history, next)
	return true
}

// Clear drops every stroke and the history.
func (c *Canvas) Clear() {
	c.strokes = make(map[Key][]Stroke)
	c.history = nil
	c.redo = nil
	c.drawing = false
}
