// Package uitest provides test doubles for the ui package: a Surface
// that records draw calls and fonts with known metrics.
package uitest

import (
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ha1tch/deluxeanim/internal/ui"
)

// OpKind names a recorded draw call.
type OpKind string

const (
	OpFillRect   OpKind = "fill-rect"
	OpStrokeRect OpKind = "stroke-rect"
	OpLine       OpKind = "line"
	OpPoint      OpKind = "point"
	OpCircle     OpKind = "circle"
	OpText       OpKind = "text"
)

// Op is one recorded draw call.
type Op struct {
	Kind   OpKind
	Rect   ui.Rect
	From   ui.Point
	To     ui.Point
	Radius float32
	Text   string
	Color  color.RGBA
	Clip   ui.Rect
}

// Recorder is a ui.Surface that keeps every call in order.
type Recorder struct {
	Ops       []Op
	clips     []ui.Rect
	MaxDepth  int
	Unbalance int
}

var _ ui.Surface = (*Recorder)(nil)

func (r *Recorder) clip() ui.Rect {
	if len(r.clips) == 0 {
		return ui.Rect{}
	}
	return r.clips[len(r.clips)-1]
}

func (r *Recorder) add(op Op) {
	op.Clip = r.clip()
	r.Ops = append(r.Ops, op)
}

func (r *Recorder) FillRect(rect ui.Rect, c color.RGBA) {
	r.add(Op{Kind: OpFillRect, Rect: rect, Color: c})
}

func (r *Recorder) StrokeRect(rect ui.Rect, c color.RGBA) {
	r.add(Op{Kind: OpStrokeRect, Rect: rect, Color: c})
}

func (r *Recorder) DrawLine(from, to ui.Point, _ float32, c color.RGBA) {
	r.add(Op{Kind: OpLine, From: from, To: to, Color: c})
}

func (r *Recorder) DrawPoint(p ui.Point, c color.RGBA) {
	r.add(Op{Kind: OpPoint, From: p, Color: c})
}

func (r *Recorder) DrawCircle(center ui.Point, radius float32, c color.RGBA) {
	r.add(Op{Kind: OpCircle, From: center, Radius: radius, Color: c})
}

func (r *Recorder) DrawText(_ ui.Font, text string, pos ui.Point, c color.RGBA) {
	r.add(Op{Kind: OpText, Text: text, From: pos, Color: c})
}

func (r *Recorder) PushClip(rect ui.Rect) {
	if len(r.clips) > 0 {
		rect = rect.Intersect(r.clip())
	}
	r.clips = append(r.clips, rect)
	r.MaxDepth = max(r.MaxDepth, len(r.clips))
}

func (r *Recorder) PopClip() {
	if len(r.clips) == 0 {
		r.Unbalance++
		return
	}
	r.clips = r.clips[:len(r.clips)-1]
}

// Balanced reports whether every PushClip was matched by a PopClip.
func (r *Recorder) Balanced() bool {
	return len(r.clips) == 0 && r.Unbalance == 0
}

// Count returns the number of recorded ops of kind k.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Texts returns every drawn string in draw order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Reset drops all recorded ops.
func (r *Recorder) Reset() {
	r.Ops = nil
	r.clips = nil
	r.MaxDepth = 0
	r.Unbalance = 0
}

// Font measures every rune as GlyphWidth wide and LineHeight tall.
type Font struct {
	GlyphWidth float32
	LineHeight float32
}

// FixedFont returns a Font with 8x16 cells.
func FixedFont() *Font {
	return &Font{GlyphWidth: 8, LineHeight: 16}
}

func (f *Font) Measure(text string) (w, h float32) {
	return float32(len([]rune(text))) * f.GlyphWidth, f.LineHeight
}

// BasicFont returns the 7x13 bitmap face from x/image as a ui.Font.
func BasicFont() ui.Font {
	return ui.NewFaceFont(basicfont.Face7x13)
}
