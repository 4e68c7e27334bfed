// Package toolbar implements the tool strip docked to the bottom of the
// window. Its height can be dragged from the top edge.
package toolbar

import (
	"time"

	"github.com/ha1tch/deluxeanim/internal/ui"
)

const (
	DefaultHeight = 30
	MinHeight     = 20

	// MaxHeightFraction caps the toolbar at this share of the space
	// below the menu bar.
	MaxHeightFraction = 0.5

	// EdgeSlop is how far from the top edge a press still starts a
	// resize.
	EdgeSlop = 5

	itemPadding = 20
	startX      = 10
)

// DefaultItems are the tools shown when no configuration overrides them.
var DefaultItems = []string{"Pencil", "Pen", "Rectangle", "Circle", "Eraser", "Redo", "Undo"}

// Item is one labelled button.
type Item struct {
	Text     string
	Rect     ui.Rect
	Hover    ui.Hover
	Selected bool
}

// Toolbar is the bottom tool strip.
type Toolbar struct {
	font  ui.Font
	items []Item

	windowWidth  int
	windowHeight int

	height    int
	minHeight int
	maxHeight int

	resizing     bool
	resizeStartY float32
}

// New creates a toolbar with the given labels and height.
func New(items []string, height int) *Toolbar {
	t := &Toolbar{
		height:    max(height, MinHeight),
		minHeight: MinHeight,
		maxHeight: max(height, MinHeight),
	}
	for _, text := range items {
		t.items = append(t.items, Item{Text: text})
	}
	return t
}

// SetFont changes the label font.
func (t *Toolbar) SetFont(f ui.Font) {
	t.font = f
	t.Layout()
}

// Resize follows a window size change.
func (t *Toolbar) Resize(windowWidth, windowHeight int) {
	t.windowWidth = windowWidth
	t.windowHeight = windowHeight
	t.Layout()
}

// Layout lays the items out left to right along the strip.
func (t *Toolbar) Layout() {
	top := t.Top()
	x := float32(startX)
	for i := range t.items {
		w, _ := ui.MeasureText(t.font, t.items[i].Text)
		t.items[i].Rect = ui.R(x, top, w+itemPadding, float32(t.height))
		x += w + itemPadding
	}
}

func (t *Toolbar) Height() int               { return t.height }
func (t *Toolbar) MaxHeight() int            { return t.maxHeight }
func (t *Toolbar) Resizing() bool            { return t.resizing }
func (t *Toolbar) Items() []Item             { return t.items }
func (t *Toolbar) Top() float32              { return float32(t.windowHeight - t.height) }
func (t *Toolbar) Rect() ui.Rect             { return ui.R(0, t.Top(), float32(t.windowWidth), float32(t.height)) }
func (t *Toolbar) Contains(pt ui.Point) bool { return pt.In(t.Rect()) }

// OnEdge reports whether pt is within EdgeSlop of the top edge.
func (t *Toolbar) OnEdge(pt ui.Point) bool {
	top := t.Top()
	return pt.Y > top-EdgeSlop && pt.Y < top+EdgeSlop &&
		pt.X >= 0 && pt.X < float32(t.windowWidth)
}

// BeginResize starts a height drag at y.
func (t *Toolbar) BeginResize(y float32) {
	t.resizing = true
	t.resizeStartY = y
}

// HandleMotion updates hover flags and, while resizing, the height.
func (t *Toolbar) HandleMotion(pt ui.Point) {
	if t.resizing {
		dy := int(pt.Y - t.resizeStartY)
		if dy != 0 {
			t.resizeStartY += float32(dy)
			t.AdjustHeight(dy)
		}
	}
	for i := range t.items {
		t.items[i].Hover.Hovered = pt.In(t.items[i].Rect)
	}
}

// HandleUp ends a resize drag.
func (t *Toolbar) HandleUp() {
	t.resizing = false
}

// HandleClick returns the index of the item under pt.
func (t *Toolbar) HandleClick(pt ui.Point) (int, bool) {
	if !t.Contains(pt) {
		return -1, false
	}
	for i := range t.items {
		if pt.In(t.items[i].Rect) {
			return i, true
		}
	}
	return -1, false
}

// Select marks item i as the active tool. Out of range clears the
// selection.
func (t *Toolbar) Select(i int) {
	for j := range t.items {
		t.items[j].Selected = j == i
	}
}

// Selected returns the selected item index, or -1.
func (t *Toolbar) Selected() int {
	for i, item := range t.items {
		if item.Selected {
			return i
		}
	}
	return -1
}

// AdjustHeight applies a drag of dy pixels. Dragging up grows the strip.
func (t *Toolbar) AdjustHeight(dy int) {
	t.height = ui.Clamp(t.height-dy, t.minHeight, max(t.maxHeight, t.minHeight))
	t.Layout()
}

// Update recomputes the height limit from the space under the menu bar
// and advances hover animations.
func (t *Toolbar) Update(dt time.Duration, menuBarHeight int) {
	avail := t.windowHeight - menuBarHeight
	t.maxHeight = max(int(float64(avail)*MaxHeightFraction), t.minHeight)
	if t.height > t.maxHeight {
		t.height = t.maxHeight
	}
	t.Layout()
	for i := range t.items {
		t.items[i].Hover.Update(dt)
	}
}

// DesiredCursor returns the vertical resize cursor on the edge and the
// pointing hand over items.
func (t *Toolbar) DesiredCursor(pt ui.Point) ui.Cursor {
	if t.resizing || t.OnEdge(pt) {
		return ui.CursorResizeNS
	}
	if _, ok := t.HandleClick(pt); ok {
		return ui.CursorPointer
	}
	return ui.CursorDefault
}
