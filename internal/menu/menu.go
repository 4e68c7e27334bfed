// Package menu implements the top menu bar and its dropdowns.
package menu

import (
	"time"

	"github.com/ha1tch/deluxeanim/internal/ui"
)

const (
	BarHeight      = 30
	DropdownWidth  = 150
	DropdownHeight = 30
	itemPadding    = 20
	barStartX      = 10
)

// Action is what a dropdown entry asks the application to do.
type Action int

const (
	ActionNone Action = iota
	ActionNew
	ActionQuit
	ActionUndo
	ActionRedo
	ActionToolPencil
	ActionToolLine
	ActionToolRectangle
	ActionToolCircle
	ActionToolEraser
	ActionAddLayer
	ActionAddFrame
	ActionTogglePlayback
	ActionAbout
)

// DropdownItem is one entry of an open menu.
type DropdownItem struct {
	Text   string
	Action Action
	Rect   ui.Rect
	Hover  ui.Hover
}

// Item is a top-level menu.
type Item struct {
	Text     string
	Rect     ui.Rect
	Hover    ui.Hover
	Open     bool
	Dropdown []DropdownItem
}

// DefaultItems returns the editor's menus.
func DefaultItems() []Item {
	return []Item{
		{Text: "File", Dropdown: []DropdownItem{
			{Text: "New", Action: ActionNew},
			{Text: "Quit", Action: ActionQuit},
		}},
		{Text: "Edit", Dropdown: []DropdownItem{
			{Text: "Undo", Action: ActionUndo},
			{Text: "Redo", Action: ActionRedo},
		}},
		{Text: "Tools", Dropdown: []DropdownItem{
			{Text: "Pencil", Action: ActionToolPencil},
			{Text: "Line", Action: ActionToolLine},
			{Text: "Rectangle", Action: ActionToolRectangle},
			{Text: "Circle", Action: ActionToolCircle},
			{Text: "Eraser", Action: ActionToolEraser},
		}},
		{Text: "Timeline", Dropdown: []DropdownItem{
			{Text: "Add Layer", Action: ActionAddLayer},
			{Text: "Add Frame", Action: ActionAddFrame},
			{Text: "Play/Pause", Action: ActionTogglePlayback},
		}},
		{Text: "Help", Dropdown: []DropdownItem{
			{Text: "About", Action: ActionAbout},
		}},
	}
}

// Bar is the menu bar. At most one dropdown is open at a time.
type Bar struct {
	font  ui.Font
	items []Item
	width int
}

// New creates a menu bar with the default menus.
func New(font ui.Font, windowWidth int) *Bar {
	return NewWithItems(font, windowWidth, DefaultItems())
}

// NewWithItems creates a menu bar with the given menus.
func NewWithItems(font ui.Font, windowWidth int, items []Item) *Bar {
	b := &Bar{font: font, items: items, width: windowWidth}
	b.Layout()
	return b
}

// SetFont changes the label font and recomputes the item rectangles.
func (b *Bar) SetFont(f ui.Font) {
	b.font = f
	b.Layout()
}

// Resize follows a window width change.
func (b *Bar) Resize(windowWidth int) {
	b.width = windowWidth
	b.Layout()
}

// Layout recomputes every hit rectangle from the font metrics.
func (b *Bar) Layout() {
	x := float32(barStartX)
	for i := range b.items {
		item := &b.items[i]
		w, _ := ui.MeasureText(b.font, item.Text)
		item.Rect = ui.R(x, 0, w+itemPadding, BarHeight)
		x += w + itemPadding

		for j := range item.Dropdown {
			item.Dropdown[j].Rect = ui.R(item.Rect.X, float32(BarHeight+j*DropdownHeight), DropdownWidth, DropdownHeight)
		}
	}
}

// Items returns the menus. The slice is shared; callers must not
// modify it.
func (b *Bar) Items() []Item {
	return b.items
}

// OpenIndex returns the index of the open menu, or -1.
func (b *Bar) OpenIndex() int {
	for i, item := range b.items {
		if item.Open {
			return i
		}
	}
	return -1
}

// Rect returns the bar strip.
func (b *Bar) Rect() ui.Rect {
	return ui.R(0, 0, float32(b.width), BarHeight)
}

// Contains reports whether pt is on the bar or on the open dropdown.
func (b *Bar) Contains(pt ui.Point) bool {
	if pt.In(b.Rect()) {
		return true
	}
	if i := b.OpenIndex(); i >= 0 {
		for _, d := range b.items[i].Dropdown {
			if pt.In(d.Rect) {
				return true
			}
		}
	}
	return false
}

// HandleMotion updates hover flags and reports whether pt is over any
// item.
func (b *Bar) HandleMotion(pt ui.Point) bool {
	over := false
	for i := range b.items {
		item := &b.items[i]
		item.Hover.Hovered = pt.In(item.Rect)
		over = over || item.Hover.Hovered
		for j := range item.Dropdown {
			d := &item.Dropdown[j]
			d.Hover.Hovered = item.Open && pt.In(d.Rect)
			over = over || d.Hover.Hovered
		}
	}
	return over
}

// HandleClick processes a click. Clicking a menu toggles it and closes
// the others. Clicking an entry of the open dropdown closes it and
// returns the entry's action. Clicking anywhere else closes everything.
func (b *Bar) HandleClick(pt ui.Point) Action {
	if i := b.OpenIndex(); i >= 0 {
		for _, d := range b.items[i].Dropdown {
			if pt.In(d.Rect) {
				b.CloseAll()
				return d.Action
			}
		}
	}

	for i := range b.items {
		if pt.In(b.items[i].Rect) {
			open := !b.items[i].Open
			b.CloseAll()
			b.items[i].Open = open
			return ActionNone
		}
	}

	b.CloseAll()
	return ActionNone
}

// CloseAll closes every dropdown.
func (b *Bar) CloseAll() {
	for i := range b.items {
		b.items[i].Open = false
		for j := range b.items[i].Dropdown {
			b.items[i].Dropdown[j].Hover.Hovered = false
		}
	}
}

// Update advances the hover animations.
func (b *Bar) Update(dt time.Duration) {
	for i := range b.items {
		b.items[i].Hover.Update(dt)
		for j := range b.items[i].Dropdown {
			b.items[i].Dropdown[j].Hover.Update(dt)
		}
	}
}

// DesiredCursor returns the pointing hand over items and entries.
func (b *Bar) DesiredCursor(pt ui.Point) ui.Cursor {
	for _, item := range b.items {
		if pt.In(item.Rect) {
			return ui.CursorPointer
		}
		if !item.Open {
			continue
		}
		for _, d := range item.Dropdown {
			if pt.In(d.Rect) {
				return ui.CursorPointer
			}
		}
	}
	return ui.CursorDefault
}
