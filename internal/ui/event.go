package ui

// EventKind discriminates Event.
type EventKind int

const (
	EventNone EventKind = iota
	EventPointerDown
	EventPointerUp
	EventPointerMove
	EventWheel
	EventKeyDown
	EventResize
)

func (k EventKind) String() string {
	switch k {
	case EventPointerDown:
		return "pointer-down"
	case EventPointerUp:
		return "pointer-up"
	case EventPointerMove:
		return "pointer-move"
	case EventWheel:
		return "wheel"
	case EventKeyDown:
		return "key-down"
	case EventResize:
		return "resize"
	}
	return "none"
}

// Key identifies the keys the editor reacts to. Backends translate
// their own key codes into these and drop everything else.
type Key int

const (
	KeyUnknown Key = iota
	KeySpace
	KeyLeft
	KeyRight
	KeyHome
	KeyA
	KeyK
	KeyL
	KeyY
	KeyZ
	KeyEqual
	KeyMinus
)

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
)

// Has reports whether every bit of m2 is set in m.
func (m Modifiers) Has(m2 Modifiers) bool {
	return m&m2 == m2
}

// Event is one input event pumped from the window.
type Event struct {
	Kind EventKind

	// Pos is the pointer position for pointer and wheel events.
	Pos Point

	// Wheel holds the wheel deltas, one unit per notch.
	Wheel Point

	Key  Key
	Mods Modifiers

	// Width and Height carry the new window size on EventResize.
	Width, Height int
}

// PointerDown builds a primary-button press at (x, y).
func PointerDown(x, y float32) Event {
	return Event{Kind: EventPointerDown, Pos: Pt(x, y)}
}

// PointerUp builds a primary-button release at (x, y).
func PointerUp(x, y float32) Event {
	return Event{Kind: EventPointerUp, Pos: Pt(x, y)}
}

// PointerMove builds a motion event to (x, y).
func PointerMove(x, y float32) Event {
	return Event{Kind: EventPointerMove, Pos: Pt(x, y)}
}

// WheelAt builds a wheel event at (x, y) with deltas (dx, dy).
func WheelAt(x, y, dx, dy float32, mods Modifiers) Event {
	return Event{Kind: EventWheel, Pos: Pt(x, y), Wheel: Pt(dx, dy), Mods: mods}
}

// KeyDown builds a key press with the modifiers held at the time.
func KeyDown(k Key, mods Modifiers) Event {
	return Event{Kind: EventKeyDown, Key: k, Mods: mods}
}

// Resized builds a window resize to w x h.
func Resized(w, h int) Event {
	return Event{Kind: EventResize, Width: w, Height: h}
}
