// Package timeline implements the layer/frame panel: a grid of named
// layers against named frame columns, a playhead driven by a fixed-rate
// playback clock, and the resize and scroll state of the panel itself.
package timeline

import (
	"fmt"
	"time"

	"github.com/ha1tch/deluxeanim/internal/ui"
)

const (
	// BaseFrameRate is the playback rate at speed 1.0, in frames per second.
	BaseFrameRate = 24

	// MinPanelWidth is the narrowest the panel can be dragged.
	MinPanelWidth = 50

	// ScrollStep is the number of pixels scrolled per wheel notch.
	ScrollStep = 20

	MinSpeed  = 0.25
	MaxSpeed  = 8.0
	SpeedStep = 0.5
)

// RemainderPolicy says what happens to the accumulated playback time
// left over after a tick.
type RemainderPolicy int

const (
	// CarryRemainder subtracts one period per tick and keeps the rest,
	// so irregular frame times do not slow playback down.
	CarryRemainder RemainderPolicy = iota

	// DiscardRemainder resets the timer to zero after a tick. At most
	// one frame advances per AdvancePlayback call.
	DiscardRemainder
)

// Cell addresses one (layer, frame) slot of the grid.
type Cell struct {
	Layer, Frame int
}

// Options seeds a Panel.
type Options struct {
	Layers    int
	Columns   int
	FrameRate int
	Speed     float64
	Policy    RemainderPolicy
}

// DefaultOptions returns three layers, two frames, 24 fps at 1x and the
// carry policy.
func DefaultOptions() Options {
	return Options{
		Layers:    3,
		Columns:   2,
		FrameRate: BaseFrameRate,
		Speed:     1.0,
		Policy:    CarryRemainder,
	}
}

// Panel is the timeline/layer panel. It is right-anchored: the left
// edge moves when the width changes.
type Panel struct {
	screenWidth  int
	screenHeight int
	panelWidth   int
	top, bottom  int
	// bounded is set once the shell places the panel vertically;
	// until then the panel spans the whole window height.
	bounded bool

	scrollX, scrollY int
	resizing         bool
	anchorX          float32

	font ui.Font

	layers    []string
	columns   []string
	keyframes map[Cell]bool

	activeLayer  int
	currentFrame int

	playing   bool
	speed     float64
	frameRate int
	policy    RemainderPolicy
	timer     time.Duration
}

// New creates a panel with the default options.
func New(screenWidth, screenHeight, panelWidth int) *Panel {
	return NewWithOptions(screenWidth, screenHeight, panelWidth, DefaultOptions())
}

// NewWithOptions creates a panel occupying the full window height.
// Invalid option values fall back to their defaults.
func NewWithOptions(screenWidth, screenHeight, panelWidth int, opts Options) *Panel {
	def := DefaultOptions()
	if opts.Layers <= 0 {
		opts.Layers = def.Layers
	}
	if opts.Columns <= 0 {
		opts.Columns = def.Columns
	}
	if opts.FrameRate <= 0 {
		opts.FrameRate = def.FrameRate
	}
	if opts.Speed <= 0 {
		opts.Speed = def.Speed
	}
	opts.Speed = ClampSpeed(opts.Speed)

	p := &Panel{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		panelWidth:   clampWidth(panelWidth, screenWidth),
		bottom:       screenHeight,
		keyframes:    make(map[Cell]bool),
		speed:        opts.Speed,
		frameRate:    opts.FrameRate,
		policy:       opts.Policy,
	}
	for i := 0; i < opts.Layers; i++ {
		p.AddLayer()
	}
	for i := 0; i < opts.Columns; i++ {
		p.AddColumn()
	}
	return p
}

func clampWidth(w, screenWidth int) int {
	return ui.Clamp(w, MinPanelWidth, max(screenWidth, MinPanelWidth))
}

// SetFont sets the label font. With a nil font the panel still draws
// every shape and skips the text.
func (p *Panel) SetFont(f ui.Font) {
	p.font = f
}

// Resize follows a window size change.
func (p *Panel) Resize(screenWidth, screenHeight int) {
	p.screenWidth = screenWidth
	p.screenHeight = screenHeight
	p.panelWidth = clampWidth(p.panelWidth, screenWidth)
	if !p.bounded || p.bottom > screenHeight {
		p.bottom = screenHeight
	}
	p.top = min(p.top, p.bottom)
}

// SetVerticalBounds places the panel between top and bottom, typically
// under the menu bar and above the toolbar.
func (p *Panel) SetVerticalBounds(top, bottom int) {
	p.top = max(top, 0)
	p.bottom = max(bottom, p.top)
	p.bounded = true
}

// AddLayer appends "Layer N" where N is the new layer count.
func (p *Panel) AddLayer() {
	p.layers = append(p.layers, fmt.Sprintf("Layer %d", len(p.layers)+1))
}

// AddColumn appends "Frame N" where N is the new column count.
func (p *Panel) AddColumn() {
	p.columns = append(p.columns, fmt.Sprintf("Frame %d", len(p.columns)+1))
}

// TogglePlayback flips between stopped and playing.
func (p *Panel) TogglePlayback() {
	p.playing = !p.playing
}

// SetSpeed sets the playback multiplier, clamped to [MinSpeed,
// MaxSpeed]. Non-positive values are ignored.
func (p *Panel) SetSpeed(m float64) {
	if m <= 0 {
		return
	}
	p.speed = ClampSpeed(m)
}

// ClampSpeed limits a multiplier to [MinSpeed, MaxSpeed]. Outside that
// range the frame period no longer fits a time.Duration.
func ClampSpeed(m float64) float64 {
	return ui.Clamp(m, MinSpeed, MaxSpeed)
}

// SelectLayer makes layer i active, clamped to the existing layers.
func (p *Panel) SelectLayer(i int) {
	p.activeLayer = ui.Clamp(i, 0, len(p.layers)-1)
}

// SelectCell makes the layer active and moves the playhead to frame.
func (p *Panel) SelectCell(layer, frame int) {
	p.SelectLayer(layer)
	p.currentFrame = max(frame, 0)
}

// StepForward moves the playhead one frame right.
func (p *Panel) StepForward() {
	p.currentFrame++
}

// StepBack moves the playhead one frame left, stopping at zero.
func (p *Panel) StepBack() {
	if p.currentFrame > 0 {
		p.currentFrame--
	}
}

// Rewind moves the playhead to frame zero.
func (p *Panel) Rewind() {
	p.currentFrame = 0
}

// ToggleKeyframe flips the keyframe flag of a cell.
func (p *Panel) ToggleKeyframe(layer, frame int) {
	c := Cell{Layer: layer, Frame: frame}
	if p.keyframes[c] {
		delete(p.keyframes, c)
		return
	}
	p.keyframes[c] = true
}

// IsKeyframe reports whether the cell holds a keyframe.
func (p *Panel) IsKeyframe(layer, frame int) bool {
	return p.keyframes[Cell{Layer: layer, Frame: frame}]
}

// Layers returns a copy of the layer names in order.
func (p *Panel) Layers() []string {
	return append([]string(nil), p.layers...)
}

// Columns returns a copy of the column names in order.
func (p *Panel) Columns() []string {
	return append([]string(nil), p.columns...)
}

func (p *Panel) ActiveLayer() int              { return p.activeLayer }
func (p *Panel) CurrentFrame() int             { return p.currentFrame }
func (p *Panel) Playing() bool                 { return p.playing }
func (p *Panel) Speed() float64                { return p.speed }
func (p *Panel) Width() int                    { return p.panelWidth }
func (p *Panel) Resizing() bool                { return p.resizing }
func (p *Panel) Scroll() (x, y int)            { return p.scrollX, p.scrollY }
func (p *Panel) PendingTime() time.Duration    { return p.timer }
func (p *Panel) Policy() RemainderPolicy       { return p.policy }
func (p *Panel) SetPolicy(pol RemainderPolicy) { p.policy = pol }
