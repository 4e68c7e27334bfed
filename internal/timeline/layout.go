package timeline

import "github.com/ha1tch/deluxeanim/internal/ui"

const (
	headerHeight     = 30
	rowHeight        = 30
	layerColumnWidth = 100
	cellWidth        = 60
	transportHeight  = 40
	handleWidth      = 6
	handleSlop       = 3
	buttonSize       = 24
	affordanceInset  = 4
	addColumnWidth   = 22
)

// Layout is the geometry of one frame of the panel. Hit-testing and
// rendering both consume it so they never disagree.
type Layout struct {
	Panel ui.Rect

	// Handle is the resize grip hit region. It reaches a few pixels
	// past the left edge of the panel.
	Handle ui.Rect
	Grip   ui.Rect

	// Header is the frame track across the top of the grid.
	Header ui.Rect

	// LayerColumn is the strip of layer names left of the grid.
	LayerColumn ui.Rect
	Grid        ui.Rect

	Rows    []ui.Rect
	Columns []ui.Rect

	AddLayer  ui.Rect
	AddColumn ui.Rect

	Transport  ui.Rect
	Rewind     ui.Rect
	PlayPause  ui.Rect
	Forward    ui.Rect
	FrameLabel ui.Point

	TimelineStartY float32
	gridOrigin     ui.Point
}

// ComputeLayout derives the panel geometry from the current state.
func (p *Panel) ComputeLayout() Layout {
	px := float32(p.screenWidth - p.panelWidth)
	py := float32(p.top)
	pw := float32(p.panelWidth)
	ph := float32(max(p.bottom-p.top, 0))
	sx := float32(p.scrollX)
	sy := float32(p.scrollY)

	l := Layout{
		Panel:  ui.R(px, py, pw, ph),
		Handle: ui.R(px-handleSlop, py, handleWidth+handleSlop, ph),
		Grip:   ui.R(px, py, handleWidth, ph),
	}

	contentX := px + handleWidth
	contentW := max(pw-handleWidth, 0)
	startY := py + headerHeight
	transportY := max(py+ph-transportHeight, startY)
	bodyH := transportY - startY
	gridX := contentX + layerColumnWidth

	l.TimelineStartY = startY
	l.gridOrigin = ui.Pt(gridX-sx, startY-sy)
	l.Header = ui.R(contentX, py, contentW, headerHeight)
	l.LayerColumn = ui.R(contentX, startY, min(layerColumnWidth, contentW), bodyH)
	l.Grid = ui.R(gridX, startY, max(contentW-layerColumnWidth, 0), bodyH)

	l.Rows = make([]ui.Rect, len(p.layers))
	for i := range p.layers {
		l.Rows[i] = ui.R(contentX, startY+float32(i*rowHeight)-sy, layerColumnWidth, rowHeight)
	}
	l.Columns = make([]ui.Rect, len(p.columns))
	for j := range p.columns {
		l.Columns[j] = ui.R(gridX+float32(j*cellWidth)-sx, py, cellWidth, headerHeight)
	}

	l.AddLayer = ui.R(
		contentX+affordanceInset,
		startY+float32(len(p.layers)*rowHeight)-sy+affordanceInset,
		layerColumnWidth-2*affordanceInset,
		rowHeight-2*affordanceInset,
	)
	l.AddColumn = ui.R(
		gridX+float32(len(p.columns)*cellWidth)-sx+affordanceInset,
		py+affordanceInset,
		addColumnWidth,
		headerHeight-2*affordanceInset,
	)

	l.Transport = ui.R(px, transportY, pw, py+ph-transportY)
	by := transportY + (transportHeight-buttonSize)/2
	l.Rewind = ui.R(px+10, by, buttonSize, buttonSize)
	l.PlayPause = ui.R(px+40, by, buttonSize, buttonSize)
	l.Forward = ui.R(px+70, by, buttonSize, buttonSize)
	l.FrameLabel = ui.Pt(px+110, transportY+12)
	return l
}

// Cell returns the on-screen rectangle of a grid cell.
func (l Layout) Cell(layer, frame int) ui.Rect {
	return ui.R(
		l.gridOrigin.X+float32(frame*cellWidth),
		l.gridOrigin.Y+float32(layer*rowHeight),
		cellWidth,
		rowHeight,
	)
}

// CellAt maps a point inside the grid to a (layer, frame) pair. The
// result can be out of range; callers check it against the content.
func (l Layout) CellAt(pt ui.Point) Cell {
	return Cell{
		Layer: floorDiv(pt.Y-l.gridOrigin.Y, rowHeight),
		Frame: floorDiv(pt.X-l.gridOrigin.X, cellWidth),
	}
}

// rowAt returns the layer row under y, not clamped.
func (l Layout) rowAt(y float32) int {
	return floorDiv(y-l.gridOrigin.Y, rowHeight)
}

func floorDiv(v float32, size int) int {
	q := int(v) / size
	if v < 0 && float32(q*size) != v {
		q--
	}
	return q
}

// Contains reports whether pt is over the panel or its resize grip.
func (p *Panel) Contains(pt ui.Point) bool {
	l := p.ComputeLayout()
	return pt.In(l.Panel) || pt.In(l.Handle)
}

// DesiredCursor returns the cursor the panel wants at pt.
func (p *Panel) DesiredCursor(pt ui.Point) ui.Cursor {
	l := p.ComputeLayout()
	switch {
	case p.resizing, pt.In(l.Handle):
		return ui.CursorResizeEW
	case pt.In(l.AddLayer) && pt.In(l.LayerColumn),
		pt.In(l.AddColumn) && pt.In(l.Header),
		pt.In(l.Rewind), pt.In(l.PlayPause), pt.In(l.Forward):
		return ui.CursorPointer
	}
	return ui.CursorDefault
}
