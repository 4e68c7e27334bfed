package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ha1tch/deluxeanim/internal/ui"
)

func TestClickAddLayerAffordance(t *testing.T) {
	p := newTestPanel()
	p.HandleEvent(ui.PointerDown(950, 130))

	assert.Equal(t, []string{"Layer 1", "Layer 2", "Layer 3", "Layer 4"}, p.Layers())
	assert.Equal(t, 0, p.ActiveLayer(), "adding does not change the selection")
}

func TestClickAddColumnAffordance(t *testing.T) {
	p := newTestPanel()
	before := len(p.Columns())
	p.HandleEvent(ui.PointerDown(1140, 10))

	cols := p.Columns()
	assert.Len(t, cols, before+1)
	assert.Equal(t, "Frame 3", cols[len(cols)-1])
}

func TestClickLayerHeaderSelectsRow(t *testing.T) {
	p := newTestPanel()

	p.HandleEvent(ui.PointerDown(950, 75))
	assert.Equal(t, 1, p.ActiveLayer())

	p.HandleEvent(ui.PointerDown(950, 500))
	assert.Equal(t, 2, p.ActiveLayer(), "rows below the last layer clamp to it")
}

func TestClickLayerHeaderHonoursScroll(t *testing.T) {
	p := newTestPanel()
	p.HandleEvent(ui.WheelAt(1000, 300, 0, -2, 0)) // scrollY = 40

	p.HandleEvent(ui.PointerDown(950, 40))
	assert.Equal(t, 1, p.ActiveLayer(), "(40-30+40)/30 = 1")
}

func TestClickGridCellSelectsLayerAndFrame(t *testing.T) {
	p := newTestPanel()
	p.HandleEvent(ui.PointerDown(1080, 70))

	assert.Equal(t, 1, p.ActiveLayer())
	assert.Equal(t, 1, p.CurrentFrame())

	p.HandleEvent(ui.PointerDown(1190, 70))
	assert.Equal(t, 1, p.CurrentFrame(), "empty space past the last column is ignored")
}

func TestTransportButtons(t *testing.T) {
	p := newTestPanel()

	p.HandleEvent(ui.PointerDown(980, 680))
	p.HandleEvent(ui.PointerDown(980, 680))
	assert.Equal(t, 2, p.CurrentFrame(), "forward steps")

	p.HandleEvent(ui.PointerDown(950, 680))
	assert.True(t, p.Playing())
	p.HandleEvent(ui.PointerDown(950, 680))
	assert.False(t, p.Playing())

	p.HandleEvent(ui.PointerDown(920, 680))
	assert.Equal(t, 0, p.CurrentFrame(), "rewind")
}

func TestClicksOutsideRegionsIgnored(t *testing.T) {
	p := newTestPanel()
	p.HandleEvent(ui.PointerDown(100, 100))
	p.HandleEvent(ui.PointerDown(1180, 680))

	assert.Len(t, p.Layers(), 3)
	assert.Len(t, p.Columns(), 2)
	assert.Equal(t, 0, p.ActiveLayer())
	assert.False(t, p.Playing())
	assert.False(t, p.Resizing())
}

func TestResizeDrag(t *testing.T) {
	p := newTestPanel()

	p.HandleEvent(ui.PointerDown(900, 300))
	assert.True(t, p.Resizing())

	p.HandleEvent(ui.PointerMove(850, 300))
	assert.Equal(t, 350, p.Width(), "dragging left grows the panel")

	p.HandleEvent(ui.PointerMove(870, 310))
	assert.Equal(t, 330, p.Width(), "deltas are incremental")

	p.HandleEvent(ui.PointerUp(870, 310))
	assert.False(t, p.Resizing())

	p.HandleEvent(ui.PointerMove(500, 310))
	assert.Equal(t, 330, p.Width(), "moves after release do nothing")
}

func TestResizeClamp(t *testing.T) {
	tests := []struct {
		name string
		to   float32
		want int
	}{
		{"far left", -100000, 1200},
		{"far right", 100000, MinPanelWidth},
		{"just past minimum", 1151, MinPanelWidth},
		{"exact screen width", 0, 1200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPanel()
			p.HandleEvent(ui.PointerDown(900, 300))
			p.HandleEvent(ui.PointerMove(tt.to, 300))

			assert.Equal(t, tt.want, p.Width())
			assert.GreaterOrEqual(t, p.Width(), MinPanelWidth)
			assert.LessOrEqual(t, p.Width(), 1200)
		})
	}
}

func TestPointerUpAlwaysEndsResize(t *testing.T) {
	p := newTestPanel()
	p.HandleEvent(ui.PointerDown(900, 300))
	p.HandleEvent(ui.PointerUp(10, 10))

	assert.False(t, p.Resizing())
}

func TestWheelScrollNeverNegative(t *testing.T) {
	p := newTestPanel()

	p.HandleEvent(ui.WheelAt(1000, 300, 0, -3, 0))
	x, y := p.Scroll()
	assert.Equal(t, 0, x)
	assert.Equal(t, 60, y)

	p.HandleEvent(ui.WheelAt(1000, 300, 0, 50, 0))
	_, y = p.Scroll()
	assert.Equal(t, 0, y)

	p.HandleEvent(ui.WheelAt(1000, 300, 0, 1000, ui.ModShift))
	x, y = p.Scroll()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
}

func TestShiftWheelScrollsHorizontally(t *testing.T) {
	p := newTestPanel()
	p.HandleEvent(ui.WheelAt(1000, 300, 0, -2, ui.ModShift))

	x, y := p.Scroll()
	assert.Equal(t, 40, x)
	assert.Equal(t, 0, y)
}

func TestScrollHasNoUpperBound(t *testing.T) {
	p := newTestPanel()
	p.HandleEvent(ui.WheelAt(1000, 300, 0, -1000, 0))

	_, y := p.Scroll()
	assert.Equal(t, 20000, y)
}

func TestKeys(t *testing.T) {
	p := newTestPanel()

	p.HandleEvent(ui.KeyDown(ui.KeyL, 0))
	assert.Equal(t, "Layer 4", p.Layers()[3])

	p.HandleEvent(ui.KeyDown(ui.KeyA, 0))
	assert.Equal(t, "Frame 3", p.Columns()[2])

	p.HandleEvent(ui.KeyDown(ui.KeySpace, 0))
	assert.True(t, p.Playing())
	p.HandleEvent(ui.KeyDown(ui.KeySpace, 0))
	assert.False(t, p.Playing())

	p.HandleEvent(ui.KeyDown(ui.KeyK, 0))
	assert.True(t, p.IsKeyframe(0, 0))

	p.HandleEvent(ui.KeyDown(ui.KeyRight, 0))
	p.HandleEvent(ui.KeyDown(ui.KeyRight, 0))
	p.HandleEvent(ui.KeyDown(ui.KeyHome, 0))
	assert.Equal(t, 0, p.CurrentFrame())

	p.HandleEvent(ui.KeyDown(ui.KeyEqual, 0))
	assert.Equal(t, 1.5, p.Speed())
	for i := 0; i < 10; i++ {
		p.HandleEvent(ui.KeyDown(ui.KeyMinus, 0))
	}
	assert.Equal(t, MinSpeed, p.Speed())
}

func TestArrowKeysNeverGoNegative(t *testing.T) {
	p := newTestPanel()
	keys := []ui.Key{
		ui.KeyLeft, ui.KeyLeft, ui.KeyRight, ui.KeyLeft, ui.KeyLeft,
		ui.KeyRight, ui.KeyRight, ui.KeyRight, ui.KeyLeft, ui.KeyLeft,
		ui.KeyLeft, ui.KeyLeft, ui.KeyRight,
	}

	for _, k := range keys {
		before := p.CurrentFrame()
		p.HandleEvent(ui.KeyDown(k, 0))
		after := p.CurrentFrame()

		assert.GreaterOrEqual(t, after, 0)
		switch {
		case k == ui.KeyRight:
			assert.Equal(t, before+1, after)
		case before > 0:
			assert.Equal(t, before-1, after)
		default:
			assert.Equal(t, 0, after)
		}
	}
}

func TestRightArrowHasNoUpperBound(t *testing.T) {
	p := newTestPanel()
	for i := 0; i < 50; i++ {
		p.HandleEvent(ui.KeyDown(ui.KeyRight, 0))
	}
	assert.Equal(t, 50, p.CurrentFrame())
	assert.Len(t, p.Columns(), 2)
}

func TestResizeEvent(t *testing.T) {
	p := newTestPanel()
	p.HandleEvent(ui.Resized(200, 400))

	assert.Equal(t, 200, p.Width())
}
