package menu

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/deluxeanim/internal/ui"
	"github.com/ha1tch/deluxeanim/internal/ui/uitest"
)

// With the fixed 8px font: File [10,62) Edit [62,114) Tools [114,174)
// Timeline [174,258) Help [258,310).
func newTestBar() *Bar {
	return New(uitest.FixedFont(), 1200)
}

func openCount(b *Bar) int {
	n := 0
	for _, item := range b.Items() {
		if item.Open {
			n++
		}
	}
	return n
}

func TestLayout(t *testing.T) {
	b := newTestBar()
	items := b.Items()
	require.Len(t, items, 5)

	assert.Equal(t, ui.R(10, 0, 52, 30), items[0].Rect)
	assert.Equal(t, ui.R(114, 0, 60, 30), items[2].Rect)
	assert.Equal(t, ui.R(114, 60, 150, 30), items[2].Dropdown[1].Rect)
	assert.Equal(t, ui.R(258, 0, 52, 30), items[4].Rect)
}

func TestLayout_FollowsFont(t *testing.T) {
	b := New(nil, 800)
	before := b.Items()[1].Rect

	b.SetFont(uitest.BasicFont())
	after := b.Items()[1].Rect

	assert.NotEqual(t, before, after)
	assert.Equal(t, ui.R(10+28+20, 0, 28+20, 30), after, "basicfont is 7px per glyph")
}

func TestClickOpensAndClosesSiblings(t *testing.T) {
	b := newTestBar()

	assert.Equal(t, ActionNone, b.HandleClick(ui.Pt(20, 10)))
	assert.Equal(t, 0, b.OpenIndex())

	b.HandleClick(ui.Pt(120, 10))
	assert.Equal(t, 2, b.OpenIndex())
	assert.Equal(t, 1, openCount(b))

	b.HandleClick(ui.Pt(120, 10))
	assert.Equal(t, -1, b.OpenIndex(), "clicking the open menu closes it")
}

func TestClickOutsideClosesAll(t *testing.T) {
	b := newTestBar()
	b.HandleClick(ui.Pt(120, 10))

	assert.Equal(t, ActionNone, b.HandleClick(ui.Pt(600, 400)))
	assert.Equal(t, 0, openCount(b))

	b.HandleClick(ui.Pt(120, 10))
	b.HandleClick(ui.Pt(800, 10)) // on the bar but past the last menu
	assert.Equal(t, 0, openCount(b))
}

func TestClickDropdownEntryReturnsAction(t *testing.T) {
	b := newTestBar()
	b.HandleClick(ui.Pt(120, 10))

	action := b.HandleClick(ui.Pt(130, 100)) // third entry: Rectangle
	assert.Equal(t, ActionToolRectangle, action)
	assert.Equal(t, -1, b.OpenIndex())
}

func TestClosedDropdownIsNotClickable(t *testing.T) {
	b := newTestBar()

	assert.Equal(t, ActionNone, b.HandleClick(ui.Pt(130, 100)))
	assert.False(t, b.Contains(ui.Pt(130, 100)))

	b.HandleClick(ui.Pt(120, 10))
	assert.True(t, b.Contains(ui.Pt(130, 100)))
}

func TestDropdownMutualExclusion(t *testing.T) {
	b := newTestBar()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		pt := ui.Pt(float32(rng.Intn(400)), float32(rng.Intn(200)))
		b.HandleClick(pt)
		require.LessOrEqual(t, openCount(b), 1, "after click at %v", pt)
	}
}

func TestHoverAnimation(t *testing.T) {
	b := newTestBar()

	assert.True(t, b.HandleMotion(ui.Pt(20, 10)))
	b.Update(50 * time.Millisecond)
	assert.InDelta(t, 0.5, b.Items()[0].Hover.Amount, 1e-4)

	assert.False(t, b.HandleMotion(ui.Pt(600, 400)))
	b.Update(50 * time.Millisecond)
	assert.InDelta(t, 0.25, b.Items()[0].Hover.Amount, 1e-4)
}

func TestDropdownHoverOnlyWhenOpen(t *testing.T) {
	b := newTestBar()

	assert.False(t, b.HandleMotion(ui.Pt(130, 45)))
	b.HandleClick(ui.Pt(120, 10))
	assert.True(t, b.HandleMotion(ui.Pt(130, 45)))
	assert.True(t, b.Items()[2].Dropdown[0].Hover.Hovered)
}

func TestDesiredCursor(t *testing.T) {
	b := newTestBar()

	assert.Equal(t, ui.CursorPointer, b.DesiredCursor(ui.Pt(20, 10)))
	assert.Equal(t, ui.CursorDefault, b.DesiredCursor(ui.Pt(130, 45)))
	b.HandleClick(ui.Pt(120, 10))
	assert.Equal(t, ui.CursorPointer, b.DesiredCursor(ui.Pt(130, 45)))
}

func TestRender(t *testing.T) {
	b := newTestBar()
	rec := &uitest.Recorder{}
	b.Render(rec)

	assert.Equal(t, []string{"File", "Edit", "Tools", "Timeline", "Help"}, rec.Texts())
	assert.Zero(t, rec.Count(uitest.OpStrokeRect))

	b.HandleClick(ui.Pt(70, 10))
	rec.Reset()
	b.Render(rec)
	assert.Equal(t, []string{"File", "Edit", "Tools", "Timeline", "Help", "Undo", "Redo"}, rec.Texts())
	assert.Equal(t, 2, rec.Count(uitest.OpStrokeRect))
}

func TestRender_NoFont(t *testing.T) {
	b := New(nil, 1200)
	rec := &uitest.Recorder{}
	b.Render(rec)

	assert.Zero(t, rec.Count(uitest.OpText))
	assert.Equal(t, 6, rec.Count(uitest.OpFillRect))
}

func TestResize(t *testing.T) {
	b := newTestBar()
	b.Resize(640)

	assert.Equal(t, ui.R(0, 0, 640, 30), b.Rect())
}
