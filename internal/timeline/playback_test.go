package timeline

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ha1tch/deluxeanim/internal/ui"
)

const period = time.Second / BaseFrameRate

func TestAdvancePlayback_StoppedIsNoop(t *testing.T) {
	p := newTestPanel()
	p.AdvancePlayback(10 * time.Second)

	assert.Equal(t, 0, p.CurrentFrame())
	assert.Zero(t, p.PendingTime())
}

func TestAdvancePlayback_OnePeriodOneFrame(t *testing.T) {
	p := newTestPanel()
	p.TogglePlayback()

	p.AdvancePlayback(period)
	assert.Equal(t, 1, p.CurrentFrame())
	assert.Zero(t, p.PendingTime())
}

func TestAdvancePlayback_SplitAcrossCalls(t *testing.T) {
	p := newTestPanel()
	p.TogglePlayback()

	p.AdvancePlayback(period / 2)
	assert.Equal(t, 0, p.CurrentFrame())
	p.AdvancePlayback(period - period/2)
	assert.Equal(t, 1, p.CurrentFrame())
	assert.Zero(t, p.PendingTime())
}

func TestAdvancePlayback_CarriesRemainder(t *testing.T) {
	p := newTestPanel()
	p.TogglePlayback()

	p.AdvancePlayback(period + 10*time.Millisecond)
	assert.Equal(t, 1, p.CurrentFrame())
	assert.Equal(t, 10*time.Millisecond, p.PendingTime())

	// Jittery 60Hz frames must still add up to 24 frames a second.
	p = newTestPanel()
	p.TogglePlayback()
	for i := 0; i < 60; i++ {
		dt := 16 * time.Millisecond
		if i%3 == 2 {
			dt = 17*time.Millisecond + 666667*time.Nanosecond
		}
		p.AdvancePlayback(dt)
	}
	assert.InDelta(t, 24, p.CurrentFrame(), 1)
}

func TestAdvancePlayback_DiscardRemainder(t *testing.T) {
	p := NewWithOptions(1200, 700, 300, Options{Policy: DiscardRemainder})
	p.TogglePlayback()

	p.AdvancePlayback(period + 10*time.Millisecond)
	assert.Equal(t, 1, p.CurrentFrame())
	assert.Zero(t, p.PendingTime(), "leftover is dropped")

	p.AdvancePlayback(time.Second)
	assert.Equal(t, 2, p.CurrentFrame(), "at most one frame per call")
}

func TestAdvancePlayback_Speed(t *testing.T) {
	p := newTestPanel()
	p.SetSpeed(2)
	p.TogglePlayback()

	p.AdvancePlayback(time.Second)
	assert.Equal(t, 48, p.CurrentFrame())
}

func TestAdvancePlayback_OutOfRangeSpeedIsClamped(t *testing.T) {
	cases := []struct {
		name   string
		speed  float64
		frames int
	}{
		{"huge", 1e10, BaseFrameRate * MaxSpeed},
		{"tiny", 1e-12, BaseFrameRate * MinSpeed},
	}
	for _, tc := range cases {
		t.Run(tc.name+"/SetSpeed", func(t *testing.T) {
			p := newTestPanel()
			p.SetSpeed(tc.speed)
			p.TogglePlayback()

			assert.Positive(t, p.FramePeriod())
			p.AdvancePlayback(time.Second)
			assert.Equal(t, tc.frames, p.CurrentFrame())
		})
		t.Run(tc.name+"/NewWithOptions", func(t *testing.T) {
			p := NewWithOptions(1200, 700, 300, Options{Speed: tc.speed})
			p.TogglePlayback()

			p.AdvancePlayback(time.Second)
			assert.Equal(t, tc.frames, p.CurrentFrame())
		})
	}
}

func TestAdvancePlayback_HugeFrameRateStillAdvances(t *testing.T) {
	p := NewWithOptions(1200, 700, 300, Options{FrameRate: math.MaxInt32, Speed: MaxSpeed})
	p.TogglePlayback()

	assert.Equal(t, time.Nanosecond, p.FramePeriod())
	p.AdvancePlayback(time.Microsecond)
	assert.Equal(t, 1000, p.CurrentFrame())
}

func TestAdvancePlayback_TimerSaturates(t *testing.T) {
	p := NewWithOptions(1200, 700, 300, Options{Policy: DiscardRemainder})
	p.TogglePlayback()

	p.AdvancePlayback(period / 2)
	p.AdvancePlayback(math.MaxInt64)
	assert.Equal(t, 1, p.CurrentFrame())
	assert.Zero(t, p.PendingTime())

	p = newTestPanel()
	p.TogglePlayback()
	p.AdvancePlayback(period / 2)
	p.AdvancePlayback(math.MaxInt64)
	assert.Greater(t, p.CurrentFrame(), 0)
	assert.GreaterOrEqual(t, p.PendingTime(), time.Duration(0))
	assert.Less(t, p.PendingTime(), period)
}

func TestPlaybackScenario(t *testing.T) {
	p := newTestPanel()
	assert.Len(t, p.Layers(), 3)
	assert.Len(t, p.Columns(), 2)

	p.HandleEvent(ui.KeyDown(ui.KeySpace, 0))
	assert.True(t, p.Playing())

	p.AdvancePlayback(time.Second)
	assert.Equal(t, 24, p.CurrentFrame())

	p.HandleEvent(ui.KeyDown(ui.KeySpace, 0))
	assert.False(t, p.Playing())

	p.AdvancePlayback(time.Second)
	assert.Equal(t, 24, p.CurrentFrame())
}
