package timeline

import (
	"math"
	"time"
)

// FramePeriod is the time one frame stays on screen at the current
// speed.
func (p *Panel) FramePeriod() time.Duration {
	period := time.Duration(float64(time.Second) / (float64(p.frameRate) * p.speed))
	return max(period, time.Nanosecond)
}

// AdvancePlayback feeds dt into the frame accumulator. Every full
// period advances the playhead by one frame. Nothing happens while
// stopped.
func (p *Panel) AdvancePlayback(dt time.Duration) {
	if !p.playing || dt <= 0 {
		return
	}
	period := p.FramePeriod()
	if p.timer > math.MaxInt64-dt {
		p.timer = math.MaxInt64
	} else {
		p.timer += dt
	}
	if p.timer < period {
		return
	}
	if p.policy == DiscardRemainder {
		p.currentFrame++
		p.timer = 0
		return
	}
	ticks := p.timer / period
	p.currentFrame += int(ticks)
	p.timer -= ticks * period
}
