package ui

import "time"

// Hover rates in units per second. Highlights appear faster than they
// fade.
const (
	HoverAppearRate = 10.0
	HoverFadeRate   = 5.0
)

// Hover tracks whether the pointer is over a region and an animated
// intensity in [0,1] that follows it.
type Hover struct {
	Hovered bool
	Amount  float32
}

// Update moves Amount toward 1 when hovered and toward 0 otherwise.
func (h *Hover) Update(dt time.Duration) {
	step := float32(dt.Seconds())
	if h.Hovered {
		h.Amount = min(h.Amount+step*HoverAppearRate, 1)
	} else {
		h.Amount = max(h.Amount-step*HoverFadeRate, 0)
	}
}
