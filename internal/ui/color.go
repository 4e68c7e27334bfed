package ui

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an opaque color.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Lerp blends from toward to by t in [0,1]. The blend is linear in RGB,
// alpha is interpolated separately.
func Lerp(from, to color.RGBA, t float32) color.RGBA {
	t = Clamp(t, 0, 1)
	if t == 0 {
		return from
	}
	if t == 1 {
		return to
	}
	c1, _ := colorful.MakeColor(opaque(from))
	c2, _ := colorful.MakeColor(opaque(to))
	r, g, b := c1.BlendRgb(c2, float64(t)).Clamped().RGB255()
	a := float32(from.A) + (float32(to.A)-float32(from.A))*t
	return color.RGBA{R: r, G: g, B: b, A: uint8(a + 0.5)}
}

// colorful.MakeColor refuses fully transparent colors.
func opaque(c color.RGBA) color.RGBA {
	c.A = 255
	return c
}
