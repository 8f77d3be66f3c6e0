package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pulsefield/vmath"
)

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

var (
	RGBBlack = RGB{0, 0, 0}
	// Background is the canvas color (Tokyo Night)
	Background = RGB{26, 27, 38}
	StatusFg   = RGB{169, 177, 214}
	StatusBg   = RGB{36, 40, 59}
)

// Tcell converts to a true-color tcell color
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// clamp converts float to uint8
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// HSB converts hue in degrees and saturation/brightness in percent
func HSB(hue, sat, bri float64) RGB {
	if !vmath.Finite(hue, sat, bri) {
		return RGBBlack
	}
	h := vmath.WrapDegrees(hue) / 60
	s := vmath.Clamp(sat/100, 0, 1)
	v := vmath.Clamp(bri/100, 0, 1)

	c := v * s
	x := c * (1 - math.Abs(math.Mod(h, 2)-1))
	m := v - c

	var r, g, b float64
	switch int(h) % 6 {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return RGB{
		R: clamp((r+m)*255 + 0.5),
		G: clamp((g+m)*255 + 0.5),
		B: clamp((b+m)*255 + 0.5),
	}
}

// Blend is linear alpha blending of src over c
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// add is addition with clamping
func add(a, b uint8) uint8 {
	sum := int(a) + int(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

// Add performs additive blend with clamping, used where particles overlap
func Add(c, src RGB, alpha float64) RGB {
	if alpha <= 0.0 {
		return c
	}
	added := RGB{
		R: add(c.R, src.R),
		G: add(c.G, src.G),
		B: add(c.B, src.B),
	}
	if alpha >= 1.0 {
		return added
	}
	return Blend(c, added, alpha)
}

// Scale multiplies all channels by factor
func Scale(c RGB, factor float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * factor),
		G: clamp(float64(c.G) * factor),
		B: clamp(float64(c.B) * factor),
	}
}
