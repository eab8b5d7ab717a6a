package render

import "github.com/gdamore/tcell/v2"

// RGB is a 24-bit color, converted to tcell only at flush
type RGB struct {
	R, G, B uint8
}

var RGBBlack = RGB{0, 0, 0}

// clamp converts float to uint8 efficiently
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Color returns the tcell truecolor value
func (c RGB) Color() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Scale multiplies every channel by f
func (c RGB) Scale(f float64) RGB {
	return RGB{clamp(float64(c.R) * f), clamp(float64(c.G) * f), clamp(float64(c.B) * f)}
}

// Lerp blends from c toward target by t in [0, 1]
func (c RGB) Lerp(target RGB, t float64) RGB {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return target
	}
	return RGB{
		clamp(float64(c.R) + (float64(target.R)-float64(c.R))*t),
		clamp(float64(c.G) + (float64(target.G)-float64(c.G))*t),
		clamp(float64(c.B) + (float64(target.B)-float64(c.B))*t),
	}
}

// Add sums channels, saturating at 255
func (c RGB) Add(o RGB) RGB {
	return RGB{
		clamp(float64(c.R) + float64(o.R)),
		clamp(float64(c.G) + float64(o.G)),
		clamp(float64(c.B) + float64(o.B)),
	}
}

// Max keeps the brighter value per channel
func (c RGB) Max(o RGB) RGB {
	return RGB{max(c.R, o.R), max(c.G, o.G), max(c.B, o.B)}
}
