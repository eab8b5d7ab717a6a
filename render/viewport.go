package render

import (
	"math"

	"github.com/lixenwraith/muckpond/parameter"
	"github.com/lixenwraith/muckpond/vmath"
)

// Viewport maps pond coordinates, centered on the origin, onto a terminal cell grid
// The pond keeps its aspect ratio stretched to fill the area above the HUD
type Viewport struct {
	Width  int // Terminal columns
	Height int // Terminal rows available to the pond
}

// NewViewport reserves the HUD rows from a full terminal size
func NewViewport(termWidth, termHeight int) Viewport {
	return Viewport{
		Width:  max(termWidth, 0),
		Height: max(termHeight-parameter.HUDRows, 0),
	}
}

// Drawable reports whether the pond fits
func (v Viewport) Drawable() bool {
	return v.Width >= parameter.MinViewWidth && v.Height >= parameter.MinViewHeight
}

// scale returns pond units per column and per row
func (v Viewport) scale() (float64, float64) {
	return parameter.ScreenWidth / float64(max(v.Width, 1)), parameter.ScreenHeight / float64(max(v.Height, 1))
}

// ToScreen returns the terminal cell containing p and whether it lies inside the viewport
func (v Viewport) ToScreen(p vmath.Vec2) (int, int, bool) {
	sx, sy := v.scale()
	x := int(math.Floor((p.X + parameter.ScreenWidth/2) / sx))
	y := int(math.Floor((p.Y + parameter.ScreenHeight/2) / sy))
	return x, y, x >= 0 && y >= 0 && x < v.Width && y < v.Height
}

// ToPond returns the pond position at the center of terminal cell x, y
func (v Viewport) ToPond(x, y int) vmath.Vec2 {
	sx, sy := v.scale()
	return vmath.V2(
		(float64(x)+0.5)*sx-parameter.ScreenWidth/2,
		(float64(y)+0.5)*sy-parameter.ScreenHeight/2,
	)
}

// Span returns the column and row extent of a pond distance
func (v Viewport) Span(d float64) (int, int) {
	sx, sy := v.scale()
	return int(math.Ceil(d / sx)), int(math.Ceil(d / sy))
}
