package render

import (
	"github.com/lixenwraith/muckpond/sim"
	"github.com/lixenwraith/muckpond/status"
)

// Context is everything one frame draws from
type Context struct {
	Snapshot sim.Snapshot
	Metrics  []status.Metric
	View     Viewport
	Paused   bool
	Muted    bool
}

// Layer is one stage of the render pipeline
type Layer interface {
	Render(ctx Context, buf *Buffer)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

// LayerFunc adapts a plain function to Layer
type LayerFunc func(ctx Context, buf *Buffer)

func (f LayerFunc) Render(ctx Context, buf *Buffer) { f(ctx, buf) }
