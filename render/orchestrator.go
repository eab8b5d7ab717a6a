package render

import "github.com/gdamore/tcell/v2"

type layerEntry struct {
	layer    Layer
	priority RenderPriority
}

// Orchestrator coordinates the render pipeline
type Orchestrator struct {
	screen tcell.Screen
	buffer *Buffer
	view   Viewport
	layers []layerEntry
}

// NewOrchestrator creates an orchestrator sized to the screen
func NewOrchestrator(screen tcell.Screen) *Orchestrator {
	w, h := screen.Size()
	return &Orchestrator{
		screen: screen,
		buffer: NewBuffer(w, h),
		view:   NewViewport(w, h),
		layers: make([]layerEntry, 0, 8),
	}
}

// NewDefault creates an orchestrator with the standard pond layers registered
// The caller keeps hud to toggle it at runtime
func NewDefault(screen tcell.Screen, hud *HUDLayer) *Orchestrator {
	o := NewOrchestrator(screen)
	o.Register(&BackgroundLayer{}, PriorityBackground)
	o.Register(&CellLayer{}, PriorityCells)
	o.Register(&FeederLayer{}, PriorityFeeders)
	o.Register(&ForagerLayer{}, PriorityForagers)
	o.Register(&FadeLayer{}, PriorityPostProcess)
	o.Register(hud, PriorityUI)
	o.Register(&OverlayLayer{}, PriorityOverlay)
	return o
}

// Register adds a layer at the specified priority. Maintains sorted order via insertion sort,
// equal priorities render in registration order
func (o *Orchestrator) Register(l Layer, priority RenderPriority) {
	entry := layerEntry{layer: l, priority: priority}

	pos := len(o.layers)
	for i, e := range o.layers {
		if priority < e.priority {
			pos = i
			break
		}
	}

	o.layers = append(o.layers, layerEntry{})
	copy(o.layers[pos+1:], o.layers[pos:])
	o.layers[pos] = entry
}

// Resize resyncs the buffer and viewport with the screen
func (o *Orchestrator) Resize() {
	w, h := o.screen.Size()
	o.buffer.Resize(w, h)
	o.view = NewViewport(w, h)
	o.screen.Sync()
}

// Viewport returns the current pond mapping, used by the host for mouse input
func (o *Orchestrator) Viewport() Viewport { return o.view }

// Buffer exposes the back buffer of the last frame
func (o *Orchestrator) Buffer() *Buffer { return o.buffer }

// RenderFrame executes the render pipeline: clear, render all, flush
func (o *Orchestrator) RenderFrame(ctx Context) {
	ctx.View = o.view
	o.buffer.Clear(RgbWaterDeep)

	for _, entry := range o.layers {
		if vt, ok := entry.layer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.layer.Render(ctx, o.buffer)
	}

	o.buffer.Flush(o.screen)
}
