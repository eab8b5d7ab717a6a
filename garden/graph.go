package garden

import (
	"math"
	"math/rand/v2"
	"slices"

	"github.com/lixenwraith/muckpond/engine"
	"github.com/lixenwraith/muckpond/event"
	"github.com/lixenwraith/muckpond/parameter"
	"github.com/lixenwraith/muckpond/vmath"
)

// ContagionListener is notified synchronously whenever a cell's muck state may have changed
type ContagionListener interface {
	OnContagionChanged(id CellID)
}

// Graph is the static adjacency graph of cells and the owner of contagion state
// All mutation happens on the simulation goroutine
type Graph struct {
	cells []Cell

	// Mucky cell set, maintained incrementally on every toggle
	mucky map[CellID]struct{}

	sched    *engine.Scheduler
	rng      *rand.Rand
	events   *event.Emitter
	listener ContagionListener

	candidates []CellID // Scratch buffer for RandomNeighbor
}

// NewGraph builds the fixed hex pond
func NewGraph(sched *engine.Scheduler, rng *rand.Rand, events *event.Emitter) *Graph {
	g, err := NewGraphFromLayout(HexLayout(), sched, rng, events)
	if err != nil {
		// HexLayout is constant and always valid
		panic(err)
	}
	return g
}

// NewGraphFromLayout builds a graph from an arbitrary layout, edges are made symmetric
func NewGraphFromLayout(l Layout, sched *engine.Scheduler, rng *rand.Rand, events *event.Emitter) (*Graph, error) {
	if err := l.validate(); err != nil {
		return nil, err
	}

	g := &Graph{
		cells:  make([]Cell, len(l.Positions)),
		mucky:  make(map[CellID]struct{}),
		sched:  sched,
		rng:    rng,
		events: events,
	}
	for i, p := range l.Positions {
		c := &g.cells[i]
		c.ID = CellID(i)
		c.Rest = p
		c.Display = p
		c.Goal = p
		c.occupant = NoAgent
		if l.Rows != nil {
			c.Row, c.Col = l.Rows[i], l.Cols[i]
		}
	}
	for _, e := range l.Edges {
		g.link(e[0], e[1])
	}
	return g, nil
}

func (g *Graph) link(a, b CellID) {
	ca, cb := &g.cells[a], &g.cells[b]
	if !slices.Contains(ca.Neighbors, b) {
		ca.Neighbors = append(ca.Neighbors, b)
	}
	if !slices.Contains(cb.Neighbors, a) {
		cb.Neighbors = append(cb.Neighbors, a)
	}
}

// SetListener registers the contagion listener, typically the endgame controller
func (g *Graph) SetListener(l ContagionListener) {
	g.listener = l
}

// Len returns the number of cells
func (g *Graph) Len() int { return len(g.cells) }

// TotalCells returns the number of cells, for coverage ratios
func (g *Graph) TotalCells() int { return len(g.cells) }

// Cell returns the cell with the given id
// The returned pointer is read-only for callers outside this package
func (g *Graph) Cell(id CellID) *Cell { return &g.cells[id] }

// Valid reports whether id is in range
func (g *Graph) Valid(id CellID) bool { return id >= 0 && int(id) < len(g.cells) }

// Cells returns the cell arena for read-only iteration
func (g *Graph) Cells() []Cell { return g.cells }

// MuckyCount returns the size of the mucky set
func (g *Graph) MuckyCount() int { return len(g.mucky) }

// MuckyCells returns the mucky set in ascending id order
func (g *Graph) MuckyCells() []CellID {
	ids := make([]CellID, 0, len(g.mucky))
	for id := range g.mucky {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// RipeCount counts ripe cells
func (g *Graph) RipeCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].ripe {
			n++
		}
	}
	return n
}

// RandomNeighbor returns a uniformly chosen neighbor of id matching pred, or NoCell
func (g *Graph) RandomNeighbor(id CellID, pred func(*Cell) bool) CellID {
	g.candidates = g.candidates[:0]
	for _, n := range g.cells[id].Neighbors {
		if pred == nil || pred(&g.cells[n]) {
			g.candidates = append(g.candidates, n)
		}
	}
	if len(g.candidates) == 0 {
		return NoCell
	}
	return g.candidates[g.rng.IntN(len(g.candidates))]
}

// RandomFreeCell returns a uniformly chosen unoccupied unripe cell, or NoCell
func (g *Graph) RandomFreeCell() CellID {
	g.candidates = g.candidates[:0]
	for i := range g.cells {
		c := &g.cells[i]
		if !c.Occupied() && !c.ripe {
			g.candidates = append(g.candidates, c.ID)
		}
	}
	if len(g.candidates) == 0 {
		return NoCell
	}
	return g.candidates[g.rng.IntN(len(g.candidates))]
}

// CellAt returns the cell whose display position is nearest to pos within radius, or NoCell
func (g *Graph) CellAt(pos vmath.Vec2, radius float64) CellID {
	best := NoCell
	bestSq := radius * radius
	for i := range g.cells {
		if d := g.cells[i].Display.DistanceSq(pos); d <= bestSq {
			best, bestSq = CellID(i), d
		}
	}
	return best
}

// UpdateGoals recomputes cell goal positions from the pointer
// Clean cells lean away from a pressed pointer with an exponential falloff, mucky cells stay put
func (g *Graph) UpdateGoals(active bool, pointer vmath.Vec2) {
	for i := range g.cells {
		c := &g.cells[i]
		if c.mucky || !active {
			c.Goal = c.Rest
			continue
		}
		local := pointer.Sub(c.Rest)
		offset := -local.Length() / parameter.CellPushFalloff
		offset *= math.Pow(parameter.CellPushBase, offset)
		c.Goal = c.Rest.Add(local.Scale(offset))
	}
}

// Smooth moves every display position one step toward its goal
func (g *Graph) Smooth() {
	for i := range g.cells {
		c := &g.cells[i]
		c.Display = c.Display.Lerp(c.Goal, parameter.CellSmoothing)
	}
}

func (g *Graph) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

func (g *Graph) notify(id CellID) {
	if g.listener != nil {
		g.listener.OnContagionChanged(id)
	}
}
