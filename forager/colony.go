package forager

import (
	"math/rand/v2"

	"github.com/lixenwraith/muckpond/engine"
	"github.com/lixenwraith/muckpond/event"
	"github.com/lixenwraith/muckpond/garden"
	"github.com/lixenwraith/muckpond/vmath"
)

// Colony owns the forager arena, indexed by garden.AgentID
type Colony struct {
	members []*Forager
	graph   *garden.Graph
}

// NewColony creates n unplaced foragers with ids 0..n-1
func NewColony(n int, graph *garden.Graph, sched *engine.Scheduler, rng *rand.Rand, events *event.Emitter) *Colony {
	c := &Colony{
		members: make([]*Forager, n),
		graph:   graph,
	}
	for i := range c.members {
		c.members[i] = New(garden.AgentID(i), graph, sched, rng, events)
	}
	return c
}

func (c *Colony) Len() int { return len(c.members) }

// Get returns the forager with the given id
func (c *Colony) Get(id garden.AgentID) *Forager { return c.members[id] }

// Members returns the arena for read-only iteration
func (c *Colony) Members() []*Forager { return c.members }

// PlaceAll resets every forager and places each on a random free cell
// Returns the number of foragers placed
func (c *Colony) PlaceAll() int {
	placed := 0
	for _, f := range c.members {
		f.Reset()
		cell := c.graph.RandomFreeCell()
		if cell == garden.NoCell {
			continue
		}
		if f.Place(cell) {
			placed++
		}
	}
	return placed
}

// At returns the forager drawn nearest to pos within radius, or nil
func (c *Colony) At(pos vmath.Vec2, radius float64) *Forager {
	var best *Forager
	bestSq := radius * radius
	for _, f := range c.members {
		if f.cell == garden.NoCell {
			continue
		}
		if d := c.graph.Cell(f.cell).Display.DistanceSq(pos); d <= bestSq {
			best, bestSq = f, d
		}
	}
	return best
}

// Placements maps each placed forager to its cell, for occupancy checks
func (c *Colony) Placements() map[garden.AgentID]garden.CellID {
	out := make(map[garden.AgentID]garden.CellID, len(c.members))
	for _, f := range c.members {
		if f.cell != garden.NoCell {
			out[f.ID] = f.cell
		}
	}
	return out
}
