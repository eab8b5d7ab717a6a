package garden

import (
	"github.com/lixenwraith/muckpond/event"
	"github.com/lixenwraith/muckpond/parameter"
	"github.com/lixenwraith/muckpond/vmath"
)

// RipenAlga ripens an unripe, unoccupied cell, returning false when ignored
func (g *Graph) RipenAlga(id CellID) bool {
	c := &g.cells[id]
	if c.ripe || c.Occupied() {
		return false
	}
	c.ripe = true
	g.events.Emit(event.EventCellRipened, &event.CellPayload{Cell: int(id), Position: c.Display})
	return true
}

// Consume eats a ripe cell on behalf of its occupant, cleaning any muck
// The spread chain of the cell is invalidated, the listener is notified even if the cell was clean
func (g *Graph) Consume(id CellID) bool {
	c := &g.cells[id]
	if !c.ripe {
		return false
	}
	wasMucky := c.mucky
	c.ripe = false
	c.mucky = false
	c.landing = false
	c.generation++
	delete(g.mucky, id)

	g.events.Emit(event.EventCellConsumed, &event.CellConsumedPayload{
		Cell:     int(id),
		Forager:  int(c.occupant),
		WasMucky: wasMucky,
	})
	g.notify(id)
	return true
}

// SpreadMuckFrom passes muck from id to one uniformly chosen clean neighbor
// Returns false when every neighbor is already mucky
func (g *Graph) SpreadMuckFrom(id CellID) bool {
	target := g.RandomNeighbor(id, Clean)
	if target == NoCell {
		return false
	}
	g.ReceiveMuck(target, g.cells[id].Display)
	return true
}

// ReceiveMuck turns a clean cell mucky and starts its spread chain
func (g *Graph) ReceiveMuck(id CellID, origin vmath.Vec2) {
	c := &g.cells[id]
	if c.mucky {
		return
	}
	c.mucky = true
	g.mucky[id] = struct{}{}

	g.events.Emit(event.EventCellMuckReceived, &event.MuckReceivedPayload{Cell: int(id), Origin: origin})
	// Scheduled before notifying: a listener resetting the board bumps the generation and silences it
	g.scheduleSpread(id)
	g.notify(id)
}

// scheduleSpread queues the next spread attempt stamped with the current generation
func (g *Graph) scheduleSpread(id CellID) {
	if g.sched == nil {
		return
	}
	gen := g.cells[id].generation
	delay := g.uniform(parameter.MuckSpreadDelayMin, parameter.MuckSpreadDelayMax)
	g.sched.After(delay, func() { g.spreadTick(id, gen) })
}

func (g *Graph) spreadTick(id CellID, gen uint64) {
	if !g.alive(id, gen) {
		return
	}
	if g.rng.Float64() < parameter.MuckSpreadChance {
		g.SpreadMuckFrom(id)
	}
	// Spreading notifies listeners synchronously, re-check before rescheduling
	if !g.alive(id, gen) {
		return
	}
	g.scheduleSpread(id)
}

func (g *Graph) alive(id CellID, gen uint64) bool {
	c := &g.cells[id]
	return c.generation == gen && c.mucky
}

// ResetCell restores a cell to its initial state in place
// Returns the evicted occupant so the caller can relink it, or NoAgent
func (g *Graph) ResetCell(id CellID) AgentID {
	c := &g.cells[id]
	evicted := c.occupant
	c.reset()
	delete(g.mucky, id)
	return evicted
}

// ResetAll resets every cell and clears the mucky set
func (g *Graph) ResetAll() {
	for i := range g.cells {
		g.cells[i].reset()
	}
	clear(g.mucky)
}
