package forager

import (
	"math/rand/v2"

	"github.com/lixenwraith/muckpond/engine"
	"github.com/lixenwraith/muckpond/event"
	"github.com/lixenwraith/muckpond/garden"
	"github.com/lixenwraith/muckpond/parameter"
)

// Forager occupies exactly one cell and periodically jumps onto a ripe neighbor to eat it
// Ripe mucky neighbors are preferred, so foragers are the pond's only way to clean muck
type Forager struct {
	ID garden.AgentID

	cell    garden.CellID
	heading float64 // Radians, toward the last jump target or a glanced-at neighbor

	// generation guards the jump chain and pending consume callbacks
	generation uint64
	jumps      uint64

	graph  *garden.Graph
	sched  *engine.Scheduler
	rng    *rand.Rand
	events *event.Emitter
}

// New creates an unplaced forager, Place must be called before it acts
func New(id garden.AgentID, graph *garden.Graph, sched *engine.Scheduler, rng *rand.Rand, events *event.Emitter) *Forager {
	return &Forager{
		ID:     id,
		cell:   garden.NoCell,
		graph:  graph,
		sched:  sched,
		rng:    rng,
		events: events,
	}
}

// Cell returns the occupied cell, NoCell only between Reset and Place
func (f *Forager) Cell() garden.CellID { return f.cell }

func (f *Forager) Heading() float64 { return f.heading }

func (f *Forager) Generation() uint64 { return f.generation }

// Jumps returns the number of successful jumps since creation
func (f *Forager) Jumps() uint64 { return f.jumps }

// Place links the forager to an unoccupied unripe cell and starts a fresh jump chain
func (f *Forager) Place(id garden.CellID) bool {
	if f.cell != garden.NoCell || !f.graph.Place(f.ID, id) {
		return false
	}
	f.cell = id
	f.generation++
	f.face(id, f.graph.RandomNeighbor(id, garden.Any))
	f.scheduleJump()
	return true
}

// Reset silences the current jump chain and unlinks the forager
// After a board reset the graph has already evicted it, Release is then a no-op
func (f *Forager) Reset() {
	f.generation++
	if f.cell != garden.NoCell {
		f.graph.Release(f.ID, f.cell)
	}
	f.cell = garden.NoCell
}

// Jump performs one jump attempt immediately
// Returns true when the forager moved; the landing cell is eaten after ForagerConsumeDelay
func (f *Forager) Jump() bool {
	if f.cell == garden.NoCell {
		return false
	}
	from := f.cell
	target := f.graph.RandomNeighbor(from, garden.EdibleMucky)
	if target == garden.NoCell {
		target = f.graph.RandomNeighbor(from, garden.Edible)
	}
	if target == garden.NoCell {
		f.face(from, f.graph.RandomNeighbor(from, garden.Any))
		return false
	}

	if !f.graph.Move(f.ID, from, target) {
		return false
	}
	f.cell = target
	f.jumps++
	f.face(from, target)

	f.events.Emit(event.EventForagerJumped, &event.ForagerJumpedPayload{
		Forager: int(f.ID),
		From:    int(from),
		To:      int(target),
	})

	if f.sched != nil {
		gen := f.generation
		f.sched.After(parameter.ForagerConsumeDelay, func() { f.consume(gen, target) })
	}
	return true
}

// Poke spreads muck from the forager's cell to one clean neighbor
func (f *Forager) Poke() bool {
	if f.cell == garden.NoCell {
		return false
	}
	return f.graph.SpreadMuckFrom(f.cell)
}

func (f *Forager) scheduleJump() {
	if f.sched == nil {
		return
	}
	gen := f.generation
	delay := parameter.ForagerJumpDelayMin + f.rng.Float64()*(parameter.ForagerJumpDelayMax-parameter.ForagerJumpDelayMin)
	f.sched.After(delay, func() { f.jumpTick(gen) })
}

func (f *Forager) jumpTick(gen uint64) {
	if gen != f.generation {
		return
	}
	f.Jump()
	f.scheduleJump()
}

// consume eats the landing cell only if this forager is still on it under the same generation
func (f *Forager) consume(gen uint64, cell garden.CellID) {
	if gen != f.generation || f.cell != cell || f.graph.Occupant(cell) != f.ID {
		return
	}
	f.graph.Consume(cell)
}

func (f *Forager) face(from, to garden.CellID) {
	if to == garden.NoCell {
		return
	}
	f.heading = f.graph.Cell(to).Display.Sub(f.graph.Cell(from).Display).Angle()
}
