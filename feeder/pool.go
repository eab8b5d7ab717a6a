package feeder

import (
	"math/rand/v2"

	"github.com/lixenwraith/muckpond/event"
	"github.com/lixenwraith/muckpond/garden"
	"github.com/lixenwraith/muckpond/parameter"
	"github.com/lixenwraith/muckpond/vmath"
)

// Pool owns every feeder and runs the cluster lifecycle
// Clusters are depth one: members point at their root, the root holds a fixed member array
type Pool struct {
	feeders []Feeder

	graph  *garden.Graph
	rng    *rand.Rand
	events *event.Emitter
	bounds vmath.Vec2

	// time accumulates Step deltas, drives the throb phase
	time float64

	merges uint64
	bursts uint64

	eligible []int
	merged   []bool
}

// NewPool creates n feeders and scatters them with Reset
func NewPool(n int, graph *garden.Graph, rng *rand.Rand, events *event.Emitter) *Pool {
	p := &Pool{
		feeders:  make([]Feeder, n),
		graph:    graph,
		rng:      rng,
		events:   events,
		bounds:   vmath.V2(parameter.ScreenWidth, parameter.ScreenHeight),
		eligible: make([]int, 0, n),
		merged:   make([]bool, n),
	}
	for i := range p.feeders {
		p.feeders[i].ID = i
	}
	p.Reset()
	return p
}

// Reset detaches every feeder and scatters it over the play area with a random drift
func (p *Pool) Reset() {
	for i := range p.feeders {
		f := &p.feeders[i]
		f.detach()
		f.Position = vmath.V2(p.rng.Float64()-0.5, p.rng.Float64()-0.5).Mul(p.bounds)
		f.Velocity = vmath.V2(p.rng.Float64()-0.5, p.rng.Float64()-0.5).Scale(parameter.FeederSpawnVelocity)
	}
}

func (p *Pool) Len() int { return len(p.feeders) }

// Feeder returns the feeder with the given id, read-only outside this package
func (p *Pool) Feeder(id int) *Feeder { return &p.feeders[id] }

// Roots returns ids of all roots in feeder order
func (p *Pool) Roots() []int {
	var roots []int
	for i := range p.feeders {
		if p.feeders[i].IsRoot() {
			roots = append(roots, i)
		}
	}
	return roots
}

// ClusterCount returns the number of roots
func (p *Pool) ClusterCount() int {
	n := 0
	for i := range p.feeders {
		if p.feeders[i].IsRoot() {
			n++
		}
	}
	return n
}

// Absolute returns where a feeder is drawn: its root's anchor plus its own offset
func (p *Pool) Absolute(id int) vmath.Vec2 {
	f := &p.feeders[id]
	return p.feeders[f.Root()].Position.Add(f.Offset)
}

// Merges returns the total number of successful combines
func (p *Pool) Merges() uint64 { return p.merges }

// Bursts returns the total number of bursts
func (p *Pool) Bursts() uint64 { return p.bursts }

// Time returns the accumulated step time
func (p *Pool) Time() float64 { return p.time }
