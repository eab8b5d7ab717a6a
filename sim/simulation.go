package sim

import (
	"errors"
	"math"
	"math/rand/v2"
	"sync/atomic"

	"github.com/lixenwraith/muckpond/endgame"
	"github.com/lixenwraith/muckpond/engine"
	"github.com/lixenwraith/muckpond/event"
	"github.com/lixenwraith/muckpond/feeder"
	"github.com/lixenwraith/muckpond/forager"
	"github.com/lixenwraith/muckpond/garden"
	"github.com/lixenwraith/muckpond/parameter"
	"github.com/lixenwraith/muckpond/status"
	"github.com/lixenwraith/muckpond/vmath"
)

// Options configures a Simulation
type Options struct {
	// Seed drives every random draw, equal seeds and inputs replay identically
	Seed uint64

	// Status receives per-tick metrics, a private registry is created when nil
	Status *status.Registry
}

// Simulation wires the pond: cell graph, foragers, feeders and the endgame latch over one scheduler
// It is not safe for concurrent use; the host drives it from a single goroutine
type Simulation struct {
	rng     *rand.Rand
	sched   *engine.Scheduler
	queue   *event.EventQueue
	emitter *event.Emitter

	graph   *garden.Graph
	colony  *forager.Colony
	pool    *feeder.Pool
	endgame *endgame.Controller

	pointerActive bool
	pointer       vmath.Vec2

	ticks   uint64
	status  *status.Registry
	metrics metrics
}

// metrics caches registry pointers so publishing never touches the map mutex
type metrics struct {
	ticks     *atomic.Int64
	mucky     *atomic.Int64
	ripe      *atomic.Int64
	clusters  *atomic.Int64
	merges    *atomic.Int64
	bursts    *atomic.Int64
	resets    *atomic.Int64
	tasks     *atomic.Int64
	canEnd    *atomic.Bool
	resetting *atomic.Bool
	time      *status.AtomicFloat
}

// New builds a fresh board: foragers placed, feeders scattered
func New(opts Options) *Simulation {
	reg := opts.Status
	if reg == nil {
		reg = status.NewRegistry()
	}

	s := &Simulation{
		rng:    rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x6d75636b706f6e64)),
		sched:  engine.NewScheduler(),
		queue:  event.NewEventQueue(),
		status: reg,
	}
	s.emitter = event.NewEmitter(s.queue, s.sched)

	s.graph = garden.NewGraph(s.sched, s.rng, s.emitter)
	s.colony = forager.NewColony(parameter.ForagerCount, s.graph, s.sched, s.rng, s.emitter)
	s.pool = feeder.NewPool(parameter.FeederCount, s.graph, s.rng, s.emitter)

	s.endgame = endgame.New(s.graph, s.sched, s.emitter)
	s.endgame.OnReset(s.graph.ResetAll)
	s.endgame.OnReset(func() { s.colony.PlaceAll() })
	s.endgame.OnReset(s.pool.Reset)
	s.graph.SetListener(s.endgame)

	s.colony.PlaceAll()

	s.metrics = metrics{
		ticks:     reg.Ints.Get("sim.ticks"),
		mucky:     reg.Ints.Get("garden.mucky"),
		ripe:      reg.Ints.Get("garden.ripe"),
		clusters:  reg.Ints.Get("feeder.clusters"),
		merges:    reg.Ints.Get("feeder.merges"),
		bursts:    reg.Ints.Get("feeder.bursts"),
		resets:    reg.Ints.Get("endgame.resets"),
		tasks:     reg.Ints.Get("engine.tasks"),
		canEnd:    reg.Bools.Get("endgame.can_end"),
		resetting: reg.Bools.Get("endgame.resetting"),
		time:      reg.Floats.Get("sim.time"),
	}
	s.publish()
	return s
}

// Update advances the simulation by dt seconds, negative deltas count as zero
// Deltas above MaxTickDelta run as equal sub-ticks, at most MaxSubTicks of them
func (s *Simulation) Update(dt float64) {
	dt = max(dt, 0)
	steps := max(1, int(math.Ceil(dt/parameter.MaxTickDelta)))
	if steps > parameter.MaxSubTicks {
		steps = parameter.MaxSubTicks
		dt = parameter.MaxSubTicks * parameter.MaxTickDelta
	}
	sub := dt / float64(steps)
	for range steps {
		s.step(sub)
	}
	s.publish()
}

// step runs one tick: due timers first, then feeder physics and merging, then cell smoothing and seeding
func (s *Simulation) step(dt float64) {
	s.sched.Advance(dt)

	eligible := s.pool.Step(dt, s.pointerActive, s.pointer)

	s.graph.UpdateGoals(s.pointerActive, s.pointer)
	s.graph.Smooth()
	s.pool.SeedPass(eligible)

	s.ticks++
}

// SetPointer records the raw pointer state in pond coordinates
func (s *Simulation) SetPointer(active bool, pos vmath.Vec2) {
	s.pointerActive = active
	s.pointer = pos
}

// Poke spreads muck from the forager under pos, returns false when nothing was hit or spread
func (s *Simulation) Poke(pos vmath.Vec2) bool {
	f := s.colony.At(pos, parameter.ForagerPokeRadius)
	if f == nil {
		return false
	}
	return f.Poke()
}

// CompleteReset finishes a pending endgame reset ahead of the fade
func (s *Simulation) CompleteReset() bool {
	done := s.endgame.CompleteReset()
	if done {
		s.publish()
	}
	return done
}

// Events returns the queue of fire-and-forget presentation events
func (s *Simulation) Events() *event.EventQueue { return s.queue }

// Status returns the metrics registry
func (s *Simulation) Status() *status.Registry { return s.status }

func (s *Simulation) Graph() *garden.Graph { return s.graph }

func (s *Simulation) Colony() *forager.Colony { return s.colony }

func (s *Simulation) Pool() *feeder.Pool { return s.pool }

func (s *Simulation) Endgame() *endgame.Controller { return s.endgame }

func (s *Simulation) Scheduler() *engine.Scheduler { return s.sched }

// Ticks returns the number of Update calls
func (s *Simulation) Ticks() uint64 { return s.ticks }

// CheckInvariants verifies graph, occupancy and cluster invariants
func (s *Simulation) CheckInvariants() error {
	var errs []error
	if err := s.graph.CheckInvariants(); err != nil {
		errs = append(errs, err)
	}
	if err := s.graph.CheckOccupancy(s.colony.Placements()); err != nil {
		errs = append(errs, err)
	}
	if err := s.pool.CheckInvariants(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (s *Simulation) publish() {
	m := &s.metrics
	m.ticks.Store(int64(s.ticks))
	m.mucky.Store(int64(s.graph.MuckyCount()))
	m.ripe.Store(int64(s.graph.RipeCount()))
	m.clusters.Store(int64(s.pool.ClusterCount()))
	m.merges.Store(int64(s.pool.Merges()))
	m.bursts.Store(int64(s.pool.Bursts()))
	m.resets.Store(int64(s.endgame.Resets()))
	m.tasks.Store(int64(s.sched.Pending()))
	m.canEnd.Store(s.endgame.CanEnd())
	m.resetting.Store(s.endgame.Resetting())
	m.time.Set(s.sched.Now())
}
