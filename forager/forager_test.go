package forager

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/lixenwraith/muckpond/engine"
	"github.com/lixenwraith/muckpond/event"
	"github.com/lixenwraith/muckpond/garden"
	"github.com/lixenwraith/muckpond/parameter"
	"github.com/lixenwraith/muckpond/vmath"
)

type testRig struct {
	graph *garden.Graph
	sched *engine.Scheduler
	queue *event.EventQueue
	rng   *rand.Rand
	emit  *event.Emitter
}

func newRig(t *testing.T, l garden.Layout, seed uint64) *testRig {
	t.Helper()
	sched := engine.NewScheduler()
	queue := event.NewEventQueue()
	rng := rand.New(rand.NewPCG(seed, 7))
	emit := event.NewEmitter(queue, sched)
	g, err := garden.NewGraphFromLayout(l, sched, rng, emit)
	if err != nil {
		t.Fatalf("NewGraphFromLayout: %v", err)
	}
	return &testRig{graph: g, sched: sched, queue: queue, rng: rng, emit: emit}
}

func (r *testRig) forager(id garden.AgentID) *Forager {
	return New(id, r.graph, r.sched, r.rng, r.emit)
}

// flower is a center cell 0 ringed by six linked neighbors 1..6
func flower() garden.Layout {
	l := garden.Layout{Positions: []vmath.Vec2{vmath.Zero}}
	for k := 0; k < 6; k++ {
		a := float64(k) * math.Pi / 3
		l.Positions = append(l.Positions, vmath.V2(math.Cos(a), math.Sin(a)).Scale(100))
		l.Edges = append(l.Edges,
			[2]garden.CellID{0, garden.CellID(k + 1)},
			[2]garden.CellID{garden.CellID(k + 1), garden.CellID((k+1)%6 + 1)},
		)
	}
	return l
}

func line(n int) garden.Layout {
	var l garden.Layout
	for i := 0; i < n; i++ {
		l.Positions = append(l.Positions, vmath.V2(float64(i)*100, 0))
		if i > 0 {
			l.Edges = append(l.Edges, [2]garden.CellID{garden.CellID(i - 1), garden.CellID(i)})
		}
	}
	return l
}

func TestJumpPrefersRipeMucky(t *testing.T) {
	const a, b, c = 0, 1, 2
	for seed := uint64(0); seed < 50; seed++ {
		r := newRig(t, flower(), seed)
		f := r.forager(0)
		if !f.Place(a) {
			t.Fatal("Expected placement on cell A")
		}
		r.graph.RipenAlga(b)
		r.graph.ReceiveMuck(b, vmath.Zero)
		r.graph.RipenAlga(c)

		if !f.Jump() {
			t.Fatalf("seed %d: expected a jump", seed)
		}
		if f.Cell() != b {
			t.Fatalf("seed %d: expected jump to ripe mucky B, got %d", seed, f.Cell())
		}
	}
}

func TestJumpFallsBackToRipe(t *testing.T) {
	r := newRig(t, flower(), 3)
	f := r.forager(0)
	f.Place(0)
	r.graph.RipenAlga(4)
	r.graph.ReceiveMuck(5, vmath.Zero) // mucky but not ripe

	if !f.Jump() || f.Cell() != 4 {
		t.Fatalf("Expected fallback jump to ripe cell 4, got %d", f.Cell())
	}
	if r.graph.Occupant(0) != garden.NoAgent || r.graph.Occupant(4) != f.ID {
		t.Error("Expected occupancy moved with the forager")
	}
	if err := r.graph.CheckOccupancy(map[garden.AgentID]garden.CellID{0: 4}); err != nil {
		t.Error(err)
	}
}

func TestJumpSkipsOccupiedTargets(t *testing.T) {
	r := newRig(t, line(2), 1)
	f := r.forager(0)
	g := r.forager(1)
	f.Place(0)
	g.Place(1)
	// Cell 1 cannot ripen while occupied
	if r.graph.RipenAlga(1) {
		t.Fatal("Expected ripening an occupied cell to be refused")
	}
	if f.Jump() {
		t.Error("Expected no jump without an edible neighbor")
	}
}

func TestJumpWithoutTargetStays(t *testing.T) {
	r := newRig(t, line(3), 1)
	f := r.forager(0)
	f.Place(1)

	if f.Jump() {
		t.Error("Expected no jump without ripe neighbors")
	}
	if f.Cell() != 1 {
		t.Errorf("Expected forager to stay on 1, got %d", f.Cell())
	}
	h := f.Heading()
	if h != 0 && math.Abs(h) != math.Pi {
		t.Errorf("Expected heading toward a row neighbor, got %v", h)
	}
}

func TestConsumeAfterLanding(t *testing.T) {
	r := newRig(t, line(2), 1)
	f := r.forager(0)
	f.Place(0)
	r.graph.RipenAlga(1)
	r.graph.ReceiveMuck(1, vmath.Zero)
	r.queue.Consume()

	f.Jump()
	if !r.graph.Cell(1).Ripe() || !r.graph.Cell(1).Landing() {
		t.Fatal("Expected cell ripe and landing before the consume delay")
	}
	if err := r.graph.CheckInvariants(); err != nil {
		t.Fatalf("mid landing: %v", err)
	}
	if f.Heading() != 0 {
		t.Errorf("Expected heading 0 toward +X, got %v", f.Heading())
	}

	r.sched.Advance(parameter.ForagerConsumeDelay)
	c := r.graph.Cell(1)
	if c.Ripe() || c.Mucky() {
		t.Errorf("Expected cell eaten and cleaned, ripe=%v mucky=%v", c.Ripe(), c.Mucky())
	}

	var types []event.EventType
	for _, ev := range r.queue.Consume() {
		types = append(types, ev.Type)
	}
	if len(types) != 2 || types[0] != event.EventForagerJumped || types[1] != event.EventCellConsumed {
		t.Errorf("Expected jumped then consumed events, got %v", types)
	}
}

func TestResetMidLandingSkipsConsume(t *testing.T) {
	r := newRig(t, line(2), 1)
	f := r.forager(0)
	f.Place(0)
	r.graph.RipenAlga(1)
	f.Jump()

	f.Reset()
	r.sched.Advance(parameter.ForagerConsumeDelay)

	if !r.graph.Cell(1).Ripe() {
		t.Error("Expected stale consume to be skipped")
	}
	if r.graph.Cell(1).Occupied() {
		t.Error("Expected reset forager to release its cell")
	}
	if err := r.graph.CheckInvariants(); err != nil {
		t.Error(err)
	}
}

func TestJumpChain(t *testing.T) {
	r := newRig(t, line(3), 4)
	f := r.forager(0)
	f.Place(0)
	r.graph.RipenAlga(1)

	for i := 0; i < 100; i++ {
		r.sched.Advance(0.05)
	}
	if f.Cell() != 1 {
		t.Fatalf("Expected forager to have jumped to 1, got %d", f.Cell())
	}
	if r.graph.Cell(1).Ripe() {
		t.Error("Expected cell 1 eaten")
	}
	if r.sched.Pending() != 1 {
		t.Errorf("Expected a single live jump task, got %d", r.sched.Pending())
	}
}

func TestReplaceLeavesOneChain(t *testing.T) {
	r := newRig(t, line(3), 2)
	f := r.forager(0)
	f.Place(0)
	if f.Place(1) {
		t.Fatal("Expected Place on a placed forager to be refused")
	}
	f.Reset()
	f.Place(2)

	r.sched.Advance(parameter.ForagerJumpDelayMax)
	if r.sched.Pending() != 1 {
		t.Errorf("Expected the stale chain to go quiet, %d tasks pending", r.sched.Pending())
	}
	for i := 0; i < 10; i++ {
		r.sched.Advance(parameter.ForagerJumpDelayMax)
	}
	if r.sched.Pending() != 1 {
		t.Errorf("Expected exactly one chain after replace, got %d", r.sched.Pending())
	}
}

func TestPokeSpreadsMuck(t *testing.T) {
	r := newRig(t, line(2), 1)
	f := r.forager(0)
	if f.Poke() {
		t.Error("Expected unplaced forager poke to be ignored")
	}
	f.Place(0)

	if !f.Poke() {
		t.Fatal("Expected poke to spread muck")
	}
	if !r.graph.Cell(1).Mucky() || r.graph.Cell(0).Mucky() {
		t.Error("Expected muck on the neighbor only")
	}
	if f.Poke() {
		t.Error("Expected poke with no clean neighbor to be ignored")
	}
}

func TestColonyPlaceAll(t *testing.T) {
	sched := engine.NewScheduler()
	rng := rand.New(rand.NewPCG(5, 6))
	g := garden.NewGraph(sched, rng, nil)
	colony := NewColony(parameter.ForagerCount, g, sched, rng, nil)

	for round := 0; round < 5; round++ {
		if n := colony.PlaceAll(); n != parameter.ForagerCount {
			t.Fatalf("round %d: expected %d placed, got %d", round, parameter.ForagerCount, n)
		}
		if err := g.CheckOccupancy(colony.Placements()); err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
		g.ResetAll()
	}
}

func TestColonyAt(t *testing.T) {
	r := newRig(t, line(3), 1)
	colony := NewColony(2, r.graph, r.sched, r.rng, r.emit)
	colony.Get(0).Place(0)
	colony.Get(1).Place(2)

	if got := colony.At(vmath.V2(195, 10), parameter.ForagerPokeRadius); got != colony.Get(1) {
		t.Errorf("Expected forager 1 under the pointer, got %v", got)
	}
	if got := colony.At(vmath.V2(100, 0), parameter.ForagerPokeRadius); got != nil {
		t.Errorf("Expected no forager on the empty cell, got %v", got.ID)
	}
}
