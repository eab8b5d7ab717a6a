package garden

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/lixenwraith/muckpond/core"
	"github.com/lixenwraith/muckpond/engine"
	"github.com/lixenwraith/muckpond/event"
	"github.com/lixenwraith/muckpond/parameter"
	"github.com/lixenwraith/muckpond/vmath"
)

type testRig struct {
	g     *Graph
	sched *engine.Scheduler
	queue *event.EventQueue
}

func newRig(t *testing.T, l Layout, seed uint64) *testRig {
	t.Helper()
	sched := engine.NewScheduler()
	queue := event.NewEventQueue()
	g, err := NewGraphFromLayout(l, sched, rand.New(rand.NewPCG(seed, seed^0x9e37)), event.NewEmitter(queue, sched))
	if err != nil {
		t.Fatalf("NewGraphFromLayout: %v", err)
	}
	return &testRig{g: g, sched: sched, queue: queue}
}

// line builds n cells on a row, each linked to the next
func line(n int) Layout {
	var l Layout
	for i := 0; i < n; i++ {
		l.Positions = append(l.Positions, vmath.V2(float64(i)*100, 0))
		if i > 0 {
			l.Edges = append(l.Edges, [2]CellID{CellID(i - 1), CellID(i)})
		}
	}
	return l
}

type countingListener struct{ calls []CellID }

func (c *countingListener) OnContagionChanged(id CellID) { c.calls = append(c.calls, id) }

func eventTypes(q *event.EventQueue) []event.EventType {
	var out []event.EventType
	for _, ev := range q.Consume() {
		out = append(out, ev.Type)
	}
	return out
}

func TestHexLayoutShape(t *testing.T) {
	g := NewGraph(engine.NewScheduler(), rand.New(rand.NewPCG(1, 2)), nil)

	if g.Len() != parameter.GridCellCount {
		t.Fatalf("Expected %d cells, got %d", parameter.GridCellCount, g.Len())
	}
	if g.Len() != 86 {
		t.Fatalf("Expected 86 cells in the 9x10 offset grid, got %d", g.Len())
	}

	first := g.Cell(0)
	if first.Rest != vmath.V2(-495, -360) {
		t.Errorf("Expected first cell at (-495,-360), got %v", first.Rest)
	}
	if len(first.Neighbors) != 2 {
		t.Errorf("Expected corner cell to have 2 neighbors, got %d", len(first.Neighbors))
	}
	last := g.Cell(CellID(g.Len() - 1))
	if last.Rest != vmath.V2(495, 360) {
		t.Errorf("Expected last cell at (495,360), got %v", last.Rest)
	}

	maxDegree := 0
	for i := range g.Cells() {
		c := g.Cell(CellID(i))
		if d := len(c.Neighbors); d > maxDegree {
			maxDegree = d
		}
		// Every neighbor is an adjacent grid site
		for _, n := range c.Neighbors {
			if d := c.Rest.DistanceSq(g.Cell(n).Rest); d > 111*111 {
				t.Errorf("cell %d neighbor %d too far apart: %v", c.ID, n, d)
			}
		}
	}
	if maxDegree != 6 {
		t.Errorf("Expected interior degree 6, got %d", maxDegree)
	}

	if err := g.CheckInvariants(); err != nil {
		t.Errorf("fresh graph: %v", err)
	}
}

func TestGraphSymmetry(t *testing.T) {
	g := NewGraph(nil, rand.New(rand.NewPCG(3, 4)), nil)
	for i := range g.Cells() {
		a := g.Cell(CellID(i))
		for _, b := range a.Neighbors {
			found := false
			for _, back := range g.Cell(b).Neighbors {
				if back == a.ID {
					found = true
				}
			}
			if !found {
				t.Fatalf("edge %d->%d has no reverse", a.ID, b)
			}
		}
	}
}

func TestLayoutValidation(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
	}{
		{"empty", Layout{}},
		{"edge out of range", Layout{Positions: []vmath.Vec2{{}}, Edges: [][2]CellID{{0, 1}}}},
		{"self edge", Layout{Positions: []vmath.Vec2{{}, {}}, Edges: [][2]CellID{{1, 1}}}},
		{"rows mismatch", Layout{Positions: []vmath.Vec2{{}}, Rows: []int{0, 1}, Cols: []int{0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGraphFromLayout(tt.layout, nil, nil, nil)
			if !errors.Is(err, ErrLayout) {
				t.Errorf("Expected ErrLayout, got %v", err)
			}
		})
	}
}

func TestDuplicateEdgesCollapse(t *testing.T) {
	l := line(2)
	l.Edges = append(l.Edges, [2]CellID{1, 0})
	r := newRig(t, l, 1)
	if n := len(r.g.Cell(0).Neighbors); n != 1 {
		t.Errorf("Expected duplicate edge to collapse, got %d neighbors", n)
	}
}

func TestRipenAlga(t *testing.T) {
	r := newRig(t, line(2), 1)

	if !r.g.RipenAlga(0) {
		t.Fatal("Expected clean unoccupied cell to ripen")
	}
	if r.g.RipenAlga(0) {
		t.Error("Expected ripening a ripe cell to be ignored")
	}

	r.g.Place(7, 1)
	if r.g.RipenAlga(1) {
		t.Error("Expected ripening an occupied cell to be ignored")
	}
	if r.g.Cell(1).Ripe() {
		t.Error("Occupied cell must not be ripe")
	}

	got := eventTypes(r.queue)
	if len(got) != 1 || got[0] != event.EventCellRipened {
		t.Errorf("Expected a single EventCellRipened, got %v", got)
	}
}

func TestConsume(t *testing.T) {
	r := newRig(t, line(2), 1)
	listener := &countingListener{}
	r.g.SetListener(listener)

	if r.g.Consume(0) {
		t.Error("Expected consuming an unripe cell to be ignored")
	}

	r.g.RipenAlga(0)
	r.g.ReceiveMuck(0, vmath.Zero)
	if r.g.MuckyCount() != 1 {
		t.Fatalf("Expected 1 mucky cell, got %d", r.g.MuckyCount())
	}
	if !r.g.Consume(0) {
		t.Fatal("Expected ripe cell to be consumed")
	}

	c := r.g.Cell(0)
	if c.Ripe() || c.Mucky() {
		t.Errorf("Expected consumed cell clean and unripe, ripe=%v mucky=%v", c.Ripe(), c.Mucky())
	}
	if r.g.MuckyCount() != 0 {
		t.Errorf("Expected mucky set empty after consume, got %d", r.g.MuckyCount())
	}
	if len(listener.calls) != 2 {
		t.Errorf("Expected 2 contagion notifications (muck, consume), got %d", len(listener.calls))
	}

	var consumed *event.CellConsumedPayload
	for _, ev := range r.queue.Consume() {
		if ev.Type == event.EventCellConsumed {
			consumed = ev.Payload.(*event.CellConsumedPayload)
		}
	}
	if consumed == nil || !consumed.WasMucky {
		t.Errorf("Expected consumed payload with WasMucky, got %+v", consumed)
	}
}

func TestSpreadMuckSaturated(t *testing.T) {
	r := newRig(t, line(3), 1)
	r.g.ReceiveMuck(0, vmath.Zero)
	r.g.ReceiveMuck(2, vmath.Zero)

	if r.g.SpreadMuckFrom(1) {
		t.Error("Expected no spread when every neighbor is mucky")
	}
	if r.g.Cell(1).Mucky() {
		t.Error("Source cell must not turn mucky itself")
	}
	if !r.g.SpreadMuckFrom(0) || !r.g.Cell(1).Mucky() {
		t.Error("Expected spread from 0 into its only clean neighbor")
	}
	if err := r.g.CheckInvariants(); err != nil {
		t.Error(err)
	}
}

func TestReceiveMuckOriginAndIdempotence(t *testing.T) {
	r := newRig(t, line(2), 1)
	r.g.SpreadMuckFrom(0)

	events := r.queue.Consume()
	if len(events) != 1 || events[0].Type != event.EventCellMuckReceived {
		t.Fatalf("Expected one muck event, got %v", events)
	}
	p := events[0].Payload.(*event.MuckReceivedPayload)
	if p.Cell != 1 || p.Origin != r.g.Cell(0).Display {
		t.Errorf("Expected muck on cell 1 from cell 0 position, got %+v", p)
	}

	pending := r.sched.Pending()
	r.g.ReceiveMuck(1, vmath.Zero)
	if r.sched.Pending() != pending {
		t.Error("Receiving muck twice must not start a second chain")
	}
}

func TestSpreadChainPersistsWhileMucky(t *testing.T) {
	r := newRig(t, Layout{Positions: []vmath.Vec2{{}}}, 5)
	r.g.ReceiveMuck(0, vmath.Zero)

	for i := 0; i < 50; i++ {
		r.sched.Advance(parameter.MuckSpreadDelayMax)
		if r.sched.Pending() != 1 {
			t.Fatalf("iteration %d: expected one live chain task, got %d", i, r.sched.Pending())
		}
	}
}

func TestSpreadChainEventuallySpreads(t *testing.T) {
	r := newRig(t, line(2), 11)
	r.g.ReceiveMuck(0, vmath.Zero)

	for i := 0; i < 200 && !r.g.Cell(1).Mucky(); i++ {
		r.sched.Advance(parameter.MuckSpreadDelayMax)
	}
	if !r.g.Cell(1).Mucky() {
		t.Fatal("Expected muck to reach the neighbor")
	}
	if r.g.MuckyCount() != 2 {
		t.Errorf("Expected 2 mucky cells, got %d", r.g.MuckyCount())
	}
}

func TestConsumeStopsSpreadChain(t *testing.T) {
	r := newRig(t, line(2), 3)
	r.g.RipenAlga(0)
	r.g.ReceiveMuck(0, vmath.Zero)
	gen := r.g.Cell(0).Generation()

	r.g.Consume(0)
	if r.g.Cell(0).Generation() == gen {
		t.Fatal("Expected consume to bump the generation")
	}

	r.sched.Advance(parameter.MuckSpreadDelayMax)
	if r.sched.Pending() != 0 {
		t.Errorf("Expected stale chain to stop, %d tasks pending", r.sched.Pending())
	}
	if r.g.Cell(1).Mucky() {
		t.Error("Stale chain must not spread")
	}
}

func TestResetStopsSpreadChainAndEvicts(t *testing.T) {
	r := newRig(t, line(2), 3)
	r.g.ReceiveMuck(0, vmath.Zero)
	r.g.Place(4, 0)

	if evicted := r.g.ResetCell(0); evicted != 4 {
		t.Errorf("Expected evicted agent 4, got %d", evicted)
	}
	if r.g.Cell(0).Occupied() || r.g.Cell(0).Mucky() {
		t.Error("Expected reset cell empty and clean")
	}
	r.sched.Advance(parameter.MuckSpreadDelayMax)
	if r.sched.Pending() != 0 {
		t.Errorf("Expected reset to silence the chain, %d pending", r.sched.Pending())
	}

	r.g.ReceiveMuck(1, vmath.Zero)
	r.g.ResetAll()
	if r.g.MuckyCount() != 0 {
		t.Errorf("Expected ResetAll to clear the set, got %d", r.g.MuckyCount())
	}
	if err := r.g.CheckInvariants(); err != nil {
		t.Error(err)
	}
}

func TestMoveIsAtomic(t *testing.T) {
	r := newRig(t, line(3), 1)
	if !r.g.Place(1, 0) || !r.g.Place(2, 2) {
		t.Fatal("Expected placement on free cells")
	}
	if r.g.Place(3, 0) {
		t.Error("Expected placement on an occupied cell to fail")
	}

	r.g.RipenAlga(1)
	if !r.g.Move(1, 0, 1) {
		t.Fatal("Expected move onto the free ripe neighbor")
	}
	if r.g.Occupant(0) != NoAgent || r.g.Occupant(1) != 1 {
		t.Errorf("Expected occupancy swapped, got %d/%d", r.g.Occupant(0), r.g.Occupant(1))
	}
	if !r.g.Cell(1).Landing() {
		t.Error("Expected landing flag on a ripe destination")
	}
	if r.g.Move(2, 2, 1) {
		t.Error("Expected move onto an occupied cell to fail")
	}
	if r.g.Move(2, 0, 1) {
		t.Error("Expected move from a cell the agent does not occupy to fail")
	}

	if err := r.g.CheckOccupancy(map[AgentID]CellID{1: 1, 2: 2}); err != nil {
		t.Error(err)
	}
	if err := r.g.CheckInvariants(); err != nil {
		t.Error(err)
	}

	r.g.Consume(1)
	if r.g.Cell(1).Landing() {
		t.Error("Expected landing cleared after consume")
	}
}

func TestCheckInvariantsDetectsRipeOccupied(t *testing.T) {
	r := newRig(t, line(2), 1)
	r.g.RipenAlga(0)
	// Bypass Place to construct the broken state
	r.g.cells[0].occupant = 9

	err := r.g.CheckInvariants()
	if !errors.Is(err, core.ErrInvariant) {
		t.Errorf("Expected ErrInvariant, got %v", err)
	}
}

func TestRandomNeighbor(t *testing.T) {
	r := newRig(t, line(3), 9)
	r.g.RipenAlga(0)

	for i := 0; i < 20; i++ {
		if got := r.g.RandomNeighbor(1, Edible); got != 0 {
			t.Fatalf("Expected only edible neighbor 0, got %d", got)
		}
	}
	if got := r.g.RandomNeighbor(1, EdibleMucky); got != NoCell {
		t.Errorf("Expected no ripe mucky neighbor, got %d", got)
	}

	seen := map[CellID]bool{}
	for i := 0; i < 100; i++ {
		seen[r.g.RandomNeighbor(1, Any)] = true
	}
	if !seen[0] || !seen[2] {
		t.Errorf("Expected both neighbors chosen over 100 draws, got %v", seen)
	}
}

func TestRandomFreeCell(t *testing.T) {
	r := newRig(t, line(3), 2)
	r.g.Place(1, 0)
	r.g.RipenAlga(2)
	for i := 0; i < 20; i++ {
		if got := r.g.RandomFreeCell(); got != 1 {
			t.Fatalf("Expected only free cell 1, got %d", got)
		}
	}
	r.g.Place(2, 1)
	if got := r.g.RandomFreeCell(); got != NoCell {
		t.Errorf("Expected NoCell on a full board, got %d", got)
	}
}

func TestGoalsLeanAwayFromPointer(t *testing.T) {
	r := newRig(t, line(2), 1)
	r.g.ReceiveMuck(1, vmath.Zero)

	r.g.UpdateGoals(true, vmath.V2(20, 0))
	if goal := r.g.Cell(0).Goal; goal.X >= 0 || goal.Y != 0 {
		t.Errorf("Expected clean cell pushed to negative X, got %v", goal)
	}
	if goal := r.g.Cell(1).Goal; goal != r.g.Cell(1).Rest {
		t.Errorf("Expected mucky cell at rest, got %v", goal)
	}

	r.g.Smooth()
	c := r.g.Cell(0)
	want := c.Rest.Lerp(c.Goal, parameter.CellSmoothing)
	if c.Display != want {
		t.Errorf("Expected display %v after one smoothing step, got %v", want, c.Display)
	}

	r.g.UpdateGoals(false, vmath.V2(20, 0))
	if r.g.Cell(0).Goal != r.g.Cell(0).Rest {
		t.Error("Expected released pointer to restore rest goal")
	}
}

func TestCellAt(t *testing.T) {
	r := newRig(t, line(3), 1)
	if got := r.g.CellAt(vmath.V2(105, 5), 20); got != 1 {
		t.Errorf("Expected cell 1, got %d", got)
	}
	if got := r.g.CellAt(vmath.V2(50, 0), 20); got != NoCell {
		t.Errorf("Expected NoCell between cells, got %d", got)
	}
}
