package sim

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/muckpond/feeder"
	"github.com/lixenwraith/muckpond/garden"
	"github.com/lixenwraith/muckpond/vmath"
)

// CellView is the read-only state of one cell
type CellView struct {
	ID       garden.CellID
	Row, Col int
	Position vmath.Vec2
	Ripe     bool
	Mucky    bool
	Occupant garden.AgentID
}

// ForagerView is the read-only state of one forager
type ForagerView struct {
	ID       garden.AgentID
	Cell     garden.CellID
	Position vmath.Vec2
	Heading  float64
}

// Snapshot is a copy of everything the presentation layer draws
type Snapshot struct {
	Time      float64
	Tick      uint64
	Round     uuid.UUID
	CanEnd    bool
	Resetting bool
	Fade      float64 // Reset fade progress in [0, 1]

	Cells    []CellView
	Foragers []ForagerView
	Clusters []feeder.Cluster
}

// Snapshot copies the current state, safe to hand to another goroutine
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Time:      s.sched.Now(),
		Tick:      s.ticks,
		Round:     s.endgame.Round(),
		CanEnd:    s.endgame.CanEnd(),
		Resetting: s.endgame.Resetting(),
		Fade:      s.endgame.Progress(),
		Cells:     make([]CellView, s.graph.Len()),
		Foragers:  make([]ForagerView, 0, s.colony.Len()),
		Clusters:  s.pool.Clusters(),
	}

	cells := s.graph.Cells()
	for i := range cells {
		c := &cells[i]
		snap.Cells[i] = CellView{
			ID:       c.ID,
			Row:      c.Row,
			Col:      c.Col,
			Position: c.Display,
			Ripe:     c.Ripe(),
			Mucky:    c.Mucky(),
			Occupant: c.Occupant(),
		}
	}

	for _, f := range s.colony.Members() {
		view := ForagerView{ID: f.ID, Cell: f.Cell(), Heading: f.Heading()}
		if f.Cell() != garden.NoCell {
			view.Position = s.graph.Cell(f.Cell()).Display
		}
		snap.Foragers = append(snap.Foragers, view)
	}
	return snap
}
