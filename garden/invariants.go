package garden

import (
	"fmt"
	"slices"

	"github.com/lixenwraith/muckpond/core"
)

// CheckInvariants verifies edge symmetry, ripeness gating and mucky set conservation
func (g *Graph) CheckInvariants() error {
	muckyCells := 0
	for i := range g.cells {
		c := &g.cells[i]
		for _, n := range c.Neighbors {
			if !slices.Contains(g.cells[n].Neighbors, c.ID) {
				return fmt.Errorf("%w: edge %d->%d not symmetric", core.ErrInvariant, c.ID, n)
			}
		}
		if c.ripe && c.Occupied() && !c.landing {
			return fmt.Errorf("%w: cell %d ripe while occupied by %d", core.ErrInvariant, c.ID, c.occupant)
		}
		if c.landing && !c.Occupied() {
			return fmt.Errorf("%w: cell %d landing without occupant", core.ErrInvariant, c.ID)
		}
		_, inSet := g.mucky[c.ID]
		if c.mucky != inSet {
			return fmt.Errorf("%w: cell %d mucky=%v but set membership=%v", core.ErrInvariant, c.ID, c.mucky, inSet)
		}
		if c.mucky {
			muckyCells++
		}
	}
	if muckyCells != len(g.mucky) {
		return fmt.Errorf("%w: mucky set has %d entries, %d cells mucky", core.ErrInvariant, len(g.mucky), muckyCells)
	}
	return nil
}

// CheckOccupancy verifies that each agent in placements occupies exactly its cell and nothing else
func (g *Graph) CheckOccupancy(placements map[AgentID]CellID) error {
	seen := make(map[AgentID]CellID, len(placements))
	for i := range g.cells {
		c := &g.cells[i]
		if !c.Occupied() {
			continue
		}
		if prev, dup := seen[c.occupant]; dup {
			return fmt.Errorf("%w: agent %d occupies cells %d and %d", core.ErrInvariant, c.occupant, prev, c.ID)
		}
		seen[c.occupant] = c.ID
	}
	for agent, cell := range placements {
		if got, ok := seen[agent]; !ok || got != cell {
			return fmt.Errorf("%w: agent %d expected on cell %d", core.ErrInvariant, agent, cell)
		}
	}
	if len(seen) != len(placements) {
		return fmt.Errorf("%w: %d occupied cells for %d agents", core.ErrInvariant, len(seen), len(placements))
	}
	return nil
}
