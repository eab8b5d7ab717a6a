package feeder

import (
	"github.com/lixenwraith/muckpond/garden"
	"github.com/lixenwraith/muckpond/parameter"
	"github.com/lixenwraith/muckpond/vmath"
)

// Step runs one tick: root physics, then the merge pass
// Returns roots old enough and full enough to seed, valid until the next Step
//
// Merge pass: each mature root below capacity scans later mature roots in order,
// the larger cluster absorbs the smaller (the earlier feeder on a tie), and a root
// takes part in at most one merge per tick
func (p *Pool) Step(dt float64, pointerActive bool, pointer vmath.Vec2) []int {
	p.time += dt
	for i := range p.feeders {
		if f := &p.feeders[i]; f.IsRoot() {
			p.integrate(f, dt, pointerActive, pointer)
		}
	}

	clear(p.merged)
	p.eligible = p.eligible[:0]
	for i := range p.feeders {
		fi := &p.feeders[i]
		if !p.mature(i) || p.merged[i] {
			continue
		}
		if fi.count >= parameter.FeederMaxClusterSize {
			p.eligible = append(p.eligible, i)
			continue
		}
		for j := i + 1; j < len(p.feeders); j++ {
			fj := &p.feeders[j]
			if !p.mature(j) || p.merged[j] || fi.count+fj.count > parameter.FeederMaxClusterSize {
				continue
			}
			absorber, absorbed := i, j
			if fj.count > fi.count {
				absorber, absorbed = j, i
			}
			if p.TryToCombine(absorber, absorbed) {
				p.merged[i], p.merged[j] = true, true
				break
			}
		}
	}
	return p.eligible
}

func (p *Pool) mature(id int) bool {
	f := &p.feeders[id]
	return f.IsRoot() && f.Age >= parameter.FeederMinAge
}

// SeedPass offers every unripe unoccupied cell to the eligible roots in order, first success wins
// Returns the number of cells ripened
func (p *Pool) SeedPass(eligible []int) int {
	if len(eligible) == 0 {
		return 0
	}
	seeded := 0
	cells := p.graph.Cells()
	for i := range cells {
		c := &cells[i]
		if !seedable(c) {
			continue
		}
		for _, root := range eligible {
			if p.TryToSeed(root, c.ID) {
				seeded++
				break
			}
		}
	}
	return seeded
}

func seedable(c *garden.Cell) bool { return !c.Ripe() && !c.Occupied() }
