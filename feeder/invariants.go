package feeder

import (
	"fmt"

	"github.com/lixenwraith/muckpond/core"
	"github.com/lixenwraith/muckpond/parameter"
	"github.com/lixenwraith/muckpond/vmath"
)

// CheckInvariants verifies cluster size bounds, seed gating and membership links
func (p *Pool) CheckInvariants() error {
	members := 0
	for i := range p.feeders {
		f := &p.feeders[i]
		if !f.IsRoot() {
			r := &p.feeders[f.root]
			if !r.IsRoot() {
				return fmt.Errorf("%w: feeder %d root %d is itself a member", core.ErrInvariant, i, f.root)
			}
			if f.Velocity != vmath.Zero || f.Age != 0 || f.seeds != 0 {
				return fmt.Errorf("%w: member %d is not frozen", core.ErrInvariant, i)
			}
			continue
		}
		if f.count < 1 || f.count > parameter.FeederMaxClusterSize {
			return fmt.Errorf("%w: root %d has size %d", core.ErrInvariant, i, f.count)
		}
		if f.members[0] != i {
			return fmt.Errorf("%w: root %d is not in slot 0", core.ErrInvariant, i)
		}
		if f.seeds < 0 || f.seeds > parameter.FeederMaxSeeds {
			return fmt.Errorf("%w: root %d has %d seeds", core.ErrInvariant, i, f.seeds)
		}
		if f.seeds > 0 && f.count != parameter.FeederMaxClusterSize {
			return fmt.Errorf("%w: root %d has seeds at size %d", core.ErrInvariant, i, f.count)
		}
		for _, m := range f.Members()[1:] {
			if p.feeders[m].root != i {
				return fmt.Errorf("%w: member %d of root %d links to %d", core.ErrInvariant, m, i, p.feeders[m].root)
			}
		}
		members += f.count
	}
	if members != len(p.feeders) {
		return fmt.Errorf("%w: clusters hold %d of %d feeders", core.ErrInvariant, members, len(p.feeders))
	}
	return nil
}
