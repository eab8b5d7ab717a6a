package feeder

import (
	"github.com/lixenwraith/muckpond/core"
	"github.com/lixenwraith/muckpond/event"
	"github.com/lixenwraith/muckpond/garden"
	"github.com/lixenwraith/muckpond/parameter"
	"github.com/lixenwraith/muckpond/vmath"
)

// TryToCombine absorbs root b into root a when capacity allows and every member of a is within reach of b
// Absolute positions are preserved: the anchor moves to the member centroid and offsets are re-homed
func (p *Pool) TryToCombine(a, b int) bool {
	if a == b {
		return false
	}
	ra, rb := &p.feeders[a], &p.feeders[b]
	if !ra.IsRoot() || !rb.IsRoot() {
		return false
	}
	sa, sb := ra.count, rb.count
	if sa >= parameter.FeederMaxClusterSize || sa+sb > parameter.FeederMaxClusterSize {
		return false
	}

	const reachSq = parameter.FeederMinDist * parameter.FeederMinDist
	target := p.Absolute(b)
	for _, m := range ra.Members() {
		if p.Absolute(m).DistanceSq(target) > reachSq {
			return false
		}
	}

	var abs [parameter.FeederMaxClusterSize]vmath.Vec2
	n := 0
	for _, m := range ra.Members() {
		abs[n] = p.Absolute(m)
		n++
	}
	for _, m := range rb.Members() {
		abs[n] = p.Absolute(m)
		n++
	}

	ra.Velocity = ra.Velocity.Scale(float64(sa)).Add(rb.Velocity.Scale(float64(sb))).Scale(1 / float64(sa+sb))
	absorbed := rb.members
	for i := 0; i < sb; i++ {
		m := absorbed[i]
		member := &p.feeders[m]
		member.root = a
		member.Velocity = vmath.Zero
		member.Age = 0
		member.seeds = 0
		ra.members[ra.count] = m
		ra.count++
	}
	rb.count = 0

	if ra.count == parameter.FeederMaxClusterSize {
		ra.seeds = parameter.FeederMaxSeeds
		ra.opacity = 1
		ra.throbStart = p.time
	}

	anchor := vmath.Centroid(abs[:n]...)
	ra.Position = anchor
	for i, m := range ra.Members() {
		p.feeders[m].Offset = abs[i].Sub(anchor)
	}

	core.Assert(ra.count <= parameter.FeederMaxClusterSize, "cluster %d size %d", a, ra.count)
	p.merges++
	p.events.Emit(event.EventClusterMerged, &event.ClusterMergedPayload{
		Root:     a,
		Absorbed: b,
		Size:     ra.count,
		Position: anchor,
	})
	return true
}

// TryToSeed spends a seed of a full cluster on a cell within reach, bursting it on the last seed
// The seed is spent even when the cell refuses to ripen, true reports that a seed was spent
func (p *Pool) TryToSeed(root int, cell garden.CellID) bool {
	r := &p.feeders[root]
	if !r.IsRoot() || r.count != parameter.FeederMaxClusterSize || r.seeds <= 0 {
		return false
	}
	const reachSq = parameter.FeederMinSeedDist * parameter.FeederMinSeedDist
	if r.Position.DistanceSq(p.graph.Cell(cell).Display) > reachSq {
		return false
	}
	p.graph.RipenAlga(cell)

	r.seeds--
	p.events.Emit(event.EventClusterSeeded, &event.ClusterSeededPayload{
		Root:      root,
		Cell:      int(cell),
		Remaining: r.seeds,
	})
	if r.seeds <= 0 {
		p.Burst(root)
	} else {
		r.opacity = float64(r.seeds) / parameter.FeederMaxSeeds
	}
	return true
}

// Burst splits a cluster into lone roots flying outward from the anchor
func (p *Pool) Burst(root int) bool {
	r := &p.feeders[root]
	if !r.IsRoot() || r.count < 2 {
		return false
	}
	origin := r.Position
	members := r.members
	count := r.count

	var abs [parameter.FeederMaxClusterSize]vmath.Vec2
	for i := 0; i < count; i++ {
		abs[i] = p.Absolute(members[i])
	}
	ids := make([]int, count)
	for i := 0; i < count; i++ {
		f := &p.feeders[members[i]]
		f.detach()
		f.Position = abs[i]
		f.Velocity = abs[i].Sub(origin).Scale(parameter.FeederBurstVelocity)
		ids[i] = f.ID
	}

	p.bursts++
	p.events.Emit(event.EventClusterBurst, &event.ClusterBurstPayload{
		Root:     root,
		Members:  ids,
		Position: origin,
	})
	return true
}
