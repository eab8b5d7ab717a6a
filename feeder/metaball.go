package feeder

import (
	"math"

	"github.com/lixenwraith/muckpond/parameter"
	"github.com/lixenwraith/muckpond/vmath"
)

// Ball is one drawn member of a cluster
type Ball struct {
	Feeder   int
	Position vmath.Vec2
	Radius   float64
}

// Cluster is a presentation snapshot of one root and its members
type Cluster struct {
	Root    int
	Seeds   int
	Opacity float64 // seeds/FeederMaxSeeds while seeding, 1 otherwise
	Glow    float64 // Eased group opacity of seeding clusters, 0 when not seeding
	Balls   []Ball
}

// Clusters snapshots every root in feeder order
// Seeding clusters throb: each member's radius pulses with a phase offset of a third of a turn
func (p *Pool) Clusters() []Cluster {
	out := make([]Cluster, 0, len(p.feeders))
	for i := range p.feeders {
		r := &p.feeders[i]
		if !r.IsRoot() {
			continue
		}
		c := Cluster{
			Root:    r.ID,
			Seeds:   r.seeds,
			Opacity: r.opacity,
			Balls:   make([]Ball, 0, r.count),
		}
		var throb, phase float64
		if r.seeds > 0 {
			fill := float64(r.seeds) / parameter.FeederMaxSeeds
			c.Glow = 1 - (1-fill)*(1-fill)
			throb = parameter.MetaballThrob
			phase = (p.time - r.throbStart) * parameter.MetaballThrobRate
		}
		for k, m := range r.Members() {
			pulse := math.Sin(float64(k)*2*math.Pi/3+phase)*0.5 + 0.5
			c.Balls = append(c.Balls, Ball{
				Feeder:   m,
				Position: p.Absolute(m),
				Radius:   parameter.MetaballRadius + throb*pulse,
			})
		}
		out = append(out, c)
	}
	return out
}
