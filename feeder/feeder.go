package feeder

import (
	"github.com/lixenwraith/muckpond/parameter"
	"github.com/lixenwraith/muckpond/vmath"
)

// NoFeeder marks a root's parent link
const NoFeeder = -1

// Feeder is one mobile seed carrier
// Roots move and age; members of a cluster are frozen and drawn at root position plus Offset
type Feeder struct {
	ID int

	Position vmath.Vec2 // Anchor in pond space, meaningful on roots
	Velocity vmath.Vec2
	Age      float64

	// Offset is the drawn position relative to the root anchor, relaxed into a ring while clustered
	Offset vmath.Vec2

	root int

	// Root-only membership, root itself in slot 0
	members [parameter.FeederMaxClusterSize]int
	count   int

	seeds      int
	opacity    float64 // Rendering hint, seeds/FeederMaxSeeds while seeding
	throbStart float64 // Pool time the cluster filled up
}

// IsRoot reports whether the feeder is independent or heads a cluster
func (f *Feeder) IsRoot() bool { return f.root == NoFeeder }

// Root returns the owning root id, the feeder's own id on roots
func (f *Feeder) Root() int {
	if f.root == NoFeeder {
		return f.ID
	}
	return f.root
}

// Size returns cluster size on roots, 0 on members
func (f *Feeder) Size() int {
	if f.root != NoFeeder {
		return 0
	}
	return f.count
}

// Members returns cluster member ids, root first; empty on non-roots
func (f *Feeder) Members() []int {
	if f.root != NoFeeder {
		return nil
	}
	return f.members[:f.count]
}

// AvailableSeeds returns remaining seeds, positive only on full clusters
func (f *Feeder) AvailableSeeds() int { return f.seeds }

// Opacity returns the rendering opacity hint
func (f *Feeder) Opacity() float64 { return f.opacity }

// detach resets the feeder to a lone root with no motion, keeping its position
func (f *Feeder) detach() {
	f.root = NoFeeder
	f.members = [parameter.FeederMaxClusterSize]int{f.ID}
	f.count = 1
	f.Velocity = vmath.Zero
	f.Age = 0
	f.Offset = vmath.Zero
	f.seeds = 0
	f.opacity = 1
	f.throbStart = 0
}
