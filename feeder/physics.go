package feeder

import (
	"github.com/lixenwraith/muckpond/parameter"
	"github.com/lixenwraith/muckpond/vmath"
)

// integrate advances one root: pointer push, velocity integration, soft edge containment, member layout
func (p *Pool) integrate(f *Feeder, dt float64, pointerActive bool, pointer vmath.Vec2) {
	f.Age += dt

	f.Velocity = f.Velocity.Add(pushForce(f.Position, pointerActive, pointer).Scale(parameter.MotionMagnitude * dt))
	f.Position = f.Position.Add(f.Velocity.Scale(parameter.MotionMagnitude * dt))
	f.Velocity = f.Velocity.Lerp(vmath.Zero, parameter.VelocityDamping)

	inset := p.bounds.Sub(vmath.V2(1, 1).Scale(parameter.EdgeMargin + parameter.EdgeRadius)).Scale(0.5)
	goal := f.Position.Clamp(inset.Scale(-1), inset)
	f.Position = f.Position.Lerp(goal, parameter.EdgeSmoothing)

	p.relax(f)
}

// pushForce is an inverse-square push away from a pressed pointer, dropped below the threshold
func pushForce(pos vmath.Vec2, active bool, pointer vmath.Vec2) vmath.Vec2 {
	if !active {
		return vmath.Zero
	}
	local := pointer.Sub(pos)
	sq := local.LengthSq()
	if sq <= 0 {
		return vmath.Zero
	}
	factor := parameter.PushStrength / sq
	if factor <= parameter.PushThreshold {
		return vmath.Zero
	}
	return local.Scale(-factor)
}

// relax eases member offsets toward a ring of radius FeederMinDist/2 around the anchor
// A pair spreads along its own axes, a triple away from the offsets' centroid
// Offsets too short to have a direction are left alone this tick
func (p *Pool) relax(root *Feeder) {
	const radius = parameter.FeederMinDist / 2

	var center vmath.Vec2
	switch root.count {
	case 2:
	case 3:
		var offsets [parameter.FeederMaxClusterSize]vmath.Vec2
		for i, m := range root.Members() {
			offsets[i] = p.feeders[m].Offset
		}
		center = vmath.Centroid(offsets[:root.count]...)
	default:
		return
	}

	for _, m := range root.Members() {
		member := &p.feeders[m]
		goal, ok := member.Offset.Sub(center).WithLength(radius, parameter.LayoutEpsilon)
		if !ok {
			continue
		}
		member.Offset = member.Offset.Lerp(goal, parameter.LayoutSmoothing)
	}
}
