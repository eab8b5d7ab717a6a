package vmath

import "math"

// Vec2 is a float64 2D vector in play-area units, origin at the area center
type Vec2 struct {
	X, Y float64
}

// Zero is the origin
var Zero = Vec2{}

func V2(x, y float64) Vec2 { return Vec2{x, y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Mul multiplies component-wise
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// LengthSq returns squared magnitude without sqrt
func (v Vec2) LengthSq() float64 { return v.X*v.X + v.Y*v.Y }

func (v Vec2) Length() float64 { return math.Sqrt(v.LengthSq()) }

// DistanceSq returns squared distance to o
func (v Vec2) DistanceSq(o Vec2) float64 { return v.Sub(o).LengthSq() }

// Lerp moves v toward to by fraction t
func (v Vec2) Lerp(to Vec2, t float64) Vec2 {
	return Vec2{v.X + (to.X-v.X)*t, v.Y + (to.Y-v.Y)*t}
}

// Clamp limits each axis to [lo, hi]
func (v Vec2) Clamp(lo, hi Vec2) Vec2 {
	return Vec2{clamp(v.X, lo.X, hi.X), clamp(v.Y, lo.Y, hi.Y)}
}

// WithLength rescales v to length l, ok is false when v is too short to have a direction
func (v Vec2) WithLength(l, epsilon float64) (Vec2, bool) {
	sq := v.LengthSq()
	if sq <= epsilon || math.IsNaN(sq) {
		return v, false
	}
	return v.Scale(l / math.Sqrt(sq)), true
}

// Angle returns the direction of v in radians
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// Centroid returns the mean of points, zero for an empty slice
func Centroid(points ...Vec2) Vec2 {
	if len(points) == 0 {
		return Zero
	}
	var sum Vec2
	for _, p := range points {
		sum = sum.Add(p)
	}
	n := float64(len(points))
	return Vec2{sum.X / n, sum.Y / n}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
