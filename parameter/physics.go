package parameter

// Feeder Physics
const (
	// PushStrength is the numerator of the inverse-square pointer push
	PushStrength = 2000.0

	// PushThreshold is the minimum push factor that is applied
	PushThreshold = 0.05

	// MotionMagnitude scales both force and velocity integration
	MotionMagnitude = 10.0

	// VelocityDamping is the per-tick lerp factor of velocity toward zero
	VelocityDamping = 0.02

	// EdgeMargin and EdgeRadius inset the soft containment rectangle
	EdgeMargin = 50.0
	EdgeRadius = 50.0

	// EdgeSmoothing is the per-tick lerp factor toward the contained goal
	EdgeSmoothing = 0.08

	// LayoutSmoothing is the per-tick lerp factor of member offsets
	LayoutSmoothing = 0.2

	// LayoutEpsilon is the squared offset length below which layout is skipped
	LayoutEpsilon = 1e-9
)

// Metaball Presentation Hints
const (
	MetaballRadius    = 15.0
	MetaballThrob     = 7.0
	MetaballThrobRate = 4.0
)
