package parameter

// Play Area, centered on the origin
const (
	ScreenWidth  = 1280.0
	ScreenHeight = 960.0
)

// Cell Grid Layout (hex-offset, odd rows one cell shorter)
const (
	GridRows    = 9
	GridColumns = 10

	// GridSpacingX/Y is the distance between adjacent cell centers
	GridSpacingX = 110.0
	GridSpacingY = 90.0
)

// GridCellCount is the number of cells in the fixed grid
const GridCellCount = (GridRows+1)/2*GridColumns + GridRows/2*(GridColumns-1)

// Contagion
const (
	// MuckSpreadDelayMin/Max bound the uniform wait between spread attempts (seconds)
	MuckSpreadDelayMin = 1.0
	MuckSpreadDelayMax = 4.0

	// MuckSpreadChance is the probability a due spread attempt actually spreads
	MuckSpreadChance = 0.25
)

// Cell Goal Smoothing
const (
	// CellPushFalloff is the pointer distance scale for cell displacement
	CellPushFalloff = 50.0

	// CellPushBase is the exponent base shaping displacement falloff
	CellPushBase = 3.0

	// CellSmoothing is the per-tick lerp factor from display toward goal
	CellSmoothing = 0.1
)
