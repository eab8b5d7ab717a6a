package parameter

import "time"

// Layout & Margins
const (
	// HUDRows is the status line count reserved at the bottom of the terminal
	HUDRows = 1

	// MinViewWidth/Height below which the pond is not drawn, only the HUD
	MinViewWidth  = 20
	MinViewHeight = 8
)

// Glyphs
const (
	GlyphCellBare  = '·'
	GlyphCellRipe  = '✿'
	GlyphCellMucky = '※'
	GlyphLanding   = '○'
)

// GlyphHeading maps eight compass sectors, counter-clockwise from east, to arrows
// Pond y grows downward so the sectors run clockwise on screen
var GlyphHeading = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// Metaball Field
const (
	// MetaballThreshold is the summed r²/d² field value at which a terminal cell is inside the blob
	MetaballThreshold = 1.0

	// MetaballEdge is the field value where the soft outer halo begins
	MetaballEdge = 0.45

	// MetaballGlowBoost is the brightness added at full glow
	MetaballGlowBoost = 0.6
)

// Host Loop
const (
	// FrameInterval caps rendering independently of the simulation tick rate
	FrameInterval = 33 * time.Millisecond

	// InputQueueSize buffers terminal events between the poller and the loop
	InputQueueSize = 256
)

// Text
const (
	TextPaused    = " PAUSED "
	TextMuted     = " MUTE "
	TextResetting = "~ the pond settles ~"
	TextCanEnd    = "muck is spreading"
	AudioStr      = "♫ "
)
