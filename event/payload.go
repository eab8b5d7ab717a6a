package event

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/muckpond/vmath"
)

// CellPayload identifies a cell and where it is drawn
type CellPayload struct {
	Cell     int
	Position vmath.Vec2
}

// CellConsumedPayload describes a forager eating a cell
type CellConsumedPayload struct {
	Cell     int
	Forager  int
	WasMucky bool
}

// MuckReceivedPayload describes muck arriving at a cell
type MuckReceivedPayload struct {
	Cell   int
	Origin vmath.Vec2 // Position the muck travels from, the cell itself when poked
}

// ForagerJumpedPayload describes a forager relocating
type ForagerJumpedPayload struct {
	Forager int
	From    int
	To      int
}

// ClusterMergedPayload describes a root absorbing another root
type ClusterMergedPayload struct {
	Root     int
	Absorbed int
	Size     int
	Position vmath.Vec2
}

// ClusterSeededPayload describes a cluster ripening a cell
type ClusterSeededPayload struct {
	Root      int
	Cell      int
	Remaining int
}

// ClusterBurstPayload describes a cluster splitting apart
type ClusterBurstPayload struct {
	Root     int
	Members  []int
	Position vmath.Vec2
}

// ResetReason explains why the endgame reset fired
type ResetReason int

const (
	ResetReasonNone ResetReason = iota
	ResetReasonCleared
	ResetReasonOverrun
)

func (r ResetReason) String() string {
	switch r {
	case ResetReasonCleared:
		return "cleared"
	case ResetReasonOverrun:
		return "overrun"
	default:
		return "none"
	}
}

// EndgamePayload carries the board coverage at an endgame transition
type EndgamePayload struct {
	Round  uuid.UUID
	Mucky  int
	Total  int
	Reason ResetReason
}
