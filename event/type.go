package event

// EventType represents the type of simulation event
type EventType int

const (
	// EventNone is the zero value, never emitted
	EventNone EventType = iota

	// === Cell Events ===

	// EventCellRipened signals an unripe, unoccupied cell became ripe
	// Trigger: feeder cluster seeding | Payload: *CellPayload
	EventCellRipened

	// EventCellConsumed signals a forager ate a ripe cell, cleaning it
	// Trigger: forager landing | Payload: *CellConsumedPayload
	EventCellConsumed

	// EventCellMuckReceived signals a cell turned mucky
	// Trigger: contagion spread, forager poke | Payload: *MuckReceivedPayload
	EventCellMuckReceived

	// === Agent Events ===

	// EventForagerJumped signals a forager moved to a neighbor cell
	// Trigger: forager jump task | Payload: *ForagerJumpedPayload
	EventForagerJumped

	// EventClusterMerged signals a feeder root absorbed another root
	// Trigger: tick merge pass | Payload: *ClusterMergedPayload
	EventClusterMerged

	// EventClusterSeeded signals a full cluster spent one seed
	// Trigger: tick seed pass | Payload: *ClusterSeededPayload
	EventClusterSeeded

	// EventClusterBurst signals a cluster split back into single feeders
	// Trigger: last seed spent | Payload: *ClusterBurstPayload
	EventClusterBurst

	// === Endgame Events ===

	// EventEndgameArmed signals enough muck exists for the board to be able to end
	// Trigger: endgame controller | Payload: *EndgamePayload
	EventEndgameArmed

	// EventEndgameResetStarted signals the board is fading out for a reset
	// Trigger: endgame controller | Payload: *EndgamePayload
	EventEndgameResetStarted

	// EventEndgameResetCompleted signals the board state was reset
	// Trigger: reset delay elapsed or host signal | Payload: *EndgamePayload
	EventEndgameResetCompleted
)

// GameEvent is a single simulation event with its payload
type GameEvent struct {
	Type    EventType
	Payload any
	Time    float64 // Simulation time in seconds
}

// String returns the registered name of the event type
func (t EventType) String() string {
	if name, ok := typeToName[t]; ok {
		return name
	}
	return "EventUnknown"
}
