package event

var (
	nameToType = make(map[string]EventType)
	typeToName = make(map[EventType]string)
)

// RegisterType maps a string name to an EventType for logs and the HUD
func RegisterType(name string, et EventType) {
	nameToType[name] = et
	typeToName[et] = name
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	et, ok := nameToType[name]
	return et, ok
}

func init() {
	RegisterType("EventNone", EventNone)

	// Cell
	RegisterType("EventCellRipened", EventCellRipened)
	RegisterType("EventCellConsumed", EventCellConsumed)
	RegisterType("EventCellMuckReceived", EventCellMuckReceived)

	// Agents
	RegisterType("EventForagerJumped", EventForagerJumped)
	RegisterType("EventClusterMerged", EventClusterMerged)
	RegisterType("EventClusterSeeded", EventClusterSeeded)
	RegisterType("EventClusterBurst", EventClusterBurst)

	// Endgame
	RegisterType("EventEndgameArmed", EventEndgameArmed)
	RegisterType("EventEndgameResetStarted", EventEndgameResetStarted)
	RegisterType("EventEndgameResetCompleted", EventEndgameResetCompleted)
}
