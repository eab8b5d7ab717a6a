package parameter

// Simulation Step
const (
	// MaxTickDelta is the longest single simulation step, longer deltas are split into sub-ticks
	MaxTickDelta = 0.1

	// MaxSubTicks bounds the catch-up work of one Update, time beyond it is dropped
	MaxSubTicks = 50
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)

// Scheduler
const (
	// SchedulerInitialCapacity preallocates the task list; every cell may carry a spread chain
	SchedulerInitialCapacity = 128
)
