package event

import (
	"sync/atomic"

	"github.com/lixenwraith/muckpond/parameter"
)

// slot is one ring entry; ready flips to true only after ev is fully written
type slot struct {
	ev    GameEvent
	ready atomic.Bool
}

// EventQueue is a lock-free MPSC ring buffer of simulation events
// Thread-Safety:
//   - Push: Lock-free CAS on the write index, multiple producers OK
//   - Consume: Single consumer (host loop)
//   - Ready flags prevent reading partial writes
//
// Overflow: Oldest events overwritten when full, counted in Dropped
type EventQueue struct {
	ring    [parameter.EventQueueSize]slot
	head    atomic.Uint64 // Read index
	tail    atomic.Uint64 // Write index
	dropped atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// claim reserves the next write index
func (eq *EventQueue) claim() uint64 {
	for {
		t := eq.tail.Load()
		if eq.tail.CompareAndSwap(t, t+1) {
			return t
		}
	}
}

// Push writes ev into a claimed slot, evicting the oldest unread event when full
func (eq *EventQueue) Push(ev GameEvent) {
	at := eq.claim()
	s := &eq.ring[at&parameter.EventBufferMask]
	s.ev = ev
	s.ready.Store(true) // MUST be after write

	end := at + 1
	if h := eq.head.Load(); end-h > parameter.EventQueueSize {
		if eq.head.CompareAndSwap(h, end-parameter.EventQueueSize) {
			eq.dropped.Add(1)
		}
	}
}

// Consume returns all pending events in FIFO order and advances head
// Stops early at a slot whose writer has not finished; the rest is returned next call
func (eq *EventQueue) Consume() []GameEvent {
	h, t := eq.head.Load(), eq.tail.Load()
	if t == h {
		return nil
	}
	if t-h > parameter.EventQueueSize {
		h = t - parameter.EventQueueSize
	}

	out := make([]GameEvent, 0, t-h)
	for at := h; at < t; at++ {
		s := &eq.ring[at&parameter.EventBufferMask]
		if !s.ready.Load() {
			break
		}
		out = append(out, s.ev)
		s.ready.Store(false)
	}

	// Head only moves forward; an overflowing producer may already be past us
	next := h + uint64(len(out))
	for {
		cur := eq.head.Load()
		if cur >= next || eq.head.CompareAndSwap(cur, next) {
			break
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Len returns approximate pending event count
func (eq *EventQueue) Len() int {
	h, t := eq.head.Load(), eq.tail.Load()
	if t <= h {
		return 0
	}
	return int(min(t-h, parameter.EventQueueSize))
}

// Dropped returns how many unread events were overwritten
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped.Load()
}

// Clock reports the simulation time stamped onto emitted events
type Clock interface {
	Now() float64
}

// Emitter stamps events with simulation time and pushes them to a queue
// A nil Emitter is safe to use; Emit is a no-op on nil receiver
type Emitter struct {
	queue *EventQueue
	clock Clock
}

// NewEmitter creates an emitter; clock may be nil, events are then stamped 0
func NewEmitter(queue *EventQueue, clock Clock) *Emitter {
	return &Emitter{queue: queue, clock: clock}
}

// Emit pushes a fire-and-forget event
func (e *Emitter) Emit(t EventType, payload any) {
	if e == nil || e.queue == nil {
		return
	}
	var now float64
	if e.clock != nil {
		now = e.clock.Now()
	}
	e.queue.Push(GameEvent{Type: t, Payload: payload, Time: now})
}
