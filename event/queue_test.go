package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/muckpond/parameter"
)

type fixedClock float64

func (c fixedClock) Now() float64 { return float64(c) }

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < 10; i++ {
		q.Push(GameEvent{Type: EventCellRipened, Payload: i})
	}
	if q.Len() != 10 {
		t.Fatalf("Expected Len 10, got %d", q.Len())
	}

	events := q.Consume()
	if len(events) != 10 {
		t.Fatalf("Expected 10 events, got %d", len(events))
	}
	for i, ev := range events {
		if ev.Payload.(int) != i {
			t.Errorf("events[%d] payload = %v", i, ev.Payload)
		}
	}
	if q.Consume() != nil {
		t.Error("Expected empty queue after consume")
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventCellConsumed, Payload: i})
	}

	events := q.Consume()
	if len(events) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", parameter.EventQueueSize, len(events))
	}
	if first := events[0].Payload.(int); first != 10 {
		t.Errorf("Expected oldest surviving payload 10, got %d", first)
	}
	if q.Dropped() != 10 {
		t.Errorf("Expected 10 dropped, got %d", q.Dropped())
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				q.Push(GameEvent{Type: EventForagerJumped})
			}
		}()
	}
	wg.Wait()

	if got := len(q.Consume()); got != 400 {
		t.Errorf("Expected 400 events, got %d", got)
	}
}

func TestEmitterStampsTime(t *testing.T) {
	q := NewEventQueue()
	e := NewEmitter(q, fixedClock(12.5))
	e.Emit(EventClusterBurst, &ClusterBurstPayload{Root: 3})

	events := q.Consume()
	if len(events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(events))
	}
	if events[0].Time != 12.5 {
		t.Errorf("Expected time 12.5, got %v", events[0].Time)
	}
	if p := events[0].Payload.(*ClusterBurstPayload); p.Root != 3 {
		t.Errorf("Expected root 3, got %d", p.Root)
	}
}

func TestNilEmitterIsSafe(t *testing.T) {
	var e *Emitter
	e.Emit(EventCellRipened, nil)
}

func TestRouterDispatchOrder(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter(q)

	var got []string
	r.Register(HandlerFunc{Types: []EventType{EventCellRipened}, Fn: func(GameEvent) { got = append(got, "a") }})
	r.Register(HandlerFunc{Types: []EventType{EventCellRipened, EventCellConsumed}, Fn: func(ev GameEvent) {
		got = append(got, "b:"+ev.Type.String())
	}})

	q.Push(GameEvent{Type: EventCellRipened})
	q.Push(GameEvent{Type: EventCellConsumed})
	q.Push(GameEvent{Type: EventClusterMerged})

	if n := r.DispatchAll(); n != 3 {
		t.Fatalf("Expected 3 events consumed, got %d", n)
	}
	want := []string{"a", "b:EventCellRipened", "b:EventCellConsumed"}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if r.HandlerCount(EventCellRipened) != 2 {
		t.Errorf("Expected 2 handlers for EventCellRipened, got %d", r.HandlerCount(EventCellRipened))
	}
}

func TestEventNames(t *testing.T) {
	if EventEndgameResetStarted.String() != "EventEndgameResetStarted" {
		t.Errorf("unexpected name %q", EventEndgameResetStarted.String())
	}
	et, ok := GetEventType("EventClusterSeeded")
	if !ok || et != EventClusterSeeded {
		t.Errorf("GetEventType = %v, %v", et, ok)
	}
	if EventType(999).String() != "EventUnknown" {
		t.Error("Expected unknown name for unregistered type")
	}
}
