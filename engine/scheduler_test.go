package engine

import (
	"testing"
)

func TestSchedulerFiresDueTasksInAdmissionOrder(t *testing.T) {
	s := NewScheduler()
	var order []int

	s.After(2.0, func() { order = append(order, 1) })
	s.After(1.0, func() { order = append(order, 2) })
	s.After(3.0, func() { order = append(order, 3) })

	if n := s.Advance(1.5); n != 1 {
		t.Fatalf("Expected 1 task fired at t=1.5, got %d", n)
	}
	if n := s.Advance(1.0); n != 1 {
		t.Fatalf("Expected 1 task fired at t=2.5, got %d", n)
	}
	if s.Pending() != 1 {
		t.Fatalf("Expected 1 pending task, got %d", s.Pending())
	}

	// Advance past everything at once
	s.Advance(10)
	want := []int{2, 1, 3}
	if len(order) != len(want) {
		t.Fatalf("Expected %d fired tasks, got %d", len(want), len(order))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %d, want %d", i, order[i], want[i])
		}
	}
}

func TestSchedulerSameTickUsesAdmissionOrder(t *testing.T) {
	s := NewScheduler()
	var order []int

	// Later fire time admitted first still fires first when both are due
	s.After(0.9, func() { order = append(order, 1) })
	s.After(0.1, func() { order = append(order, 2) })
	s.Advance(1)

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("Expected admission order [1 2], got %v", order)
	}
}

func TestSchedulerRescheduleFromTaskWaitsForNextAdvance(t *testing.T) {
	s := NewScheduler()
	count := 0

	var chain func()
	chain = func() {
		count++
		s.After(0, chain)
	}
	s.After(0.5, chain)

	s.Advance(1)
	if count != 1 {
		t.Fatalf("Expected chain to fire once per Advance, got %d", count)
	}
	s.Advance(0)
	if count != 2 {
		t.Fatalf("Expected zero-delay reschedule to fire on next Advance, got %d", count)
	}
	if s.Pending() != 1 {
		t.Errorf("Expected one pending chain link, got %d", s.Pending())
	}
}

func TestSchedulerNegativeDelayClamped(t *testing.T) {
	s := NewScheduler()
	s.Advance(5)
	fired := false
	s.After(-3, func() { fired = true })
	s.Advance(0)
	if !fired {
		t.Error("Expected negative delay to fire on the next Advance")
	}
	if s.Now() != 5 {
		t.Errorf("Expected time to stay at 5, got %v", s.Now())
	}
}

func TestSchedulerClear(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.After(1, func() { fired = true })
	s.Clear()
	s.Advance(2)
	if fired {
		t.Error("Expected cleared task not to fire")
	}
	if s.Pending() != 0 {
		t.Errorf("Expected no pending tasks, got %d", s.Pending())
	}
}

func TestSchedulerFiredCounter(t *testing.T) {
	s := NewScheduler()
	for i := 0; i < 5; i++ {
		s.After(float64(i), func() {})
	}
	s.Advance(2)
	if s.Fired() != 3 {
		t.Errorf("Expected 3 fired, got %d", s.Fired())
	}
}
