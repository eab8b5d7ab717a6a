package engine

import (
	"github.com/lixenwraith/muckpond/core"
	"github.com/lixenwraith/muckpond/parameter"
)

// TaskID identifies a scheduled task, monotonically increasing in admission order
type TaskID uint64

type scheduledTask struct {
	id TaskID
	at float64
	fn func()
}

// Scheduler is a cooperative single-threaded timer list driven by simulation time
// Tasks fire in admission order once their fire time is reached
// There is no cancellation: callbacks re-check the liveness of their subject
type Scheduler struct {
	now    float64
	nextID TaskID

	tasks  []scheduledTask
	firing []scheduledTask
	active bool

	fired uint64
}

// NewScheduler creates an empty scheduler at time zero
func NewScheduler() *Scheduler {
	return &Scheduler{
		tasks:  make([]scheduledTask, 0, parameter.SchedulerInitialCapacity),
		firing: make([]scheduledTask, 0, parameter.SchedulerInitialCapacity),
	}
}

// Now returns current simulation time in seconds
func (s *Scheduler) Now() float64 {
	return s.now
}

// After schedules fn to run delay seconds from now
// A task admitted while tasks are firing runs on a later Advance, even with zero delay
func (s *Scheduler) After(delay float64, fn func()) TaskID {
	if delay < 0 {
		delay = 0
	}
	s.nextID++
	s.tasks = append(s.tasks, scheduledTask{id: s.nextID, at: s.now + delay, fn: fn})
	return s.nextID
}

// Advance moves simulation time forward by dt and fires every due task
// Returns the number of tasks fired
func (s *Scheduler) Advance(dt float64) int {
	core.Assert(!s.active, "scheduler: Advance called from a task")
	if dt > 0 {
		s.now += dt
	}

	// Partition in place: kept tasks stay in admission order
	kept := s.tasks[:0]
	s.firing = s.firing[:0]
	for _, t := range s.tasks {
		if t.at <= s.now {
			s.firing = append(s.firing, t)
		} else {
			kept = append(kept, t)
		}
	}
	// Zero the tail so dropped closures can be collected
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = scheduledTask{}
	}
	s.tasks = kept

	if len(s.firing) == 0 {
		return 0
	}

	s.active = true
	for i := range s.firing {
		s.firing[i].fn()
		s.firing[i] = scheduledTask{}
	}
	s.active = false

	n := len(s.firing)
	s.fired += uint64(n)
	return n
}

// Pending returns the number of tasks waiting to fire
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Fired returns the total number of tasks fired since creation
func (s *Scheduler) Fired() uint64 {
	return s.fired
}

// Clear drops all pending tasks, used at session teardown
func (s *Scheduler) Clear() {
	for i := range s.tasks {
		s.tasks[i] = scheduledTask{}
	}
	s.tasks = s.tasks[:0]
}
