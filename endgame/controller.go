package endgame

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/muckpond/engine"
	"github.com/lixenwraith/muckpond/event"
	"github.com/lixenwraith/muckpond/garden"
	"github.com/lixenwraith/muckpond/parameter"
)

// Coverage reports board contagion for the endgame latch
type Coverage interface {
	MuckyCount() int
	TotalCells() int
}

// Controller is the hysteresis latch that resets the board once muck is cleared or overruns it
// The latch arms at EndgameArmCount mucky cells; armed, it fires on zero mucky cells or coverage above EndgameCoverageLimit
//
// Reset is two-phase: Reset marks the board as resetting and schedules completion after the fade,
// completion runs the registered hooks in order. Contagion changes are ignored while resetting
type Controller struct {
	coverage Coverage
	sched    *engine.Scheduler
	events   *event.Emitter
	hooks    []func()

	canEnd    bool
	resetting bool

	round      uuid.UUID
	generation uint64 // Stamps pending completion tasks
	resets     uint64
	reason     event.ResetReason
	startedAt  float64
}

// New creates an unarmed controller reading coverage from c
func New(c Coverage, sched *engine.Scheduler, events *event.Emitter) *Controller {
	return &Controller{
		coverage: c,
		sched:    sched,
		events:   events,
		round:    uuid.New(),
	}
}

// OnReset registers a completion hook, hooks run in registration order
func (c *Controller) OnReset(fn func()) {
	c.hooks = append(c.hooks, fn)
}

// OnContagionChanged implements garden.ContagionListener
func (c *Controller) OnContagionChanged(garden.CellID) {
	if c.resetting {
		return
	}
	mucky := c.coverage.MuckyCount()

	if !c.canEnd {
		if mucky >= parameter.EndgameArmCount {
			c.canEnd = true
			c.events.Emit(event.EventEndgameArmed, c.payload(event.ResetReasonNone))
		}
		return
	}

	switch {
	case mucky == 0:
		c.Reset(event.ResetReasonCleared)
	case float64(mucky)/float64(c.coverage.TotalCells()) > parameter.EndgameCoverageLimit:
		c.Reset(event.ResetReasonOverrun)
	}
}

// Reset starts the two-phase reset, returns false if one is already in progress
func (c *Controller) Reset(reason event.ResetReason) bool {
	if c.resetting {
		return false
	}
	c.resetting = true
	c.canEnd = false
	c.round = uuid.New()
	c.generation++
	c.resets++
	c.reason = reason
	if c.sched != nil {
		c.startedAt = c.sched.Now()
	}

	c.events.Emit(event.EventEndgameResetStarted, c.payload(reason))

	if c.sched != nil {
		gen := c.generation
		c.sched.After(parameter.EndgameResetDelay, func() { c.complete(gen) })
	}
	return true
}

// CompleteReset finishes a pending reset immediately, the scheduled completion then goes quiet
// Returns false when no reset is pending
func (c *Controller) CompleteReset() bool {
	return c.complete(c.generation)
}

func (c *Controller) complete(gen uint64) bool {
	if !c.resetting || gen != c.generation {
		return false
	}
	for _, fn := range c.hooks {
		fn()
	}
	c.resetting = false
	c.events.Emit(event.EventEndgameResetCompleted, c.payload(c.reason))
	return true
}

func (c *Controller) payload(reason event.ResetReason) *event.EndgamePayload {
	return &event.EndgamePayload{
		Round:  c.round,
		Mucky:  c.coverage.MuckyCount(),
		Total:  c.coverage.TotalCells(),
		Reason: reason,
	}
}

// Progress returns the fade fraction of a pending reset in [0, 1], 0 when idle
func (c *Controller) Progress() float64 {
	if !c.resetting || c.sched == nil {
		return 0
	}
	return min(max((c.sched.Now()-c.startedAt)/parameter.EndgameResetDelay, 0), 1)
}

// CanEnd reports whether the latch is armed
func (c *Controller) CanEnd() bool { return c.canEnd }

// Resetting reports whether a reset is pending completion
func (c *Controller) Resetting() bool { return c.resetting }

// Round identifies the current board, a new id is drawn on every reset
func (c *Controller) Round() uuid.UUID { return c.round }

// Resets counts resets started
func (c *Controller) Resets() uint64 { return c.resets }

// LastReason returns the reason of the most recent reset
func (c *Controller) LastReason() event.ResetReason { return c.reason }
