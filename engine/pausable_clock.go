package engine

import (
	"sync"
	"time"
)

// PausableClock measures wall time between host frames, excluding paused intervals
// The host converts it into the dt handed to the simulation
type PausableClock struct {
	mu sync.Mutex

	provider TimeProvider
	last     time.Time

	paused      bool
	pauseStart  time.Time
	pausedTotal time.Duration
	pausedSince time.Duration // Paused time accumulated since the last Tick
}

// NewPausableClock creates a running clock reading from provider
// A nil provider uses the monotonic system clock
func NewPausableClock(provider TimeProvider) *PausableClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		provider: provider,
		last:     provider.Now(),
	}
}

// Tick returns unpaused elapsed seconds since the previous Tick
// While paused only the time accrued before the pause is returned
func (pc *PausableClock) Tick() float64 {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	now := pc.provider.Now()
	if pc.paused {
		// Deliver only what accrued before the pause, consume the paused span
		pre := pc.pauseStart.Sub(pc.last) - pc.pausedSince
		pc.pausedTotal += now.Sub(pc.pauseStart)
		pc.pauseStart = now
		pc.last = now
		pc.pausedSince = 0
		if pre < 0 {
			return 0
		}
		return pre.Seconds()
	}

	elapsed := now.Sub(pc.last) - pc.pausedSince
	pc.last = now
	pc.pausedSince = 0
	if elapsed < 0 {
		return 0
	}
	return elapsed.Seconds()
}

// Pause stops delivering elapsed time
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.provider.Now()
}

// Resume continues delivering elapsed time from the moment of resume
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	span := pc.provider.Now().Sub(pc.pauseStart)
	pc.pausedTotal += span
	pc.pausedSince += span
	pc.paused = false
	pc.pauseStart = time.Time{}
}

// Toggle flips the pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	pc.mu.Lock()
	paused := pc.paused
	pc.mu.Unlock()
	if paused {
		pc.Resume()
	} else {
		pc.Pause()
	}
	return !paused
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.paused
}

// TotalPaused returns cumulative pause duration, including an ongoing pause
func (pc *PausableClock) TotalPaused() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	total := pc.pausedTotal
	if pc.paused {
		total += pc.provider.Now().Sub(pc.pauseStart)
	}
	return total
}
