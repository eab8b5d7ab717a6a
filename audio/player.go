package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/muckpond/event"
	"github.com/lixenwraith/muckpond/parameter"
)

// Player turns simulation events into cues mixed onto the speaker
// Safe for use from the simulation goroutine while the speaker goroutine streams the mixer
type Player struct {
	mu      sync.Mutex
	cfg     *Config
	mixer   *beep.Mixer
	started bool
	muted   bool

	lastPlayed [cueCount]time.Time
	now        func() time.Time
}

// NewPlayer creates a player, Start must be called to reach the speaker
func NewPlayer(cfg *Config) *Player {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Player{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		muted: !cfg.Enabled,
		now:   time.Now,
	}
}

// Start opens the speaker and attaches the mixer, a second call is a no-op
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}
	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.started = true
	return nil
}

// Close drops queued cues and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		p.mixer.Clear()
		return
	}
	speaker.Clear()
	speaker.Close()
	p.mixer.Clear()
	p.started = false
}

// SetMuted silences or restores cues
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Play queues cue c, returns false when muted, rate limited or the mixer is full
func (p *Player) Play(c Cue) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.muted || c <= CueNone || c >= cueCount {
		return false
	}
	now := p.now()
	if now.Sub(p.lastPlayed[c]) < parameter.AudioMinCueGap {
		return false
	}

	s := Build(c, p.cfg)
	if s == nil {
		return false
	}

	if p.started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	if p.mixer.Len() >= parameter.AudioMaxVoices {
		return false
	}
	p.mixer.Add(s)
	p.lastPlayed[c] = now
	return true
}

// Voices returns the number of streamers in the mixer
func (p *Player) Voices() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return p.mixer.Len()
}

// HandleEvent implements event.Handler
func (p *Player) HandleEvent(ev event.GameEvent) {
	p.Play(CueFor(ev))
}

// EventTypes implements event.Handler
func (p *Player) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventCellRipened,
		event.EventCellConsumed,
		event.EventCellMuckReceived,
		event.EventForagerJumped,
		event.EventClusterMerged,
		event.EventClusterBurst,
		event.EventEndgameArmed,
		event.EventEndgameResetStarted,
		event.EventEndgameResetCompleted,
	}
}
