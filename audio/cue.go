package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/muckpond/event"
	"github.com/lixenwraith/muckpond/parameter"
)

// Cue identifies one synthesized sound
type Cue int

const (
	CueNone Cue = iota
	CueRipen
	CueEat
	CueCleanse
	CueMuck
	CueJump
	CueMerge
	CueBurst
	CueArmed
	CueFade
	CueRound
	cueCount
)

var cueNames = [cueCount]string{
	CueNone:    "none",
	CueRipen:   "ripen",
	CueEat:     "eat",
	CueCleanse: "cleanse",
	CueMuck:    "muck",
	CueJump:    "jump",
	CueMerge:   "merge",
	CueBurst:   "burst",
	CueArmed:   "armed",
	CueFade:    "fade",
	CueRound:   "round",
}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// ParseCue maps a cue name back to its Cue, for config volume tables
func ParseCue(name string) (Cue, bool) {
	for i, n := range cueNames {
		if n == name && Cue(i) != CueNone {
			return Cue(i), true
		}
	}
	return CueNone, false
}

// CueFor picks the cue announcing ev, CueNone when the event is silent
func CueFor(ev event.GameEvent) Cue {
	switch ev.Type {
	case event.EventCellRipened:
		return CueRipen
	case event.EventCellConsumed:
		if p, ok := ev.Payload.(*event.CellConsumedPayload); ok && p.WasMucky {
			return CueCleanse
		}
		return CueEat
	case event.EventCellMuckReceived:
		return CueMuck
	case event.EventForagerJumped:
		return CueJump
	case event.EventClusterMerged:
		return CueMerge
	case event.EventClusterBurst:
		return CueBurst
	case event.EventEndgameArmed:
		return CueArmed
	case event.EventEndgameResetStarted:
		return CueFade
	case event.EventEndgameResetCompleted:
		return CueRound
	default:
		return CueNone
	}
}

// Build synthesizes a finite streamer for c at the configured volume, nil for CueNone
func Build(c Cue, cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	chime := func(freq float64, length time.Duration) Tone {
		return Tone{Freq: freq, Wave: WaveSine, Length: length, Attack: parameter.ChimeAttack, Release: parameter.ChimeRelease}
	}
	bell := func(fund float64) beep.Streamer {
		return beep.Mix(
			newVolume(Tone{Freq: fund, Wave: WaveSine, Length: parameter.BellCueDuration,
				Attack: parameter.BellCueAttack, Release: parameter.BellCueFundamentalTail}.Stream(rate), 0.7),
			newVolume(Tone{Freq: fund * 2, Wave: WaveSine, Length: parameter.BellCueDuration,
				Attack: parameter.BellCueAttack, Release: parameter.BellCueOvertoneTail}.Stream(rate), 0.3),
		)
	}

	var s beep.Streamer
	switch c {
	case CueRipen:
		// Soft E5 blip bending up
		s = Tone{Freq: 659.25, Glide: 1.12, Wave: WaveSine, Length: parameter.RipenCueDuration,
			Attack: parameter.RipenCueAttack, Release: parameter.RipenCueRelease}.Stream(rate)

	case CueEat:
		s = phrase(rate,
			Tone{Freq: 523.25, Wave: WaveSquare, Length: parameter.EatCueNote1Duration,
				Attack: parameter.EatCueAttack, Release: parameter.EatCueRelease / 2},
			Tone{Freq: 783.99, Wave: WaveSquare, Length: parameter.EatCueNote2Duration,
				Attack: parameter.EatCueAttack, Release: parameter.EatCueRelease},
		)

	case CueCleanse:
		s = bell(880)

	case CueRound:
		s = bell(587.33)

	case CueMuck:
		// Low saw sagging an octave
		s = Tone{Freq: 110, Glide: 0.5, Wave: WaveSaw, Length: parameter.MuckCueDuration,
			Attack: parameter.MuckCueAttack, Release: parameter.MuckCueRelease}.Stream(rate)

	case CueJump:
		s = Tone{Wave: WaveNoise, Length: parameter.JumpCueDuration,
			Attack: parameter.JumpCueAttack, Release: parameter.JumpCueRelease}.Stream(rate)

	case CueMerge:
		// Open fifth
		s = chord(rate, 0.5, chime(392, parameter.ChimeNoteDuration), chime(587.33, parameter.ChimeNoteDuration))

	case CueBurst:
		s = beep.Mix(
			newVolume(Tone{Wave: WaveNoise, Length: parameter.BurstCueDuration,
				Attack: parameter.BurstCueAttack, Release: parameter.BurstCueRelease}.Stream(rate), 0.6),
			newVolume(Tone{Freq: 160, Glide: 0.4, Wave: WaveSine, Length: parameter.BurstCueDuration,
				Attack: parameter.BurstCueAttack, Release: parameter.BurstCueRelease}.Stream(rate), 0.4),
		)

	case CueArmed:
		s = phrase(rate,
			Tone{Freq: 220, Wave: WaveSquare, Length: parameter.ChimeNoteDuration, Attack: parameter.ChimeAttack, Release: parameter.ChimeRelease},
			Tone{Freq: 330, Wave: WaveSquare, Length: parameter.ChimeNoteDuration, Attack: parameter.ChimeAttack, Release: parameter.ChimeRelease},
		)

	case CueFade:
		// Descending triad
		last := chime(293.66, parameter.ChimeNoteDuration*3)
		last.Release = parameter.ChimeRelease * 2
		s = phrase(rate,
			chime(440, parameter.ChimeNoteDuration*2),
			chime(349.23, parameter.ChimeNoteDuration*2),
			last,
		)

	default:
		return nil
	}
	return newVolume(s, cfg.Volume(c))
}
