package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave selects an oscillator shape
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Tone describes one enveloped note
type Tone struct {
	Freq    float64 // Start frequency in Hz, ignored for WaveNoise
	Glide   float64 // Pitch ratio reached at the end of the note, 0 holds pitch
	Wave    Wave
	Length  time.Duration
	Attack  time.Duration
	Release time.Duration // Linear fade ending with the note
}

// Stream renders t at rate as a finite streamer
func (t Tone) Stream(rate beep.SampleRate) beep.Streamer {
	total := rate.N(t.Length)
	att := min(rate.N(t.Attack), total)
	rel := min(rate.N(t.Release), total-att)
	return &voice{
		tone:    t,
		rate:    float64(rate),
		total:   total,
		attack:  att,
		release: rel,
	}
}

// voice is the running state of one Tone
type voice struct {
	tone    Tone
	rate    float64
	phase   float64
	pos     int
	total   int
	attack  int
	release int
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if v.pos >= v.total {
			return i, i > 0
		}
		val := v.wave() * v.level()
		samples[i][0] = val
		samples[i][1] = val

		v.phase += v.freq() / v.rate
		v.phase -= math.Floor(v.phase)
		v.pos++
	}
	return len(samples), true
}

func (v *voice) Err() error { return nil }

func (v *voice) wave() float64 {
	switch v.tone.Wave {
	case WaveSquare:
		if v.phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (v.phase - 0.5)
	case WaveNoise:
		return rand.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * v.phase)
	}
}

// freq sweeps exponentially from Freq to Freq*Glide over the note
func (v *voice) freq() float64 {
	if v.tone.Glide <= 0 || v.tone.Glide == 1 || v.total == 0 {
		return v.tone.Freq
	}
	return v.tone.Freq * math.Pow(v.tone.Glide, float64(v.pos)/float64(v.total))
}

// level is the attack ramp, flat sustain and release ramp gain at the current sample
func (v *voice) level() float64 {
	if v.pos < v.attack {
		return float64(v.pos) / float64(v.attack)
	}
	if left := v.total - v.pos; v.release > 0 && left <= v.release {
		return float64(left) / float64(v.release)
	}
	return 1
}

// newVolume scales s linearly, zero or negative volume is silent
// math.Log2(0) is -Inf, hence the Silent flag
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// chord mixes tones started together, each at gain
func chord(rate beep.SampleRate, gain float64, tones ...Tone) beep.Streamer {
	parts := make([]beep.Streamer, len(tones))
	for i, t := range tones {
		parts[i] = newVolume(t.Stream(rate), gain)
	}
	return beep.Mix(parts...)
}

// phrase plays tones one after another
func phrase(rate beep.SampleRate, tones ...Tone) beep.Streamer {
	parts := make([]beep.Streamer, len(tones))
	for i, t := range tones {
		parts[i] = t.Stream(rate)
	}
	return beep.Seq(parts...)
}
