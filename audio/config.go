package audio

import "github.com/lixenwraith/muckpond/parameter"

// Config holds audio settings, volumes are linear in [0, 1]
type Config struct {
	Enabled      bool
	SampleRate   int
	MasterVolume float64
	CueVolumes   map[Cue]float64
}

// DefaultConfig returns audio enabled at moderate volume
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: 0.5,
		CueVolumes: map[Cue]float64{
			CueRipen:   0.25,
			CueEat:     0.4,
			CueCleanse: 0.6,
			CueMuck:    0.3,
			CueJump:    0.15,
			CueMerge:   0.5,
			CueBurst:   0.6,
			CueArmed:   0.5,
			CueFade:    0.6,
			CueRound:   0.6,
		},
	}
}

// Volume returns the effective volume of c, clamped to [0, 1]
func (c *Config) Volume(cue Cue) float64 {
	v, ok := c.CueVolumes[cue]
	if !ok {
		v = 1
	}
	return min(max(v*c.MasterVolume, 0), 1)
}
