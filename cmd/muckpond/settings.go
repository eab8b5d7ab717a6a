package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/muckpond/audio"
	"github.com/lixenwraith/muckpond/config"
)

// settings is the resolved host configuration after flags override the file
type settings struct {
	cfg   config.Config
	audio *audio.Config
	muted bool
}

// loadSettings reads the config file and applies changed flags on top
func loadSettings(cmd *cobra.Command) (settings, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return settings{}, err
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}
	muted, _ := flags.GetBool("mute")

	acfg, err := audioConfig(cfg.Audio)
	if err != nil {
		return settings{}, err
	}
	return settings{cfg: cfg, audio: acfg, muted: muted}, nil
}

// resolveSeed draws a seed when none is configured
func resolveSeed(seed uint64) uint64 {
	for seed == 0 {
		seed = rand.Uint64()
	}
	return seed
}

// audioConfig converts the file section into the player config, cue names must be known
func audioConfig(c config.AudioConfig) (*audio.Config, error) {
	out := audio.DefaultConfig()
	out.Enabled = c.Enabled
	out.MasterVolume = c.Volume
	out.SampleRate = c.SampleRate
	for name, v := range c.Cues {
		cue, ok := audio.ParseCue(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown audio cue %q", config.ErrInvalid, name)
		}
		out.CueVolumes[cue] = v
	}
	return out, nil
}
