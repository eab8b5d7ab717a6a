package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalid reports a config value out of range
var ErrInvalid = errors.New("invalid config")

// Config holds host settings; game rules are fixed constants and not configurable
type Config struct {
	TickRate int    `toml:"tick_rate"` // Simulation updates per second
	Seed     uint64 `toml:"seed"`      // 0 draws a random seed at startup
	Debug    bool   `toml:"debug"`
	LogDir   string `toml:"log_dir"`

	Audio AudioConfig `toml:"audio"`
	View  ViewConfig  `toml:"view"`

	Path string `toml:"-"`
}

type AudioConfig struct {
	Enabled    bool               `toml:"enabled"`
	Volume     float64            `toml:"volume"`
	SampleRate int                `toml:"sample_rate"`
	Cues       map[string]float64 `toml:"cues"` // Per-cue volume by cue name
}

type ViewConfig struct {
	HUD   bool `toml:"hud"`
	Mouse bool `toml:"mouse"`
}

// Default returns the settings used when no file exists
func Default() Config {
	return Config{
		TickRate: 60,
		LogDir:   "logs",
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
		},
		View: ViewConfig{
			HUD:   true,
			Mouse: true,
		},
	}
}

// Load reads path over the defaults
// An empty path resolves to the user config directory, where a missing file yields defaults
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	resolved := path
	if !explicit {
		resolved = DefaultPath()
	}
	if strings.HasPrefix(resolved, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home directory: %w", err)
		}
		resolved = filepath.Join(home, strings.TrimLeft(strings.TrimPrefix(resolved, "~"), `/\`))
	}
	resolved = filepath.Clean(resolved)

	data, err := os.ReadFile(resolved)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config file %s: %w", resolved, err)
	}

	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config file %s: %w", resolved, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalid, resolved, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", resolved, err)
	}
	cfg.Path = resolved
	return cfg, nil
}

// DefaultPath returns the per-user config location
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".muckpond", "config.toml")
	}
	return filepath.Join(dir, "muckpond", "config.toml")
}

// Validate checks value ranges
func (c Config) Validate() error {
	if c.TickRate < 1 || c.TickRate > 240 {
		return fmt.Errorf("%w: tick_rate %d outside [1, 240]", ErrInvalid, c.TickRate)
	}
	if c.LogDir == "" {
		return fmt.Errorf("%w: log_dir is empty", ErrInvalid)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume %v outside [0, 1]", ErrInvalid, c.Audio.Volume)
	}
	if c.Audio.SampleRate < 8000 || c.Audio.SampleRate > 192000 {
		return fmt.Errorf("%w: audio.sample_rate %d outside [8000, 192000]", ErrInvalid, c.Audio.SampleRate)
	}
	for name, v := range c.Audio.Cues {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: audio.cues.%s volume %v outside [0, 1]", ErrInvalid, name, v)
		}
	}
	return nil
}

// TickInterval returns the wall time between simulation updates
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// Encode writes c as TOML, used by the config command to print the effective settings
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
