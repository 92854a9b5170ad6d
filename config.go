package weave

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the tunable parameters of an Engine.
type Config struct {
	ParticleCount      int     `toml:"particle_count"`      // number of particles N
	ConnectionDistance float64 `toml:"connection_distance"` // particle-particle threshold D
	PointerFactor      float64 `toml:"pointer_factor"`      // pointer threshold is PointerFactor*D
	Speed              float64 `toml:"speed"`               // max |velocity component|, units/tick
	MaxRadius          float64 `toml:"max_radius"`          // particle radius drawn from [0, MaxRadius]

	ParticleLineWidth float64 `toml:"particle_line_width"`
	PointerLineWidth  float64 `toml:"pointer_line_width"`

	// ColorFadeTicks, when positive, tweens the displayed color to a new
	// accent over that many ticks instead of switching on the next tick.
	ColorFadeTicks int `toml:"color_fade_ticks"`

	// Seed makes particle spawning reproducible. Zero uses the global source.
	Seed uint64 `toml:"seed"`

	Antialias bool `toml:"antialias"`
	Debug     bool `toml:"debug"`
}

// DefaultConfig returns the stock backdrop parameters.
func DefaultConfig() Config {
	return Config{
		ParticleCount:      60,
		ConnectionDistance: DefaultConnectionDistance,
		PointerFactor:      DefaultPointerFactor,
		Speed:              0.25,
		MaxRadius:          2,
		ParticleLineWidth:  defaultParticleLineWidth,
		PointerLineWidth:   defaultPointerLineWidth,
		Antialias:          true,
	}
}

// LoadConfig reads a TOML file over the defaults. Unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first out-of-range parameter.
func (c Config) Validate() error {
	switch {
	case c.ParticleCount < 0:
		return fmt.Errorf("particle_count must be >= 0, got %d", c.ParticleCount)
	case c.ConnectionDistance <= 0:
		return fmt.Errorf("connection_distance must be > 0, got %g", c.ConnectionDistance)
	case c.PointerFactor < 0:
		return fmt.Errorf("pointer_factor must be >= 0, got %g", c.PointerFactor)
	case c.Speed < 0:
		return fmt.Errorf("speed must be >= 0, got %g", c.Speed)
	case c.MaxRadius < 0:
		return fmt.Errorf("max_radius must be >= 0, got %g", c.MaxRadius)
	case c.ParticleLineWidth < 0 || c.PointerLineWidth < 0:
		return errors.New("line widths must be >= 0")
	case c.ColorFadeTicks < 0:
		return fmt.Errorf("color_fade_ticks must be >= 0, got %d", c.ColorFadeTicks)
	}
	return nil
}

// particleConfig derives the spawn parameters.
func (c Config) particleConfig() ParticleConfig {
	return ParticleConfig{
		Count:    c.ParticleCount,
		Velocity: Range{-c.Speed, c.Speed},
		Radius:   Range{0, c.MaxRadius},
	}
}
