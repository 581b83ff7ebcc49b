package worldgen

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"wildfire/internal/core"
	"wildfire/internal/noise"
)

// ErrInvalidConfig is returned by Validate and Generate for unusable settings.
var ErrInvalidConfig = errors.New("invalid worldgen config")

// Config controls every stage of terrain generation.
type Config struct {
	Width int
	Depth int

	Seed  int64
	Noise noise.Kind

	Octaves      int
	Persistence  float64
	Scale        float64
	SmoothPasses int
	Amplify      float64

	LakeThreshold float64
	Rivers        int

	MoistureRadius int
	MoistureScale  float64

	VegetationChance float64

	// WaterHeight is the height forced onto permanent water tiles.
	WaterHeight float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:            64,
		Depth:            64,
		Seed:             1337,
		Noise:            noise.KindGradient,
		Octaves:          5,
		Persistence:      0.5,
		Scale:            20,
		SmoothPasses:     1,
		Amplify:          1,
		LakeThreshold:    0.15,
		Rivers:           3,
		MoistureRadius:   4,
		MoistureScale:    12,
		VegetationChance: 0.85,
		WaterHeight:      0,
	}
}

// Validate reports the first setting Generate cannot work with.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Depth <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Depth)
	case c.Octaves < 0:
		return fmt.Errorf("%w: octaves %d", ErrInvalidConfig, c.Octaves)
	case c.LakeThreshold < 0 || c.LakeThreshold > 1:
		return fmt.Errorf("%w: lake threshold %g", ErrInvalidConfig, c.LakeThreshold)
	case c.Rivers < 0:
		return fmt.Errorf("%w: rivers %d", ErrInvalidConfig, c.Rivers)
	case c.MoistureRadius < 0:
		return fmt.Errorf("%w: moisture radius %d", ErrInvalidConfig, c.MoistureRadius)
	case c.VegetationChance < 0 || c.VegetationChance > 1:
		return fmt.Errorf("%w: vegetation chance %g", ErrInvalidConfig, c.VegetationChance)
	}
	if _, err := noise.New(c.Noise, 0); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

var configKeys = []string{
	"w", "d", "seed", "noise", "octaves", "persistence", "scale", "smooth", "amplify",
	"lake", "rivers", "moisture_radius", "moisture_scale", "vegetation_chance", "water_height",
}

// Keys lists every key FromMap understands.
func Keys() []string { return append([]string(nil), configKeys...) }

// UnknownKeys returns a message for every key in cfg that FromMap ignores,
// with a suggestion when one is close.
func UnknownKeys(cfg map[string]string) []string {
	known := make(map[string]bool, len(configKeys))
	for _, k := range configKeys {
		known[k] = true
	}
	var out []string
	for k := range cfg {
		if known[k] {
			continue
		}
		if guess, ok := core.Suggest(k, configKeys); ok {
			out = append(out, fmt.Sprintf("unknown key %q (did you mean %q?)", k, guess))
			continue
		}
		out = append(out, fmt.Sprintf("unknown key %q", k))
	}
	sort.Strings(out)
	return out
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["d"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Depth = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["noise"]; ok {
		if kind, err := noise.ParseKind(v); err == nil {
			c.Noise = kind
		}
	}
	if v, ok := cfg["octaves"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Octaves = parsed
		}
	}
	if v, ok := cfg["persistence"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Persistence = parsed
		}
	}
	if v, ok := cfg["scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Scale = parsed
		}
	}
	if v, ok := cfg["smooth"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.SmoothPasses = parsed
		}
	}
	if v, ok := cfg["amplify"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Amplify = parsed
		}
	}
	if v, ok := cfg["lake"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.LakeThreshold = parsed
		}
	}
	if v, ok := cfg["rivers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Rivers = parsed
		}
	}
	if v, ok := cfg["moisture_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MoistureRadius = parsed
		}
	}
	if v, ok := cfg["moisture_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.MoistureScale = parsed
		}
	}
	if v, ok := cfg["vegetation_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.VegetationChance = parsed
		}
	}
	if v, ok := cfg["water_height"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.WaterHeight = parsed
		}
	}
	return c
}
