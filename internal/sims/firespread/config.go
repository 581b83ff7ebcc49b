package firespread

import (
	"fmt"
	"slices"
	"sort"
	"strconv"

	"wildfire/internal/core"
)

// Params holds the tunables a run starts from. Reset restores these values.
type Params struct {
	// WindSpeed is clamped to [0, MaxWindSpeed].
	WindSpeed float64
	// WindDirection is a bearing in degrees, clamped to [0, 360].
	WindDirection int
	// NeighborRadius is the Chebyshev radius fire can jump; 1 is the 8-neighborhood.
	NeighborRadius int
}

// Config controls a fire-spread simulation.
type Config struct {
	// Seed seeds the random source when the caller does not supply one.
	Seed int64

	Params Params
}

const (
	MaxWindSpeed     = 50.0
	MaxWindDirection = 360
)

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Seed: 1337,
		Params: Params{
			WindSpeed:      5,
			WindDirection:  0,
			NeighborRadius: 1,
		},
	}
}

var configKeys = []string{"seed", "wind_speed", "wind_direction", "neighbor_radius"}

// Keys lists every key FromMap understands.
func Keys() []string { return append([]string(nil), configKeys...) }

// UnknownKeys returns a message for every key in cfg that FromMap ignores.
func UnknownKeys(cfg map[string]string) []string {
	var out []string
	for k := range cfg {
		if slices.Contains(configKeys, k) {
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
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["wind_speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.WindSpeed = min(parsed, MaxWindSpeed)
		}
	}
	if v, ok := cfg["wind_direction"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Params.WindDirection = normalizeBearing(parsed)
		}
	}
	if v, ok := cfg["neighbor_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.NeighborRadius = parsed
		}
	}
	return c
}

// normalizeBearing wraps any integer angle into [0, 360).
func normalizeBearing(deg int) int {
	deg %= MaxWindDirection
	if deg < 0 {
		deg += MaxWindDirection
	}
	return deg
}
