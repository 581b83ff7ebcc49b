package app

import (
	"flag"

	"wildfire/internal/noise"
	"wildfire/internal/worldgen"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim   string
	Size  int
	Scale int
	TPS   int
	Seed  int64
	Noise string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "firespread", Size: 64, Scale: 8, TPS: 10, Seed: 1337, Noise: string(noise.KindGradient)}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Size, "size", c.Size, "side length of the square world")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for terrain and fire")
	fs.StringVar(&c.Noise, "noise", c.Noise, "noise backend: gradient, perlin or simplex")
}

// WorldConfig derives the terrain settings for a square world.
func (c *Config) WorldConfig() (worldgen.Config, error) {
	wc := worldgen.DefaultConfig()
	wc.Width = c.Size
	wc.Depth = c.Size
	wc.Seed = c.Seed
	kind, err := noise.ParseKind(c.Noise)
	if err != nil {
		return wc, err
	}
	wc.Noise = kind
	return wc, wc.Validate()
}
