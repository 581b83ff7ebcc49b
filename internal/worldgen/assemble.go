package worldgen

import (
	"fmt"
	"log/slog"
	"time"

	"wildfire/internal/core"
	"wildfire/internal/noise"
	"wildfire/internal/world"
	rng "wildfire/pkg/core"
)

// Assemble merges the per-cell layers into tiles and places them into a new
// world. Permanent water is pressed down to waterHeight.
func Assemble(height *core.Grid[float64], moisture *core.Grid[int], veg *core.Grid[world.Vegetation], waterHeight float64) (*world.World, error) {
	if moisture.W != height.W || moisture.D != height.D || veg.W != height.W || veg.D != height.D {
		return nil, fmt.Errorf("layer sizes differ: height %dx%d, moisture %dx%d, vegetation %dx%d: %w",
			height.W, height.D, moisture.W, moisture.D, veg.W, veg.D, world.ErrTileCount)
	}
	tiles := make([]world.Tile, 0, height.W*height.D)
	for x := 0; x < height.W; x++ {
		for y := 0; y < height.D; y++ {
			t := world.Tile{
				X:          x,
				Y:          y,
				Height:     max(0, height.At(x, y)),
				Moisture:   moisture.At(x, y),
				Vegetation: veg.At(x, y),
			}
			if t.IsWater() {
				t.Height = waterHeight
			}
			tiles = append(tiles, t)
		}
	}
	return world.New(height.W, height.D, tiles)
}

// Generate runs the whole pipeline: height, lakes, rivers, moisture,
// vegetation, assembly. src drives every random choice; the noise fields are
// seeded from cfg.Seed.
func Generate(cfg Config, src rng.Source, log *slog.Logger) (*world.World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	start := time.Now()

	heightField, err := noise.New(cfg.Noise, cfg.Seed)
	if err != nil {
		return nil, err
	}
	moistureField, err := noise.New(cfg.Noise, cfg.Seed+1)
	if err != nil {
		return nil, err
	}

	height := Heightmap(heightField, src, cfg.Width, cfg.Depth, cfg.Octaves, cfg.Persistence, cfg.Scale)
	if cfg.SmoothPasses > 0 {
		core.Smooth(height, cfg.SmoothPasses)
		core.Normalize(height)
	}
	amp := 1.0
	if cfg.Amplify > 0 {
		amp = cfg.Amplify
		core.Amplify(height, amp)
	}
	log.Debug("height field ready", "noise", cfg.Noise, "octaves", cfg.Octaves, "smooth", cfg.SmoothPasses)

	lakes := Lakes(height, cfg.LakeThreshold*amp)
	rivers := Rivers(lakes, src, cfg.Rivers)
	isSet := func(v bool) bool { return v }
	log.Debug("hydrology ready", "lake_cells", lakes.Count(isSet), "river_cells", rivers.Count(isSet))

	moisture := Moisture(lakes, rivers, moistureField, src, cfg.MoistureRadius, cfg.MoistureScale)
	veg := Vegetation(moisture, src, cfg.VegetationChance)

	w, err := Assemble(height, moisture, veg, cfg.WaterHeight)
	if err != nil {
		return nil, err
	}
	water := moisture.Count(func(m int) bool { return m == world.MoistureWater })
	log.Info("world generated",
		"size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Depth),
		"seed", cfg.Seed,
		"water_tiles", water,
		"elapsed", time.Since(start).Round(time.Microsecond))
	return w, nil
}

// GenerateWorld builds a world with default settings apart from the size,
// lake threshold and river count.
func GenerateWorld(width, depth int, lakeThreshold float64, riverCount int, src rng.Source) (*world.World, error) {
	cfg := DefaultConfig()
	cfg.Width = width
	cfg.Depth = depth
	cfg.LakeThreshold = lakeThreshold
	cfg.Rivers = riverCount
	return Generate(cfg, src, nil)
}
