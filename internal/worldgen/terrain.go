package worldgen

import (
	"wildfire/internal/core"
	"wildfire/internal/noise"
	rng "wildfire/pkg/core"
)

// Heightmap sums octaves of noise at doubling frequency and persistence-scaled
// amplitude. A single random offset is drawn per call so repeated runs differ.
// The result is normalized to [0, 1].
func Heightmap(field noise.Field, src rng.Source, width, depth, octaves int, persistence, scale float64) *core.Grid[float64] {
	g := core.NewGrid[float64](width, depth)
	if scale <= 0 {
		scale = 1
	}
	offX := rng.Range(src, 0, 10000)
	offY := rng.Range(src, 0, 10000)

	for x := 0; x < g.W; x++ {
		for y := 0; y < g.D; y++ {
			amplitude := 1.0
			frequency := 1.0
			height := 0.0
			for o := 0; o < octaves; o++ {
				sx := (float64(x) + offX) / scale * frequency
				sy := (float64(y) + offY) / scale * frequency
				height += noise.Sanitize(field.Noise2D(sx, sy)) * amplitude
				amplitude *= persistence
				frequency *= 2
			}
			g.Set(x, y, height)
		}
	}
	core.Normalize(g)
	return g
}
