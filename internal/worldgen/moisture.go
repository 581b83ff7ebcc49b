package worldgen

import (
	"math"

	"wildfire/internal/core"
	"wildfire/internal/noise"
	"wildfire/internal/world"
	rng "wildfire/pkg/core"
)

// maxLandMoisture is the wettest a non-water cell may be.
const maxLandMoisture = world.MoistureWater - 1

// Moisture assigns permanent-water moisture to lake and river cells and
// spreads a linearly decaying influence into the Manhattan radius around
// them. Influence from several sources adds up. Dry cells take their value
// from a second noise sample remapped from [-1, 1] to [0, 100]; a cell near
// water keeps whichever of the two is wetter.
func Moisture(lakes, rivers *core.Grid[bool], field noise.Field, src rng.Source, radius int, scale float64) *core.Grid[int] {
	out := core.NewGrid[int](lakes.W, lakes.D)
	if scale <= 0 {
		scale = 1
	}
	wet := make([]float64, len(out.Cells()))
	isWater := func(x, y int) bool { return lakes.At(x, y) || rivers.At(x, y) }

	for x := 0; x < out.W; x++ {
		for y := 0; y < out.D; y++ {
			if !isWater(x, y) || radius <= 0 {
				continue
			}
			step := float64(world.MoistureWater) / float64(radius)
			for dx := -radius; dx <= radius; dx++ {
				for dy := -radius; dy <= radius; dy++ {
					dist := abs(dx) + abs(dy)
					if dist == 0 || dist > radius || !out.In(x+dx, y+dy) {
						continue
					}
					wet[out.Index(x+dx, y+dy)] += float64(world.MoistureWater) - float64(dist)*step
				}
			}
		}
	}

	offX := rng.Range(src, 0, 10000)
	offY := rng.Range(src, 0, 10000)
	cells := out.Cells()
	for x := 0; x < out.W; x++ {
		for y := 0; y < out.D; y++ {
			i := out.Index(x, y)
			if isWater(x, y) {
				cells[i] = world.MoistureWater
				continue
			}
			n := noise.Sanitize(field.Noise2D((float64(x)+offX)/scale, (float64(y)+offY)/scale))
			base := (n + 1) / 2 * float64(world.MoistureWater)
			cells[i] = clampMoisture(math.Max(base, wet[i]))
		}
	}
	return out
}

func clampMoisture(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Max(0, math.Min(maxLandMoisture, math.Round(v))))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
