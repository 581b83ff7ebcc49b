package worldgen

import (
	"wildfire/internal/core"
	"wildfire/internal/world"
	rng "wildfire/pkg/core"
)

// Vegetation classifies each cell. With probability chance a cell is derived
// from its moisture; otherwise it stays grass.
func Vegetation(moisture *core.Grid[int], src rng.Source, chance float64) *core.Grid[world.Vegetation] {
	out := core.NewGrid[world.Vegetation](moisture.W, moisture.D)
	cells := out.Cells()
	for i, m := range moisture.Cells() {
		cells[i] = world.VegetationGrass
		if src.Float64() < chance {
			cells[i] = ClassifyMoisture(m)
		}
	}
	return out
}

// ClassifyMoisture maps a moisture value onto a vegetation class.
func ClassifyMoisture(m int) world.Vegetation {
	switch {
	case m < 30:
		return world.VegetationSparse
	case m < 50:
		return world.VegetationGrass
	case m < 70:
		return world.VegetationForest
	default:
		return world.VegetationSwamp
	}
}
