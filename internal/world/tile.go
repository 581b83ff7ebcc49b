package world

import "fmt"

// Vegetation enumerates the vegetation classes a tile can carry.
type Vegetation uint8

const (
	VegetationGrass Vegetation = iota
	VegetationSparse
	VegetationForest
	VegetationSwamp
)

// String returns the lower-case vegetation name.
func (v Vegetation) String() string {
	switch v {
	case VegetationGrass:
		return "grass"
	case VegetationSparse:
		return "sparse"
	case VegetationForest:
		return "forest"
	case VegetationSwamp:
		return "swamp"
	default:
		return fmt.Sprintf("vegetation(%d)", uint8(v))
	}
}

// MoistureWater marks a permanent water body. It is the largest moisture value.
const MoistureWater = 100

// Tile is an immutable terrain cell.
type Tile struct {
	X, Y       int
	Height     float64
	Moisture   int
	Vegetation Vegetation
}

// IsWater reports whether the tile is a permanent water body.
func (t Tile) IsWater() bool { return t.Moisture == MoistureWater }
