package worldgen

import (
	"wildfire/internal/core"
	rng "wildfire/pkg/core"
)

// Lakes marks every cell whose height lies below threshold.
func Lakes(height *core.Grid[float64], threshold float64) *core.Grid[bool] {
	mask := core.NewGrid[bool](height.W, height.D)
	cells := mask.Cells()
	for i, h := range height.Cells() {
		cells[i] = h < threshold
	}
	return mask
}

var riverBias = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Rivers runs count random walks. Each walk starts at a random cell with a
// random cardinal bias; every step either advances along the bias or moves
// one cell sideways. A walk ends when it leaves the grid or enters a lake.
func Rivers(lakes *core.Grid[bool], src rng.Source, count int) *core.Grid[bool] {
	mask := core.NewGrid[bool](lakes.W, lakes.D)
	maxSteps := 4 * lakes.W * lakes.D
	for r := 0; r < count; r++ {
		x := src.IntN(lakes.W)
		y := src.IntN(lakes.D)
		bias := riverBias[src.IntN(len(riverBias))]
		for step := 0; step < maxSteps; step++ {
			if !mask.In(x, y) || lakes.At(x, y) {
				break
			}
			mask.Set(x, y, true)
			if src.IntN(2) == 0 {
				x += bias[0]
				y += bias[1]
				continue
			}
			side := 1
			if src.IntN(2) == 0 {
				side = -1
			}
			// the perpendicular of (bx, by) is (by, bx) up to sign
			x += bias[1] * side
			y += bias[0] * side
		}
	}
	return mask
}
