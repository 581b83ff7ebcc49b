package firespread

import (
	"math"

	"wildfire/internal/world"
)

// stepSearchIterations bounds the bisection in StepProbability.
const stepSearchIterations = 100

// VegetationFactor is the base flammability of a target tile's vegetation.
func VegetationFactor(v world.Vegetation) float64 {
	switch v {
	case world.VegetationGrass:
		return 0.18
	case world.VegetationSparse:
		return 0.25
	case world.VegetationSwamp:
		return 0.22
	case world.VegetationForest:
		return 0.40
	default:
		return 1
	}
}

// MoistureFactor scales ignition by target moisture. Water never ignites.
func MoistureFactor(m int) float64 {
	switch {
	case m >= world.MoistureWater:
		return 0
	case m > 85:
		return 0.5
	case m > 65:
		return 0.7
	default:
		return 0.88
	}
}

// Bearing returns the direction of the offset (dx, dy) in degrees, in [0, 360).
func Bearing(dx, dy int) float64 {
	deg := math.Atan2(float64(dy), float64(dx)) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

// WindFactor boosts spread toward tiles that lie within 90 degrees of the
// wind bearing. The result never exceeds 1.5.
func WindFactor(dx, dy int, speed float64, direction int) float64 {
	if math.IsNaN(speed) || speed < 0 {
		speed = 0
	}
	diff := math.Abs(float64(direction) - Bearing(dx, dy))
	if diff > 180 {
		diff = 360 - diff
	}
	factor := 1.0
	switch {
	case diff <= 45:
		factor += speed * 0.03
	case diff <= 90:
		factor += speed * 0.015
	}
	return math.Min(factor, 1.5)
}

// SlopeFactor favors spreading uphill or across flat ground.
func SlopeFactor(sourceHeight, targetHeight float64) float64 {
	if targetHeight-sourceHeight >= 0 {
		return 0.35
	}
	return 0.25
}

// SpreadProbability is the chance that target eventually ignites while source
// burns, before rebasing onto a single step.
func SpreadProbability(source, target world.Tile, windSpeed float64, windDirection int) float64 {
	combined := (VegetationFactor(target.Vegetation) + SlopeFactor(source.Height, target.Height)) / 2
	wind := WindFactor(target.X-source.X, target.Y-source.Y, windSpeed, windDirection)
	return clampProbability(combined * MoistureFactor(target.Moisture) * wind)
}

// StepProbability finds the per-step chance p for which steps independent
// trials succeed at least once with probability total, that is
// 1-(1-p)^steps = total. It bisects [0, 1] a fixed number of times.
// Non-positive step counts and NaN totals yield 0.
func StepProbability(total float64, steps int) float64 {
	if steps <= 0 || math.IsNaN(total) {
		return 0
	}
	total = clampProbability(total)
	if total == 0 || total == 1 {
		return total
	}
	lo, hi := 0.0, 1.0
	for i := 0; i < stepSearchIterations; i++ {
		p := (lo + hi) / 2
		if cumulative(p, steps) > total {
			hi = p
		} else {
			lo = p
		}
	}
	return (lo + hi) / 2
}

func cumulative(p float64, steps int) float64 {
	return 1 - math.Pow(1-p, float64(steps))
}

func clampProbability(p float64) float64 {
	if math.IsNaN(p) {
		return 0
	}
	return math.Max(0, math.Min(1, p))
}
