package core

import "math"

// Float constrains the grid operators that rescale values.
type Float interface {
	~float32 | ~float64
}

// Number covers every scalar Amplify accepts.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Normalize linearly rescales all values into [0, 1]. A constant grid is left
// untouched. NaN cells are ignored when finding the range and become 0.
func Normalize[T Float](g *Grid[T]) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range g.data {
		f := float64(v)
		if math.IsNaN(f) {
			continue
		}
		lo = math.Min(lo, f)
		hi = math.Max(hi, f)
	}
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return
	}
	span := hi - lo
	if span == 0 {
		return
	}
	for i, v := range g.data {
		f := float64(v)
		if math.IsNaN(f) {
			g.data[i] = 0
			continue
		}
		g.data[i] = T((f - lo) / span)
	}
}

// Smooth applies a 3x3 box blur the given number of times. Edge cells keep
// their values.
func Smooth[T Float](g *Grid[T], iterations int) {
	if g.W < 3 || g.D < 3 {
		return
	}
	buf := make([]T, len(g.data))
	for it := 0; it < iterations; it++ {
		copy(buf, g.data)
		for x := 1; x < g.W-1; x++ {
			for y := 1; y < g.D-1; y++ {
				var sum T
				for dx := -1; dx <= 1; dx++ {
					for dy := -1; dy <= 1; dy++ {
						sum += g.data[(x+dx)*g.D+y+dy]
					}
				}
				buf[x*g.D+y] = sum / 9
			}
		}
		g.data, buf = buf, g.data
	}
}

// Amplify multiplies every value by factor.
func Amplify[T Number](g *Grid[T], factor T) {
	for i := range g.data {
		g.data[i] *= factor
	}
}
