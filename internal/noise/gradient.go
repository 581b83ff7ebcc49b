package noise

import "math"

// Gradient is classic 2D gradient noise. Lattice gradients are derived by
// hashing the integer coordinates, so no permutation table is stored.
type Gradient struct {
	seed uint32
}

// NewGradient returns gradient noise for the given seed.
func NewGradient(seed int64) *Gradient {
	return &Gradient{seed: uint32(seed) ^ uint32(seed>>32)}
}

// Noise2D samples the field at (x, y). Output lies within [-sqrt(2)/2, sqrt(2)/2].
func (g *Gradient) Noise2D(x, y float64) float64 {
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	ix, iy := int32(x0), int32(y0)
	fx, fy := x-x0, y-y0

	n00 := g.dot(ix, iy, fx, fy)
	n10 := g.dot(ix+1, iy, fx-1, fy)
	n01 := g.dot(ix, iy+1, fx, fy-1)
	n11 := g.dot(ix+1, iy+1, fx-1, fy-1)

	u := smoothstep(fx)
	v := smoothstep(fy)
	return lerp(lerp(n00, n10, u), lerp(n01, n11, u), v)
}

func (g *Gradient) dot(ix, iy int32, dx, dy float64) float64 {
	angle := float64(hash2(g.seed, ix, iy)) / float64(math.MaxUint32) * 2 * math.Pi
	return math.Cos(angle)*dx + math.Sin(angle)*dy
}

// smoothstep is 3w^2 - 2w^3.
func smoothstep(w float64) float64 {
	return w * w * (3 - 2*w)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
