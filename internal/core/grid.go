package core

// Grid stores a 2D grid of values. Cells are laid out column-major so the
// flattened index of (x, y) is x*D + y, matching the tile index used by the
// world and the renderer.
type Grid[T any] struct {
	W, D int
	data []T
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid[T any](w, d int) *Grid[T] {
	if w <= 0 {
		w = 1
	}
	if d <= 0 {
		d = 1
	}
	return &Grid[T]{W: w, D: d, data: make([]T, w*d)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return x*g.D + y }

// Coord is the inverse of Index.
func (g *Grid[T]) Coord(i int) (int, int) { return i / g.D, i % g.D }

// In reports whether (x, y) lies on the grid.
func (g *Grid[T]) In(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.D
}

// At returns the value at (x, y), or the zero value when out of bounds.
func (g *Grid[T]) At(x, y int) T {
	if !g.In(x, y) {
		var zero T
		return zero
	}
	return g.data[x*g.D+y]
}

// Set stores v at (x, y). Out-of-bounds writes are ignored.
func (g *Grid[T]) Set(x, y int, v T) {
	if !g.In(x, y) {
		return
	}
	g.data[x*g.D+y] = v
}

// Fill assigns v to every cell.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	out := &Grid[T]{W: g.W, D: g.D, data: make([]T, len(g.data))}
	copy(out.data, g.data)
	return out
}

// Count returns how many cells satisfy keep.
func (g *Grid[T]) Count(keep func(T) bool) int {
	n := 0
	for _, v := range g.data {
		if keep(v) {
			n++
		}
	}
	return n
}
