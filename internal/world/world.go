// Package world holds the static terrain grid a simulation runs on.
package world

import (
	"errors"
	"fmt"

	"wildfire/internal/core"
)

var (
	// ErrOutOfRange is returned for coordinates or indices outside the grid.
	ErrOutOfRange = errors.New("tile out of range")
	// ErrNotSquare is returned when a single side length is requested from a
	// world whose width and depth differ.
	ErrNotSquare = errors.New("world is not square")
	// ErrTileCount is returned when the tile slice does not cover the grid.
	ErrTileCount = errors.New("tile count does not match world size")
)

// World owns a width x depth grid of tiles plus a parameter container for
// state that simulations attach to it. Tiles are addressed by the flattened
// index x*depth + y.
type World struct {
	w, d   int
	tiles  []Tile
	params *core.Container
}

// New builds a world from tiles. Each tile's coordinates must match its
// position in the slice.
func New(width, depth int, tiles []Tile) (*World, error) {
	if width <= 0 || depth <= 0 {
		return nil, fmt.Errorf("world %dx%d: %w", width, depth, ErrTileCount)
	}
	if len(tiles) != width*depth {
		return nil, fmt.Errorf("world %dx%d got %d tiles: %w", width, depth, len(tiles), ErrTileCount)
	}
	owned := make([]Tile, len(tiles))
	copy(owned, tiles)
	for i, t := range owned {
		if t.X*depth+t.Y != i || t.X < 0 || t.X >= width || t.Y < 0 || t.Y >= depth {
			return nil, fmt.Errorf("tile %d has coordinates (%d,%d): %w", i, t.X, t.Y, ErrTileCount)
		}
	}
	return &World{w: width, d: depth, tiles: owned, params: core.NewContainer()}, nil
}

// Width returns the number of columns.
func (w *World) Width() int { return w.w }

// Depth returns the number of rows.
func (w *World) Depth() int { return w.d }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, D: w.d} }

// Len returns the number of tiles.
func (w *World) Len() int { return len(w.tiles) }

// SideLength returns the side of a square world.
func (w *World) SideLength() (int, error) {
	if w.w != w.d {
		return 0, fmt.Errorf("%dx%d: %w", w.w, w.d, ErrNotSquare)
	}
	return w.w, nil
}

// Params exposes the container simulations attach dynamic state to.
func (w *World) Params() *core.Container { return w.params }

// Index returns the flattened index of (x, y) without bounds checks.
func (w *World) Index(x, y int) int { return x*w.d + y }

// Contains reports whether (x, y) lies inside the world.
func (w *World) Contains(x, y int) bool {
	return x >= 0 && x < w.w && y >= 0 && y < w.d
}

// TileAt returns the tile at (x, y).
func (w *World) TileAt(x, y int) (Tile, error) {
	if !w.Contains(x, y) {
		return Tile{}, fmt.Errorf("(%d,%d) in %dx%d: %w", x, y, w.w, w.d, ErrOutOfRange)
	}
	return w.tiles[x*w.d+y], nil
}

// TileByIndex returns the tile with flattened index i.
func (w *World) TileByIndex(i int) (Tile, error) {
	if i < 0 || i >= len(w.tiles) {
		return Tile{}, fmt.Errorf("index %d of %d: %w", i, len(w.tiles), ErrOutOfRange)
	}
	return w.tiles[i], nil
}

// At returns the tile at index i. i must be valid.
func (w *World) At(i int) Tile { return w.tiles[i] }

// TileIndex returns the flattened index of t.
func (w *World) TileIndex(t Tile) int { return t.X*w.d + t.Y }

// Each calls fn for every tile in index order.
func (w *World) Each(fn func(i int, t Tile)) {
	for i, t := range w.tiles {
		fn(i, t)
	}
}

// Neighbors returns the indices of every tile within Chebyshev distance
// radius of i, excluding i itself. Order is x-major then y.
func (w *World) Neighbors(i, radius int) []int {
	if i < 0 || i >= len(w.tiles) || radius <= 0 {
		return nil
	}
	x, y := i/w.d, i%w.d
	out := make([]int, 0, (2*radius+1)*(2*radius+1)-1)
	for dx := -radius; dx <= radius; dx++ {
		nx := x + dx
		if nx < 0 || nx >= w.w {
			continue
		}
		for dy := -radius; dy <= radius; dy++ {
			ny := y + dy
			if ny < 0 || ny >= w.d {
				continue
			}
			if dx == 0 && dy == 0 {
				continue
			}
			out = append(out, nx*w.d+ny)
		}
	}
	return out
}

// EdgeNeighbors returns the 4-connected neighbors of i: east, west, south, north.
func (w *World) EdgeNeighbors(i int) []int {
	if i < 0 || i >= len(w.tiles) {
		return nil
	}
	x, y := i/w.d, i%w.d
	out := make([]int, 0, 4)
	if x+1 < w.w {
		out = append(out, (x+1)*w.d+y)
	}
	if x-1 >= 0 {
		out = append(out, (x-1)*w.d+y)
	}
	if y+1 < w.d {
		out = append(out, x*w.d+y+1)
	}
	if y-1 >= 0 {
		out = append(out, x*w.d+y-1)
	}
	return out
}

// Offset returns the coordinate delta from a to b.
func (w *World) Offset(a, b int) (dx, dy int) {
	return b/w.d - a/w.d, b%w.d - a%w.d
}

// Clone returns a world with the same tiles and an empty parameter container.
func (w *World) Clone() *World {
	tiles := make([]Tile, len(w.tiles))
	copy(tiles, w.tiles)
	return &World{w: w.w, d: w.d, tiles: tiles, params: core.NewContainer()}
}
