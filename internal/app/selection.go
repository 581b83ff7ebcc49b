package app

import (
	"errors"

	"github.com/zyedidia/generic/mapset"
)

// ErrProhibited is returned when a water tile is picked for ignition.
var ErrProhibited = errors.New("water tiles cannot burn")

// Selection collects the ignition tiles picked on the map, in click order.
type Selection struct {
	order      []int
	picked     mapset.Set[int]
	prohibited mapset.Set[int]
}

// NewSelection returns an empty selection that rejects the given tiles.
func NewSelection(prohibited []int) *Selection {
	s := &Selection{picked: mapset.New[int](), prohibited: mapset.New[int]()}
	for _, i := range prohibited {
		s.prohibited.Put(i)
	}
	return s
}

// Toggle adds tile i or removes it when already picked. It reports whether
// the tile is picked afterwards.
func (s *Selection) Toggle(i int) (bool, error) {
	if s.prohibited.Has(i) {
		return false, ErrProhibited
	}
	if s.picked.Has(i) {
		s.picked.Remove(i)
		for k, v := range s.order {
			if v == i {
				s.order = append(s.order[:k], s.order[k+1:]...)
				break
			}
		}
		return false, nil
	}
	s.picked.Put(i)
	s.order = append(s.order, i)
	return true, nil
}

// Has reports whether tile i is picked.
func (s *Selection) Has(i int) bool { return s.picked.Has(i) }

// Tiles returns the picked tiles in click order.
func (s *Selection) Tiles() []int { return append([]int(nil), s.order...) }

// Len returns the number of picked tiles.
func (s *Selection) Len() int { return len(s.order) }

// Clear drops every picked tile.
func (s *Selection) Clear() {
	s.order = s.order[:0]
	s.picked = mapset.New[int]()
}

// TileAt converts a cursor position on a map drawn at scale into a tile
// index. ok is false outside the map.
func TileAt(px, py, scale, width, depth int) (int, bool) {
	if scale <= 0 || px < 0 || py < 0 {
		return 0, false
	}
	x, y := px/scale, py/scale
	if x >= width || y >= depth {
		return 0, false
	}
	return x*depth + y, true
}
