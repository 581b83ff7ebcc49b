package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	D int
}

// Cells returns W*D.
func (s Size) Cells() int { return s.W * s.D }

// Square reports whether both sides have the same length.
func (s Size) Square() bool { return s.W == s.D }
