package noise

import (
	"errors"
	"math"
	"testing"
)

func TestGradientDeterministic(t *testing.T) {
	a := NewGradient(12345)
	b := NewGradient(12345)
	for i := 0; i < 200; i++ {
		x := float64(i)*0.37 - 20
		y := float64(i)*0.53 + 3
		if math.Float64bits(a.Noise2D(x, y)) != math.Float64bits(b.Noise2D(x, y)) {
			t.Fatalf("Noise2D not bit-identical at (%f, %f)", x, y)
		}
		if math.Float64bits(a.Noise2D(x, y)) != math.Float64bits(a.Noise2D(x, y)) {
			t.Fatalf("repeated Noise2D call differs at (%f, %f)", x, y)
		}
	}
}

func TestGradientRange(t *testing.T) {
	g := NewGradient(42)
	for i := 0; i < 10000; i++ {
		x := float64(i)*0.37 - 500
		y := float64(i)*0.53 - 500
		v := g.Noise2D(x, y)
		if v < -1 || v > 1 || math.IsNaN(v) {
			t.Fatalf("Noise2D(%f, %f) = %f, out of [-1,1]", x, y, v)
		}
	}
}

func TestGradientZeroAtLattice(t *testing.T) {
	g := NewGradient(9)
	for x := -3; x <= 3; x++ {
		for y := -3; y <= 3; y++ {
			if v := g.Noise2D(float64(x), float64(y)); math.Abs(v) > 1e-12 {
				t.Fatalf("lattice point (%d,%d) = %f, want 0", x, y, v)
			}
		}
	}
}

func TestGradientContinuousAcrossCells(t *testing.T) {
	g := NewGradient(77)
	const eps = 1e-7
	for i := -5; i <= 5; i++ {
		edge := float64(i)
		for _, y := range []float64{0.25, 0.5, 1.75} {
			left := g.Noise2D(edge-eps, y)
			right := g.Noise2D(edge+eps, y)
			if math.Abs(left-right) > 1e-5 {
				t.Fatalf("discontinuity at x=%f y=%f: %f vs %f", edge, y, left, right)
			}
			below := g.Noise2D(y, edge-eps)
			above := g.Noise2D(y, edge+eps)
			if math.Abs(below-above) > 1e-5 {
				t.Fatalf("discontinuity at y=%f x=%f: %f vs %f", edge, y, below, above)
			}
		}
	}
}

func TestGradientSeedsDiffer(t *testing.T) {
	a := NewGradient(1)
	b := NewGradient(2)
	same := 0
	for i := 0; i < 50; i++ {
		x := float64(i)*0.61 + 0.3
		if a.Noise2D(x, 0.4) == b.Noise2D(x, 0.4) {
			same++
		}
	}
	if same == 50 {
		t.Fatal("different seeds produced identical fields")
	}
}

func TestNewAllKinds(t *testing.T) {
	for _, kind := range Kinds() {
		f, err := New(kind, 5)
		if err != nil {
			t.Fatalf("New(%q): %v", kind, err)
		}
		g, _ := New(kind, 5)
		for i := 0; i < 100; i++ {
			x := float64(i) * 0.173
			y := float64(i) * 0.291
			v := f.Noise2D(x, y)
			if v < -1 || v > 1 {
				t.Fatalf("%s: Noise2D(%f, %f) = %f, out of range", kind, x, y, v)
			}
			if v != g.Noise2D(x, y) {
				t.Fatalf("%s: not deterministic for a fixed seed", kind)
			}
		}
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"", KindGradient, false},
		{"Perlin", KindPerlin, false},
		{" simplex ", KindSimplex, false},
		{"simplx", "", true},
		{"worley", "", true},
	}
	for _, tc := range tests {
		got, err := ParseKind(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrUnknownKind) {
				t.Errorf("ParseKind(%q) error = %v, want ErrUnknownKind", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParseKind(%q) = (%q, %v), want %q", tc.in, got, err, tc.want)
		}
	}

	if _, err := New("worley", 1); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("New with unknown kind returned %v", err)
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{math.Inf(-1), 0},
		{1.5, 1},
		{-2, -1},
		{0.25, 0.25},
	}
	for _, tc := range tests {
		if got := Sanitize(tc.in); got != tc.want {
			t.Errorf("Sanitize(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
