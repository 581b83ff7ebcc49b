// Package noise provides the 2D noise fields terrain generation samples from.
package noise

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"wildfire/internal/core"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Field is a deterministic 2D noise function returning values in about [-1, 1].
type Field interface {
	Noise2D(x, y float64) float64
}

// Kind names a noise backend.
type Kind string

const (
	// KindGradient is the built-in hashed gradient noise.
	KindGradient Kind = "gradient"
	// KindPerlin uses aquilax/go-perlin (three octaves, alpha=2, beta=2).
	KindPerlin Kind = "perlin"
	// KindSimplex uses ojrac/opensimplex-go.
	KindSimplex Kind = "simplex"
)

// ErrUnknownKind is returned for backend names New does not recognise.
var ErrUnknownKind = errors.New("unknown noise kind")

// Kinds lists every available backend.
func Kinds() []Kind {
	return []Kind{KindGradient, KindPerlin, KindSimplex}
}

// ParseKind resolves a backend name, suggesting the closest match on typos.
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	if k == "" {
		return KindGradient, nil
	}
	names := make([]string, 0, len(Kinds()))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
		names = append(names, string(known))
	}
	if guess, ok := core.Suggest(name, names); ok {
		return "", fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownKind, name, guess)
	}
	return "", fmt.Errorf("%w %q", ErrUnknownKind, name)
}

// New builds the field of the given kind.
func New(kind Kind, seed int64) (Field, error) {
	switch kind {
	case KindGradient, "":
		return NewGradient(seed), nil
	case KindPerlin:
		return perlinField{p: perlin.NewPerlin(2, 2, 3, seed)}, nil
	case KindSimplex:
		return simplexField{n: opensimplex.New(seed)}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}
}

// Sanitize maps NaN and infinities to 0 and clamps to [-1, 1].
func Sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}

type perlinField struct {
	p *perlin.Perlin
}

func (f perlinField) Noise2D(x, y float64) float64 {
	return Sanitize(f.p.Noise2D(x, y))
}

type simplexField struct {
	n opensimplex.Noise
}

func (f simplexField) Noise2D(x, y float64) float64 {
	return Sanitize(f.n.Eval2(x, y))
}
