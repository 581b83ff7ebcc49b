package core

import (
	"math"
	"sort"
)

// Scalar enumerates the value kinds a Param can hold.
type Scalar interface {
	bool | int | float64
}

// Resetter is implemented by every parameter kind stored in a Container.
type Resetter interface {
	Reset()
}

// Param is a named, range-clamped value that remembers its initial value.
type Param[T Scalar] struct {
	initial T
	value   T
	min     T
	max     T
}

// NewParam returns a parameter holding initial, clamped to [min, max].
func NewParam[T Scalar](initial, min, max T) *Param[T] {
	if less(max, min) {
		min, max = max, min
	}
	p := &Param[T]{min: min, max: max}
	p.initial = clampScalar(initial, min, max)
	p.value = p.initial
	return p
}

// Value returns the current value.
func (p *Param[T]) Value() T { return p.value }

// SetValue stores v clamped to the parameter range.
func (p *Param[T]) SetValue(v T) { p.value = clampScalar(v, p.min, p.max) }

// Reset restores the construction-time value.
func (p *Param[T]) Reset() { p.value = p.initial }

// Bounds returns the inclusive range.
func (p *Param[T]) Bounds() (T, T) { return p.min, p.max }

// Initial returns the value Reset restores.
func (p *Param[T]) Initial() T { return p.initial }

// VectorParam holds one clamped value per tile.
type VectorParam[T Scalar] struct {
	values  []T
	initial T
	min     T
	max     T
}

// NewVectorParam allocates n values set to initial.
func NewVectorParam[T Scalar](n int, initial, min, max T) *VectorParam[T] {
	if n < 0 {
		n = 0
	}
	if less(max, min) {
		min, max = max, min
	}
	v := &VectorParam[T]{values: make([]T, n), min: min, max: max}
	v.initial = clampScalar(initial, min, max)
	v.Reset()
	return v
}

// Len returns the number of values.
func (v *VectorParam[T]) Len() int { return len(v.values) }

// Get returns the value at i; ok is false when i is out of range.
func (v *VectorParam[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(v.values) {
		var zero T
		return zero, false
	}
	return v.values[i], true
}

// Set stores val clamped at i. It reports false when i is out of range.
func (v *VectorParam[T]) Set(i int, val T) bool {
	if i < 0 || i >= len(v.values) {
		return false
	}
	v.values[i] = clampScalar(val, v.min, v.max)
	return true
}

// Reset restores every value to the initial value.
func (v *VectorParam[T]) Reset() {
	for i := range v.values {
		v.values[i] = v.initial
	}
}

// Container maps names to scalar and per-tile parameters. Lookups with the
// wrong type behave exactly like missing entries.
type Container struct {
	scalars map[string]Resetter
	vectors map[string]Resetter
}

// NewContainer returns an empty container.
func NewContainer() *Container {
	return &Container{scalars: map[string]Resetter{}, vectors: map[string]Resetter{}}
}

// Add registers a scalar parameter, replacing any previous entry.
func Add[T Scalar](c *Container, name string, p *Param[T]) {
	c.scalars[name] = p
}

// AddVector registers a per-tile parameter, replacing any previous entry.
func AddVector[T Scalar](c *Container, name string, v *VectorParam[T]) {
	c.vectors[name] = v
}

// GetParam returns the scalar parameter called name when it holds a T.
func GetParam[T Scalar](c *Container, name string) (*Param[T], bool) {
	if c == nil {
		return nil, false
	}
	p, ok := c.scalars[name].(*Param[T])
	return p, ok
}

// GetVector returns the per-tile parameter called name when it holds a T.
func GetVector[T Scalar](c *Container, name string) (*VectorParam[T], bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c.vectors[name].(*VectorParam[T])
	return v, ok
}

// Names lists scalar then vector parameter names, each sorted.
func (c *Container) Names() []string {
	scalars := make([]string, 0, len(c.scalars))
	for name := range c.scalars {
		scalars = append(scalars, name)
	}
	sort.Strings(scalars)
	vectors := make([]string, 0, len(c.vectors))
	for name := range c.vectors {
		vectors = append(vectors, name)
	}
	sort.Strings(vectors)
	return append(scalars, vectors...)
}

// Reset restores every registered parameter.
func (c *Container) Reset() {
	for _, p := range c.scalars {
		p.Reset()
	}
	for _, v := range c.vectors {
		v.Reset()
	}
}

func less[T Scalar](a, b T) bool {
	switch av := any(a).(type) {
	case int:
		return av < any(b).(int)
	case float64:
		return av < any(b).(float64)
	case bool:
		return !av && any(b).(bool)
	}
	return false
}

// clampScalar bounds v to [lo, hi]. NaN floats collapse to lo.
func clampScalar[T Scalar](v, lo, hi T) T {
	switch x := any(v).(type) {
	case float64:
		if math.IsNaN(x) {
			return lo
		}
	case bool:
		if lo == hi {
			return lo
		}
		return v
	}
	if less(v, lo) {
		return lo
	}
	if less(hi, v) {
		return hi
	}
	return v
}

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
)

// ParamInfo describes a single tunable value exposed by a simulation.
type ParamInfo struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []ParamInfo
	Summary string
}

// ParameterSnapshot captures the current set of tunables exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup finds a parameter by key across all groups.
func (s ParameterSnapshot) Lookup(key string) (ParamInfo, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return ParamInfo{}, false
}

// ParameterControl describes an adjustable parameter that should be exposed on
// the HUD. Steps and bounds are optional and interpreted based on the
// parameter type.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter allows HUD interactions to update integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// FloatParameterSetter allows HUD interactions to update floating point
// parameters.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}
