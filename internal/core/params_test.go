package core

import (
	"math"
	"slices"
	"testing"
)

func TestParamClampsAndResets(t *testing.T) {
	p := NewParam(5.0, 0, 50)
	tests := []struct {
		set  float64
		want float64
	}{
		{12.5, 12.5},
		{-1, 0},
		{75, 50},
		{math.NaN(), 0},
		{50, 50},
	}
	for _, tc := range tests {
		p.SetValue(tc.set)
		if got := p.Value(); got != tc.want {
			t.Errorf("SetValue(%v) stored %v, want %v", tc.set, got, tc.want)
		}
		p.Reset()
		if got := p.Value(); got != 5 {
			t.Fatalf("Reset restored %v, want 5", got)
		}
	}
}

func TestParamInitialIsClamped(t *testing.T) {
	p := NewParam(400, 0, 360)
	if p.Value() != 360 || p.Initial() != 360 {
		t.Fatalf("initial value not clamped: %d", p.Value())
	}
	swapped := NewParam(3, 10, 1)
	lo, hi := swapped.Bounds()
	if lo != 1 || hi != 10 {
		t.Fatalf("inverted bounds not normalized: [%d,%d]", lo, hi)
	}
}

func TestBoolParam(t *testing.T) {
	p := NewParam(false, false, true)
	p.SetValue(true)
	if !p.Value() {
		t.Fatal("bool param should accept true")
	}
	p.Reset()
	if p.Value() {
		t.Fatal("bool param should reset to false")
	}
	pinned := NewParam(false, false, false)
	pinned.SetValue(true)
	if pinned.Value() {
		t.Fatal("bool param pinned to false accepted true")
	}
}

func TestVectorParam(t *testing.T) {
	v := NewVectorParam(4, 5, 0, 5)
	if !v.Set(1, 9) {
		t.Fatal("set within range reported failure")
	}
	if got, _ := v.Get(1); got != 5 {
		t.Fatalf("Set(1, 9) stored %d, want 5 after clamping", got)
	}
	v.Set(2, -4)
	if got, _ := v.Get(2); got != 0 {
		t.Fatalf("Set(2, -4) stored %d, want 0", got)
	}
	if v.Set(4, 1) {
		t.Fatal("out-of-range set should report false")
	}
	if _, ok := v.Get(-1); ok {
		t.Fatal("out-of-range get should report false")
	}

	v.Reset()
	for i := 0; i < v.Len(); i++ {
		if got, _ := v.Get(i); got != 5 {
			t.Fatalf("index %d after reset = %d, want 5", i, got)
		}
	}
}

func TestContainerTypedLookup(t *testing.T) {
	c := NewContainer()
	speed := NewParam(5.0, 0, 50)
	Add(c, "windSpeed", speed)
	AddVector(c, "isBurning", NewVectorParam(3, false, false, true))

	if got, ok := GetParam[float64](c, "windSpeed"); !ok || got != speed {
		t.Fatal("expected windSpeed lookup to succeed")
	}
	if _, ok := GetParam[int](c, "windSpeed"); ok {
		t.Fatal("wrong-type lookup should behave like a miss")
	}
	if _, ok := GetParam[float64](c, "missing"); ok {
		t.Fatal("missing lookup should fail")
	}
	if _, ok := GetParam[bool](c, "isBurning"); ok {
		t.Fatal("vector names must not resolve as scalars")
	}
	if _, ok := GetVector[bool](c, "isBurning"); !ok {
		t.Fatal("expected isBurning vector lookup to succeed")
	}
	if _, ok := GetVector[int](c, "isBurning"); ok {
		t.Fatal("wrong-type vector lookup should fail")
	}
	var nilContainer *Container
	if _, ok := GetParam[float64](nilContainer, "windSpeed"); ok {
		t.Fatal("nil container lookup should fail")
	}
}

func TestContainerReset(t *testing.T) {
	c := NewContainer()
	dir := NewParam(0, 0, 360)
	burning := NewVectorParam(2, false, false, true)
	Add(c, "windDirection", dir)
	AddVector(c, "isBurning", burning)

	dir.SetValue(270)
	burning.Set(1, true)
	c.Reset()

	if dir.Value() != 0 {
		t.Fatalf("direction after reset = %d", dir.Value())
	}
	if got, _ := burning.Get(1); got {
		t.Fatal("vector value survived reset")
	}

	want := []string{"windDirection", "isBurning"}
	if got := c.Names(); !slices.Equal(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
}

func TestSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "Wind", Params: []ParamInfo{{Key: "wind_speed", Value: "5"}}},
	}}
	if p, ok := snap.Lookup("wind_speed"); !ok || p.Value != "5" {
		t.Fatalf("lookup failed: %+v", p)
	}
	if _, ok := snap.Lookup("nope"); ok {
		t.Fatal("unexpected hit")
	}
}
