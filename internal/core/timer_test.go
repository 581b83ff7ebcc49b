package core

import (
	"testing"
	"time"
)

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.SetClock(func() time.Time { return clock })

	if !fs.ShouldStep() {
		t.Fatal("first call should fire immediately")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half a tick should not fire")
	}
	clock = clock.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full tick should fire")
	}
	clock = clock.Add(250 * time.Millisecond)
	fired := 0
	for fs.ShouldStep() {
		fired++
	}
	if fired != 2 {
		t.Fatalf("expected two catch-up ticks, got %d", fired)
	}
}

func TestFixedStepDefaultsRate(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("interval = %s, want 1/60s", fs.Interval())
	}
}
