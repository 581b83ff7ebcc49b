package firespread

import (
	"testing"

	"wildfire/internal/worldgen"
	rng "wildfire/pkg/core"
)

func TestRunToEndRespectsLimit(t *testing.T) {
	cfg := calmConfig()
	s := newSim(t, grassWorld(t, 9), rng.FixedSource{}, cfg)
	if err := s.Initialize([]int{0}); err != nil {
		t.Fatal(err)
	}
	res := RunToEnd(s, 3)
	if res.Steps != 3 || res.Ended {
		t.Fatalf("limited run = %+v", res)
	}

	res = RunToEnd(s, 0)
	if !res.Ended {
		t.Fatalf("unbounded run did not end: %+v", res)
	}
	if s.BurnedCount() != 81 {
		t.Fatalf("forced spread should burn every tile, got %d", s.BurnedCount())
	}
}

func TestRunToEndTracksPeak(t *testing.T) {
	s := newSim(t, grassWorld(t, 3), rng.FixedSource{}, calmConfig())
	if err := s.Initialize([]int{4}); err != nil {
		t.Fatal(err)
	}
	res := RunToEnd(s, 0)
	want := BurnResult{Ignited: 1, Steps: 2, Ended: true, Burned: 9, PeakBurning: 8, PeakStep: 1}
	if res != want {
		t.Fatalf("RunToEnd = %+v, want %+v", res, want)
	}
	if f := res.BurnedFraction(s.World()); f != 1 {
		t.Fatalf("BurnedFraction = %f, want 1", f)
	}
}

func TestWindSweep(t *testing.T) {
	w, err := worldgen.GenerateWorld(16, 16, 0.1, 1, rng.NewRNG(2))
	if err != nil {
		t.Fatal(err)
	}
	var ignition []int
	for i := 0; i < w.Len(); i++ {
		if !w.At(i).IsWater() {
			ignition = append(ignition, i)
			break
		}
	}
	cases := SweepCases([]float64{0, 20}, 90, []int64{1, 2, 3})
	if len(cases) != 6 {
		t.Fatalf("SweepCases returned %d cases", len(cases))
	}

	records := WindSweep(w, DefaultConfig(), ignition, cases, 3)
	again := WindSweep(w, DefaultConfig(), ignition, cases, 1)
	for i, rec := range records {
		if rec.Err != nil {
			t.Fatalf("case %d: %v", i, rec.Err)
		}
		if rec.Case != cases[i] {
			t.Fatalf("record %d out of order: %+v", i, rec.Case)
		}
		if !rec.Result.Ended {
			t.Fatalf("case %d did not end", i)
		}
		if rec.Result != again[i].Result {
			t.Fatalf("case %d not reproducible across worker counts", i)
		}
	}
	if len(w.Params().Names()) != 0 {
		t.Fatal("sweep should not touch the source world's parameters")
	}

	summary := Summarize(records)
	if len(summary) != 2 || summary[0].WindSpeed != 0 || summary[1].WindSpeed != 20 {
		t.Fatalf("Summarize = %+v", summary)
	}
	for _, s := range summary {
		if s.Runs != 3 || s.MeanBurned < 1 {
			t.Fatalf("summary %+v", s)
		}
	}
}

func TestWindSweepReportsErrors(t *testing.T) {
	w := grassWorld(t, 3)
	records := WindSweep(w, DefaultConfig(), []int{-5}, SweepCases([]float64{1}, 0, []int64{1}), 0)
	if len(records) != 1 || records[0].Err == nil {
		t.Fatalf("expected an ignition error, got %+v", records)
	}
	if len(Summarize(records)) != 0 {
		t.Fatal("failed runs should not be summarized")
	}
}
