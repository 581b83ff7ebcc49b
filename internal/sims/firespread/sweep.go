package firespread

import (
	"io"
	"log/slog"
	"sort"
	"sync"

	"wildfire/internal/world"
	rng "wildfire/pkg/core"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// BurnResult summarizes one run from ignition until the fire is out.
type BurnResult struct {
	// Ignited is the number of tiles that caught at step 0.
	Ignited int
	// Steps is the number of updates executed.
	Steps int
	// Ended is false when the run hit the step limit with tiles still burning.
	Ended bool
	// Burned counts tiles that burned out.
	Burned int
	// PeakBurning is the largest burning set seen at any step.
	PeakBurning int
	// PeakStep is the first step at which PeakBurning was reached.
	PeakStep int
}

// BurnedFraction is Burned relative to the flammable tiles of w.
func (r BurnResult) BurnedFraction(w *world.World) float64 {
	flammable := 0
	w.Each(func(_ int, t world.Tile) {
		if !t.IsWater() {
			flammable++
		}
	})
	if flammable == 0 {
		return 0
	}
	return float64(r.Burned) / float64(flammable)
}

// StepBound is the most updates any run on the simulation's world can take:
// the sum of every tile's burn time.
func (s *Simulation) StepBound() int {
	total := 0
	for i := 0; i < s.world.Len(); i++ {
		total += s.BurnTime(i)
	}
	return total
}

// RunToEnd updates an initialized simulation until it ends or maxSteps
// updates have run. maxSteps <= 0 uses StepBound.
func RunToEnd(sim *Simulation, maxSteps int) BurnResult {
	if maxSteps <= 0 {
		maxSteps = sim.StepBound()
	}
	result := BurnResult{
		Ignited:     len(sim.ChangesAt(0)),
		PeakBurning: len(sim.burning),
	}
	for !sim.HasEnded() && result.Steps < maxSteps {
		sim.Update()
		result.Steps++
		if n := len(sim.burning); n > result.PeakBurning {
			result.PeakBurning = n
			result.PeakStep = sim.Time()
		}
	}
	result.Ended = sim.HasEnded()
	result.Burned = sim.BurnedCount()
	return result
}

// SweepCase is one scenario of a wind sweep.
type SweepCase struct {
	WindSpeed     float64
	WindDirection int
	Seed          int64
}

// SweepRecord pairs a case with its outcome.
type SweepRecord struct {
	Case   SweepCase
	Result BurnResult
	Err    error
}

// SweepCases builds the cross product of speeds and seeds at one direction.
func SweepCases(speeds []float64, direction int, seeds []int64) []SweepCase {
	out := make([]SweepCase, 0, len(speeds)*len(seeds))
	for _, speed := range speeds {
		for _, seed := range seeds {
			out = append(out, SweepCase{WindSpeed: speed, WindDirection: direction, Seed: seed})
		}
	}
	return out
}

// WindSweep runs every case on its own copy of w, igniting the same tiles
// each time, with at most workers runs in flight. Records come back in case
// order.
func WindSweep(w *world.World, base Config, ignition []int, cases []SweepCase, workers int) []SweepRecord {
	if workers <= 0 {
		workers = 1
	}
	records := make([]SweepRecord, len(cases))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for idx, c := range cases {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, c SweepCase) {
			defer wg.Done()
			defer func() { <-sem }()
			records[i] = runCase(w.Clone(), base, ignition, c)
		}(idx, c)
	}
	wg.Wait()
	return records
}

func runCase(w *world.World, base Config, ignition []int, c SweepCase) SweepRecord {
	cfg := base
	cfg.Seed = c.Seed
	cfg.Params.WindSpeed = c.WindSpeed
	cfg.Params.WindDirection = c.WindDirection
	sim, err := New(w, rng.NewRNG(c.Seed), cfg)
	if err != nil {
		return SweepRecord{Case: c, Err: err}
	}
	sim.SetLogger(discardLogger)
	if err := sim.Initialize(ignition); err != nil {
		return SweepRecord{Case: c, Err: err}
	}
	return SweepRecord{Case: c, Result: RunToEnd(sim, 0)}
}

// SpeedSummary aggregates every successful run at one wind speed.
type SpeedSummary struct {
	WindSpeed  float64
	Runs       int
	MeanBurned float64
	MeanSteps  float64
	MaxBurned  int
}

// Summarize groups records by wind speed, slowest first.
func Summarize(records []SweepRecord) []SpeedSummary {
	bySpeed := map[float64]*SpeedSummary{}
	for _, rec := range records {
		if rec.Err != nil {
			continue
		}
		sum, ok := bySpeed[rec.Case.WindSpeed]
		if !ok {
			sum = &SpeedSummary{WindSpeed: rec.Case.WindSpeed}
			bySpeed[rec.Case.WindSpeed] = sum
		}
		sum.Runs++
		sum.MeanBurned += float64(rec.Result.Burned)
		sum.MeanSteps += float64(rec.Result.Steps)
		sum.MaxBurned = max(sum.MaxBurned, rec.Result.Burned)
	}
	out := make([]SpeedSummary, 0, len(bySpeed))
	for _, sum := range bySpeed {
		sum.MeanBurned /= float64(sum.Runs)
		sum.MeanSteps /= float64(sum.Runs)
		out = append(out, *sum)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WindSpeed < out[j].WindSpeed })
	return out
}
