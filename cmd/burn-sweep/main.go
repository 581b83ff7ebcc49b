package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"wildfire/internal/noise"
	"wildfire/internal/sims/firespread"
	"wildfire/internal/worldgen"
	rng "wildfire/pkg/core"
)

func main() {
	size := flag.Int("size", 96, "side length of the square world")
	seed := flag.Int64("seed", 1337, "terrain seed")
	noiseKind := flag.String("noise", string(noise.KindGradient), "noise backend for the terrain")
	speeds := flag.String("speeds", "0,5,10,20,35,50", "comma-separated wind speeds")
	direction := flag.Int("direction", 0, "wind bearing in degrees")
	runs := flag.Int("runs", 16, "runs per wind speed")
	radius := flag.Int("radius", 1, "neighbor radius")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	speedList, err := parseSpeeds(*speeds)
	if err != nil {
		log.Error("bad -speeds", "err", err)
		os.Exit(2)
	}
	kind, err := noise.ParseKind(*noiseKind)
	if err != nil {
		log.Error("bad -noise", "err", err)
		os.Exit(2)
	}

	wc := worldgen.DefaultConfig()
	wc.Width, wc.Depth = *size, *size
	wc.Seed = *seed
	wc.Noise = kind
	w, err := worldgen.Generate(wc, rng.NewRNG(*seed), log)
	if err != nil {
		log.Error("terrain generation failed", "err", err)
		os.Exit(1)
	}

	ignition := []int{w.Index(w.Width()/2, w.Depth()/2)}
	if w.At(ignition[0]).IsWater() {
		log.Error("map centre is water; pick another -seed")
		os.Exit(1)
	}

	seeds := make([]int64, *runs)
	for i := range seeds {
		seeds[i] = *seed + int64(i) + 1
	}
	base := firespread.DefaultConfig()
	base.Params.NeighborRadius = *radius
	cases := firespread.SweepCases(speedList, *direction, seeds)

	fmt.Printf("Sweeping %d runs on a %dx%d world (%d workers)\n", len(cases), *size, *size, *workers)
	start := time.Now()
	records := firespread.WindSweep(w, base, ignition, cases, *workers)

	failed := 0
	for _, rec := range records {
		if rec.Err != nil {
			failed++
			log.Warn("run failed", "speed", rec.Case.WindSpeed, "seed", rec.Case.Seed, "err", rec.Err)
		}
	}

	summary := firespread.Summarize(records)
	fmt.Printf("\n%8s %6s %12s %10s %10s\n", "speed", "runs", "mean burned", "max", "mean steps")
	for _, s := range summary {
		fmt.Printf("%8.1f %6d %12.1f %10d %10.1f\n", s.WindSpeed, s.Runs, s.MeanBurned, s.MaxBurned, s.MeanSteps)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Result.Burned > records[j].Result.Burned })
	fmt.Printf("\nTop 3 runs (elapsed %s, %d failed):\n", time.Since(start).Round(time.Millisecond), failed)
	for i := 0; i < len(records) && i < 3; i++ {
		r := records[i]
		fmt.Printf("%d) speed=%.1f seed=%d burned=%d (%.1f%%) steps=%d peak=%d@%d\n",
			i+1, r.Case.WindSpeed, r.Case.Seed, r.Result.Burned, 100*r.Result.BurnedFraction(w), r.Result.Steps, r.Result.PeakBurning, r.Result.PeakStep)
	}
}

func parseSpeeds(list string) ([]float64, error) {
	var out []float64
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("speed %q: %w", field, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no speeds in %q", list)
	}
	return out, nil
}
