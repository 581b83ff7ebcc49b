package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"wildfire/internal/core"
	"wildfire/internal/sims/firespread"
	"wildfire/internal/world"
	"wildfire/internal/worldgen"
	rng "wildfire/pkg/core"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	size := flag.Int("size", 64, "side length of the square world")
	seed := flag.Int64("seed", 1337, "seed for terrain and fire")
	ignite := flag.String("ignite", "center", `ignition tiles: "center", "random:N" or "x,y;x,y"`)
	maxSteps := flag.Int("max-steps", 0, "stop after this many steps (0 = until the fire is out)")
	tps := flag.Int("tps", 0, "pace steps at this rate (0 = as fast as possible)")
	verbose := flag.Bool("v", false, "log every step")
	var overrides kvList
	flag.Var(&overrides, "set", "terrain or fire setting in key=value form (repeatable)")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	terrain, fire, warnings := splitOverrides(overrides)
	for _, msg := range warnings {
		log.Warn(msg)
	}
	terrain["w"] = strconv.Itoa(*size)
	terrain["d"] = strconv.Itoa(*size)
	if _, ok := terrain["seed"]; !ok {
		terrain["seed"] = strconv.FormatInt(*seed, 10)
	}
	if _, ok := fire["seed"]; !ok {
		fire["seed"] = strconv.FormatInt(*seed, 10)
	}

	wc := worldgen.FromMap(terrain)
	w, err := worldgen.Generate(wc, rng.NewRNG(wc.Seed), log)
	if err != nil {
		log.Error("terrain generation failed", "err", err)
		os.Exit(1)
	}

	fc := firespread.FromMap(fire)
	src := rng.NewRNG(fc.Seed)
	sim, err := firespread.New(w, src, fc)
	if err != nil {
		log.Error("cannot start simulation", "err", err)
		os.Exit(1)
	}
	sim.SetLogger(log)

	tiles, err := parseIgnition(*ignite, w, src)
	if err != nil {
		log.Error("bad -ignite", "err", err)
		os.Exit(2)
	}
	if err := sim.Initialize(tiles); err != nil {
		log.Error("cannot start simulation", "err", err)
		os.Exit(1)
	}

	start := time.Now()
	var res firespread.BurnResult
	if *tps > 0 {
		res = runPaced(sim, *maxSteps, core.NewFixedStep(*tps))
	} else {
		res = firespread.RunToEnd(sim, *maxSteps)
	}

	speed, direction := sim.Wind()
	fmt.Printf("World %dx%d (seed %d, noise %s), %d water tiles\n", w.Width(), w.Depth(), wc.Seed, wc.Noise, len(sim.ProhibitedTiles()))
	fmt.Printf("Wind %.1f toward %d deg, neighbor radius %d\n", speed, direction, fc.Params.NeighborRadius)
	fmt.Printf("Ignited %d tiles; %d steps (ended=%v) in %s\n", res.Ignited, res.Steps, res.Ended, time.Since(start).Round(time.Millisecond))
	fmt.Printf("Burned %d tiles (%.1f%% of land), peak %d burning at step %d\n",
		res.Burned, 100*res.BurnedFraction(w), res.PeakBurning, res.PeakStep)
}

// runPaced steps the simulation like RunToEnd but waits for each tick.
func runPaced(sim *firespread.Simulation, maxSteps int, pacer *core.FixedStep) firespread.BurnResult {
	if maxSteps <= 0 {
		maxSteps = sim.StepBound()
	}
	res := firespread.BurnResult{Ignited: len(sim.ChangesAt(0)), PeakBurning: len(sim.BurningTiles())}
	for !sim.HasEnded() && res.Steps < maxSteps {
		pacer.Wait()
		sim.Update()
		res.Steps++
		if n := len(sim.BurningTiles()); n > res.PeakBurning {
			res.PeakBurning = n
			res.PeakStep = sim.Time()
		}
	}
	res.Ended = sim.HasEnded()
	res.Burned = sim.BurnedCount()
	return res
}

// splitOverrides routes key=value pairs to the terrain or fire settings. A
// key both understand goes to both.
func splitOverrides(pairs []string) (terrain, fire map[string]string, warnings []string) {
	terrain = map[string]string{}
	fire = map[string]string{}
	terrainKeys := worldgen.Keys()
	fireKeys := firespread.Keys()
	for _, kv := range pairs {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			warnings = append(warnings, fmt.Sprintf("ignoring %q: expected key=value", kv))
			continue
		}
		key = strings.TrimSpace(key)
		known := false
		if slices.Contains(terrainKeys, key) {
			terrain[key] = value
			known = true
		}
		if slices.Contains(fireKeys, key) {
			fire[key] = value
			known = true
		}
		if known {
			continue
		}
		if guess, ok := core.Suggest(key, append(terrainKeys, fireKeys...)); ok {
			warnings = append(warnings, fmt.Sprintf("unknown key %q (did you mean %q?)", key, guess))
			continue
		}
		warnings = append(warnings, fmt.Sprintf("unknown key %q", key))
	}
	return terrain, fire, warnings
}

// parseIgnition resolves the -ignite flag into tile indices.
func parseIgnition(arg string, w *world.World, src rng.Source) ([]int, error) {
	arg = strings.TrimSpace(arg)
	switch {
	case arg == "" || arg == "center":
		return []int{w.Index(w.Width()/2, w.Depth()/2)}, nil
	case strings.HasPrefix(arg, "random:"):
		n, err := strconv.Atoi(strings.TrimPrefix(arg, "random:"))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("random count in %q must be a positive integer", arg)
		}
		tiles := make([]int, 0, n)
		for attempts := 0; len(tiles) < n && attempts < 100*n; attempts++ {
			i := src.IntN(w.Len())
			if !w.At(i).IsWater() {
				tiles = append(tiles, i)
			}
		}
		return tiles, nil
	}
	var tiles []int
	for _, pair := range strings.Split(arg, ";") {
		xs, ys, ok := strings.Cut(strings.TrimSpace(pair), ",")
		if !ok {
			return nil, fmt.Errorf("tile %q: expected x,y", pair)
		}
		x, errX := strconv.Atoi(strings.TrimSpace(xs))
		y, errY := strconv.Atoi(strings.TrimSpace(ys))
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("tile %q: coordinates must be integers", pair)
		}
		t, err := w.TileAt(x, y)
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, w.TileIndex(t))
	}
	return tiles, nil
}
