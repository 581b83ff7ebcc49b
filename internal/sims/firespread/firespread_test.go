package firespread

import (
	"errors"
	"io"
	"log/slog"
	"slices"
	"testing"

	"wildfire/internal/core"
	"wildfire/internal/sims"
	"wildfire/internal/world"
	"wildfire/internal/worldgen"
	rng "wildfire/pkg/core"
)

func quiet(s *Simulation) *Simulation {
	s.SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return s
}

func buildWorld(t *testing.T, w, d int, tile func(x, y int) world.Tile) *world.World {
	t.Helper()
	tiles := make([]world.Tile, 0, w*d)
	for x := 0; x < w; x++ {
		for y := 0; y < d; y++ {
			tl := tile(x, y)
			tl.X, tl.Y = x, y
			tiles = append(tiles, tl)
		}
	}
	wld, err := world.New(w, d, tiles)
	if err != nil {
		t.Fatalf("world.New: %v", err)
	}
	return wld
}

func grassWorld(t *testing.T, side int) *world.World {
	return buildWorld(t, side, side, func(int, int) world.Tile {
		return world.Tile{Vegetation: world.VegetationGrass}
	})
}

func calmConfig() Config {
	cfg := DefaultConfig()
	cfg.Params.WindSpeed = 0
	return cfg
}

func newSim(t *testing.T, w *world.World, src rng.Source, cfg Config) *Simulation {
	t.Helper()
	s, err := New(w, src, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return quiet(s)
}

func TestCenterIgnitionSpreadsToAllNeighbors(t *testing.T) {
	s := newSim(t, grassWorld(t, 3), rng.FixedSource{}, calmConfig())
	if err := s.Initialize([]int{4}); err != nil {
		t.Fatal(err)
	}
	if got := s.LastChangedTiles(); !slices.Equal(got, []int{4}) {
		t.Fatalf("step 0 changes = %v, want [4]", got)
	}

	s.Update()
	if s.Time() != 1 {
		t.Fatalf("Time() = %d, want 1", s.Time())
	}
	want := []int{0, 1, 2, 3, 5, 6, 7, 8, 4}
	if got := s.LastChangedTiles(); !slices.Equal(got, want) {
		t.Fatalf("step 1 changes = %v, want %v", got, want)
	}
	if s.State(4) != StateBurned {
		t.Fatalf("center state = %s, want burned", s.State(4))
	}
	for _, i := range want[:8] {
		if s.State(i) != StateBurning {
			t.Fatalf("tile %d state = %s, want burning", i, s.State(i))
		}
	}

	s.Update()
	if !s.HasEnded() {
		t.Fatal("grass burns for one step; fire should be out after step 2")
	}
	if got := s.BurnedCount(); got != 9 {
		t.Fatalf("BurnedCount() = %d, want 9", got)
	}
}

func TestChangedTileColors(t *testing.T) {
	s := newSim(t, grassWorld(t, 3), rng.FixedSource{}, calmConfig())
	if err := s.Initialize([]int{4}); err != nil {
		t.Fatal(err)
	}
	colors := s.ChangedTileColors()
	if len(colors) != 1 || colors[4] != BurningColor {
		t.Fatalf("step 0 colors = %v", colors)
	}
	s.Update()
	colors = s.ChangedTileColors()
	if len(colors) != 9 {
		t.Fatalf("expected 9 colored tiles, got %d", len(colors))
	}
	if colors[4] != BurnedColor {
		t.Fatalf("center color = %v, want burned", colors[4])
	}
	if colors[0] != BurningColor {
		t.Fatalf("corner color = %v, want burning", colors[0])
	}
	if s.TileColor(4) != BurnedColor || s.TileColor(0) != BurningColor {
		t.Fatal("TileColor disagrees with ChangedTileColors")
	}
}

func TestWaterNeverIgnites(t *testing.T) {
	w := buildWorld(t, 3, 3, func(x, y int) world.Tile {
		if x == 1 && y == 1 {
			return world.Tile{Moisture: world.MoistureWater}
		}
		return world.Tile{Vegetation: world.VegetationGrass}
	})
	s := newSim(t, w, rng.FixedSource{}, calmConfig())
	if got := s.ProhibitedTiles(); !slices.Equal(got, []int{4}) {
		t.Fatalf("ProhibitedTiles() = %v, want [4]", got)
	}

	if err := s.Initialize([]int{4}); !errors.Is(err, ErrNoIgnition) {
		t.Fatalf("igniting water: err = %v, want ErrNoIgnition", err)
	}
	if !s.HasEnded() || s.State(4) != StateUnburned {
		t.Fatal("water ignition should leave no trace")
	}

	if err := s.Initialize([]int{4, 0}); err != nil {
		t.Fatal(err)
	}
	if got := s.BurningTiles(); !slices.Equal(got, []int{0}) {
		t.Fatalf("BurningTiles() = %v, want [0]", got)
	}
	for step := 0; ; step++ {
		if slices.Contains(s.LastChangedTiles(), 4) {
			t.Fatalf("water tile changed at step %d", step)
		}
		if s.HasEnded() {
			break
		}
		s.Update()
	}
	if s.State(4) != StateUnburned {
		t.Fatalf("water state = %s", s.State(4))
	}
	if got := s.BurnedCount(); got != 8 {
		t.Fatalf("BurnedCount() = %d, want 8", got)
	}
}

func TestInitializeFiltersTiles(t *testing.T) {
	s := newSim(t, grassWorld(t, 3), rng.FixedSource{Value: 0.99}, calmConfig())
	if err := s.Initialize([]int{-1, 4, 4, 99, 2}); err != nil {
		t.Fatal(err)
	}
	if got := s.BurningTiles(); !slices.Equal(got, []int{4, 2}) {
		t.Fatalf("BurningTiles() = %v, want [4 2]", got)
	}
	if err := s.Initialize(nil); !errors.Is(err, ErrNoIgnition) {
		t.Fatalf("empty ignition: err = %v", err)
	}
	if s.State(4) != StateUnburned {
		t.Fatal("re-initializing should extinguish the previous burning set")
	}
}

func TestResetClearsRun(t *testing.T) {
	w := grassWorld(t, 5)
	s := newSim(t, w, rng.NewRNG(3), DefaultConfig())
	if err := s.Initialize([]int{12}); err != nil {
		t.Fatal(err)
	}
	s.Update()
	s.SetWind(30, 90)

	s.Reset()
	if !s.HasEnded() {
		t.Fatal("HasEnded() should be true after Reset")
	}
	if got := s.LastChangedTiles(); len(got) != 0 {
		t.Fatalf("LastChangedTiles() after Reset = %v", got)
	}
	if s.Time() != 0 {
		t.Fatalf("Time() = %d after Reset", s.Time())
	}
	if speed, dir := s.Wind(); speed != 5 || dir != 0 {
		t.Fatalf("wind after Reset = (%f, %d), want (5, 0)", speed, dir)
	}
	for i := 0; i < w.Len(); i++ {
		if s.State(i) != StateUnburned {
			t.Fatalf("tile %d still %s after Reset", i, s.State(i))
		}
		if s.BurnTime(i) != 1 {
			t.Fatalf("tile %d burn time %d after Reset, want 1", i, s.BurnTime(i))
		}
	}
}

func TestUpdateAfterEndIsNoOp(t *testing.T) {
	s := newSim(t, grassWorld(t, 3), rng.FixedSource{Value: 0.99}, calmConfig())
	s.Update()
	if s.Time() != 0 {
		t.Fatal("Update before ignition should not advance the clock")
	}
	if err := s.Initialize([]int{0}); err != nil {
		t.Fatal(err)
	}
	s.Update()
	if !s.HasEnded() {
		t.Fatal("a lone grass tile with no spread should burn out in one step")
	}
	before := s.LastChangedTiles()
	s.Update()
	if s.Time() != 1 || !slices.Equal(s.LastChangedTiles(), before) {
		t.Fatal("Update on an ended simulation changed state")
	}
}

func TestTerminationWithinBound(t *testing.T) {
	cfg := worldgen.DefaultConfig()
	cfg.Width, cfg.Depth = 24, 24
	w, err := worldgen.Generate(cfg, rng.NewRNG(17), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatal(err)
	}
	s := newSim(t, w, rng.NewRNG(17), DefaultConfig())
	var ignite []int
	for i := 0; i < w.Len(); i += 37 {
		ignite = append(ignite, i)
	}
	if err := s.Initialize(ignite); err != nil {
		t.Fatal(err)
	}
	bound := s.StepBound()
	res := RunToEnd(s, 0)
	if !res.Ended {
		t.Fatalf("fire still burning after %d steps", res.Steps)
	}
	if res.Steps > bound {
		t.Fatalf("took %d steps, bound is %d", res.Steps, bound)
	}
	if res.Burned < res.Ignited {
		t.Fatalf("burned %d < ignited %d", res.Burned, res.Ignited)
	}
	for _, i := range s.ProhibitedTiles() {
		if s.State(i) != StateUnburned {
			t.Fatalf("prohibited tile %d is %s", i, s.State(i))
		}
	}
}

func TestMoistureInvariantOnGeneratedWorld(t *testing.T) {
	w, err := worldgen.GenerateWorld(20, 20, 0.2, 4, rng.NewRNG(5))
	if err != nil {
		t.Fatal(err)
	}
	s := newSim(t, w, rng.NewRNG(5), DefaultConfig())
	w.Each(func(i int, tile world.Tile) {
		if tile.Moisture < 0 || tile.Moisture > world.MoistureWater {
			t.Fatalf("tile %d moisture %d out of range", i, tile.Moisture)
		}
		if tile.IsWater() != s.IsProhibited(i) {
			t.Fatalf("tile %d water=%v prohibited=%v", i, tile.IsWater(), s.IsProhibited(i))
		}
	})
}

func TestDeterministicRuns(t *testing.T) {
	run := func() [][]int {
		w, err := worldgen.GenerateWorld(16, 16, 0.15, 2, rng.NewRNG(9))
		if err != nil {
			t.Fatal(err)
		}
		s := newSim(t, w, rng.NewRNG(9), DefaultConfig())
		if err := s.Initialize([]int{w.Index(8, 8), w.Index(2, 3)}); err != nil {
			t.Skip("ignition tiles landed on water")
		}
		var history [][]int
		for !s.HasEnded() {
			s.Update()
			history = append(history, s.LastChangedTiles())
		}
		return history
	}
	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("runs took %d and %d steps", len(a), len(b))
	}
	for i := range a {
		if !slices.Equal(a[i], b[i]) {
			t.Fatalf("step %d differs: %v vs %v", i+1, a[i], b[i])
		}
	}
}

func TestNonSquareWorldRejected(t *testing.T) {
	w := buildWorld(t, 2, 3, func(int, int) world.Tile { return world.Tile{} })
	if _, err := New(w, nil, DefaultConfig()); !errors.Is(err, world.ErrNotSquare) {
		t.Fatalf("New() error = %v, want ErrNotSquare", err)
	}
}

func TestParametersRegisteredOnWorld(t *testing.T) {
	w := buildWorld(t, 2, 2, func(x, y int) world.Tile {
		return world.Tile{Vegetation: world.Vegetation(x*2 + y)}
	})
	newSim(t, w, nil, DefaultConfig())
	params := w.Params()

	speed, ok := core.GetParam[float64](params, ParamWindSpeed)
	if !ok || speed.Value() != 5 {
		t.Fatalf("windSpeed = (%v, %v)", speed, ok)
	}
	if _, ok := core.GetParam[int](params, ParamWindSpeed); ok {
		t.Fatal("wrong-typed lookup should miss")
	}
	burnTime, ok := core.GetVector[int](params, ParamBurnTime)
	if !ok {
		t.Fatal("burnTime vector missing")
	}
	want := []int{1, 2, 4, 3}
	for i, bt := range want {
		if got, _ := burnTime.Get(i); got != bt {
			t.Fatalf("burnTime[%d] = %d, want %d", i, got, bt)
		}
	}
	for _, name := range []string{ParamIsBurning, ParamHasBurned} {
		if _, ok := core.GetVector[bool](params, name); !ok {
			t.Fatalf("%s vector missing", name)
		}
	}
}

func TestRegisteredFactory(t *testing.T) {
	f, err := sims.Lookup("firespread")
	if err != nil {
		t.Fatal(err)
	}
	sim, err := f(grassWorld(t, 3), rng.FixedSource{}, map[string]string{"wind_speed": "12"})
	if err != nil {
		t.Fatal(err)
	}
	fs, ok := sim.(*Simulation)
	if !ok {
		t.Fatalf("factory returned %T", sim)
	}
	if speed, _ := fs.Wind(); speed != 12 {
		t.Fatalf("wind speed = %f, want 12", speed)
	}
}
