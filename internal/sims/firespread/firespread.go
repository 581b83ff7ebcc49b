// Package firespread implements the wildfire cellular automaton. Burning
// tiles try to ignite their neighbors every step with a probability derived
// from vegetation, moisture, wind and slope, and burn out after a duration
// set by their own vegetation.
package firespread

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/zyedidia/generic/mapset"

	"wildfire/internal/core"
	"wildfire/internal/sims"
	"wildfire/internal/world"
	rng "wildfire/pkg/core"
)

// ErrNoIgnition is returned by Initialize when none of the given tiles could
// be set alight.
var ErrNoIgnition = errors.New("ignite some tiles first")

// Names of the parameters the simulation registers on the world container.
const (
	ParamWindSpeed     = "windSpeed"
	ParamWindDirection = "windDirection"
	ParamIsBurning     = "isBurning"
	ParamHasBurned     = "hasBurned"
	ParamBurningFor    = "burningFor"
	ParamBurnTime      = "burnTime"
)

const (
	defaultBurnTime = 5
	maxBurnTime     = 5
)

// State is the fire lifecycle state of a tile.
type State uint8

const (
	StateUnburned State = iota
	StateBurning
	StateBurned
)

func (s State) String() string {
	switch s {
	case StateBurning:
		return "burning"
	case StateBurned:
		return "burned"
	default:
		return "unburned"
	}
}

// BurnTimeFor returns how many steps a tile of vegetation v burns.
func BurnTimeFor(v world.Vegetation) int {
	switch v {
	case world.VegetationGrass:
		return 1
	case world.VegetationSparse:
		return 2
	case world.VegetationSwamp:
		return 3
	case world.VegetationForest:
		return 4
	default:
		return defaultBurnTime
	}
}

var _ sims.Sim = (*Simulation)(nil)

// Simulation is a fire-spread run bound to a single square world. It is not
// safe for concurrent use.
type Simulation struct {
	world *world.World
	src   rng.Source
	cfg   Config
	log   *slog.Logger

	windSpeed     *core.Param[float64]
	windDirection *core.Param[int]

	isBurning  *core.VectorParam[bool]
	hasBurned  *core.VectorParam[bool]
	burningFor *core.VectorParam[int]
	burnTime   *core.VectorParam[int]

	time    int
	burning []int
	changes map[int][]int

	prohibited    []int
	prohibitedSet mapset.Set[int]
}

// New binds a simulation to w and registers its state on w's parameter
// container. A nil src is replaced by a generator seeded from cfg.Seed.
func New(w *world.World, src rng.Source, cfg Config) (*Simulation, error) {
	if w == nil {
		return nil, fmt.Errorf("firespread: nil world")
	}
	if _, err := w.SideLength(); err != nil {
		return nil, fmt.Errorf("firespread: %w", err)
	}
	if src == nil {
		src = rng.NewRNG(cfg.Seed)
	}
	if cfg.Params.NeighborRadius < 1 {
		cfg.Params.NeighborRadius = 1
	}

	n := w.Len()
	s := &Simulation{
		world:         w,
		src:           src,
		cfg:           cfg,
		log:           slog.Default(),
		windSpeed:     core.NewParam(cfg.Params.WindSpeed, 0, MaxWindSpeed),
		windDirection: core.NewParam(cfg.Params.WindDirection, 0, MaxWindDirection),
		isBurning:     core.NewVectorParam(n, false, false, true),
		hasBurned:     core.NewVectorParam(n, false, false, true),
		burningFor:    core.NewVectorParam(n, 0, 0, maxBurnTime),
		burnTime:      core.NewVectorParam(n, defaultBurnTime, 0, maxBurnTime),
		changes:       map[int][]int{},
	}

	params := w.Params()
	core.Add(params, ParamWindSpeed, s.windSpeed)
	core.Add(params, ParamWindDirection, s.windDirection)
	core.AddVector(params, ParamIsBurning, s.isBurning)
	core.AddVector(params, ParamHasBurned, s.hasBurned)
	core.AddVector(params, ParamBurningFor, s.burningFor)
	core.AddVector(params, ParamBurnTime, s.burnTime)

	s.assignBurnTimes()
	s.collectProhibited()
	return s, nil
}

// SetLogger replaces the logger. A nil logger restores slog.Default.
func (s *Simulation) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	s.log = l
}

// Name returns the simulation identifier.
func (s *Simulation) Name() string { return "firespread" }

// World returns the world the simulation runs on.
func (s *Simulation) World() *world.World { return s.world }

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() Config { return s.cfg }

// Time returns the current step.
func (s *Simulation) Time() int { return s.time }

// Initialize restarts the clock and sets the given tiles alight. Indices that
// are out of range, prohibited, already burning or burned are skipped.
// ErrNoIgnition is returned when nothing ended up burning.
func (s *Simulation) Initialize(tiles []int) error {
	for _, i := range s.burning {
		s.isBurning.Set(i, false)
	}
	s.time = 0
	s.burning = s.burning[:0]
	clear(s.changes)

	seen := mapset.New[int]()
	for _, i := range tiles {
		if seen.Has(i) || !s.canIgnite(i) {
			continue
		}
		seen.Put(i)
		s.ignite(i)
		s.burning = append(s.burning, i)
	}
	s.changes[0] = append([]int(nil), s.burning...)

	if len(s.burning) == 0 {
		s.log.Warn("no ignition", "requested", len(tiles))
		return ErrNoIgnition
	}
	s.log.Info("fire started", "tiles", len(s.burning), "wind_speed", s.windSpeed.Value(), "wind_direction", s.windDirection.Value())
	return nil
}

// Update advances the fire by one step. Burning tiles are visited in the
// order they caught fire; each tries its neighbors before its own burn
// counter advances. An ended simulation is left untouched.
func (s *Simulation) Update() {
	if len(s.burning) == 0 {
		return
	}
	s.time++
	radius := s.cfg.Params.NeighborRadius
	speed := s.windSpeed.Value()
	direction := s.windDirection.Value()

	next := make([]int, 0, len(s.burning))
	var changed []int
	for _, src := range s.burning {
		source := s.world.At(src)
		steps, ok := s.burnTime.Get(src)
		if !ok {
			continue
		}
		for _, dst := range s.world.Neighbors(src, radius) {
			if !s.canIgnite(dst) {
				continue
			}
			total := SpreadProbability(source, s.world.At(dst), speed, direction)
			if s.src.Float64() < StepProbability(total, steps) {
				s.ignite(dst)
				next = append(next, dst)
				changed = append(changed, dst)
			}
		}

		burned, ok := s.burningFor.Get(src)
		if !ok {
			continue
		}
		burned++
		s.burningFor.Set(src, burned)
		if burned >= steps {
			s.isBurning.Set(src, false)
			s.hasBurned.Set(src, true)
			changed = append(changed, src)
			continue
		}
		next = append(next, src)
	}

	s.burning = next
	s.changes[s.time] = changed
	s.log.Debug("fire step", "step", s.time, "changed", len(changed), "burning", len(next))
	if len(next) == 0 {
		s.log.Info("fire burned out", "step", s.time, "burned", s.BurnedCount())
	}
}

// HasEnded reports whether nothing is burning. It is also true before the
// first ignition.
func (s *Simulation) HasEnded() bool { return len(s.burning) == 0 }

// Reset restores the clock, clears all fire state and resets every parameter
// on the world container. Terrain is left as is.
func (s *Simulation) Reset() {
	s.time = 0
	s.burning = nil
	clear(s.changes)
	s.world.Params().Reset()
	s.assignBurnTimes()
	s.collectProhibited()
	s.log.Debug("simulation reset")
}

// LastChangedTiles returns the tiles whose state changed in the latest step.
func (s *Simulation) LastChangedTiles() []int { return s.ChangesAt(s.time) }

// ChangesAt returns the tiles whose state changed at step.
func (s *Simulation) ChangesAt(step int) []int {
	return append([]int(nil), s.changes[step]...)
}

// ProhibitedTiles returns every permanent-water tile.
func (s *Simulation) ProhibitedTiles() []int {
	return append([]int(nil), s.prohibited...)
}

// IsProhibited reports whether tile i can never ignite.
func (s *Simulation) IsProhibited(i int) bool { return s.prohibitedSet.Has(i) }

// BurningTiles returns the burning set in iteration order.
func (s *Simulation) BurningTiles() []int {
	return append([]int(nil), s.burning...)
}

// State returns the fire state of tile i. Unknown tiles report unburned.
func (s *Simulation) State(i int) State {
	if b, ok := s.isBurning.Get(i); ok && b {
		return StateBurning
	}
	if b, ok := s.hasBurned.Get(i); ok && b {
		return StateBurned
	}
	return StateUnburned
}

// BurnTime returns how many steps tile i burns for, or 0 for unknown tiles.
func (s *Simulation) BurnTime(i int) int {
	v, _ := s.burnTime.Get(i)
	return v
}

// BurnedCount returns the number of tiles that have burned out.
func (s *Simulation) BurnedCount() int {
	count := 0
	for i := 0; i < s.hasBurned.Len(); i++ {
		if b, _ := s.hasBurned.Get(i); b {
			count++
		}
	}
	return count
}

// Wind returns the current wind speed and direction.
func (s *Simulation) Wind() (speed float64, direction int) {
	return s.windSpeed.Value(), s.windDirection.Value()
}

// SetWind updates the wind. Values are clamped to their ranges.
func (s *Simulation) SetWind(speed float64, direction int) {
	s.windSpeed.SetValue(speed)
	s.windDirection.SetValue(direction)
}

// IgnitionProbability is the per-step chance that a burning source ignites
// target under the current wind.
func (s *Simulation) IgnitionProbability(source, target int) float64 {
	if source < 0 || source >= s.world.Len() || target < 0 || target >= s.world.Len() {
		return 0
	}
	speed, direction := s.Wind()
	total := SpreadProbability(s.world.At(source), s.world.At(target), speed, direction)
	return StepProbability(total, s.BurnTime(source))
}

func (s *Simulation) canIgnite(i int) bool {
	if s.prohibitedSet.Has(i) {
		return false
	}
	burning, ok := s.isBurning.Get(i)
	if !ok || burning {
		return false
	}
	burned, ok := s.hasBurned.Get(i)
	return ok && !burned
}

func (s *Simulation) ignite(i int) {
	s.isBurning.Set(i, true)
	s.burningFor.Set(i, 0)
}

func (s *Simulation) assignBurnTimes() {
	s.world.Each(func(i int, t world.Tile) {
		s.burnTime.Set(i, BurnTimeFor(t.Vegetation))
	})
}

func (s *Simulation) collectProhibited() {
	s.prohibited = s.prohibited[:0]
	s.prohibitedSet = mapset.New[int]()
	s.world.Each(func(i int, t world.Tile) {
		if t.IsWater() {
			s.prohibited = append(s.prohibited, i)
			s.prohibitedSet.Put(i)
		}
	})
}

func init() {
	sims.Register("firespread", func(w *world.World, src rng.Source, cfg map[string]string) (sims.Sim, error) {
		return New(w, src, FromMap(cfg))
	})
}
