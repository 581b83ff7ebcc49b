//go:build ebiten

package app

import (
	"image/color"
	"log/slog"

	"wildfire/internal/core"
	"wildfire/internal/render"
	"wildfire/internal/sims"
	"wildfire/internal/ui"
	"wildfire/internal/world"
	"wildfire/internal/worldgen"
	rng "wildfire/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 240

var selectedColor = color.RGBA{R: 255, G: 220, B: 60, A: 255}

// Game drives a fire simulation on a generated world through ebiten.
type Game struct {
	cfg *Config
	log *slog.Logger

	factory sims.Factory
	world   *world.World
	sim     sims.Sim

	painter   *render.GridPainter
	hud       *ui.HUD
	pacer     *core.FixedStep
	selection *Selection

	running bool
	paused  bool
}

// New generates the first world and binds the configured simulation to it.
func New(cfg *Config, log *slog.Logger) (*Game, error) {
	if log == nil {
		log = slog.Default()
	}
	factory, err := sims.Lookup(cfg.Sim)
	if err != nil {
		return nil, err
	}
	g := &Game{
		cfg:     cfg,
		log:     log,
		factory: factory,
		pacer:   core.NewFixedStep(cfg.TPS),
		painter: render.NewGridPainter(cfg.Size, cfg.Size),
	}
	if err := g.regenerate(); err != nil {
		return nil, err
	}
	return g, nil
}

// regenerate replaces the world and the simulation bound to it.
func (g *Game) regenerate() error {
	wc, err := g.cfg.WorldConfig()
	if err != nil {
		return err
	}
	w, err := worldgen.Generate(wc, rng.NewRNG(g.cfg.Seed), g.log)
	if err != nil {
		return err
	}
	sim, err := g.factory(w, rng.NewRNG(g.cfg.Seed), nil)
	if err != nil {
		return err
	}
	if l, ok := sim.(interface{ SetLogger(*slog.Logger) }); ok {
		l.SetLogger(g.log)
	}
	g.world, g.sim = w, sim
	g.selection = NewSelection(sim.ProhibitedTiles())
	if g.hud == nil {
		g.hud = ui.NewHUD(sim, hudWidth)
	} else {
		g.hud.Bind(sim)
	}
	g.running = false
	g.repaint()
	return nil
}

func (g *Game) repaint() {
	g.painter.Frame().Fill(g.sim.TileColor)
	for _, i := range g.selection.Tiles() {
		g.painter.Frame().Apply(map[int]color.RGBA{i: selectedColor})
	}
}

// Update handles input and advances the simulation at the configured rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && !g.running {
		g.start()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reset()
		g.selection.Clear()
		g.running = false
		g.hud.SetNotice("")
		g.repaint()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.cfg.Seed++
		if err := g.regenerate(); err != nil {
			return err
		}
		g.hud.SetNotice("")
	}

	mapWidth := g.cfg.Size * g.cfg.Scale
	if !g.hud.Update(mapWidth) && !g.running && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pick(ebiten.CursorPosition())
	}

	if g.running && !g.paused && g.pacer.ShouldStep() {
		g.sim.Update()
		g.painter.Frame().Apply(g.sim.ChangedTileColors())
		if g.sim.HasEnded() {
			g.running = false
			g.log.Info("simulation finished", "step", g.sim.Time())
		}
	}
	return nil
}

func (g *Game) start() {
	err := g.sim.Initialize(g.selection.Tiles())
	if err != nil {
		g.hud.SetNotice(err.Error())
		g.log.Warn("cannot start", "err", err)
		return
	}
	g.selection.Clear()
	g.running = true
	g.hud.SetNotice("")
	g.painter.Frame().Apply(g.sim.ChangedTileColors())
}

func (g *Game) pick(px, py int) {
	i, ok := TileAt(px, py, g.cfg.Scale, g.world.Width(), g.world.Depth())
	if !ok {
		return
	}
	picked, err := g.selection.Toggle(i)
	if err != nil {
		g.hud.SetNotice(err.Error())
		return
	}
	g.hud.SetNotice("")
	c := g.sim.TileColor(i)
	if picked {
		c = selectedColor
	}
	g.painter.Frame().Apply(map[int]color.RGBA{i: c})
}

// Draw renders the map and the control panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.cfg.Scale)
	g.hud.Draw(screen, g.cfg.Size*g.cfg.Scale, g.cfg.Scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Size*g.cfg.Scale + hudWidth, g.cfg.Size * g.cfg.Scale
}

// WindowSize returns the preferred window dimensions.
func (g *Game) WindowSize() (int, int) { return g.Layout(0, 0) }
