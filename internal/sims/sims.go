// Package sims holds the simulation contract the viewer and the headless
// commands drive, plus the registry simulations add themselves to.
package sims

import (
	"errors"
	"fmt"
	"image/color"
	"sort"

	"wildfire/internal/core"
	"wildfire/internal/world"
	rng "wildfire/pkg/core"
)

// ErrUnknownSim is returned by Lookup for names nothing registered.
var ErrUnknownSim = errors.New("unknown simulation")

// Sim is a discrete-time simulation bound to one world.
type Sim interface {
	Name() string
	World() *world.World

	// Initialize starts a run from the given tile indices.
	Initialize(tiles []int) error
	// Update advances exactly one step.
	Update()
	HasEnded() bool
	Reset()
	Time() int

	LastChangedTiles() []int
	ProhibitedTiles() []int
	ChangedTileColors() map[int]color.RGBA
	// TileColor returns the color of tile i in the current state.
	TileColor(i int) color.RGBA
}

// Factory constructs a Sim for w using an optional configuration map.
type Factory func(w *world.World, src rng.Source, cfg map[string]string) (Sim, error)

var registry = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	registry[name] = f
}

// Names lists registered simulations in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	if f, ok := registry[name]; ok {
		return f, nil
	}
	if guess, ok := core.Suggest(name, Names()); ok {
		return nil, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownSim, name, guess)
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownSim, name)
}
