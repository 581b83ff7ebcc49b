package firespread

import (
	"image/color"
	"math"

	"wildfire/internal/world"
)

var (
	// BurningColor highlights tiles that are on fire.
	BurningColor = color.RGBA{R: 255, G: 105, B: 105, A: 255}
	// BurnedColor marks tiles the fire has passed through.
	BurnedColor = color.RGBA{R: 180, G: 50, B: 50, A: 255}

	waterColor = color.NRGBA{R: 40, G: 90, B: 190, A: 255}
)

// TerrainColor is the color of an unburned tile: water is blue, land is a
// green whose brightness follows height, tinted by vegetation.
func TerrainColor(t world.Tile) color.RGBA {
	if t.IsWater() {
		return toRGBA(waterColor)
	}
	h := t.Height
	if math.IsNaN(h) {
		h = 0
	}
	h = math.Max(0, math.Min(1, h))
	base := color.NRGBA{R: 0, G: uint8(h*255 + 0.5), B: 0, A: 255}
	return toRGBA(blendColors(base, vegetationColor(t.Vegetation), 0.35))
}

func vegetationColor(v world.Vegetation) color.NRGBA {
	switch v {
	case world.VegetationSparse:
		return color.NRGBA{R: 170, G: 160, B: 90, A: 255}
	case world.VegetationForest:
		return color.NRGBA{R: 30, G: 95, B: 45, A: 255}
	case world.VegetationSwamp:
		return color.NRGBA{R: 70, G: 110, B: 90, A: 255}
	default:
		return color.NRGBA{R: 90, G: 170, B: 80, A: 255}
	}
}

func toRGBA(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func blendColors(base, overlay color.NRGBA, overlayWeight float64) color.NRGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	br, bg, bb, ba := float64(base.R), float64(base.G), float64(base.B), float64(base.A)
	or, og, ob, oa := float64(overlay.R), float64(overlay.G), float64(overlay.B), float64(overlay.A)
	w := overlayWeight
	inv := 1 - w
	return color.NRGBA{
		R: uint8(br*inv + or*w + 0.5),
		G: uint8(bg*inv + og*w + 0.5),
		B: uint8(bb*inv + ob*w + 0.5),
		A: uint8(ba*inv + oa*w + 0.5),
	}
}

// TileColor returns the current color of tile i: burning, burned or terrain.
func (s *Simulation) TileColor(i int) color.RGBA {
	switch s.State(i) {
	case StateBurning:
		return BurningColor
	case StateBurned:
		return BurnedColor
	}
	t, err := s.world.TileByIndex(i)
	if err != nil {
		return color.RGBA{}
	}
	return TerrainColor(t)
}

// ChangedTileColors maps every tile changed in the latest step to its color.
func (s *Simulation) ChangedTileColors() map[int]color.RGBA {
	changed := s.LastChangedTiles()
	out := make(map[int]color.RGBA, len(changed))
	for _, i := range changed {
		if s.State(i) == StateBurning {
			out[i] = BurningColor
			continue
		}
		out[i] = BurnedColor
	}
	return out
}
