//go:build !ebiten

package ui

import "wildfire/internal/sims"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(sims.Sim, int) *HUD { return nil }

// Bind is a no-op in the headless build.
func (h *HUD) Bind(sims.Sim) {}

// SetNotice is a no-op in the headless build.
func (h *HUD) SetNotice(string) {}

// Update is a no-op in the headless build.
func (h *HUD) Update(int) bool { return false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
