package ui

import (
	"fmt"
	"image"
	"math"
	"strconv"

	"wildfire/internal/core"
)

// controlState tracks one adjustable parameter row on the panel.
type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

func newControlStates(controls []core.ParameterControl) []controlState {
	out := make([]controlState, len(controls))
	for i, ctrl := range controls {
		out[i] = controlState{control: ctrl, value: "--"}
	}
	return out
}

// refresh reloads the displayed value from snap.
func (s *controlState) refresh(snap core.ParameterSnapshot) {
	param, ok := snap.Lookup(s.control.Key)
	if !ok {
		s.clear()
		return
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			s.clear()
			return
		}
		s.intValue = parsed
		s.floatValue = float64(parsed)
		s.value = strconv.Itoa(parsed)
		s.hasValue = true
	case core.ParamTypeFloat:
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			s.clear()
			return
		}
		s.floatValue = parsed
		s.value = formatFloat(s.control, parsed)
		s.hasValue = true
	default:
		s.clear()
	}
}

func (s *controlState) clear() {
	s.hasValue = false
	s.value = "--"
}

// nextInt returns the value one step in direction, clamped to the control's
// bounds. ok is false when the value would not change.
func nextInt(ctrl core.ParameterControl, current, direction int) (int, bool) {
	if direction == 0 {
		return current, false
	}
	step := int(math.Round(ctrl.Step))
	if step <= 0 {
		step = 1
	}
	target := current + direction*step
	if ctrl.HasMin {
		target = max(target, int(math.Round(ctrl.Min)))
	}
	if ctrl.HasMax {
		target = min(target, int(math.Round(ctrl.Max)))
	}
	return target, target != current
}

// nextFloat is nextInt for float controls.
func nextFloat(ctrl core.ParameterControl, current float64, direction int) (float64, bool) {
	if direction == 0 {
		return current, false
	}
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	target := current + float64(direction)*step
	if ctrl.HasMin && target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	return target, math.Abs(target-current) >= 1e-9
}

// applyAdjustment pushes a one-step change through the matching setter.
func applyAdjustment(state *controlState, direction int, ints core.IntParameterSetter, floats core.FloatParameterSetter) bool {
	if state == nil || !state.hasValue {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		target, ok := nextInt(state.control, state.intValue, direction)
		if !ok || ints == nil || !ints.SetIntParameter(state.control.Key, target) {
			return false
		}
		state.intValue = target
		state.floatValue = float64(target)
		state.value = strconv.Itoa(target)
		return true
	case core.ParamTypeFloat:
		target, ok := nextFloat(state.control, state.floatValue, direction)
		if !ok || floats == nil || !floats.SetFloatParameter(state.control.Key, target) {
			return false
		}
		state.floatValue = target
		state.value = formatFloat(state.control, target)
		return true
	}
	return false
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// statusLines renders the read-only part of a snapshot: every parameter that
// has no control, then each group summary.
func statusLines(snap core.ParameterSnapshot, controls []controlState) []string {
	controlled := make(map[string]bool, len(controls))
	for _, c := range controls {
		controlled[c.control.Key] = true
	}
	var lines []string
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			if controlled[p.Key] {
				continue
			}
			lines = append(lines, fmt.Sprintf("%s: %s", p.Label, p.Value))
		}
	}
	for _, g := range snap.Groups {
		if g.Summary != "" {
			lines = append(lines, g.Summary)
		}
	}
	return lines
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

func layoutControls(controls []controlState, width int) {
	for i := range controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		controls[i].top = top
		controls[i].minusRect = minusRect
		controls[i].plusRect = plusRect
	}
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	statusSpacing  = 16
	controlsTop    = panelPadding + headerBaseline + 14
)
