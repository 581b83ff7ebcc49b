package firespread

import (
	"strconv"

	"wildfire/internal/core"
)

// Parameters reports the world size, the wind and the run state for display.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	speed, direction := s.Wind()
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.ParamInfo{
				intParam("w", "Width", s.world.Width()),
				intParam("d", "Depth", s.world.Depth()),
				intParam("prohibited", "Water tiles", len(s.prohibited)),
			},
		},
		{
			Name: "Wind",
			Params: []core.ParamInfo{
				floatParam("wind_speed", "Wind speed", speed),
				intParam("wind_direction", "Wind direction", direction),
			},
		},
		{
			Name: "Fire",
			Params: []core.ParamInfo{
				intParam("neighbor_radius", "Neighbor radius", s.cfg.Params.NeighborRadius),
				intParam("step", "Step", s.time),
				intParam("burning", "Burning tiles", len(s.burning)),
				intParam("burned", "Burned tiles", s.BurnedCount()),
			},
			Summary: s.summary(),
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func (s *Simulation) summary() string {
	switch {
	case s.time == 0 && len(s.burning) == 0:
		return "select tiles to ignite"
	case s.HasEnded():
		return "fire burned out after " + strconv.Itoa(s.time) + " steps"
	default:
		return "burning"
	}
}

// ParameterControls lists the values the HUD may adjust.
func (s *Simulation) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key:    "wind_speed",
			Label:  "Wind speed",
			Type:   core.ParamTypeFloat,
			Step:   1,
			Min:    0,
			Max:    MaxWindSpeed,
			HasMin: true,
			HasMax: true,
		},
		{
			Key:    "wind_direction",
			Label:  "Wind direction",
			Type:   core.ParamTypeInt,
			Step:   15,
			Min:    0,
			Max:    MaxWindDirection,
			HasMin: true,
			HasMax: true,
		},
		{
			Key:    "neighbor_radius",
			Label:  "Neighbor radius",
			Type:   core.ParamTypeInt,
			Step:   1,
			Min:    1,
			Max:    4,
			HasMin: true,
			HasMax: true,
		},
	}
}

// SetFloatParameter updates a float tunable by key.
func (s *Simulation) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "wind_speed":
		s.windSpeed.SetValue(value)
		return true
	}
	return false
}

// SetIntParameter updates an integer tunable by key.
func (s *Simulation) SetIntParameter(key string, value int) bool {
	switch key {
	case "wind_direction":
		s.windDirection.SetValue(normalizeBearing(value))
		return true
	case "neighbor_radius":
		s.cfg.Params.NeighborRadius = max(1, min(value, 4))
		return true
	}
	return false
}

func intParam(key, label string, value int) core.ParamInfo {
	return core.ParamInfo{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.ParamInfo {
	return core.ParamInfo{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
