package landscape

import (
	"strconv"
	"strings"

	"terrain-ca/internal/core"
	"terrain-ca/pkg/terrain"
)

const weightKeyPrefix = "weight:"

// maxSmoothness bounds the HUD control; the library itself has no limit.
const maxSmoothness = 1000

func (w *World) Parameters() core.ParameterSnapshot {
	weights := make([]core.Parameter, len(w.cfg.Values))
	for i, v := range w.cfg.Values {
		weights[i] = floatParam(weightKeyPrefix+v.Value, "Weight "+strconv.Quote(v.Value), v.Weight)
	}
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.seed),
			},
		},
		{
			Name: "Smoothing",
			Params: []core.Parameter{
				intParam("smoothness", "Smoothness", w.cfg.Smoothness),
				intParam("passes", "Passes run", w.Passes()),
				stringParam("order", "Sweep order", w.cfg.Order.String()),
			},
		},
		{
			Name:   "Values",
			Params: weights,
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable settings.
func (w *World) ParameterControls() []core.ParameterControl {
	controls := []core.ParameterControl{{
		Key:    "smoothness",
		Label:  "Smoothness",
		Type:   core.ParamTypeInt,
		Step:   1,
		Min:    0,
		Max:    maxSmoothness,
		HasMin: true,
		HasMax: true,
	}}
	for _, v := range w.cfg.Values {
		controls = append(controls, core.ParameterControl{
			Key:    weightKeyPrefix + v.Value,
			Label:  "Weight " + strconv.Quote(v.Value),
			Type:   core.ParamTypeFloat,
			Step:   0.1,
			Min:    0,
			HasMin: true,
		})
	}
	return controls
}

// SetIntParameter updates smoothness. Raising it lets a finished run continue;
// lowering it below the passes already run stops further passes.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "smoothness":
		if value < 0 || value > maxSmoothness {
			return false
		}
		w.cfg.Smoothness = value
		return true
	}
	return false
}

// SetFloatParameter updates one value's weight and restarts from noise with
// the current seed. Changes that would leave no positive weight are refused.
func (w *World) SetFloatParameter(key string, value float64) bool {
	symbol, ok := strings.CutPrefix(key, weightKeyPrefix)
	if !ok {
		return false
	}
	next := append(terrain.WeightTable[string](nil), w.cfg.Values...)
	found := false
	for i := range next {
		if next[i].Value == symbol {
			next[i].Weight = value
			found = true
			break
		}
	}
	if !found || next.Validate() != nil {
		return false
	}
	w.cfg.Values = next
	w.Reset(w.seed)
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
