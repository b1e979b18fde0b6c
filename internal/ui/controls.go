package ui

import (
	"math"
	"strconv"

	"terrain-ca/internal/core"
)

// stepInt returns the value one click away from current, or false when the
// click would leave the control's bounds.
func stepInt(ctrl core.ParameterControl, current, direction int) (int, bool) {
	step := int(math.Round(ctrl.Step))
	if step <= 0 {
		step = 1
	}
	target := current + direction*step
	if ctrl.HasMin && target < int(math.Round(ctrl.Min)) {
		return current, false
	}
	if ctrl.HasMax && target > int(math.Round(ctrl.Max)) {
		return current, false
	}
	return target, target != current
}

// stepFloat is stepInt for float controls. Targets that overshoot a bound
// snap to it.
func stepFloat(ctrl core.ParameterControl, current float64, direction int) (float64, bool) {
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
	// Round away float drift from repeated steps.
	target = math.Round(target/step) * step
	return target, math.Abs(target-current) >= 1e-9
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	precision := 1
	switch {
	case ctrl.Step <= 0:
		precision = 2
	case ctrl.Step < 0.01:
		precision = 3
	case ctrl.Step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}
