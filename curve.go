package onscreen

import (
	"fmt"
	"sort"

	"github.com/tanema/gween/ease"
)

// responseCurves maps config names to easing functions applied to the
// normalized stick magnitude.
var responseCurves = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-cubic":     ease.InCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,
	"in-out-sine":  ease.InOutSine,
}

// ResponseCurveNames lists the accepted StickConfig.ResponseCurve values.
func ResponseCurveNames() []string {
	names := make([]string, 0, len(responseCurves))
	for name := range responseCurves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// lookupResponseCurve returns nil for the empty name.
func lookupResponseCurve(name string) (ease.TweenFunc, error) {
	if name == "" {
		return nil, nil
	}
	fn, ok := responseCurves[name]
	if !ok {
		return nil, fmt.Errorf("unknown response curve %q", name)
	}
	return fn, nil
}

// applyResponseCurve reshapes the magnitude of v (expected in [0, 1]) with
// fn, keeping its direction. A nil fn returns v unchanged.
func applyResponseCurve(fn ease.TweenFunc, v Vec2) Vec2 {
	if fn == nil {
		return v
	}
	m := v.Length()
	if m == 0 {
		return v
	}
	if m > 1 {
		m = 1
	}
	eased := float64(fn(float32(m), 0, 1, 1))
	if eased < 0 {
		eased = 0
	} else if eased > 1 {
		eased = 1
	}
	return v.Scale(eased / v.Length())
}
