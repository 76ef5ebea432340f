package animation

import (
	"fmt"
	"strings"
)

// A curve maps linear progress t in [0, 1] onto eased progress. Assign one
// to [AnimationController].Curve.

// LinearCurve is the identity curve.
func LinearCurve(t float64) float64 { return t }

// CSS timing functions.
var (
	Ease      = CubicBezier(0.25, 0.1, 0.25, 1.0)
	EaseIn    = CubicBezier(0.4, 0.0, 1.0, 1.0)
	EaseOut   = CubicBezier(0.0, 0.0, 0.2, 1.0)
	EaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)
)

var curvesByName = map[string]func(float64) float64{
	"":            LinearCurve,
	"linear":      LinearCurve,
	"ease":        Ease,
	"ease-in":     EaseIn,
	"ease-out":    EaseOut,
	"ease-in-out": EaseInOut,
}

// CurveByName looks up a curve as written in theme files. Names are case
// insensitive and the empty name is linear.
func CurveByName(name string) (func(float64) float64, error) {
	if c, ok := curvesByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown curve %q", name)
}

// CubicBezier builds a curve from the control points (x1,y1) and (x2,y2) of
// a bezier running from (0,0) to (1,1), as CSS cubic-bezier() does.
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	bez := func(p1, p2, s float64) float64 {
		r := 1 - s
		return 3*r*r*s*p1 + 3*r*s*s*p2 + s*s*s
	}
	return func(t float64) float64 {
		switch {
		case t <= 0:
			return 0
		case t >= 1:
			return 1
		}
		// x(s) is monotonic for x1, x2 in [0, 1], so bisect for x(s) == t.
		lo, hi := 0.0, 1.0
		s := t
		for range 30 {
			x := bez(x1, x2, s)
			if x > t {
				hi = s
			} else {
				lo = s
			}
			s = (lo + hi) / 2
		}
		return bez(y1, y2, s)
	}
}
