package navigation

import "math"

// ease is the standard ease-in curve, cubic-bezier(0.42, 0, 1, 1). easeInOut
// applies it symmetrically.
var ease = cubicBezier(0.42, 0, 1, 1)

// easeInOut maps linear progress in [0,1] onto the default timing curve.
func easeInOut(t float64) float64 {
	if t < 0.5 {
		return ease(t*2) / 2
	}
	return 1 - ease((1-t)*2)/2
}

// cubicBezier returns an easing function for the curve through (0,0), (x1,y1),
// (x2,y2) and (1,1). The x control points must lie in [0,1].
func cubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(x float64) float64 {
		if x <= 0 {
			return 0
		}
		if x >= 1 {
			return 1
		}
		return bezierCoord(y1, y2, solveBezierX(x1, x2, x))
	}
}

func bezierCoord(a1, a2, t float64) float64 {
	u := 1 - t
	return 3*u*u*t*a1 + 3*u*t*t*a2 + t*t*t
}

func bezierSlope(a1, a2, t float64) float64 {
	u := 1 - t
	return 3*u*u*a1 + 6*u*t*(a2-a1) + 3*t*t*(1-a2)
}

// solveBezierX finds the curve parameter whose x coordinate is x. Newton's
// method converges quickly for the curves used here; bisection covers the flat
// spots where the slope vanishes.
func solveBezierX(x1, x2, x float64) float64 {
	const epsilon = 1e-7

	t := x
	for i := 0; i < 8; i++ {
		diff := bezierCoord(x1, x2, t) - x
		if math.Abs(diff) < epsilon {
			return t
		}
		slope := bezierSlope(x1, x2, t)
		if math.Abs(slope) < 1e-6 {
			break
		}
		t -= diff / slope
	}

	lo, hi := 0.0, 1.0
	t = x
	for i := 0; i < 64; i++ {
		v := bezierCoord(x1, x2, t)
		if math.Abs(v-x) < epsilon {
			return t
		}
		if v < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return t
}
