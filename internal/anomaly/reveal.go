package anomaly

import "math"

// Window describes reveal timing: the total animation duration plus the
// extent of the anomaly-centered slowdown, in characters and in seconds.
type Window struct {
	SlowChars    float64 // nominal slow-window width in characters
	SlowDuration float64 // slow-window width in seconds
	Duration     float64 // total animation duration in seconds
}

// Revealed maps elapsed time to the fractional number of characters shown.
// The curve is piecewise linear in three segments: the slopes are chosen so
// the characters before, inside and after the anomaly window are covered in
// exactly the time before, inside and after the slow interval, which keeps
// the curve continuous at both breakpoints and non-decreasing throughout.
// When the slow interval collapses to nothing the reveal degrades to a
// single uniform ramp. The result is clamped to [0, numChars].
func Revealed(t float64, numChars int, frac float64, w Window) float64 {
	if numChars <= 0 {
		return 0
	}
	if numChars == 1 {
		if t >= 0 {
			return 1
		}
		return 0
	}

	n := float64(numChars)
	d := w.Duration
	if d <= 0 {
		return n
	}
	a := clamp01(frac)

	// Character-axis window around the anomaly index.
	center := a * (n - 1)
	width := math.Min(w.SlowChars, n)
	halfW := width / 2
	i1 := math.Max(0, center-halfW)
	i2 := math.Min(n, center+halfW)
	widthEff := math.Max(1, i2-i1)

	// Time-axis window around the anomaly instant.
	tCenter := a * d
	halfT := w.SlowDuration / 2
	t1 := math.Max(0, tCenter-halfT)
	t2 := math.Min(d, tCenter+halfT)

	if t2 <= t1 {
		return n * clamp01(t/d)
	}

	slowSlope := widthEff / (t2 - t1)
	preSlope := 0.0
	if t1 > 0 {
		preSlope = i1 / t1
	}
	postSlope := 0.0
	if d > t2 {
		postSlope = (n - i2) / (d - t2)
	}

	var c float64
	switch {
	case t <= 0:
		c = 0
	case t < t1:
		c = preSlope * t
	case t <= t2:
		c = i1 + slowSlope*(t-t1)
	case t < d:
		c = i2 + postSlope*(t-t2)
	default:
		c = n
	}

	return math.Max(0, math.Min(n, c))
}

// VisibleCount truncates a fractional reveal to the whole number of
// characters to draw. At least one character is always shown.
func VisibleCount(c float64, numChars int) int {
	v := int(c)
	if v > numChars {
		v = numChars
	}
	if v < 1 {
		v = 1
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
