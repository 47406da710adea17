package anomaly

import "math"

// BulgeDeltas returns one fractional radial expansion per character index.
// Deltas are zero at and before the anomaly's normalized position, then
// climb along a half-Gaussian toward amp. A running-maximum pass forces the
// sequence non-decreasing so outer coils can never be pushed inside inner
// ones.
func BulgeDeltas(numChars int, frac, amp, sigma float64) []float64 {
	if numChars <= 0 {
		return nil
	}

	deltas := make([]float64, numChars)
	if numChars == 1 {
		return deltas
	}

	a := clamp01(frac)
	s := math.Max(1e-9, sigma)

	for i := range deltas {
		tChar := float64(i) / float64(numChars-1)
		if tChar <= a {
			continue
		}
		z := (tChar - a) / s
		deltas[i] = amp * (1 - math.Exp(-0.5*z*z))
	}

	maxSoFar := 0.0
	for i, d := range deltas {
		if d > maxSoFar {
			maxSoFar = d
		}
		deltas[i] = maxSoFar
	}

	return deltas
}
