package spiral

import "math"

// TangentAngles returns the local direction of travel at each point, in
// degrees. Interior points use a central difference over their neighbors;
// the endpoints fall back to one-sided differences. A single point has no
// direction and gets angle 0.
func TangentAngles(points []Point) []float64 {
	n := len(points)
	if n == 0 {
		return nil
	}

	angles := make([]float64, n)
	if n == 1 {
		return angles
	}

	for i := range angles {
		var p1, p2 Point
		switch {
		case i == 0:
			p1, p2 = points[0], points[1]
		case i == n-1:
			p1, p2 = points[n-2], points[n-1]
		default:
			p1, p2 = points[i-1], points[i+1]
		}
		angles[i] = math.Atan2(p2.Y-p1.Y, p2.X-p1.X) * 180 / math.Pi
	}

	return angles
}
