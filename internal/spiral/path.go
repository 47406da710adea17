package spiral

import "math"

// Point is one character anchor on the spiral: Cartesian position in world
// units plus the cumulative spiral angle of the raw sample that produced it.
type Point struct {
	X     float64
	Y     float64
	Theta float64
}

// Params controls spiral geometry and sampling density.
type Params struct {
	InitialRadius float64 // a in r(θ) = a + b·θ
	CoilSpacing   float64 // radial distance between successive coils
	CharSpacing   float64 // arc length between consecutive points
	StepTheta     float64 // raw θ step in radians; 0 selects DefaultStepTheta
}

// DefaultStepTheta bounds the arc-length error of the sampled polyline.
const DefaultStepTheta = 0.02

// Positions places numChars points along the Archimedean spiral
// r(θ) = a + (coil/2π)·θ so that consecutive points are separated by
// CharSpacing of arc length. The spiral is walked in fixed θ increments;
// whenever the accumulated polyline length crosses the next spacing
// multiple, the point is interpolated within the current raw segment to
// land on the exact target length. Arc length grows without bound for
// coil > 0, so the walk terminates for any finite numChars.
func Positions(numChars int, p Params) []Point {
	if numChars <= 0 {
		return nil
	}

	step := p.StepTheta
	if step <= 0 {
		step = DefaultStepTheta
	}
	a := p.InitialRadius
	b := p.CoilSpacing / (2 * math.Pi)

	points := make([]Point, 0, numChars)

	theta := 0.0
	r := a + b*theta
	lastX := r * math.Cos(theta)
	lastY := r * math.Sin(theta)

	accumulated := 0.0
	target := 0.0

	for len(points) < numChars {
		theta += step
		r = a + b*theta
		x := r * math.Cos(theta)
		y := r * math.Sin(theta)

		dx := x - lastX
		dy := y - lastY
		ds := math.Hypot(dx, dy)
		accumulated += ds

		for accumulated >= target && len(points) < numChars {
			frac := 0.0
			if ds != 0 {
				frac = 1 - (accumulated-target)/ds
			}
			points = append(points, Point{
				X:     lastX + frac*dx,
				Y:     lastY + frac*dy,
				Theta: theta,
			})
			target += p.CharSpacing
		}

		lastX, lastY = x, y
	}

	return points
}

// Radii returns each point's distance from the spiral origin.
func Radii(points []Point) []float64 {
	radii := make([]float64, len(points))
	for i, pt := range points {
		radii[i] = math.Hypot(pt.X, pt.Y)
	}
	return radii
}
