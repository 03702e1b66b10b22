package strokeconv

import (
	"errors"
	"math"
)

// fitMaxIterations caps the Gauss-Newton iterations of FitCircle so that
// pathological input terminates instead of looping indefinitely.
const fitMaxIterations = 64

var (
	// ErrFitDegenerate is returned when the point set cannot support a circle
	// fit: fewer than 3 points, all points coinciding, or collinear points
	// that make the normal equations singular.
	ErrFitDegenerate = errors.New("strokeconv: degenerate point set for circle fit")

	// ErrFitDiverged is returned when the solver exceeds its iteration cap or
	// the center estimate escapes the data extent without converging.
	ErrFitDiverged = errors.New("strokeconv: circle fit did not converge")
)

// CircleFit is the result of a least-squares circle fit. Residual is the sum
// of squared deviations of each point's distance to the center from Radius;
// it is not normalized by the point count.
type CircleFit struct {
	Center   Point
	Radius   float64
	Residual float64
}

// FitCircle fits a circle through the given points by minimizing the radial
// deviations r_i = |p_i-c| - mean_j |p_j-c| over the center c with a
// Gauss-Newton iteration starting at the centroid. Radius is the mean
// distance from the fitted center to all points.
func FitCircle(points []Point) (CircleFit, error) {
	if len(points) < 3 {
		return CircleFit{}, ErrFitDegenerate
	}

	centroid := Point{}
	for _, p := range points {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Div(float64(len(points)))

	extent := 0.0
	for _, p := range points {
		if d := p.Sub(centroid).Length(); extent < d {
			extent = d
		}
	}
	if extent < Epsilon {
		return CircleFit{}, ErrFitDegenerate
	}

	n := float64(len(points))
	d := make([]float64, len(points))
	u := make([]Point, len(points))
	c := centroid
	for iter := 0; iter < fitMaxIterations; iter++ {
		dmean := 0.0
		umean := Point{}
		for i, p := range points {
			v := c.Sub(p)
			d[i] = v.Length()
			if d[i] < Epsilon {
				// center sits on a data point
				return CircleFit{}, ErrFitDegenerate
			}
			u[i] = v.Div(d[i])
			dmean += d[i]
			umean = umean.Add(u[i])
		}
		dmean /= n
		umean = umean.Div(n)

		// normal equations of the Gauss-Newton step, J_i = u_i - umean
		var a11, a12, a22, g1, g2 float64
		for i := range points {
			j := u[i].Sub(umean)
			r := d[i] - dmean
			a11 += j.X * j.X
			a12 += j.X * j.Y
			a22 += j.Y * j.Y
			g1 += j.X * r
			g2 += j.Y * r
		}
		det := a11*a22 - a12*a12
		if math.Abs(det) < 1e-12*(a11+a22)*(a11+a22) {
			// collinear points leave the center undetermined across the line
			return CircleFit{}, ErrFitDegenerate
		}

		delta := Point{-(a22*g1 - a12*g2) / det, -(a11*g2 - a12*g1) / det}
		c = c.Add(delta)
		if math.IsNaN(c.X) || math.IsNaN(c.Y) || math.IsInf(c.X, 0) || math.IsInf(c.Y, 0) ||
			1e6*extent < c.Sub(centroid).Length() {
			return CircleFit{}, ErrFitDiverged
		}
		if delta.Length() < Epsilon*(1.0+dmean) {
			return finishFit(points, c), nil
		}
	}
	return CircleFit{}, ErrFitDiverged
}

func finishFit(points []Point, c Point) CircleFit {
	radius := 0.0
	for _, p := range points {
		radius += p.Sub(c).Length()
	}
	radius /= float64(len(points))

	residual := 0.0
	for _, p := range points {
		e := p.Sub(c).Length() - radius
		residual += e * e
	}
	return CircleFit{Center: c, Radius: radius, Residual: residual}
}
