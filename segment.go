package strokeconv

// Segment replaces maximal runs of consecutive points that lie approximately
// on a common circle by two-point arcs and returns the simplified polyline.
// The search is greedy: at each cursor position the longest acceptable run
// wins, runs share their endpoint with the following segment, and a rejected
// position emits its vertex unchanged. The first and last point of the input
// are always preserved. Polylines shorter than 3 vertices are returned as-is.
//
// The greedy order is part of the output format; a globally minimal
// segmentation would change existing FontoBene files.
func (p Polyline) Segment() Polyline {
	if len(p) < 3 {
		return append(Polyline{}, p...)
	}

	points := p.Points()
	n := len(p)
	q := make(Polyline, 0, n)
	i := 0
	for i < n-1 {
		if k, angle, ok := longestArc(points[i:]); ok {
			q = append(q, Vertex{points[i], angle})
			i += k - 1
		} else {
			q = append(q, p[i])
			i++
		}
	}
	// the shared endpoint of a trailing arc keeps its original annotation
	return append(q, p[n-1])
}

// longestArc returns the longest prefix run of at least 3 points whose circle
// fit is accepted, together with the signed arc sweep in FontoBene angle
// units. A failed fit counts as a rejection, like a too-large residual.
func longestArc(points []Point) (int, float64, bool) {
	for k := len(points); 3 <= k; k-- {
		fit, err := FitCircle(points[:k])
		if err != nil || Tolerance < fit.Residual/float64(k) {
			continue
		}
		theta0 := points[0].Sub(fit.Center).Angle()
		theta1 := points[k-1].Sub(fit.Center).Angle()
		return k, (theta1 - theta0) * AnglePerRadian, true
	}
	return 0, 0.0, false
}
