package strokeconv

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func polylineFromPoints(points []Point) Polyline {
	p := make(Polyline, len(points))
	for i, point := range points {
		p[i] = Vertex{point, 0.0}
	}
	return p
}

func TestSegmentCircle(t *testing.T) {
	p := polylineFromPoints(circlePoints(Point{1.0, 2.0}, 3.0, 0, 30, 60, 90, 135))
	q := p.Segment()
	test.T(t, len(q), 2)
	test.T(t, q[0].Point, p[0].Point)
	test.T(t, q[len(q)-1].Point, p[len(p)-1].Point)
	test.That(t, math.Abs(q[0].Angle-6.75) < 1e-6) // three quarters of a half turn
	test.T(t, q[1].Angle, 0.0)
}

func TestSegmentLine(t *testing.T) {
	p := polylineFromPoints([]Point{{0.0, 0.0}, {1.0, 0.5}, {2.0, 1.0}, {3.0, 1.5}, {4.0, 2.0}})
	test.T(t, p.Segment(), p)
}

func TestSegmentShort(t *testing.T) {
	p := polylineFromPoints([]Point{{1.0, 1.0}})
	test.T(t, p.Segment(), p)

	p = polylineFromPoints([]Point{{1.0, 1.0}, {2.0, 3.0}})
	test.T(t, p.Segment(), p)
}

func TestSegmentIdempotent(t *testing.T) {
	p := polylineFromPoints(circlePoints(Point{0.0, 0.0}, 2.0, 0, 30, 60, 90, 120, 150, 180))
	q := p.Segment()
	test.T(t, q.Segment(), q)

	p = polylineFromPoints([]Point{{0.0, 0.0}, {1.0, 0.5}, {2.0, 1.0}})
	q = p.Segment()
	test.T(t, q.Segment(), q)
}

func TestSegmentMixed(t *testing.T) {
	// an exact circular run followed by two stray points; the stray points
	// break every longer window, then form an exact circumcircle of their own
	p := polylineFromPoints([]Point{{-4.0, 3.0}, {0.0, 5.0}, {4.0, 3.0}, {5.0, 0.0}, {5.0, 10.0}, {15.0, 10.0}})
	q := p.Segment()
	test.T(t, len(q), 3)
	test.T(t, q[0].Point, Point{-4.0, 3.0})
	test.T(t, q[1].Point, Point{5.0, 0.0})
	test.T(t, q[2].Point, Point{15.0, 10.0})

	// the leading run lies on a radius-5 circle around the origin
	arc0 := -math.Atan2(3.0, -4.0) * AnglePerRadian
	test.That(t, math.Abs(q[0].Angle-arc0) < 1e-6)

	// the trailing triple's circumcenter is (10,5), a half turn apart
	test.That(t, math.Abs(q[1].Angle-9.0) < 1e-6)
	test.T(t, q[2].Angle, 0.0)
}

func TestSegmentKeepsAnnotation(t *testing.T) {
	// a trailing annotation on the run's last vertex is propagated, not
	// recomputed
	p := polylineFromPoints(circlePoints(Point{0.0, 0.0}, 2.0, 0, 45, 90, 135))
	p[len(p)-1].Angle = 4.5
	q := p.Segment()
	test.T(t, len(q), 2)
	test.T(t, q[1].Angle, 4.5)
}
