package strokeconv

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestPoint(t *testing.T) {
	test.T(t, Point{3.0, 4.0}.Length(), 5.0)
	test.T(t, Point{1.0, 2.0}.Add(Point{2.0, -1.0}), Point{3.0, 1.0})
	test.T(t, Point{1.0, 2.0}.Sub(Point{2.0, -1.0}), Point{-1.0, 3.0})
	test.T(t, Point{1.0, 2.0}.Mul(2.0), Point{2.0, 4.0})
	test.T(t, Point{2.0, 4.0}.Div(2.0), Point{1.0, 2.0})
	test.T(t, Point{1.0, 1.0}.Angle(), math.Pi/4.0)
	test.That(t, Point{1.0, 2.0}.Equals(Point{1.0, 2.0 + 1e-12}))
	test.That(t, !Point{1.0, 2.0}.Equals(Point{1.0, 2.1}))
	test.T(t, Point{1.0, -2.5}.String(), "[1; -2.5]")
}
