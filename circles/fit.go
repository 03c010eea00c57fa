package circles

import (
	"fmt"
	"math"

	"github.com/sajari/regression"
	"gonum.org/v1/plot/plotter"
)

// Circle is a center and radius recovered from sampled points.
type Circle struct {
	X, Y   float64
	Radius float64
}

// FitCircle fits a circle to pts by linear least squares on
// x² + y² = A·x + B·y + C, giving center (A/2, B/2) and radius √(C + a² + b²).
func FitCircle(pts plotter.XYs) (Circle, error) {
	if len(pts) < 3 {
		return Circle{}, fmt.Errorf("need at least 3 points to fit a circle, got %d", len(pts))
	}

	r := new(regression.Regression)
	r.SetObserved("x^2+y^2")
	r.SetVar(0, "x")
	r.SetVar(1, "y")
	for _, p := range pts {
		r.Train(regression.DataPoint(p.X*p.X+p.Y*p.Y, []float64{p.X, p.Y}))
	}
	if err := r.Run(); err != nil {
		return Circle{}, fmt.Errorf("fit circle: %w", err)
	}

	a := r.Coeff(1) / 2
	b := r.Coeff(2) / 2
	rr := r.Coeff(0) + a*a + b*b
	if rr < 0 {
		return Circle{}, fmt.Errorf("fit circle: negative squared radius %v", rr)
	}
	return Circle{X: a, Y: b, Radius: math.Sqrt(rr)}, nil
}
