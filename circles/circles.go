package circles

import (
	"fmt"
	"io"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot/plotter"
)

// DefaultSamples is the number of angle samples taken over [0, 2π].
const DefaultSamples = 150

// Samples holds the angle parameterization and the two circles derived from it.
type Samples struct {
	Angles []float64
	Unit   plotter.XYs
	Double plotter.XYs
}

// Linspace returns n evenly spaced values over [lo, hi], both endpoints included.
func Linspace(n int, lo, hi float64) []float64 {
	if n < 2 {
		panic(fmt.Sprintf("circles: linspace needs at least 2 samples, got %d", n))
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// Generate samples n angles over [0, 2π] and builds the unit circle and the
// circle of radius 2 from them.
func Generate(n int) (*Samples, error) {
	if n < 2 {
		return nil, fmt.Errorf("need at least 2 samples, got %d", n)
	}
	t := Linspace(n, 0, 2*math.Pi)

	unit := mat.NewDense(n, 2, nil)
	for i, a := range t {
		unit.Set(i, 0, math.Cos(a))
		unit.Set(i, 1, math.Sin(a))
	}
	var double mat.Dense
	double.Scale(2, unit)

	return &Samples{
		Angles: t,
		Unit:   toXYs(unit),
		Double: toXYs(&double),
	}, nil
}

func toXYs(m mat.Matrix) plotter.XYs {
	rows, _ := m.Dims()
	pts := make(plotter.XYs, rows)
	for i := range pts {
		pts[i].X = m.At(i, 0)
		pts[i].Y = m.At(i, 1)
	}
	return pts
}

// Curves returns the circles in plotting order.
func (s *Samples) Curves() []plotter.XYs {
	return []plotter.XYs{s.Unit, s.Double}
}

// Table lays the samples out one row per angle with columns t, x1, y1, x2, y2.
func (s *Samples) Table() dataframe.DataFrame {
	n := len(s.Angles)
	x1, y1 := make([]float64, n), make([]float64, n)
	x2, y2 := make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		x1[i], y1[i] = s.Unit[i].X, s.Unit[i].Y
		x2[i], y2[i] = s.Double[i].X, s.Double[i].Y
	}
	return dataframe.New(
		series.New(s.Angles, series.Float, "t"),
		series.New(x1, series.Float, "x1"),
		series.New(y1, series.Float, "y1"),
		series.New(x2, series.Float, "x2"),
		series.New(y2, series.Float, "y2"),
	)
}

// WriteCSV writes Table as CSV.
func (s *Samples) WriteCSV(w io.Writer) error {
	df := s.Table()
	if df.Err != nil {
		return df.Err
	}
	return df.WriteCSV(w)
}
