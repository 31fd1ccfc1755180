package samplegen

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/benoitkugler/svmplot/hyperplane"
	"github.com/benoitkugler/svmplot/plotdata"
)

// MarginWeight is given to the samples inside the margin,
// as the benchmark programs do for the support vectors.
const MarginWeight = 3

// Generator produces one sample at a time.
type Generator interface {
	Next() plotdata.Point
}

// Take returns n samples from g.
func Take(g Generator, n int) []plotdata.Point {
	out := make([]plotdata.Point, n)
	for i := range out {
		out[i] = g.Next()
	}
	return out
}

// MarkMargin sets the weight of the points whose |score| is
// less than margin to MarginWeight.
func MarkMargin(points []plotdata.Point, score func(x, y float64) float64, margin float64) {
	for i, p := range points {
		if math.Abs(score(p.X, p.Y)) < margin {
			points[i].Weight = MarginWeight
		}
	}
}

// HyperplaneDataset returns n samples of g, preceded by its separating line.
func HyperplaneDataset(g *Linear, n int) *plotdata.Dataset {
	h := g.Hyperplane()
	return &plotdata.Dataset{
		Layout:     plotdata.LayoutHyperplane,
		Hyperplane: &h,
		Points:     Take(g, n),
	}
}

// PointsDataset returns n samples of g.
func PointsDataset(g Generator, n int) *plotdata.Dataset {
	return &plotdata.Dataset{Layout: plotdata.LayoutPoints, Points: Take(g, n)}
}

// GridDataset samples score over a gridSize x gridSize grid covering
// [lo, hi]^2, and stores the values in the order of the benchmark programs
// (outer loop on x).
func GridDataset(points []plotdata.Point, score func(x, y float64) float64, gridSize int, lo, hi float64) (*plotdata.Dataset, error) {
	if gridSize < 2 {
		gridSize = 2
	}
	coords := floats.Span(make([]float64, gridSize), lo, hi)
	flat := make([]float64, 0, gridSize*gridSize)
	for _, x := range coords {
		for _, y := range coords {
			flat = append(flat, score(x, y))
		}
	}
	grid, err := plotdata.NewGrid(gridSize, lo, hi, flat)
	if err != nil {
		return nil, err
	}
	return &plotdata.Dataset{Layout: plotdata.LayoutGrid, Points: points, Grid: grid}, nil
}

// LinearScore returns the decision function of h,
// normalized so that its gradient has unit norm.
func LinearScore(h hyperplane.Hyperplane) func(x, y float64) float64 {
	norm := math.Hypot(h.A, h.B)
	if norm == 0 {
		norm = 1
	}
	return func(x, y float64) float64 { return h.Eval(x, y) / norm }
}
