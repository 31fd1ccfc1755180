// Package plotdata reads and writes the CSV files produced by the
// SVM benchmark programs: labelled 2D samples, optionally preceded by the
// separating hyperplane or followed by a sampled prediction grid.
package plotdata

import (
	"fmt"
	"math"

	"github.com/benoitkugler/svmplot/hyperplane"
)

// Layout describes how the rows of an input file are organized.
type Layout uint8

const (
	// LayoutPoints: every row is a point x,y,label[,weight]
	LayoutPoints Layout = iota
	// LayoutHyperplane: the first row is a,b,c, the others are points
	LayoutHyperplane
	// LayoutGrid: a fixed number of points, followed by
	// one prediction value per row
	LayoutGrid
)

func (l Layout) String() string {
	switch l {
	case LayoutPoints:
		return "points"
	case LayoutHyperplane:
		return "hyperplane"
	case LayoutGrid:
		return "grid"
	default:
		return fmt.Sprintf("<unknown Layout %d>", l)
	}
}

// ParseLayout is the inverse of Layout.String
func ParseLayout(s string) (Layout, error) {
	for _, l := range [...]Layout{LayoutPoints, LayoutHyperplane, LayoutGrid} {
		if l.String() == s {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown layout %q (expected points, hyperplane or grid)", s)
}

// DefaultWeight is used for points whose row has no weight field.
const DefaultWeight = 1

// Point is one labelled sample. Weight is used to highlight
// some samples (typically the support vectors).
type Point struct {
	X, Y   float64
	Label  float64
	Weight float64
}

// Dataset is the content of one input file.
type Dataset struct {
	Layout Layout

	// Hyperplane is nil unless Layout is LayoutHyperplane
	Hyperplane *hyperplane.Hyperplane
	Points     []Point
	// Grid is nil unless Layout is LayoutGrid
	Grid *Grid
}

// Extent returns the bounding box of the points.
// ok is false for an empty dataset.
func (ds *Dataset) Extent() (minX, minY, maxX, maxY float64, ok bool) {
	if len(ds.Points) == 0 {
		return 0, 0, 0, 0, false
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range ds.Points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY, true
}

// LabelRange returns the smallest and largest labels.
func (ds *Dataset) LabelRange() (lo, hi float64) {
	if len(ds.Points) == 0 {
		return 0, 0
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range ds.Points {
		lo, hi = math.Min(lo, p.Label), math.Max(hi, p.Label)
	}
	return lo, hi
}
