package plotdata

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Grid is a square sampling of a decision function over [Lo, Hi]^2.
//
// Values are stored as written by the benchmark programs: the outer loop
// runs over x and the inner one over y, so that the flat index of
// (x_j, y_i) is j*n+i. Grid exposes them transposed: At(i, j) is the value
// at row i (y axis) and column j (x axis), ready for contouring.
type Grid struct {
	n      int
	lo, hi float64
	raw    *mat.Dense // raw.At(j, i) == flat[j*n+i]
}

// NewGrid wraps the n*n values of flat, without copy.
func NewGrid(n int, lo, hi float64, flat []float64) (*Grid, error) {
	if n < 2 {
		return nil, fmt.Errorf("grid size must be at least 2, got %d", n)
	}
	if len(flat) != n*n {
		return nil, fmt.Errorf("expected %d grid values for a %dx%d grid, got %d", n*n, n, n, len(flat))
	}
	if !(lo < hi) {
		return nil, fmt.Errorf("invalid grid range [%g, %g]", lo, hi)
	}
	return &Grid{n: n, lo: lo, hi: hi, raw: mat.NewDense(n, n, flat)}, nil
}

// Size returns the number of samples along each axis.
func (g *Grid) Size() int { return g.n }

// Extent returns the sampled range, identical for both axes.
func (g *Grid) Extent() (lo, hi float64) { return g.lo, g.hi }

// At returns the value at row i (y index) and column j (x index),
// that is flat[j*n+i].
func (g *Grid) At(i, j int) float64 { return g.raw.At(j, i) }

// Value returns the value sampled at (X(xi), Y(yi)).
func (g *Grid) Value(xi, yi int) float64 { return g.At(yi, xi) }

// X returns the abscissa of column j.
func (g *Grid) X(j int) float64 { return g.coord(j) }

// Y returns the ordinate of row i.
func (g *Grid) Y(i int) float64 { return g.coord(i) }

// coord matches numpy.linspace(lo, hi, n)
func (g *Grid) coord(k int) float64 {
	if k == g.n-1 {
		return g.hi
	}
	return g.lo + (g.hi-g.lo)*float64(k)/float64(g.n-1)
}

// Range returns the smallest and largest values, ignoring the
// missing (NaN) samples. Both are NaN when every sample is missing.
func (g *Grid) Range() (min, max float64) {
	min, max = math.NaN(), math.NaN()
	for _, v := range g.Flat() {
		if math.IsNaN(v) {
			continue
		}
		if !(v >= min) {
			min = v
		}
		if !(v <= max) {
			max = v
		}
	}
	return min, max
}

// Matrix returns a read-only view of the transposed grid:
// Matrix().At(i, j) == At(i, j).
func (g *Grid) Matrix() mat.Matrix { return g.raw.T() }

// Flat returns the values in file order.
func (g *Grid) Flat() []float64 { return g.raw.RawMatrix().Data }
