package plotdata

import (
	"math"
	"testing"
)

func TestGridTranspose(t *testing.T) {
	const n = 1000
	flat := make([]float64, n*n)
	for k := range flat {
		flat[k] = float64(k)
	}
	g, err := NewGrid(n, -DefaultGridRange, DefaultGridRange, flat)
	if err != nil {
		t.Fatal(err)
	}
	m := g.Matrix()
	for _, ij := range [][2]int{{0, 0}, {0, 1}, {1, 0}, {17, 923}, {999, 0}, {0, 999}, {999, 999}, {500, 250}} {
		i, j := ij[0], ij[1]
		exp := flat[j*n+i]
		if got := g.At(i, j); got != exp {
			t.Errorf("At(%d, %d): expected %g, got %g", i, j, exp, got)
		}
		if got := m.At(i, j); got != exp {
			t.Errorf("Matrix().At(%d, %d): expected %g, got %g", i, j, exp, got)
		}
		if got := g.Value(j, i); got != exp {
			t.Errorf("Value(%d, %d): expected %g, got %g", j, i, exp, got)
		}
	}
	if lo, hi := g.Range(); lo != 0 || hi != n*n-1 {
		t.Errorf("unexpected range %g %g", lo, hi)
	}
}

func TestGridCoordinates(t *testing.T) {
	g, err := NewGrid(5, -1, 1, make([]float64, 25))
	if err != nil {
		t.Fatal(err)
	}
	for k, exp := range []float64{-1, -0.5, 0, 0.5, 1} {
		if got := g.X(k); math.Abs(got-exp) > 1e-15 {
			t.Errorf("X(%d): expected %g, got %g", k, exp, got)
		}
		if got := g.Y(k); math.Abs(got-exp) > 1e-15 {
			t.Errorf("Y(%d): expected %g, got %g", k, exp, got)
		}
	}
	if lo, hi := g.Extent(); lo != -1 || hi != 1 {
		t.Errorf("unexpected extent %g %g", lo, hi)
	}
}

func TestNewGridErrors(t *testing.T) {
	if _, err := NewGrid(3, 0, 1, make([]float64, 8)); err == nil {
		t.Error("expected error for wrong length")
	}
	if _, err := NewGrid(1, 0, 1, make([]float64, 1)); err == nil {
		t.Error("expected error for too small grid")
	}
	if _, err := NewGrid(2, 1, 0, make([]float64, 4)); err == nil {
		t.Error("expected error for empty range")
	}
}

func TestGridRangeMissing(t *testing.T) {
	nan := math.NaN()
	g, err := NewGrid(2, -1, 1, []float64{nan, 3, -1, nan})
	if err != nil {
		t.Fatal(err)
	}
	if lo, hi := g.Range(); lo != -1 || hi != 3 {
		t.Errorf("unexpected range %g %g", lo, hi)
	}
	g, _ = NewGrid(2, -1, 1, []float64{nan, nan, nan, nan})
	if lo, hi := g.Range(); !math.IsNaN(lo) || !math.IsNaN(hi) {
		t.Errorf("expected an empty range, got %g %g", lo, hi)
	}
}
