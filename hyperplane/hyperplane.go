// Package hyperplane handles the linear decision boundary
// a*x + b*y + c = 0 of a 2D classifier, and computes the part
// of it which is visible in a square plotting area.
package hyperplane

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateHyperplane is returned when the coefficients do not
// describe a line which can be clipped: b is zero, a is zero when
// an intersection with the top or bottom edge is needed, or a
// coefficient is not a finite number.
var ErrDegenerateHyperplane = errors.New("degenerate hyperplane")

// Hyperplane is the line A*x + B*y + C = 0.
type Hyperplane struct {
	A, B, C float64
}

// Eval returns A*x + B*y + C, whose sign gives the side
// of the line the point (x, y) lies on.
func (h Hyperplane) Eval(x, y float64) float64 {
	return h.A*x + h.B*y + h.C
}

// Validate checks that the line is not vertical and that
// all the coefficients are finite.
func (h Hyperplane) Validate() error {
	for _, v := range [3]float64{h.A, h.B, h.C} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non finite coefficient in %s", ErrDegenerateHyperplane, h)
		}
	}
	if h.B == 0 {
		return fmt.Errorf("%w: b is zero in %s", ErrDegenerateHyperplane, h)
	}
	return nil
}

func (h Hyperplane) String() string {
	return fmt.Sprintf("%g*x + %g*y + %g = 0", h.A, h.B, h.C)
}

// Point is a 2D point in data coordinates.
type Point struct{ X, Y float64 }

// Segment is the part of a line between two endpoints.
type Segment [2]Point

// Inside reports whether both endpoints lie in the square [lo, hi]^2,
// up to tol.
func (s Segment) Inside(lo, hi, tol float64) bool {
	for _, p := range s {
		if p.X < lo-tol || p.X > hi+tol || p.Y < lo-tol || p.Y > hi+tol {
			return false
		}
	}
	return true
}

// Degenerate reports whether the two endpoints are the same,
// which happens when the line only touches a corner of the square.
func (s Segment) Degenerate() bool { return s[0] == s[1] }
