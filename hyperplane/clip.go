package hyperplane

import "fmt"

// Clip returns the endpoints of the line h clipped to the
// square [-1, 1] x [-1, 1].
func Clip(h Hyperplane) (Segment, error) {
	return ClipTo(h, -1, 1)
}

// ClipTo returns the endpoints of the line h clipped to the
// square [lo, hi] x [lo, hi].
//
// The line is first intersected with the left and right edges.
// Each intersection falling above or below the square is moved
// to the top or bottom edge instead.
// A line which misses the square entirely yields endpoints outside of it,
// see Segment.Inside.
func ClipTo(h Hyperplane, lo, hi float64) (Segment, error) {
	if err := h.Validate(); err != nil {
		return Segment{}, err
	}
	if !(lo < hi) {
		return Segment{}, fmt.Errorf("invalid clipping square [%g, %g]", lo, hi)
	}

	seg := Segment{{X: lo}, {X: hi}}
	for i := range seg {
		p := &seg[i]
		p.Y = (-h.C - h.A*p.X) / h.B
		if p.Y >= lo && p.Y <= hi {
			continue
		}
		if h.A == 0 {
			return Segment{}, fmt.Errorf("%w: horizontal line %s outside [%g, %g]", ErrDegenerateHyperplane, h, lo, hi)
		}
		p.Y = clamp(p.Y, lo, hi)
		p.X = (-h.C - h.B*p.Y) / h.A
	}
	return seg, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
