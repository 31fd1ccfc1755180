package figure

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// the bounding box of a path is needed to skip the shapes
// lying outside of the figure

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

// bezierAt evaluates the one dimensional Bezier curve with
// control values p (at most 4) at t, with de Casteljau's algorithm
func bezierAt(p []float64, t float64) float64 {
	var buf [4]float64
	q := buf[:copy(buf[:], p)]
	for len(q) > 1 {
		for i := 0; i < len(q)-1; i++ {
			q[i] += (q[i+1] - q[i]) * t
		}
		q = q[:len(q)-1]
	}
	return q[0]
}

// extrema returns the t in ]0, 1[ zeroing the derivative of the
// quadratic or cubic curve with control values p
func extrema(p []float64) []float64 {
	// derivative as a*t^2 + b*t + c
	var a, b, c float64
	switch len(p) {
	case 3:
		b, c = 2*(p[2]-2*p[1]+p[0]), 2*(p[1]-p[0])
	case 4:
		a = 3 * (p[3] - 3*p[2] + 3*p[1] - p[0])
		b = 6 * (p[2] - 2*p[1] + p[0])
		c = 3 * (p[1] - p[0])
	default:
		return nil
	}

	var roots []float64
	if a == 0 {
		if b != 0 {
			roots = append(roots, -c/b)
		}
	} else if d := b*b - 4*a*c; d >= 0 {
		sq := math.Sqrt(d)
		roots = append(roots, (-b+sq)/(2*a), (-b-sq)/(2*a))
	}

	out := roots[:0]
	for _, t := range roots {
		if 0 < t && t < 1 {
			out = append(out, t)
		}
	}
	return out
}

type box struct{ minX, minY, maxX, maxY float64 }

func emptyBox() box { return box{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)} }

func (b *box) add(x, y float64) {
	b.minX, b.maxX = math.Min(b.minX, x), math.Max(b.maxX, x)
	b.minY, b.maxY = math.Min(b.minY, y), math.Max(b.maxY, y)
}

// addCurve adds the end point and the extrema of the curve
// starting at pts[0]; the start point is already in the box
func (b *box) addCurve(pts ...fixed.Point26_6) {
	var xs, ys [4]float64
	for i, p := range pts {
		xs[i], ys[i] = fixedTof(p)
	}
	n := len(pts)
	b.add(xs[n-1], ys[n-1])
	for _, t := range append(extrema(xs[:n]), extrema(ys[:n])...) {
		b.add(bezierAt(xs[:n], t), bezierAt(ys[:n], t))
	}
}

// Bounds returns the tight bounding box of the path, taking the
// extrema of the curves into account.
// ok is false for an empty path.
func (p Path) Bounds() (bounds Bounds, ok bool) {
	bb := emptyBox()
	var current fixed.Point26_6
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			current = fixed.Point26_6(op)
			bb.add(fixedTof(current))
		case LineTo:
			bb.add(fixedTof(fixed.Point26_6(op)))
			current = fixed.Point26_6(op)
		case QuadTo:
			bb.addCurve(current, op[0], op[1])
			current = op[1]
		case CubicTo:
			bb.addCurve(current, op[0], op[1], op[2])
			current = op[2]
		}
	}
	if bb.minX > bb.maxX {
		return Bounds{}, false
	}
	return Bounds{X: bb.minX, Y: bb.minY, W: bb.maxX - bb.minX, H: bb.maxY - bb.minY}, true
}
