package contour

import "math"

// Segment is a piece of isoline, in the coordinates of the grid.
type Segment struct{ X0, Y0, X1, Y1 float64 }

// edges of a cell, counter-clockwise from the bottom one
const (
	edgeBottom = iota
	edgeRight
	edgeTop
	edgeLeft
)

// cases lists the crossed edges for each configuration of the
// corners above the level (bit 0: bottom-left, bit 1: bottom-right,
// bit 2: top-right, bit 3: top-left).
// The saddles 5 and 10 are resolved in Isolines.
var cases = [16][][2]int{
	0:  nil,
	1:  {{edgeLeft, edgeBottom}},
	2:  {{edgeBottom, edgeRight}},
	3:  {{edgeLeft, edgeRight}},
	4:  {{edgeRight, edgeTop}},
	6:  {{edgeBottom, edgeTop}},
	7:  {{edgeTop, edgeLeft}},
	8:  {{edgeTop, edgeLeft}},
	9:  {{edgeBottom, edgeTop}},
	11: {{edgeRight, edgeTop}},
	12: {{edgeRight, edgeLeft}},
	13: {{edgeBottom, edgeRight}},
	14: {{edgeLeft, edgeBottom}},
	15: nil,
}

// Isolines returns the segments of the curve where the sampled
// function equals level, computed with the marching squares algorithm.
// Cells with a NaN corner are skipped.
func Isolines(g Grid, level float64) []Segment {
	n := g.Size()
	var out []Segment
	for i := 0; i+1 < n; i++ {
		for j := 0; j+1 < n; j++ {
			// bottom-left, bottom-right, top-right, top-left
			v := [4]float64{g.At(i, j), g.At(i, j+1), g.At(i+1, j+1), g.At(i+1, j)}
			index := 0
			hasNaN := false
			for k, vk := range v {
				if math.IsNaN(vk) {
					hasNaN = true
					break
				}
				if vk >= level {
					index |= 1 << k
				}
			}
			if hasNaN || index == 0 || index == 15 {
				continue
			}

			c := cell{x0: g.X(j), x1: g.X(j + 1), y0: g.Y(i), y1: g.Y(i + 1), v: v, level: level}
			pairs := cases[index]
			switch index {
			case 5, 10:
				center := (v[0] + v[1] + v[2] + v[3]) / 4
				// when the center is above the level, the high corners
				// are connected and the low ones isolated
				if (center >= level) == (index == 5) {
					pairs = [][2]int{{edgeBottom, edgeRight}, {edgeTop, edgeLeft}}
				} else {
					pairs = [][2]int{{edgeLeft, edgeBottom}, {edgeRight, edgeTop}}
				}
			}
			for _, pair := range pairs {
				xa, ya := c.crossing(pair[0])
				xb, yb := c.crossing(pair[1])
				out = append(out, Segment{xa, ya, xb, yb})
			}
		}
	}
	return out
}

type cell struct {
	x0, x1, y0, y1 float64
	v              [4]float64
	level          float64
}

// fraction returns t such that a + t*(b-a) = level
func (c cell) fraction(a, b float64) float64 {
	if a == b {
		return 0.5
	}
	return (c.level - a) / (b - a)
}

// crossing returns the point where the isoline crosses the edge
func (c cell) crossing(edge int) (x, y float64) {
	switch edge {
	case edgeBottom:
		t := c.fraction(c.v[0], c.v[1])
		return c.x0 + t*(c.x1-c.x0), c.y0
	case edgeRight:
		t := c.fraction(c.v[1], c.v[2])
		return c.x1, c.y0 + t*(c.y1-c.y0)
	case edgeTop:
		t := c.fraction(c.v[3], c.v[2])
		return c.x0 + t*(c.x1-c.x0), c.y1
	default: // edgeLeft
		t := c.fraction(c.v[0], c.v[3])
		return c.x0, c.y0 + t*(c.y1-c.y0)
	}
}
