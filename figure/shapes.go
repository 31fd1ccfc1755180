package figure

import (
	"golang.org/x/image/math/fixed"
)

// This file implements the transformation from
// high level shapes to their path equivalent

// circleK is the distance of the control points of a cubic bezier
// approximating a quarter of the unit circle
const circleK = 0.5522847498

// toFixedP converts two floats to a fixed point.
func toFixedP(x, y float64) (p fixed.Point26_6) {
	p.X = fixed.Int26_6(x * 64)
	p.Y = fixed.Int26_6(y * 64)
	return
}

// AddRect adds the closed rectangle with corners (minX, minY) and (maxX, maxY).
func (p *Path) AddRect(minX, minY, maxX, maxY float64) {
	p.Start(toFixedP(minX, minY))
	p.Line(toFixedP(maxX, minY))
	p.Line(toFixedP(maxX, maxY))
	p.Line(toFixedP(minX, maxY))
	p.Stop(true)
}

// AddCircle adds a closed circle, made of four cubic bezier curves.
func (p *Path) AddCircle(cx, cy, r float64) {
	k := r * circleK
	p.Start(toFixedP(cx+r, cy))
	p.CubeBezier(toFixedP(cx+r, cy+k), toFixedP(cx+k, cy+r), toFixedP(cx, cy+r))
	p.CubeBezier(toFixedP(cx-k, cy+r), toFixedP(cx-r, cy+k), toFixedP(cx-r, cy))
	p.CubeBezier(toFixedP(cx-r, cy-k), toFixedP(cx-k, cy-r), toFixedP(cx, cy-r))
	p.CubeBezier(toFixedP(cx+k, cy-r), toFixedP(cx+r, cy-k), toFixedP(cx+r, cy))
	p.Stop(true)
}

// AddLine adds an open segment.
func (p *Path) AddLine(x0, y0, x1, y1 float64) {
	p.Start(toFixedP(x0, y0))
	p.Line(toFixedP(x1, y1))
}

// AddPolyline adds an open polyline going through
// the points (xy[0], xy[1]), (xy[2], xy[3]), ...
func (p *Path) AddPolyline(xy ...float64) {
	if len(xy) < 4 {
		return
	}
	p.Start(toFixedP(xy[0], xy[1]))
	for i := 2; i+1 < len(xy); i += 2 {
		p.Line(toFixedP(xy[i], xy[i+1]))
	}
}
