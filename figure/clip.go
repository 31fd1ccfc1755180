package figure

type outcode uint8

const (
	inside outcode = 0
	left   outcode = 1
	right  outcode = 2
	bottom outcode = 4
	top    outcode = 8
)

// Rect is an axis aligned rectangle given by its extreme coordinates.
type Rect struct{ MinX, MinY, MaxX, MaxY float64 }

func computeOutcode(x, y float64, b Rect) outcode {
	var c outcode
	if x < b.MinX {
		c |= left
	} else if x > b.MaxX {
		c |= right
	}
	if y < b.MinY {
		c |= bottom
	} else if y > b.MaxY {
		c |= top
	}
	return c
}

// ClipLine restricts the segment (x0,y0)-(x1,y1) to the rectangle b,
// with the Cohen-Sutherland algorithm.
// ok is false if the segment lies entirely outside of b.
func ClipLine(x0, y0, x1, y1 float64, b Rect) (cx0, cy0, cx1, cy1 float64, ok bool) {
	outcode0 := computeOutcode(x0, y0, b)
	outcode1 := computeOutcode(x1, y1, b)
	for {
		if outcode0 == inside && outcode1 == inside {
			return x0, y0, x1, y1, true
		} else if (outcode0 & outcode1) != 0 {
			return x0, y0, x1, y1, false
		}
		outcodeOut := outcode0
		if outcodeOut == inside {
			outcodeOut = outcode1
		}

		var x, y float64
		switch {
		case outcodeOut&top != 0:
			x, y = x0+(x1-x0)*(b.MaxY-y0)/(y1-y0), b.MaxY
		case outcodeOut&bottom != 0:
			x, y = x0+(x1-x0)*(b.MinY-y0)/(y1-y0), b.MinY
		case outcodeOut&right != 0:
			x, y = b.MaxX, y0+(y1-y0)*(b.MaxX-x0)/(x1-x0)
		case outcodeOut&left != 0:
			x, y = b.MinX, y0+(y1-y0)*(b.MinX-x0)/(x1-x0)
		}
		if outcodeOut == outcode0 {
			x0, y0 = x, y
			outcode0 = computeOutcode(x0, y0, b)
		} else {
			x1, y1 = x, y
			outcode1 = computeOutcode(x1, y1, b)
		}
	}
}
