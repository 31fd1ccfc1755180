// Package figure provides a device independent description of a plot:
// styled paths, labels and embedded images laid out on a page.
// A Figure is consumed by painting drivers, see for example
// svmplot/plotraster, svmplot/plotpdf or svmplot/plotsvg.
package figure

import (
	"image"
	"image/color"

	"golang.org/x/image/math/fixed"
)

// Bounds defines a bounding box, such as a viewport
// or a path extent.
type Bounds struct{ X, Y, W, H float64 }

// Overlaps reports whether b and o have a common point.
func (b Bounds) Overlaps(o Bounds) bool {
	return b.X <= o.X+o.W && o.X <= b.X+b.W && b.Y <= o.Y+o.H && o.Y <= b.Y+b.H
}

// Item is one element of a figure.
type Item interface {
	// draw into the driver `d`, after applying the transform `M`
	draw(d Driver, M Matrix2D, opacity float64)
	// extent in figure units, used to skip hidden items
	extent() (Bounds, bool)
}

// Shape binds a style to a path
type Shape struct {
	Path  Path
	Style Style
}

// Raster is an image stretched over a rectangle.
type Raster struct {
	Image image.Image
	Dst   Bounds
}

// Figure holds a complete plot.
// See the `Draw` method to use it.
type Figure struct {
	ViewBox   Bounds // page size, in points
	Title     string
	Items     []Item
	Transform Matrix2D
}

// New returns an empty figure of the given size, in points.
func New(width, height float64) *Figure {
	return &Figure{ViewBox: Bounds{W: width, H: height}, Transform: Identity}
}

// Add appends items, drawn in order.
func (f *Figure) Add(items ...Item) {
	f.Items = append(f.Items, items...)
}

// SetTarget sets the Transform matrix to draw within the bounds of the rectangle arguments
func (f *Figure) SetTarget(x, y, w, h float64) {
	scaleW := w / f.ViewBox.W
	scaleH := h / f.ViewBox.H
	f.Transform = Identity.Translate(x, y).Scale(scaleW, scaleH).Translate(-f.ViewBox.X, -f.ViewBox.Y)
}

// Draw the figure into the driver `d`.
// Items lying entirely outside of the ViewBox are skipped.
func (f *Figure) Draw(d Driver, opacity float64) {
	for _, item := range f.Items {
		if ext, ok := item.extent(); !ok || !ext.Overlaps(f.ViewBox) {
			continue
		}
		item.draw(d, f.Transform, opacity)
	}
}

func (s Shape) extent() (Bounds, bool) {
	b, ok := s.Path.Bounds()
	if !ok {
		return b, false
	}
	if s.Style.StrokeColor != nil { // account for the line width
		hw := s.Style.LineWidth / 2
		b = Bounds{X: b.X - hw, Y: b.Y - hw, W: b.W + 2*hw, H: b.H + 2*hw}
	}
	return b, true
}

func (s Shape) draw(d Driver, M Matrix2D, opacity float64) {
	style := s.Style
	filler, stroker := d.SetupDrawers(style.FillColor != nil, style.StrokeColor != nil)
	if filler != nil { // nil color disable filling
		filler.Clear()
		filler.SetWinding(style.UseNonZeroWinding)

		for _, op := range s.Path {
			op.drawTo(filler, M)
		}
		filler.Stop(false)

		filler.SetColor(style.FillColor, style.FillOpacity*opacity)
		filler.Draw()
		filler.SetWinding(true) // default is true
	}

	if stroker != nil { // nil color disable lining
		stroker.Clear()

		scale := M.scaleFactor()
		dash := style.Dash
		if len(dash.Dash) != 0 {
			scaled := make([]float64, len(dash.Dash))
			for i, v := range dash.Dash {
				scaled[i] = v * scale
			}
			dash = DashOptions{Dash: scaled, DashOffset: dash.DashOffset * scale}
		}
		stroker.SetStrokeOptions(StrokeOptions{
			LineWidth:  fixed.Int26_6(style.LineWidth * scale * 64),
			MiterLimit: fixed.Int26_6(4 * 64),
			Join:       style.Join,
			Cap:        style.Cap,
			Dash:       dash,
		})

		for _, op := range s.Path {
			op.drawTo(stroker, M)
		}
		stroker.Stop(false)

		stroker.SetColor(style.StrokeColor, style.StrokeOpacity*opacity)
		stroker.Draw()
	}
}

func (t Text) extent() (Bounds, bool) {
	// the width is only known by the driver
	return Bounds{X: t.X - 1, Y: t.Y - 1, W: 2, H: 2}, t.Content != ""
}

func (t Text) draw(d Driver, M Matrix2D, opacity float64) {
	out := t
	out.X, out.Y = M.Transform(t.X, t.Y)
	out.Size = t.Size * M.scaleFactor()
	if out.Color == nil {
		out.Color = color.Black
	}
	if opacity < 1 {
		r, g, b, a := out.Color.RGBA()
		out.Color = color.RGBA64{
			R: uint16(float64(r) * opacity), G: uint16(float64(g) * opacity),
			B: uint16(float64(b) * opacity), A: uint16(float64(a) * opacity),
		}
	}
	d.DrawText(out)
}

func (r Raster) extent() (Bounds, bool) { return r.Dst, r.Image != nil }

func (r Raster) draw(d Driver, M Matrix2D, _ float64) {
	x0, y0 := M.Transform(r.Dst.X, r.Dst.Y)
	x1, y1 := M.Transform(r.Dst.X+r.Dst.W, r.Dst.Y+r.Dst.H)
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	d.DrawImage(r.Image, Bounds{X: x0, Y: y0, W: x1 - x0, H: y1 - y0})
}
