// Package plotsvg implements a SVG backend for figures,
// by wrapping the gonum/plot vg/vgsvg canvas.
package plotsvg

import (
	"image"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/benoitkugler/svmplot/figure"
	"golang.org/x/image/math/fixed"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// assert interface conformance
var (
	_ figure.Driver  = (*Renderer)(nil)
	_ figure.Filler  = (*filler)(nil)
	_ figure.Stroker = (*stroker)(nil)
)

// textFont is the sans serif variant of the default plot font
var textFont = font.Font{Typeface: plot.DefaultFont.Typeface, Variant: "Sans"}

// Renderer draws on a vgsvg canvas. The canvas origin is
// at the bottom left, so the y axis is flipped.
type Renderer struct {
	canvas *vgsvg.Canvas
	height float64
}

// implements the common path commands,
// shared by the filler and the stroker
type pather struct {
	rd   *Renderer
	path vg.Path
}

type filler struct {
	pather
}

type stroker struct {
	pather
}

// NewRenderer returns a renderer drawing on `canvas`.
func NewRenderer(canvas *vgsvg.Canvas) *Renderer {
	_, h := canvas.Size()
	return &Renderer{canvas: canvas, height: h.Points()}
}

// WriteSVG renders the figure as a SVG document, whose size is
// the figure ViewBox, in points.
func WriteSVG(w io.Writer, fig *figure.Figure) error {
	canvas := vgsvg.New(vg.Points(fig.ViewBox.W), vg.Points(fig.ViewBox.H))
	fig.SetTarget(0, 0, fig.ViewBox.W, fig.ViewBox.H)
	fig.Draw(NewRenderer(canvas), 1.0)
	_, err := canvas.WriteTo(w)
	return err
}

// WriteSVGFile renders the figure into the file `name`.
func WriteSVGFile(name string, fig *figure.Figure) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err = WriteSVG(f, fig); err != nil {
		f.Close()
		os.Remove(name) // no partial output
		return err
	}
	return f.Close()
}

func (rd *Renderer) point(x, y float64) vg.Point {
	return vg.Point{X: vg.Points(x), Y: vg.Points(rd.height - y)}
}

func (rd *Renderer) fixedPoint(a fixed.Point26_6) vg.Point {
	return rd.point(float64(a.X)/64, float64(a.Y)/64)
}

func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (f figure.Filler, s figure.Stroker) {
	if willFill {
		f = &filler{pather{rd: rd}}
	}
	if willStroke {
		s = &stroker{pather{rd: rd}}
	}
	return f, s
}

func (p *pather) Clear() { p.path = p.path[:0] }

func (p *pather) Start(a fixed.Point26_6) { p.path.Move(p.rd.fixedPoint(a)) }

func (p *pather) Line(b fixed.Point26_6) { p.path.Line(p.rd.fixedPoint(b)) }

func (p *pather) QuadBezier(b, c fixed.Point26_6) {
	p.path.QuadTo(p.rd.fixedPoint(b), p.rd.fixedPoint(c))
}

func (p *pather) CubeBezier(b, c, d fixed.Point26_6) {
	p.path.CubeTo(p.rd.fixedPoint(b), p.rd.fixedPoint(c), p.rd.fixedPoint(d))
}

func (p *pather) Stop(closeLoop bool) {
	if closeLoop {
		p.path.Close()
	}
}

// withOpacity merges the opacity into the alpha channel
func withOpacity(c color.Color, opacity float64) color.NRGBA {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	nc.A = uint8(math.Round(float64(nc.A) * opacity))
	return nc
}

func (p *pather) SetColor(c color.Color, opacity float64) {
	p.rd.canvas.SetColor(withOpacity(c, opacity))
}

// SVG paths are always filled with the non-zero rule
func (f *filler) SetWinding(bool) {}

func (f *filler) Draw() { f.rd.canvas.Fill(f.path) }

func (s *stroker) SetStrokeOptions(options figure.StrokeOptions) {
	s.rd.canvas.SetLineWidth(vg.Points(float64(options.LineWidth) / 64))
	dashes := make([]vg.Length, len(options.Dash.Dash))
	for i, d := range options.Dash.Dash {
		dashes[i] = vg.Points(d)
	}
	s.rd.canvas.SetLineDash(dashes, vg.Points(options.Dash.DashOffset))
}

func (s *stroker) Draw() { s.rd.canvas.Stroke(s.path) }

// DrawText writes one line of text, rotated if needed.
func (rd *Renderer) DrawText(t figure.Text) {
	if t.Content == "" || t.Size <= 0 {
		return
	}
	face := font.DefaultCache.Lookup(textFont, vg.Points(t.Size))
	if face.Face == nil {
		return
	}
	var c color.Color = color.Black
	if t.Color != nil {
		c = t.Color
	}
	x, y, _, _ := t.Baseline(face.Width(t.Content).Points())

	rd.canvas.Push()
	defer rd.canvas.Pop()
	rd.canvas.SetColor(c)
	if t.Vertical {
		rd.canvas.Translate(rd.point(x, y))
		rd.canvas.Rotate(math.Pi / 2)
		rd.canvas.FillString(face, vg.Point{}, t.Content)
		return
	}
	rd.canvas.FillString(face, rd.point(x, y), t.Content)
}

// DrawImage embeds img as a PNG image.
func (rd *Renderer) DrawImage(img image.Image, dst figure.Bounds) {
	rd.canvas.DrawImage(vg.Rectangle{
		Min: rd.point(dst.X, dst.Y+dst.H),
		Max: rd.point(dst.X+dst.W, dst.Y),
	}, img)
}
