// Package plotpdf implements a PDF backend for figures,
// by wrapping github.com/jung-kurt/gofpdf.
package plotpdf

import (
	"image/color"
	"io"
	"os"

	"github.com/benoitkugler/svmplot/figure"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/math/fixed"
)

// assert interface conformance
var (
	_ figure.Driver  = (*Renderer)(nil)
	_ figure.Filler  = (*filler)(nil)
	_ figure.Stroker = (*stroker)(nil)
	_ figure.Stroker = (*patherStroker)(nil)
)

// Renderer writes the figure on the current page of a document.
// Coordinates are used as is, so the document unit should match
// the figure transform.
type Renderer struct {
	pdf    *gofpdf.Fpdf
	tr     func(string) string
	images int // number of registered images
}

// implements the common path commands,
// shared by the filler and the stroker
type pather struct {
	pdf *gofpdf.Fpdf
}

// implements the filling operation
type filler struct {
	pather
	useNonZeroWinding bool
	// when set, the path is painted by the stroker,
	// with the winding rule in effect in Draw
	deferPaint   bool
	deferNonZero bool
}

// implements the stroking operation, while
// also writing the path
type patherStroker struct {
	pather
}

// only stroke the current path, established by
// the filler
type stroker struct {
	patherStroker
	f *filler
}

// NewRenderer return a renderer which will
// write to the given `pdf`.
func NewRenderer(pdf *gofpdf.Fpdf) *Renderer {
	return &Renderer{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

// NewDocument returns a one page document whose size is the
// figure ViewBox, in points.
func NewDocument(fig *figure.Figure) *gofpdf.Fpdf {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: fig.ViewBox.W, Ht: fig.ViewBox.H},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	if fig.Title != "" {
		pdf.SetTitle(fig.Title, true)
	}
	pdf.SetCreator("svmplot", true)
	pdf.AddPage()
	return pdf
}

// WritePDF renders the figure as a one page document.
func WritePDF(w io.Writer, fig *figure.Figure) error {
	pdf := NewDocument(fig)
	fig.SetTarget(0, 0, fig.ViewBox.W, fig.ViewBox.H)
	fig.Draw(NewRenderer(pdf), 1.0)
	return pdf.Output(w)
}

// WritePDFFile renders the figure into the file `name`.
func WritePDFFile(name string, fig *figure.Figure) error {
	pdf := NewDocument(fig)
	fig.SetTarget(0, 0, fig.ViewBox.W, fig.ViewBox.H)
	fig.Draw(NewRenderer(pdf), 1.0)
	if err := pdf.OutputFileAndClose(name); err != nil {
		os.Remove(name) // no partial output
		return err
	}
	return nil
}

func (r *Renderer) SetupDrawers(willFill, willStroke bool) (f figure.Filler, s figure.Stroker) {
	p := pather{pdf: r.pdf}
	if willFill {
		fi := &filler{pather: p, useNonZeroWinding: true, deferPaint: willStroke}
		f = fi
		if willStroke { // dont write the same path twice
			s = &stroker{patherStroker: patherStroker{pather: p}, f: fi}
		}
	} else if willStroke { // write the path
		s = &patherStroker{pather: p}
	}
	return f, s
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func (p *pather) Clear() {}

func (p *pather) Start(a fixed.Point26_6) {
	p.pdf.MoveTo(fixedTof(a))
}

func (p *pather) Line(b fixed.Point26_6) {
	p.pdf.LineTo(fixedTof(b))
}

func (p *pather) QuadBezier(b fixed.Point26_6, c fixed.Point26_6) {
	cx, cy := fixedTof(b)
	x, y := fixedTof(c)
	p.pdf.CurveTo(cx, cy, x, y)
}

func (p *pather) CubeBezier(b fixed.Point26_6, c fixed.Point26_6, d fixed.Point26_6) {
	cx0, cy0 := fixedTof(b)
	cx1, cy1 := fixedTof(c)
	x, y := fixedTof(d)
	p.pdf.CurveBezierCubicTo(cx0, cy0, cx1, cy1, x, y)
}

func (p *pather) Stop(closeLoop bool) {
	if closeLoop {
		p.pdf.ClosePath()
	}
}

// rgb returns the 8 bits components and the alpha in [0, 1]
func rgb(c color.Color) (r, g, b int, alpha float64) {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return int(nc.R), int(nc.G), int(nc.B), float64(nc.A) / 255
}

func (f *filler) SetColor(c color.Color, opacity float64) {
	r, g, b, a := rgb(c)
	f.pdf.SetFillColor(r, g, b)
	f.pdf.SetAlpha(a*opacity, "Normal")
}

func (f *filler) Draw() {
	if f.deferPaint {
		f.deferNonZero = f.useNonZeroWinding
		return
	}
	styleStr := "F*"
	if f.useNonZeroWinding {
		styleStr = "F"
	}
	f.pdf.DrawPath(styleStr)
}

func (f *filler) SetWinding(useNonZeroWinding bool) {
	f.useNonZeroWinding = useNonZeroWinding
}

var (
	capToStyle = [...]string{
		figure.ButtCap:   "butt",
		figure.SquareCap: "square",
		figure.RoundCap:  "round",
	}
	joinToStyle = [...]string{
		figure.Round: "round",
		figure.Bevel: "bevel",
		figure.Miter: "miter",
	}
)

func (f *patherStroker) SetStrokeOptions(options figure.StrokeOptions) {
	f.pdf.SetLineWidth(float64(options.LineWidth) / 64)
	f.pdf.SetLineCapStyle(capToStyle[options.Cap])
	f.pdf.SetLineJoinStyle(joinToStyle[options.Join])
	f.pdf.SetDashPattern(options.Dash.Dash, options.Dash.DashOffset)
}

// SetAlpha applies to both painting operations: when filling
// and stroking the same path, the stroke opacity wins.
func (f *patherStroker) SetColor(c color.Color, opacity float64) {
	r, g, b, a := rgb(c)
	f.pdf.SetDrawColor(r, g, b)
	f.pdf.SetAlpha(a*opacity, "Normal")
}

func (f *patherStroker) Draw() {
	f.pdf.DrawPath("D")
}

// paint the path written by the filler, with both operations
func (s *stroker) Draw() {
	styleStr := "FD*"
	if s.f.deferNonZero {
		styleStr = "FD"
	}
	s.pdf.DrawPath(styleStr)
}

// the stroker doesnt write the path again

func (p *stroker) Clear() {}

func (p *stroker) Start(a fixed.Point26_6) {}

func (p *stroker) Line(b fixed.Point26_6) {}

func (p *stroker) QuadBezier(b fixed.Point26_6, c fixed.Point26_6) {}

func (p *stroker) CubeBezier(b fixed.Point26_6, c fixed.Point26_6, d fixed.Point26_6) {}

func (p *stroker) Stop(closeLoop bool) {}
