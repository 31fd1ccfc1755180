// Package plotraster implements a raster backend for figures,
// by wrapping rasterx.
package plotraster

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/benoitkugler/svmplot/figure"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
)

var _ figure.Driver = (*Renderer)(nil) // assert interface conformance

// Renderer paints into an RGBA image.
type Renderer struct {
	img    *image.RGBA
	dasher *rasterx.Dasher // we use separated instances
	filler *rasterx.Filler
	fonts  *fontCache
}

// NewRenderer returns a renderer drawing into img.
// If scanner is nil, a default scanner rasterx.ScannerGV is used.
func NewRenderer(img *image.RGBA, scanner rasterx.Scanner) *Renderer {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if scanner == nil {
		scanner = rasterx.NewScannerGV(w, h, img, img.Bounds())
	}
	return &Renderer{
		img:    img,
		dasher: rasterx.NewDasher(w, h, scanner),
		filler: rasterx.NewFiller(w, h, scanner),
		fonts:  newFontCache(),
	}
}

// Render uses a ScannerGV instance to render the figure
// into a new image, with `dpi` pixels per inch, and returns it.
func Render(fig *figure.Figure, dpi float64) *image.RGBA {
	scale := dpi / 72
	w := int(math.Ceil(fig.ViewBox.W * scale))
	h := int(math.Ceil(fig.ViewBox.H * scale))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	fig.SetTarget(0, 0, float64(w), float64(h))
	fig.Draw(NewRenderer(img, nil), 1.0)
	return img
}

// WritePNG renders the figure and encodes it as PNG.
func WritePNG(w io.Writer, fig *figure.Figure, dpi float64) error {
	return png.Encode(w, Render(fig, dpi))
}

// WritePNGFile renders the figure into the file `name`.
func WritePNGFile(name string, fig *figure.Figure, dpi float64) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err = WritePNG(f, fig, dpi); err != nil {
		f.Close()
		os.Remove(name) // no partial output
		return err
	}
	return f.Close()
}

type filler struct {
	*rasterx.Filler
}

func (f filler) SetColor(c color.Color, opacity float64) {
	f.Filler.SetColor(rasterx.ApplyOpacity(c, opacity))
}

type stroker struct {
	*rasterx.Dasher
}

func (s stroker) SetColor(c color.Color, opacity float64) {
	s.Dasher.SetColor(rasterx.ApplyOpacity(c, opacity))
}

var (
	joinToJoin = [...]rasterx.JoinMode{
		figure.Round: rasterx.Round,
		figure.Bevel: rasterx.Bevel,
		figure.Miter: rasterx.Miter,
	}

	capToFunc = [...]rasterx.CapFunc{
		figure.ButtCap:   rasterx.ButtCap,
		figure.SquareCap: rasterx.SquareCap,
		figure.RoundCap:  rasterx.RoundCap,
	}
)

func (s stroker) SetStrokeOptions(options figure.StrokeOptions) {
	capFunc := capToFunc[options.Cap]
	s.Dasher.SetStroke(
		options.LineWidth, options.MiterLimit, capFunc, capFunc,
		rasterx.FlatGap, joinToJoin[options.Join],
		options.Dash.Dash, options.Dash.DashOffset,
	)
}

func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (f figure.Filler, s figure.Stroker) {
	if willFill {
		f = filler{rd.filler}
	}
	if willStroke {
		s = stroker{rd.dasher}
	}
	return f, s
}

// DrawImage scales img into dst with a bilinear filter,
// composing it over the current content.
func (rd *Renderer) DrawImage(img image.Image, dst figure.Bounds) {
	r := image.Rect(
		int(math.Round(dst.X)), int(math.Round(dst.Y)),
		int(math.Round(dst.X+dst.W)), int(math.Round(dst.Y+dst.H)),
	)
	if r.Empty() {
		return
	}
	draw.BiLinear.Scale(rd.img, r, img, img.Bounds(), draw.Over, nil)
}
