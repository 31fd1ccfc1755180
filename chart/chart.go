// Package chart lays out the content of an SVM result file
// (samples, decision boundary and prediction grid) as a figure.
package chart

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/benoitkugler/svmplot/contour"
	"github.com/benoitkugler/svmplot/figure"
	"github.com/benoitkugler/svmplot/hyperplane"
	"github.com/benoitkugler/svmplot/plotdata"
)

// the default color of the first plotted line
var lineColor = color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}

var isolineColor = color.Gray{Y: 0x40}

// Options controls the appearance of the chart.
type Options struct {
	// Size is the width and the height of the (square) figure, in inches.
	Size float64
	// Window is the visible data range. When nil, it is
	// computed from the data.
	Window *Window

	// ColorMap colors the samples according to their label.
	ColorMap string
	// ContourColorMap colors the prediction bands.
	ContourColorMap string
	// ContourAlpha is the opacity of the prediction bands, in [0, 1].
	ContourAlpha float64
	// ContourLevels is the number of bands. 0 selects round levels.
	ContourLevels int
	// ZeroIsoline draws the curve where the prediction is zero.
	ZeroIsoline bool

	// LineWidth is the width of the decision boundary, in points.
	LineWidth float64
	// MarkerSize is the diameter of the sample markers, in points.
	MarkerSize float64
	// FontSize is the size of the tick labels, in points.
	FontSize float64

	Title, XLabel, YLabel string
	// CenteredSpines replaces the frame by two axis lines: the horizontal
	// one at y = 0, the vertical one in the middle of the plot.
	CenteredSpines bool
}

// DefaultOptions returns a 12 inches figure with a frame and
// no title.
func DefaultOptions() Options {
	return Options{
		Size:            12,
		ColorMap:        "bwr",
		ContourColorMap: DefaultColorMap,
		ContourAlpha:    0.2,
		ZeroIsoline:     true,
		LineWidth:       2,
		MarkerSize:      6,
		FontSize:        10,
	}
}

// Validate checks the numeric options.
func (o Options) Validate() error {
	if !(o.Size > 0) || math.IsInf(o.Size, 0) {
		return fmt.Errorf("invalid figure size %g", o.Size)
	}
	if o.Window != nil {
		if err := o.Window.Validate(); err != nil {
			return err
		}
	}
	if !(o.ContourAlpha >= 0 && o.ContourAlpha <= 1) {
		return fmt.Errorf("contour alpha must be in [0, 1], got %g", o.ContourAlpha)
	}
	if o.ContourLevels < 0 {
		return fmt.Errorf("negative number of contour levels %d", o.ContourLevels)
	}
	if o.LineWidth < 0 || o.MarkerSize < 0 || !(o.FontSize > 0) {
		return errors.New("line width, marker size and font size must be positive")
	}
	return nil
}

// Build returns the figure for ds. The figure units are points,
// with the origin at the top left corner.
// A degenerate hyperplane is not an error: the boundary is skipped
// and a warning is logged.
func Build(ds *plotdata.Dataset, opts Options) (*figure.Figure, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	logger := slogger()

	var seg *hyperplane.Segment
	if ds.Hyperplane != nil {
		s, err := hyperplane.Clip(*ds.Hyperplane)
		if err != nil {
			logger.Warn("boundary skipped", "err", err)
		} else {
			if !s.Inside(-1, 1, 1e-9) {
				logger.Warn("boundary segment outside of the square [-1, 1]^2", "segment", s)
			}
			seg = &s
		}
	}

	var win Window
	if opts.Window != nil {
		win = *opts.Window
	} else {
		win = dataWindow(ds, seg)
	}
	logger.Debug("chart window", "window", win)

	size := opts.Size * PointsPerInch
	fig := figure.New(size, size)
	fig.Title = opts.Title
	ax := newAxes(size, size, win)

	var background figure.Path
	background.AddRect(0, 0, size, size)
	fig.Add(figure.Shape{Path: background, Style: figure.FillStyle(color.White)})

	if ds.Grid != nil {
		fig.Add(gridItems(ds.Grid, ax, opts)...)
	}
	fig.Add(scatter(ds, ax, opts)...)
	if seg != nil && opts.LineWidth > 0 {
		if item, ok := boundary(*seg, ax, opts.LineWidth); ok {
			fig.Add(item)
		} else {
			logger.Warn("boundary segment outside of the plot window", "segment", *seg, "window", win)
		}
	}
	fig.Add(ax.decorations(opts.CenteredSpines, opts.FontSize)...)
	fig.Add(ax.labels(opts)...)
	return fig, nil
}

// dataWindow returns the padded extent of the samples and of the boundary,
// extended to the whole prediction grid.
// A boundary outside of the unit square is not taken into account.
func dataWindow(ds *plotdata.Dataset, seg *hyperplane.Segment) Window {
	var s span
	for _, p := range ds.Points {
		s.add(p.X, p.Y)
	}
	if seg != nil && seg.Inside(-1, 1, 1e-9) {
		s.add(seg[0].X, seg[0].Y)
		s.add(seg[1].X, seg[1].Y)
	}
	if ds.Grid == nil {
		return s.padded()
	}

	lo, hi := ds.Grid.Extent()
	if !s.ok {
		return Window{lo, hi, lo, hi}
	}
	w := s.padded()
	w.XMin, w.XMax = math.Min(w.XMin, lo), math.Max(w.XMax, hi)
	w.YMin, w.YMax = math.Min(w.YMin, lo), math.Max(w.YMax, hi)
	return w
}

// boundary returns the decision boundary, clipped to the window
func boundary(seg hyperplane.Segment, ax axes, lineWidth float64) (figure.Item, bool) {
	x0, y0, x1, y1, ok := figure.ClipLine(seg[0].X, seg[0].Y, seg[1].X, seg[1].Y, ax.win.rect())
	if !ok {
		return nil, false
	}
	var p figure.Path
	px0, py0 := ax.toPage(x0, y0)
	px1, py1 := ax.toPage(x1, y1)
	p.AddLine(px0, py0, px1, py1)
	style := figure.StrokeStyle(lineColor, lineWidth)
	style.Cap = figure.SquareCap
	style.Join = figure.Round
	return figure.Shape{Path: p, Style: style}, true
}

// scatter returns one marker per sample in the window,
// colored by label; the weight gives the width of the marker edge.
func scatter(ds *plotdata.Dataset, ax axes, opts Options) []figure.Item {
	lo, hi := ds.LabelRange()
	colors := labelColors{cmap: colorMapOrDefault(opts.ColorMap), lo: lo, hi: hi}
	var marker figure.Path
	marker.AddCircle(0, 0, opts.MarkerSize/2)
	rect := ax.win.rect()

	out := make([]figure.Item, 0, len(ds.Points))
	for _, pt := range ds.Points {
		if pt.X < rect.MinX || pt.X > rect.MaxX || pt.Y < rect.MinY || pt.Y > rect.MaxY {
			continue
		}
		c := colors.at(pt.Label)
		style := figure.FillStyle(c)
		if pt.Weight > 0 {
			style.StrokeColor = c
			style.LineWidth = pt.Weight
		}
		x, y := ax.toPage(pt.X, pt.Y)
		p := marker.Transform(figure.Identity.Translate(x, y))
		out = append(out, figure.Shape{Path: p, Style: style})
	}
	return out
}

// gridItems returns the filled contour of the prediction grid,
// and its zero isoline.
func gridItems(g *plotdata.Grid, ax axes, opts Options) []figure.Item {
	min, max := g.Range()
	levels := contour.Levels(min, max, opts.ContourLevels)
	if len(levels) < 2 {
		slogger().Warn("contour skipped: invalid grid values", "min", min, "max", max)
		return nil
	}
	slogger().Debug("contour levels", "levels", levels)
	cmap := colorMapOrDefault(opts.ContourColorMap)
	colors := contour.BandColors(levels, cmap, opts.ContourAlpha)

	var out []figure.Item
	if raster, ok := gridRaster(contour.Fill(g, levels, colors), g, ax); ok {
		out = append(out, raster)
	}

	if opts.ZeroIsoline && min <= 0 && 0 <= max {
		rect := ax.win.rect()
		var p figure.Path
		for _, s := range contour.Isolines(g, 0) {
			x0, y0, x1, y1, ok := figure.ClipLine(s.X0, s.Y0, s.X1, s.Y1, rect)
			if !ok {
				continue
			}
			px0, py0 := ax.toPage(x0, y0)
			px1, py1 := ax.toPage(x1, y1)
			p.AddLine(px0, py0, px1, py1)
		}
		if len(p) != 0 {
			style := figure.StrokeStyle(isolineColor, 1)
			style.Join = figure.Round
			out = append(out, figure.Shape{Path: p, Style: style})
		}
	}
	return out
}

// gridRaster stretches the pixels of img (one per grid sample) over
// the grid extent, cropped to the window.
func gridRaster(img *image.NRGBA, g *plotdata.Grid, ax axes) (figure.Raster, bool) {
	lo, hi := g.Extent()
	n := float64(g.Size())
	step := (hi - lo) / n

	// pixel ranges (columns for x, rows from the bottom for y)
	crop := func(wmin, wmax float64) (int, int) {
		k0 := int(math.Floor((wmin - lo) / step))
		k1 := int(math.Ceil((wmax - lo) / step))
		return clampInt(k0, 0, g.Size()), clampInt(k1, 0, g.Size())
	}
	j0, j1 := crop(ax.win.XMin, ax.win.XMax)
	i0, i1 := crop(ax.win.YMin, ax.win.YMax)
	if j0 >= j1 || i0 >= i1 {
		return figure.Raster{}, false
	}

	sub := img.SubImage(image.Rect(j0, g.Size()-i1, j1, g.Size()-i0))
	left, top := ax.toPage(lo+float64(j0)*step, lo+float64(i1)*step)
	right, bottom := ax.toPage(lo+float64(j1)*step, lo+float64(i0)*step)
	return figure.Raster{
		Image: sub,
		Dst:   figure.Bounds{X: left, Y: top, W: right - left, H: bottom - top},
	}, true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
