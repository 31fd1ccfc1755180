package chart

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"

	"github.com/benoitkugler/svmplot/figure"
)

// PointsPerInch converts figure sizes to figure units.
const PointsPerInch = 72

// default subplot parameters, as fractions of the figure size
const (
	marginLeft   = 0.125
	marginRight  = 0.9
	marginBottom = 0.11
	marginTop    = 0.88
)

// autoscaling adds this fraction of the data range on each side
const windowPadding = 0.05

const (
	axesLineWidth = 0.8
	tickLength    = 3.5
	tickPad       = 3.5
	labelPad      = 4
)

// Window is a rectangle in data coordinates.
type Window struct {
	XMin, XMax, YMin, YMax float64
}

// Validate checks that the window is not empty.
func (w Window) Validate() error {
	for _, v := range [4]float64{w.XMin, w.XMax, w.YMin, w.YMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("non finite window %v", w)
		}
	}
	if !(w.XMin < w.XMax && w.YMin < w.YMax) {
		return fmt.Errorf("empty window %v", w)
	}
	return nil
}

func (w Window) rect() figure.Rect {
	return figure.Rect{MinX: w.XMin, MinY: w.YMin, MaxX: w.XMax, MaxY: w.YMax}
}

// span accumulates the extent of the plotted data
type span struct {
	minX, minY, maxX, maxY float64
	ok                     bool
}

func (s *span) add(x, y float64) {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return
	}
	if !s.ok {
		*s = span{x, y, x, y, true}
		return
	}
	s.minX, s.maxX = math.Min(s.minX, x), math.Max(s.maxX, x)
	s.minY, s.maxY = math.Min(s.minY, y), math.Max(s.maxY, y)
}

// padded returns the window around the span, with margins
func (s span) padded() Window {
	if !s.ok {
		return Window{-1, 1, -1, 1}
	}
	pad := func(lo, hi float64) (float64, float64) {
		if lo == hi {
			return lo - 0.5, hi + 0.5
		}
		m := (hi - lo) * windowPadding
		return lo - m, hi + m
	}
	var w Window
	w.XMin, w.XMax = pad(s.minX, s.maxX)
	w.YMin, w.YMax = pad(s.minY, s.maxY)
	return w
}

// axes maps data coordinates to the page
type axes struct {
	// page rectangle, with top < bottom
	left, top, right, bottom float64
	win                      Window
}

func newAxes(width, height float64, win Window) axes {
	return axes{
		left:   marginLeft * width,
		right:  marginRight * width,
		top:    (1 - marginTop) * height,
		bottom: (1 - marginBottom) * height,
		win:    win,
	}
}

func (a axes) pageX(x float64) float64 {
	return a.left + (x-a.win.XMin)/(a.win.XMax-a.win.XMin)*(a.right-a.left)
}

func (a axes) pageY(y float64) float64 {
	return a.bottom - (y-a.win.YMin)/(a.win.YMax-a.win.YMin)*(a.bottom-a.top)
}

func (a axes) toPage(x, y float64) (float64, float64) { return a.pageX(x), a.pageY(y) }

// majorTicks returns the labelled ticks in [min, max]
func majorTicks(min, max float64) []plot.Tick {
	var out []plot.Tick
	for _, t := range (plot.DefaultTicks{}).Ticks(min, max) {
		if t.IsMinor() || t.Value < min || t.Value > max {
			continue
		}
		out = append(out, t)
	}
	return out
}

// estimated width of a label, used for the layout only
func textWidth(s string, size float64) float64 { return 0.6 * size * float64(len(s)) }

// decorations returns the frame (or spines), the ticks and their labels.
func (a axes) decorations(centered bool, fontSize float64) []figure.Item {
	var (
		lines figure.Path
		items []figure.Item
	)
	// position of the spines carrying the ticks
	xAxisY, yAxisX := a.bottom, a.left
	if centered {
		yAxisX = (a.left + a.right) / 2
		if a.win.YMin <= 0 && 0 <= a.win.YMax {
			xAxisY = a.pageY(0)
		}
		lines.AddLine(a.left, xAxisY, a.right, xAxisY)
		lines.AddLine(yAxisX, a.top, yAxisX, a.bottom)
	} else {
		lines.AddRect(a.left, a.top, a.right, a.bottom)
	}

	for _, t := range majorTicks(a.win.XMin, a.win.XMax) {
		x := a.pageX(t.Value)
		lines.AddLine(x, xAxisY, x, xAxisY+tickLength)
		items = append(items, figure.Text{
			Content: t.Label, X: x, Y: xAxisY + tickLength + tickPad, Size: fontSize,
			HAlign: figure.AlignMiddle, VAlign: figure.AlignStart,
		})
	}
	for _, t := range majorTicks(a.win.YMin, a.win.YMax) {
		y := a.pageY(t.Value)
		lines.AddLine(yAxisX, y, yAxisX-tickLength, y)
		items = append(items, figure.Text{
			Content: t.Label, X: yAxisX - tickLength - tickPad, Y: y, Size: fontSize,
			HAlign: figure.AlignEnd, VAlign: figure.AlignMiddle,
		})
	}

	style := figure.StrokeStyle(color.Black, axesLineWidth)
	style.Cap = figure.SquareCap
	return append([]figure.Item{figure.Shape{Path: lines, Style: style}}, items...)
}

// labels returns the title and the axis labels
func (a axes) labels(opts Options) []figure.Item {
	var out []figure.Item
	if opts.Title != "" {
		out = append(out, figure.Text{
			Content: opts.Title, X: (a.left + a.right) / 2, Y: a.top - 6, Size: opts.FontSize * 1.2,
			HAlign: figure.AlignMiddle, VAlign: figure.AlignEnd,
		})
	}
	if opts.XLabel != "" {
		out = append(out, figure.Text{
			Content: opts.XLabel, X: (a.left + a.right) / 2,
			Y:    a.bottom + tickLength + tickPad + opts.FontSize + labelPad,
			Size: opts.FontSize, HAlign: figure.AlignMiddle, VAlign: figure.AlignStart,
		})
	}
	if opts.YLabel != "" {
		widest := 0.
		for _, t := range majorTicks(a.win.YMin, a.win.YMax) {
			widest = math.Max(widest, textWidth(t.Label, opts.FontSize))
		}
		out = append(out, figure.Text{
			Content: opts.YLabel, X: a.left - tickLength - tickPad - widest - labelPad,
			Y:    (a.top + a.bottom) / 2,
			Size: opts.FontSize, HAlign: figure.AlignMiddle, VAlign: figure.AlignEnd,
			Vertical: true,
		})
	}
	return out
}
