// Command svmplot plots the result file of an SVM trainer.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/benoitkugler/svmplot"
	"github.com/benoitkugler/svmplot/chart"
	"github.com/benoitkugler/svmplot/plotdata"
	"github.com/benoitkugler/svmplot/plotraster"
	"github.com/benoitkugler/svmplot/viewer"
)

type invalidArgErr struct {
	flags, desc string
}

func (i invalidArgErr) Error() string {
	return fmt.Sprintf("invalid flags %s  %s", i.flags, i.desc)
}

type options struct {
	cfg     svmplot.Config
	verbose bool
}

// newOptions: parse the flags on top of the chosen preset. Only the flags
// explicitly given override the preset values.
func newOptions() (options, error) {
	preset := flag.String("preset", "linear", "plotting script to reproduce: "+strings.Join(svmplot.PresetNames(), ", "))
	in := flag.String("in", svmplot.DefaultInput, "CSV file to plot")
	out := flag.String("out", svmplot.DefaultOutput, "output file; .pdf, .png or .svg")
	layout := flag.String("layout", "hyperplane", "input layout: points, hyperplane or grid")
	points := flag.Int("points", plotdata.DefaultPointCount, "number of points before the grid values (grid layout); 0 to detect")
	gridSize := flag.Int("grid", plotdata.DefaultGridSize, "number of grid samples along each axis (grid layout); 0 to infer")
	gridRange := flag.Float64("range", plotdata.DefaultGridRange, "the grid covers [-range, range]^2 (grid layout)")
	size := flag.Float64("size", 12, "figure size, in inches")
	dpi := flag.Float64("dpi", svmplot.DefaultDPI, "resolution of the png output and of the window")
	cmap := flag.String("cmap", "bwr", "color map of the samples: "+strings.Join(chart.ColorMapNames(), ", "))
	contourCmap := flag.String("contour-cmap", chart.DefaultColorMap, "color map of the prediction")
	lineWidth := flag.Float64("linewidth", 2, "width of the separating line, in points")
	alpha := flag.Float64("alpha", 0.2, "opacity of the prediction")
	title := flag.String("title", "", "title of the plot")
	show := flag.Bool("show", false, "display the plot in a window")
	verbose := flag.Bool("v", false, "print debug logs")

	flag.Parse()

	cfg, err := svmplot.Preset(*preset)
	if err != nil {
		return options{}, invalidArgErr{"-preset", err.Error()}
	}

	var parseErr error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "in":
			cfg.In = *in
		case "out":
			cfg.Out = *out
		case "layout":
			l, err := plotdata.ParseLayout(*layout)
			if err != nil {
				parseErr = invalidArgErr{"-layout", err.Error()}
				return
			}
			cfg.Read = plotdata.DefaultReadOptions(l)
		case "size":
			cfg.Chart.Size = *size
		case "dpi":
			cfg.DPI = *dpi
		case "cmap":
			cfg.Chart.ColorMap = *cmap
		case "contour-cmap":
			cfg.Chart.ContourColorMap = *contourCmap
		case "linewidth":
			cfg.Chart.LineWidth = *lineWidth
		case "alpha":
			cfg.Chart.ContourAlpha = *alpha
		case "title":
			cfg.Chart.Title = *title
		case "show":
			cfg.Show = *show
		}
	})
	if parseErr != nil {
		return options{}, parseErr
	}
	// applied after -layout, which resets the read options
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "points":
			cfg.Read.PointCount = *points
		case "grid":
			cfg.Read.GridSize = *gridSize
		case "range":
			cfg.Read.GridLo, cfg.Read.GridHi = -*gridRange, *gridRange
		}
	})

	if err := cfg.Validate(); err != nil {
		return options{}, err
	}
	return options{cfg: cfg, verbose: *verbose}, nil
}

func main() {
	opts, err := newOptions()
	if err != nil {
		log.Fatal(err)
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	svmplot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(opts); err != nil {
		log.Fatal(err)
	}
}

// run renders the plot, and shows it if requested. The interrupt
// handler is released before returning.
func run(opts options) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fig, err := svmplot.Render(ctx, opts.cfg)
	if err != nil {
		return err
	}

	if !opts.cfg.Show {
		return nil
	}
	title := fig.Title
	if title == "" {
		title = opts.cfg.In
	}
	return viewer.Show(title, plotraster.Render(fig, opts.cfg.DPI))
}
