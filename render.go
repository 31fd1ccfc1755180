// Package svmplot plots the result files of SVM trainers: the labelled
// samples with the separating line, or over the prediction of a
// nonlinear model.
//
// The sub-packages split the work: plotdata reads the input, chart lays
// out a device independent figure, and plotpdf, plotraster and plotsvg
// write it. Render chains them according to a Config.
package svmplot

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/benoitkugler/svmplot/chart"
	"github.com/benoitkugler/svmplot/figure"
	"github.com/benoitkugler/svmplot/plotdata"
	"github.com/benoitkugler/svmplot/plotpdf"
	"github.com/benoitkugler/svmplot/plotraster"
	"github.com/benoitkugler/svmplot/plotsvg"
)

// Render reads cfg.In, builds the chart and writes it to cfg.Out.
// The figure is returned so that it may be displayed afterwards.
// ctx is checked between the stages: a cancelled context
// aborts before the output file is created.
func Render(ctx context.Context, cfg Config) (*figure.Figure, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := Logger()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ds, err := plotdata.ReadFile(cfg.In, cfg.Read)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", cfg.In, err)
	}
	logger.Debug("input read", "file", cfg.In, "layout", ds.Layout,
		"points", len(ds.Points), "hyperplane", ds.Hyperplane != nil, "grid", ds.Grid != nil)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fig, err := chart.Build(ds, cfg.Chart)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	logger.Debug("chart built", "items", len(fig.Items))

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := WriteFile(cfg.Out, fig, cfg.DPI); err != nil {
		return nil, err
	}
	logger.Info("plot written", "file", cfg.Out)
	return fig, nil
}

// Write encodes fig in the given format.
// dpi is only used by raster formats.
func Write(w io.Writer, format Format, fig *figure.Figure, dpi float64) error {
	switch format {
	case FormatPDF:
		return plotpdf.WritePDF(w, fig)
	case FormatPNG:
		return plotraster.WritePNG(w, fig, dpi)
	case FormatSVG:
		return plotsvg.WriteSVG(w, fig)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// WriteFile creates the file name, with the format given by its extension.
func WriteFile(name string, fig *figure.Figure, dpi float64) error {
	format, err := FormatOf(name)
	if err != nil {
		return err
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := Write(f, format, fig, dpi); err != nil {
		f.Close()
		os.Remove(name) // no partial output
		return err
	}
	return f.Close()
}
