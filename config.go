package svmplot

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/benoitkugler/svmplot/chart"
	"github.com/benoitkugler/svmplot/plotdata"
)

var (
	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrUnknownFormat is returned for output files whose extension
	// is not .pdf, .png or .svg.
	ErrUnknownFormat = errors.New("unknown output format")
)

// Default paths, as used by the benchmark programs.
const (
	DefaultInput  = "result.csv"
	DefaultOutput = "plot.pdf"
	DefaultDPI    = 100
)

// Format is an output file format.
type Format uint8

const (
	FormatPDF Format = iota
	FormatPNG
	FormatSVG
)

func (f Format) String() string {
	switch f {
	case FormatPDF:
		return "pdf"
	case FormatPNG:
		return "png"
	case FormatSVG:
		return "svg"
	default:
		return fmt.Sprintf("<unknown Format %d>", f)
	}
}

// FormatOf returns the format matching the extension of name
// (case insensitive).
func FormatOf(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return FormatPDF, nil
	case ".png":
		return FormatPNG, nil
	case ".svg":
		return FormatSVG, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Config gathers the parameters of one rendering.
type Config struct {
	// In is the CSV file to plot.
	In string
	// Out is the file written; its extension selects the format.
	Out string
	// Read describes the layout of In.
	Read plotdata.ReadOptions
	// DPI is the resolution of the raster outputs.
	DPI float64
	// Show requests the plot to be displayed in a window.
	// It is not used by Render.
	Show bool

	Chart chart.Options
}

// DefaultConfig reads a hyperplane file into a 12 inches figure.
func DefaultConfig() Config {
	return Config{
		In:    DefaultInput,
		Out:   DefaultOutput,
		Read:  plotdata.DefaultReadOptions(plotdata.LayoutHyperplane),
		DPI:   DefaultDPI,
		Chart: chart.DefaultOptions(),
	}
}

const defaultTitle = "SVM result"

// presets reproduce the plotting scripts of the benchmark programs.
var presets = map[string]func() Config{
	// linear SVM benchmark: origin-centred axes, labels in blue and red
	"linear": func() Config {
		cfg := DefaultConfig()
		cfg.Chart.CenteredSpines = true
		return cfg
	},
	// hard-margin benchmark: large figure with a thick boundary
	"hard-separate": func() Config {
		cfg := DefaultConfig()
		cfg.Chart.Size = 24
		cfg.Chart.ColorMap = "viridis"
		cfg.Chart.LineWidth = 6
		cfg.Chart.Title, cfg.Chart.XLabel, cfg.Chart.YLabel = defaultTitle, "X-axis", "Y-axis"
		return cfg
	},
	// kernel SVM benchmark: samples over the prediction of the model
	"nonlinear": func() Config {
		cfg := DefaultConfig()
		cfg.Read = plotdata.DefaultReadOptions(plotdata.LayoutGrid)
		cfg.Chart.Size = 24
		cfg.Chart.ContourColorMap = "viridis"
		cfg.Chart.ContourAlpha = 0.2
		cfg.Chart.Title, cfg.Chart.XLabel, cfg.Chart.YLabel = defaultTitle, "X-axis", "Y-axis"
		return cfg
	},
}

// PresetNames returns the supported preset names, sorted.
func PresetNames() []string {
	out := make([]string, 0, len(presets))
	for name := range presets {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Preset returns the configuration named name.
func Preset(name string) (Config, error) {
	fn, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: unknown preset %q (expected one of %s)",
			ErrInvalidConfig, name, strings.Join(PresetNames(), ", "))
	}
	return fn(), nil
}

// Validate checks that cfg may be rendered.
// The returned error wraps ErrInvalidConfig or ErrUnknownFormat.
func (cfg Config) Validate() error {
	if cfg.In == "" {
		return fmt.Errorf("%w: missing input file", ErrInvalidConfig)
	}
	if cfg.Out == "" {
		return fmt.Errorf("%w: missing output file", ErrInvalidConfig)
	}
	if _, err := FormatOf(cfg.Out); err != nil {
		return err
	}
	if !(cfg.DPI > 0) {
		return fmt.Errorf("%w: resolution must be positive, got %g", ErrInvalidConfig, cfg.DPI)
	}
	if err := validateRead(cfg.Read); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	if err := cfg.Chart.Validate(); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	return nil
}

func validateRead(opts plotdata.ReadOptions) error {
	switch opts.Layout {
	case plotdata.LayoutPoints, plotdata.LayoutHyperplane:
		return nil
	case plotdata.LayoutGrid:
	default:
		return fmt.Errorf("unknown layout %d", opts.Layout)
	}
	if opts.PointCount < 0 {
		return fmt.Errorf("negative point count %d", opts.PointCount)
	}
	if opts.GridSize < 0 || opts.GridSize == 1 {
		return fmt.Errorf("invalid grid size %d", opts.GridSize)
	}
	if (opts.GridLo != 0 || opts.GridHi != 0) && !(opts.GridLo < opts.GridHi) {
		return fmt.Errorf("invalid grid range [%g, %g]", opts.GridLo, opts.GridHi)
	}
	return nil
}
