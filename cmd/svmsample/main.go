// Command svmsample writes random labelled samples, in the
// formats read by svmplot.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/benoitkugler/svmplot/plotdata"
	"github.com/benoitkugler/svmplot/samplegen"
)

type invalidArgErr struct {
	flags, desc string
}

func (i invalidArgErr) Error() string {
	return fmt.Sprintf("invalid flags %s  %s", i.flags, i.desc)
}

type options struct {
	kind  string
	n     int
	seed  uint64
	out   string
	debug bool

	// linear
	flip, flipDistance float64

	// moon
	spread, margin, gridRange float64
	gridSize                  int
}

// newOptions: create and parse flags, returning an options struct with all values
func newOptions() (options, error) {
	kind := flag.String("kind", "linear", "generator: linear (hyperplane layout) or moon (grid layout)")
	n := flag.Int("n", 200, "number of samples")
	seed := flag.Uint64("seed", 0, "random seed; 0 to use the current time")
	out := flag.String("out", "result.csv", "output CSV file")
	flip := flag.Float64("flip", 0, "probability to flip the label of a sample close to the line (linear)")
	flipDistance := flag.Float64("flip-distance", 0.05, "distance to the line under which labels may be flipped (linear)")
	spread := flag.Float64("spread", 0.5, "amplitude of the noise added to the samples (moon)")
	margin := flag.Float64("margin", 0.5, "samples with a reference score under margin are highlighted (moon)")
	gridSize := flag.Int("grid", 200, "number of prediction samples along each axis; 0 to only write the samples (moon)")
	gridRange := flag.Float64("range", plotdata.DefaultGridRange, "the prediction covers [-range, range]^2 (moon)")
	debug := flag.Bool("v", false, "print debug logs")

	flag.Parse()
	opts := options{
		kind: *kind, out: *out, debug: *debug,
		flip: *flip, flipDistance: *flipDistance,
		spread: *spread, margin: *margin, gridRange: *gridRange,
	}

	if *kind != "linear" && *kind != "moon" {
		return options{}, invalidArgErr{"-kind", "must be linear or moon"}
	}
	if *n < 1 {
		return options{}, invalidArgErr{"-n", "must be > 0"}
	}
	opts.n = *n

	opts.seed = *seed
	if opts.seed == 0 {
		opts.seed = uint64(time.Now().UTC().UnixNano())
	}

	if *out == "" {
		return options{}, invalidArgErr{"-out", "field is required"}
	}
	if *flip < 0 || *flip > 1 {
		return options{}, invalidArgErr{"-flip", "must be in [0, 1]"}
	}
	if *gridSize < 0 || *gridSize == 1 {
		return options{}, invalidArgErr{"-grid", "must be 0 or > 1"}
	}
	opts.gridSize = *gridSize
	if !(*gridRange > 0) {
		return options{}, invalidArgErr{"-range", "must be > 0"}
	}
	return opts, nil
}

func generate(opts options, logger *slog.Logger) (*plotdata.Dataset, error) {
	switch opts.kind {
	case "linear":
		lopts := samplegen.DefaultLinearOptions()
		lopts.Seed = opts.seed
		lopts.FlipPossibility, lopts.FlipDistance = opts.flip, opts.flipDistance
		g := samplegen.NewLinear(lopts)
		ds := samplegen.HyperplaneDataset(g, opts.n)
		logger.Info("linear samples", "hyperplane", g.Hyperplane(), "faultRate", g.FaultRate())
		return ds, nil
	default:
		points := samplegen.Take(samplegen.NewMoon(opts.seed, opts.spread), opts.n)
		samplegen.MarkMargin(points, samplegen.MoonScore, opts.margin)
		if opts.gridSize == 0 {
			return &plotdata.Dataset{Layout: plotdata.LayoutPoints, Points: points}, nil
		}
		logger.Info("moon samples", "grid", opts.gridSize, "points", len(points))
		return samplegen.GridDataset(points, samplegen.MoonScore, opts.gridSize, -opts.gridRange, opts.gridRange)
	}
}

func main() {
	opts, err := newOptions()
	if err != nil {
		log.Fatal(err)
	}

	level := slog.LevelInfo
	if opts.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	logger.Debug("options", "kind", opts.kind, "seed", opts.seed, "n", opts.n)

	ds, err := generate(opts, logger)
	if err != nil {
		log.Fatal(err)
	}
	if err := plotdata.WriteFile(opts.out, ds); err != nil {
		log.Fatal(err)
	}
	logger.Info("samples written", "file", opts.out, "layout", ds.Layout)
}
