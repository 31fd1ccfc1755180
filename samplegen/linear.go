// Package samplegen generates labelled 2D samples to
// exercise SVM trainers and the plotting tools.
package samplegen

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/benoitkugler/svmplot/hyperplane"
	"github.com/benoitkugler/svmplot/plotdata"
)

// LinearOptions parametrizes a Linear generator.
type LinearOptions struct {
	Seed uint64
	// Lo and Hi bound the coordinates and the weights of the
	// separating line
	Lo, Hi float64
	// FlipPossibility is the probability to flip the label of a sample
	// closer than FlipDistance of the separating line.
	FlipPossibility, FlipDistance float64
}

// DefaultLinearOptions samples in [-1, 1]^2, without noise.
func DefaultLinearOptions() LinearOptions {
	return LinearOptions{Lo: -1, Hi: 1}
}

// Linear draws uniform samples labelled by the side of a random line.
type Linear struct {
	coords distuv.Uniform
	flip   distuv.Uniform
	opts   LinearOptions

	hyperplane         hyperplane.Hyperplane
	generated, flipped int
}

// NewLinear chooses the separating line: the weights are drawn in [Lo, Hi],
// the bias in [Lo/4, Hi/4].
func NewLinear(opts LinearOptions) *Linear {
	src := rand.NewSource(opts.Seed)
	g := &Linear{
		coords: distuv.Uniform{Min: opts.Lo, Max: opts.Hi, Src: src},
		flip:   distuv.Uniform{Min: 0, Max: 1, Src: src},
		opts:   opts,
	}
	g.hyperplane.A = g.coords.Rand()
	g.hyperplane.B = g.coords.Rand()
	g.hyperplane.C = g.coords.Rand() / 4
	return g
}

// Hyperplane returns the separating line.
func (g *Linear) Hyperplane() hyperplane.Hyperplane { return g.hyperplane }

// Next returns a new sample, with weight 1.
func (g *Linear) Next() plotdata.Point {
	g.generated++
	x, y := g.coords.Rand(), g.coords.Rand()
	score := g.hyperplane.Eval(x, y)
	norm := math.Hypot(g.hyperplane.A, g.hyperplane.B)
	if g.flip.Rand() < g.opts.FlipPossibility && math.Abs(score) < g.opts.FlipDistance*norm {
		score = -score
		g.flipped++
	}
	return plotdata.Point{X: x, Y: y, Label: sign(score), Weight: plotdata.DefaultWeight}
}

// FaultRate returns the fraction of the generated samples
// whose label has been flipped.
func (g *Linear) FaultRate() float64 {
	if g.generated == 0 {
		return 0
	}
	return float64(g.flipped) / float64(g.generated)
}

// sign returns 1 for zero, so that every sample has a class
func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
