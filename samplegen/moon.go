package samplegen

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/benoitkugler/svmplot/plotdata"
)

// Moon draws samples around two interleaving parabolas,
// one per class.
type Moon struct {
	class  distuv.Bernoulli
	x      distuv.Uniform
	spread distuv.Uniform
}

// NewMoon returns a generator whose samples are moved by a
// uniform noise in [-spread, spread] on each axis.
func NewMoon(seed uint64, spread float64) *Moon {
	src := rand.NewSource(seed)
	spread = math.Abs(spread)
	return &Moon{
		class:  distuv.Bernoulli{P: 0.5, Src: src},
		x:      distuv.Uniform{Min: -2.5, Max: 2.5, Src: src},
		spread: distuv.Uniform{Min: -spread, Max: spread, Src: src},
	}
}

// moonCurve is the (noiseless) parabola of class c, before
// the horizontal shift
func moonCurve(x, c float64) float64 { return 2 * (x*x/2 - 1.75) * c }

// Next returns a new sample, with weight 1.
func (g *Moon) Next() plotdata.Point {
	c := 2*g.class.Rand() - 1
	x := g.x.Rand()
	y := moonCurve(x, c)
	x += c + g.noise()
	y += g.noise()
	return plotdata.Point{X: x, Y: y, Label: c, Weight: plotdata.DefaultWeight}
}

func (g *Moon) noise() float64 {
	if g.spread.Max == 0 {
		return 0
	}
	return g.spread.Rand()
}

// MoonScore is a reference decision function for Moon samples:
// the vertical distance to the parabola of class -1 minus the one
// to the parabola of class 1. It is positive on the side of class 1.
func MoonScore(x, y float64) float64 {
	toPositive := math.Abs(y - moonCurve(x-1, 1))
	toNegative := math.Abs(y - moonCurve(x+1, -1))
	return toNegative - toPositive
}
