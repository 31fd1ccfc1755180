package samplegen

import (
	"bytes"
	"math"
	"testing"

	"github.com/benoitkugler/svmplot/hyperplane"
	"github.com/benoitkugler/svmplot/plotdata"
)

func TestLinear(t *testing.T) {
	g := NewLinear(DefaultLinearOptions())
	h := g.Hyperplane()
	for _, v := range []float64{h.A, h.B} {
		if v < -1 || v > 1 {
			t.Errorf("weight %g out of range", v)
		}
	}
	if h.C < -0.25 || h.C > 0.25 {
		t.Errorf("bias %g out of range", h.C)
	}
	for _, p := range Take(g, 200) {
		if p.X < -1 || p.X > 1 || p.Y < -1 || p.Y > 1 {
			t.Fatalf("point out of range %v", p)
		}
		if exp := sign(h.Eval(p.X, p.Y)); p.Label != exp {
			t.Errorf("unexpected label for %v", p)
		}
	}
	if g.FaultRate() != 0 {
		t.Errorf("unexpected fault rate %g", g.FaultRate())
	}
}

func TestLinearFlip(t *testing.T) {
	opts := DefaultLinearOptions()
	opts.Seed = 7
	opts.FlipPossibility = 1
	opts.FlipDistance = 1e6 // every sample is close enough
	g := NewLinear(opts)
	h := g.Hyperplane()
	for _, p := range Take(g, 50) {
		if exp := sign(h.Eval(p.X, p.Y)); p.Label == exp && h.Eval(p.X, p.Y) != 0 {
			t.Errorf("label of %v should be flipped", p)
		}
	}
	if g.FaultRate() != 1 {
		t.Errorf("unexpected fault rate %g", g.FaultRate())
	}
}

func TestDeterministic(t *testing.T) {
	a, b := Take(NewMoon(42, 0.75), 20), Take(NewMoon(42, 0.75), 20)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("samples differ for the same seed: %v %v", a[i], b[i])
		}
	}
}

func TestMoon(t *testing.T) {
	g := NewMoon(1, 0)
	var classes [2]int
	for _, p := range Take(g, 500) {
		if p.Label != 1 && p.Label != -1 {
			t.Fatalf("unexpected label %g", p.Label)
		}
		x := p.X - p.Label
		if x < -2.5 || x > 2.5 {
			t.Errorf("x out of range in %v", p)
		}
		if math.Abs(p.Y-moonCurve(x, p.Label)) > 1e-12 {
			t.Errorf("point %v not on its curve", p)
		}
		if MoonScore(p.X, p.Y)*p.Label < 0 {
			t.Errorf("reference score misclassifies %v", p)
		}
		classes[(int(p.Label)+1)/2]++
	}
	if classes[0] == 0 || classes[1] == 0 {
		t.Errorf("expected both classes, got %v", classes)
	}
}

func TestGridDataset(t *testing.T) {
	points := Take(NewMoon(3, 0.5), 10)
	MarkMargin(points, MoonScore, 1)
	ds, err := GridDataset(points, MoonScore, 20, -4.5, 4.5)
	if err != nil {
		t.Fatal(err)
	}
	g := ds.Grid
	for _, ij := range [][2]int{{0, 0}, {3, 17}, {19, 5}} {
		i, j := ij[0], ij[1]
		if got, exp := g.At(i, j), MoonScore(g.X(j), g.Y(i)); math.Abs(got-exp) > 1e-9 {
			t.Errorf("(%d, %d): expected %g, got %g", i, j, exp, got)
		}
	}

	// round trip through the file format
	var buf bytes.Buffer
	if err := plotdata.Write(&buf, ds); err != nil {
		t.Fatal(err)
	}
	opts := plotdata.DefaultReadOptions(plotdata.LayoutGrid)
	opts.PointCount, opts.GridSize = len(points), 20
	back, err := plotdata.Read(&buf, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(back.Points) != len(points) || back.Grid.At(3, 17) != g.At(3, 17) {
		t.Error("unexpected dataset after round trip")
	}
}

func TestHyperplaneDataset(t *testing.T) {
	g := NewLinear(LinearOptions{Seed: 5, Lo: -1, Hi: 1})
	ds := HyperplaneDataset(g, 30)
	if ds.Hyperplane == nil || *ds.Hyperplane != g.Hyperplane() || len(ds.Points) != 30 {
		t.Fatal("unexpected dataset")
	}
	score := LinearScore(hyperplane.Hyperplane{A: 3, B: 4})
	if s := score(1, 0); s != 0.6 {
		t.Errorf("unexpected normalized score %g", s)
	}
}
