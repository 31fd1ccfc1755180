package chart

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/benoitkugler/svmplot/figure"
	"github.com/benoitkugler/svmplot/hyperplane"
	"github.com/benoitkugler/svmplot/plotdata"
)

func hyperplaneDataset(h hyperplane.Hyperplane) *plotdata.Dataset {
	return &plotdata.Dataset{
		Layout:     plotdata.LayoutHyperplane,
		Hyperplane: &h,
		Points: []plotdata.Point{
			{X: -1, Y: -1, Label: -1, Weight: 1},
			{X: 1, Y: 1, Label: 1, Weight: 3},
			{X: 0.5, Y: -0.2, Label: 1, Weight: 1},
		},
	}
}

func countItems(fig *figure.Figure) (shapes, texts, rasters int) {
	for _, item := range fig.Items {
		switch item.(type) {
		case figure.Shape:
			shapes++
		case figure.Text:
			texts++
		case figure.Raster:
			rasters++
		}
	}
	return
}

func texts(fig *figure.Figure) []string {
	var out []string
	for _, item := range fig.Items {
		if t, ok := item.(figure.Text); ok {
			out = append(out, t.Content)
		}
	}
	return out
}

func captureLogs(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func TestBuildHyperplane(t *testing.T) {
	opts := DefaultOptions()
	opts.Title = "SVM result"
	opts.XLabel, opts.YLabel = "X-axis", "Y-axis"
	fig, err := Build(hyperplaneDataset(hyperplane.Hyperplane{A: 1, B: 1}), opts)
	if err != nil {
		t.Fatal(err)
	}
	if fig.ViewBox.W != 12*72 || fig.ViewBox.H != 12*72 {
		t.Errorf("unexpected page size %v", fig.ViewBox)
	}
	shapes, _, rasters := countItems(fig)
	// background, 3 markers, boundary, frame
	if shapes != 6 || rasters != 0 {
		t.Errorf("unexpected items: %d shapes, %d rasters", shapes, rasters)
	}
	content := strings.Join(texts(fig), " ")
	for _, s := range []string{"SVM result", "X-axis", "Y-axis"} {
		if !strings.Contains(content, s) {
			t.Errorf("missing text %s in %s", s, content)
		}
	}
}

func TestBoundaryEndpoints(t *testing.T) {
	win := Window{-1, 1, -1, 1}
	ax := newAxes(100, 100, win)
	seg, err := hyperplane.Clip(hyperplane.Hyperplane{A: 2, B: 1})
	if err != nil {
		t.Fatal(err)
	}
	item, ok := boundary(seg, ax, 2)
	if !ok {
		t.Fatal("boundary should be visible")
	}
	b, _ := item.(figure.Shape).Path.Bounds()
	// from (-0.5, 1) to (0.5, -1)
	const tol = 0.05
	if math.Abs(b.X-ax.pageX(-0.5)) > tol || math.Abs(b.W-(ax.pageX(0.5)-ax.pageX(-0.5))) > tol {
		t.Errorf("unexpected boundary bounds %v", b)
	}
	if math.Abs(b.Y-ax.top) > tol || math.Abs(b.Y+b.H-ax.bottom) > tol {
		t.Errorf("unexpected boundary bounds %v", b)
	}
}

func TestBuildDegenerateHyperplane(t *testing.T) {
	logs := captureLogs(t)
	fig, err := Build(hyperplaneDataset(hyperplane.Hyperplane{A: 0, B: 1, C: -2}), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if shapes, _, _ := countItems(fig); shapes != 5 {
		t.Errorf("expected no boundary, got %d shapes", shapes)
	}
	if !strings.Contains(logs.String(), "boundary skipped") {
		t.Errorf("expected a warning, got %q", logs.String())
	}
}

func TestBuildOutsideSegment(t *testing.T) {
	logs := captureLogs(t)
	opts := DefaultOptions()
	opts.Window = &Window{-1, 1, -1, 1}
	fig, err := Build(hyperplaneDataset(hyperplane.Hyperplane{A: 1, B: 1, C: -5}), opts)
	if err != nil {
		t.Fatal(err)
	}
	if shapes, _, _ := countItems(fig); shapes != 5 {
		t.Errorf("expected no boundary, got %d shapes", shapes)
	}
	if !strings.Contains(logs.String(), "outside of the square") {
		t.Errorf("expected a warning, got %q", logs.String())
	}
}

func TestBuildGrid(t *testing.T) {
	const n = 50
	flat := make([]float64, n*n)
	g, err := plotdata.NewGrid(n, -4.5, 4.5, flat)
	if err != nil {
		t.Fatal(err)
	}
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			x, y := g.X(j), g.Y(i)
			flat[j*n+i] = x*x + y*y - 4
		}
	}
	ds := &plotdata.Dataset{
		Layout: plotdata.LayoutGrid,
		Points: []plotdata.Point{{X: 0, Y: 0, Label: 1, Weight: 1}},
		Grid:   g,
	}
	opts := DefaultOptions()
	fig, err := Build(ds, opts)
	if err != nil {
		t.Fatal(err)
	}
	_, _, rasters := countItems(fig)
	if rasters != 1 {
		t.Fatalf("expected a contour raster, got %d", rasters)
	}
	var raster figure.Raster
	for _, item := range fig.Items {
		if r, ok := item.(figure.Raster); ok {
			raster = r
		}
	}
	if raster.Image.Bounds().Dx() != n || raster.Image.Bounds().Dy() != n {
		t.Errorf("unexpected raster size %v", raster.Image.Bounds())
	}
	ax := newAxes(fig.ViewBox.W, fig.ViewBox.H, Window{-4.5, 4.5, -4.5, 4.5})
	if math.Abs(raster.Dst.X-ax.left) > 1e-9 || math.Abs(raster.Dst.W-(ax.right-ax.left)) > 1e-9 {
		t.Errorf("unexpected raster position %v", raster.Dst)
	}

	// a smaller window crops the raster
	opts.Window = &Window{0, 4.5, 0, 4.5}
	fig, err = Build(ds, opts)
	if err != nil {
		t.Fatal(err)
	}
	for _, item := range fig.Items {
		if r, ok := item.(figure.Raster); ok {
			if dx := r.Image.Bounds().Dx(); dx < n/2 || dx > n/2+1 {
				t.Errorf("expected a cropped raster, got %v", r.Image.Bounds())
			}
		}
	}
}

func TestDataWindow(t *testing.T) {
	ds := &plotdata.Dataset{Points: []plotdata.Point{{X: 0, Y: 0}, {X: 10, Y: 20}}}
	w := dataWindow(ds, nil)
	exp := Window{-0.5, 10.5, -1, 21}
	if math.Abs(w.XMin-exp.XMin)+math.Abs(w.XMax-exp.XMax)+math.Abs(w.YMin-exp.YMin)+math.Abs(w.YMax-exp.YMax) > 1e-9 {
		t.Errorf("unexpected window %v", w)
	}
	if w := dataWindow(&plotdata.Dataset{}, nil); w != (Window{-1, 1, -1, 1}) {
		t.Errorf("unexpected default window %v", w)
	}
	// a far away boundary is ignored
	seg := hyperplane.Segment{{X: 100, Y: 1}, {X: 102, Y: -1}}
	if w2 := dataWindow(ds, &seg); w2 != w {
		t.Errorf("unexpected window %v", w2)
	}
}

func TestCenteredSpines(t *testing.T) {
	ax := newAxes(100, 100, Window{-2, 2, -1, 3})
	items := ax.decorations(true, 10)
	frame := items[0].(figure.Shape)
	b, _ := frame.Path.Bounds()
	if math.Abs(b.X-ax.left) > 0.05 || math.Abs(b.X+b.W-ax.right) > 0.05 {
		t.Errorf("unexpected spines extent %v", b)
	}
	// the horizontal spine is at y = 0
	found := false
	for _, op := range frame.Path {
		if m, ok := op.(figure.MoveTo); ok {
			if math.Abs(float64(m.Y)/64-ax.pageY(0)) < 0.05 && math.Abs(float64(m.X)/64-ax.left) < 0.05 {
				found = true
			}
		}
	}
	if !found {
		t.Error("horizontal spine not found at y = 0")
	}
}

func TestColorMap(t *testing.T) {
	for _, name := range ColorMapNames() {
		cmap, err := ColorMap(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := cmap.At(0.5); err != nil {
			t.Errorf("%s: %s", name, err)
		}
	}
	if _, err := ColorMap("jet"); !errors.Is(err, ErrUnknownColorMap) {
		t.Errorf("expected ErrUnknownColorMap, got %v", err)
	}

	logs := captureLogs(t)
	if cmap := colorMapOrDefault("jet"); cmap == nil {
		t.Fatal("expected a fallback color map")
	}
	if !strings.Contains(logs.String(), "fallback") {
		t.Errorf("expected a warning, got %q", logs.String())
	}
}

func TestOptionsValidate(t *testing.T) {
	for _, mod := range []func(*Options){
		func(o *Options) { o.Size = 0 },
		func(o *Options) { o.Size = math.NaN() },
		func(o *Options) { o.ContourAlpha = 2 },
		func(o *Options) { o.ContourLevels = -1 },
		func(o *Options) { o.FontSize = 0 },
		func(o *Options) { o.Window = &Window{1, 0, 0, 1} },
	} {
		opts := DefaultOptions()
		mod(&opts)
		if err := opts.Validate(); err == nil {
			t.Errorf("expected an error for %+v", opts)
		}
	}
	if err := DefaultOptions().Validate(); err != nil {
		t.Error(err)
	}
}

func TestBuildGridInfinite(t *testing.T) {
	flat := []float64{-1, 0, 1, math.Inf(1)}
	g, err := plotdata.NewGrid(2, -1, 1, flat)
	if err != nil {
		t.Fatal(err)
	}
	ds := &plotdata.Dataset{Layout: plotdata.LayoutGrid, Grid: g}
	logs := captureLogs(t)
	fig, err := Build(ds, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if _, _, rasters := countItems(fig); rasters != 0 {
		t.Errorf("expected no contour raster, got %d", rasters)
	}
	if !strings.Contains(logs.String(), "contour skipped") {
		t.Errorf("expected a warning, got %q", logs.String())
	}
}
