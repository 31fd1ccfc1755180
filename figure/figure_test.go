package figure

import (
	"image"
	"image/color"
	"math"
	"strings"
	"testing"

	"golang.org/x/image/math/fixed"
)

// recorder is a Driver keeping track of the operations
type recorder struct {
	ops    []string
	texts  []Text
	images []Bounds
	stroke StrokeOptions
}

func (r *recorder) Clear()                           { r.ops = append(r.ops, "clear") }
func (r *recorder) Start(a fixed.Point26_6)          { r.ops = append(r.ops, "start") }
func (r *recorder) Line(b fixed.Point26_6)           { r.ops = append(r.ops, "line") }
func (r *recorder) QuadBezier(b, c fixed.Point26_6)  { r.ops = append(r.ops, "quad") }
func (r *recorder) CubeBezier(b, c, d fixed.Point26_6) { r.ops = append(r.ops, "cube") }
func (r *recorder) Stop(closeLoop bool) {
	if closeLoop {
		r.ops = append(r.ops, "close")
	}
}
func (r *recorder) SetColor(c color.Color, opacity float64) {}
func (r *recorder) Draw()                                  { r.ops = append(r.ops, "draw") }
func (r *recorder) SetWinding(bool)                        {}
func (r *recorder) SetStrokeOptions(o StrokeOptions)       { r.stroke = o }

func (r *recorder) SetupDrawers(willFill, willStroke bool) (Filler, Stroker) {
	var (
		f Filler
		s Stroker
	)
	if willFill {
		f = r
	}
	if willStroke {
		s = r
	}
	return f, s
}

func (r *recorder) DrawText(t Text)                       { r.texts = append(r.texts, t) }
func (r *recorder) DrawImage(img image.Image, dst Bounds) { r.images = append(r.images, dst) }

func TestCircleBounds(t *testing.T) {
	var p Path
	p.AddCircle(10, 20, 5)
	b, ok := p.Bounds()
	if !ok {
		t.Fatal("empty bounds")
	}
	const tol = 0.05
	if math.Abs(b.X-5) > tol || math.Abs(b.Y-15) > tol || math.Abs(b.W-10) > tol || math.Abs(b.H-10) > tol {
		t.Errorf("unexpected circle bounds %v", b)
	}
	if _, ok := (Path{}).Bounds(); ok {
		t.Error("expected empty bounds")
	}
}

func TestQuadBounds(t *testing.T) {
	var p Path
	p.Start(toFixedP(0, 0))
	p.QuadBezier(toFixedP(5, 10), toFixedP(10, 0))
	b, _ := p.Bounds()
	// the extremum is at t = 0.5, y = 5
	if math.Abs(b.H-5) > 0.05 || b.W != 10 {
		t.Errorf("unexpected bounds %v", b)
	}
}

func TestCubicBounds(t *testing.T) {
	var p Path
	p.Start(toFixedP(0, 0))
	p.CubeBezier(toFixedP(0, 10), toFixedP(10, 10), toFixedP(10, 0))
	b, _ := p.Bounds()
	// the extremum is at t = 0.5, y = 7.5
	if math.Abs(b.H-7.5) > 0.05 || b.W != 10 || b.Y != 0 {
		t.Errorf("unexpected bounds %v", b)
	}
	if got := bezierAt([]float64{0, 10, 10, 0}, 0.5); got != 7.5 {
		t.Errorf("unexpected curve value %g", got)
	}
}

func TestPathTransform(t *testing.T) {
	var marker Path
	marker.AddCircle(0, 0, 2)
	moved := marker.Transform(Identity.Translate(10, 20))
	if len(moved) != len(marker) {
		t.Fatalf("expected %d operations, got %d", len(marker), len(moved))
	}
	b, _ := moved.Bounds()
	const tol = 0.05
	if math.Abs(b.X-8) > tol || math.Abs(b.Y-18) > tol || math.Abs(b.W-4) > tol {
		t.Errorf("unexpected bounds %v", b)
	}
	// the source is unchanged
	if b0, _ := marker.Bounds(); math.Abs(b0.X+2) > tol {
		t.Errorf("source path modified: %v", b0)
	}
	if _, ok := moved[len(moved)-1].(Close); !ok {
		t.Error("expected the path to stay closed")
	}
}

func TestToSVGPath(t *testing.T) {
	var p Path
	p.AddRect(0, 0, 2, 1)
	if got, exp := p.ToSVGPath(), "M0.000,0.000 L2.000,0.000 L2.000,1.000 L0.000,1.000 Z"; got != exp {
		t.Errorf("expected %s, got %s", exp, got)
	}
	p.Clear()
	p.AddCircle(0, 0, 1)
	if s := p.String(); strings.Count(s, "C") != 4 {
		t.Errorf("expected 4 cubic curves in %s", s)
	}
}

func TestMatrix(t *testing.T) {
	m := Identity.Translate(10, 20).Scale(2, 3)
	x, y := m.Transform(1, 1)
	if x != 12 || y != 23 {
		t.Errorf("unexpected transform %g %g", x, y)
	}
	if s := Identity.Scale(2, 2).scaleFactor(); s != 2 {
		t.Errorf("unexpected scale factor %g", s)
	}
	p := m.TFixed(toFixedP(1, 1))
	if p != toFixedP(12, 23) {
		t.Errorf("unexpected fixed transform %v", p)
	}
}

func TestSetTarget(t *testing.T) {
	f := New(100, 50)
	f.SetTarget(0, 0, 200, 100)
	x, y := f.Transform.Transform(100, 50)
	if x != 200 || y != 100 {
		t.Errorf("unexpected corner %g %g", x, y)
	}
}

func TestDrawSkipsHidden(t *testing.T) {
	f := New(100, 100)
	var inside, outside Path
	inside.AddRect(10, 10, 20, 20)
	outside.AddRect(200, 200, 220, 220)
	f.Add(
		Shape{Path: inside, Style: FillStyle(color.Black)},
		Shape{Path: outside, Style: FillStyle(color.Black)},
		Text{Content: "title", X: 50, Y: 5, Size: 10},
		Raster{Image: image.NewNRGBA(image.Rect(0, 0, 2, 2)), Dst: Bounds{X: 0, Y: 0, W: 50, H: 50}},
	)
	f.SetTarget(0, 0, 200, 200)

	var r recorder
	f.Draw(&r, 1)
	if got := strings.Count(strings.Join(r.ops, " "), "draw"); got != 1 {
		t.Errorf("expected 1 drawn shape, got %d (%v)", got, r.ops)
	}
	if len(r.texts) != 1 || r.texts[0].Size != 20 || r.texts[0].X != 100 {
		t.Errorf("unexpected texts %v", r.texts)
	}
	if len(r.images) != 1 || r.images[0] != (Bounds{0, 0, 100, 100}) {
		t.Errorf("unexpected images %v", r.images)
	}
}

func TestStrokeWidthScaled(t *testing.T) {
	f := New(10, 10)
	var p Path
	p.AddLine(0, 0, 10, 10)
	f.Add(Shape{Path: p, Style: StrokeStyle(color.Black, 2)})
	f.SetTarget(0, 0, 30, 30)
	var r recorder
	f.Draw(&r, 1)
	if r.stroke.LineWidth != fixed.I(6) {
		t.Errorf("expected line width 6, got %v", r.stroke.LineWidth)
	}
}

func TestClipLine(t *testing.T) {
	b := Rect{-1, -1, 1, 1}
	x0, y0, x1, y1, ok := ClipLine(-2, -2, 2, 2, b)
	if !ok || x0 != -1 || y0 != -1 || x1 != 1 || y1 != 1 {
		t.Errorf("unexpected clip %g %g %g %g %v", x0, y0, x1, y1, ok)
	}
	if _, _, _, _, ok = ClipLine(2, 2, 3, 5, b); ok {
		t.Error("expected rejected segment")
	}
	x0, y0, x1, y1, ok = ClipLine(0, 0, 0.5, 0.5, b)
	if !ok || x0 != 0 || y1 != 0.5 {
		t.Errorf("inside segment should be unchanged")
	}
	x0, y0, x1, y1, ok = ClipLine(-3, 0, 3, 0, b)
	if !ok || x0 != -1 || x1 != 1 || y0 != 0 || y1 != 0 {
		t.Errorf("unexpected horizontal clip %g %g %g %g", x0, y0, x1, y1)
	}
}

func TestTextBaseline(t *testing.T) {
	txt := Text{X: 10, Y: 10, Size: 10, HAlign: AlignMiddle, VAlign: AlignEnd}
	x, y, dx, dy := txt.Baseline(20)
	if x != 0 || y != 10 || dx != 1 || dy != 0 {
		t.Errorf("unexpected horizontal baseline %g %g %g %g", x, y, dx, dy)
	}
	txt.Vertical = true
	x, y, dx, dy = txt.Baseline(20)
	if x != 10 || y != 20 || dx != 0 || dy != -1 {
		t.Errorf("unexpected vertical baseline %g %g %g %g", x, y, dx, dy)
	}
}
