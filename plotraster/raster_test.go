package plotraster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/benoitkugler/svmplot/figure"
)

func testFigure() *figure.Figure {
	fig := figure.New(100, 100)
	var rect, line figure.Path
	rect.AddRect(10, 10, 40, 40)
	line.AddLine(50, 90, 90, 50)
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < 4; i++ {
		img.SetNRGBA(i%2, i/2, color.NRGBA{G: 255, A: 128})
	}
	fig.Add(
		figure.Shape{Path: rect, Style: figure.FillStyle(color.NRGBA{R: 255, A: 255})},
		figure.Shape{Path: line, Style: figure.StrokeStyle(color.Black, 4)},
		figure.Raster{Image: img, Dst: figure.Bounds{X: 60, Y: 10, W: 30, H: 30}},
		figure.Text{Content: "title", X: 50, Y: 5, Size: 10, HAlign: figure.AlignMiddle, VAlign: figure.AlignStart},
		figure.Text{Content: "Y-axis", X: 5, Y: 50, Size: 8, HAlign: figure.AlignMiddle, Vertical: true},
	)
	return fig
}

func TestRender(t *testing.T) {
	img := Render(testFigure(), 144)
	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 200 {
		t.Fatalf("unexpected image size %v", img.Bounds())
	}
	if c := img.RGBAAt(50, 50); c != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("expected red inside the rectangle, got %v", c)
	}
	if c := img.RGBAAt(5, 190); c != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("expected a white background, got %v", c)
	}
	if c := img.RGBAAt(140, 140); c.R > 50 {
		t.Errorf("expected a dark line, got %v", c)
	}
	if c := img.RGBAAt(150, 50); c.G <= c.R || c.R == 255 {
		t.Errorf("expected the raster blended over white, got %v", c)
	}
}

func TestVerticalText(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	rd := NewRenderer(img, nil)
	rd.DrawText(figure.Text{Content: "long label", X: 50, Y: 90, Size: 12, VAlign: figure.AlignEnd, Vertical: true})
	// the text goes up from the anchor, at its left
	var minX, maxX, minY, maxY = 100, -1, 100, -1
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			if img.RGBAAt(x, y).A == 0 {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	if maxX < 0 {
		t.Fatal("nothing drawn")
	}
	if maxY > 90 || maxX > 53 || minY > 60 {
		t.Errorf("unexpected text box (%d, %d) (%d, %d)", minX, minY, maxX, maxY)
	}
	if maxY-minY <= maxX-minX {
		t.Errorf("text should be vertical: (%d, %d) (%d, %d)", minX, minY, maxX, maxY)
	}
}

func TestRotateLeft(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.SetRGBA(2, 0, color.RGBA{R: 255, A: 255})
	out := rotateLeft(img)
	if out.Bounds().Dx() != 2 || out.Bounds().Dy() != 3 {
		t.Fatalf("unexpected size %v", out.Bounds())
	}
	// top right corner goes to the top left
	if out.RGBAAt(0, 0).R != 255 {
		t.Errorf("unexpected rotation")
	}
}

func TestWritePNGFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "out.png")
	if err := WritePNGFile(name, testFigure(), 72); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 100 {
		t.Errorf("unexpected size %v", img.Bounds())
	}
}

func TestWritePNGFileEmpty(t *testing.T) {
	name := filepath.Join(t.TempDir(), "empty.png")
	if err := WritePNGFile(name, figure.New(0, 0), 72); err == nil {
		t.Fatal("expected an error for an empty image")
	}
	if _, err := os.Stat(name); !os.IsNotExist(err) {
		t.Errorf("expected no output file, got %v", err)
	}
}
