package plotraster

import (
	"image"
	"image/color"
	"math"

	"github.com/benoitkugler/svmplot/figure"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// fontCache keeps one face per (rounded) size
type fontCache struct {
	font  *opentype.Font
	faces map[fixed.Int26_6]font.Face
}

func newFontCache() *fontCache {
	// the embedded font is known to be valid
	f, _ := opentype.Parse(goregular.TTF)
	return &fontCache{font: f, faces: make(map[fixed.Int26_6]font.Face)}
}

// face returns nil if the font can't be used
func (fc *fontCache) face(size float64) font.Face {
	key := fixed.Int26_6(math.Round(size * 64))
	if face, ok := fc.faces[key]; ok {
		return face
	}
	if fc.font == nil || key <= 0 {
		return nil
	}
	face, err := opentype.NewFace(fc.font, &opentype.FaceOptions{
		Size:    float64(key) / 64,
		DPI:     72, // sizes are already in pixels
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil
	}
	fc.faces[key] = face
	return face
}

func fixedToF(v fixed.Int26_6) float64 { return float64(v) / 64 }

// DrawText draws one line of text, with the Go Regular font.
func (rd *Renderer) DrawText(t figure.Text) {
	face := rd.fonts.face(t.Size)
	if face == nil || t.Content == "" {
		return
	}
	width := fixedToF(font.MeasureString(face, t.Content))
	x, y, _, _ := t.Baseline(width)
	var c color.Color = color.Black
	if t.Color != nil {
		c = t.Color
	}
	src := image.NewUniform(c)

	if !t.Vertical {
		d := font.Drawer{Dst: rd.img, Src: src, Face: face, Dot: fixed.P(int(math.Round(x)), int(math.Round(y)))}
		d.DrawString(t.Content)
		return
	}

	// render horizontally, then rotate by 90 degrees counter-clockwise
	metrics := face.Metrics()
	ascent, descent := metrics.Ascent.Ceil(), metrics.Descent.Ceil()
	w, h := int(math.Ceil(width))+1, ascent+descent
	tmp := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{Dst: tmp, Src: src, Face: face, Dot: fixed.P(0, ascent)}
	d.DrawString(t.Content)

	rotated := rotateLeft(tmp)
	// the baseline start (0, ascent) of tmp goes to (x, y)
	origin := image.Pt(int(math.Round(x))-ascent, int(math.Round(y))-w+1)
	draw.Draw(rd.img, rotated.Bounds().Add(origin), rotated, image.Point{}, draw.Over)
}

// rotateLeft returns img rotated by 90 degrees counter-clockwise:
// the pixel (u, v) goes to (v, W-1-u).
func rotateLeft(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dy(), b.Dx()))
	for v := 0; v < b.Dy(); v++ {
		for u := 0; u < b.Dx(); u++ {
			out.SetRGBA(v, b.Dx()-1-u, img.RGBAAt(b.Min.X+u, b.Min.Y+v))
		}
	}
	return out
}
