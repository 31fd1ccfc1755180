package plotpdf

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/benoitkugler/svmplot/figure"
	"github.com/jung-kurt/gofpdf"
)

// textFont is one of the standard PDF fonts, so
// that no font file is needed.
const textFont = "Helvetica"

// DrawText writes one line of text, rotated if needed.
func (r *Renderer) DrawText(t figure.Text) {
	if t.Content == "" || t.Size <= 0 {
		return
	}
	var c color.Color = color.Black
	if t.Color != nil {
		c = t.Color
	}
	red, green, blue, alpha := rgb(c)

	content := r.tr(t.Content)
	r.pdf.SetFont(textFont, "", t.Size)
	r.pdf.SetTextColor(red, green, blue)
	r.pdf.SetAlpha(alpha, "Normal")
	x, y, _, _ := t.Baseline(r.pdf.GetStringWidth(content))
	if t.Vertical {
		r.pdf.TransformBegin()
		r.pdf.TransformRotate(90, x, y)
		r.pdf.Text(x, y, content)
		r.pdf.TransformEnd()
		return
	}
	r.pdf.Text(x, y, content)
}

// DrawImage embeds img as a PNG image, preserving
// its transparency.
func (r *Renderer) DrawImage(img image.Image, dst figure.Bounds) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		r.pdf.SetError(err)
		return
	}
	r.images++
	name := fmt.Sprintf("image%d", r.images)
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	r.pdf.RegisterImageOptionsReader(name, opts, &buf)
	r.pdf.SetAlpha(1, "Normal")
	r.pdf.ImageOptions(name, dst.X, dst.Y, dst.W, dst.H, false, opts, 0, "")
}
