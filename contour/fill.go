package contour

import (
	"image"
	"image/color"
	"math"

	"gonum.org/v1/plot/palette"
)

// Grid is a square sampling of a function: At(i, j) is the
// value at (X(j), Y(i)), with X and Y increasing.
// *plotdata.Grid implements it.
type Grid interface {
	Size() int
	At(i, j int) float64
	X(j int) float64
	Y(i int) float64
}

// BandColors returns one color per band delimited by levels,
// sampled evenly in the color map and made transparent by alpha.
func BandColors(levels []float64, cmap palette.ColorMap, alpha float64) []color.NRGBA {
	bands := len(levels) - 1
	if bands < 1 {
		return nil
	}
	out := make([]color.NRGBA, bands)
	lo, hi := cmap.Min(), cmap.Max()
	for k := range out {
		t := 0.5
		if bands > 1 {
			t = float64(k) / float64(bands-1)
		}
		c, err := cmap.At(lo + t*(hi-lo))
		if err != nil { // only raised for out of range values
			c = color.Black
		}
		nc := color.NRGBAModel.Convert(c).(color.NRGBA)
		nc.A = uint8(math.Round(float64(nc.A) * alpha))
		out[k] = nc
	}
	return out
}

// Fill paints each grid sample with the color of its band,
// giving a filled contour with one pixel per sample.
// The first image row is the largest Y, so that the image can be
// drawn directly over the plot area.
// NaN samples are left transparent.
func Fill(g Grid, levels []float64, colors []color.NRGBA) *image.NRGBA {
	n := g.Size()
	img := image.NewNRGBA(image.Rect(0, 0, n, n))
	if len(colors) == 0 || len(colors) != len(levels)-1 {
		return img
	}
	for i := 0; i < n; i++ {
		row := n - 1 - i
		for j := 0; j < n; j++ {
			v := g.At(i, j)
			if math.IsNaN(v) {
				continue
			}
			img.SetNRGBA(j, row, colors[band(levels, v)])
		}
	}
	return img
}
