package chart

import (
	"errors"
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// ErrUnknownColorMap is returned by ColorMap for unsupported names.
var ErrUnknownColorMap = errors.New("unknown color map")

// DefaultColorMap is used when no color map is given.
const DefaultColorMap = "kindlmann"

var colorMaps = map[string]func() palette.ColorMap{
	"bwr":                func() palette.ColorMap { return moreland.SmoothBlueRed() },
	"kindlmann":          moreland.Kindlmann,
	"extended-kindlmann": moreland.ExtendedKindlmann,
	"blackbody":          moreland.BlackBody,
	"extended-blackbody": moreland.ExtendedBlackBody,
	"purple-orange":      func() palette.ColorMap { return moreland.SmoothPurpleOrange() },
	// perceptually uniform, the closest to matplotlib's default
	"viridis": moreland.Kindlmann,
}

// ColorMapNames returns the supported color map names, sorted.
func ColorMapNames() []string {
	out := make([]string, 0, len(colorMaps))
	for name := range colorMaps {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// ColorMap returns a new color map, normalized to [0, 1].
// An empty name selects DefaultColorMap.
func ColorMap(name string) (palette.ColorMap, error) {
	if name == "" {
		name = DefaultColorMap
	}
	fn, ok := colorMaps[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownColorMap, name)
	}
	cmap := fn()
	cmap.SetMin(0)
	cmap.SetMax(1)
	return cmap, nil
}

// colorMapOrDefault logs and falls back to the default map.
func colorMapOrDefault(name string) palette.ColorMap {
	cmap, err := ColorMap(name)
	if err != nil {
		slogger().Warn("color map fallback", "err", err, "default", DefaultColorMap)
		cmap, _ = ColorMap(DefaultColorMap)
	}
	return cmap
}

// labelColors maps the labels linearly over the whole color map,
// as scatter plots do.
type labelColors struct {
	cmap   palette.ColorMap
	lo, hi float64
}

func (lc labelColors) at(label float64) color.Color {
	t := 0.5
	if lc.hi > lc.lo {
		t = (label - lc.lo) / (lc.hi - lc.lo)
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	c, err := lc.cmap.At(lc.cmap.Min() + t*(lc.cmap.Max()-lc.cmap.Min()))
	if err != nil { // NaN label
		return color.Gray{Y: 128}
	}
	return c
}
