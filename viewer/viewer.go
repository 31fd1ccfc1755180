// Package viewer shows a rendered plot in a desktop window.
package viewer

import "errors"

// ErrNoDisplay is returned when the program was built
// without window support.
var ErrNoDisplay = errors.New("no display available")

// maxWindowSize bounds the initial window size when the
// screen size is not known.
const maxWindowSize = 1000

// fitWindow scales (w, h) down, keeping its ratio,
// so that it fits in (maxW, maxH).
func fitWindow(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 {
		return maxW, maxH
	}
	if maxW <= 0 || maxH <= 0 {
		maxW, maxH = maxWindowSize, maxWindowSize
	}
	if w <= maxW && h <= maxH {
		return w, h
	}
	scale := min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	return max(1, int(float64(w)*scale+0.5)), max(1, int(float64(h)*scale+0.5))
}
