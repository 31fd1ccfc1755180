//go:build !cgo

package viewer

import "image"

// Show always returns ErrNoDisplay: the window backend requires cgo.
func Show(title string, img image.Image) error {
	return ErrNoDisplay
}
