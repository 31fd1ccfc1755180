//go:build cgo

package viewer

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Show opens a window displaying img, and blocks until
// the window is closed or Escape is pressed.
func Show(title string, img image.Image) error {
	g := &plotWindow{img: ebiten.NewImageFromImage(img), size: img.Bounds().Size()}

	sw, sh := ebiten.Monitor().Size()
	// leave room for the window decorations
	w, h := fitWindow(g.size.X, g.size.Y, sw*9/10, sh*9/10)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}

type plotWindow struct {
	img  *ebiten.Image
	size image.Point
}

func (g *plotWindow) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (g *plotWindow) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.img, nil)
}

// the plot is scaled to the window by ebiten
func (g *plotWindow) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size.X, g.size.Y
}
