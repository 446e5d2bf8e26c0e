// Package window presents frames in a desktop window and drives the frame
// loop from the window's update tick.
package window

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"spincube/internal/host"
	"spincube/internal/postprocess"
)

// Surface is the drawable the window presents and resizes.
type Surface interface {
	Resize(w, h int)
	Image() *image.NRGBA
}

// Config sizes and titles the desktop window.
type Config struct {
	Title  string
	Width  int
	Height int
	Hz     int
}

// Run opens a resizable window and fires one pending frame per tick.
// The window's layout size is the viewport. It blocks until the window closes
// or no frame is scheduled.
func Run(cfg Config, loop *host.Loop, surface Surface) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	g := &game{loop: loop, surface: surface}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Hz)
	return ebiten.RunGame(g)
}

type game struct {
	loop    *host.Loop
	surface Surface
	fbImg   *ebiten.Image
}

func (g *game) Update() error {
	if !g.loop.RunPending() {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	frame := g.surface.Image()
	b := frame.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != b.Dx() || g.fbImg.Bounds().Dy() != b.Dy() {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.fbImg.WritePixels(postprocess.ToRGBA(frame).Pix)
	screen.DrawImage(g.fbImg, nil)
}

// Layout forwards the window size to the surface, like a resize handler.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.surface.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
