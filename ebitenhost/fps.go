package ebitenhost

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/lumen"
)

// fpsOverlay shows FPS, TPS and the glow's live blob count, refreshed about
// twice a second.
type fpsOverlay struct {
	img  *ebiten.Image
	last float64
}

func newFPSOverlay() *fpsOverlay {
	// 120x48 fits three short lines of debug text
	return &fpsOverlay{img: ebiten.NewImage(120, 48), last: 0.5}
}

func (o *fpsOverlay) update(dt float64, f *lumen.Field) {
	o.last += dt
	if o.last < 0.5 {
		return
	}
	o.last = 0

	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nBlobs: %d/%d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), f.Alive(), f.Cap()))
}

func (o *fpsOverlay) draw(dst *ebiten.Image) {
	dst.DrawImage(o.img, nil)
}
