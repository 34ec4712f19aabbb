package lumen

import (
	"image"
	"image/color"
	"testing"
)

func solid(c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestRasterAdditiveBrightens(t *testing.T) {
	s := NewRasterSurface(Viewport{Width: 4, Height: 4, Ratio: 1})
	src := solid(color.NRGBA{R: 100, A: 255})

	s.SetComposite(CompositeAdd)
	s.DrawImage(src, Rect{Width: 4, Height: 4}, 1)
	s.DrawImage(src, Rect{Width: 4, Height: 4}, 1)
	if r := s.Image().RGBAAt(1, 1).R; r != 200 {
		t.Errorf("additive red = %d, want 200", r)
	}

	s.Clear()
	s.SetComposite(CompositeNormal)
	s.DrawImage(src, Rect{Width: 4, Height: 4}, 1)
	s.DrawImage(src, Rect{Width: 4, Height: 4}, 1)
	if r := s.Image().RGBAAt(1, 1).R; r != 100 {
		t.Errorf("source-over red = %d, want 100", r)
	}
}

func TestRasterRatioScalesDestination(t *testing.T) {
	s := NewRasterSurface(Viewport{Width: 10, Height: 10, Ratio: 2})
	if b := s.Image().Rect; b.Dx() != 20 || b.Dy() != 20 {
		t.Fatalf("backing = %v, want 20x20", b)
	}
	s.DrawImage(solid(color.NRGBA{G: 255, A: 255}), Rect{X: 5, Y: 5, Width: 5, Height: 5}, 1)
	if s.Image().RGBAAt(9, 9).G != 0 {
		t.Error("drew outside the scaled rect")
	}
	if s.Image().RGBAAt(10, 10).G != 255 {
		t.Error("scaled rect not drawn")
	}
}

func TestRasterAlphaAndClipping(t *testing.T) {
	s := NewRasterSurface(Viewport{Width: 4, Height: 4, Ratio: 1})
	s.DrawImage(solid(color.NRGBA{B: 255, A: 255}), Rect{X: -10, Y: -10, Width: 100, Height: 100}, 0.5)
	px := s.Image().RGBAAt(0, 0)
	if px.B != 128 || px.A != 128 {
		t.Errorf("half alpha pixel = %+v", px)
	}
	s.DrawImage(nil, Rect{Width: 1, Height: 1}, 1)
	s.DrawImage(solid(color.NRGBA{A: 255}), Rect{Width: 1, Height: 1}, 0)
	if s.Draws() != 1 {
		t.Errorf("draws = %d, want 1", s.Draws())
	}
}

func TestRasterBackground(t *testing.T) {
	s := NewRasterSurface(Viewport{Width: 2, Height: 2, Ratio: 1})
	s.SetBackground(MustParseColor("#0a1628"))
	s.Clear()
	if got := s.Image().RGBAAt(0, 0); got != (color.RGBA{0x0a, 0x16, 0x28, 0xff}) {
		t.Errorf("background = %+v", got)
	}
}

func TestNilRasterIsNoop(t *testing.T) {
	var s *RasterSurface
	s.Configure(Viewport{Width: 1, Height: 1})
	s.Clear()
	s.SetComposite(CompositeAdd)
	s.DrawImage(solid(color.NRGBA{A: 255}), Rect{Width: 1, Height: 1}, 1)
	if s.Luminance() != 0 {
		t.Error("nil surface has luminance")
	}
}

func TestGlowSpriteRamp(t *testing.T) {
	img := GlowSprite(ColorWhite)
	center := img.NRGBAAt(SpriteSize/2, SpriteSize/2).A
	mid := img.NRGBAAt(SpriteSize/2+SpriteSize/4, SpriteSize/2).A
	edge := img.NRGBAAt(0, 0).A
	if !(center > mid && mid > edge) {
		t.Errorf("ramp not decreasing: center %d mid %d corner %d", center, mid, edge)
	}
	if edge != 0 {
		t.Errorf("corner alpha = %d, want 0", edge)
	}
}
