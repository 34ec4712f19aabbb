// Package ebitenhost runs lumen effects inside an Ebitengine window.
package ebitenhost

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/lumen"
)

// Surface is a lumen.Surface backed by an *ebiten.Image. Source images are
// uploaded once and cached by identity.
type Surface struct {
	image *ebiten.Image
	view  lumen.Viewport
	mode  lumen.CompositeMode
	cache map[image.Image]*ebiten.Image
	draws int
}

// NewSurface creates an unconfigured surface. Configure must be called
// before drawing; until then every call is a no-op.
func NewSurface() *Surface {
	return &Surface{cache: make(map[image.Image]*ebiten.Image)}
}

// Image returns the backing image, or nil before Configure.
func (s *Surface) Image() *ebiten.Image { return s.image }

// Viewport returns the configured geometry.
func (s *Surface) Viewport() lumen.Viewport { return s.view }

// Draws returns the number of DrawImage calls since the last Clear.
func (s *Surface) Draws() int { return s.draws }

// Configure reallocates the backing image when the pixel size changes.
func (s *Surface) Configure(v lumen.Viewport) {
	w, h := v.PixelSize()
	s.view = v
	if s.image != nil {
		if b := s.image.Bounds(); b.Dx() == w && b.Dy() == h {
			s.image.Clear()
			return
		}
		s.image.Deallocate()
	}
	s.image = ebiten.NewImage(w, h)
}

// Clear fills the image with transparent black.
func (s *Surface) Clear() {
	if s.image == nil {
		return
	}
	s.image.Clear()
	s.draws = 0
}

// SetComposite selects the blend for subsequent draws.
func (s *Surface) SetComposite(m lumen.CompositeMode) { s.mode = m }

// DrawImage stretches src over dst, given in CSS pixels.
func (s *Surface) DrawImage(src image.Image, dst lumen.Rect, alpha float64) {
	if s.image == nil || src == nil || alpha <= 0 || dst.Width <= 0 || dst.Height <= 0 {
		return
	}
	img := s.upload(src)
	b := img.Bounds()
	r := s.view.Ratio
	if r <= 0 {
		r = 1
	}

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(dst.Width*r/float64(b.Dx()), dst.Height*r/float64(b.Dy()))
	op.GeoM.Translate(dst.X*r, dst.Y*r)
	op.ColorScale.ScaleAlpha(float32(min(alpha, 1)))
	op.Blend = Blend(s.mode)
	op.Filter = ebiten.FilterLinear
	s.image.DrawImage(img, &op)
	s.draws++
}

// upload returns the GPU copy of src, creating it on first use.
func (s *Surface) upload(src image.Image) *ebiten.Image {
	if img, ok := src.(*ebiten.Image); ok {
		return img
	}
	if img, ok := s.cache[src]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(src)
	s.cache[src] = img
	return img
}

// Dispose releases the backing image and every cached upload.
func (s *Surface) Dispose() {
	if s.image != nil {
		s.image.Deallocate()
		s.image = nil
	}
	for k, img := range s.cache {
		img.Deallocate()
		delete(s.cache, k)
	}
}

// Blend returns the ebiten.Blend for a lumen compositing mode.
func Blend(m lumen.CompositeMode) ebiten.Blend {
	switch m {
	case lumen.CompositeAdd:
		return ebiten.BlendLighter
	default:
		return ebiten.BlendSourceOver
	}
}
