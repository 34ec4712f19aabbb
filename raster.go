package lumen

import (
	"image"
	"image/color"
	"math"
)

// RasterSurface is a software Surface backed by a premultiplied *image.RGBA.
// It is used for headless simulation, snapshots and tests.
type RasterSurface struct {
	img   *image.RGBA
	view  Viewport
	mode  CompositeMode
	fill  Color
	draws int
}

// NewRasterSurface creates a surface sized for v.
func NewRasterSurface(v Viewport) *RasterSurface {
	s := &RasterSurface{}
	s.Configure(v)
	return s
}

// Configure reallocates the backing image for v.
func (s *RasterSurface) Configure(v Viewport) {
	if s == nil {
		return
	}
	w, h := v.PixelSize()
	s.view = v
	if s.img == nil || s.img.Rect.Dx() != w || s.img.Rect.Dy() != h {
		s.img = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	s.Clear()
}

// SetBackground sets the color Clear fills with. The default is transparent.
func (s *RasterSurface) SetBackground(c Color) {
	if s == nil {
		return
	}
	s.fill = c
}

// Clear fills the surface with the background color.
func (s *RasterSurface) Clear() {
	if s == nil || s.img == nil {
		return
	}
	px := s.fill.RGBA()
	for i := 0; i < len(s.img.Pix); i += 4 {
		s.img.Pix[i] = px.R
		s.img.Pix[i+1] = px.G
		s.img.Pix[i+2] = px.B
		s.img.Pix[i+3] = px.A
	}
	s.draws = 0
}

// SetComposite selects the compositing mode for subsequent draws.
func (s *RasterSurface) SetComposite(m CompositeMode) {
	if s == nil {
		return
	}
	s.mode = m
}

// Composite returns the active compositing mode.
func (s *RasterSurface) Composite() CompositeMode { return s.mode }

// Draws returns the number of DrawImage calls since the last Clear.
func (s *RasterSurface) Draws() int { return s.draws }

// Image returns the backing image. The pixels are premultiplied.
func (s *RasterSurface) Image() *image.RGBA { return s.img }

// Viewport returns the configured geometry.
func (s *RasterSurface) Viewport() Viewport { return s.view }

// DrawImage stretches src over dst (CSS pixels) using nearest sampling.
func (s *RasterSurface) DrawImage(src image.Image, dst Rect, alpha float64) {
	if s == nil || s.img == nil || src == nil || alpha <= 0 {
		return
	}
	s.draws++
	ratio := s.view.Ratio
	if ratio <= 0 {
		ratio = 1
	}
	x0 := dst.X * ratio
	y0 := dst.Y * ratio
	w := dst.Width * ratio
	h := dst.Height * ratio
	if w <= 0 || h <= 0 {
		return
	}

	sb := src.Bounds()
	bounds := s.img.Rect
	minX := max(bounds.Min.X, int(math.Floor(x0)))
	minY := max(bounds.Min.Y, int(math.Floor(y0)))
	maxX := min(bounds.Max.X, int(math.Ceil(x0+w)))
	maxY := min(bounds.Max.Y, int(math.Ceil(y0+h)))
	a := clamp01(alpha)

	for py := minY; py < maxY; py++ {
		v := (float64(py) + 0.5 - y0) / h
		if v < 0 || v >= 1 {
			continue
		}
		sy := sb.Min.Y + int(v*float64(sb.Dy()))
		for px := minX; px < maxX; px++ {
			u := (float64(px) + 0.5 - x0) / w
			if u < 0 || u >= 1 {
				continue
			}
			sx := sb.Min.X + int(u*float64(sb.Dx()))
			s.blend(px, py, src.At(sx, sy), a)
		}
	}
}

// blend writes one source pixel, scaled by alpha, using the active mode.
func (s *RasterSurface) blend(x, y int, c color.Color, alpha float64) {
	r, g, b, a := c.RGBA()
	sr := float64(r) / 0xffff * alpha
	sg := float64(g) / 0xffff * alpha
	sb := float64(b) / 0xffff * alpha
	sa := float64(a) / 0xffff * alpha
	if sa <= 0 {
		return
	}

	i := s.img.PixOffset(x, y)
	p := s.img.Pix[i : i+4 : i+4]
	dr := float64(p[0]) / 255
	dg := float64(p[1]) / 255
	db := float64(p[2]) / 255
	da := float64(p[3]) / 255

	switch s.mode {
	case CompositeAdd:
		dr, dg, db, da = dr+sr, dg+sg, db+sb, da+sa
	default:
		k := 1 - sa
		dr, dg, db, da = sr+dr*k, sg+dg*k, sb+db*k, sa+da*k
	}
	p[0] = to8(dr)
	p[1] = to8(dg)
	p[2] = to8(db)
	p[3] = to8(da)
}

func to8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

// Luminance returns the mean brightness of the surface in [0, 1]. Useful for
// asserting that something was drawn.
func (s *RasterSurface) Luminance() float64 {
	if s == nil || s.img == nil || len(s.img.Pix) == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < len(s.img.Pix); i += 4 {
		sum += 0.2126*float64(s.img.Pix[i]) + 0.7152*float64(s.img.Pix[i+1]) + 0.0722*float64(s.img.Pix[i+2])
	}
	return sum / 255 / float64(len(s.img.Pix)/4)
}
