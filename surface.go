package lumen

import (
	"image"
	"math"
)

// Viewport is the size of a drawing surface in CSS pixels plus the device
// pixel ratio it is rasterized at.
type Viewport struct {
	Width, Height float64
	Ratio         float64
}

// PixelSize returns the backing store size in device pixels, at least 1x1.
func (v Viewport) PixelSize() (int, int) {
	r := v.Ratio
	if r <= 0 {
		r = 1
	}
	w := max(1, int(math.Floor(v.Width*r)))
	h := max(1, int(math.Floor(v.Height*r)))
	return w, h
}

// Center returns the middle of the viewport in CSS pixels.
func (v Viewport) Center() Vec2 {
	return Vec2{X: v.Width / 2, Y: v.Height / 2}
}

// Surface is the 2D raster the effects draw into. Coordinates passed to
// DrawImage are CSS pixels; implementations scale by the configured ratio.
//
// Implementations: RasterSurface (software), ebitenhost.Surface and
// termhost.CellSurface.
type Surface interface {
	// Configure resizes the backing store for v. Called whenever the host
	// reports a new size or pixel ratio.
	Configure(v Viewport)
	// Clear erases the whole surface to transparent.
	Clear()
	// SetComposite selects how subsequent draws combine with the surface.
	SetComposite(m CompositeMode)
	// DrawImage draws src stretched over dst with the given opacity.
	DrawImage(src image.Image, dst Rect, alpha float64)
}
