package lumen

import (
	"image"
	"image/color"
	"math"
)

// SpriteSize is the edge length of generated glow sprites. Surfaces stretch
// the sprite to each blob's diameter.
const SpriteSize = 128

// GradientStop is a point on a radial alpha ramp. Offset is 0 at the center and
// 1 at the edge of the sprite.
type GradientStop struct {
	Offset float64
	Alpha  float64
}

// GlowStops is the ramp used for field blobs.
var GlowStops = []GradientStop{{0, 1}, {0.5, 0.25}, {1, 0}}

// SpotStops is the ramp used for the hero glow spot: solid at the center,
// transparent from 70% out.
var SpotStops = []GradientStop{{0, 1}, {0.7, 0}}

// GlowSprite renders the blob sprite for c. The color's own alpha is replaced
// by the ramp.
func GlowSprite(c Color) *image.NRGBA {
	return RadialSprite(c, SpriteSize, GlowStops)
}

// RadialSprite rasterizes a size x size radial gradient of c following stops.
func RadialSprite(c Color, size int, stops []GradientStop) *image.NRGBA {
	if size < 1 {
		size = 1
	}
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	half := float64(size) / 2
	r8 := uint8(clamp01(c.R)*255 + 0.5)
	g8 := uint8(clamp01(c.G)*255 + 0.5)
	b8 := uint8(clamp01(c.B)*255 + 0.5)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - half
			dy := float64(y) + 0.5 - half
			a := rampAt(stops, math.Hypot(dx, dy)/half)
			img.SetNRGBA(x, y, color.NRGBA{R: r8, G: g8, B: b8, A: uint8(a*255 + 0.5)})
		}
	}
	return img
}

// rampAt evaluates stops at offset t, holding the end values outside the ramp.
func rampAt(stops []GradientStop, t float64) float64 {
	if len(stops) == 0 {
		return 0
	}
	if t <= stops[0].Offset {
		return clamp01(stops[0].Alpha)
	}
	for i := 1; i < len(stops); i++ {
		lo, hi := stops[i-1], stops[i]
		if t <= hi.Offset {
			span := hi.Offset - lo.Offset
			if span <= 0 {
				return clamp01(hi.Alpha)
			}
			return clamp01(lerp(lo.Alpha, hi.Alpha, (t-lo.Offset)/span))
		}
	}
	return clamp01(stops[len(stops)-1].Alpha)
}
