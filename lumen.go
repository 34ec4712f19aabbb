package lumen

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when a surface writes pixels.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// ErrBadColor is returned by ParseColor for strings it cannot interpret.
var ErrBadColor = errors.New("lumen: unrecognized color")

// ParseColor accepts "#rgb", "#rrggbb", "#rrggbbaa", "rgb(r,g,b)" and
// "rgba(r,g,b,a)" with 0-255 channels and a 0-1 alpha.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseFunc(s[len("rgba("):len(s)-1], 4)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseFunc(s[len("rgb("):len(s)-1], 3)
	}
	return Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
}

// MustParseColor is like ParseColor but panics on error. Intended for
// package-level palette literals.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(s string) (Color, error) {
	alpha := 1.0
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

func parseFunc(body string, want int) (Color, error) {
	parts := strings.Split(body, ",")
	if len(parts) != want {
		return Color{}, fmt.Errorf("%w: %d components", ErrBadColor, len(parts))
	}
	var v [4]float64
	v[3] = 1
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrBadColor, p)
		}
		if i < 3 {
			f /= 255
		}
		v[i] = clamp01(f)
	}
	return Color{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// Lerp blends the color channels of c toward o by t in RGB space. Alpha is
// interpolated linearly.
func (c Color) Lerp(o Color, t float64) Color {
	m := colorful.Color{R: c.R, G: c.G, B: c.B}.BlendRgb(colorful.Color{R: o.R, G: o.G, B: o.B}, t).Clamped()
	return Color{R: m.R, G: m.G, B: m.B, A: lerp(c.A, o.A, t)}
}

// Hex formats the color channels as "#rrggbb", dropping alpha.
func (c Color) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

// RGBA returns the premultiplied 8-bit form of c.
func (c Color) RGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Range is a general-purpose min/max range.
type Range struct {
	Min, Max float64
}

// Random returns a value in [Min, Max) drawn from rng.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Clamp limits v to [Min, Max].
func (r Range) Clamp(v float64) float64 {
	return max(r.Min, min(r.Max, v))
}

// CompositeMode selects how drawn pixels combine with the destination.
type CompositeMode uint8

const (
	CompositeNormal CompositeMode = iota // source-over (standard alpha blending)
	CompositeAdd                         // additive / lighter
)

func (m CompositeMode) String() string {
	switch m {
	case CompositeNormal:
		return "normal"
	case CompositeAdd:
		return "add"
	default:
		return fmt.Sprintf("CompositeMode(%d)", uint8(m))
	}
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}
