package lumen

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const heroFadeDuration = 0.3

var (
	heroSpringFreq    = math.Sqrt(150)
	heroSpringDamping = 25 / (2 * math.Sqrt(150))
)

// HeroGlow is a soft spot of light over a solid backdrop that trails the
// pointer on a spring and fades in on hover.
type HeroGlow struct {
	cfg    HeroGlowConfig
	bg     Color
	sprite *image.NRGBA
	solid  *image.NRGBA

	spring harmonica.Spring
	x, y   float64
	vx, vy float64
	tx, ty float64
	seen   bool

	fade    *gween.Tween
	opacity float64
	target  float64

	view Viewport
}

// NewHeroGlow builds a hero glow stepping its spring at fps frames per second.
func NewHeroGlow(cfg HeroGlowConfig, fps int) (*HeroGlow, error) {
	bg, err := ParseColor(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("hero glow background: %w", err)
	}
	c, err := ParseColor(cfg.Color)
	if err != nil {
		return nil, fmt.Errorf("hero glow color: %w", err)
	}
	if fps <= 0 {
		fps = 60
	}
	solid := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	solid.SetNRGBA(0, 0, color.NRGBA{R: to8(bg.R), G: to8(bg.G), B: to8(bg.B), A: to8(bg.A)})

	return &HeroGlow{
		cfg:    cfg,
		bg:     bg,
		sprite: RadialSprite(c, SpriteSize, heroStops(cfg)),
		solid:  solid,
		spring: harmonica.NewSpring(harmonica.FPS(fps), heroSpringFreq, heroSpringDamping),
		view:   Viewport{Ratio: 1},
	}, nil
}

// heroStops softens the spot edge in proportion to the blur radius.
func heroStops(cfg HeroGlowConfig) []GradientStop {
	if cfg.Size <= 0 || cfg.Blur <= 0 {
		return SpotStops
	}
	knee := clamp01(1 - 2*cfg.Blur/cfg.Size)
	return []GradientStop{{0, 1}, {knee, 0.6}, {1, 0}}
}

// Config returns the glow's settings.
func (h *HeroGlow) Config() HeroGlowConfig { return h.cfg }

// Resize records the surface geometry.
func (h *HeroGlow) Resize(width, height, ratio float64) Viewport {
	if ratio <= 0 {
		ratio = 1
	}
	h.view = Viewport{Width: max(0, width), Height: max(0, height), Ratio: ratio}
	if !h.seen {
		c := h.view.Center()
		h.x, h.y, h.tx, h.ty = c.X, c.Y, c.X, c.Y
	}
	return h.view
}

// PointerMove retargets the spring and fades the spot in. The first move
// places the spot directly under the pointer.
func (h *HeroGlow) PointerMove(x, y float64) {
	if !h.seen {
		h.x, h.y = x, y
		h.seen = true
	}
	h.tx, h.ty = x, y
	h.fadeTo(1)
}

// PointerLeave fades the spot out where it is.
func (h *HeroGlow) PointerLeave() {
	h.fadeTo(0)
}

func (h *HeroGlow) fadeTo(v float64) {
	if h.target == v && h.fade != nil {
		return
	}
	h.target = v
	h.fade = gween.New(float32(h.opacity), float32(v), heroFadeDuration, ease.InOutQuad)
}

// Update steps the spring once and the fade by dt seconds.
func (h *HeroGlow) Update(dt float64) {
	h.x, h.vx = h.spring.Update(h.x, h.vx, h.tx)
	h.y, h.vy = h.spring.Update(h.y, h.vy, h.ty)
	if h.fade != nil {
		v, done := h.fade.Update(float32(dt))
		h.opacity = float64(v)
		if done {
			h.fade = nil
		}
	}
}

// Position returns the smoothed spot center.
func (h *HeroGlow) Position() Vec2 { return Vec2{X: h.x, Y: h.y} }

// Opacity returns the current fade level in [0, 1].
func (h *HeroGlow) Opacity() float64 { return h.opacity }

// Draw paints the backdrop and the spot onto s.
func (h *HeroGlow) Draw(s Surface) {
	s.Clear()
	s.SetComposite(CompositeNormal)
	s.DrawImage(h.solid, Rect{Width: h.view.Width, Height: h.view.Height}, 1)
	a := h.opacity * h.cfg.Intensity
	if a <= 0 {
		return
	}
	r := h.cfg.Size / 2
	s.DrawImage(h.sprite, Rect{X: h.x - r, Y: h.y - r, Width: h.cfg.Size, Height: h.cfg.Size}, a)
}
