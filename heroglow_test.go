package lumen

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

func TestHeroGlowBadColor(t *testing.T) {
	cfg := DefaultHeroGlowConfig()
	cfg.Color = "plaid"
	if _, err := NewHeroGlow(cfg, 60); !errors.Is(err, ErrBadColor) {
		t.Errorf("err = %v, want ErrBadColor", err)
	}
}

func TestHeroGlowFade(t *testing.T) {
	h, err := NewHeroGlow(DefaultHeroGlowConfig(), 60)
	if err != nil {
		t.Fatal(err)
	}
	h.Resize(800, 600, 1)
	h.PointerMove(100, 100)
	for i := 0; i < 30; i++ {
		h.Update(1.0 / 60)
	}
	if !near(h.Opacity(), 1) {
		t.Errorf("opacity after hover = %v, want 1", h.Opacity())
	}
	h.PointerLeave()
	for i := 0; i < 30; i++ {
		h.Update(1.0 / 60)
	}
	if !near(h.Opacity(), 0) {
		t.Errorf("opacity after leave = %v, want 0", h.Opacity())
	}
}

func TestHeroGlowFollowsPointer(t *testing.T) {
	h, _ := NewHeroGlow(DefaultHeroGlowConfig(), 60)
	h.Resize(800, 600, 1)
	h.PointerMove(100, 100)
	if h.Position() != (Vec2{100, 100}) {
		t.Errorf("first move should snap, got %v", h.Position())
	}
	h.PointerMove(300, 200)
	h.Update(1.0 / 60)
	if p := h.Position(); p.X <= 100 || p.X >= 300 {
		t.Errorf("spring should be between start and target, got %v", p)
	}
	for i := 0; i < 300; i++ {
		h.Update(1.0 / 60)
	}
	if p := h.Position(); math.Abs(p.X-300) > 0.5 || math.Abs(p.Y-200) > 0.5 {
		t.Errorf("position = %v, want settled at (300, 200)", p)
	}
}

func TestHeroGlowDraw(t *testing.T) {
	h, _ := NewHeroGlow(DefaultHeroGlowConfig(), 60)
	view := h.Resize(200, 200, 1)
	s := NewRasterSurface(view)

	h.Draw(s)
	if got := s.Image().RGBAAt(100, 100); got != (color.RGBA{0x0a, 0x16, 0x28, 0xff}) {
		t.Errorf("idle center = %+v, want backdrop", got)
	}

	h.PointerMove(100, 100)
	for i := 0; i < 30; i++ {
		h.Update(1.0 / 60)
	}
	h.Draw(s)
	center := s.Image().RGBAAt(100, 100)
	corner := s.Image().RGBAAt(0, 0)
	if center.B <= corner.B {
		t.Errorf("spot not brighter than backdrop: center %+v corner %+v", center, corner)
	}
}
