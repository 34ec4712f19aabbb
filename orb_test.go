package lumen

import (
	"math"
	"testing"
)

func dist(a, b Vec2) float64 { return math.Hypot(a.X-b.X, a.Y-b.Y) }

func TestOrbGeometry(t *testing.T) {
	g := NewOrbGeometry([]string{"JS", "TS"})
	if g.GlowRadius != 96 || len(g.Rings) != 3 {
		t.Errorf("glow %v rings %v", g.GlowRadius, g.Rings)
	}
	for i, h := range g.Hexes {
		if d := dist(h.Center, orbCenter); !near(d, orbHexRing) {
			t.Errorf("hex %d at radius %v", i, d)
		}
		for k, p := range h.Points {
			if d := dist(p, h.Center); !near(d, orbHexRadius) {
				t.Errorf("hex %d point %d at %v from center", i, k, d)
			}
		}
	}
	if g.Hexes[0].Label != "JS" || g.Hexes[1].Label != "TS" || g.Hexes[2].Label != "" {
		t.Errorf("labels = %q %q %q", g.Hexes[0].Label, g.Hexes[1].Label, g.Hexes[2].Label)
	}
	for _, tri := range g.Triangles {
		for _, p := range tri {
			if !near(dist(p, orbCenter), orbTriRadius) {
				t.Errorf("triangle vertex off radius: %v", p)
			}
		}
	}
	for _, p := range g.OuterNodes {
		if !near(dist(p, orbCenter), orbOuterOrbit) {
			t.Errorf("outer node off orbit: %v", p)
		}
	}
	for _, p := range g.InnerNodes {
		if !near(dist(p, orbCenter), orbInnerOrbit) {
			t.Errorf("inner node off orbit: %v", p)
		}
	}
}

func TestOrbLabelsTruncated(t *testing.T) {
	cfg := DefaultOrbConfig()
	cfg.HexLabels = []string{"1", "2", "3", "4", "5", "6", "7", "8"}
	g := NewOrb(cfg, 60).Geometry()
	if g.Hexes[5].Label != "6" {
		t.Errorf("last hex label = %q", g.Hexes[5].Label)
	}
}

func TestOrbPosedRotation(t *testing.T) {
	g := NewOrbGeometry(nil)
	same := g.Posed(OrbPose{})
	if same.Hexes[0].Center != g.Hexes[0].Center {
		t.Error("zero pose moved the geometry")
	}
	turned := g.Posed(OrbPose{HexSpin: 60})
	if d := dist(turned.Hexes[0].Center, g.Hexes[1].Center); d > 1e-9 {
		t.Errorf("60 degree spin should land hex 0 on hex 1, off by %v", d)
	}
}

func TestOrbSpringSettlesOnPointer(t *testing.T) {
	o := NewOrb(DefaultOrbConfig(), 60)
	view := Viewport{Width: 400, Height: 200, Ratio: 1}
	o.PointerMove(1000, 100, view)
	if o.Target() != (Vec2{1, 0}) {
		t.Fatalf("target = %v, want clamped (1, 0)", o.Target())
	}
	for i := 0; i < 300; i++ {
		o.Update(1.0 / 60)
	}
	p := o.Pose()
	if math.Abs(p.TranslateX-8) > 0.05 || math.Abs(p.TranslateY) > 0.05 {
		t.Errorf("translate = (%v, %v), want (8, 0)", p.TranslateX, p.TranslateY)
	}
	if math.Abs(p.OuterTilt-3) > 0.05 || math.Abs(p.InnerTilt+2.4) > 0.05 {
		t.Errorf("tilt = %v / %v, want 3 / -2.4", p.OuterTilt, p.InnerTilt)
	}
}

func TestOrbSpins(t *testing.T) {
	o := NewOrb(DefaultOrbConfig(), 60)
	o.Update(4)
	p := o.Pose()
	if math.Abs(p.TriSpin+90) > 0.01 {
		t.Errorf("triangle spin after 4s = %v, want -90", p.TriSpin)
	}
	if math.Abs(p.InnerSpin+180) > 0.01 {
		t.Errorf("inner orbit spin after 4s = %v, want -180", p.InnerSpin)
	}
	for i := 0; i < 120; i++ {
		o.Update(0.25)
	}
	p = o.Pose()
	if p.HexSpin < 0 || p.HexSpin > 360 || p.TriSpin > 0 || p.TriSpin < -360 {
		t.Errorf("looping spins out of range: %+v", p)
	}
}

func TestOrbSize(t *testing.T) {
	o := NewOrb(DefaultOrbConfig(), 60)
	if o.Size(1000) != 420 || o.Size(300) != 300 {
		t.Error("Size should cap at MaxSize")
	}
}
