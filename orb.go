package lumen

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Orb geometry lives in a 200x200 view box centered on (100, 100).
const (
	OrbViewBox = 200.0

	orbGlowRadius  = 96.0
	orbHexRing     = 50.0
	orbHexRadius   = 8.0
	orbTriRadius   = 28.0
	orbOuterOrbit  = 48.0
	orbInnerOrbit  = 32.0
	orbCoreRadius  = 8.0
	orbCoreRing    = 14.0
	orbInnerTiltBy = 0.8
)

// Orb spring, matching a stiffness of 120 and damping of 20 at unit mass.
var (
	orbSpringFreq    = math.Sqrt(120)
	orbSpringDamping = 20 / (2 * math.Sqrt(120))
)

// Seconds per revolution of the idle spins.
const (
	hexSpinPeriod        = 26
	triSpinPeriod        = 16
	outerOrbitSpinPeriod = 12
	innerOrbitSpinPeriod = 8
)

var orbCenter = Vec2{X: OrbViewBox / 2, Y: OrbViewBox / 2}

// OrbHex is one labeled hexagon on the orb's middle ring.
type OrbHex struct {
	Center Vec2
	Angle  float64 // radians
	Points [6]Vec2
	Label  string
}

// OrbGeometry is the static wireframe of the neon network orb.
type OrbGeometry struct {
	GlowRadius float64
	Rings      []float64
	Hexes      [6]OrbHex
	Triangles  [3][3]Vec2
	OuterNodes [3]Vec2
	InnerNodes [2]Vec2
	CoreRadius float64
	CoreRing   float64
}

// NewOrbGeometry builds the wireframe with up to six hex labels.
func NewOrbGeometry(labels []string) OrbGeometry {
	g := OrbGeometry{
		GlowRadius: orbGlowRadius,
		Rings:      []float64{70, 50, 30},
		CoreRadius: orbCoreRadius,
		CoreRing:   orbCoreRing,
	}
	for i := range g.Hexes {
		a := float64(i) * math.Pi / 3
		h := OrbHex{Center: polar(orbCenter, orbHexRing, a), Angle: a}
		for k := range h.Points {
			h.Points[k] = polar(h.Center, orbHexRadius, a+float64(k)*math.Pi/3)
		}
		if i < len(labels) {
			h.Label = labels[i]
		}
		g.Hexes[i] = h
	}
	for i := range g.Triangles {
		a := float64(i) * 2 * math.Pi / 3
		for k := range g.Triangles[i] {
			g.Triangles[i][k] = polar(orbCenter, orbTriRadius, a+float64(k)*2*math.Pi/3)
		}
	}
	for i := range g.OuterNodes {
		g.OuterNodes[i] = polar(orbCenter, orbOuterOrbit, float64(i)*2*math.Pi/3)
	}
	for i := range g.InnerNodes {
		g.InnerNodes[i] = polar(orbCenter, orbInnerOrbit, float64(i)*math.Pi)
	}
	return g
}

// OrbPose is the animated state of the orb at one instant. Translation is in
// pixels; angles are in degrees, clockwise.
type OrbPose struct {
	TranslateX, TranslateY float64
	OuterTilt, InnerTilt   float64
	HexSpin, TriSpin       float64
	OuterSpin, InnerSpin   float64
}

// Posed returns a copy of g with the pose's rotations applied about the view
// center. Translation is left to the host.
func (g OrbGeometry) Posed(p OrbPose) OrbGeometry {
	out := g
	hexRot := p.OuterTilt + p.HexSpin
	for i := range out.Hexes {
		h := &out.Hexes[i]
		h.Center = rotateAbout(h.Center, orbCenter, hexRot)
		for k := range h.Points {
			h.Points[k] = rotateAbout(h.Points[k], orbCenter, hexRot)
		}
	}
	triRot := p.InnerTilt + p.TriSpin
	for i := range out.Triangles {
		for k := range out.Triangles[i] {
			out.Triangles[i][k] = rotateAbout(out.Triangles[i][k], orbCenter, triRot)
		}
	}
	for i := range out.OuterNodes {
		out.OuterNodes[i] = rotateAbout(out.OuterNodes[i], orbCenter, p.OuterSpin)
	}
	for i := range out.InnerNodes {
		out.InnerNodes[i] = rotateAbout(out.InnerNodes[i], orbCenter, p.InnerSpin)
	}
	return out
}

// Orb animates the geometry: a spring-smoothed pointer drives parallax and
// tilt while four idle spins loop forever.
type Orb struct {
	cfg  OrbConfig
	geom OrbGeometry

	spring         harmonica.Spring
	sx, sy, vx, vy float64 // smoothed pointer and its velocity
	tx, ty         float64 // target pointer, normalized to [-1, 1]

	spins [4]*gween.Sequence
	angle [4]float64
}

// NewOrb creates an orb whose springs step at fps frames per second.
func NewOrb(cfg OrbConfig, fps int) *Orb {
	if fps <= 0 {
		fps = 60
	}
	o := &Orb{
		cfg:    cfg,
		geom:   NewOrbGeometry(cfg.labels()),
		spring: harmonica.NewSpring(harmonica.FPS(fps), orbSpringFreq, orbSpringDamping),
	}
	periods := [4]float32{hexSpinPeriod, triSpinPeriod, outerOrbitSpinPeriod, innerOrbitSpinPeriod}
	dirs := [4]float32{360, -360, 360, -360}
	for i := range o.spins {
		seq := gween.NewSequence(gween.New(0, dirs[i], periods[i], ease.Linear))
		seq.SetLoop(-1)
		o.spins[i] = seq
	}
	return o
}

// Config returns the orb's settings.
func (o *Orb) Config() OrbConfig { return o.cfg }

// Geometry returns the unposed wireframe.
func (o *Orb) Geometry() OrbGeometry { return o.geom }

// Size returns the edge length to render at given the available space.
func (o *Orb) Size(available float64) float64 {
	if o.cfg.MaxSize <= 0 {
		return available
	}
	return min(available, o.cfg.MaxSize)
}

// PointerMove sets the spring target from a pointer position within view.
// The position is normalized against the view center and clamped to [-1, 1].
func (o *Orb) PointerMove(x, y float64, view Viewport) {
	c := view.Center()
	if c.X > 0 {
		o.tx = max(-1, min(1, (x-c.X)/c.X))
	}
	if c.Y > 0 {
		o.ty = max(-1, min(1, (y-c.Y)/c.Y))
	}
}

// Target returns the normalized pointer target.
func (o *Orb) Target() Vec2 { return Vec2{X: o.tx, Y: o.ty} }

// Update advances the springs by one step and the spins by dt seconds.
func (o *Orb) Update(dt float64) {
	o.sx, o.vx = o.spring.Update(o.sx, o.vx, o.tx)
	o.sy, o.vy = o.spring.Update(o.sy, o.vy, o.ty)
	for i, seq := range o.spins {
		v, _, _ := seq.Update(float32(dt))
		o.angle[i] = float64(v)
	}
}

// Pose returns the current animated state.
func (o *Orb) Pose() OrbPose {
	return OrbPose{
		TranslateX: o.sx * o.cfg.Parallax,
		TranslateY: o.sy * o.cfg.Parallax,
		OuterTilt:  o.sx * o.cfg.Tilt,
		InnerTilt:  -o.sx * o.cfg.Tilt * orbInnerTiltBy,
		HexSpin:    o.angle[0],
		TriSpin:    o.angle[1],
		OuterSpin:  o.angle[2],
		InnerSpin:  o.angle[3],
	}
}

// polar returns the point at radius r and angle a (radians) around c.
func polar(c Vec2, r, a float64) Vec2 {
	return Vec2{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
}

// rotateAbout rotates p around c by deg degrees.
func rotateAbout(p, c Vec2, deg float64) Vec2 {
	if deg == 0 {
		return p
	}
	s, co := math.Sincos(deg * math.Pi / 180)
	dx, dy := p.X-c.X, p.Y-c.Y
	return Vec2{X: c.X + dx*co - dy*s, Y: c.Y + dx*s + dy*co}
}
