package lumen

import (
	"image"
	"math/rand/v2"
	"slices"
	"time"
)

// FieldState describes what a Field is doing between frames.
type FieldState uint8

const (
	FieldIdle       FieldState = iota // no live blobs and no recent spawns
	FieldSpawning                     // the last frame accepted a pointer spawn
	FieldSimulating                   // live blobs are aging out
	FieldSuspended                    // host surface hidden; frames are ignored
)

func (s FieldState) String() string {
	switch s {
	case FieldIdle:
		return "idle"
	case FieldSpawning:
		return "spawning"
	case FieldSimulating:
		return "simulating"
	case FieldSuspended:
		return "suspended"
	}
	return "unknown"
}

// pointer tracks the current and previous accepted pointer positions.
type pointer struct {
	x, y   float64
	px, py float64
	seen   bool
}

// FieldOption configures a Field at construction.
type FieldOption func(*Field)

// WithRand sets the random source used for spawn jitter. Tests pass a seeded
// source for reproducible fields.
func WithRand(r *rand.Rand) FieldOption {
	return func(f *Field) { f.rng = r }
}

// Field is the cursor glow particle simulation: a fixed ring of blobs spawned
// along the pointer path, aged once per frame and drawn additively.
//
// A Field is owned by one component and is not safe for concurrent use; all
// calls must come from the host's frame thread.
type Field struct {
	cfg    GlowConfig
	color  Color
	sprite *image.NRGBA
	rng    *rand.Rand

	blobs []Blob
	head  int

	ptr       pointer
	lastSpawn time.Time
	spawned   bool

	view   Viewport
	hidden bool
	state  FieldState
}

// NewField creates a Field with a preallocated ring of cfg.MaxBlobs slots.
// An unparseable cfg.Color falls back to DefaultGlowColor.
func NewField(cfg GlowConfig, opts ...FieldOption) *Field {
	c, err := ParseColor(cfg.Color)
	if err != nil {
		c = MustParseColor(DefaultGlowColor)
	}
	f := &Field{
		cfg:   cfg,
		color: c,
		view:  Viewport{Ratio: 1},
	}
	if cfg.MaxBlobs > 0 {
		f.blobs = make([]Blob, cfg.MaxBlobs)
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.rng == nil {
		f.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	f.sprite = GlowSprite(c)
	return f
}

// Config returns the settings the field was built with.
func (f *Field) Config() GlowConfig { return f.cfg }

// Color returns the resolved particle color.
func (f *Field) Color() Color { return f.color }

// Sprite returns the gradient image drawn for each blob.
func (f *Field) Sprite() image.Image { return f.sprite }

// Cap returns the ring capacity. It never changes after construction.
func (f *Field) Cap() int { return len(f.blobs) }

// SpawningEnabled reports whether pointer moves can add blobs.
func (f *Field) SpawningEnabled() bool {
	return len(f.blobs) > 0 && f.cfg.SpawnPerMove > 0
}

// Alive returns the number of live blobs.
func (f *Field) Alive() int {
	n := 0
	for i := range f.blobs {
		if f.blobs[i].Alive {
			n++
		}
	}
	return n
}

// Blobs returns a copy of every slot, live or dead, in ring order.
func (f *Field) Blobs() []Blob { return slices.Clone(f.blobs) }

// State returns the field's current lifecycle state.
func (f *Field) State() FieldState { return f.state }

// Viewport returns the current surface geometry.
func (f *Field) Viewport() Viewport { return f.view }

// Pointer returns the last accepted pointer position.
func (f *Field) Pointer() Vec2 { return Vec2{X: f.ptr.x, Y: f.ptr.y} }

// Spawn writes SpawnPerMove blobs at (x, y), each overwriting the oldest
// slot whether or not it is still alive. (prevX, prevY) is the earlier pointer
// position; the delta gives new blobs a trailing velocity. It returns the
// number of blobs written.
func (f *Field) Spawn(x, y, prevX, prevY float64) int {
	if !f.SpawningEnabled() {
		return 0
	}
	n := f.cfg.SpawnPerMove
	for k := 0; k < n; k++ {
		b := &f.blobs[f.head]
		f.head = (f.head + 1) % len(f.blobs)

		b.X = x + f.jitter(blobJitter)
		b.Y = y + f.jitter(blobJitter)
		b.Radius = blobRadius.Random(f.rng)
		b.Alpha = blobAlpha.Random(f.rng)
		b.VX = (x-prevX)*blobTrailScale + f.jitter(blobVelJitter)
		b.VY = (y-prevY)*blobTrailScale + f.jitter(blobVelJitter)
		b.GrowthRate = blobGrowth.Random(f.rng)
		b.DecayRate = blobDecay.Random(f.rng)
		b.Alive = true
	}
	f.spawned = true
	if !f.hidden {
		f.state = FieldSpawning
	}
	return n
}

// jitter returns a value in [-spread/2, spread/2).
func (f *Field) jitter(spread float64) float64 {
	return (f.rng.Float64() - 0.5) * spread
}

// PointerMove records a pointer position in surface-local CSS pixels. At most
// one spawn is accepted per SpawnInterval; moves inside the window only
// update the tracked position. It reports whether blobs were spawned.
func (f *Field) PointerMove(x, y float64, now time.Time) bool {
	f.ptr.seen = true
	if now.Sub(f.lastSpawn) <= SpawnInterval {
		f.ptr.x, f.ptr.y = x, y
		return false
	}
	n := f.Spawn(x, y, f.ptr.px, f.ptr.py)
	f.lastSpawn = now
	f.ptr.px, f.ptr.py = f.ptr.x, f.ptr.y
	f.ptr.x, f.ptr.y = x, y
	return n > 0
}

// PointerLeave recenters the tracked pointer.
func (f *Field) PointerLeave() {
	c := f.view.Center()
	f.ptr.x, f.ptr.y = c.X, c.Y
}

// Resize records new surface dimensions in CSS pixels and the device pixel
// ratio; the ratio is capped by PixelRatioCap.
func (f *Field) Resize(width, height, deviceRatio float64) Viewport {
	f.view = Viewport{
		Width:  max(0, width),
		Height: max(0, height),
		Ratio:  f.cfg.capRatio(deviceRatio),
	}
	if !f.ptr.seen {
		c := f.view.Center()
		f.ptr = pointer{x: c.X, y: c.Y, px: c.X, py: c.Y}
	}
	return f.view
}

// SetHidden suspends or resumes the field. While suspended, Tick and Frame do
// nothing, so blobs resume exactly where they stopped.
func (f *Field) SetHidden(hidden bool) {
	f.hidden = hidden
	if hidden {
		f.state = FieldSuspended
		return
	}
	f.settle()
}

// Hidden reports whether the field is suspended.
func (f *Field) Hidden() bool { return f.hidden }

// Tick advances every live blob by one frame without drawing.
func (f *Field) Tick() {
	f.Frame(nil)
}

// Frame advances every live blob by one frame and draws the survivors onto s
// with additive compositing. A nil surface still advances the simulation.
func (f *Field) Frame(s Surface) {
	if f.hidden {
		return
	}
	if s != nil {
		s.Clear()
		s.SetComposite(CompositeAdd)
	}
	for i := range f.blobs {
		b := &f.blobs[i]
		if !b.step() {
			continue
		}
		if s != nil {
			s.DrawImage(f.sprite, b.Bounds(), clamp01(b.Alpha))
		}
	}
	if s != nil {
		s.SetComposite(CompositeNormal)
	}
	f.settle()
}

// settle derives the state after a frame and clears the spawn marker.
func (f *Field) settle() {
	switch {
	case f.hidden:
		f.state = FieldSuspended
	case f.spawned:
		f.state = FieldSpawning
	case f.Alive() > 0:
		f.state = FieldSimulating
	default:
		f.state = FieldIdle
	}
	f.spawned = false
}
