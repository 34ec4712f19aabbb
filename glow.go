package lumen

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// GlowOption configures a Glow.
type GlowOption func(*Glow)

// WithLogger routes lifecycle and stats logging to l. The default discards.
func WithLogger(l *log.Logger) GlowOption {
	return func(g *Glow) { g.logger = l }
}

// WithFieldOptions passes options through to the underlying Field.
func WithFieldOptions(opts ...FieldOption) GlowOption {
	return func(g *Glow) { g.fieldOpts = append(g.fieldOpts, opts...) }
}

// WithStats logs frame stats at debug level every n frames.
func WithStats(n int) GlowOption {
	return func(g *Glow) {
		if n > 0 {
			g.statsEvery = uint64(n)
		}
	}
}

// Glow is the cursor glow component: a Field bound to a Surface and driven
// by a FrameScheduler. Pointer, visibility and resize notifications arrive
// through Handle. All state is per instance, so several glows can share a
// page without interfering.
type Glow struct {
	id        string
	field     *Field
	surface   Surface
	sched     FrameScheduler
	task      *Task
	wanted    bool
	logger    *log.Logger
	fieldOpts []FieldOption

	statsEvery uint64
	stats      frameStats
}

// NewGlow creates a stopped Glow. surface may be nil, in which case frames
// advance the simulation but draw nothing.
func NewGlow(cfg GlowConfig, surface Surface, sched FrameScheduler, opts ...GlowOption) *Glow {
	g := &Glow{
		id:      uuid.NewString(),
		surface: surface,
		sched:   sched,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	g.logger = g.logger.With("glow", g.id[:8])

	if _, err := ParseColor(cfg.Color); err != nil {
		g.logger.Warn("unusable glow color, using default", "color", cfg.Color, "err", err)
	}
	g.field = NewField(cfg, g.fieldOpts...)
	if !g.field.SpawningEnabled() {
		g.logger.Warn("spawning disabled", "max_blobs", cfg.MaxBlobs, "spawn_per_move", cfg.SpawnPerMove)
	}
	return g
}

// ID returns the instance id used in log output.
func (g *Glow) ID() string { return g.id }

// Field returns the underlying simulation.
func (g *Glow) Field() *Field { return g.field }

// Surface returns the surface frames are drawn to.
func (g *Glow) Surface() Surface { return g.surface }

// Start begins the frame loop and returns its task. If a loop is already
// running, that task is returned; a second loop is never created. While the
// glow is hidden, Start records the request and returns nil; the loop starts
// when the glow becomes visible.
func (g *Glow) Start() *Task {
	g.wanted = true
	if g.sched == nil {
		return nil
	}
	if g.task.Running() {
		return g.task
	}
	if g.field.Hidden() {
		return nil
	}
	g.task = StartTask(g.sched, g.frame)
	g.logger.Debug("glow started")
	return g.task
}

// Stop cancels the frame loop. It is safe to call any number of times, from
// any teardown path.
func (g *Glow) Stop() {
	g.wanted = false
	if g.task.Running() {
		g.task.Stop()
		g.logger.Debug("glow stopped", "frames", g.task.Frames())
	}
}

// Running reports whether a frame loop is scheduled.
func (g *Glow) Running() bool { return g.task.Running() }

// Handle applies one event-source notification.
func (g *Glow) Handle(ev Event) {
	switch e := ev.(type) {
	case PointerMoveEvent:
		if g.field.PointerMove(e.X, e.Y, e.At) {
			g.stats.spawns++
		}
	case PointerLeaveEvent:
		g.field.PointerLeave()
	case VisibilityEvent:
		g.setHidden(e.Hidden)
	case ResizeEvent:
		v := g.field.Resize(e.Width, e.Height, e.DeviceRatio)
		if g.surface != nil {
			g.surface.Configure(v)
		}
		pw, ph := v.PixelSize()
		g.logger.Debug("glow resized", "width", v.Width, "height", v.Height, "ratio", v.Ratio, "pixels", [2]int{pw, ph})
	}
}

func (g *Glow) setHidden(hidden bool) {
	if hidden == g.field.Hidden() {
		return
	}
	g.field.SetHidden(hidden)
	if hidden {
		if g.task.Running() {
			g.task.Stop()
		}
		g.logger.Debug("glow suspended")
		return
	}
	g.logger.Debug("glow resumed")
	if g.wanted {
		g.Start()
	}
}

// frame is the per-display-frame callback.
func (g *Glow) frame(now time.Time) {
	start := time.Now()
	g.field.Frame(g.surface)
	g.stats.record(time.Since(start))
	if g.statsEvery > 0 && g.stats.frames%g.statsEvery == 0 {
		g.stats.log(g.logger, g.field)
	}
}
