package lumen

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"
)

// ScriptFrame is the simulated frame period used by ScriptRunner.
const ScriptFrame = time.Second / 60

// ErrEmptyScript is returned when a pointer script has no steps.
var ErrEmptyScript = errors.New("lumen: script has no steps")

// ScriptStep is one action in a pointer script.
//
//	move      pointer to (x, y)
//	path      pointer from (fromX, fromY) to (toX, toY) over frames
//	leave     pointer leaves the surface
//	hide/show visibility changes
//	resize    surface becomes width x height at ratio
//	wait      do nothing for frames
//	snapshot  hand the current frame to the snapshot callback
type ScriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Ratio  float64 `json:"ratio,omitempty"`
}

type script struct {
	Steps []ScriptStep `json:"steps"`
}

// SnapshotFunc receives each snapshot label with the number of frames run.
type SnapshotFunc func(label string, frame uint64) error

// ScriptRunner replays a pointer script against a Glow one frame at a time,
// on a simulated clock advancing ScriptFrame per frame.
type ScriptRunner struct {
	steps     []ScriptStep
	cursor    int
	waitCount int
	queue     []Event
	done      bool

	clock  time.Time
	frames uint64

	// OnSnapshot is called for snapshot steps after the frame is drawn.
	OnSnapshot SnapshotFunc
	pending    []string
}

// LoadScript parses a JSON pointer script.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return NewScriptRunner(s.Steps...)
}

// NewScriptRunner builds a runner from steps directly.
func NewScriptRunner(steps ...ScriptStep) (*ScriptRunner, error) {
	if len(steps) == 0 {
		return nil, ErrEmptyScript
	}
	for i, st := range steps {
		switch st.Action {
		case "move", "path", "leave", "hide", "show", "resize", "wait", "snapshot":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: steps, clock: time.Unix(0, 0)}, nil
}

// Done reports whether every step has run and all queued events are drained.
func (r *ScriptRunner) Done() bool { return r.done }

// Now returns the simulated clock.
func (r *ScriptRunner) Now() time.Time { return r.clock }

// Steps returns a copy of the script's steps.
func (r *ScriptRunner) Steps() []ScriptStep { return slices.Clone(r.steps) }

// Frames returns the number of frames stepped.
func (r *ScriptRunner) Frames() uint64 { return r.frames }

// Step runs one frame: advance the clock, execute the next step if nothing
// is queued, deliver at most one queued event to g, then pump sched.
func (r *ScriptRunner) Step(g *Glow, sched *PumpScheduler) error {
	r.clock = r.clock.Add(ScriptFrame)
	r.frames++

	if !r.done {
		r.advance()
	}
	if len(r.queue) > 0 {
		ev := r.queue[0]
		r.queue = r.queue[1:]
		if m, ok := ev.(PointerMoveEvent); ok {
			m.At = r.clock
			ev = m
		}
		g.Handle(ev)
	}
	sched.Pump(r.clock)

	var errs []error
	for _, label := range r.pending {
		if r.OnSnapshot != nil {
			errs = append(errs, r.OnSnapshot(label, r.frames))
		}
	}
	r.pending = r.pending[:0]

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(r.queue) == 0 {
		r.done = true
	}
	return errors.Join(errs...)
}

// Run steps until the script is done or limit frames have run, and returns
// the number of frames stepped.
func (r *ScriptRunner) Run(g *Glow, sched *PumpScheduler, limit int) (int, error) {
	n := 0
	for !r.done && n < limit {
		if err := r.Step(g, sched); err != nil {
			return n + 1, err
		}
		n++
	}
	return n, nil
}

func (r *ScriptRunner) advance() {
	if len(r.queue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "move":
		r.queue = append(r.queue, PointerMoveEvent{X: st.X, Y: st.Y})
	case "path":
		frames := max(st.Frames, 2)
		for i := 0; i < frames; i++ {
			t := float64(i) / float64(frames-1)
			r.queue = append(r.queue, PointerMoveEvent{
				X: st.FromX + (st.ToX-st.FromX)*t,
				Y: st.FromY + (st.ToY-st.FromY)*t,
			})
		}
	case "leave":
		r.queue = append(r.queue, PointerLeaveEvent{})
	case "hide":
		r.queue = append(r.queue, VisibilityEvent{Hidden: true})
	case "show":
		r.queue = append(r.queue, VisibilityEvent{Hidden: false})
	case "resize":
		r.queue = append(r.queue, ResizeEvent{Width: st.Width, Height: st.Height, DeviceRatio: st.Ratio})
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1
		}
	case "snapshot":
		r.pending = append(r.pending, st.Label)
	}
}
