package lumen

import "time"

// FrameHandle identifies a pending frame request.
type FrameHandle uint64

// FrameScheduler delivers callbacks on the next display frame, in the manner
// of a browser's requestAnimationFrame. Each request fires at most once.
type FrameScheduler interface {
	RequestFrame(fn func(now time.Time)) FrameHandle
	CancelFrame(h FrameHandle)
}

type frameRequest struct {
	handle FrameHandle
	fn     func(now time.Time)
}

// PumpScheduler is a FrameScheduler driven by its host: the host calls Pump
// once per display frame (from ebiten's Update, a bubbletea tick, or a
// headless loop). Callbacks run on the pumping goroutine, so everything a
// frame touches stays on one thread.
type PumpScheduler struct {
	next    FrameHandle
	pending []frameRequest
	running []frameRequest
}

// NewPumpScheduler returns an empty scheduler.
func NewPumpScheduler() *PumpScheduler {
	return &PumpScheduler{}
}

// RequestFrame queues fn for the next Pump.
func (p *PumpScheduler) RequestFrame(fn func(now time.Time)) FrameHandle {
	p.next++
	p.pending = append(p.pending, frameRequest{handle: p.next, fn: fn})
	return p.next
}

// CancelFrame drops a queued request. Unknown or already-fired handles are
// ignored.
func (p *PumpScheduler) CancelFrame(h FrameHandle) {
	for i, r := range p.pending {
		if r.handle == h {
			p.pending = append(p.pending[:i], p.pending[i+1:]...)
			return
		}
	}
}

// Pending returns the number of queued requests.
func (p *PumpScheduler) Pending() int { return len(p.pending) }

// Pump runs every request queued before the call. Requests made by the
// callbacks themselves wait for the next Pump. It returns the number of
// callbacks run.
func (p *PumpScheduler) Pump(now time.Time) int {
	if len(p.pending) == 0 {
		return 0
	}
	p.running, p.pending = p.pending, p.running[:0]
	n := len(p.running)
	for _, r := range p.running {
		r.fn(now)
	}
	clear(p.running)
	p.running = p.running[:0]
	return n
}

// Task is a self-rescheduling frame loop. It is created running by StartTask
// and stays running until Stop.
type Task struct {
	sched   FrameScheduler
	frame   func(now time.Time)
	handle  FrameHandle
	stopped bool
	frames  uint64
}

// StartTask requests the first frame of a loop that calls frame once per
// display frame.
func StartTask(s FrameScheduler, frame func(now time.Time)) *Task {
	t := &Task{sched: s, frame: frame}
	t.handle = s.RequestFrame(t.run)
	return t
}

func (t *Task) run(now time.Time) {
	if t.stopped {
		return
	}
	// Request the next frame before running this one so a Stop from inside
	// frame cancels it.
	t.handle = t.sched.RequestFrame(t.run)
	t.frames++
	t.frame(now)
}

// Stop cancels the pending frame. Calling Stop more than once, or on a nil
// Task, is a no-op.
func (t *Task) Stop() {
	if t == nil || t.stopped {
		return
	}
	t.stopped = true
	t.sched.CancelFrame(t.handle)
}

// Running reports whether the loop is still scheduled.
func (t *Task) Running() bool {
	return t != nil && !t.stopped
}

// Frames returns how many frames the task has run.
func (t *Task) Frames() uint64 {
	if t == nil {
		return 0
	}
	return t.frames
}
