package lumen

import (
	"testing"
	"time"
)

func TestPumpRunsQueuedOnce(t *testing.T) {
	p := NewPumpScheduler()
	calls := 0
	p.RequestFrame(func(time.Time) { calls++ })
	if p.Pending() != 1 {
		t.Fatalf("pending = %d, want 1", p.Pending())
	}
	if n := p.Pump(time.Now()); n != 1 {
		t.Errorf("Pump ran %d, want 1", n)
	}
	p.Pump(time.Now())
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestPumpDefersNestedRequests(t *testing.T) {
	p := NewPumpScheduler()
	var order []int
	p.RequestFrame(func(time.Time) {
		order = append(order, 1)
		p.RequestFrame(func(time.Time) { order = append(order, 2) })
	})
	p.Pump(time.Now())
	if len(order) != 1 {
		t.Fatalf("nested request ran in the same pump: %v", order)
	}
	p.Pump(time.Now())
	if len(order) != 2 {
		t.Errorf("order = %v, want [1 2]", order)
	}
}

func TestCancelFrame(t *testing.T) {
	p := NewPumpScheduler()
	ran := false
	h := p.RequestFrame(func(time.Time) { ran = true })
	p.CancelFrame(h)
	p.CancelFrame(h)
	p.CancelFrame(12345)
	p.Pump(time.Now())
	if ran {
		t.Error("cancelled frame ran")
	}
}

func TestTaskLoopsUntilStopped(t *testing.T) {
	p := NewPumpScheduler()
	frames := 0
	task := StartTask(p, func(time.Time) { frames++ })
	for i := 0; i < 5; i++ {
		p.Pump(time.Now())
	}
	if frames != 5 || task.Frames() != 5 {
		t.Errorf("frames = %d (task %d), want 5", frames, task.Frames())
	}
	task.Stop()
	task.Stop()
	if task.Running() {
		t.Error("task still running after Stop")
	}
	if p.Pending() != 0 {
		t.Errorf("pending = %d after Stop, want 0", p.Pending())
	}
	p.Pump(time.Now())
	if frames != 5 {
		t.Errorf("frames = %d after Stop, want 5", frames)
	}
}

func TestTaskStopFromInsideFrame(t *testing.T) {
	p := NewPumpScheduler()
	var task *Task
	frames := 0
	task = StartTask(p, func(time.Time) {
		frames++
		task.Stop()
	})
	p.Pump(time.Now())
	p.Pump(time.Now())
	if frames != 1 {
		t.Errorf("frames = %d, want 1", frames)
	}
	if p.Pending() != 0 {
		t.Errorf("pending = %d, want 0", p.Pending())
	}
}

func TestNilTask(t *testing.T) {
	var task *Task
	task.Stop()
	if task.Running() || task.Frames() != 0 {
		t.Error("nil task should report stopped")
	}
}
