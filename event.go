package lumen

import "time"

// Event is a notification from the host's event source. Hosts deliver events
// on the frame thread; the concrete types below are the complete set.
type Event interface {
	event()
}

// PointerMoveEvent reports a pointer position in surface-local CSS pixels.
type PointerMoveEvent struct {
	X, Y float64
	At   time.Time
}

// PointerLeaveEvent reports that the pointer left the surface.
type PointerLeaveEvent struct{}

// VisibilityEvent reports that the host document was hidden or shown.
type VisibilityEvent struct {
	Hidden bool
}

// ResizeEvent reports new surface dimensions in CSS pixels and the device
// pixel ratio before capping.
type ResizeEvent struct {
	Width, Height float64
	DeviceRatio   float64
}

func (PointerMoveEvent) event()  {}
func (PointerLeaveEvent) event() {}
func (VisibilityEvent) event()   {}
func (ResizeEvent) event()       {}
