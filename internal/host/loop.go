// Package host supplies the frame scheduling and clocks the driver runs on
// outside a window: a wall-clock ticker and a deterministic offline stepper.
package host

// Loop is a one-slot frame scheduler. A callback registered with
// ScheduleNextFrame runs on the next RunPending call, once.
type Loop struct {
	pending func()
}

// ScheduleNextFrame replaces any pending callback with cb.
func (l *Loop) ScheduleNextFrame(cb func()) {
	l.pending = cb
}

// RunPending fires the pending callback, if any, and reports whether it ran.
// The callback may schedule its successor.
func (l *Loop) RunPending() bool {
	cb := l.pending
	if cb == nil {
		return false
	}
	l.pending = nil
	cb()
	return true
}

// Pending reports whether a frame is waiting.
func (l *Loop) Pending() bool { return l.pending != nil }
