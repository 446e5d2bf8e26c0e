package host

import "time"

// WallClock measures real time since Start.
type WallClock struct {
	start time.Time
	now   func() time.Time
}

// NewWallClock starts counting immediately.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now(), now: time.Now}
}

// ElapsedMillis returns milliseconds since the clock was created.
func (c *WallClock) ElapsedMillis() float64 {
	return float64(c.now().Sub(c.start)) / float64(time.Millisecond)
}

// StepClock is advanced explicitly, for deterministic frame sequences.
type StepClock struct {
	ms float64
}

// ElapsedMillis returns the current simulated time.
func (c *StepClock) ElapsedMillis() float64 { return c.ms }

// Set moves the clock to ms. Going backwards is ignored.
func (c *StepClock) Set(ms float64) {
	if ms > c.ms {
		c.ms = ms
	}
}
