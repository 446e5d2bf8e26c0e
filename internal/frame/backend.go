package frame

import "spincube/internal/mathutil"

// Uniform names the driver publishes every frame.
const (
	UniformProjection = "projection"
	UniformModel      = "model"
	UniformNormal     = "normal"
	UniformTime       = "time"
	UniformResolution = "resolution"
)

// Clock reports milliseconds since the animation started. It never goes backwards.
type Clock interface {
	ElapsedMillis() float64
}

// Viewport reports the current drawable size. The backend updates it on resize.
type Viewport interface {
	Size() (width, height int)
}

// Scheduler invokes cb at the next display refresh opportunity.
type Scheduler interface {
	ScheduleNextFrame(cb func())
}

// Program is a linked render program. Unknown uniform names are ignored.
type Program interface {
	UniformMatrix4(name string, m mathutil.Mat4)
	Uniform1f(name string, v float64)
	Uniform2f(name string, x, y float64)
	DrawElements()
}
