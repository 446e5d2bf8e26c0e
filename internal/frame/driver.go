// Package frame drives the per-frame transform pipeline: elapsed time and
// viewport in, projection/model/normal uniforms out.
//
// The driver never blocks. Each tick re-registers itself with the Scheduler
// and then renders, so stopping the scheduler stops the animation.
package frame

// State is the driver lifecycle.
type State uint8

const (
	Uninitialized State = iota
	Running
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	}
	return "unknown"
}

// Driver recomputes and publishes the FrameState on every tick.
type Driver struct {
	scene    Scene
	clock    Clock
	viewport Viewport
	sched    Scheduler

	program   Program
	state     State
	attempted bool
	started   bool

	observer func(FrameState)
	frames   uint64
}

// Option customizes a Driver.
type Option func(*Driver)

// WithScene overrides DefaultScene.
func WithScene(s Scene) Option {
	return func(d *Driver) { d.scene = s }
}

// WithObserver is called with every published FrameState. It must not retain
// or modify the driver.
func WithObserver(fn func(FrameState)) Option {
	return func(d *Driver) { d.observer = fn }
}

// New returns a driver in the Uninitialized state.
func New(clock Clock, viewport Viewport, sched Scheduler, opts ...Option) *Driver {
	d := &Driver{
		scene:    DefaultScene(),
		clock:    clock,
		viewport: viewport,
		sched:    sched,
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Setup moves the driver to Running when the viewport is known and p is a
// usable program. Only the first call counts: a failed setup leaves the
// driver inert for good, and ticks become no-ops.
func (d *Driver) Setup(p Program) State {
	if d.attempted {
		return d.state
	}
	d.attempted = true

	w, h := d.viewport.Size()
	if p == nil || w <= 0 || h <= 0 {
		return d.state
	}
	d.program = p
	d.state = Running
	return d.state
}

// State returns the current lifecycle state.
func (d *Driver) State() State { return d.state }

// Scene returns the scene parameters in use.
func (d *Driver) Scene() Scene { return d.scene }

// Frames counts frames published so far.
func (d *Driver) Frames() uint64 { return d.frames }

// Start registers the first tick. The loop keeps itself alive from then on.
func (d *Driver) Start() {
	if d.started {
		return
	}
	d.started = true
	d.sched.ScheduleNextFrame(d.animate)
}

func (d *Driver) animate() {
	d.sched.ScheduleNextFrame(d.animate)
	d.Render()
}

// Render computes this frame's transforms and publishes them.
// It does nothing while the driver is Uninitialized.
func (d *Driver) Render() {
	if d.state != Running {
		return
	}

	t := d.clock.ElapsedMillis()
	w, h := d.viewport.Size()
	fs := d.scene.Compute(t, w, h)

	p := d.program
	p.UniformMatrix4(UniformProjection, fs.Projection)
	p.UniformMatrix4(UniformModel, fs.Model)
	p.UniformMatrix4(UniformNormal, fs.Normal)
	p.Uniform1f(UniformTime, t/1000)
	p.Uniform2f(UniformResolution, float64(w), float64(h))
	p.DrawElements()

	d.frames++
	if d.observer != nil {
		d.observer(fs)
	}
}
