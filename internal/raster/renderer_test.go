package raster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spincube/internal/frame"
	"spincube/internal/geometry"
	"spincube/internal/mathutil"
)

var (
	_ frame.Program  = (*Renderer)(nil)
	_ frame.Viewport = (*Renderer)(nil)
)

func pixel(r *Renderer, x, y int) [4]uint8 {
	i := (y*r.fb.Width + x) * 4
	c := r.fb.Color
	return [4]uint8{c[i], c[i+1], c[i+2], c[i+3]}
}

func drawAt(t *testing.T, r *Renderer, ms float64) {
	t.Helper()
	w, h := r.Size()
	fs := frame.DefaultScene().Compute(ms, w, h)
	r.UniformMatrix4("projection", fs.Projection)
	r.UniformMatrix4("model", fs.Model)
	r.UniformMatrix4("normal", fs.Normal)
	r.DrawElements()
}

func TestRendererFrontFaceLit(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer(64, 64, geometry.Cube())
	require.NoError(t, err)
	r.Background = [4]uint8{0, 0, 0, 255}
	drawAt(t, r, 0)

	// Front face normal (0,0,1): 0.6 + (0.5,0.5,0.75)*0.75, blue clamped.
	assert.Equal(t, [4]uint8{249, 249, 255, 255}, pixel(r, 32, 32))
	assert.Equal(t, [4]uint8{0, 0, 0, 255}, pixel(r, 0, 0))
	assert.Equal(t, [4]uint8{0, 0, 0, 255}, pixel(r, 63, 63))
}

func TestRendererDepthKeepsNearestFace(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer(64, 64, geometry.Cube())
	require.NoError(t, err)
	drawAt(t, r, 0)

	// The front face sits at eye depth 5, back face at 7; the center must
	// hold the front face's depth.
	p := frame.DefaultScene().Projection(64, 64)
	clip := p.MulVec4(mathutil.Vec4{0, 0, -5, 1})
	want := (clip[2]/clip[3] + 1) / 2
	assert.InDelta(t, want, r.fb.ZBuf[32*64+32], 1e-3)
}

func TestRendererRotatedCubeCoversCenter(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer(48, 32, geometry.Cube())
	require.NoError(t, err)
	for _, ms := range []float64{1500, 3000, 6000, 9000} {
		drawAt(t, r, ms)
		assert.Equal(t, uint8(255), pixel(r, 24, 16)[3], "t=%v", ms)
		assert.Equal(t, uint8(0), pixel(r, 0, 0)[3], "t=%v", ms)
	}
}

func TestRendererNonFiniteProjectionDrawsNothing(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer(32, 32, geometry.Cube())
	require.NoError(t, err)
	r.UniformMatrix4("projection", mathutil.Perspective(45, math.Inf(1), 0.1, 100))
	r.UniformMatrix4("model", frame.DefaultScene().Model(0))
	r.DrawElements()
	for _, v := range r.fb.Color {
		require.Zero(t, v)
	}
}

func TestRendererIgnoresUnknownUniforms(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer(8, 8, geometry.Cube())
	require.NoError(t, err)
	r.UniformMatrix4("bogus", mathutil.Mat4{})
	r.Uniform1f("speed", 3)
	r.Uniform2f("offset", 1, 2)
	assert.True(t, r.projection.IsIdentity())
	assert.True(t, r.model.IsIdentity())
	assert.True(t, r.normal.IsIdentity())

	r.Uniform1f("time", 1.5)
	r.Uniform2f("resolution", 8, 8)
	assert.Equal(t, 1.5, r.Time())
	assert.Equal(t, [2]float64{8, 8}, r.resolution)
}

func TestRendererResize(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer(10, 10, geometry.Cube())
	require.NoError(t, err)
	r.Resize(20, 5)
	w, h := r.Size()
	assert.Equal(t, 20, w)
	assert.Equal(t, 5, h)
	assert.Equal(t, 20*5*4, len(r.Image().Pix))

	r.Resize(0, 0)
	assert.NotPanics(t, r.DrawElements)
}

func TestNewRendererRejectsBadMesh(t *testing.T) {
	t.Parallel()

	_, err := NewRenderer(10, 10, geometry.Mesh{})
	assert.ErrorContains(t, err, "raster: link program")
}

type stepClock struct{ ms float64 }

func (c *stepClock) ElapsedMillis() float64 { return c.ms }

type onceScheduler struct{ pending func() }

func (s *onceScheduler) ScheduleNextFrame(cb func()) { s.pending = cb }

func TestDriverDrivesRenderer(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer(32, 32, geometry.Cube())
	require.NoError(t, err)
	clock := &stepClock{ms: 2000}
	sched := &onceScheduler{}
	d := frame.New(clock, r, sched)
	require.Equal(t, frame.Running, d.Setup(r))
	d.Start()
	sched.pending()

	assert.Equal(t, 2.0, r.Time())
	assert.Equal(t, [2]float64{32, 32}, r.resolution)
	assert.Equal(t, uint8(255), pixel(r, 16, 16)[3])
}
