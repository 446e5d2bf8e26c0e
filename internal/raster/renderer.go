// Package raster is a software stand-in for the GPU: it accepts uniform
// uploads, runs the cube's vertex and fragment stages on the CPU and draws
// into a FrameBuffer.
package raster

import (
	"fmt"
	"image"
	"math"

	"spincube/internal/geometry"
	"spincube/internal/mathutil"
)

// Renderer is a linked program plus its drawing surface.
// It is not safe for concurrent use; the frame loop is single-threaded.
type Renderer struct {
	mesh  geometry.Mesh
	fb    *FrameBuffer
	light LightConfig

	// Background is the clear color applied at the start of every draw.
	Background [4]uint8

	projection mathutil.Mat4
	model      mathutil.Mat4
	normal     mathutil.Mat4
	time       float64
	resolution [2]float64

	verts []screenVertex
}

// NewRenderer validates the mesh and allocates a w×h surface.
// An error here is the setup failure the frame driver reacts to.
func NewRenderer(w, h int, mesh geometry.Mesh) (*Renderer, error) {
	if err := mesh.Validate(); err != nil {
		return nil, fmt.Errorf("raster: link program: %w", err)
	}
	return &Renderer{
		mesh:       mesh,
		fb:         NewFrameBuffer(w, h),
		light:      DefaultLightConfig(),
		projection: mathutil.Mat4Identity(),
		model:      mathutil.Mat4Identity(),
		normal:     mathutil.Mat4Identity(),
		verts:      make([]screenVertex, len(mesh.Positions)),
	}, nil
}

// Size reports the drawable size.
func (r *Renderer) Size() (int, int) {
	return r.fb.Width, r.fb.Height
}

// Resize reallocates the surface when the drawable changes size.
func (r *Renderer) Resize(w, h int) {
	if w == r.fb.Width && h == r.fb.Height {
		return
	}
	r.fb = NewFrameBuffer(w, h)
}

// UniformMatrix4 sets one of "projection", "model" or "normal".
func (r *Renderer) UniformMatrix4(name string, m mathutil.Mat4) {
	switch name {
	case "projection":
		r.projection = m
	case "model":
		r.model = m
	case "normal":
		r.normal = m
	}
}

// Uniform1f accepts "time" in seconds.
func (r *Renderer) Uniform1f(name string, v float64) {
	if name == "time" {
		r.time = v
	}
}

// Uniform2f accepts "resolution".
func (r *Renderer) Uniform2f(name string, x, y float64) {
	if name == "resolution" {
		r.resolution = [2]float64{x, y}
	}
}

// Time is the last uploaded "time" uniform.
func (r *Renderer) Time() float64 { return r.time }

// DrawElements clears the surface and draws the mesh with the current uniforms.
func (r *Renderer) DrawElements() {
	fb := r.fb
	fb.Clear(r.Background)
	if fb.Width == 0 || fb.Height == 0 {
		return
	}

	mvp := mathutil.Mul(r.projection, r.model)
	halfW := float64(fb.Width) / 2
	halfH := float64(fb.Height) / 2

	for i, p := range r.mesh.Positions {
		pos := mathutil.Vec3{float64(p[0]), float64(p[1]), float64(p[2])}
		n := r.mesh.Normals[i]
		norm := mathutil.Vec3{float64(n[0]), float64(n[1]), float64(n[2])}

		clip := mvp.MulVec4(pos.Point())
		sv := &r.verts[i]
		sv.light = r.light.Shade(r.normal.MulVec4(norm.Point()).XYZ())
		sv.ok = clip[3] > 1e-9
		if !sv.ok {
			continue
		}
		sv.invW = 1 / clip[3]
		sv.x = (clip[0]*sv.invW + 1) * halfW
		sv.y = (1 - clip[1]*sv.invW) * halfH
		sv.z = (clip[2]*sv.invW + 1) / 2
		sv.ok = finite(sv.x) && finite(sv.y) && finite(sv.z)
	}

	idx := r.mesh.Indices
	for t := 0; t+2 < len(idx); t += 3 {
		RasterizeTriangle(fb, &r.verts[idx[t]], &r.verts[idx[t+1]], &r.verts[idx[t+2]])
	}
}

// Image copies the current surface into a new NRGBA image.
func (r *Renderer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.fb.Width, r.fb.Height))
	copy(img.Pix, r.fb.Color)
	return img
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
