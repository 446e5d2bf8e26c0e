package frame

import (
	"math"

	"spincube/internal/mathutil"
)

// Scene holds the fixed camera and animation parameters.
type Scene struct {
	FOV      float64       // vertical field of view, degrees
	Near     float64       // near clip distance
	Far      float64       // far clip distance
	Distance float64       // cube distance down -Z
	PeriodMS float64       // one full turn, milliseconds
	Axis     mathutil.Vec3 // rotation axis, normalized on use
}

// DefaultScene returns the 45° camera, 6 units back, turning about (1,0,1) every 12s.
func DefaultScene() Scene {
	return Scene{
		FOV:      45,
		Near:     0.1,
		Far:      100,
		Distance: 6,
		PeriodMS: 12000,
		Axis:     mathutil.Vec3{1, 0, 1},
	}
}

// FrameState is the transform triple for one frame. It is rebuilt every tick.
type FrameState struct {
	Angle      float64
	Projection mathutil.Mat4
	Model      mathutil.Mat4
	Normal     mathutil.Mat4
}

// Angle maps elapsed time to radians: one full turn per period, wrapping.
func (s Scene) Angle(elapsedMillis float64) float64 {
	return math.Pi * math.Mod(elapsedMillis, s.PeriodMS) / (s.PeriodMS / 2)
}

// Model places the cube at -Distance on Z and rotates it about Axis.
func (s Scene) Model(angle float64) mathutil.Mat4 {
	return mathutil.Mul(
		mathutil.Translate(mathutil.Vec3{0, 0, -s.Distance}),
		mathutil.AxisRotation(s.Axis, angle),
	)
}

// Projection builds the perspective for a viewport. A zero height is not
// rejected; the non-finite aspect flows into the matrix.
func (s Scene) Projection(width, height int) mathutil.Mat4 {
	aspect := float64(width) / float64(height)
	return mathutil.Perspective(s.FOV, aspect, s.Near, s.Far)
}

// Compute derives the full FrameState from time and viewport.
func (s Scene) Compute(elapsedMillis float64, width, height int) FrameState {
	angle := s.Angle(elapsedMillis)
	model := s.Model(angle)
	return FrameState{
		Angle:      angle,
		Projection: s.Projection(width, height),
		Model:      model,
		Normal:     mathutil.Transpose(mathutil.Invert(model)),
	}
}
