package mathutil

import "math"

// Perspective builds a symmetric frustum from a vertical field of view in degrees.
// The caller owns degenerate inputs: aspect must be > 0 and near != far.
func Perspective(fovy, aspect, near, far float64) Mat4 {
	ymax := near * math.Tan(fovy*math.Pi/360)
	ymin := -ymax
	xmin := ymin * aspect
	xmax := ymax * aspect
	return Frustum(xmin, xmax, ymin, ymax, near, far)
}

// Frustum is the off-center perspective projection for the given clip bounds.
func Frustum(left, right, bottom, top, near, far float64) Mat4 {
	return Mat4{
		2 * near / (right - left), 0, 0, 0,
		0, 2 * near / (top - bottom), 0, 0,
		(right + left) / (right - left), (top + bottom) / (top - bottom), (near + far) / (near - far), -1,
		0, 0, 2 * far * near / (near - far), 0,
	}
}
