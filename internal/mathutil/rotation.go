package mathutil

import "math"

// AxisRotation returns a rotation of angle radians about axis (Rodrigues form).
//
// The axis is normalized here. A zero-length axis is not guarded and yields
// NaN entries.
func AxisRotation(axis Vec3, angle float64) Mat4 {
	mod := axis.Len()
	e0, e1, e2 := axis[0]/mod, axis[1]/mod, axis[2]/mod
	sn, cs := math.Sin(angle), math.Cos(angle)
	tn := 1 - cs

	diag := func(e float64) float64 { return tn*e*e + cs }
	off := func(a, b, c float64) float64 { return tn*a*b + sn*c }

	return Mat4{
		diag(e0), off(e0, e1, e2), off(e0, e2, -e1), 0,
		off(e0, e1, -e2), diag(e1), off(e1, e2, e0), 0,
		off(e0, e2, e1), off(e1, e2, -e0), diag(e2), 0,
		0, 0, 0, 1,
	}
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}
