package mathutil

import "math"

// Mat4 is a 4×4 matrix stored column-major: element (row r, col c) lives at r + 4c.
// This is the layout uniform uploads expect. Value type, so every operation
// returns a fresh matrix and leaves its inputs untouched.
type Mat4 [16]float64

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at row r, column c.
func (m Mat4) At(r, c int) float64 {
	return m[r+4*c]
}

// Transpose swaps rows and columns: index r+4c becomes c+4r.
func Transpose(m Mat4) Mat4 {
	var t Mat4
	for i := 0; i < 16; i++ {
		r, c := i%4, i/4
		t[c+4*r] = m[i]
	}
	return t
}

// Mul returns a × b, out[i+4j] = Σ a[i+4n]·b[n+4j].
func Mul(a, b Mat4) Mat4 {
	var m Mat4
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			m[i+4*j] = a[i+0]*b[0+4*j] + a[i+4]*b[1+4*j] +
				a[i+8]*b[2+4*j] + a[i+12]*b[3+4*j]
		}
	}
	return m
}

// Translate builds a pure translation.
func Translate(v Vec3) Mat4 {
	m := Mat4Identity()
	m[12] = v[0]
	m[13] = v[1]
	m[14] = v[2]
	return m
}

// MulVec4 returns M × v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v[0] + m[4]*v[1] + m[8]*v[2] + m[12]*v[3],
		m[1]*v[0] + m[5]*v[1] + m[9]*v[2] + m[13]*v[3],
		m[2]*v[0] + m[6]*v[1] + m[10]*v[2] + m[14]*v[3],
		m[3]*v[0] + m[7]*v[1] + m[11]*v[2] + m[15]*v[3],
	}
}

// IsIdentity checks if the matrix is approximately identity.
func (m Mat4) IsIdentity() bool {
	return ApproxEqual(m, Mat4Identity(), 1e-8)
}

// ApproxEqual reports whether every element of a and b differs by at most eps.
func ApproxEqual(a, b Mat4, eps float64) bool {
	for i := 0; i < 16; i++ {
		d := a[i] - b[i]
		if d > eps || d < -eps || math.IsNaN(d) {
			return false
		}
	}
	return true
}

// IsFinite is false when any element is NaN or ±Inf.
func (m Mat4) IsFinite() bool {
	for _, v := range m {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
