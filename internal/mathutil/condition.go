package mathutil

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Dense copies m into a gonum matrix with the same row/column meaning.
func (m Mat4) Dense() *mat.Dense {
	d := mat.NewDense(4, 4, nil)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			d.Set(r, c, m.At(r, c))
		}
	}
	return d
}

// FromDense is the inverse of Dense. d must be 4×4.
func FromDense(d mat.Matrix) Mat4 {
	var m Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r+4*c] = d.At(r, c)
		}
	}
	return m
}

// Condition returns the 2-norm condition number of m.
// Singular or non-finite input reports +Inf.
func Condition(m Mat4) float64 {
	if !m.IsFinite() {
		return math.Inf(1)
	}
	return mat.Cond(m.Dense(), 2)
}
