package mathutil

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const eps = 1e-5

var approx = cmpopts.EquateApprox(0, eps)

// sample is an arbitrary well-conditioned, non-symmetric matrix.
var sample = Mat4{
	2, 0, 1, 0,
	1, 3, 0, 0,
	0, 1, 4, 0,
	5, -2, 7, 1,
}

func TestTransposeInvolution(t *testing.T) {
	t.Parallel()

	for _, m := range []Mat4{Mat4Identity(), sample, AxisRotation(Vec3{1, 2, 3}, 0.7)} {
		assert.Equal(t, m, Transpose(Transpose(m)))
	}
}

func TestTransposeSwapsIndices(t *testing.T) {
	t.Parallel()

	var m Mat4
	for i := range m {
		m[i] = float64(i)
	}
	tr := Transpose(m)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			assert.Equal(t, m[r+4*c], tr[c+4*r], "r=%d c=%d", r, c)
		}
	}
}

func TestMulMatchesDefinition(t *testing.T) {
	t.Parallel()

	a := sample
	b := AxisRotation(Vec3{0, 1, 1}, 1.1)
	got := Mul(a, b)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var want float64
			for n := 0; n < 4; n++ {
				want += a[i+4*n] * b[n+4*j]
			}
			assert.InDelta(t, want, got[i+4*j], 1e-12)
		}
	}

	assert.Equal(t, a, Mul(Mat4Identity(), a))
	assert.Equal(t, a, Mul(a, Mat4Identity()))
}

func TestMulDoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	a, b := sample, Translate(Vec3{1, 2, 3})
	a0, b0 := a, b
	_ = Mul(a, b)
	_ = Invert(a)
	_ = Transpose(b)
	assert.Equal(t, a0, a)
	assert.Equal(t, b0, b)
}

func TestInvertIdentity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Mat4Identity(), Invert(Mat4Identity()))
}

func TestInvertProducesIdentity(t *testing.T) {
	t.Parallel()

	cases := map[string]Mat4{
		"sample":      sample,
		"translation": Translate(Vec3{0, 0, -6}),
		"rotation":    AxisRotation(Vec3{1, 0, 1}, 2.3),
		"model":       Mul(Translate(Vec3{3, -1, -6}), AxisRotation(Vec3{-1, 2, 0.5}, 0.4)),
		"projection":  Perspective(45, 4.0/3.0, 0.1, 100),
	}
	for name, m := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			inv := Invert(m)
			if diff := cmp.Diff(Mat4Identity(), Mul(m, inv), approx); diff != "" {
				t.Errorf("m * inv(m) (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(Mat4Identity(), Mul(inv, m), approx); diff != "" {
				t.Errorf("inv(m) * m (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInvertMatchesGonum(t *testing.T) {
	t.Parallel()

	var want mat.Dense
	require.NoError(t, want.Inverse(sample.Dense()))

	if diff := cmp.Diff(FromDense(&want), Invert(sample), approx); diff != "" {
		t.Errorf("Invert (-gonum +got):\n%s", diff)
	}
	assert.InDelta(t, mat.Det(sample.Dense()), Determinant(sample), 1e-9)
}

func TestInvertSingularPropagatesNonFinite(t *testing.T) {
	t.Parallel()

	var zero Mat4
	inv := Invert(zero)
	assert.False(t, inv.IsFinite())

	// Two equal columns.
	m := sample
	copy(m[4:8], m[0:4])
	assert.False(t, Invert(m).IsFinite())
	assert.Greater(t, Condition(m), 1e12)
}

func TestInvertRotationIsTranspose(t *testing.T) {
	t.Parallel()

	r := AxisRotation(Vec3{1, 0, 1}, 1.234)
	if diff := cmp.Diff(Transpose(r), Invert(r), approx); diff != "" {
		t.Errorf("inv(R) (-transpose +got):\n%s", diff)
	}
	if diff := cmp.Diff(r, Invert(Invert(r)), approx); diff != "" {
		t.Errorf("inv(inv(R)) (-R +got):\n%s", diff)
	}
}

func TestCofactorTable(t *testing.T) {
	t.Parallel()

	for n, cell := range cofactorTable {
		assert.Equal(t, n/4, cell.row)
		assert.Equal(t, n%4, cell.col)
		for _, i := range cell.minor {
			assert.NotEqual(t, cell.row, i/4, "cell %d minor %d shares row", n, i)
			assert.NotEqual(t, cell.col, i%4, "cell %d minor %d shares column", n, i)
		}
	}
	assert.Equal(t, 1.0, cofactorTable[0].sign)
	assert.Equal(t, -1.0, cofactorTable[1].sign)
	assert.Equal(t, -1.0, cofactorTable[4].sign)
	assert.Equal(t, 1.0, cofactorTable[5].sign)
	assert.Equal(t, [9]int{5, 6, 7, 9, 10, 11, 13, 14, 15}, cofactorTable[0].minor)
}

func TestTranslateLastColumn(t *testing.T) {
	t.Parallel()

	m := Translate(Vec3{0, 0, -6})
	assert.Equal(t, []float64{0, 0, -6, 1}, m[12:16])
	got := m.MulVec4(Vec3{1, 2, 3}.Point())
	assert.Equal(t, Vec4{1, 2, -3, 1}, got)
}

func TestConditionOfRotation(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.0, Condition(AxisRotation(Vec3{0, 1, 0}, 0.9)), 1e-9)
	assert.True(t, math.IsInf(Condition(Mat4{math.NaN()}), 1))
}
