package mathutil

// cofactorCell describes one of the 16 cells for adjugate expansion.
type cofactorCell struct {
	row, col int
	sign     float64
	minor    [9]int // indices sharing neither row nor column, ascending
}

// cofactorTable is built once and never written afterwards.
var cofactorTable = buildCofactorTable()

func buildCofactorTable() [16]cofactorCell {
	var table [16]cofactorCell
	for n := 0; n < 16; n++ {
		row, col := n/4, n%4
		cell := cofactorCell{row: row, col: col, sign: -1}
		if row%2 == col%2 {
			cell.sign = 1
		}
		k := 0
		for i := 0; i < 16; i++ {
			if i/4 == row || i%4 == col {
				continue
			}
			cell.minor[k] = i
			k++
		}
		table[n] = cell
	}
	return table
}

// det3 expands the 3×3 minor of src picked out by idx.
func det3(src *Mat4, idx *[9]int) float64 {
	a := func(j int) float64 { return src[idx[j]] }
	return a(0)*a(4)*a(8) + a(1)*a(5)*a(6) + a(2)*a(3)*a(7) -
		a(0)*a(5)*a(7) - a(1)*a(3)*a(8) - a(2)*a(4)*a(6)
}

// Invert returns the inverse of m using the adjugate divided by the determinant.
//
// Invertibility is not checked: a singular input produces Inf/NaN entries,
// which callers are expected to let propagate.
func Invert(m Mat4) Mat4 {
	src := Transpose(m)

	var adj Mat4
	for n := range cofactorTable {
		cell := &cofactorTable[n]
		adj[n] = cell.sign * det3(&src, &cell.minor)
	}

	var det float64
	for i := 0; i < 4; i++ {
		det += src[i] * adj[i]
	}

	for i := range adj {
		adj[i] /= det
	}
	return adj
}

// Determinant uses the same cofactor expansion as Invert.
func Determinant(m Mat4) float64 {
	src := Transpose(m)
	var det float64
	for i := 0; i < 4; i++ {
		cell := &cofactorTable[i]
		det += src[i] * cell.sign * det3(&src, &cell.minor)
	}
	return det
}
