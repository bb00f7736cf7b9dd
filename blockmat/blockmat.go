/*
Package blockmat provides dense matrices with multiple independent
columns and the column-wise primitives required by the block solvers
in package ridge.

Matrices are stored column-major so that each column is a contiguous
slice. All kernels bottom out in gonum/floats operations on these
slices.
*/
package blockmat

import "fmt"

// Dense is a dense column-major matrix.
type Dense struct {
	Rows, Cols int
	// Elems stores column j in Elems[j*Rows : (j+1)*Rows].
	Elems []float64
}

// New allocates a zero-valued matrix of the given dimensions.
func New(rows, cols int) *Dense {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("negative dimensions: %dx%d", rows, cols))
	}
	return &Dense{rows, cols, make([]float64, rows*cols)}
}

// Dims returns the number of rows and columns.
func (a *Dense) Dims() (rows, cols int) {
	return a.Rows, a.Cols
}

// At returns the element in row i, column j.
func (a *Dense) At(i, j int) float64 {
	return a.Elems[j*a.Rows+i]
}

// Set assigns the element in row i, column j.
func (a *Dense) Set(i, j int, x float64) {
	a.Elems[j*a.Rows+i] = x
}

// Col returns column j as a slice sharing the matrix's storage.
func (a *Dense) Col(j int) []float64 {
	return a.Elems[j*a.Rows : (j+1)*a.Rows]
}

// Clone returns a deep copy of the matrix.
func (a *Dense) Clone() *Dense {
	b := New(a.Rows, a.Cols)
	copy(b.Elems, a.Elems)
	return b
}

// CopyFrom overwrites the matrix with the contents of b.
// The dimensions must match.
func (a *Dense) CopyFrom(b *Dense) {
	if !eqDims(a, b) {
		panic(errDims("copy", a, b))
	}
	copy(a.Elems, b.Elems)
}

// Zero sets every element to zero.
func (a *Dense) Zero() {
	for i := range a.Elems {
		a.Elems[i] = 0
	}
}

func eqDims(a, b *Dense) bool {
	return a.Rows == b.Rows && a.Cols == b.Cols
}

func errDims(op string, a, b *Dense) string {
	return fmt.Sprintf("%s: matrix sizes differ: %dx%d, %dx%d", op, a.Rows, a.Cols, b.Rows, b.Cols)
}
