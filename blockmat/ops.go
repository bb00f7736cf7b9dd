package blockmat

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// MulTo computes dst = a*b, or dst = aᵀ*b when transA is set.
// dst must not alias a or b.
func MulTo(dst *Dense, transA bool, a, b *Dense) {
	if transA {
		// dst[i,j] = <a[:,i], b[:,j]>
		if a.Rows != b.Rows || dst.Rows != a.Cols || dst.Cols != b.Cols {
			panic(mulErr("mul(aᵀ, b)", a, b, dst))
		}
		for j := 0; j < dst.Cols; j++ {
			bj := b.Col(j)
			dj := dst.Col(j)
			for i := 0; i < dst.Rows; i++ {
				dj[i] = floats.Dot(a.Col(i), bj)
			}
		}
		return
	}
	// dst[:,j] = sum_l b[l,j] * a[:,l]
	if a.Cols != b.Rows || dst.Rows != a.Rows || dst.Cols != b.Cols {
		panic(mulErr("mul(a, b)", a, b, dst))
	}
	for j := 0; j < dst.Cols; j++ {
		dj := dst.Col(j)
		for i := range dj {
			dj[i] = 0
		}
		for l := 0; l < a.Cols; l++ {
			floats.AddScaled(dj, b.At(l, j), a.Col(l))
		}
	}
}

// AddScaled computes dst += alpha*x elementwise.
func AddScaled(dst *Dense, alpha float64, x *Dense) {
	if !eqDims(dst, x) {
		panic(errDims("add scaled", dst, x))
	}
	floats.AddScaled(dst.Elems, alpha, x.Elems)
}

// AddScaledCols computes dst[:,j] += alpha[j]*x[:,j] for each column j.
func AddScaledCols(dst *Dense, alpha []float64, x *Dense) {
	if !eqDims(dst, x) {
		panic(errDims("add scaled cols", dst, x))
	}
	if len(alpha) != dst.Cols {
		panic(fmt.Sprintf("add scaled cols: %d coefficients for %d columns", len(alpha), dst.Cols))
	}
	for j := 0; j < dst.Cols; j++ {
		floats.AddScaled(dst.Col(j), alpha[j], x.Col(j))
	}
}

// ScaleCols computes a[:,j] *= s[j] for each column j.
// This is multiplication on the right by a diagonal matrix.
func ScaleCols(a *Dense, s []float64) {
	if len(s) != a.Cols {
		panic(fmt.Sprintf("scale cols: %d coefficients for %d columns", len(s), a.Cols))
	}
	for j := 0; j < a.Cols; j++ {
		floats.Scale(s[j], a.Col(j))
	}
}

// ColDot computes dst[j] = <a[:,j], b[:,j]> for each column j.
func ColDot(a, b *Dense, dst []float64) {
	if !eqDims(a, b) {
		panic(errDims("column dot", a, b))
	}
	if len(dst) != a.Cols {
		panic(fmt.Sprintf("column dot: %d elements for %d columns", len(dst), a.Cols))
	}
	for j := 0; j < a.Cols; j++ {
		dst[j] = floats.Dot(a.Col(j), b.Col(j))
	}
}

// ColNorm computes dst[j] = ‖a[:,j]‖₂ for each column j.
func ColNorm(a *Dense, dst []float64) {
	if len(dst) != a.Cols {
		panic(fmt.Sprintf("column norm: %d elements for %d columns", len(dst), a.Cols))
	}
	for j := 0; j < a.Cols; j++ {
		dst[j] = floats.Norm(a.Col(j), 2)
	}
}

func mulErr(op string, a, b, dst *Dense) string {
	return fmt.Sprintf("%s: incompatible sizes: a %dx%d, b %dx%d, dst %dx%d",
		op, a.Rows, a.Cols, b.Rows, b.Cols, dst.Rows, dst.Cols)
}
