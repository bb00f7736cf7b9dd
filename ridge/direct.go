package ridge

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/vishalbelsare/alchemist/blockmat"
)

// SolveDirect solves (AᵀA + λn·I) X = AᵀY by Cholesky factorization.
// Unlike SolveCG it instantiates the d×d Gram matrix, so it is only
// practical for small d. It is exact up to factorization error and
// serves as the reference for the iterative path.
func SolveDirect(a, y *blockmat.Dense, lambda float64) (*blockmat.Dense, error) {
	n, d := a.Dims()
	yn, k := y.Dims()
	if yn != n {
		return nil, errors.New("matrix heights differ")
	}

	// Gram matrix AᵀA + λn·I.
	gram := blockmat.New(d, d)
	blockmat.MulTo(gram, true, a, a)
	shift := lambda * float64(n)
	sym := mat.NewSymDense(d, nil)
	for i := 0; i < d; i++ {
		for j := i; j < d; j++ {
			v := gram.At(i, j)
			if i == j {
				v += shift
			}
			sym.SetSym(i, j, v)
		}
	}

	var chol mat.Cholesky
	if !chol.Factorize(sym) {
		return nil, errors.New("gram matrix is not positive definite")
	}

	// Right-hand side B = Aᵀ Y.
	b := blockmat.New(d, k)
	blockmat.MulTo(b, true, a, y)
	rhs := mat.NewDense(d, k, nil)
	for j := 0; j < k; j++ {
		for i := 0; i < d; i++ {
			rhs.Set(i, j, b.At(i, j))
		}
	}

	var sol mat.Dense
	if err := chol.SolveTo(&sol, rhs); err != nil {
		return nil, err
	}

	x := blockmat.New(d, k)
	for j := 0; j < k; j++ {
		for i := 0; i < d; i++ {
			x.Set(i, j, sol.At(i, j))
		}
	}
	return x, nil
}
