package ridge

import "github.com/vishalbelsare/alchemist/blockmat"

// normalOp applies the regularized normal-equation operator
//
//	(AᵀA + λn·I) V
//
// as two successive products with A and a scaled add, without ever
// materializing the d×d Gram matrix. A may be tall; forming AᵀA
// would be memory-prohibitive and would change conditioning.
type normalOp struct {
	a      *blockmat.Dense
	shift  float64         // λn
	interm *blockmat.Dense // n×k scratch for A·V
}

func newNormalOp(a *blockmat.Dense, lambda float64, k int) *normalOp {
	n, _ := a.Dims()
	return &normalOp{
		a:      a,
		shift:  lambda * float64(n),
		interm: blockmat.New(n, k),
	}
}

// applyTo computes dst = (AᵀA + λn·I) v. dst must not alias v.
func (op *normalOp) applyTo(dst, v *blockmat.Dense) {
	blockmat.MulTo(op.interm, false, op.a, v)
	blockmat.MulTo(dst, true, op.a, op.interm)
	blockmat.AddScaled(dst, op.shift, v)
}
