/*
Package ridge solves the regularized least-squares problem

	argmin 1/(2n) ‖A X − Y‖_F² + λ/2 ‖X‖_F²

for a tall n×d matrix A and k independent right-hand-side columns Y,
by solving the equivalent normal-equation system

	(AᵀA + λn·I) X = Aᵀ Y.

Computing the solution can be done either using Cholesky factorization:

	x, err := ridge.SolveDirect(a, y, lambda)

or block conjugate gradient, which never forms AᵀA:

	x := blockmat.New(d, k)
	res := ridge.SolveCG(a, y, x, lambda, ridge.DefaultParams(), nil)

SolveCG refines x in place from the supplied initial guess and reports
whether every column reached the requested relative residual within
the iteration limit. The direct method instantiates the d×d Gram
matrix and is only practical for small d.
*/
package ridge
