package ridge

import (
	"fmt"
	"math"
	"time"

	"github.com/vishalbelsare/alchemist/blockmat"
)

// Status is the terminal state of an iterative solve.
type Status int

const (
	// Converged means every column reached the relative residual
	// threshold within the iteration limit.
	Converged Status = iota
	// Exhausted means the iteration limit was reached with at least
	// one column unconverged. X still holds the best iterate found.
	Exhausted
)

func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case Exhausted:
		return "exhausted"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Result reports the outcome of a solve.
type Result struct {
	Status Status
	// Iterations is the number of iterations performed.
	Iterations int
	// RelRes is the final aggregate relative residual,
	// ‖R‖_F / ‖B‖_F over the normal-equation system.
	RelRes float64
}

// SolveCG solves (AᵀA + λn·I) X = AᵀY by block conjugate gradient,
// refining x in place from the supplied initial guess. Each of the k
// columns carries independent scalar bookkeeping; the solve finishes
// when every column satisfies ‖R[:,j]‖ < tol·‖B[:,j]‖ or the
// iteration limit is reached. A nil preconditioner means identity.
//
// The sequence of blockmat operations issued is deterministic and
// independent of the data, so a collective backend can substitute for
// the local one without divergence between participants.
func SolveCG(a, y, x *blockmat.Dense, lambda float64, params Params, m Preconditioner) Result {
	n, d := a.Dims()
	yn, k := y.Dims()
	xd, xk := x.Dims()
	if yn != n {
		panic(fmt.Sprintf("matrix heights differ: a %d, y %d", n, yn))
	}
	if xd != d || xk != k {
		panic(fmt.Sprintf("solution size: want %dx%d, got %dx%d", d, k, xd, xk))
	}
	if m == nil {
		m = Identity{}
	}

	obs := params.Observer
	prof := params.Profiler
	timed := func(ph Phase, f func()) {
		if prof == nil {
			f()
			return
		}
		t0 := time.Now()
		f()
		prof.Observe(ph, time.Since(t0))
	}

	tol := clampTol(params.Tol)
	interval := clampInterval(params.ResPrint)
	logLev1 := params.AmIPrinting && params.LogLevel >= 1
	logLev2 := params.AmIPrinting && params.LogLevel >= 2

	if obs != nil {
		obs.Enter(n, d, k)
	}

	// B = Aᵀ Y.
	b := blockmat.New(d, k)
	blockmat.MulTo(b, true, a, y)

	op := newNormalOp(a, lambda, k)

	// R = B − (AᵀA + λn·I) X.
	r := b.Clone()
	q := blockmat.New(d, k)
	timed(PhaseOperator, func() { op.applyTo(q, x) })
	blockmat.AddScaled(r, -1, q)

	nrmb := make([]float64, k)
	blockmat.ColNorm(b, nrmb)
	var totalNrmb float64
	for j := 0; j < k; j++ {
		totalNrmb += nrmb[j] * nrmb[j]
		if obs != nil {
			obs.InitialNorm(j, nrmb[j])
		}
	}
	totalNrmb = math.Sqrt(totalNrmb)

	ressqr := make([]float64, k)
	blockmat.ColDot(r, r, ressqr)

	p := blockmat.New(d, k)
	// Z aliases R for the identity preconditioner; otherwise it is a
	// separate buffer reused across iterations.
	z := r
	isprecond := !m.IsIdentity()
	if isprecond {
		z = blockmat.New(d, k)
	}

	rho := make([]float64, k)
	rho0 := make([]float64, k)
	rhotmp := make([]float64, k)
	alpha := make([]float64, k)
	malpha := make([]float64, k)
	beta := make([]float64, k)

	relres := aggRelRes(ressqr, totalNrmb)

	for itn := 0; itn < params.MaxIter; itn++ {
		if isprecond {
			timed(PhasePrecond, func() { m.Apply(z, r) })
			blockmat.ColDot(r, z, rho)
		} else {
			// rho = <R,Z> = ressqr, saving one reduction.
			copy(rho, ressqr)
		}

		if itn == 0 {
			// rho0 is undefined on the first iteration.
			for j := range beta {
				beta[j] = 0
			}
		} else {
			for j := 0; j < k; j++ {
				beta[j] = ratioOrZero(rho[j], rho0[j])
			}
		}

		// P = Z + diag(beta) P.
		blockmat.ScaleCols(p, beta)
		blockmat.AddScaled(p, 1, z)

		// Q = (AᵀA + λn·I) P.
		timed(PhaseOperator, func() { op.applyTo(q, p) })

		blockmat.ColDot(p, q, rhotmp)
		for j := 0; j < k; j++ {
			alpha[j] = ratioOrZero(rho[j], rhotmp[j])
			malpha[j] = -alpha[j]
		}

		blockmat.AddScaledCols(x, alpha, p)
		blockmat.AddScaledCols(r, malpha, q)

		copy(rho0, rho)

		blockmat.ColDot(r, r, ressqr)

		convg := 0
		for j := 0; j < k; j++ {
			// A zero right-hand-side column converges only once its
			// residual is exactly zero.
			if math.Sqrt(ressqr[j]) < tol*nrmb[j] || ressqr[j] == 0 {
				convg++
			}
		}

		relres = aggRelRes(ressqr, totalNrmb)
		if logLev2 && obs != nil && (itn%interval == 0 || convg == k) {
			obs.Progress(itn, relres, convg, k)
		}

		if convg == k {
			if logLev1 && obs != nil {
				obs.Done(Converged, itn+1)
			}
			return Result{Status: Converged, Iterations: itn + 1, RelRes: relres}
		}
	}

	if logLev1 && obs != nil {
		obs.Done(Exhausted, params.MaxIter)
	}
	return Result{Status: Exhausted, Iterations: params.MaxIter, RelRes: relres}
}

// ratioOrZero divides a by b, treating a zero denominator as a frozen
// column rather than producing a non-finite step. A zero denominator
// only arises for a column whose residual has been driven to zero, and
// a non-finite alpha or beta would corrupt the other columns' shared
// block updates.
func ratioOrZero(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// aggRelRes is the aggregate relative residual sqrt(Σressqr)/‖B‖_F.
func aggRelRes(ressqr []float64, totalNrmb float64) float64 {
	var total float64
	for _, v := range ressqr {
		total += v
	}
	res := math.Sqrt(total)
	if totalNrmb == 0 {
		return res
	}
	return res / totalNrmb
}
