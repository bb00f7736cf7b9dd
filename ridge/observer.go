package ridge

import (
	"fmt"
	"io"
	"time"
)

// Observer receives progress events from SolveCG.
// Methods are called in a fixed order: Enter once, InitialNorm once
// per column, Progress at the configured interval, Done once.
type Observer interface {
	// Enter reports the problem dimensions at the start of a solve.
	Enter(n, d, k int)
	// InitialNorm reports ‖B[:,j]‖₂ for right-hand-side column j.
	InitialNorm(j int, nrm float64)
	// Progress reports the aggregate relative residual and the number
	// of converged columns after iteration itn.
	Progress(itn int, relres float64, converged, total int)
	// Done reports the terminal status and the number of iterations.
	Done(status Status, iterations int)
}

// WriterObserver formats solver events onto an io.Writer.
type WriterObserver struct {
	W io.Writer
}

func (o WriterObserver) Enter(n, d, k int) {
	fmt.Fprintf(o.W, "cg: solving %dx%d system, %d right-hand sides\n", d, d, k)
}

func (o WriterObserver) InitialNorm(j int, nrm float64) {
	fmt.Fprintf(o.W, "cg: nrmb[%d] = %g\n", j, nrm)
}

func (o WriterObserver) Progress(itn int, relres float64, converged, total int) {
	fmt.Fprintf(o.W, "cg: iteration %d, relres = %.2e, %d of %d rhs converged\n",
		itn, relres, converged, total)
}

func (o WriterObserver) Done(status Status, iterations int) {
	switch status {
	case Converged:
		fmt.Fprintf(o.W, "cg: convergence after %d iterations\n", iterations)
	default:
		fmt.Fprintf(o.W, "cg: no convergence within iteration limit\n")
	}
}

// Phase identifies an instrumented section of the solve.
type Phase int

const (
	// PhaseOperator covers each application of the normal-equation
	// operator, including the one during setup.
	PhaseOperator Phase = iota
	// PhasePrecond covers each preconditioner application.
	PhasePrecond
)

func (p Phase) String() string {
	switch p {
	case PhaseOperator:
		return "operator"
	case PhasePrecond:
		return "precond"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Profiler accumulates time spent in instrumented phases.
// Implementations must be cheap; Observe is called inside the
// iteration loop.
type Profiler interface {
	Observe(p Phase, d time.Duration)
}
