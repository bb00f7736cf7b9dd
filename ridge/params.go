package ridge

import "math"

// machEps is the difference between 1 and the next float64.
var machEps = math.Nextafter(1, 2) - 1

// Params configures the iterative solver.
type Params struct {
	// Tol is the relative residual threshold per column.
	// Values outside [32ε, 1−32ε] are clamped, not rejected.
	Tol float64
	// MaxIter bounds the number of iterations.
	MaxIter int
	// LogLevel selects observer verbosity:
	// 0 silent, 1 terminal notices, 2 periodic progress.
	LogLevel int
	// ResPrint is the progress reporting interval in iterations.
	ResPrint int
	// AmIPrinting designates the participant which reports progress.
	// In a replicated setting only one rank should set it.
	AmIPrinting bool
	// Observer receives progress events. May be nil.
	Observer Observer
	// Profiler receives phase timings. May be nil.
	Profiler Profiler
}

// DefaultParams returns the parameter values used by the solver
// when the caller has no preference.
func DefaultParams() Params {
	return Params{
		Tol:      1e-14,
		MaxIter:  100,
		ResPrint: 10,
	}
}

// clampTol forces the tolerance into [32ε, 1−32ε].
func clampTol(tol float64) float64 {
	eps := 32 * machEps
	switch {
	case tol < eps:
		return eps
	case tol >= 1:
		return 1 - eps
	}
	return tol
}

// clampInterval forces the reporting interval to be positive.
func clampInterval(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
