package ridge

import (
	"math/rand"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/vishalbelsare/alchemist/blockmat"
)

func randDense(rows, cols int) *blockmat.Dense {
	a := blockmat.New(rows, cols)
	for i := range a.Elems {
		a.Elems[i] = rand.NormFloat64()
	}
	return a
}

func eye(n int) *blockmat.Dense {
	a := blockmat.New(n, n)
	for i := 0; i < n; i++ {
		a.Set(i, i, 1)
	}
	return a
}

// relErr is ‖want−got‖_F / ‖want‖_F.
func relErr(want, got *blockmat.Dense) float64 {
	delta := make([]float64, len(want.Elems))
	floats.SubTo(delta, want.Elems, got.Elems)
	return floats.Norm(delta, 2) / floats.Norm(want.Elems, 2)
}

// jacobi is a diagonal preconditioner for the normal-equation
// operator, dividing each row by the corresponding diagonal entry of
// AᵀA + λn·I. It exercises the general preconditioner path.
type jacobi struct {
	invdiag []float64
}

func newJacobi(a *blockmat.Dense, lambda float64) *jacobi {
	n, d := a.Dims()
	invdiag := make([]float64, d)
	for i := 0; i < d; i++ {
		col := a.Col(i)
		invdiag[i] = 1 / (floats.Dot(col, col) + lambda*float64(n))
	}
	return &jacobi{invdiag}
}

func (m *jacobi) IsIdentity() bool { return false }

func (m *jacobi) Apply(dst, src *blockmat.Dense) {
	for j := 0; j < src.Cols; j++ {
		s, d := src.Col(j), dst.Col(j)
		for i := range s {
			d[i] = s[i] * m.invdiag[i]
		}
	}
}

// progressEvent is one Progress callback.
type progressEvent struct {
	itn       int
	relres    float64
	converged int
	total     int
}

// recordObserver captures every event for inspection.
type recordObserver struct {
	entered  bool
	n, d, k  int
	norms    []float64
	progress []progressEvent
	done     []Status
	doneItns []int
}

func (o *recordObserver) Enter(n, d, k int) {
	o.entered = true
	o.n, o.d, o.k = n, d, k
}

func (o *recordObserver) InitialNorm(j int, nrm float64) {
	o.norms = append(o.norms, nrm)
}

func (o *recordObserver) Progress(itn int, relres float64, converged, total int) {
	o.progress = append(o.progress, progressEvent{itn, relres, converged, total})
}

func (o *recordObserver) Done(status Status, iterations int) {
	o.done = append(o.done, status)
	o.doneItns = append(o.doneItns, iterations)
}

// recordProfiler counts phase observations.
type recordProfiler struct {
	count map[Phase]int
	total map[Phase]time.Duration
}

func newRecordProfiler() *recordProfiler {
	return &recordProfiler{
		count: make(map[Phase]int),
		total: make(map[Phase]time.Duration),
	}
}

func (p *recordProfiler) Observe(ph Phase, d time.Duration) {
	p.count[ph]++
	p.total[ph] += d
}
