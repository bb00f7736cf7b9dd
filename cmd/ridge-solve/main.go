package main

/*
This command-line tool generates a random ridge-regression problem,
solves it using block conjugate gradient, and reports the distance to
the direct Cholesky solution.
*/

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/vishalbelsare/alchemist/blockmat"
	"github.com/vishalbelsare/alchemist/ridge"
)

func init() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, path.Base(os.Args[0]), "[flags]")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Solves a random ridge-regression problem by conjugate gradient.")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Options:")
		flag.PrintDefaults()
		fmt.Fprintln(os.Stderr)
	}
}

// phaseTimer accumulates the total duration per instrumented phase.
type phaseTimer map[ridge.Phase]time.Duration

func (t phaseTimer) Observe(p ridge.Phase, d time.Duration) {
	t[p] += d
}

func main() {
	var (
		n        = flag.Int("n", 1000, "Number of observations (height of A)")
		d        = flag.Int("d", 100, "Number of variables (width of A)")
		k        = flag.Int("k", 4, "Number of right-hand sides")
		lambda   = flag.Float64("lambda", 1e-2, "Ridge regularization")
		tol      = flag.Float64("tol", 1e-10, "Relative residual tolerance")
		iter     = flag.Int("iter", 200, "Iteration limit")
		interval = flag.Int("print", 10, "Progress interval in iterations")
		seed     = flag.Int64("seed", 1, "Random seed")
		verbose  = flag.Bool("v", false, "Print per-iteration progress")
	)
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	a := randDense(rng, *n, *d)
	y := randDense(rng, *n, *k)

	params := ridge.DefaultParams()
	params.Tol = *tol
	params.MaxIter = *iter
	params.ResPrint = *interval
	params.LogLevel = 1
	if *verbose {
		params.LogLevel = 2
	}
	params.AmIPrinting = true
	params.Observer = ridge.WriterObserver{W: os.Stderr}
	timer := make(phaseTimer)
	params.Profiler = timer

	x := blockmat.New(*d, *k)
	start := time.Now()
	res := ridge.SolveCG(a, y, x, *lambda, params, nil)
	log.Printf("%v after %d iterations, relres %.2e (%v)",
		res.Status, res.Iterations, res.RelRes, time.Since(start))
	for p, dur := range timer {
		log.Printf("time in %v: %v", p, dur)
	}

	want, err := ridge.SolveDirect(a, y, *lambda)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("distance to direct solution: %.2e", relErr(want, x))
}

func randDense(rng *rand.Rand, rows, cols int) *blockmat.Dense {
	a := blockmat.New(rows, cols)
	for i := range a.Elems {
		a.Elems[i] = rng.NormFloat64()
	}
	return a
}

func relErr(want, got *blockmat.Dense) float64 {
	delta := make([]float64, len(want.Elems))
	floats.SubTo(delta, want.Elems, got.Elems)
	return floats.Norm(delta, 2) / floats.Norm(want.Elems, 2)
}
