package ridge

import "github.com/vishalbelsare/alchemist/blockmat"

// Preconditioner supplies the approximate inverse applied to the
// residual on every iteration of SolveCG.
//
// Apply must produce a dst such that <src[:,j], dst[:,j]> is positive
// for every column with a non-zero residual; an indefinite
// preconditioner is a caller error and breaks convergence.
type Preconditioner interface {
	// IsIdentity reports whether Apply is a no-op. When it is, the
	// solver reuses the residual directly and skips one column
	// reduction per iteration.
	IsIdentity() bool
	// Apply computes dst ≈ M⁻¹ src for d×k matrices dst and src.
	Apply(dst, src *blockmat.Dense)
}

// Identity is the trivial preconditioner. It is the default when
// SolveCG receives a nil Preconditioner.
type Identity struct{}

// IsIdentity returns true.
func (Identity) IsIdentity() bool { return true }

// Apply copies src into dst. SolveCG never calls it.
func (Identity) Apply(dst, src *blockmat.Dense) { dst.CopyFrom(src) }
