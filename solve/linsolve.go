package solve

import "github.com/cpmech/gosl/la"

// factorAndSolve factors tri (unless reuseFact asks to skip re-init of a
// solver already holding the same sparsity pattern) and solves tri*x=rhs.
// Drives the same Init/Fact/Solve sequence la.LinSol implementations
// expect, used here one-shot per Newton iteration since the hydraulic
// Jacobian is rebuilt every step.
func factorAndSolve(solver la.LinSol, tri *la.Triplet, n int, rhs []float64, reuseFact bool) ([]float64, error) {
	if !reuseFact {
		if err := solver.Init(tri, false, false, "", ""); err != nil {
			return nil, err
		}
	}
	if err := solver.Fact(); err != nil {
		return nil, err
	}
	x := make([]float64, n)
	if err := solver.Solve(x, rhs, false); err != nil {
		return nil, err
	}
	return x, nil
}
