package solve

import (
	"math"

	"github.com/cpmech/gosl/la"
	"github.com/pandapipes-go/pipeflow/comp"
	"github.com/pandapipes-go/pipeflow/pit"
	"github.com/pandapipes-go/pipeflow/reduce"
)

func isMassBalance(k pit.NodeKind) bool {
	return k == pit.NodeFree || k == pit.NodeTFixed
}

// Hydraulic runs the Newton-Raphson loop over the reduced active pit:
// node mass-balance and branch momentum-law residuals assembled into one
// sparse system (*la.Triplet) and solved every iteration, with the
// per-equation contributions coming from the comp registry's per-kind
// Model. Node pressures and branch mdots are updated in place on
// active.Nodes/active.Branches; the caller scatters the result back
// onto the full pit afterward.
func Hydraulic(active *reduce.Active, params *pit.Params, ctx *comp.Ctx, opts HydraulicOptions) HydraulicReport {
	logger := opts.Logger
	if logger == nil {
		logger = nullLogger{}
	}
	solverName := opts.LinSolverName
	if solverName == "" {
		solverName = "umfpack"
	}
	maxIter := opts.MaxIter
	if maxIter <= 0 {
		maxIter = 30
	}

	n := len(active.Nodes)
	b := len(active.Branches)
	size := n + b

	if size == 0 {
		return HydraulicReport{Converged: true}
	}

	targetP := make([]float64, n)
	for i, node := range active.Nodes {
		if !isMassBalance(node.Kind) {
			targetP[i] = node.P
		}
	}

	solver := la.GetSolver(solverName)
	defer solver.Free()

	report := HydraulicReport{}
	for iter := 0; iter < maxIter; iter++ {
		tri := new(la.Triplet)
		tri.Init(size, size, size+4*b)
		F := make([]float64, size)

		for i, node := range active.Nodes {
			if isMassBalance(node.Kind) {
				F[i] = node.InjectMdot
			} else {
				F[i] = node.P - targetP[i]
				tri.Put(i, i, 1)
			}
		}

		for bi := range active.Branches {
			row := &active.Branches[bi]
			pFrom := active.Nodes[row.From].P
			pTo := active.Nodes[row.To].P
			hFrom := active.Nodes[row.From].HeightM
			hTo := active.Nodes[row.To].HeightM
			res := comp.Get(row.Kind)(ctx, row, params, pFrom, pTo, hFrom, hTo)

			eq := n + bi
			F[eq] = res.F
			tri.Put(eq, row.From, res.DFdPFrom)
			tri.Put(eq, row.To, res.DFdPTo)
			tri.Put(eq, eq, res.DFdMdot)

			if isMassBalance(active.Nodes[row.From].Kind) {
				F[row.From] -= row.Mdot
				tri.Put(row.From, eq, -1)
			}
			if isMassBalance(active.Nodes[row.To].Kind) {
				F[row.To] += row.Mdot
				tri.Put(row.To, eq, 1)
			}
		}

		resNorm := vecNormInf(F)
		report.ResNorm = resNorm

		rhs := make([]float64, size)
		for i, v := range F {
			rhs[i] = -v
		}

		reuse := opts.ReuseMatrix && iter > 0
		dx, err := factorAndSolve(solver, tri, size, rhs, reuse)
		if err != nil {
			logger.Warnf("pipeflow: hydraulic solve failed at iteration %d: %v", iter, err)
			report.Iterations = iter + 1
			return report
		}

		pNorm := 0.0
		for i := 0; i < n; i++ {
			active.Nodes[i].P += dx[i]
			if v := math.Abs(dx[i]); v > pNorm {
				pNorm = v
			}
		}
		mdotNorm := 0.0
		for bi := 0; bi < b; bi++ {
			active.Branches[bi].Mdot += dx[n+bi]
			if v := math.Abs(dx[n+bi]); v > mdotNorm {
				mdotNorm = v
			}
		}

		report.Iterations = iter + 1
		report.PNorm = pNorm
		report.MdotNorm = mdotNorm
		logger.Infof("pipeflow: hydraulic iter %d: res=%.3e dp=%.3e dmdot=%.3e", iter, resNorm, pNorm, mdotNorm)

		if resNorm < opts.TolRes && pNorm < opts.TolP && mdotNorm < opts.TolM {
			report.Converged = true
			break
		}
	}

	return report
}

func vecNormInf(v []float64) float64 {
	m := 0.0
	for _, x := range v {
		if a := math.Abs(x); a > m {
			m = a
		}
	}
	return m
}
