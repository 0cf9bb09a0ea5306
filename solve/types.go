// Package solve implements the Newton-Raphson hydraulic solver and the
// thermal solver, operating on the reduced active pit. The hydraulic
// assembly follows the sparse la.Triplet accumulation idiom used
// elsewhere in this codebase, with a straight-loop Newton control flow.
package solve

// Logger is a structural (not imported) match for the root package's
// Logger interface, so this package never depends on the root package.
type Logger interface {
	Warnf(format string, args ...interface{})
	Infof(format string, args ...interface{})
}

type nullLogger struct{}

func (nullLogger) Warnf(string, ...interface{}) {}
func (nullLogger) Infof(string, ...interface{}) {}

// HydraulicOptions carries the subset of root Options the hydraulic
// Newton loop needs. Fluid/friction/ambient state lives
// in the comp.Ctx passed alongside, not here.
type HydraulicOptions struct {
	MaxIter       int
	TolP          float64
	TolM          float64
	TolRes        float64
	ReuseMatrix   bool
	LinSolverName string
	Logger        Logger
}

// HydraulicReport summarizes a completed (converged or not) hydraulic
// solve.
type HydraulicReport struct {
	Converged  bool
	Iterations int
	ResNorm    float64
	PNorm      float64
	MdotNorm   float64
}

// ThermalOptions carries the subset of root Options the thermal solver
// needs.
type ThermalOptions struct {
	MaxIter  int
	TolT     float64
	TolM     float64
	Strict   bool // StrictThermalSingularity
	Logger   Logger
}

// ThermalReport summarizes a completed thermal solve.
type ThermalReport struct {
	Converged  bool
	Iterations int
	TNorm      float64
}
