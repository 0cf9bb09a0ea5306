package pipeflow

import "github.com/pandapipes-go/pipeflow/errs"

// Error, Kind, and the Kind* constants are re-exported from the
// dependency-free errs package so internal solver packages can raise
// properly-kinded errors without importing the root package.
type Error = errs.Error
type Kind = errs.Kind

const (
	KindInvalidTopology      = errs.KindInvalidTopology
	KindNoSlack              = errs.KindNoSlack
	KindNoConvergence        = errs.KindNoConvergence
	KindThermalNoConvergence = errs.KindThermalNoConvergence
	KindThermalSingularity   = errs.KindThermalSingularity
	KindSolverError          = errs.KindSolverError
)

// IsKind reports whether err is a *Error of the given Kind; a convenience
// predicate for callers that don't want to type-assert by hand.
func IsKind(err error, kind Kind) bool {
	return errs.IsKind(err, kind)
}
