// Package errs defines the error taxonomy surfaced at the pipeflow(net,
// options) boundary. It is a standalone, dependency-free
// package so every solver-internal package (pit, topology, reduce,
// solve, extract) can raise a properly-kinded error without creating an
// import cycle back to the root pipeflow package, which re-exports these
// names for callers.
package errs

import "fmt"

// Kind enumerates the recoverable failure modes.
type Kind string

const (
	KindInvalidTopology      Kind = "InvalidTopology"
	KindNoSlack              Kind = "NoSlack"
	KindNoConvergence        Kind = "NoConvergence"
	KindThermalNoConvergence Kind = "ThermalNoConvergence"
	KindThermalSingularity   Kind = "ThermalSingularity"
	KindSolverError          Kind = "SolverError"
)

// Error is the concrete type for every recoverable solver failure,
// carrying enough context (residual norms, iteration count) to explain
// the failure without re-deriving it from the network.
type Error struct {
	Kind Kind
	Msg  string

	ResNorm  float64
	PNorm    float64
	MdotNorm float64
	TNorm    float64

	Iterations int
}

func (e *Error) Error() string {
	if e.Iterations > 0 {
		return fmt.Sprintf("pipeflow: %s: %s (after %d iterations, |res|=%.3e)", e.Kind, e.Msg, e.Iterations, e.ResNorm)
	}
	return fmt.Sprintf("pipeflow: %s: %s", e.Kind, e.Msg)
}

func InvalidTopology(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidTopology, Msg: fmt.Sprintf(format, args...)}
}

func NoSlack(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNoSlack, Msg: fmt.Sprintf(format, args...)}
}

func SolverError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindSolverError, Msg: fmt.Sprintf(format, args...)}
}

func ThermalSingularity(format string, args ...interface{}) *Error {
	return &Error{Kind: KindThermalSingularity, Msg: fmt.Sprintf(format, args...)}
}

// NoConvergence builds a NoConvergence error carrying the last residual
// norms.
func NoConvergence(iterations int, resNorm, pNorm, mdotNorm float64) *Error {
	return &Error{
		Kind:       KindNoConvergence,
		Msg:        "hydraulic Newton iteration did not converge",
		ResNorm:    resNorm,
		PNorm:      pNorm,
		MdotNorm:   mdotNorm,
		Iterations: iterations,
	}
}

// ThermalNoConvergence mirrors NoConvergence for the thermal loop.
func ThermalNoConvergence(iterations int, tNorm float64) *Error {
	return &Error{
		Kind:       KindThermalNoConvergence,
		Msg:        "thermal iteration did not converge",
		TNorm:      tNorm,
		Iterations: iterations,
	}
}

// IsKind reports whether err is an *Error of the given Kind.
func IsKind(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
