package network

import "github.com/pandapipes-go/pipeflow/fluid"

// Network is the single source of truth for a pipeflow problem: the
// element tables plus the one active fluid. A solve writes only Results,
// Converged and Workspace; the element tables (including their InService
// flags) are left untouched, and the network is otherwise the durable
// state a caller owns across solves.
type Network struct {
	Fluid fluid.Model

	Junctions           []Junction
	Pipes               []Pipe
	Valves              []Valve
	Pumps               []Pump
	Compressors         []Compressor
	HeatExchangers      []HeatExchanger
	HeatConsumers       []HeatConsumer
	FlowControllers     []FlowController
	PressureControllers []PressureController
	CirculationPumps    []CirculationPump
	ExtGrids            []ExtGrid
	Sinks               []Sink
	Sources             []Source

	Results Results

	// Converged reflects the last solve's status.
	Converged bool

	// Workspace is the solve-scoped cache (the full PIT with its lookups)
	// the root package attaches/refreshes across calls when
	// ReuseInternalData is set; see the root package's workspace type.
	Workspace interface{}
}

// FormatVersion is an incrementing identifier stamped on API-affecting
// changes to the network file format.
const FormatVersion = 1
