package pit

// Per-component-kind parameter/scratch tables, keyed by external element
// index rather than inflating BranchRow with kind-specific columns.
// Mirrors the per-element-kind scratchpad field convention used
// elsewhere in this codebase (e.g. Diffusion.Ustar), generalised here to
// a keyed side-table since BranchPIT rows are shared across many
// distinct component kinds.

type PumpParams struct {
	PolyCoefs []float64
	VMaxM3S   float64
	LastLiftBar float64 // scratch: last computed lift, surfaced by result extractor
}

type CompressorParams struct {
	PressureRatio float64
}

type FlowControllerParams struct {
	TargetKgS float64
	Active    bool
}

type PressureControllerParams struct {
	TargetBar float64
	Active    bool
}

type CirculationPumpParams struct {
	MassMode bool
	MdotKgS  float64
	LiftBar  float64
	TFlowK   float64
}

type HeatParams struct {
	QExtW      float64 // heat added to the fluid [W]
	QSetpointW float64 // echoes QExtW (heat exchangers) or minus QDemandW (heat consumers)
	DeltaTSetK float64 // heat consumers only: 0 => QSetpointW governs instead
}

// Params collects all kind-specific side tables, keyed by external
// element index within that kind's own table.
type Params struct {
	Pumps                map[int]*PumpParams
	Compressors          map[int]*CompressorParams
	FlowControllers      map[int]*FlowControllerParams
	PressureControllers  map[int]*PressureControllerParams
	CirculationPumps     map[int]*CirculationPumpParams
	HeatExchangers       map[int]*HeatParams
	HeatConsumers        map[int]*HeatParams
}

func newParams() *Params {
	return &Params{
		Pumps:               map[int]*PumpParams{},
		Compressors:         map[int]*CompressorParams{},
		FlowControllers:     map[int]*FlowControllerParams{},
		PressureControllers: map[int]*PressureControllerParams{},
		CirculationPumps:    map[int]*CirculationPumpParams{},
		HeatExchangers:      map[int]*HeatParams{},
		HeatConsumers:       map[int]*HeatParams{},
	}
}
