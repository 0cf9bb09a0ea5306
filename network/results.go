package network

import "math"

// Results holds the per-element result tables written back on a
// successful solve. Every
// slice is parallel to the corresponding element-table slice on Network;
// out-of-service elements get an all-NaN row.
type Results struct {
	Junction            []JunctionResult `json:"junction"`
	Pipe                []PipeResult     `json:"pipe"`
	Valve               []BranchResult   `json:"valve"`
	Pump                []PumpResult     `json:"pump"`
	Compressor          []PumpResult     `json:"compressor"`
	HeatExchanger       []HeatResult     `json:"heat_exchanger"`
	HeatConsumer        []HeatResult     `json:"heat_consumer"`
	FlowController      []BranchResult   `json:"flow_controller"`
	PressureController  []BranchResult   `json:"pressure_controller"`
	CirculationPump     []PumpResult     `json:"circulation_pump"`
	ExtGrid             []ExtGridResult  `json:"ext_grid"`
}

// JunctionResult: `p_bar`, `t_k`.
type JunctionResult struct {
	PBar float64 `json:"p_bar"`
	TK   float64 `json:"t_k"`
}

// BranchResult covers the common analogous branch results for
// valve/flow-controller/pressure-controller.
type BranchResult struct {
	VMeanMPerS  float64 `json:"v_mean_m_per_s"`
	PFromBar    float64 `json:"p_from_bar"`
	PToBar      float64 `json:"p_to_bar"`
	TFromK      float64 `json:"t_from_k"`
	TToK        float64 `json:"t_to_k"`
	MdotFromKgS float64 `json:"mdot_from_kg_per_s"`
	MdotToKgS   float64 `json:"mdot_to_kg_per_s"`
	VdotM3S     float64 `json:"vdot_m3_per_s"`
}

// PipeResult extends BranchResult with pipe-specific quantities.
type PipeResult struct {
	BranchResult
	TOutletK float64          `json:"t_outlet_k"`
	Reynolds float64          `json:"reynolds"`
	Lambda   float64          `json:"lambda"`
	Sections []SectionResult  `json:"sections,omitempty"` // populated when Sections > 1
}

// SectionResult is one internal pipe section's state.
type SectionResult struct {
	PFromBar float64 `json:"p_from_bar"`
	PToBar   float64 `json:"p_to_bar"`
	TOutletK float64 `json:"t_outlet_k"`
}

// PumpResult extends BranchResult with pressure lift and compression
// power.
type PumpResult struct {
	BranchResult
	LiftBar float64 `json:"lift_bar"`
	PowerW  float64 `json:"power_w"`
}

// HeatResult extends BranchResult with transferred heat vs. setpoint.
type HeatResult struct {
	BranchResult
	QTransferredW float64 `json:"q_transferred_w"`
	QSetpointW    float64 `json:"q_setpoint_w"`
}

// ExtGridResult: `mdot_kg_per_s`, `q_kw`.
type ExtGridResult struct {
	MdotKgS float64 `json:"mdot_kg_per_s"`
	QKW     float64 `json:"q_kw"`
}

// NaNJunctionResult returns an all-NaN row for an out-of-service junction.
func NaNJunctionResult() JunctionResult {
	return JunctionResult{PBar: math.NaN(), TK: math.NaN()}
}

// NaNBranchResult returns an all-NaN row for an out-of-service branch.
func NaNBranchResult() BranchResult {
	n := math.NaN()
	return BranchResult{n, n, n, n, n, n, n, n}
}
