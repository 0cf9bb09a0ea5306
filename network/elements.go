// Package network holds the user-facing element tables (junctions and the
// various branch kinds) that a caller builds before invoking the solver,
// plus the per-element result tables written back on a successful solve.
// Field layout and JSON tags follow the same flat, JSON-taggable
// struct-per-entity convention used for input data elsewhere in this
// codebase (element tables read from a JSON simulation file).
package network

// Junction is a network node: a point where branches meet and/or boundary
// conditions are applied.
type Junction struct {
	Index     int     `json:"index"`
	Name      string  `json:"name"`
	PnBar     float64 `json:"pn_bar"`     // nominal pressure, flat-start guess
	TnK       float64 `json:"tn_k"`       // nominal/initial fluid temperature
	HeightM   float64 `json:"height_m"`   // elevation above reference
	InService bool    `json:"in_service"`
}

// BranchEnds is embedded by every branch kind; from/to reference Junction
// indices.
type BranchEnds struct {
	Index     int    `json:"index"`
	Name      string `json:"name"`
	FromJct   int    `json:"from_junction"`
	ToJct     int    `json:"to_junction"`
	InService bool   `json:"in_service"`
}

// Pipe is a pressure- and, optionally, temperature-adapting branch that may
// be internally subdivided into Sections >= 1 rows of BranchPIT.
type Pipe struct {
	BranchEnds
	LengthM      float64 `json:"length_m"`
	DiameterM    float64 `json:"diameter_m"`
	RoughnessMM  float64 `json:"k_mm"`
	LossCoeff    float64 `json:"loss_coefficient"`
	Sections     int     `json:"sections"`
	UWPerM2K     float64 `json:"u_w_per_m2k"`   // heat transfer coefficient
	TAmbientK    float64 `json:"text_k"`        // ambient temperature around the pipe
	AdaptTemp    bool    `json:"alpha_adapt_t"` // whether this pipe exchanges heat at all
}

// Valve is a loss-coefficient-only branch that can be fully closed
// (out-of-service for this solve) or open.
type Valve struct {
	BranchEnds
	Opened    bool    `json:"opened"`
	LossCoeff float64 `json:"loss_coefficient"`
	DiameterM float64 `json:"diameter_m"`
}

// Pump is a branch that lifts pressure according to a polynomial
// regression curve in volumetric flow, clipped to >=0 and zeroed on
// reverse flow.
type Pump struct {
	BranchEnds
	StdTypeName string    `json:"std_type"`
	PolyCoefs   []float64 `json:"poly_coeffs"` // lowest degree first
	VMaxM3S     float64   `json:"v_max_m3_per_s"`
}

// Compressor applies a multiplicative pressure ratio Pi to the absolute
// from-pressure when flow is positive, and is a no-op (p_to = p_from) on
// reverse/zero flow.
type Compressor struct {
	BranchEnds
	PressureRatio float64 `json:"pressure_ratio"`
}

// HeatExchanger is a zero-length pipe that injects/extracts heat QExtW and
// may additionally carry a loss coefficient.
type HeatExchanger struct {
	BranchEnds
	QExtW       float64 `json:"qext_w"`
	LossCoeff   float64 `json:"loss_coefficient"`
	DiameterM   float64 `json:"diameter_m"`
}

// HeatConsumer behaves like a heat exchanger but is parameterised by a
// target delta-T or a target heat demand rather than a raw QExtW.
type HeatConsumer struct {
	BranchEnds
	QDemandW     float64 `json:"qdemand_w"`
	DeltaTSetK   float64 `json:"delta_t_set_k"` // 0 => use QDemandW instead
	DiameterM    float64 `json:"diameter_m"`
	LossCoeff    float64 `json:"loss_coefficient"`
}

// FlowController fixes mdot to TargetKgS; its own pressure drop is the
// free variable that closes the system.
type FlowController struct {
	BranchEnds
	TargetKgS float64 `json:"target_kg_per_s"`
	Control   bool    `json:"control_active"`
}

// PressureController fixes the pressure at the controlled junction
// (ToJct) to TargetBar; its own mdot adapts freely.
type PressureController struct {
	BranchEnds
	TargetBar float64 `json:"target_bar"`
	Control   bool    `json:"control_active"`
}

// CirculationPump circulates mass around a loop, either by fixing a mass
// flow (MassMode) or by imposing a pressure lift (mirrors Pump but as a
// boundary-style component: one endpoint's temperature is pinned to
// TFlowK when MassMode is set).
type CirculationPump struct {
	BranchEnds
	MassMode   bool    `json:"mass_mode"`
	MdotKgS    float64 `json:"mdot_kg_per_s"`
	LiftBar    float64 `json:"lift_bar"`
	TFlowK     float64 `json:"t_flow_k"`
}

// ExtGrid pins pressure and/or temperature at a junction. Kind is one of
// "p", "t", "pt".
type ExtGrid struct {
	Index     int     `json:"index"`
	Name      string  `json:"name"`
	Junction  int     `json:"junction"`
	Kind      string  `json:"type"`
	PBar      float64 `json:"p_bar"`
	TK        float64 `json:"t_k"`
	InService bool    `json:"in_service"`
}

// Sink withdraws a fixed mass flow from a junction.
type Sink struct {
	Index     int     `json:"index"`
	Name      string  `json:"name"`
	Junction  int     `json:"junction"`
	MdotKgS   float64 `json:"mdot_kg_per_s"`
	InService bool    `json:"in_service"`
}

// Source injects a fixed mass flow into a junction, optionally at a given
// temperature (used for thermal boundary mixing).
type Source struct {
	Index     int     `json:"index"`
	Name      string  `json:"name"`
	Junction  int     `json:"junction"`
	MdotKgS   float64 `json:"mdot_kg_per_s"`
	TK        float64 `json:"t_k"`
	InService bool    `json:"in_service"`
}
