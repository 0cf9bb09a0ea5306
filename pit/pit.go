package pit

// PIT is the full (unreduced) process-internal table pair plus lookups.
// It is the output of the Builder and the input to the connectivity
// check and reducer.
type PIT struct {
	Nodes    []NodeRow
	Branches []BranchRow
	Lookups  Lookups
	Params   *Params

	// Sources carries each in-service Source element's mass/temperature
	// injection, for the thermal solver's nodal energy balance.
	Sources []SourceInjection

	// PreviousSolutionPresent is true when p/T/mdot were copied from a
	// prior solve rather than flat-started.
	PreviousSolutionPresent bool
}
