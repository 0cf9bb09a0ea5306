package pit

// Lookups implements the table-name/element-id -> PIT-slice invariant:
// each external (table, element-id) maps to a contiguous slice of
// NodePIT (for nodes) or BranchPIT (for branches).
type Lookups struct {
	// NodeOfJunction[j] is the NodePIT row owned by external junction j.
	NodeOfJunction []int

	// BranchRowsOfPipe[p] lists, in section order, the BranchPIT rows
	// owned by external pipe p.
	BranchRowsOfPipe [][]int

	// InternalNodesOfPipe[p] lists, in section order, the N-1 NodePIT
	// rows introduced between pipe p's external from/to junctions.
	InternalNodesOfPipe [][]int

	// single-row-per-element kinds: external index -> the one BranchPIT row
	BranchRowOfValve              []int
	BranchRowOfPump               []int
	BranchRowOfCompressor         []int
	BranchRowOfHeatExchanger      []int
	BranchRowOfHeatConsumer       []int
	BranchRowOfFlowController     []int
	BranchRowOfPressureController []int
	BranchRowOfCirculationPump    []int
}
