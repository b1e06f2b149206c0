package syndrive

import "github.com/wafermap/neurocore/coord"

func totalDrivers(perSide map[coord.Side]int) int {
	total := 0
	for _, d := range perSide {
		total += d
	}
	return total
}

// DriversPossible reports whether reqs fit within maxChainLength drivers.
func DriversPossible(reqs []NeuronRequirement, halfRows func(NeuronRequirement) int, maxChainLength int) bool {
	return totalDrivers(DriversRequired(reqs, halfRows)) <= maxChainLength
}

// MoreDriversPossible reports whether reqs fit with room to spare, i.e.
// need strictly fewer than maxChainLength drivers. MergerOracle uses
// DriversPossible, not this function.
func MoreDriversPossible(reqs []NeuronRequirement, halfRows func(NeuronRequirement) int, maxChainLength int) bool {
	return totalDrivers(DriversRequired(reqs, halfRows)) < maxChainLength
}

// MergerOracle adapts syndrive's driver-count feasibility check to the
// merger package's ConstrainMergers interface (satisfied structurally —
// syndrive does not import merger to avoid a dependency cycle back from a
// package merger's own callers might wire in).
type MergerOracle struct {
	// MaxChainLength is the smallest max_chain_length across every target
	// chip reachable from the candidate blocks.
	MaxChainLength int
	// Requirements resolves the per-neuron driver requirements a set of
	// populated neuron blocks would impose on this target chip.
	Requirements func(blocks []coord.NeuronBlockOnHICANN) []NeuronRequirement
	// HalfRows resolves one neuron requirement's half-row count.
	HalfRows func(NeuronRequirement) int
}

// Approve implements merger.ConstrainMergers.
func (o *MergerOracle) Approve(_ coord.DNCMergerOnHICANN, blocks []coord.NeuronBlockOnHICANN) bool {
	reqs := o.Requirements(blocks)
	return DriversPossible(reqs, o.HalfRows, o.MaxChainLength)
}
