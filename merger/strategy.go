package merger

import "github.com/wafermap/neurocore/coord"

// Strategy selects how aggressively neighboring neuron blocks are merged
// onto a shared DNC merger.
type Strategy int

const (
	// MinimizeNumberOfSendingRepeaters merges as aggressively as the tree
	// and address-pool capacity allow, without consulting an oracle.
	MinimizeNumberOfSendingRepeaters Strategy = iota
	// MinimizeAsPossible merges aggressively, but every candidate merge is
	// additionally gated by the ConstrainMergers oracle.
	MinimizeAsPossible
	// OneToOne disables merging entirely: every populated block maps to
	// its own home DNC merger.
	OneToOne
)

// ConstrainMergers is consulted before committing a candidate merge; it
// simulates L1-address assignment for the proposed blocks and reports
// whether the merged source still fits the synapse-driver chain-length
// bound on every target chip reachable from those blocks.
type ConstrainMergers interface {
	Approve(dnc coord.DNCMergerOnHICANN, blocks []coord.NeuronBlockOnHICANN) bool
}
