// Package syndrive counts how many synapse-driver chains a target HICANN
// needs to realise a set of incoming projections, and allocates the
// physical SynapseDriverOnHICANN chain for each realised requirement.
//
// Requirement counting takes a per-neuron, per-(side, parity) half-row
// count as input (already resolved per bio-property by the caller, which
// owns the per-neuron side/parity optimisation) and owns the remaining
// aggregation: collapsing decoders, balancing the "either parity" count
// between even and odd, and converting balanced row counts into a driver
// count. The drivers_possible/more_drivers_possible oracles compare that
// count against a target chip's max chain length, and back the
// merger.ConstrainMergers interface consumed by the merger-tree router.
package syndrive
