// Package synloss accumulates, per projection and per target chip, which
// synapses were realised (with their possibly-distorted weight) and which
// were lost during synapse-driver allocation. Lost entries are marked
// NaN; per-chip tallies count pre/post/set events. Partial per-chip
// accumulators merge at a join point as an element-wise union — two
// partials may never claim the same (source, target) index.
package synloss
