// Package placement assigns biological neurons to contiguous rectangles of
// hardware denmems within a chip's neuron blocks.
//
// Each NeuronBlockOnHICANN is modelled as a 2×32 occupancy grid (the fixed
// top/bottom row pair, 32 denmem columns) backed by a fixed-size int array
// — a cell holds 0 for free or, otherwise, the 1-based sequence number of
// the placement request that claimed it.
// Compound neurons occupy width hw_neuron_size×bio_count across both rows
// symmetrically; splitting a request across two blocks is never attempted.
package placement
