// Package synmap assigns each compound neuron's up to four synapse
// targets to the two synaptic inputs (left/right) of its denmems,
// according to a fixed table keyed by target count and column parity. Top
// and bottom rows of a compound neuron always receive the same pattern.
package synmap
