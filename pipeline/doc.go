// Package pipeline sequences the mapping/routing stages — placement,
// merger-tree routing, L1 address assignment, L1 bus routing, and
// synapse-driver allocation — behind one Run call, threading a shared
// resource.Manager and synloss.Accumulator through every stage and
// recording per-stage timing into a statsutil.Stats that Run creates and
// returns.
package pipeline
