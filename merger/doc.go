// Package merger implements the on-chip merger-tree router: it assigns
// each populated neuron block to a DNC merger, merging adjacent blocks
// onto a shared DNC merger when the fixed merger-tree topology, the
// L1-address pool capacity, and an optional feasibility oracle all permit
// it.
//
// The merger tree is modelled as a small fixed core.Graph (the teacher's
// general-purpose graph, used here purely as disposable per-call scratch
// state) so that BFS reachability — via the bfs package, exactly as
// elsewhere in this module — both drives the "is this subtree still
// intact" check and the "claim and isolate the used subtree" step
// afterwards.
package merger
