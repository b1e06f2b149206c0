// Package l1graph builds the wafer-wide L1 bus-fabric graph consumed by the
// router: one vertex per (HICANNOnWafer, H-or-V-line) pair, with edges for
// intra-chip crossbar switches and inter-chip line continuations.
//
// The graph is always simple, undirected, and unweighted at construction —
// weights are applied per call by the Dijkstra variant in router, never
// stored here. Adjacency follows the teacher's legacy graph.Graph
// (map-of-slices under a single sync.RWMutex), specialised down from that
// package's directed/weighted/multi-edge generality since this graph needs
// none of it.
package l1graph
