// Package biograph builds and queries the biological network graph: the
// population/projection description of a spiking neural network that the
// rest of the mapping pipeline places onto hardware.
//
// A BioGraph composes a *core.Graph the way the teacher library's own
// higher-level examples do (see core's ExampleGraph_NeuralEvolution):
// populations become vertices, projections become directed, weighted
// edges, and per-population/per-projection metadata that core.Graph does
// not itself model (population kind, size, synapse type) is tracked
// alongside it in small side maps keyed by the same IDs. Cycle detection
// reuses dfs.DFS; the connectivity-skeleton diagnostic reuses
// prim_kruskal.Kruskal over an undirected, weight-by-synapse-count view of
// the same population graph.
package biograph
