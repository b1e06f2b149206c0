package biograph

import (
	"github.com/wafermap/neurocore/core"
	"github.com/wafermap/neurocore/dfs"
	"github.com/wafermap/neurocore/prim_kruskal"
)

// HasRecurrentLoop reports whether the bio-graph contains a cycle (spiking
// networks are allowed to feed back on themselves, so this is a diagnostic,
// not a construction-time error). It walks the graph with dfs.DFS, tracking
// which vertices are currently on the recursion stack via OnVisit/OnExit and
// flagging any neighbor that is still on-stack as a back edge.
func (bg *BioGraph) HasRecurrentLoop() (bool, error) {
	onStack := make(map[string]bool)
	foundCycle := false

	_, err := dfs.DFS(bg.g, "", dfs.WithFullTraversal(),
		dfs.WithOnVisit(func(id string) error {
			onStack[id] = true
			return nil
		}),
		dfs.WithOnExit(func(id string) error {
			onStack[id] = false
			return nil
		}),
		dfs.WithFilterNeighbor(func(id string) bool {
			if onStack[id] {
				foundCycle = true
				return false
			}
			return true
		}),
	)
	if err != nil {
		return false, err
	}
	return foundCycle, nil
}

// SkeletonEdge is one edge of the network's connectivity skeleton.
type SkeletonEdge struct {
	A, B         string
	SynapseCount int64
}

// ConnectivitySkeleton computes a minimum spanning forest over an
// undirected, synapse-count-weighted view of the population graph, as a
// non-fatal diagnostic of the network's backbone connectivity. It is not
// consulted by placement or routing; it exists purely for reporting.
func (bg *BioGraph) ConnectivitySkeleton() ([]SkeletonEdge, int64, error) {
	undirected := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	for _, p := range bg.pops {
		if err := undirected.AddVertex(p.ID); err != nil {
			return nil, 0, err
		}
	}
	for _, pr := range bg.Projections() {
		if pr.From == pr.To {
			continue
		}
		if _, err := undirected.AddEdge(pr.From, pr.To, int64(pr.SynapseCount)); err != nil {
			return nil, 0, err
		}
	}

	edges, total, err := prim_kruskal.Kruskal(undirected)
	if err != nil {
		return nil, 0, err
	}
	out := make([]SkeletonEdge, len(edges))
	for i, e := range edges {
		out[i] = SkeletonEdge{A: e.From, B: e.To, SynapseCount: e.Weight}
	}
	return out, total, nil
}
