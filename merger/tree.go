package merger

import (
	"fmt"

	"github.com/wafermap/neurocore/bfs"
	"github.com/wafermap/neurocore/coord"
	"github.com/wafermap/neurocore/core"
)

func m0ID(m coord.Merger0OnHICANN) string { return fmt.Sprintf("m0:%d", m) }
func m1ID(m coord.Merger1OnHICANN) string { return fmt.Sprintf("m1:%d", m) }
func m2ID(m coord.Merger2OnHICANN) string { return fmt.Sprintf("m2:%d", m) }
func m3ID() string                        { return "m3:0" }
func dncID(d coord.DNCMergerOnHICANN) string { return fmt.Sprintf("dnc:%d", d) }

// buildTree returns a fresh, fully-intact working graph of the merger DAG:
// one DNC-merger node wired to its home tier-0 leaf, and the fixed
// leaf->tier1->tier2->tier3 combining tree above it.
func buildTree() *core.Graph {
	g := core.NewGraph()

	for i := 0; i < coord.Merger0Count; i++ {
		m0 := coord.Merger0OnHICANN(i)
		_ = g.AddVertex(m0ID(m0))
		_, _ = g.AddEdge(m0ID(m0), m1ID(m0.ParentMerger1()), 0)
	}
	for i := 0; i < coord.Merger1Count; i++ {
		m1 := coord.Merger1OnHICANN(i)
		_, _ = g.AddEdge(m1ID(m1), m2ID(m1.ParentMerger2()), 0)
	}
	for i := 0; i < coord.Merger2Count; i++ {
		m2 := coord.Merger2OnHICANN(i)
		_, _ = g.AddEdge(m2ID(m2), m3ID(), 0)
	}
	for i := 0; i < coord.DNCMergerCount; i++ {
		d := coord.DNCMergerOnHICANN(i)
		_, _ = g.AddEdge(dncID(d), m0ID(d.HomeMerger0()), 0)
	}
	return g
}

// reachableLeaves runs a BFS from dnc's node and returns the set of
// reachable tier-0 leaves, reflecting any edges earlier candidates have
// already claimed and cleared.
func reachableLeaves(g *core.Graph, d coord.DNCMergerOnHICANN) map[coord.Merger0OnHICANN]bool {
	out := make(map[coord.Merger0OnHICANN]bool)
	res, err := bfs.BFS(g, dncID(d))
	if err != nil {
		return out
	}
	for i := 0; i < coord.Merger0Count; i++ {
		m0 := coord.Merger0OnHICANN(i)
		if _, ok := res.Depth[m0ID(m0)]; ok {
			out[m0] = true
		}
	}
	return out
}

// clearNode drops every edge incident to id, isolating it without removing
// its vertex descriptor — grounded on the original_source idiom of
// clear_vertex() over remove_vertex() so indices stay stable.
func clearNode(g *core.Graph, id string) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return
	}
	for _, e := range edges {
		_ = g.RemoveEdge(e.ID)
	}
}

// clearSubtree isolates every internal tree node spanned by a claimed
// merge: the tier-0 leaves always, plus their shared tier-1/tier-2/tier-3
// ancestors as the claimed level grows, so no later candidate can BFS
// through the now-used subtree.
func clearSubtree(g *core.Graph, level int, blocks []coord.NeuronBlockOnHICANN) {
	seenM1 := make(map[coord.Merger1OnHICANN]bool)
	seenM2 := make(map[coord.Merger2OnHICANN]bool)

	for _, b := range blocks {
		m0 := coord.Merger0OnHICANN(b)
		clearNode(g, m0ID(m0))
		if level >= 1 {
			seenM1[m0.ParentMerger1()] = true
		}
	}
	for m1 := range seenM1 {
		clearNode(g, m1ID(m1))
		if level >= 2 {
			seenM2[m1.ParentMerger2()] = true
		}
	}
	for m2 := range seenM2 {
		clearNode(g, m2ID(m2))
	}
	if level >= 3 {
		clearNode(g, m3ID())
	}
}
