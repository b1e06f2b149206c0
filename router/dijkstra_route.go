package router

import (
	"errors"

	"github.com/wafermap/neurocore/core"
	"github.com/wafermap/neurocore/dijkstra"
	"github.com/wafermap/neurocore/l1graph"
)

// ErrSourceNotInGraph is returned when a route's source vertex is absent
// from the routing graph.
var ErrSourceNotInGraph = errors.New("router: source vertex not present in routing graph")

// switchKey identifies one chip's H-line, used to enforce the
// one-switch-per-bus rule: an H-line may be entered from at most one
// V-line across every route accepted so far.
type switchKey struct {
	hicann string
	hline  uint16
}

// UsedSwitches tracks, per H-line, which V-line has already switched onto
// it, shared across every source routed in a run so later requests are
// steered away from reusing an already-committed crossbar switch.
type UsedSwitches struct {
	committed map[switchKey]uint16
}

// NewUsedSwitches returns an empty switch-usage tracker.
func NewUsedSwitches() *UsedSwitches {
	return &UsedSwitches{committed: make(map[switchKey]uint16)}
}

func (u *UsedSwitches) conflicts(hline, vline l1graph.VertexID) bool {
	k := switchKey{hicann: hline.HICANN.String(), hline: hline.Index}
	got, ok := u.committed[k]
	return ok && got != vline.Index
}

func (u *UsedSwitches) commit(hline, vline l1graph.VertexID) {
	k := switchKey{hicann: hline.HICANN.String(), hline: hline.Index}
	u.committed[k] = vline.Index
}

// DijkstraRoute finds, for each target, the shortest weighted path from
// source to any vertex on that target's chip matching its Orientation,
// rejecting any candidate path that would switch a given H-line from more
// than one V-line (checked against used, which is then updated with the
// accepted path's switches). Targets with no valid path are omitted from
// the returned map.
func DijkstraRoute(g *l1graph.Graph, source l1graph.VertexID, targets []Target, weights *L1EdgeWeights, used *UsedSwitches) (map[Target][]l1graph.VertexID, error) {
	if !g.HasVertex(source) {
		return nil, ErrSourceNotInGraph
	}
	if weights == nil {
		weights = NewL1EdgeWeights()
	}
	if used == nil {
		used = NewUsedSwitches()
	}

	cg, idIndex := toCoreGraph(g, weights)
	sourceID := source.String()

	dist, prev, err := dijkstra.Dijkstra(cg, dijkstra.Source(sourceID), dijkstra.WithReturnPath())
	if err != nil {
		return nil, err
	}

	out := make(map[Target][]l1graph.VertexID, len(targets))
	for _, t := range targets {
		best, ok := bestTargetVertex(g, dist, t)
		if !ok {
			continue
		}
		path := reconstructPath(prev, idIndex, sourceID, best.String())
		if path == nil {
			continue
		}
		if violatesOneSwitchPerBus(path, used) {
			continue
		}
		commitSwitches(path, used)
		out[t] = path
	}
	return out, nil
}

func toCoreGraph(g *l1graph.Graph, weights *L1EdgeWeights) (*core.Graph, map[string]l1graph.VertexID) {
	cg := core.NewGraph(core.WithWeighted())
	idIndex := make(map[string]l1graph.VertexID)

	vertices := g.Vertices()
	for _, v := range vertices {
		idIndex[v.String()] = v
		_ = cg.AddVertex(v.String())
	}
	seen := make(map[edgeKey]bool)
	for _, v := range vertices {
		for _, n := range g.Neighbors(v) {
			key := normalizedEdgeKey(v, n)
			if seen[key] {
				continue
			}
			seen[key] = true
			_, _ = cg.AddEdge(v.String(), n.String(), weights.Weight(v, n))
		}
	}
	return cg, idIndex
}

func bestTargetVertex(g *l1graph.Graph, dist map[string]int64, t Target) (l1graph.VertexID, bool) {
	var best l1graph.VertexID
	bestDist := int64(-1)
	found := false
	for _, v := range g.Vertices() {
		if v.HICANN != t.HICANN || v.Kind != t.Orientation {
			continue
		}
		d, ok := dist[v.String()]
		if !ok {
			continue
		}
		if !found || d < bestDist {
			best, bestDist, found = v, d, true
		}
	}
	return best, found
}

func reconstructPath(prev map[string]string, idIndex map[string]l1graph.VertexID, sourceID, targetID string) []l1graph.VertexID {
	if targetID != sourceID {
		if _, ok := prev[targetID]; !ok {
			return nil
		}
	}
	var rev []string
	cur := targetID
	for cur != sourceID {
		rev = append(rev, cur)
		next, ok := prev[cur]
		if !ok {
			return nil
		}
		cur = next
	}
	rev = append(rev, sourceID)

	out := make([]l1graph.VertexID, len(rev))
	for i, id := range rev {
		out[len(rev)-1-i] = idIndex[id]
	}
	return out
}

func violatesOneSwitchPerBus(path []l1graph.VertexID, used *UsedSwitches) bool {
	local := make(map[switchKey]uint16)
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		if a.Kind == b.Kind || a.HICANN != b.HICANN {
			continue
		}
		var hline, vline l1graph.VertexID
		if a.Kind == l1graph.LineH {
			hline, vline = a, b
		} else {
			hline, vline = b, a
		}
		if used.conflicts(hline, vline) {
			return true
		}
		k := switchKey{hicann: hline.HICANN.String(), hline: hline.Index}
		if got, ok := local[k]; ok && got != vline.Index {
			return true
		}
		local[k] = vline.Index
	}
	return false
}

func commitSwitches(path []l1graph.VertexID, used *UsedSwitches) {
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		if a.Kind == b.Kind || a.HICANN != b.HICANN {
			continue
		}
		if a.Kind == l1graph.LineH {
			used.commit(a, b)
		} else {
			used.commit(b, a)
		}
	}
}
