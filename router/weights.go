package router

import "github.com/wafermap/neurocore/l1graph"

type edgeKey struct {
	a, b l1graph.VertexID
}

func normalizedEdgeKey(a, b l1graph.VertexID) edgeKey {
	if a.String() <= b.String() {
		return edgeKey{a, b}
	}
	return edgeKey{b, a}
}

// L1EdgeWeights holds per-edge and per-vertex weight overrides for the
// Dijkstra algorithm. An explicit edge weight always wins; otherwise, if
// either endpoint has a vertex weight, the edge's weight is the max of the
// two endpoints' vertex weights. With neither set, the default weight is 1.
type L1EdgeWeights struct {
	edge   map[edgeKey]int64
	vertex map[l1graph.VertexID]int64
}

// NewL1EdgeWeights returns an empty weight override set (every edge costs
// the default weight of 1 until overridden).
func NewL1EdgeWeights() *L1EdgeWeights {
	return &L1EdgeWeights{
		edge:   make(map[edgeKey]int64),
		vertex: make(map[l1graph.VertexID]int64),
	}
}

// SetEdgeWeight overrides the weight of the edge between a and b.
func (w *L1EdgeWeights) SetEdgeWeight(a, b l1graph.VertexID, weight int64) {
	w.edge[normalizedEdgeKey(a, b)] = weight
}

// SetVertexWeight overrides v's vertex weight, used as a fallback for any
// incident edge that has no explicit edge weight of its own.
func (w *L1EdgeWeights) SetVertexWeight(v l1graph.VertexID, weight int64) {
	w.vertex[v] = weight
}

// Weight resolves the traversal cost of the edge between a and b.
func (w *L1EdgeWeights) Weight(a, b l1graph.VertexID) int64 {
	if ew, ok := w.edge[normalizedEdgeKey(a, b)]; ok {
		return ew
	}
	va, aok := w.vertex[a]
	vb, bok := w.vertex[b]
	switch {
	case aok && bok:
		if va > vb {
			return va
		}
		return vb
	case aok:
		return va
	case bok:
		return vb
	default:
		return 1
	}
}
