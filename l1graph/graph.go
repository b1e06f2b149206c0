package l1graph

import (
	"math/rand"
	"sync"

	"github.com/wafermap/neurocore/coord"
)

// SwitchOrdering selects how intra-chip crossbar-switch edges are ordered
// during construction, which in turn biases later tie-breaking in the
// router's Dijkstra search.
type SwitchOrdering int

const (
	// InEnumOrder keeps the natural (H-line, V-line) enumeration order.
	InEnumOrder SwitchOrdering = iota
	// ShuffleWithHICANNEnumSeed shuffles deterministically, seeded from
	// each chip's own Id(), so the order differs per chip but is
	// reproducible across runs.
	ShuffleWithHICANNEnumSeed
	// ShuffleWithGivenSeed shuffles deterministically using a single
	// caller-supplied seed shared by every chip.
	ShuffleWithGivenSeed
)

// Graph is the wafer-wide L1 bus-fabric graph: always simple, undirected,
// and unweighted. mu follows the teacher's single-lock-guards-both-maps
// convention.
type Graph struct {
	mu        sync.RWMutex
	present   map[coord.HICANNOnWafer]struct{}
	vertices  map[VertexID]struct{}
	adjacency map[VertexID][]VertexID
}

// Build constructs the graph for the given set of present chips.
func Build(present []coord.HICANNOnWafer, ordering SwitchOrdering, seed int64) *Graph {
	g := &Graph{
		present:   make(map[coord.HICANNOnWafer]struct{}, len(present)),
		vertices:  make(map[VertexID]struct{}, len(present)*320),
		adjacency: make(map[VertexID][]VertexID, len(present)*320),
	}

	for _, h := range present {
		g.present[h] = struct{}{}
	}
	for _, h := range present {
		g.addAllVertices(h)
	}
	for _, h := range present {
		g.addCrossbarEdges(h, ordering, seed)
	}
	for _, h := range present {
		g.addContinuationEdges(h, g.present)
	}
	return g
}

func (g *Graph) addAllVertices(h coord.HICANNOnWafer) {
	for _, hl := range coord.AllHLineOnHICANN() {
		g.vertices[vertexH(h, hl)] = struct{}{}
	}
	for _, vl := range coord.AllVLineOnHICANN() {
		g.vertices[vertexV(h, vl)] = struct{}{}
	}
}

func (g *Graph) addCrossbarEdges(h coord.HICANNOnWafer, ordering SwitchOrdering, seed int64) {
	type pair struct {
		hl coord.HLineOnHICANN
		vl coord.VLineOnHICANN
	}
	var pairs []pair
	for _, hl := range coord.AllHLineOnHICANN() {
		for _, vl := range coord.AllVLineOnHICANN() {
			if coord.CrossbarExists(hl, vl) {
				pairs = append(pairs, pair{hl, vl})
			}
		}
	}

	switch ordering {
	case ShuffleWithHICANNEnumSeed:
		rng := rand.New(rand.NewSource(int64(h.Id())))
		rng.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })
	case ShuffleWithGivenSeed:
		rng := rand.New(rand.NewSource(seed))
		rng.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })
	}

	for _, p := range pairs {
		g.addEdge(vertexH(h, p.hl), vertexV(h, p.vl))
	}
}

func (g *Graph) addContinuationEdges(h coord.HICANNOnWafer, present map[coord.HICANNOnWafer]struct{}) {
	if east, err := h.East(); err == nil {
		if _, ok := present[east]; ok {
			for _, hl := range coord.AllHLineOnHICANN() {
				g.addEdge(vertexH(h, hl), vertexH(east, hl.East()))
			}
		}
	}
	if south, err := h.South(); err == nil {
		if _, ok := present[south]; ok {
			for _, vl := range coord.AllVLineOnHICANN() {
				g.addEdge(vertexV(h, vl), vertexV(south, vl.South()))
			}
		}
	}
}

func (g *Graph) addEdge(a, b VertexID) {
	g.adjacency[a] = append(g.adjacency[a], b)
	g.adjacency[b] = append(g.adjacency[b], a)
}

// HasVertex reports whether the vertex is part of the graph (its presence
// is permanent once built; Remove only clears adjacency, never the
// vertex descriptor itself).
func (g *Graph) HasVertex(v VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[v]
	return ok
}

// Neighbors returns v's adjacent vertices in construction order.
func (g *Graph) Neighbors(v VertexID) []VertexID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]VertexID, len(g.adjacency[v]))
	copy(out, g.adjacency[v])
	return out
}

// Vertices returns every vertex descriptor in the graph, in no particular
// order.
func (g *Graph) Vertices() []VertexID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]VertexID, 0, len(g.vertices))
	for v := range g.vertices {
		out = append(out, v)
	}
	return out
}

// VertexCount returns the total number of vertex descriptors.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Remove clears all edges incident to v (in both directions) but keeps v's
// descriptor in the graph, so indices captured before the call stay valid.
func (g *Graph) Remove(v VertexID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.removeAllEdgesLocked(v)
}

// RemoveHLine clears all edges incident to h's H-line vertex.
func (g *Graph) RemoveHLine(h coord.HICANNOnWafer, line coord.HLineOnHICANN) {
	g.Remove(vertexH(h, line))
}

// RemoveVLine clears all edges incident to h's V-line vertex.
func (g *Graph) RemoveVLine(h coord.HICANNOnWafer, line coord.VLineOnHICANN) {
	g.Remove(vertexV(h, line))
}

func (g *Graph) removeAllEdgesLocked(v VertexID) {
	nbrs := g.adjacency[v]
	g.adjacency[v] = nil
	for _, n := range nbrs {
		g.adjacency[n] = removeOne(g.adjacency[n], v)
	}
}

// RemoveHRepeater drops only the single continuation edge running to the
// neighbour chip on r's side (left->west, right->east), leaving r's
// crossbar-switch edges on h untouched. A no-op if that neighbour is not
// present (no such edge exists in the first place).
func (g *Graph) RemoveHRepeater(h coord.HICANNOnWafer, r coord.HRepeaterOnHICANN) {
	var neighbor coord.HICANNOnWafer
	var err error
	if r.ToSideHorizontal() == coord.SideLeft {
		neighbor, err = h.West()
	} else {
		neighbor, err = h.East()
	}
	if err != nil {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.present[neighbor]; !ok {
		return
	}
	a := vertexH(h, r.ToHLineOnHICANN())
	b := vertexH(neighbor, r.ToHLineOnHICANN().East())
	g.adjacency[a] = removeOne(g.adjacency[a], b)
	g.adjacency[b] = removeOne(g.adjacency[b], a)
}

// RemoveVRepeater drops only the single continuation edge running to the
// neighbour chip on r's side (top->north, bottom->south).
func (g *Graph) RemoveVRepeater(h coord.HICANNOnWafer, r coord.VRepeaterOnHICANN) {
	var neighbor coord.HICANNOnWafer
	var err error
	if r.ToSideVertical() == coord.Top {
		neighbor, err = h.North()
	} else {
		neighbor, err = h.South()
	}
	if err != nil {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.present[neighbor]; !ok {
		return
	}
	a := vertexV(h, r.ToVLineOnHICANN())
	b := vertexV(neighbor, r.ToVLineOnHICANN().South())
	g.adjacency[a] = removeOne(g.adjacency[a], b)
	g.adjacency[b] = removeOne(g.adjacency[b], a)
}

func removeOne(list []VertexID, target VertexID) []VertexID {
	out := list[:0]
	for _, v := range list {
		if v != target {
			out = append(out, v)
		}
	}
	return out
}
