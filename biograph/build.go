package biograph

import (
	"fmt"

	"github.com/wafermap/neurocore/core"
)

// BioGraph is the built biological network: a directed, weighted,
// multi-edge core.Graph of populations and projections, plus the
// per-population/per-projection metadata core.Graph does not itself model.
type BioGraph struct {
	g  *core.Graph
	// pops preserves declaration order for deterministic iteration.
	pops    []PopulationSpec
	popByID map[string]PopulationSpec
	// projByEdgeID maps a core.Edge.ID to the projection metadata it
	// represents.
	projByEdgeID map[string]ProjectionSpec
}

// Build constructs a BioGraph from a NetworkSource, validating population
// uniqueness and projection endpoint references.
func Build(src NetworkSource) (*BioGraph, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges())
	bg := &BioGraph{
		g:            g,
		popByID:      make(map[string]PopulationSpec),
		projByEdgeID: make(map[string]ProjectionSpec),
	}

	for _, p := range src.Populations() {
		if p.ID == "" {
			return nil, ErrEmptyPopulationID
		}
		if p.Size <= 0 {
			return nil, fmt.Errorf("%w: population %q has size %d", ErrZeroSize, p.ID, p.Size)
		}
		if _, exists := bg.popByID[p.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePopulation, p.ID)
		}
		if err := g.AddVertex(p.ID); err != nil {
			return nil, err
		}
		bg.popByID[p.ID] = p
		bg.pops = append(bg.pops, p)
	}

	for _, pr := range src.Projections() {
		if _, ok := bg.popByID[pr.From]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPopulation, pr.From)
		}
		if _, ok := bg.popByID[pr.To]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPopulation, pr.To)
		}
		eid, err := g.AddEdge(pr.From, pr.To, int64(pr.SynapseCount))
		if err != nil {
			return nil, err
		}
		bg.projByEdgeID[eid] = pr
	}

	return bg, nil
}

// Populations returns every declared population, in declaration order.
func (bg *BioGraph) Populations() []PopulationSpec {
	out := make([]PopulationSpec, len(bg.pops))
	copy(out, bg.pops)
	return out
}

// Population looks up a single population by ID.
func (bg *BioGraph) Population(id string) (PopulationSpec, bool) {
	p, ok := bg.popByID[id]
	return p, ok
}

// Projections returns every resolved projection, ordered by underlying
// edge ID (core.Graph's own deterministic edge order).
func (bg *BioGraph) Projections() []Projection {
	edges := bg.g.Edges()
	out := make([]Projection, 0, len(edges))
	for _, e := range edges {
		out = append(out, Projection{EdgeID: e.ID, ProjectionSpec: bg.projByEdgeID[e.ID]})
	}
	return out
}

// ProjectionsFrom returns every projection whose source is the given
// population, in deterministic edge order.
func (bg *BioGraph) ProjectionsFrom(popID string) ([]Projection, error) {
	edges, err := bg.g.Neighbors(popID)
	if err != nil {
		return nil, err
	}
	out := make([]Projection, 0, len(edges))
	for _, e := range edges {
		if e.From != popID {
			continue
		}
		out = append(out, Projection{EdgeID: e.ID, ProjectionSpec: bg.projByEdgeID[e.ID]})
	}
	return out, nil
}

// IsSource reports whether the named population is a virtual spike source.
func (bg *BioGraph) IsSource(popID string) bool {
	return bg.popByID[popID].Kind == KindSource
}

// IsPhysical reports whether the named population is pinned to fixed
// hardware coordinates.
func (bg *BioGraph) IsPhysical(popID string) bool {
	return bg.popByID[popID].Kind == KindPhysical
}

// IsSpikeInput reports whether the named population only relays an
// external input channel.
func (bg *BioGraph) IsSpikeInput(popID string) bool {
	return bg.popByID[popID].Kind == KindSpikeInput
}

// Graph exposes the underlying core.Graph for callers (e.g. placement)
// that need direct adjacency queries.
func (bg *BioGraph) Graph() *core.Graph {
	return bg.g
}
