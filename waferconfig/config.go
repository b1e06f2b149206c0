package waferconfig

import (
	"github.com/wafermap/neurocore/address"
	"github.com/wafermap/neurocore/coord"
	"github.com/wafermap/neurocore/l1graph"
	"github.com/wafermap/neurocore/merger"
	"github.com/wafermap/neurocore/placement"
)

// L1Algorithm selects the L1 routing algorithm pipeline.Run uses for C9.
type L1Algorithm int

const (
	// Backbone routes greedily along the bus backbone with branch/detour
	// fallback (no global search).
	Backbone L1Algorithm = iota
	// Dijkstra routes via weighted shortest path over the full L1 graph.
	Dijkstra
)

func (a L1Algorithm) String() string {
	if a == Dijkstra {
		return "dijkstra"
	}
	return "backbone"
}

// Pin constrains one biological population (or a single bio-neuron within
// it, when BioIndex is set) to a specific chip and/or neuron block.
type Pin struct {
	PopulationID string
	BioIndex     *int
	HICANN       *coord.HICANNOnWafer
	Block        *coord.NeuronBlockOnHICANN
}

// Config is the full user-facing configuration surface for one pipeline
// run: everything the spec's "Configuration surface" names, and nothing
// it doesn't — component internals stay owned by their own packages.
type Config struct {
	Wafer coord.WaferIndex

	// Pins constrains a subset of populations (or individual bio-neurons)
	// to specific chips or neuron blocks; unpinned requests are left to
	// the placement heuristic.
	Pins []Pin

	// MergerStrategy and MergerOracle configure C7; MergerOracle may be
	// nil unless MergerStrategy is merger.MinimizeAsPossible.
	MergerStrategy Strategy
	MergerOracle   merger.ConstrainMergers

	// AddressStrategy configures C8's per-(HICANN,DNCMerger) pool pop
	// order.
	AddressStrategy address.Strategy

	// L1Algorithm and its switch-order strategy/seed configure C5/C9.
	L1Algorithm        L1Algorithm
	SwitchOrdering     l1graph.SwitchOrdering
	SwitchOrderingSeed int64

	// ProjectionPriority maps a projection's stable edge ID (biograph's
	// Projection.EdgeID) to a real-valued priority >= 1; projections with
	// no entry default to priority 1.
	ProjectionPriority map[string]float64
}

// Strategy re-exports merger.Strategy so callers configure C7 without an
// explicit import of merger for the common case.
type Strategy = merger.Strategy

// PinFor looks up the pin, if any, that applies to a (population, bio
// index) pair: an exact bio-index pin takes precedence over a
// population-wide one.
func (c Config) PinFor(populationID string, bioIndex int) *placement.Pin {
	var populationPin *Pin
	for i := range c.Pins {
		p := &c.Pins[i]
		if p.PopulationID != populationID {
			continue
		}
		if p.BioIndex != nil && *p.BioIndex == bioIndex {
			return &placement.Pin{HICANN: p.HICANN, Block: p.Block}
		}
		if p.BioIndex == nil {
			populationPin = p
		}
	}
	if populationPin == nil {
		return nil
	}
	return &placement.Pin{HICANN: populationPin.HICANN, Block: populationPin.Block}
}

// PriorityFor returns the configured priority for a projection edge ID,
// defaulting to 1 when unset.
func (c Config) PriorityFor(edgeID string) float64 {
	if p, ok := c.ProjectionPriority[edgeID]; ok {
		return p
	}
	return 1
}
