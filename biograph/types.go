package biograph

import "errors"

// Sentinel errors returned by this package.
var (
	// ErrNilSource indicates Build was called with a nil NetworkSource.
	ErrNilSource = errors.New("biograph: network source is nil")

	// ErrDuplicatePopulation indicates two PopulationSpecs share an ID.
	ErrDuplicatePopulation = errors.New("biograph: duplicate population ID")

	// ErrUnknownPopulation indicates a projection references a population
	// ID that was never declared.
	ErrUnknownPopulation = errors.New("biograph: projection references unknown population")

	// ErrEmptyPopulationID indicates a PopulationSpec has an empty ID.
	ErrEmptyPopulationID = errors.New("biograph: population ID is empty")

	// ErrZeroSize indicates a PopulationSpec declares zero or negative size.
	ErrZeroSize = errors.New("biograph: population size must be positive")
)

// PopulationKind classifies a population's role in the mapping pipeline.
type PopulationKind int

const (
	// KindInternal is an ordinary population of placed neurons.
	KindInternal PopulationKind = iota

	// KindSource is a virtual, off-wafer spike source (no hardware neuron
	// circuits are placed for it).
	KindSource

	// KindPhysical is a population explicitly pinned to specific hardware
	// neuron coordinates rather than left to the placement heuristic.
	KindPhysical

	// KindSpikeInput is an on-wafer population that only relays spikes
	// in from an external input channel (e.g. a DNC input merger).
	KindSpikeInput
)

func (k PopulationKind) String() string {
	switch k {
	case KindSource:
		return "source"
	case KindPhysical:
		return "physical"
	case KindSpikeInput:
		return "spike-input"
	default:
		return "internal"
	}
}

// PopulationSpec describes one biological population.
type PopulationSpec struct {
	ID   string
	Size int
	Kind PopulationKind
}

// SynapseType distinguishes excitatory from inhibitory projections, which
// synapse-driver allocation (syndrive) must keep on separate rows.
type SynapseType int

const (
	SynapseExcitatory SynapseType = iota
	SynapseInhibitory
)

func (t SynapseType) String() string {
	if t == SynapseInhibitory {
		return "inhibitory"
	}
	return "excitatory"
}

// ProjectionSpec describes one directed projection between two populations.
type ProjectionSpec struct {
	From, To     string
	SynapseCount int
	Type         SynapseType
}

// NetworkSource is implemented by callers to describe the biological
// network to Build; it is the only consumed boundary of this package.
type NetworkSource interface {
	Populations() []PopulationSpec
	Projections() []ProjectionSpec
}

// Projection is a resolved projection annotated with the stable edge ID
// assigned to it in the underlying graph.
type Projection struct {
	EdgeID string
	ProjectionSpec
}
