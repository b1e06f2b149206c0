package placement

import "github.com/wafermap/neurocore/coord"

// Pin constrains a request to a specific chip and/or neuron block.
type Pin struct {
	HICANN *coord.HICANNOnWafer
	Block  *coord.NeuronBlockOnHICANN
}

// Request is one NeuronPlacementRequest: a contiguous run of BioCount
// biological neurons from Population, each HWNeuronSize denmem columns
// wide, placed together as a single rectangle.
type Request struct {
	PopulationID  string
	StartBioIndex int
	BioCount      int
	HWNeuronSize  int
	Pin           *Pin
	Priority      int
}

// Item is one placed biological neuron: its column run within a specific
// chip's neuron block, and (once assigned) its L1 address.
type Item struct {
	PopulationID  string
	BioNeuronIdx  int
	LogicalNeuron int
	HICANN        coord.HICANNOnWafer
	Block         coord.NeuronBlockOnHICANN
	StartColumn   int
	Width         int
	Address       *coord.L1Address
}

// LossRecord marks a request (or a part of one) that could not be placed.
type LossRecord struct {
	PopulationID string
	BioNeuronIdx int
	Reason       string
}
