package coord

import "fmt"

// NeuronOnHICANN is the logical index of a neuron circuit within a neuron
// block (denmem-pair granularity), used by placement to address a specific
// biological neuron's hardware circuit.
type NeuronOnHICANN struct {
	Block NeuronBlockOnHICANN
	Index uint8
}

const NeuronsPerBlock = 32

func (n NeuronOnHICANN) String() string {
	return fmt.Sprintf("NeuronOnHICANN(block=%d,idx=%d)", n.Block, n.Index)
}

// DenmemOnHICANN is a single dendritic-membrane circuit, the atomic unit of
// neuron-circuit merging for larger logical neurons.
type DenmemOnHICANN struct {
	Block NeuronBlockOnHICANN
	Index uint8
}

const DenmemsPerBlock = NeuronsPerBlock

func (d DenmemOnHICANN) String() string {
	return fmt.Sprintf("DenmemOnHICANN(block=%d,idx=%d)", d.Block, d.Index)
}

// SynapseDriverOnHICANN indexes one of the 224 synapse drivers on a chip,
// organized as rows on the left and right side of the synapse array.
type SynapseDriverOnHICANN struct {
	Side Side
	Y    uint8
}

const SynapseDriversPerSide = 112

func (s SynapseDriverOnHICANN) ToSideHorizontal() Side { return s.Side }

func (s SynapseDriverOnHICANN) String() string {
	return fmt.Sprintf("SynapseDriverOnHICANN(%s,%d)", s.Side, s.Y)
}

// SynapseRowOnHICANN is one of the two synapse rows belonging to a driver.
type SynapseRowOnHICANN struct {
	Driver SynapseDriverOnHICANN
	Row    uint8 // 0 or 1
}

// SynapseColumnOnHICANN indexes one of the 256 synapse columns on a chip,
// aligned with denmem index.
type SynapseColumnOnHICANN uint16

const SynapseColumnCount = 256

func (c SynapseColumnOnHICANN) Value() int { return int(c) }

// L1Address is the 6-bit address tag carried by an L1 event, identifying
// its logical source among those sharing a synapse driver's input line.
type L1Address uint8

const L1AddressCount = 64

// NewL1Address validates and constructs an L1Address.
func NewL1Address(v int) (L1Address, error) {
	if v < 0 || v >= L1AddressCount {
		return 0, fmt.Errorf("%w: L1Address(%d)", ErrOutOfRange, v)
	}
	return L1Address(v), nil
}

func (a L1Address) Value() int { return int(a) }

func (a L1Address) String() string { return fmt.Sprintf("L1Address(%d)", int(a)) }
