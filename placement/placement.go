package placement

import (
	"errors"
	"fmt"

	"github.com/wafermap/neurocore/coord"
)

// ErrNoSuchLogicalNeuron is returned by SetAddress when no placed item
// matches the given logical neuron ID.
var ErrNoSuchLogicalNeuron = errors.New("placement: no such logical neuron")

type blockKey struct {
	HICANN coord.HICANNOnWafer
	Block  coord.NeuronBlockOnHICANN
}

// Placement is the multi-indexed placement result container: items are
// indexed by logical neuron, by population, and by (HICANN, neuron block).
type Placement struct {
	items           []*Item
	byLogicalNeuron map[int]*Item
	byPopulation    map[string][]*Item
	byBlock         map[blockKey][]*Item
	nextLogical     int
}

// New returns an empty Placement container.
func New() *Placement {
	return &Placement{
		byLogicalNeuron: make(map[int]*Item),
		byPopulation:    make(map[string][]*Item),
		byBlock:         make(map[blockKey][]*Item),
	}
}

// add assigns item a fresh logical-neuron ID, indexes it, and returns that ID.
func (p *Placement) add(item *Item) int {
	id := p.nextLogical
	p.nextLogical++
	item.LogicalNeuron = id

	p.items = append(p.items, item)
	p.byLogicalNeuron[id] = item
	p.byPopulation[item.PopulationID] = append(p.byPopulation[item.PopulationID], item)

	key := blockKey{HICANN: item.HICANN, Block: item.Block}
	p.byBlock[key] = append(p.byBlock[key], item)
	return id
}

// SetAddress mutates only the address field of the item with the given
// logical-neuron ID. Returns ErrNoSuchLogicalNeuron if none matches.
func (p *Placement) SetAddress(logicalNeuron int, addr coord.L1Address) error {
	item, ok := p.byLogicalNeuron[logicalNeuron]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNoSuchLogicalNeuron, logicalNeuron)
	}
	a := addr
	item.Address = &a
	return nil
}

// All returns every placed item, in placement order.
func (p *Placement) All() []*Item {
	out := make([]*Item, len(p.items))
	copy(out, p.items)
	return out
}

// ByPopulation returns every item placed from the given population.
func (p *Placement) ByPopulation(id string) []*Item {
	return append([]*Item{}, p.byPopulation[id]...)
}

// ByBlock returns every item occupying the given chip's neuron block.
func (p *Placement) ByBlock(h coord.HICANNOnWafer, block coord.NeuronBlockOnHICANN) []*Item {
	return append([]*Item{}, p.byBlock[blockKey{HICANN: h, Block: block}]...)
}

// ByLogicalNeuron looks up a single item by its logical-neuron ID.
func (p *Placement) ByLogicalNeuron(id int) (*Item, bool) {
	item, ok := p.byLogicalNeuron[id]
	return item, ok
}
