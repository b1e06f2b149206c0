package address

import (
	"errors"

	"github.com/wafermap/neurocore/coord"
)

// ErrPoolExhausted is returned by Pop when no addresses remain.
var ErrPoolExhausted = errors.New("address: pool exhausted")

// Strategy selects the order in which Pop hands out addresses.
type Strategy int

const (
	// LowFirst pops the lowest remaining address each call.
	LowFirst Strategy = iota
	// HighFirst pops the highest remaining address each call.
	HighFirst
	// Alternating toggles between the lowest and highest remaining address
	// on each call, starting from the front (lowest).
	Alternating
)

// Option configures a Pool, mirroring the teacher's functional-options
// construction style (dijkstra.Option).
type Option func(*Pool)

// WithStrategy sets the pop strategy. The default is LowFirst.
func WithStrategy(s Strategy) Option {
	return func(p *Pool) { p.strategy = s }
}

// legalAddresses returns the 59 non-reserved 6-bit addresses in ascending
// order: address 0 and the four 0bXX0001 "weight-0" values are excluded.
func legalAddresses() []coord.L1Address {
	out := make([]coord.L1Address, 0, coord.L1AddressCount)
	for v := 0; v < coord.L1AddressCount; v++ {
		if v == 0 || v&0xF == 1 {
			continue
		}
		a, err := coord.NewL1Address(v)
		if err != nil {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Pool is one DNC merger's free list of legal L1 addresses.
type Pool struct {
	remaining []coord.L1Address
	strategy  Strategy
	nextHigh  bool
}

// NewPool returns a fresh pool seeded with all 59 legal addresses.
func NewPool(opts ...Option) *Pool {
	p := &Pool{remaining: legalAddresses(), strategy: LowFirst}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Len reports how many addresses remain unclaimed.
func (p *Pool) Len() int { return len(p.remaining) }

// Pop removes and returns the next address per the pool's strategy.
func (p *Pool) Pop() (coord.L1Address, error) {
	if len(p.remaining) == 0 {
		return 0, ErrPoolExhausted
	}

	takeHigh := p.strategy == HighFirst
	if p.strategy == Alternating {
		takeHigh = p.nextHigh
		p.nextHigh = !p.nextHigh
	}

	var a coord.L1Address
	if takeHigh {
		last := len(p.remaining) - 1
		a = p.remaining[last]
		p.remaining = p.remaining[:last]
	} else {
		a = p.remaining[0]
		p.remaining = p.remaining[1:]
	}
	return a, nil
}
