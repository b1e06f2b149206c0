package synmap

import (
	"errors"

	"github.com/wafermap/neurocore/coord"
)

// ErrTooManyTargets is returned when a compound neuron carries more than
// four distinct synapse targets.
var ErrTooManyTargets = errors.New("synmap: compound neuron has more than four synapse targets")

// Parity is a denmem column's even/odd classification.
type Parity int

const (
	Even Parity = iota
	Odd
)

// ColumnParity derives a denmem's column parity from its absolute synapse
// column index.
func ColumnParity(column int) Parity {
	if column%2 == 0 {
		return Even
	}
	return Odd
}

// table[targetCount-1][parity][side] is the index into the target slice
// that the given (parity, side) denmem input receives, per the fixed
// target-count table. Side reuses coord.Side (SideLeft=0, SideRight=1).
var table = [4][2][2]int{
	{{0, 0}, {0, 0}}, // 1 target
	{{0, 1}, {0, 1}}, // 2 targets
	{{0, 1}, {0, 2}}, // 3 targets
	{{0, 1}, {2, 3}}, // 4 targets
}

// TargetMapping is the resolved target assignment for one compound neuron;
// Targets holds the population's synapse-target tags in order (t0, t1, ...).
type TargetMapping struct {
	Targets []string
}

// NewTargetMapping validates targets (at most four) and returns a mapping.
func NewTargetMapping(targets []string) (*TargetMapping, error) {
	if len(targets) > 4 {
		return nil, ErrTooManyTargets
	}
	return &TargetMapping{Targets: targets}, nil
}

// Resolve returns the synapse-target tag for a denmem's synaptic input at
// the given column and side; top and bottom rows of a compound neuron use
// the same (column, side) and so always resolve identically.
func (m *TargetMapping) Resolve(column int, side coord.Side) (string, bool) {
	n := len(m.Targets)
	if n == 0 {
		return "", false
	}
	idx := table[n-1][ColumnParity(column)][side]
	if idx >= n {
		return "", false
	}
	return m.Targets[idx], true
}
