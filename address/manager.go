package address

import "github.com/wafermap/neurocore/coord"

// mergerState bundles one DNC merger's address pool and traffic mode.
type mergerState struct {
	pool *Pool
	mode Mode
}

// Manager owns one address pool and mode per (HICANN, DNC merger) pair on a
// wafer, created lazily on first use.
type Manager struct {
	opts  []Option
	chips map[coord.HICANNOnWafer]map[coord.DNCMergerOnHICANN]*mergerState
}

// NewManager returns a Manager whose pools are all constructed with opts.
func NewManager(opts ...Option) *Manager {
	return &Manager{
		opts:  opts,
		chips: make(map[coord.HICANNOnWafer]map[coord.DNCMergerOnHICANN]*mergerState),
	}
}

func (m *Manager) state(h coord.HICANNOnWafer, d coord.DNCMergerOnHICANN) *mergerState {
	byMerger, ok := m.chips[h]
	if !ok {
		byMerger = make(map[coord.DNCMergerOnHICANN]*mergerState)
		m.chips[h] = byMerger
	}
	st, ok := byMerger[d]
	if !ok {
		st = &mergerState{pool: NewPool(m.opts...)}
		byMerger[d] = st
	}
	return st
}

// Pop draws the next address for the given merger.
func (m *Manager) Pop(h coord.HICANNOnWafer, d coord.DNCMergerOnHICANN) (coord.L1Address, error) {
	return m.state(h, d).pool.Pop()
}

// Remaining reports how many addresses are left for the given merger.
func (m *Manager) Remaining(h coord.HICANNOnWafer, d coord.DNCMergerOnHICANN) int {
	return m.state(h, d).pool.Len()
}

// Mode reports the given merger's current traffic direction.
func (m *Manager) Mode(h coord.HICANNOnWafer, d coord.DNCMergerOnHICANN) Mode {
	return m.state(h, d).mode
}

// SetInput marks the given merger as carrying input traffic.
func (m *Manager) SetInput(h coord.HICANNOnWafer, d coord.DNCMergerOnHICANN) {
	m.state(h, d).mode.SetInput()
}

// SetOutput marks the given merger as carrying output traffic.
func (m *Manager) SetOutput(h coord.HICANNOnWafer, d coord.DNCMergerOnHICANN) error {
	return m.state(h, d).mode.SetOutput()
}
