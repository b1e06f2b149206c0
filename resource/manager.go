package resource

import (
	"fmt"
	"sort"
	"sync"

	"github.com/wafermap/neurocore/coord"
)

// Manager tracks the present/masked/allocated state of every chip on one
// wafer, plus per-chip component defects loaded from a DefectProvider.
type Manager struct {
	mu sync.RWMutex

	wafer coord.WaferIndex

	// present holds every chip coordinate the wafer's reticle mask allows;
	// computed once at construction and immutable thereafter.
	present map[coord.HICANNOnWafer]struct{}

	masked     map[coord.HICANNOnWafer]struct{}
	allocated  map[coord.HICANNOnWafer]struct{}
	defectiveNeurons map[coord.HICANNOnWafer]map[coord.NeuronOnHICANN]struct{}
	defectiveDrivers map[coord.HICANNOnWafer]map[coord.SynapseDriverOnHICANN]struct{}
}

// NewManager constructs a Manager whose inventory is every chip permitted
// by the wafer's reticle mask, none masked, none allocated.
func NewManager(wafer coord.WaferIndex) *Manager {
	m := &Manager{
		wafer:            wafer,
		present:          make(map[coord.HICANNOnWafer]struct{}),
		masked:           make(map[coord.HICANNOnWafer]struct{}),
		allocated:        make(map[coord.HICANNOnWafer]struct{}),
		defectiveNeurons: make(map[coord.HICANNOnWafer]map[coord.NeuronOnHICANN]struct{}),
		defectiveDrivers: make(map[coord.HICANNOnWafer]map[coord.SynapseDriverOnHICANN]struct{}),
	}
	for _, h := range coord.AllHICANNOnWafer() {
		m.present[h] = struct{}{}
	}
	return m
}

// LoadDefects applies a defect report fetched from provider, masking any
// chip the report flags and recording per-chip component defects.
func (m *Manager) LoadDefects(provider DefectProvider) error {
	defects, err := provider.DefectsFor(m.wafer)
	if err != nil {
		return fmt.Errorf("resource: loading defects for wafer %d: %w", m.wafer, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for h, d := range defects.PerHICANN {
		if _, ok := m.present[h]; !ok {
			continue
		}
		if d.Masked {
			m.masked[h] = struct{}{}
		}
		if len(d.Neurons) > 0 {
			set := m.defectiveNeurons[h]
			if set == nil {
				set = make(map[coord.NeuronOnHICANN]struct{}, len(d.Neurons))
				m.defectiveNeurons[h] = set
			}
			for _, n := range d.Neurons {
				set[n] = struct{}{}
			}
		}
		if len(d.Drivers) > 0 {
			set := m.defectiveDrivers[h]
			if set == nil {
				set = make(map[coord.SynapseDriverOnHICANN]struct{}, len(d.Drivers))
				m.defectiveDrivers[h] = set
			}
			for _, dr := range d.Drivers {
				set[dr] = struct{}{}
			}
		}
	}
	return nil
}

// IsPresent reports whether h names a chip on the wafer's reticle mask.
func (m *Manager) IsPresent(h coord.HICANNOnWafer) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.present[h]
	return ok
}

// IsMasked reports whether h is defect-masked.
func (m *Manager) IsMasked(h coord.HICANNOnWafer) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.masked[h]
	return ok
}

// IsAllocated reports whether h is currently allocated.
func (m *Manager) IsAllocated(h coord.HICANNOnWafer) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.allocated[h]
	return ok
}

// IsAvailable reports whether h is present, unmasked and unallocated.
func (m *Manager) IsAvailable(h coord.HICANNOnWafer) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.present[h]; !ok {
		return false
	}
	if _, ok := m.masked[h]; ok {
		return false
	}
	_, allocated := m.allocated[h]
	return !allocated
}

// Allocate marks h as allocated, failing if it is absent, masked or
// already allocated.
func (m *Manager) Allocate(h coord.HICANNOnWafer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.present[h]; !ok {
		return fmt.Errorf("%w: %s", ErrHICANNNotPresent, h)
	}
	if _, ok := m.masked[h]; ok {
		return fmt.Errorf("%w: %s", ErrHICANNMasked, h)
	}
	if _, ok := m.allocated[h]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyAllocated, h)
	}
	m.allocated[h] = struct{}{}
	return nil
}

// Release marks h as no longer allocated.
func (m *Manager) Release(h coord.HICANNOnWafer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.allocated[h]; !ok {
		return fmt.Errorf("%w: %s", ErrNotAllocated, h)
	}
	delete(m.allocated, h)
	return nil
}

// AvailableHICANNs returns every present, unmasked, unallocated chip in
// deterministic row-major order.
func (m *Manager) AvailableHICANNs() []coord.HICANNOnWafer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]coord.HICANNOnWafer, 0, len(m.present))
	for h := range m.present {
		if _, masked := m.masked[h]; masked {
			continue
		}
		if _, allocated := m.allocated[h]; allocated {
			continue
		}
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// NeuronAvailable reports whether a specific neuron circuit on h is not
// flagged defective.
func (m *Manager) NeuronAvailable(h coord.HICANNOnWafer, n coord.NeuronOnHICANN) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	set, ok := m.defectiveNeurons[h]
	if !ok {
		return true
	}
	_, defective := set[n]
	return !defective
}

// DriverAvailable reports whether a specific synapse driver on h is not
// flagged defective.
func (m *Manager) DriverAvailable(h coord.HICANNOnWafer, d coord.SynapseDriverOnHICANN) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	set, ok := m.defectiveDrivers[h]
	if !ok {
		return true
	}
	_, defective := set[d]
	return !defective
}
