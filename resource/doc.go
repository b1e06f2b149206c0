// Package resource tracks the physical inventory of a wafer: which chips
// are present, which are masked out by manufacturing defects, and which
// are currently allocated to a placement run. It also tracks per-chip
// component defects (dead neuron circuits, dead synapse drivers) reported
// by a caller-supplied DefectProvider.
//
// The Manager's guarded maps follow core.Graph's convention of a
// sync.RWMutex protecting plain map[K]struct{}/map[K]V state rather than a
// specialized container — the same shape core uses for its vertex and
// adjacency catalogs.
package resource

import "errors"

// Sentinel errors returned by this package.
var (
	// ErrHICANNNotPresent indicates a HICANN coordinate names no chip
	// present on the wafer (see coord.HICANNOnWafer.Valid).
	ErrHICANNNotPresent = errors.New("resource: HICANN not present on wafer")

	// ErrHICANNMasked indicates a chip is present but defect-masked and
	// therefore unavailable for allocation.
	ErrHICANNMasked = errors.New("resource: HICANN is defect-masked")

	// ErrAlreadyAllocated indicates an allocation attempt on a chip that
	// is already allocated.
	ErrAlreadyAllocated = errors.New("resource: HICANN already allocated")

	// ErrNotAllocated indicates a release attempt on a chip that was not
	// allocated.
	ErrNotAllocated = errors.New("resource: HICANN not allocated")
)
