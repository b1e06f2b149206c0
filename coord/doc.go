// Package coord defines the typed coordinate algebra of the wafer-scale
// substrate: wafer-relative chip coordinates, their neighbour relation over
// the wafer's non-rectangular reticle mask, and the fixed-width coordinate
// types nested within a chip (neuron blocks, denmems, L1 bus lines,
// repeaters, merger tiers, synapse drivers/rows/columns, and L1 addresses).
//
// Every type here is a small comparable value type so it can key a Go map
// directly, mirroring the teacher library's preference for plain
// comparable IDs over pointer identity (see core.Vertex.ID). Operations
// that can fail return a sentinel error rather than panicking, so callers
// can probe connectivity with errors.Is the way core's AddEdge/AddVertex
// callers do.
package coord

import "errors"

// Sentinel errors returned by coordinate arithmetic across this package.
var (
	// ErrOutOfRange indicates a fixed-width field would overflow (e.g. a
	// HLineOnHICANN index beyond 0..63).
	ErrOutOfRange = errors.New("coord: value out of range")

	// ErrNoSuchNeighbor indicates a neighbour query has no answer in the
	// current domain (e.g. the wafer mask does not extend that far, or a
	// coordinate pairing is geometrically inconsistent).
	ErrNoSuchNeighbor = errors.New("coord: no such neighbour")
)
