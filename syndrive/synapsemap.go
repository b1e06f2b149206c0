package syndrive

import "github.com/wafermap/neurocore/coord"

// ColumnAllocator hands out synapse columns per chip, tracking which
// columns have already been claimed so two synapses never land on the
// same (chip, column) cell. Column parity (even/odd) is fixed by the
// resolved TriParity of the half-row the synapse belongs to; a synapse
// that cannot find a free column of its parity is lost.
type ColumnAllocator struct {
	claimed map[coord.HICANNOnWafer]map[coord.SynapseColumnOnHICANN]bool
}

// NewColumnAllocator constructs an empty allocator.
func NewColumnAllocator() *ColumnAllocator {
	return &ColumnAllocator{claimed: make(map[coord.HICANNOnWafer]map[coord.SynapseColumnOnHICANN]bool)}
}

// Claim reserves the next free column of the given parity on h. even
// selects columns with SynapseColumnOnHICANN%2==0. Returns ok=false if
// every column of that parity is already claimed.
func (a *ColumnAllocator) Claim(h coord.HICANNOnWafer, even bool) (coord.SynapseColumnOnHICANN, bool) {
	cols := a.claimed[h]
	if cols == nil {
		cols = make(map[coord.SynapseColumnOnHICANN]bool)
		a.claimed[h] = cols
	}

	start := 0
	if !even {
		start = 1
	}
	for c := start; c < coord.SynapseColumnCount; c += 2 {
		col := coord.SynapseColumnOnHICANN(c)
		if !cols[col] {
			cols[col] = true
			return col, true
		}
	}
	return 0, false
}

// SynapseAssignment is the fully resolved hardware slot for one realised
// synapse: which row (and therefore driver) carries it, and which column.
type SynapseAssignment struct {
	Row    coord.SynapseRowOnHICANN
	Column coord.SynapseColumnOnHICANN
}

// rowCursor round-robins across a chain's rows so load spreads evenly
// rather than piling every synapse onto the first driver's first row.
type rowCursor struct {
	drivers []coord.SynapseDriverOnHICANN
	next    int
}

func newRowCursor(c ConnectedSynapseDrivers) *rowCursor {
	return &rowCursor{drivers: c.Drivers}
}

func (r *rowCursor) nextRow() coord.SynapseRowOnHICANN {
	idx := r.next
	r.next++
	driver := r.drivers[(idx/2)%len(r.drivers)]
	return coord.SynapseRowOnHICANN{Driver: driver, Row: uint8(idx % 2)}
}

// AssignSynapses resolves hardware (row, column) slots for count synapses
// that share one resolved (Side, Parity, Decoder, STP) bucket and the
// given driver chain. resolvedEven fixes the column parity (TriParity::Any
// must already have been balanced to a concrete even/odd assignment by the
// caller before reaching here). Synapses beyond what free columns allow
// are reported as lost via the returned loss count.
func AssignSynapses(h coord.HICANNOnWafer, chain ConnectedSynapseDrivers, resolvedEven bool, count int, cols *ColumnAllocator) (assigned []SynapseAssignment, lost int) {
	if len(chain.Drivers) == 0 {
		return nil, count
	}
	cursor := newRowCursor(chain)
	assigned = make([]SynapseAssignment, 0, count)
	for i := 0; i < count; i++ {
		col, ok := cols.Claim(h, resolvedEven)
		if !ok {
			lost++
			continue
		}
		assigned = append(assigned, SynapseAssignment{Row: cursor.nextRow(), Column: col})
	}
	return assigned, lost
}
