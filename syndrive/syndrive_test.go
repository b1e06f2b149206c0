package syndrive

import (
	"testing"

	"github.com/wafermap/neurocore/coord"
	"github.com/wafermap/neurocore/resource"
)

func halfRowsOne(NeuronRequirement) int { return 1 }

func TestDriversRequiredCollapsesDecodersAndBalancesParity(t *testing.T) {
	reqs := []NeuronRequirement{
		{Side: coord.SideLeft, TriParity: ParityEven, Decoder: 0, STP: STPNone},
		{Side: coord.SideLeft, TriParity: ParityEven, Decoder: 1, STP: STPNone},
		{Side: coord.SideLeft, TriParity: ParityAny, Decoder: 0, STP: STPNone},
	}
	got := DriversRequired(reqs, halfRowsOne)

	// even sum = 1+1 = 2, any = 1 balanced onto odd (even<=odd false since
	// even=2>odd=0 initially so it goes to odd) -> odd=1, rows=max(2,1)=2
	// drivers = ceil(2/2) = 1
	if got[coord.SideLeft] != 1 {
		t.Fatalf("expected 1 driver on left side, got %d (%+v)", got[coord.SideLeft], got)
	}
}

func TestDriversPossibleRespectsMaxChainLength(t *testing.T) {
	reqs := []NeuronRequirement{
		{Side: coord.SideLeft, TriParity: ParityEven, Decoder: 0, STP: STPNone},
	}
	if !DriversPossible(reqs, halfRowsOne, 1) {
		t.Fatalf("expected 1 driver to fit within max chain length 1")
	}
	if DriversPossible(reqs, halfRowsOne, 0) {
		t.Fatalf("expected 1 driver to exceed max chain length 0")
	}
}

func TestMoreDriversPossibleIsStrict(t *testing.T) {
	reqs := []NeuronRequirement{
		{Side: coord.SideLeft, TriParity: ParityEven, Decoder: 0, STP: STPNone},
	}
	if MoreDriversPossible(reqs, halfRowsOne, 1) {
		t.Fatalf("expected no headroom when usage equals the cap exactly")
	}
	if !MoreDriversPossible(reqs, halfRowsOne, 2) {
		t.Fatalf("expected headroom when usage is below the cap")
	}
}

func TestMergerOracleApprovesWithinBudget(t *testing.T) {
	oracle := &MergerOracle{
		MaxChainLength: 1,
		Requirements: func(blocks []coord.NeuronBlockOnHICANN) []NeuronRequirement {
			return []NeuronRequirement{{Side: coord.SideLeft, TriParity: ParityEven, Decoder: 0, STP: STPNone}}
		},
		HalfRows: halfRowsOne,
	}
	if !oracle.Approve(coord.DNCMergerOnHICANN(0), nil) {
		t.Fatalf("expected oracle to approve a requirement within budget")
	}

	oracle.MaxChainLength = 0
	if oracle.Approve(coord.DNCMergerOnHICANN(0), nil) {
		t.Fatalf("expected oracle to reject a requirement exceeding budget")
	}
}

func TestAllocatePicksMinimumYContiguousChain(t *testing.T) {
	mgr := resource.NewManager(coord.WaferIndex(0))
	h := coord.HICANNOnWafer{X: 10, Y: 7}

	chain, err := Allocate(mgr, h, coord.SideLeft, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 3 rows -> ceil(3/2) = 2 drivers
	if len(chain.Drivers) != 2 {
		t.Fatalf("expected 2 drivers, got %d", len(chain.Drivers))
	}
	if chain.Primary != (coord.SynapseDriverOnHICANN{Side: coord.SideLeft, Y: 0}) {
		t.Fatalf("expected primary to be the minimum-y driver, got %v", chain.Primary)
	}
	if chain.Drivers[1] != (coord.SynapseDriverOnHICANN{Side: coord.SideLeft, Y: 1}) {
		t.Fatalf("expected contiguous second driver at y=1, got %v", chain.Drivers[1])
	}
}

func TestAllocateSkipsDefectiveDrivers(t *testing.T) {
	mgr := resource.NewManager(coord.WaferIndex(0))
	h := coord.HICANNOnWafer{X: 10, Y: 7}
	provider := fakeDefectProvider{drivers: []coord.SynapseDriverOnHICANN{{Side: coord.SideLeft, Y: 0}}}
	if err := mgr.LoadDefects(provider); err != nil {
		t.Fatalf("unexpected LoadDefects error: %v", err)
	}

	chain, err := Allocate(mgr, h, coord.SideLeft, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chain.Primary.Y != 1 {
		t.Fatalf("expected allocation to skip the defective y=0 driver, got %v", chain.Primary)
	}
}

func TestConnectedSynapseDriversModeAssignment(t *testing.T) {
	drivers := []coord.SynapseDriverOnHICANN{
		{Side: coord.SideLeft, Y: 0},
		{Side: coord.SideLeft, Y: 1},
	}
	chain := ConnectedSynapseDrivers{Drivers: drivers, Primary: drivers[0]}

	if chain.ModeOf(drivers[0]) != L1Mirror {
		t.Fatalf("expected primary non-end driver to run L1Mirror, got %v", chain.ModeOf(drivers[0]))
	}
	if chain.ModeOf(drivers[1]) != Mirror {
		t.Fatalf("expected non-primary driver to run Mirror, got %v", chain.ModeOf(drivers[1]))
	}

	single := ConnectedSynapseDrivers{Drivers: drivers[:1], Primary: drivers[0]}
	if single.ModeOf(drivers[0]) != L1 {
		t.Fatalf("expected a single-driver chain's primary to run L1, got %v", single.ModeOf(drivers[0]))
	}
}

func TestAssignSynapsesCountsColumnLossOnExhaustion(t *testing.T) {
	h := coord.HICANNOnWafer{X: 10, Y: 7}
	chain := ConnectedSynapseDrivers{
		Drivers: []coord.SynapseDriverOnHICANN{{Side: coord.SideLeft, Y: 0}},
		Primary: coord.SynapseDriverOnHICANN{Side: coord.SideLeft, Y: 0},
	}
	cols := NewColumnAllocator()

	// Only 128 even columns exist; request 130 to force 2 losses.
	assigned, lost := AssignSynapses(h, chain, true, 130, cols)
	if len(assigned) != 128 {
		t.Fatalf("expected 128 synapses assigned, got %d", len(assigned))
	}
	if lost != 2 {
		t.Fatalf("expected 2 synapses lost to column exhaustion, got %d", lost)
	}
}

func TestAssignSynapsesRoundRobinsRows(t *testing.T) {
	h := coord.HICANNOnWafer{X: 10, Y: 7}
	chain := ConnectedSynapseDrivers{
		Drivers: []coord.SynapseDriverOnHICANN{{Side: coord.SideLeft, Y: 0}, {Side: coord.SideLeft, Y: 1}},
		Primary: coord.SynapseDriverOnHICANN{Side: coord.SideLeft, Y: 0},
	}
	cols := NewColumnAllocator()

	assigned, lost := AssignSynapses(h, chain, true, 4, cols)
	if lost != 0 {
		t.Fatalf("unexpected loss: %d", lost)
	}
	if len(assigned) != 4 {
		t.Fatalf("expected 4 assignments, got %d", len(assigned))
	}
	seen := make(map[coord.SynapseRowOnHICANN]bool)
	for _, a := range assigned {
		if seen[a.Row] {
			t.Fatalf("expected every assignment to use a distinct row, got duplicate %v", a.Row)
		}
		seen[a.Row] = true
	}
}

type fakeDefectProvider struct {
	drivers []coord.SynapseDriverOnHICANN
}

func (f fakeDefectProvider) DefectsFor(wafer coord.WaferIndex) (resource.Defects, error) {
	h := coord.HICANNOnWafer{X: 10, Y: 7}
	defects := resource.NewDefects()
	defects.PerHICANN[h] = resource.HICANNDefects{Drivers: f.drivers}
	return defects, nil
}
