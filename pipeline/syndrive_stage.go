package pipeline

import (
	"fmt"

	"github.com/wafermap/neurocore/biograph"
	"github.com/wafermap/neurocore/coord"
	"github.com/wafermap/neurocore/placement"
	"github.com/wafermap/neurocore/resource"
	"github.com/wafermap/neurocore/synloss"
	"github.com/wafermap/neurocore/syndrive"
)

func bucketKey(chip coord.HICANNOnWafer, b requirementBucket) string {
	return fmt.Sprintf("%s|%v|%v|%s", chip, b.Side, b.Even, b.Label)
}

// allocateChip resolves chip's synapse-driver requirements, allocates a
// driver chain per side that needs one, assigns realised synapses to
// (row, column) slots, and records realise/loss events into partial —
// a private accumulator merged into the shared one as soon as this
// chip's task finishes, per §5's per-chip-task concurrency model.
func allocateChip(mgr *resource.Manager, bg *biograph.BioGraph, chip coord.HICANNOnWafer, items []*placement.Item, partial *synloss.Accumulator) []DriverAllocation {
	buckets := chipRequirementBuckets(bg, chip, items)
	if len(buckets) == 0 {
		return nil
	}

	reqs, halfRows := reqHalfRows(buckets)
	driversPerSide := syndrive.DriversRequired(reqs, halfRows)
	cols := syndrive.NewColumnAllocator()

	bucketsBySide := make(map[coord.Side][]requirementBucket)
	for _, b := range buckets {
		bucketsBySide[b.Side] = append(bucketsBySide[b.Side], b)
	}

	var allocations []DriverAllocation
	for side, sideBuckets := range bucketsBySide {
		drivers := driversPerSide[side]
		if drivers == 0 {
			continue
		}

		chain, err := syndrive.Allocate(mgr, chip, side, drivers*2)
		if err != nil {
			for _, b := range sideBuckets {
				for i := 0; i < b.Count; i++ {
					partial.Lose(bucketKey(chip, b), synloss.SynapseIndex{Pre: i}, chip)
				}
			}
			continue
		}
		allocations = append(allocations, DriverAllocation{HICANN: chip, Side: side, Chain: chain})

		for _, b := range sideBuckets {
			assigned, lost := syndrive.AssignSynapses(chip, chain, b.Even, b.Count, cols)
			key := bucketKey(chip, b)
			for i := range assigned {
				partial.Realize(key, synloss.SynapseIndex{Pre: i}, chip, 1)
			}
			for i := 0; i < lost; i++ {
				partial.Lose(key, synloss.SynapseIndex{Pre: len(assigned) + i}, chip)
			}
		}
	}
	return allocations
}
