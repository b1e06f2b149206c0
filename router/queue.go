package router

import (
	"sort"

	"github.com/wafermap/neurocore/coord"
)

// Source is one (HICANN, DNC merger) pair with placed populations to route
// from, and the set of target chips its outgoing projections must reach.
type Source struct {
	HICANN    coord.HICANNOnWafer
	DNCMerger coord.DNCMergerOnHICANN
	Targets   []coord.HICANNOnWafer
	Priority  float64
}

// TargetPruner asks whether any synapse would actually reach target given
// the current synapse-driver allocation and address assignment (C10);
// unreachable targets are dropped from a source's target set before
// routing so the algorithms never spend effort on dead ends.
type TargetPruner interface {
	CanReach(source coord.HICANNOnWafer, target coord.HICANNOnWafer) bool
}

// BuildQueue aggregates per-source priority from perProjectionPriority (the
// arithmetic mean of every projection priority originating at that source),
// prunes each source's target set via pruner, and stable-sorts ascending by
// priority so the caller pops smallest first — high-priority sources run
// last, over the already-reduced graph.
func BuildQueue(sources []Source, perProjectionPriority map[coord.HICANNOnWafer][]float64, pruner TargetPruner) []Source {
	out := make([]Source, len(sources))
	copy(out, sources)

	for i := range out {
		priorities := perProjectionPriority[out[i].HICANN]
		out[i].Priority = arithmeticMean(priorities)

		if pruner == nil {
			continue
		}
		pruned := out[i].Targets[:0:0]
		for _, t := range out[i].Targets {
			if pruner.CanReach(out[i].HICANN, t) {
				pruned = append(pruned, t)
			}
		}
		out[i].Targets = pruned
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority < out[j].Priority
	})
	return out
}

func arithmeticMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
