package pipeline

import (
	"github.com/wafermap/neurocore/biograph"
	"github.com/wafermap/neurocore/coord"
	"github.com/wafermap/neurocore/placement"
	"github.com/wafermap/neurocore/synmap"
	"github.com/wafermap/neurocore/syndrive"
)

// synapseColumnsPerParity is the number of columns of one parity (even or
// odd) in a 256-column synapse row; a bucket needing more realised
// synapses than this spills into additional half-rows.
const synapseColumnsPerParity = coord.SynapseColumnCount / 2

// requirementBucket is one (side, parity, synapse-target label)'s
// realised-synapse demand on one target chip.
type requirementBucket struct {
	Side  coord.Side
	Even  bool
	Label string
	Count int
}

type sideParityLabel struct {
	Side  coord.Side
	Even  bool
	Label string
}

// targetLabelsFor returns the distinct synapse-target tags (per
// biograph.SynapseType.String()) among every projection landing on
// population popID.
func targetLabelsFor(bg *biograph.BioGraph, popID string) []string {
	seen := make(map[string]bool)
	var labels []string
	for _, proj := range bg.Projections() {
		if proj.To != popID {
			continue
		}
		label := proj.Type.String()
		if !seen[label] {
			seen[label] = true
			labels = append(labels, label)
		}
	}
	return labels
}

type sideParity struct {
	Side   coord.Side
	Parity syndrive.TriParity
}

// resolveSideParity scans synmap's fixed target table for every (side,
// parity) combination that resolves to label, collapsing to
// syndrive.ParityAny when both parities on a side resolve to it.
func resolveSideParity(mapping *synmap.TargetMapping, label string) []sideParity {
	var out []sideParity
	for _, side := range []coord.Side{coord.SideLeft, coord.SideRight} {
		even, _ := mapping.Resolve(0, side)
		odd, _ := mapping.Resolve(1, side)
		switch {
		case even == label && odd == label:
			out = append(out, sideParity{side, syndrive.ParityAny})
		case even == label:
			out = append(out, sideParity{side, syndrive.ParityEven})
		case odd == label:
			out = append(out, sideParity{side, syndrive.ParityOdd})
		}
	}
	return out
}

// chipRequirementBuckets resolves, for every population placed on chip,
// which side/parity each incoming projection's synapse type lands on (via
// synmap's target table) and how many synapses of that bucket must be
// realised. A ParityAny resolution splits its projection's synapse count
// evenly across the even and odd buckets on that side.
func chipRequirementBuckets(bg *biograph.BioGraph, chip coord.HICANNOnWafer, items []*placement.Item) []requirementBucket {
	counts := make(map[sideParityLabel]int)

	popsOnChip := make(map[string]bool)
	for _, it := range items {
		if it.HICANN == chip {
			popsOnChip[it.PopulationID] = true
		}
	}

	for popID := range popsOnChip {
		labels := targetLabelsFor(bg, popID)
		if len(labels) == 0 {
			continue
		}
		mapping, err := synmap.NewTargetMapping(labels)
		if err != nil {
			continue
		}
		for _, proj := range bg.Projections() {
			if proj.To != popID {
				continue
			}
			label := proj.Type.String()
			for _, sp := range resolveSideParity(mapping, label) {
				switch sp.Parity {
				case syndrive.ParityAny:
					counts[sideParityLabel{sp.Side, true, label}] += (proj.SynapseCount + 1) / 2
					counts[sideParityLabel{sp.Side, false, label}] += proj.SynapseCount / 2
				case syndrive.ParityEven:
					counts[sideParityLabel{sp.Side, true, label}] += proj.SynapseCount
				case syndrive.ParityOdd:
					counts[sideParityLabel{sp.Side, false, label}] += proj.SynapseCount
				}
			}
		}
	}

	out := make([]requirementBucket, 0, len(counts))
	for k, n := range counts {
		if n == 0 {
			continue
		}
		out = append(out, requirementBucket{Side: k.Side, Even: k.Even, Label: k.Label, Count: n})
	}
	return out
}

// reqHalfRows builds syndrive.DriversRequired's inputs from a chip's
// requirement buckets: one NeuronRequirement per bucket, sized in
// half-rows by how many columns of that parity the realised count fills.
func reqHalfRows(buckets []requirementBucket) ([]syndrive.NeuronRequirement, func(syndrive.NeuronRequirement) int) {
	rows := make(map[syndrive.NeuronRequirement]int, len(buckets))
	reqs := make([]syndrive.NeuronRequirement, 0, len(buckets))
	for _, b := range buckets {
		parity := syndrive.ParityOdd
		if b.Even {
			parity = syndrive.ParityEven
		}
		req := syndrive.NeuronRequirement{Side: b.Side, TriParity: parity, Decoder: 0, STP: syndrive.STPNone}
		n := (b.Count + synapseColumnsPerParity - 1) / synapseColumnsPerParity
		if n == 0 {
			n = 1
		}
		rows[req] = n
		reqs = append(reqs, req)
	}
	return reqs, func(r syndrive.NeuronRequirement) int { return rows[r] }
}
