package merger

import (
	"github.com/wafermap/neurocore/coord"
	"github.com/wafermap/neurocore/core"
)

// PoolCapacity is the number of legal L1 addresses available per DNC
// merger (64 six-bit values minus the reserved phase-locking address 0 and
// the four reserved "weight-0" 0bXX0001 values).
const PoolCapacity = 59

// Assignment records one DNC merger and the populated neuron blocks merged
// onto it.
type Assignment struct {
	DNCMerger coord.DNCMergerOnHICANN
	Blocks    []coord.NeuronBlockOnHICANN
}

// Result is the outcome of routing a chip's 8 neuron-block occupancy
// counts through the merger tree.
type Result struct {
	Assignments []Assignment
	BlockToDNC  map[coord.NeuronBlockOnHICANN]coord.DNCMergerOnHICANN
}

func newResult() *Result {
	return &Result{BlockToDNC: make(map[coord.NeuronBlockOnHICANN]coord.DNCMergerOnHICANN)}
}

func (r *Result) commit(dnc coord.DNCMergerOnHICANN, blocks []coord.NeuronBlockOnHICANN) {
	if len(blocks) == 0 {
		return
	}
	r.Assignments = append(r.Assignments, Assignment{DNCMerger: dnc, Blocks: append([]coord.NeuronBlockOnHICANN{}, blocks...)})
	for _, b := range blocks {
		r.BlockToDNC[b] = dnc
	}
}

// Route assigns every populated neuron block (counts[i] > 0) to a DNC
// merger according to strategy.
func Route(counts [coord.NeuronBlockCount]int, strategy Strategy, oracle ConstrainMergers) *Result {
	result := newResult()

	if strategy == OneToOne {
		for i := 0; i < coord.NeuronBlockCount; i++ {
			if counts[i] > 0 {
				result.commit(coord.DNCMergerOnHICANN(i), []coord.NeuronBlockOnHICANN{coord.NeuronBlockOnHICANN(i)})
			}
		}
		return result
	}
	if strategy == MinimizeNumberOfSendingRepeaters {
		oracle = nil
	}

	g := buildTree()
	assigned := make(map[coord.NeuronBlockOnHICANN]bool)

	tryAllOnCentre(g, counts, assigned, result, oracle)

	for _, d := range coord.MergerCandidateOrder {
		tryCandidate(g, d, counts, assigned, result, oracle)
	}

	return result
}

func occupied(counts [coord.NeuronBlockCount]int, blocks []coord.NeuronBlockOnHICANN) []coord.NeuronBlockOnHICANN {
	var out []coord.NeuronBlockOnHICANN
	for _, b := range blocks {
		if counts[b] > 0 {
			out = append(out, b)
		}
	}
	return out
}

func sumCounts(counts [coord.NeuronBlockCount]int, blocks []coord.NeuronBlockOnHICANN) int {
	total := 0
	for _, b := range blocks {
		total += counts[b]
	}
	return total
}

func anyAssigned(assigned map[coord.NeuronBlockOnHICANN]bool, blocks []coord.NeuronBlockOnHICANN) bool {
	for _, b := range blocks {
		if assigned[b] {
			return true
		}
	}
	return false
}

// allEight returns all 8 NeuronBlockOnHICANN values, as the Merger3 root
// spans them.
func allEight() []coord.NeuronBlockOnHICANN {
	out := make([]coord.NeuronBlockOnHICANN, coord.NeuronBlockCount)
	for i := range out {
		out[i] = coord.NeuronBlockOnHICANN(i)
	}
	return out
}

// tryAllOnCentre implements the special leading pass: collect every
// populated block onto DNCMerger(3) in one shot, only when the whole tree
// is still intact, the combined address demand fits the pool, and the
// oracle (if any) approves.
func tryAllOnCentre(g *core.Graph, counts [coord.NeuronBlockCount]int, assigned map[coord.NeuronBlockOnHICANN]bool, result *Result, oracle ConstrainMergers) {
	const centre = coord.DNCMergerOnHICANN(3)
	blocks := allEight()

	reach := reachableLeaves(g, centre)
	for i := 0; i < coord.NeuronBlockCount; i++ {
		if !reach[coord.Merger0OnHICANN(i)] {
			return
		}
	}
	if sumCounts(counts, blocks) > PoolCapacity {
		return
	}
	if oracle != nil && !oracle.Approve(centre, occupied(counts, blocks)) {
		return
	}

	for _, b := range blocks {
		assigned[b] = true
	}
	result.commit(centre, occupied(counts, blocks))
	clearSubtree(g, 3, blocks)
}

// tryCandidate attempts, in increasing tier order (leaf, pair, quad), the
// largest power-of-2-aligned subtree of adjacent blocks that current tree
// connectivity, address-pool capacity and the oracle all permit.
func tryCandidate(g *core.Graph, d coord.DNCMergerOnHICANN, counts [coord.NeuronBlockCount]int, assigned map[coord.NeuronBlockOnHICANN]bool, result *Result, oracle ConstrainMergers) {
	home := coord.NeuronBlockOnHICANN(d)
	if assigned[home] {
		return
	}

	homeM0 := coord.Merger0OnHICANN(d)
	m1 := homeM0.ParentMerger1()
	m2 := m1.ParentMerger2()

	tiers := [][]coord.NeuronBlockOnHICANN{
		{home},
		merger0sToBlocks(m1.Members()),
		merger0sToBlocks(m2.Members()),
	}

	reach := reachableLeaves(g, d)

	var chosen []coord.NeuronBlockOnHICANN
	chosenLevel := -1
	for level, tier := range tiers {
		if anyAssigned(assigned, tier) {
			break
		}
		ok := true
		for _, b := range tier {
			if !reach[coord.Merger0OnHICANN(b)] {
				ok = false
				break
			}
		}
		if !ok {
			break
		}
		if sumCounts(counts, tier) > PoolCapacity {
			break
		}
		if oracle != nil && !oracle.Approve(d, occupied(counts, tier)) {
			break
		}
		chosen = tier
		chosenLevel = level
	}
	if chosen == nil {
		return
	}

	trimmed := trimTrailingEmpty(counts, chosen, home)

	for _, b := range chosen {
		assigned[b] = true
	}
	result.commit(d, occupied(counts, trimmed))
	clearSubtree(g, chosenLevel, chosen)
}

func merger0sToBlocks(ms []coord.Merger0OnHICANN) []coord.NeuronBlockOnHICANN {
	out := make([]coord.NeuronBlockOnHICANN, len(ms))
	for i, m := range ms {
		out[i] = coord.NeuronBlockOnHICANN(m)
	}
	return out
}

// trimTrailingEmpty drops zero-count blocks from the outer ends of an
// assigned tier, but never trims home itself (the "central block" rule:
// the block the candidate DNC merger sits directly below is always kept).
func trimTrailingEmpty(counts [coord.NeuronBlockCount]int, tier []coord.NeuronBlockOnHICANN, home coord.NeuronBlockOnHICANN) []coord.NeuronBlockOnHICANN {
	lo, hi := 0, len(tier)-1
	for lo < hi && counts[tier[lo]] == 0 && tier[lo] != home {
		lo++
	}
	for hi > lo && counts[tier[hi]] == 0 && tier[hi] != home {
		hi--
	}
	return tier[lo : hi+1]
}
