package coord

import "fmt"

// NeuronBlockOnHICANN indexes one of the 8 neuron blocks on a chip, each
// feeding one leaf of the merger tree.
type NeuronBlockOnHICANN uint8

const NeuronBlockCount = 8

func (n NeuronBlockOnHICANN) Value() int { return int(n) }

func (n NeuronBlockOnHICANN) String() string {
	return fmt.Sprintf("NeuronBlockOnHICANN(%d)", int(n))
}

// Merger0OnHICANN indexes a tier-0 merger-tree leaf, one per neuron block.
type Merger0OnHICANN uint8

const Merger0Count = 8

// Merger1OnHICANN indexes a tier-1 merger-tree node, each combining two
// tier-0 leaves.
type Merger1OnHICANN uint8

const Merger1Count = 4

// Merger2OnHICANN indexes a tier-2 merger-tree node, each combining two
// tier-1 nodes.
type Merger2OnHICANN uint8

const Merger2Count = 2

// Merger3OnHICANN is the singleton tier-3 root combining both tier-2 nodes.
type Merger3OnHICANN uint8

const Merger3Count = 1

// DNCMergerOnHICANN indexes one of the 8 DNC-merger sinks that read out of
// the merger tree onto the chip's Gbit links.
type DNCMergerOnHICANN uint8

const DNCMergerCount = 8

func (d DNCMergerOnHICANN) Value() int { return int(d) }

func (d DNCMergerOnHICANN) String() string {
	return fmt.Sprintf("DNCMergerOnHICANN(%d)", int(d))
}

// MergerCandidateOrder is the fixed centre-outward traversal order used by
// the merger-tree router when trying DNC-merger candidates, after the
// special leading all-to-DNCMerger3 pass: the wafer's physical centre
// merger is revisited as an ordinary per-candidate try (in case the
// leading pass didn't apply, e.g. pool capacity or an oracle rejected the
// whole-chip collection), then successively outward pairs.
var MergerCandidateOrder = []DNCMergerOnHICANN{3, 5, 3, 1, 6, 4, 2, 7, 0}

// HomeMerger0 returns the tier-0 merger-tree leaf this DNC merger is
// physically associated with: DNCMergerOnHICANN(i) sits directly below
// NeuronBlockOnHICANN(i).
func (d DNCMergerOnHICANN) HomeMerger0() Merger0OnHICANN {
	return Merger0OnHICANN(d)
}

// ParentMerger1 returns the tier-1 node combining this tier-0 leaf with its
// sibling.
func (m Merger0OnHICANN) ParentMerger1() Merger1OnHICANN {
	return Merger1OnHICANN(int(m) / 2)
}

// SiblingMerger0 returns the other tier-0 leaf sharing this leaf's tier-1
// parent.
func (m Merger0OnHICANN) SiblingMerger0() Merger0OnHICANN {
	return Merger0OnHICANN(int(m) ^ 1)
}

// ParentMerger2 returns the tier-2 node combining this tier-1 node with its
// sibling.
func (m Merger1OnHICANN) ParentMerger2() Merger2OnHICANN {
	return Merger2OnHICANN(int(m) / 2)
}

// SiblingMerger1 returns the other tier-1 node sharing this node's tier-2
// parent.
func (m Merger1OnHICANN) SiblingMerger1() Merger1OnHICANN {
	return Merger1OnHICANN(int(m) ^ 1)
}

// SiblingMerger2 returns the other tier-2 node (there are only two, so this
// is always the complement).
func (m Merger2OnHICANN) SiblingMerger2() Merger2OnHICANN {
	return Merger2OnHICANN(int(m) ^ 1)
}

// Members returns the tier-0 leaves spanned by a tier-1 node (2 leaves).
func (m Merger1OnHICANN) Members() []Merger0OnHICANN {
	base := int(m) * 2
	return []Merger0OnHICANN{Merger0OnHICANN(base), Merger0OnHICANN(base + 1)}
}

// Members returns the tier-0 leaves spanned by a tier-2 node (4 leaves).
func (m Merger2OnHICANN) Members() []Merger0OnHICANN {
	base := int(m) * 4
	out := make([]Merger0OnHICANN, 4)
	for i := range out {
		out[i] = Merger0OnHICANN(base + i)
	}
	return out
}

// Members returns all 8 tier-0 leaves, spanned by the tier-3 root.
func (Merger3OnHICANN) Members() []Merger0OnHICANN {
	out := make([]Merger0OnHICANN, Merger0Count)
	for i := range out {
		out[i] = Merger0OnHICANN(i)
	}
	return out
}
