package l1route

import "github.com/wafermap/neurocore/coord"

// validSuccessor decides whether appending next directly after prev is a
// legal step. prevPrev, the segment preceding prev, is consulted only when
// havePrevPrev is true; it drives the three-segment HICANN-traversal rule.
// Most rules only need the immediate (prev, next) pair.
func validSuccessor(prevPrev L1RouteSegment, havePrevPrev bool, prev, next L1RouteSegment) bool {
	// HICANN traversal: <line>, HICANNOnWafer, <line of same orientation>.
	if prev.Kind == SegHICANN && havePrevPrev {
		switch prevPrev.Kind {
		case SegHLine:
			if next.Kind != SegHLine {
				return false
			}
			return hicannTraversalValid(prevPrev.HLine, prev.HICANN, next.HLine)
		case SegVLine:
			if next.Kind != SegVLine {
				return false
			}
			return vlineTraversalValid(prevPrev.VLine, prev.HICANN, next.VLine)
		}
	}

	// A HICANNOnWafer segment that does not close a line traversal anchors
	// the route on a chip; any segment may follow it.
	if prev.Kind == SegHICANN {
		return true
	}
	// A HICANNOnWafer segment may follow a line or a DNC merger. The chip it
	// names is not compared with the chip the route is currently on.
	if next.Kind == SegHICANN {
		return prev.Kind == SegHLine || prev.Kind == SegVLine || prev.Kind == SegDNCMerger
	}

	switch {
	case prev.Kind == SegVLine && next.Kind == SegHLine:
		return coord.CrossbarExists(next.HLine, prev.VLine)
	case prev.Kind == SegHLine && next.Kind == SegVLine:
		return coord.CrossbarExists(prev.HLine, next.VLine)

	case prev.Kind == SegDNCMerger && next.Kind == SegHLine:
		return next.HLine == prev.DNCMerger.ToHLineOnHICANN()

	case prev.Kind == SegVLine && next.Kind == SegSynapseDriver:
		return synapseSwitchValid(prev.VLine, next.Driver, havePrevPrev && prevPrev.Kind == SegHICANN)

	case prev.Kind == SegSynapseDriver && next.Kind == SegSynapseDriver:
		return prev.Driver.Side == next.Driver.Side && absInt(int(prev.Driver.Y)-int(next.Driver.Y)) == 2

	case prev.Kind == SegRepeaterBlock && next.Kind == SegHLine:
		return next.HLine.ToRepeaterBlockOnHICANN() == prev.RepeaterBlock
	case prev.Kind == SegRepeaterBlock && next.Kind == SegVLine:
		return next.VLine.ToRepeaterBlockOnHICANN() == prev.RepeaterBlock

	case prev.Kind == SegMerger0 && next.Kind == SegMerger1:
		return prev.Merger0.ParentMerger1() == next.Merger1
	case prev.Kind == SegMerger1 && next.Kind == SegMerger2:
		return prev.Merger1.ParentMerger2() == next.Merger2
	case prev.Kind == SegMerger1 && next.Kind == SegDNCMerger:
		return mergerSpans(prev.Merger1.Members(), next.DNCMerger)
	case prev.Kind == SegMerger0 && next.Kind == SegDNCMerger:
		return mergerSpans([]coord.Merger0OnHICANN{prev.Merger0}, next.DNCMerger)
	case prev.Kind == SegMerger2 && next.Kind == SegDNCMerger:
		return mergerSpans(prev.Merger2.Members(), next.DNCMerger)
	case prev.Kind == SegMerger3 && next.Kind == SegDNCMerger:
		return mergerSpans(prev.Merger3.Members(), next.DNCMerger)

	case prev.Kind == SegDNCMerger && next.Kind == SegGbitLink:
		return int(prev.DNCMerger) == int(next.GbitLink)
	}

	return false
}

func mergerSpans(members []coord.Merger0OnHICANN, d coord.DNCMergerOnHICANN) bool {
	home := d.HomeMerger0()
	for _, m := range members {
		if m == home {
			return true
		}
	}
	return false
}

func hicannTraversalValid(h coord.HLineOnHICANN, mid coord.HICANNOnWafer, h2 coord.HLineOnHICANN) bool {
	// The caller is expected to have checked which neighbour direction mid
	// represents relative to the route's current chip; here we only check
	// the line-continuation identity, since HLine indices run straight
	// across a boundary (coord.HLineOnHICANN.East/West are identity).
	return h2 == h.East() || h2 == h.West()
}

func vlineTraversalValid(v coord.VLineOnHICANN, mid coord.HICANNOnWafer, v2 coord.VLineOnHICANN) bool {
	return v2 == v.North() || v2 == v.South()
}

// synapseSwitchValid approves a VLine -> SynapseDriver step. The
// same-chip variant is always valid once a crossbar switch exists on that
// V-line (assumed, since the exact per-driver switch matrix is a hardware
// calibration detail outside this module's scope); the adjacent-chip
// variant additionally requires opposing horizontal sides.
func synapseSwitchValid(v coord.VLineOnHICANN, d coord.SynapseDriverOnHICANN, crossedChip bool) bool {
	if !crossedChip {
		return true
	}
	return v.ToSideHorizontal() != d.ToSideHorizontal()
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
