package router

import (
	"github.com/wafermap/neurocore/coord"
	"github.com/wafermap/neurocore/l1graph"
	"github.com/wafermap/neurocore/l1route"
)

// LowerPath converts a vertex path from either algorithm into an L1Route:
// a HICANNOnWafer segment is emitted whenever the chip changes, followed
// by the matching HLine/VLine segment for every vertex. If source is
// non-nil, the [HICANNOnWafer, DNCMergerOnHICANN] pair is prepended; if
// doing so would leave a redundant leading HICANNOnWafer/HLine pair (the
// output-to-the-left case, where the first H-line segment immediately
// crosses west off the merger's own chip), that leading pair is stripped
// first so the canonical prefix is [DNCMerger, HICANNOnWafer, ...].
func LowerPath(path []l1graph.VertexID, source *coord.DNCMergerOnHICANN) []l1route.L1RouteSegment {
	if len(path) == 0 {
		return nil
	}

	var segs []l1route.L1RouteSegment
	var lastChip coord.HICANNOnWafer
	first := true
	for _, v := range path {
		if first || v.HICANN != lastChip {
			segs = append(segs, l1route.SegHICANNOnWafer(v.HICANN))
			lastChip = v.HICANN
			first = false
		}
		if v.Kind == l1graph.LineH {
			hl, err := coord.NewHLineOnHICANN(int(v.Index))
			if err == nil {
				segs = append(segs, l1route.SegHLineOnHICANN(hl))
			}
		} else {
			vl, err := coord.NewVLineOnHICANN(int(v.Index))
			if err == nil {
				segs = append(segs, l1route.SegVLineOnHICANN(vl))
			}
		}
	}

	if source == nil {
		return segs
	}

	home := path[0].HICANN
	crossesWest := false
	for _, v := range path[1:] {
		if v.HICANN != home {
			crossesWest = v.HICANN.X < home.X
			break
		}
	}
	if crossesWest && len(segs) >= 2 && segs[0].Kind == l1route.SegHICANN && segs[1].Kind == l1route.SegHLine {
		segs = segs[2:]
	}

	prefix := []l1route.L1RouteSegment{
		l1route.SegHICANNOnWafer(home),
		l1route.SegDNCMergerOnHICANN(*source),
	}
	return append(prefix, segs...)
}
