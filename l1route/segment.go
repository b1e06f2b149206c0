package l1route

import (
	"fmt"

	"github.com/wafermap/neurocore/coord"
)

// SegmentKind tags which field of L1RouteSegment is populated.
type SegmentKind int

const (
	SegHICANN SegmentKind = iota
	SegHLine
	SegVLine
	SegDNCMerger
	SegMerger0
	SegMerger1
	SegMerger2
	SegMerger3
	SegSynapseDriver
	SegRepeaterBlock
	SegGbitLink
)

// L1RouteSegment is one element of a route: a single tagged struct rather
// than an interface/type-switch union, so the successor-validity dispatch
// table in validate.go can stay one flat switch over Kind pairs.
type L1RouteSegment struct {
	Kind SegmentKind

	HICANN        coord.HICANNOnWafer
	HLine         coord.HLineOnHICANN
	VLine         coord.VLineOnHICANN
	DNCMerger     coord.DNCMergerOnHICANN
	Merger0       coord.Merger0OnHICANN
	Merger1       coord.Merger1OnHICANN
	Merger2       coord.Merger2OnHICANN
	Merger3       coord.Merger3OnHICANN
	Driver        coord.SynapseDriverOnHICANN
	RepeaterBlock coord.RepeaterBlockOnHICANN
	GbitLink      coord.GbitLinkOnHICANN
}

func SegHICANNOnWafer(h coord.HICANNOnWafer) L1RouteSegment {
	return L1RouteSegment{Kind: SegHICANN, HICANN: h}
}

func SegHLineOnHICANN(h coord.HLineOnHICANN) L1RouteSegment {
	return L1RouteSegment{Kind: SegHLine, HLine: h}
}

func SegVLineOnHICANN(v coord.VLineOnHICANN) L1RouteSegment {
	return L1RouteSegment{Kind: SegVLine, VLine: v}
}

func SegDNCMergerOnHICANN(d coord.DNCMergerOnHICANN) L1RouteSegment {
	return L1RouteSegment{Kind: SegDNCMerger, DNCMerger: d}
}

func SegMerger0OnHICANN(m coord.Merger0OnHICANN) L1RouteSegment {
	return L1RouteSegment{Kind: SegMerger0, Merger0: m}
}

func SegMerger1OnHICANN(m coord.Merger1OnHICANN) L1RouteSegment {
	return L1RouteSegment{Kind: SegMerger1, Merger1: m}
}

func SegMerger2OnHICANN(m coord.Merger2OnHICANN) L1RouteSegment {
	return L1RouteSegment{Kind: SegMerger2, Merger2: m}
}

func SegMerger3OnHICANN(m coord.Merger3OnHICANN) L1RouteSegment {
	return L1RouteSegment{Kind: SegMerger3, Merger3: m}
}

func SegSynapseDriverOnHICANN(d coord.SynapseDriverOnHICANN) L1RouteSegment {
	return L1RouteSegment{Kind: SegSynapseDriver, Driver: d}
}

func SegRepeaterBlockOnHICANN(b coord.RepeaterBlockOnHICANN) L1RouteSegment {
	return L1RouteSegment{Kind: SegRepeaterBlock, RepeaterBlock: b}
}

func SegGbitLinkOnHICANN(g coord.GbitLinkOnHICANN) L1RouteSegment {
	return L1RouteSegment{Kind: SegGbitLink, GbitLink: g}
}

// Equal reports whether two segments are the same kind and coordinate.
func (s L1RouteSegment) Equal(o L1RouteSegment) bool {
	if s.Kind != o.Kind {
		return false
	}
	switch s.Kind {
	case SegHICANN:
		return s.HICANN == o.HICANN
	case SegHLine:
		return s.HLine == o.HLine
	case SegVLine:
		return s.VLine == o.VLine
	case SegDNCMerger:
		return s.DNCMerger == o.DNCMerger
	case SegMerger0:
		return s.Merger0 == o.Merger0
	case SegMerger1:
		return s.Merger1 == o.Merger1
	case SegMerger2:
		return s.Merger2 == o.Merger2
	case SegMerger3:
		return s.Merger3 == o.Merger3
	case SegSynapseDriver:
		return s.Driver == o.Driver
	case SegRepeaterBlock:
		return s.RepeaterBlock == o.RepeaterBlock
	case SegGbitLink:
		return s.GbitLink == o.GbitLink
	}
	return false
}

// Less imposes a deterministic total order over segments, used to keep
// L1RouteTree children in a stable, reproducible iteration order.
func Less(a, b L1RouteSegment) bool {
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	switch a.Kind {
	case SegHICANN:
		if a.HICANN.Y != b.HICANN.Y {
			return a.HICANN.Y < b.HICANN.Y
		}
		return a.HICANN.X < b.HICANN.X
	case SegHLine:
		return a.HLine < b.HLine
	case SegVLine:
		return a.VLine < b.VLine
	case SegDNCMerger:
		return a.DNCMerger < b.DNCMerger
	case SegMerger0:
		return a.Merger0 < b.Merger0
	case SegMerger1:
		return a.Merger1 < b.Merger1
	case SegMerger2:
		return a.Merger2 < b.Merger2
	case SegMerger3:
		return a.Merger3 < b.Merger3
	case SegSynapseDriver:
		if a.Driver.Side != b.Driver.Side {
			return a.Driver.Side < b.Driver.Side
		}
		return a.Driver.Y < b.Driver.Y
	case SegRepeaterBlock:
		return a.RepeaterBlock < b.RepeaterBlock
	case SegGbitLink:
		return a.GbitLink < b.GbitLink
	}
	return false
}

func (s L1RouteSegment) String() string {
	switch s.Kind {
	case SegHICANN:
		return s.HICANN.String()
	case SegHLine:
		return s.HLine.String()
	case SegVLine:
		return s.VLine.String()
	case SegDNCMerger:
		return s.DNCMerger.String()
	case SegMerger0:
		return fmt.Sprintf("Merger0OnHICANN(%d)", s.Merger0)
	case SegMerger1:
		return fmt.Sprintf("Merger1OnHICANN(%d)", s.Merger1)
	case SegMerger2:
		return fmt.Sprintf("Merger2OnHICANN(%d)", s.Merger2)
	case SegMerger3:
		return fmt.Sprintf("Merger3OnHICANN(%d)", s.Merger3)
	case SegSynapseDriver:
		return s.Driver.String()
	case SegRepeaterBlock:
		return fmt.Sprintf("RepeaterBlockOnHICANN(%d)", s.RepeaterBlock)
	case SegGbitLink:
		return fmt.Sprintf("GbitLinkOnHICANN(%d)", s.GbitLink)
	}
	return "L1RouteSegment(?)"
}
