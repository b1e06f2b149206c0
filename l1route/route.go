package l1route

import (
	"errors"

	"github.com/wafermap/neurocore/coord"
)

// Sentinel errors returned by route algebra operations.
var (
	ErrInvalidSuccessor = errors.New("l1route: invalid successor segment")
	ErrEmptyRoute       = errors.New("l1route: route is empty")
	ErrSplitOutOfRange  = errors.New("l1route: split index out of range")
	ErrJoinMismatch     = errors.New("l1route: join boundary segments do not match")
)

// JoinMode selects how append/prepend combine two routes at their shared
// boundary.
type JoinMode int

const (
	// Extend validates the crossing boundary (and the intervening
	// HICANNOnWafer triple, if present) and concatenates both routes.
	Extend JoinMode = iota
	// MergeCommonEndpoints requires the joining endpoints to be equal on
	// the same chip and drops the duplicate.
	MergeCommonEndpoints
)

// Route is an ordered, successor-validated sequence of L1RouteSegments.
type Route struct {
	Segments []L1RouteSegment
}

// NewRoute returns an empty route.
func NewRoute() *Route { return &Route{} }

// Size returns the number of segments in the route.
func (r *Route) Size() int { return len(r.Segments) }

// Front returns the first segment, if any.
func (r *Route) Front() (L1RouteSegment, bool) {
	if len(r.Segments) == 0 {
		return L1RouteSegment{}, false
	}
	return r.Segments[0], true
}

// Back returns the last segment, if any.
func (r *Route) Back() (L1RouteSegment, bool) {
	if len(r.Segments) == 0 {
		return L1RouteSegment{}, false
	}
	return r.Segments[len(r.Segments)-1], true
}

// SourceHICANN returns the first HICANNOnWafer segment in the route.
func (r *Route) SourceHICANN() (coord.HICANNOnWafer, bool) {
	for _, s := range r.Segments {
		if s.Kind == SegHICANN {
			return s.HICANN, true
		}
	}
	return coord.HICANNOnWafer{}, false
}

// TargetHICANN returns the last HICANNOnWafer segment in the route.
func (r *Route) TargetHICANN() (coord.HICANNOnWafer, bool) {
	for i := len(r.Segments) - 1; i >= 0; i-- {
		if r.Segments[i].Kind == SegHICANN {
			return r.Segments[i].HICANN, true
		}
	}
	return coord.HICANNOnWafer{}, false
}

// Append adds seg to the end of the route, validating it against the
// successor relation unless the route is currently empty.
func (r *Route) Append(seg L1RouteSegment) error {
	n := len(r.Segments)
	if n == 0 {
		r.Segments = append(r.Segments, seg)
		return nil
	}
	prev := r.Segments[n-1]
	var prevPrev L1RouteSegment
	havePrevPrev := n >= 2
	if havePrevPrev {
		prevPrev = r.Segments[n-2]
	}
	if !validSuccessor(prevPrev, havePrevPrev, prev, seg) {
		return ErrInvalidSuccessor
	}
	r.Segments = append(r.Segments, seg)
	return nil
}

// AppendHICANN appends a cross-chip continuation: the HICANNOnWafer
// marker followed by the destination line segment.
func (r *Route) AppendHICANN(hicann coord.HICANNOnWafer, next L1RouteSegment) error {
	if err := r.Append(SegHICANNOnWafer(hicann)); err != nil {
		return err
	}
	return r.Append(next)
}

// Clone returns a deep copy of the route.
func (r *Route) Clone() *Route {
	out := make([]L1RouteSegment, len(r.Segments))
	copy(out, r.Segments)
	return &Route{Segments: out}
}

// Join appends other to r according to mode.
func (r *Route) Join(other *Route, mode JoinMode) error {
	if len(other.Segments) == 0 {
		return nil
	}
	if len(r.Segments) == 0 {
		r.Segments = append(r.Segments, other.Segments...)
		return nil
	}

	switch mode {
	case MergeCommonEndpoints:
		back, _ := r.Back()
		front, _ := other.Front()
		if !back.Equal(front) {
			return ErrJoinMismatch
		}
		r.Segments = append(r.Segments, other.Segments[1:]...)
		return nil
	default: // Extend
		for _, s := range other.Segments {
			if err := r.Append(s); err != nil {
				return err
			}
		}
		return nil
	}
}

// Split divides the route at index i into two routes: [0,i) and [i,len).
// If the second route would not begin with a HICANNOnWafer segment, the
// most recent HICANNOnWafer segment before i is inserted as its new start,
// so the second route remains independently chip-anchored.
func (r *Route) Split(i int) (*Route, *Route, error) {
	if i < 0 || i > len(r.Segments) {
		return nil, nil, ErrSplitOutOfRange
	}
	head := &Route{Segments: append([]L1RouteSegment{}, r.Segments[:i]...)}

	var tailSegs []L1RouteSegment
	if i < len(r.Segments) && r.Segments[i].Kind != SegHICANN {
		for j := i - 1; j >= 0; j-- {
			if r.Segments[j].Kind == SegHICANN {
				tailSegs = append(tailSegs, r.Segments[j])
				break
			}
		}
	}
	tailSegs = append(tailSegs, r.Segments[i:]...)
	tail := &Route{Segments: tailSegs}
	return head, tail, nil
}

// Verify replays the whole segment list through the successor relation,
// confirming the round-trip law: any route built solely via Append is
// self-consistent, and any externally constructed slice can be checked the
// same way.
func Verify(segs []L1RouteSegment) error {
	r := &Route{}
	for _, s := range segs {
		if err := r.Append(s); err != nil {
			return err
		}
	}
	return nil
}
