package router

import (
	"github.com/wafermap/neurocore/coord"
	"github.com/wafermap/neurocore/l1route"
)

// RouteItem is one realised route from a source to one of its targets.
type RouteItem struct {
	Route  *l1route.Route
	Target Target
}

// ProjectionItem records that one projection's edge from source to target
// is carried by the route recorded for that (source, target) pair.
type ProjectionItem struct {
	Edge       string
	Projection string
	Source     coord.HICANNOnWafer
	Target     Target
}

// LossRecord explains why a request could not be routed.
type LossRecord struct {
	Source coord.HICANNOnWafer
	Target Target
	Reason string
}

// Result accumulates every routed request across a run.
type Result struct {
	Routes      []RouteItem
	Projections []ProjectionItem
	Losses      []LossRecord
}

// NewResult returns an empty Result container.
func NewResult() *Result {
	return &Result{}
}

// AddRoute records a successful route and, for every projection it
// carries, a matching ProjectionItem.
func (r *Result) AddRoute(route *l1route.Route, source coord.HICANNOnWafer, target Target, projections []string, edge string) {
	r.Routes = append(r.Routes, RouteItem{Route: route, Target: target})
	for _, p := range projections {
		r.Projections = append(r.Projections, ProjectionItem{
			Edge:       edge,
			Projection: p,
			Source:     source,
			Target:     target,
		})
	}
}

// AddLoss records a failed request.
func (r *Result) AddLoss(source coord.HICANNOnWafer, target Target, reason string) {
	r.Losses = append(r.Losses, LossRecord{Source: source, Target: target, Reason: reason})
}
