// Package l1route implements the L1 route algebra: a route is an ordered
// sequence of typed segments (chip crossings, bus lines, repeaters,
// mergers, drivers) with a successor-validity relation between consecutive
// segments, plus L1RouteTree, a prefix tree of routes sharing a common
// head.
//
// Following the teacher's "isolate the 2-D dispatch table in one place"
// design note (see core's own preference for one well-documented function
// per concern rather than scattered type switches), every successor rule
// is one small unexported predicate, composed by a single validSuccessor
// switch in validate.go.
package l1route
