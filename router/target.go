package router

import (
	"github.com/wafermap/neurocore/coord"
	"github.com/wafermap/neurocore/l1graph"
)

// Target names which bus-line vertex, on a given chip, a route must reach:
// the orientation distinguishes "arrive on an H-line" from "arrive on a
// V-line" so the path-to-route lowering knows which kind of segment to
// emit last.
type Target struct {
	HICANN      coord.HICANNOnWafer
	Orientation l1graph.LineKind
}
