package pipeline

import (
	"github.com/wafermap/neurocore/coord"
	"github.com/wafermap/neurocore/merger"
	"github.com/wafermap/neurocore/placement"
	"github.com/wafermap/neurocore/router"
	"github.com/wafermap/neurocore/syndrive"
	"github.com/wafermap/neurocore/synloss"
)

// DriverAllocation is one target chip's resolved driver chain for one
// side, serving every (parity, label) bucket realised on that side.
type DriverAllocation struct {
	HICANN coord.HICANNOnWafer
	Side   coord.Side
	Chain  syndrive.ConnectedSynapseDrivers
}

// Result is the full outcome of one pipeline.Run: every artifact the
// external interfaces (spec §6) expose.
type Result struct {
	Placement       *placement.Placement
	PlacementLosses []placement.LossRecord

	MergerResults map[coord.HICANNOnWafer]*merger.Result

	Routing *router.Result

	DriverAllocations []DriverAllocation
	SynapseLoss       *synloss.Accumulator
}

func newResult() *Result {
	return &Result{
		MergerResults: make(map[coord.HICANNOnWafer]*merger.Result),
		Routing:       router.NewResult(),
		SynapseLoss:   synloss.New(),
	}
}
