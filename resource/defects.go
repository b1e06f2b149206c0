package resource

import "github.com/wafermap/neurocore/coord"

// HICANNDefects lists the defective components on one chip, as reported by
// a DefectProvider.
type HICANNDefects struct {
	Masked  bool
	Neurons []coord.NeuronOnHICANN
	Drivers []coord.SynapseDriverOnHICANN
}

// Defects is the full defect report for one wafer.
type Defects struct {
	PerHICANN map[coord.HICANNOnWafer]HICANNDefects
}

// DefectProvider is consumed by Manager.LoadDefects to source a wafer's
// defect map from an external calibration/defect-tracking backend.
type DefectProvider interface {
	DefectsFor(wafer coord.WaferIndex) (Defects, error)
}

// NewDefects returns an empty Defects report, to be populated by a
// DefectProvider implementation or by tests.
func NewDefects() Defects {
	return Defects{PerHICANN: make(map[coord.HICANNOnWafer]HICANNDefects)}
}
