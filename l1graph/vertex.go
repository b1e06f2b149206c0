package l1graph

import (
	"fmt"

	"github.com/wafermap/neurocore/coord"
)

// LineKind distinguishes a horizontal bus line vertex from a vertical one.
type LineKind int

const (
	LineH LineKind = iota
	LineV
)

func (k LineKind) String() string {
	if k == LineH {
		return "H"
	}
	return "V"
}

// VertexID identifies one L1 bus-fabric vertex: a single H-line or V-line
// on a specific HICANN.
type VertexID struct {
	HICANN coord.HICANNOnWafer
	Kind   LineKind
	Index  uint16
}

func (v VertexID) String() string {
	return fmt.Sprintf("%s.%s%d", v.HICANN.String(), v.Kind.String(), v.Index)
}

func vertexH(h coord.HICANNOnWafer, line coord.HLineOnHICANN) VertexID {
	return VertexID{HICANN: h, Kind: LineH, Index: uint16(line.Value())}
}

func vertexV(h coord.HICANNOnWafer, line coord.VLineOnHICANN) VertexID {
	return VertexID{HICANN: h, Kind: LineV, Index: uint16(line.Value())}
}
