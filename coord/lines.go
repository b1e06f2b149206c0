package coord

import "fmt"

// Side is the left/right half of a chip, used to disambiguate which
// neighbouring chip an H-line repeater continues onto.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// TopBottom is the top/bottom half of a chip, used to disambiguate which
// neighbouring chip a V-line repeater continues onto.
type TopBottom int

const (
	Top TopBottom = iota
	Bottom
)

func (t TopBottom) String() string {
	if t == Top {
		return "top"
	}
	return "bottom"
}

// HLineOnHICANN indexes one of the 64 horizontal L1 bus lines on a chip.
type HLineOnHICANN uint8

const HLineCount = 64

// NewHLineOnHICANN validates and constructs an HLineOnHICANN.
func NewHLineOnHICANN(v int) (HLineOnHICANN, error) {
	if v < 0 || v >= HLineCount {
		return 0, fmt.Errorf("%w: HLineOnHICANN(%d)", ErrOutOfRange, v)
	}
	return HLineOnHICANN(v), nil
}

func (h HLineOnHICANN) Value() int { return int(h) }

func (h HLineOnHICANN) String() string { return fmt.Sprintf("HLineOnHICANN(%d)", int(h)) }

// East and West return the line index an H-line continues onto across a
// chip boundary. Lines run straight across the boundary, so the index is
// unchanged; only the owning chip differs.
func (h HLineOnHICANN) East() HLineOnHICANN { return h }
func (h HLineOnHICANN) West() HLineOnHICANN { return h }

// ToSideHorizontal reports which half of the chip this H-line's sending
// repeater sits on.
func (h HLineOnHICANN) ToSideHorizontal() Side {
	if h%2 == 0 {
		return SideLeft
	}
	return SideRight
}

// AllHLineOnHICANN returns every H-line index in ascending order.
func AllHLineOnHICANN() []HLineOnHICANN {
	out := make([]HLineOnHICANN, HLineCount)
	for i := range out {
		out[i] = HLineOnHICANN(i)
	}
	return out
}

// VLineOnHICANN indexes one of the 256 vertical L1 bus lines on a chip.
type VLineOnHICANN uint16

const VLineCount = 256

// NewVLineOnHICANN validates and constructs a VLineOnHICANN.
func NewVLineOnHICANN(v int) (VLineOnHICANN, error) {
	if v < 0 || v >= VLineCount {
		return 0, fmt.Errorf("%w: VLineOnHICANN(%d)", ErrOutOfRange, v)
	}
	return VLineOnHICANN(v), nil
}

func (v VLineOnHICANN) Value() int { return int(v) }

func (v VLineOnHICANN) String() string { return fmt.Sprintf("VLineOnHICANN(%d)", int(v)) }

// North and South return the line index a V-line continues onto across a
// chip boundary; lines run straight across, so the index is unchanged.
func (v VLineOnHICANN) North() VLineOnHICANN { return v }
func (v VLineOnHICANN) South() VLineOnHICANN { return v }

// ToSideHorizontal reports which half of the wafer this V-line belongs to,
// used to match synapse drivers against adjacent-chip targets.
func (v VLineOnHICANN) ToSideHorizontal() Side {
	if v < VLineCount/2 {
		return SideLeft
	}
	return SideRight
}

// AllVLineOnHICANN returns every V-line index in ascending order.
func AllVLineOnHICANN() []VLineOnHICANN {
	out := make([]VLineOnHICANN, VLineCount)
	for i := range out {
		out[i] = VLineOnHICANN(i)
	}
	return out
}

// CrossbarPeriod is the repeat period of the fixed crossbar switch
// existence pattern.
const CrossbarPeriod = 32

// CrossbarExists reports whether the fixed crossbar wiring connects the
// given horizontal and vertical L1 bus line on a chip. The real switch
// matrix is a period-32 periodic pattern with a side-dependent offset; we
// reproduce that shape deterministically: each H-line connects to exactly
// one V-line per 32-line block, with the starting offset set by which
// horizontal half the H-line's repeater sits on.
func CrossbarExists(hline HLineOnHICANN, vline VLineOnHICANN) bool {
	offset := int(hline) % CrossbarPeriod
	if hline.ToSideHorizontal() == SideRight {
		offset = (offset + CrossbarPeriod/2) % CrossbarPeriod
	}
	return int(vline)%CrossbarPeriod == offset
}
