package coord

import "fmt"

// RepeaterBlockOnHICANN groups lines into one of the 8 repeater blocks that
// share a sending-repeater control path.
type RepeaterBlockOnHICANN uint8

const RepeaterBlockCount = 8

func (b RepeaterBlockOnHICANN) Value() int { return int(b) }

// ToRepeaterBlockOnHICANN groups an H-line into its repeater block.
func (h HLineOnHICANN) ToRepeaterBlockOnHICANN() RepeaterBlockOnHICANN {
	return RepeaterBlockOnHICANN(int(h) / (HLineCount / RepeaterBlockCount))
}

// ToRepeaterBlockOnHICANN groups a V-line into its repeater block.
func (v VLineOnHICANN) ToRepeaterBlockOnHICANN() RepeaterBlockOnHICANN {
	return RepeaterBlockOnHICANN(int(v) / (VLineCount / RepeaterBlockCount))
}

// HRepeaterOnHICANN is the horizontal sending/receiving repeater serving one
// H-line.
type HRepeaterOnHICANN struct {
	Line HLineOnHICANN
}

func (r HRepeaterOnHICANN) ToHLineOnHICANN() HLineOnHICANN { return r.Line }
func (r HRepeaterOnHICANN) ToSideHorizontal() Side         { return r.Line.ToSideHorizontal() }

func (r HRepeaterOnHICANN) String() string {
	return fmt.Sprintf("HRepeaterOnHICANN(%d)", int(r.Line))
}

// VRepeaterOnHICANN is the vertical sending/receiving repeater serving one
// V-line.
type VRepeaterOnHICANN struct {
	Line VLineOnHICANN
}

func (r VRepeaterOnHICANN) ToVLineOnHICANN() VLineOnHICANN { return r.Line }

// ToSideVertical reports whether this repeater's continuation runs north or
// south, derived from the line's position within its repeater block.
func (r VRepeaterOnHICANN) ToSideVertical() TopBottom {
	if (int(r.Line)/(VLineCount/RepeaterBlockCount))%2 == 0 {
		return Top
	}
	return Bottom
}

func (r VRepeaterOnHICANN) String() string {
	return fmt.Sprintf("VRepeaterOnHICANN(%d)", int(r.Line))
}

// GbitLinkOnHICANN indexes one of the 8 high-speed serial links connecting a
// chip to its DNC.
type GbitLinkOnHICANN uint8

const GbitLinkCount = 8

func (g GbitLinkOnHICANN) Value() int { return int(g) }

// SendingRepeaterOnHICANN is the fixed sending repeater associated with a
// DNC-merger output; each DNC merger has exactly one dedicated H-line.
type SendingRepeaterOnHICANN struct {
	Line HLineOnHICANN
}

// dncMergerHomeHLine maps each DNCMergerOnHICANN index to the H-line its
// dedicated sending repeater drives. Spaced every 8 lines across the 64
// available H-lines, one per DNC merger.
var dncMergerHomeHLine = [DNCMergerCount]HLineOnHICANN{4, 12, 20, 28, 36, 44, 52, 60}

// ToHLineOnHICANN returns the H-line driven by this DNC merger's sending
// repeater.
func (d DNCMergerOnHICANN) ToHLineOnHICANN() HLineOnHICANN {
	return dncMergerHomeHLine[d]
}
