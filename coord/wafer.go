package coord

import "fmt"

// WaferIndex identifies one wafer module in a (possibly multi-wafer) setup.
type WaferIndex uint32

// HICANNOnWafer is the wafer-relative grid coordinate of a single chip.
// The wafer is round, so not every (X, Y) pair in the bounding box names a
// present chip: use Valid to test reticle-mask membership before using a
// coordinate constructed directly rather than via NewHICANNOnWafer.
type HICANNOnWafer struct {
	X, Y int16
}

// Wafer grid bounding box. The actual present-chip footprint is the
// diamond-shaped mask below, approximating the real round wafer.
const (
	WaferWidth  = 36
	WaferHeight = 16
)

// reticleRowBounds[y] gives the inclusive [min, max] X range of present
// chips in row y, approximating the wafer's round reticle mask.
var reticleRowBounds = [WaferHeight][2]int16{
	{8, 27}, {6, 29}, {4, 31}, {2, 33},
	{1, 34}, {0, 35}, {0, 35}, {0, 35},
	{0, 35}, {0, 35}, {0, 35}, {0, 35},
	{1, 34}, {2, 33}, {4, 31}, {6, 29},
}

// NewHICANNOnWafer constructs a HICANNOnWafer, validating reticle-mask
// membership.
func NewHICANNOnWafer(x, y int16) (HICANNOnWafer, error) {
	h := HICANNOnWafer{X: x, Y: y}
	if !h.Valid() {
		return HICANNOnWafer{}, fmt.Errorf("%w: HICANN(%d,%d) outside wafer mask", ErrOutOfRange, x, y)
	}
	return h, nil
}

// Valid reports whether this coordinate names a present chip on the wafer.
func (h HICANNOnWafer) Valid() bool {
	if h.Y < 0 || int(h.Y) >= WaferHeight {
		return false
	}
	bounds := reticleRowBounds[h.Y]
	return h.X >= bounds[0] && h.X <= bounds[1]
}

func (h HICANNOnWafer) String() string {
	return fmt.Sprintf("HICANNOnWafer(%d,%d)", h.X, h.Y)
}

// North, South, East and West return the neighbouring chip coordinate, or
// ErrNoSuchNeighbor if the wafer mask does not extend that far.
func (h HICANNOnWafer) North() (HICANNOnWafer, error) { return h.step(0, -1) }
func (h HICANNOnWafer) South() (HICANNOnWafer, error) { return h.step(0, 1) }
func (h HICANNOnWafer) East() (HICANNOnWafer, error)  { return h.step(1, 0) }
func (h HICANNOnWafer) West() (HICANNOnWafer, error)  { return h.step(-1, 0) }

func (h HICANNOnWafer) step(dx, dy int16) (HICANNOnWafer, error) {
	n := HICANNOnWafer{X: h.X + dx, Y: h.Y + dy}
	if !n.Valid() {
		return HICANNOnWafer{}, fmt.Errorf("%w: from %s direction (%d,%d)", ErrNoSuchNeighbor, h, dx, dy)
	}
	return n, nil
}

// Id returns a stable small-integer identifier for this chip, used to seed
// deterministic-but-shuffled switch orderings.
func (h HICANNOnWafer) Id() int {
	return int(h.Y)*WaferWidth + int(h.X)
}

// AllHICANNOnWafer returns every present chip coordinate in row-major order.
func AllHICANNOnWafer() []HICANNOnWafer {
	out := make([]HICANNOnWafer, 0, 384)
	for y := int16(0); y < WaferHeight; y++ {
		b := reticleRowBounds[y]
		for x := b[0]; x <= b[1]; x++ {
			out = append(out, HICANNOnWafer{X: x, Y: y})
		}
	}
	return out
}
