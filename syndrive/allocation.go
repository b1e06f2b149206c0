package syndrive

import (
	"errors"

	"github.com/wafermap/neurocore/coord"
	"github.com/wafermap/neurocore/resource"
)

// ErrNoContiguousChain is returned when no contiguous run of available
// drivers of the requested length exists on the given side.
var ErrNoContiguousChain = errors.New("syndrive: no contiguous driver chain available")

// DriverMode is how one driver in a chain relays its input.
type DriverMode int

const (
	// Mirror drivers simply relay L1 input along the chain.
	Mirror DriverMode = iota
	// L1Mirror is the primary driver when it is not the chain's end piece:
	// it both receives the L1 input and relays it onward.
	L1Mirror
	// L1 is the primary driver when it is also the chain's end piece.
	L1
)

// ConnectedSynapseDrivers is one realised driver chain: every driver that
// participates, and which one is primary (directly connected to the
// synapse switch).
type ConnectedSynapseDrivers struct {
	Drivers []coord.SynapseDriverOnHICANN
	Primary coord.SynapseDriverOnHICANN
}

// ModeOf reports the configuration mode for one driver in the chain.
func (c ConnectedSynapseDrivers) ModeOf(d coord.SynapseDriverOnHICANN) DriverMode {
	if d != c.Primary {
		return Mirror
	}
	if len(c.Drivers) > 0 && c.Drivers[len(c.Drivers)-1] == c.Primary {
		return L1
	}
	return L1Mirror
}

// Allocate picks the minimum-y starting driver on side and extends
// contiguously to cover the requested number of rows (one driver carries
// two rows), with the primary driver being the one nearest y=0 — the one
// the synapse switch on the incoming V-line's side connects to.
func Allocate(mgr *resource.Manager, h coord.HICANNOnWafer, side coord.Side, rows int) (ConnectedSynapseDrivers, error) {
	driverCount := (rows + 1) / 2
	if driverCount == 0 {
		return ConnectedSynapseDrivers{}, nil
	}

	for start := 0; start+driverCount <= coord.SynapseDriversPerSide; start++ {
		ok := true
		for i := 0; i < driverCount; i++ {
			d := coord.SynapseDriverOnHICANN{Side: side, Y: uint8(start + i)}
			if !mgr.DriverAvailable(h, d) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}

		drivers := make([]coord.SynapseDriverOnHICANN, driverCount)
		for i := 0; i < driverCount; i++ {
			drivers[i] = coord.SynapseDriverOnHICANN{Side: side, Y: uint8(start + i)}
		}
		return ConnectedSynapseDrivers{Drivers: drivers, Primary: drivers[0]}, nil
	}
	return ConnectedSynapseDrivers{}, ErrNoContiguousChain
}
