package synloss

import (
	"errors"
	"math"
	"sync"

	"github.com/wafermap/neurocore/coord"
)

// ErrDuplicateSynapseClaim is returned by Merge when two partial
// accumulators both record an entry for the same projection and synapse
// index.
var ErrDuplicateSynapseClaim = errors.New("synloss: two partials claim the same synapse index")

// SynapseIndex is a (presynaptic, postsynaptic) bio-neuron pair within one
// projection's sparse weight view.
type SynapseIndex struct {
	Pre, Post int
}

// ChipTally counts presynaptic and postsynaptic events seen for one target
// chip, and how many of those were actually realised (Set).
type ChipTally struct {
	Pre, Post, Set int
}

// Accumulator is a (possibly partial, per-chip) synapse-loss and
// weight-realisation record. The zero value is not usable; use New.
type Accumulator struct {
	mu      sync.Mutex
	weights map[string]map[SynapseIndex]float64
	perChip map[coord.HICANNOnWafer]*ChipTally
}

// New returns an empty accumulator.
func New() *Accumulator {
	return &Accumulator{
		weights: make(map[string]map[SynapseIndex]float64),
		perChip: make(map[coord.HICANNOnWafer]*ChipTally),
	}
}

func (a *Accumulator) tally(chip coord.HICANNOnWafer) *ChipTally {
	t, ok := a.perChip[chip]
	if !ok {
		t = &ChipTally{}
		a.perChip[chip] = t
	}
	return t
}

// Realize records a successfully placed synapse with its (possibly
// distorted) weight.
func (a *Accumulator) Realize(projection string, idx SynapseIndex, chip coord.HICANNOnWafer, weight float64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	proj, ok := a.weights[projection]
	if !ok {
		proj = make(map[SynapseIndex]float64)
		a.weights[projection] = proj
	}
	proj[idx] = weight

	t := a.tally(chip)
	t.Pre++
	t.Post++
	t.Set++
}

// Lose records a synapse that could not be placed; its weight entry is
// marked NaN.
func (a *Accumulator) Lose(projection string, idx SynapseIndex, chip coord.HICANNOnWafer) {
	a.mu.Lock()
	defer a.mu.Unlock()

	proj, ok := a.weights[projection]
	if !ok {
		proj = make(map[SynapseIndex]float64)
		a.weights[projection] = proj
	}
	proj[idx] = math.NaN()

	t := a.tally(chip)
	t.Pre++
	t.Post++
}

// Weight returns the recorded weight for a synapse, and whether any entry
// (realised or lost) exists at all.
func (a *Accumulator) Weight(projection string, idx SynapseIndex) (float64, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	proj, ok := a.weights[projection]
	if !ok {
		return 0, false
	}
	w, ok := proj[idx]
	return w, ok
}

// Lost reports whether the synapse at idx was marked lost (NaN weight).
func (a *Accumulator) Lost(projection string, idx SynapseIndex) bool {
	w, ok := a.Weight(projection, idx)
	return ok && math.IsNaN(w)
}

// Tally returns a copy of the per-chip tally, or the zero tally if chip
// has no recorded events.
func (a *Accumulator) Tally(chip coord.HICANNOnWafer) ChipTally {
	a.mu.Lock()
	defer a.mu.Unlock()

	if t, ok := a.perChip[chip]; ok {
		return *t
	}
	return ChipTally{}
}

// Merge folds other into a as an element-wise union: neither may have
// already claimed the same (projection, SynapseIndex) entry.
func (a *Accumulator) Merge(other *Accumulator) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	other.mu.Lock()
	defer other.mu.Unlock()

	for proj, entries := range other.weights {
		dst, ok := a.weights[proj]
		if !ok {
			dst = make(map[SynapseIndex]float64)
			a.weights[proj] = dst
		}
		for idx, w := range entries {
			if _, exists := dst[idx]; exists {
				return ErrDuplicateSynapseClaim
			}
			dst[idx] = w
		}
	}

	for chip, t := range other.perChip {
		dst := a.tally(chip)
		dst.Pre += t.Pre
		dst.Post += t.Post
		dst.Set += t.Set
	}
	return nil
}
