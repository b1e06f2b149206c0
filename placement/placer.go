package placement

import (
	"sort"

	"github.com/wafermap/neurocore/coord"
	"github.com/wafermap/neurocore/resource"
)

// Placer places requests onto the chips tracked by a resource.Manager.
type Placer struct {
	mgr   *resource.Manager
	grids map[blockKey]*blockGrid
}

// NewPlacer returns a Placer backed by mgr, whose AvailableHICANNs and
// NeuronAvailable govern where requests may land.
func NewPlacer(mgr *resource.Manager) *Placer {
	return &Placer{mgr: mgr, grids: make(map[blockKey]*blockGrid)}
}

// Place assigns every request a contiguous rectangle, pinned requests and
// higher-priority requests first, returning the resulting Placement and any
// requests (or individual bio-neurons within a request) that could not be
// placed.
func (pl *Placer) Place(requests []Request) (*Placement, []LossRecord, error) {
	ordered := append([]Request{}, requests...)
	sort.SliceStable(ordered, func(i, j int) bool {
		pinnedI := ordered[i].Pin != nil
		pinnedJ := ordered[j].Pin != nil
		if pinnedI != pinnedJ {
			return pinnedI
		}
		return ordered[i].Priority > ordered[j].Priority
	})

	result := New()
	var losses []LossRecord
	ownerSeq := 1

	for _, req := range ordered {
		width := req.HWNeuronSize * req.BioCount
		if width <= 0 {
			losses = append(losses, LossRecord{PopulationID: req.PopulationID, Reason: "zero-size request"})
			continue
		}

		chip, block, start, ok := pl.findSlot(req)
		if !ok {
			for i := 0; i < req.BioCount; i++ {
				losses = append(losses, LossRecord{
					PopulationID: req.PopulationID,
					BioNeuronIdx: req.StartBioIndex + i,
					Reason:       "no contiguous free rectangle available",
				})
			}
			continue
		}

		key := blockKey{HICANN: chip, Block: block}
		pl.grids[key].claim(start, width, ownerSeq)
		ownerSeq++

		for i := 0; i < req.BioCount; i++ {
			result.add(&Item{
				PopulationID: req.PopulationID,
				BioNeuronIdx: req.StartBioIndex + i,
				HICANN:       chip,
				Block:        block,
				StartColumn:  start + i*req.HWNeuronSize,
				Width:        req.HWNeuronSize,
			})
		}
	}

	return result, losses, nil
}

func (pl *Placer) findSlot(req Request) (coord.HICANNOnWafer, coord.NeuronBlockOnHICANN, int, bool) {
	width := req.HWNeuronSize * req.BioCount

	chips := pl.candidateChips(req)
	blocks := pl.candidateBlocks(req)

	for _, h := range chips {
		if !pl.mgr.IsAvailable(h) && !pl.mgr.IsAllocated(h) {
			continue
		}
		for _, b := range blocks {
			g := pl.gridFor(h, b)
			if start, ok := g.findRun(width); ok {
				return h, b, start, true
			}
		}
	}
	return coord.HICANNOnWafer{}, 0, 0, false
}

func (pl *Placer) candidateChips(req Request) []coord.HICANNOnWafer {
	if req.Pin != nil && req.Pin.HICANN != nil {
		return []coord.HICANNOnWafer{*req.Pin.HICANN}
	}
	return pl.mgr.AvailableHICANNs()
}

func (pl *Placer) candidateBlocks(req Request) []coord.NeuronBlockOnHICANN {
	if req.Pin != nil && req.Pin.Block != nil {
		return []coord.NeuronBlockOnHICANN{*req.Pin.Block}
	}
	out := make([]coord.NeuronBlockOnHICANN, coord.NeuronBlockCount)
	for i := range out {
		out[i] = coord.NeuronBlockOnHICANN(i)
	}
	return out
}

func (pl *Placer) gridFor(h coord.HICANNOnWafer, b coord.NeuronBlockOnHICANN) *blockGrid {
	key := blockKey{HICANN: h, Block: b}
	g, ok := pl.grids[key]
	if !ok {
		g, _ = newBlockGrid()
		pl.grids[key] = g
		pl.applyDefects(h, b, g)
	}
	return g
}

func (pl *Placer) applyDefects(h coord.HICANNOnWafer, b coord.NeuronBlockOnHICANN, g *blockGrid) {
	for col := 0; col < gridCols; col++ {
		n := coord.NeuronOnHICANN{Block: b, Index: uint8(col)}
		if !pl.mgr.NeuronAvailable(h, n) {
			g.markDefective(col)
		}
	}
}
