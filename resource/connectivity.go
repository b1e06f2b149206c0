package resource

import (
	"github.com/wafermap/neurocore/coord"
	"github.com/wafermap/neurocore/gridgraph"
)

// ConnectivityReport summarizes how many disjoint unmasked regions a
// wafer's reticle mask and defect report leave behind. A wafer with more
// than one island means L1 bus routing (C9) cannot reach every placed
// chip from every other without crossing a masked gap, which is worth
// flagging before a mapping run rather than discovering it one lost
// projection at a time.
type ConnectivityReport struct {
	// Islands holds one entry per connected component of present,
	// unmasked HICANNs, each as the list of chips it contains.
	Islands [][]coord.HICANNOnWafer
}

// Connected reports whether every present, unmasked HICANN is reachable
// from every other through 4-connected present, unmasked neighbours.
func (r ConnectivityReport) Connected() bool {
	return len(r.Islands) <= 1
}

// Connectivity builds the wafer's present/unmasked HICANNs into a dense
// grid and runs gridgraph's connected-components walk over it, treating
// present-and-unmasked cells as land and everything else (outside the
// reticle mask, or masked by a reported defect) as water.
func (m *Manager) Connectivity() (ConnectivityReport, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cells := make([][]int, coord.WaferHeight)
	for y := range cells {
		cells[y] = make([]int, coord.WaferWidth)
	}
	for h := range m.present {
		if _, masked := m.masked[h]; masked {
			continue
		}
		cells[h.Y][h.X] = 1
	}

	gg, err := gridgraph.NewGridGraph(cells, gridgraph.DefaultGridOptions())
	if err != nil {
		return ConnectivityReport{}, err
	}

	components := gg.ConnectedComponents()
	var islands [][]coord.HICANNOnWafer
	for _, comps := range components {
		for _, comp := range comps {
			island := make([]coord.HICANNOnWafer, len(comp))
			for i, cell := range comp {
				island[i] = coord.HICANNOnWafer{X: int16(cell.X), Y: int16(cell.Y)}
			}
			islands = append(islands, island)
		}
	}
	return ConnectivityReport{Islands: islands}, nil
}
