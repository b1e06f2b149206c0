package pipeline

import (
	"github.com/wafermap/neurocore/biograph"
	"github.com/wafermap/neurocore/coord"
	"github.com/wafermap/neurocore/l1graph"
	"github.com/wafermap/neurocore/l1route"
	"github.com/wafermap/neurocore/placement"
	"github.com/wafermap/neurocore/router"
	"github.com/wafermap/neurocore/waferconfig"
)

// segsToRoute folds a lowered segment chain into a validated l1route.Route,
// failing closed (and producing a loss) if the successor law is broken.
func segsToRoute(segs []l1route.L1RouteSegment) (*l1route.Route, error) {
	route := l1route.NewRoute()
	for _, seg := range segs {
		if err := route.Append(seg); err != nil {
			return nil, err
		}
	}
	return route, nil
}

// edgesBetween collects every projection edge ID whose From population
// has a placed neuron on fromChip and whose To population has a placed
// neuron on toChip.
func edgesBetween(bg *biograph.BioGraph, popChips map[string]map[coord.HICANNOnWafer]bool, fromChip, toChip coord.HICANNOnWafer) []string {
	var out []string
	for _, proj := range bg.Projections() {
		if !popChips[proj.From][fromChip] {
			continue
		}
		if !popChips[proj.To][toChip] {
			continue
		}
		out = append(out, proj.EdgeID)
	}
	return out
}

func populationChips(items []*placement.Item) map[string]map[coord.HICANNOnWafer]bool {
	out := make(map[string]map[coord.HICANNOnWafer]bool)
	for _, it := range items {
		set, ok := out[it.PopulationID]
		if !ok {
			set = make(map[coord.HICANNOnWafer]bool)
			out[it.PopulationID] = set
		}
		set[it.HICANN] = true
	}
	return out
}

// buildSources derives one router.Source per (source chip, DNC merger) pair
// that has populated neuron blocks merged onto it, with its target set
// being every chip any of its outgoing projections must reach, and
// collects each source chip's outgoing projection priorities (cfg's
// per-edge ProjectionPriority, or 1 when unconfigured) for BuildQueue.
func buildSources(cfg waferconfig.Config, bg *biograph.BioGraph, merged map[coord.HICANNOnWafer]map[coord.NeuronBlockOnHICANN]coord.DNCMergerOnHICANN, popChips map[string]map[coord.HICANNOnWafer]bool) ([]router.Source, map[coord.HICANNOnWafer][]float64) {
	type key struct {
		chip coord.HICANNOnWafer
		dnc  coord.DNCMergerOnHICANN
	}
	targetSets := make(map[key]map[coord.HICANNOnWafer]bool)
	priorityByChip := make(map[coord.HICANNOnWafer][]float64)

	for popID, chips := range popChips {
		for fromChip := range chips {
			blockToDNC, ok := merged[fromChip]
			if !ok {
				continue
			}
			for _, dnc := range blockToDNC {
				k := key{fromChip, dnc}
				for _, proj := range bg.Projections() {
					if proj.From != popID {
						continue
					}
					priorityByChip[fromChip] = append(priorityByChip[fromChip], cfg.PriorityFor(proj.EdgeID))
					for toChip := range popChips[proj.To] {
						if targetSets[k] == nil {
							targetSets[k] = make(map[coord.HICANNOnWafer]bool)
						}
						targetSets[k][toChip] = true
					}
				}
			}
		}
	}

	var sources []router.Source
	for k, targets := range targetSets {
		if len(targets) == 0 {
			continue
		}
		list := make([]coord.HICANNOnWafer, 0, len(targets))
		for t := range targets {
			list = append(list, t)
		}
		sources = append(sources, router.Source{HICANN: k.chip, DNCMerger: k.dnc, Targets: list})
	}
	return sources, priorityByChip
}

// routeAll runs C9 over every source in queue order, serially (per §5),
// recording successes and losses into result.
func routeAll(cfg waferconfig.Config, g *l1graph.Graph, sources []router.Source, result *router.Result, bg *biograph.BioGraph, popChips map[string]map[coord.HICANNOnWafer]bool) {
	used := router.NewUsedSwitches()
	weights := router.NewL1EdgeWeights()

	for _, src := range sources {
		sourceVertex := l1graph.VertexID{HICANN: src.HICANN, Kind: l1graph.LineH, Index: uint16(src.DNCMerger.ToHLineOnHICANN().Value())}
		targets := make([]router.Target, len(src.Targets))
		for i, t := range src.Targets {
			targets[i] = router.Target{HICANN: t, Orientation: l1graph.LineH}
		}

		var paths map[router.Target][]l1graph.VertexID
		var err error
		if cfg.L1Algorithm == waferconfig.Dijkstra {
			paths, err = router.DijkstraRoute(g, sourceVertex, targets, weights, used)
		} else {
			paths = router.BackboneRoute(g, sourceVertex, targets, nil, used)
		}
		if err != nil {
			for _, t := range targets {
				result.AddLoss(src.HICANN, t, err.Error())
			}
			continue
		}

		for _, t := range targets {
			path, ok := paths[t]
			if !ok {
				result.AddLoss(src.HICANN, t, "unroutable: no path satisfying one-switch-per-bus found")
				continue
			}
			dnc := src.DNCMerger
			segs := router.LowerPath(path, &dnc)
			route, buildErr := segsToRoute(segs)
			if buildErr != nil {
				result.AddLoss(src.HICANN, t, buildErr.Error())
				continue
			}
			edges := edgesBetween(bg, popChips, src.HICANN, t.HICANN)
			result.AddRoute(route, src.HICANN, t, edges, "")
		}
	}
}
