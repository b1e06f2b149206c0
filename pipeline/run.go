package pipeline

import (
	"errors"
	"sync"

	"github.com/wafermap/neurocore/address"
	"github.com/wafermap/neurocore/biograph"
	"github.com/wafermap/neurocore/coord"
	"github.com/wafermap/neurocore/l1graph"
	"github.com/wafermap/neurocore/merger"
	"github.com/wafermap/neurocore/placement"
	"github.com/wafermap/neurocore/resource"
	"github.com/wafermap/neurocore/router"
	"github.com/wafermap/neurocore/statsutil"
	"github.com/wafermap/neurocore/synloss"
	"github.com/wafermap/neurocore/waferconfig"
)

// defaultWorkers bounds the C10/C12 per-chip fan-out when Pipeline.Workers
// is left at zero.
const defaultWorkers = 8

// Pipeline sequences C6 through C10/C12 over the three collaborator
// boundaries a caller supplies (spec §6): the biological network source,
// the wafer's defect report, and the calibration backend, initialised
// per chip by the synapse-driver stage.
type Pipeline struct {
	Network     biograph.NetworkSource
	Defects     resource.DefectProvider
	Calibration CalibrationBackend

	// Workers bounds the number of concurrent per-chip driver-allocation
	// goroutines C10/C12 fans out to. Zero means defaultWorkers.
	Workers int
}

// New returns a Pipeline wired to the given collaborators.
func New(network biograph.NetworkSource, defects resource.DefectProvider, calib CalibrationBackend) *Pipeline {
	return &Pipeline{Network: network, Defects: defects, Calibration: calib}
}

// Run executes the full mapping pipeline for cfg: placement (C6), merger
// routing (C7), L1 address assignment (C8), L1 bus routing (C9), and the
// concurrent synapse-driver allocation fan-out (C10/C12), recording
// per-stage timing into the returned Stats.
func (p *Pipeline) Run(cfg waferconfig.Config) (*Result, *statsutil.Stats, error) {
	stats := statsutil.New()
	result := newResult()

	mgr := resource.NewManager(cfg.Wafer)
	if p.Defects != nil {
		if err := mgr.LoadDefects(p.Defects); err != nil {
			return nil, stats, err
		}
	}

	bg, err := buildBioGraph(p.Network, stats)
	if err != nil {
		return nil, stats, err
	}

	if err := p.runPlacement(cfg, mgr, bg, result, stats); err != nil {
		return nil, stats, err
	}

	items := result.Placement.All()
	chips := chipsOf(items)

	if err := runMergerStage(cfg, items, chips, result, stats); err != nil {
		return nil, stats, err
	}

	if err := runAddressStage(cfg, result, stats); err != nil {
		return nil, stats, err
	}

	p.runRoutingStage(cfg, mgr, bg, result, stats)

	if err := p.runSyndriveStage(mgr, bg, items, chips, result, stats); err != nil {
		return nil, stats, err
	}

	return result, stats, nil
}

// calibrateChip runs the one-time Config/Init handshake (spec §6) for chip
// against the configured calibration backend, caching so repeat chips in a
// run only pay the cost once. A nil Calibration is a valid "no calibration
// backend configured" state, not an error.
func (p *Pipeline) calibrateChip(chip coord.HICANNOnWafer, done map[coord.HICANNOnWafer]bool) error {
	if p.Calibration == nil || done[chip] {
		return nil
	}
	if err := p.Calibration.Config("hicann", chip); err != nil {
		return err
	}
	if err := p.Calibration.Init(); err != nil {
		return err
	}
	done[chip] = true
	return nil
}

func buildBioGraph(src biograph.NetworkSource, stats *statsutil.Stats) (*biograph.BioGraph, error) {
	defer stats.Timer("biograph")()
	return biograph.Build(src)
}

// chipsOf returns the distinct chips holding at least one placed item, in
// deterministic row-major order.
func chipsOf(items []*placement.Item) []coord.HICANNOnWafer {
	seen := make(map[coord.HICANNOnWafer]bool)
	var out []coord.HICANNOnWafer
	for _, it := range items {
		if !seen[it.HICANN] {
			seen[it.HICANN] = true
			out = append(out, it.HICANN)
		}
	}
	return out
}

// runPlacement builds one placement.Request per non-source, non-spike-input
// population (spike sources and relays occupy no hardware neuron circuits)
// and allocates every chip the resulting Placement touches.
func (p *Pipeline) runPlacement(cfg waferconfig.Config, mgr *resource.Manager, bg *biograph.BioGraph, result *Result, stats *statsutil.Stats) error {
	defer stats.Timer("placement")()

	var requests []placement.Request
	for _, pop := range bg.Populations() {
		if bg.IsSource(pop.ID) || bg.IsSpikeInput(pop.ID) {
			continue
		}
		requests = append(requests, placement.Request{
			PopulationID:  pop.ID,
			StartBioIndex: 0,
			BioCount:      pop.Size,
			HWNeuronSize:  1,
			Pin:           cfg.PinFor(pop.ID, 0),
		})
	}

	placer := placement.NewPlacer(mgr)
	placed, losses, err := placer.Place(requests)
	if err != nil {
		return err
	}
	result.Placement = placed
	result.PlacementLosses = losses

	for _, chip := range chipsOf(placed.All()) {
		if err := mgr.Allocate(chip); err != nil && !errors.Is(err, resource.ErrAlreadyAllocated) {
			return err
		}
	}
	return nil
}

// runMergerStage groups each chip's placed items by neuron block, routes
// them through the merger tree (C7), and records the per-chip Result.
func runMergerStage(cfg waferconfig.Config, items []*placement.Item, chips []coord.HICANNOnWafer, result *Result, stats *statsutil.Stats) error {
	defer stats.Timer("merger")()

	byChip := make(map[coord.HICANNOnWafer][]*placement.Item)
	for _, it := range items {
		byChip[it.HICANN] = append(byChip[it.HICANN], it)
	}

	for _, chip := range chips {
		var counts [coord.NeuronBlockCount]int
		for _, it := range byChip[chip] {
			counts[it.Block]++
		}
		result.MergerResults[chip] = merger.Route(counts, cfg.MergerStrategy, cfg.MergerOracle)
	}
	return nil
}

// runAddressStage marks every assigned DNC merger as carrying output
// traffic and pops one L1 address per placed neuron in its blocks (C8).
func runAddressStage(cfg waferconfig.Config, result *Result, stats *statsutil.Stats) error {
	defer stats.Timer("address")()

	addrMgr := address.NewManager(address.WithStrategy(cfg.AddressStrategy))

	for chip, mres := range result.MergerResults {
		for _, assignment := range mres.Assignments {
			if err := addrMgr.SetOutput(chip, assignment.DNCMerger); err != nil {
				return err
			}
			for _, block := range assignment.Blocks {
				for _, item := range result.Placement.ByBlock(chip, block) {
					addr, err := addrMgr.Pop(chip, assignment.DNCMerger)
					if err != nil {
						return err
					}
					if err := result.Placement.SetAddress(item.LogicalNeuron, addr); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

// runRoutingStage builds the wafer-wide L1 graph and routes every merger's
// output across it (C9). Routing losses are recorded, never returned as
// errors (spec §7: Unroutable is a loss, not a Go error).
func (p *Pipeline) runRoutingStage(cfg waferconfig.Config, mgr *resource.Manager, bg *biograph.BioGraph, result *Result, stats *statsutil.Stats) {
	defer stats.Timer("routing")()

	present := unmaskedChips(mgr)
	g := l1graph.Build(present, cfg.SwitchOrdering, cfg.SwitchOrderingSeed)

	popChips := populationChips(result.Placement.All())
	merged := make(map[coord.HICANNOnWafer]map[coord.NeuronBlockOnHICANN]coord.DNCMergerOnHICANN)
	for chip, mres := range result.MergerResults {
		merged[chip] = mres.BlockToDNC
	}

	sources, priorities := buildSources(cfg, bg, merged, popChips)
	queue := router.BuildQueue(sources, priorities, nil)

	routeAll(cfg, g, queue, result.Routing, bg, popChips)
}

func unmaskedChips(mgr *resource.Manager) []coord.HICANNOnWafer {
	all := coord.AllHICANNOnWafer()
	out := make([]coord.HICANNOnWafer, 0, len(all))
	for _, h := range all {
		if !mgr.IsMasked(h) {
			out = append(out, h)
		}
	}
	return out
}

// runSyndriveStage fans the C10/C12 per-chip synapse-driver allocation out
// over a bounded worker pool (§5): each goroutine owns a private
// synloss.Accumulator, merged into the shared one under a mutex as soon
// as its task finishes, so no lock is held while a per-chip task runs.
func (p *Pipeline) runSyndriveStage(mgr *resource.Manager, bg *biograph.BioGraph, items []*placement.Item, chips []coord.HICANNOnWafer, result *Result, stats *statsutil.Stats) error {
	defer stats.Timer("syndrive")()

	workers := p.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	calibrated := make(map[coord.HICANNOnWafer]bool, len(chips))
	for _, chip := range chips {
		if err := p.calibrateChip(chip, calibrated); err != nil {
			return err
		}
	}

	byChip := make(map[coord.HICANNOnWafer][]*placement.Item)
	for _, it := range items {
		byChip[it.HICANN] = append(byChip[it.HICANN], it)
	}

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		sem = make(chan struct{}, workers)
	)

	for _, chip := range chips {
		chip := chip
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			partial := synloss.New()
			allocations := allocateChip(mgr, bg, chip, byChip[chip], partial)

			mu.Lock()
			defer mu.Unlock()
			result.DriverAllocations = append(result.DriverAllocations, allocations...)
			result.SynapseLoss.Merge(partial)
		}()
	}
	wg.Wait()
	return nil
}
