// Package neurocore maps a biological spiking network onto a wafer-scale
// neuromorphic substrate.
//
// Given a population/projection graph and a wafer's defect report, it
// places neurons onto HICANN chips, routes each chip's output through its
// merger tree, assigns L1 bus addresses, routes across the L1 crossbar
// fabric, and allocates synapse-driver rows and synapse columns for every
// surviving projection. Everything below the network description and
// above the device-configuration writer lives here:
//
//	coord/       — wafer/HICANN/neuron-block/line/merger/driver coordinates
//	biograph/    — population/projection graph built from a caller-supplied source
//	resource/    — per-wafer chip inventory, defect masking, allocation
//	l1route/     — the L1 route algebra and its successor-law verifier
//	l1graph/     — the wafer-wide L1 bus graph routing walks the crossbar on
//	placement/   — neuron → (chip, block, column) assignment
//	merger/      — per-chip DNC-merger-tree routing
//	address/     — L1 address pool assignment
//	router/      — L1 bus routing (backbone and Dijkstra variants)
//	syndrive/    — synapse-driver row and column allocation
//	synmap/      — per-neuron synapse-column side/parity resolution
//	synloss/     — synapse-loss accounting when a projection can't be realized
//	pipeline/    — sequences the above into one mapping run
//
// Everything upstream (the network-description parser, bio→analog
// parameter transform) and downstream (the device-configuration writer,
// defect-data loading) is modeled as a narrow Go interface this module
// consumes or produces values for, never implemented here.
package neurocore
