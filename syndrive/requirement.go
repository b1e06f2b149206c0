package syndrive

import "github.com/wafermap/neurocore/coord"

// STPMode is a short-term-plasticity program a synapse row is configured
// with; drivers are allocated separately per mode since rows of different
// modes cannot share a driver chain.
type STPMode int

const (
	STPNone STPMode = iota
	STPFacilitating
	STPDepressing
)

// TriParity is a half-row's column-parity requirement: Even/Odd pin it to
// one column parity, Any means either parity serves equally well.
type TriParity int

const (
	ParityEven TriParity = iota
	ParityOdd
	ParityAny
)

// NeuronRequirement is one bio-property's resolved half-row need on one
// side of one neuron: the per-neuron side/TriParity optimisation (stages
// 2-3 of the driver-count algorithm) is the caller's responsibility;
// syndrive aggregates from here (stages 4-7).
type NeuronRequirement struct {
	Side      coord.Side
	TriParity TriParity
	Decoder   uint8 // 2-bit L1Address driver-decoder field
	STP       STPMode
}

// bucket groups half-row counts by (Side, TriParity, STP) after decoders
// have been collapsed out.
type bucket struct {
	side      coord.Side
	triParity TriParity
	stp       STPMode
}

type decoderKey struct {
	bucket
	decoder uint8
}

// collapseDecoders implements stages 4 and 5: take, per (TriParity, Side,
// Decoder, STP), the maximum half-row count demanded by any neuron sharing
// that tuple, then sum across Decoder to get half-rows per (TriParity,
// Side, STP).
func collapseDecoders(reqs []NeuronRequirement, halfRows func(NeuronRequirement) int) map[bucket]int {
	maxByTuple := make(map[decoderKey]int)
	for _, r := range reqs {
		k := decoderKey{bucket{r.Side, r.TriParity, r.STP}, r.Decoder}
		if hr := halfRows(r); hr > maxByTuple[k] {
			maxByTuple[k] = hr
		}
	}

	sums := make(map[bucket]int)
	for k, v := range maxByTuple {
		sums[k.bucket] += v
	}
	return sums
}

// sideSTP groups the three TriParity buckets that share a (Side, STP)
// pair, for parity balancing.
type sideSTP struct {
	side coord.Side
	stp  STPMode
}

// balanceParity implements stage 6: turns each (Side, STP)'s TriParity::Any
// half-row count into even/odd, keeping the two as balanced as possible
// (abs(#even-#odd) <= 1), and returns rows = max(#even, #odd) per (Side,
// STP).
func balanceParity(sums map[bucket]int) map[sideSTP]int {
	groups := make(map[sideSTP]struct{ even, odd, any int })
	for k, v := range sums {
		g := groups[sideSTP{k.side, k.stp}]
		switch k.triParity {
		case ParityEven:
			g.even = v
		case ParityOdd:
			g.odd = v
		case ParityAny:
			g.any = v
		}
		groups[sideSTP{k.side, k.stp}] = g
	}

	out := make(map[sideSTP]int, len(groups))
	for key, g := range groups {
		even, odd := g.even, g.odd
		remaining := g.any
		for remaining > 0 {
			if even <= odd {
				even++
			} else {
				odd++
			}
			remaining--
		}
		rows := even
		if odd > rows {
			rows = odd
		}
		out[key] = rows
	}
	return out
}

// rowsToDrivers implements stage 7: drivers_per_stp = ceil(rows/2),
// summed across STP modes for a given side.
func rowsToDrivers(rowsBySideSTP map[sideSTP]int) map[coord.Side]int {
	out := make(map[coord.Side]int)
	for key, rows := range rowsBySideSTP {
		drivers := (rows + 1) / 2
		out[key.side] += drivers
	}
	return out
}

// DriversRequired runs the full stage 4-7 aggregation and returns the
// number of drivers needed on each side.
func DriversRequired(reqs []NeuronRequirement, halfRows func(NeuronRequirement) int) map[coord.Side]int {
	sums := collapseDecoders(reqs, halfRows)
	rows := balanceParity(sums)
	return rowsToDrivers(rows)
}
