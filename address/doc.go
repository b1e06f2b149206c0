// Package address manages the per-DNC-merger pool of legal L1 addresses and
// each merger's input/output mode.
//
// Every DNC merger starts with the same 59-entry pool (the 64 six-bit values
// minus the reserved phase-locking address 0 and the four reserved
// "weight-0" 0bXX0001 values) and a Mode of unused. Addresses are popped one
// at a time under a selectable strategy, chosen with the WithStrategy
// option in the teacher's functional-options construction style (see
// dijkstra.Option).
package address
