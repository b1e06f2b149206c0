// Package waferconfig collects the user-facing configuration surface for
// one pipeline.Run: neuron/population pins, the merger and L1 strategies
// and their seeds, the L1 routing algorithm choice, and per-projection
// priorities. It holds no behaviour of its own — every field is read by
// pipeline and handed to the component it configures.
package waferconfig
