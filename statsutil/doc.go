// Package statsutil records per-stage wall-clock durations for a pipeline
// run. It is a plain value, not a global singleton: pipeline.Run constructs
// a fresh Stats for each run and returns it; Run does not take one from the
// caller. Recording never affects pipeline correctness or control flow.
package statsutil
