// Package metrics exposes Prometheus counters for circuit construction and
// readout decoding.
//
// A Recorder is optional everywhere it is accepted: a nil *Recorder is a
// valid no-op sink, so library code can call its methods unconditionally.
//
// Counters (namespace "qtlattice"):
//
//   - circuit_instructions_total{op}     instructions appended to a circuit.
//   - circuit_registers_total{kind}      quantum/classical registers allocated.
//   - readout_parses_total{result}       ParseReadout invocations (ok|error).
//   - readout_syndrome_hits_total{type}  syndrome events produced per type.
package metrics
