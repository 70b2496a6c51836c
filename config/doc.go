// Package config loads experiment descriptions for logical qubits.
//
// An Experiment names a code family and its size, then the program emitted
// on the circuit: a reset, a number of stabilizer rounds and a final
// readout. Files are TOML (.toml) or YAML (.yaml, .yml); keys absent from a
// file keep the values of Default.
//
//	name     = "q"
//	family   = "xxzz"      # or "repetition"
//	distance = 3           # or rows/cols for a rectangular xxzz patch
//	rounds   = 2
//	reset    = "z"         # "x" or "z"
//	readout  = "logical_z" # logical_x, logical_z, lattice_x, lattice_z
package config
