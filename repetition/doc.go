// SPDX-License-Identifier: MIT

// Package repetition implements the bit-flip repetition code as a
// lattice.Geometry: D data qubits on a line with a Z-type parity check
// between each neighboring pair.
//
//	D0 -(Z0)- D1 -(Z1)- D2 - ... - D(D-1)
//
// Syndrome Zi checks data i and i+1 and reports events at (0, i).
// Logical X is X on every data qubit; logical Z is Z on data qubit 0.
// ResetX prepares (|0…0> + |1…1>)/√2 with a Hadamard and a CX fan-out.
package repetition
