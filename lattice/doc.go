// SPDX-License-Identifier: MIT

// Package lattice implements the code-family independent core of a
// topological logical qubit: register allocation, the plaquette blueprint,
// stabilizer entanglement, logical operators and readout decoding.
//
// What:
//
//   - Geometry is the capability interface a code family implements
//     (validated parameters, qubit groups, blueprint, logical supports, resets).
//   - Lattice owns the registers of one logical qubit on a shared
//     *circuit.Circuit and drives the geometry's stabilizers in blueprint order.
//   - ParseReadout turns a result string into the logical value plus
//     (time, row, col) syndrome events.
//
// Readout string:
//
// A result string lists classical registers newest first, bits little-endian
// (bit i of a register is character len-1-i of its token). Because every
// Stabilize round allocates one register per syndrome group in Groups()
// order, a string reads
//
//	<readout> <round k-1: groups reversed> ... <round 0: groups reversed>
//
// e.g. for a geometry with groups [X, Z] and two rounds:
//
//	"1 <Z1> <X1> <Z0> <X0>"
//
// The first token is either the one-bit logical readout or the full data
// readout produced by LatticeReadoutX/Z.
//
// Events:
//
//   - Time 0 is the most recent comparison. When a full data readout is
//     supplied, the synthetic round derived from it is compared against the
//     newest measured round at time 0.
//   - Row/Col come from the Plaquette.At coordinate of the syndrome qubit.
//
// Errors:
//
//   - ErrConfiguration:    invalid parameters or inconsistent blueprint.
//   - ErrMissingDataGroup: the geometry declares no (or several) data groups.
//   - ErrReadoutParse:     malformed readout string or readout type mismatch.
//   - ErrInvalidArgument:  caller contract violation (e.g. CX operands).
//   - ErrNoAncilla:        logical readout on a geometry without an ancilla group.
package lattice
