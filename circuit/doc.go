// SPDX-License-Identifier: MIT

// Package circuit is an in-memory, append-only quantum circuit builder.
//
// What:
//
//   - Named quantum and classical registers, allocated once and never resized.
//   - Gate emission: H, X, Z, ID, Reset, CX, Barrier, Measure and
//     classically conditioned X/Z via If(register, value).
//   - Export as OpenQASM 2.0 (QASM) or a plain instruction listing (String).
//
// Why:
//
//   - Several logical qubits share one Circuit; their registers are kept
//     apart by name prefix and the registry rejects duplicate names.
//   - Nothing is executed or simulated here. The instruction list is the
//     whole observable effect of building a circuit.
//
// Concurrency:
//
//   - All methods are safe for concurrent use. Registration and emission
//     take a write lock, so interleaved callers never corrupt the registry;
//     ordering between them is whatever order they call in.
//
// Errors:
//
//   - ErrDuplicateRegister: a register with the same name already exists.
//   - ErrBadRegisterSize:   register size < 1 or empty name.
//   - ErrUnknownQubit:      operand is absent or belongs to another circuit.
//   - ErrUnknownClbit:      classical operand does not belong to this circuit.
//   - ErrSizeMismatch:      MeasureRegister with registers of different sizes.
package circuit
