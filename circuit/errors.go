// SPDX-License-Identifier: MIT

package circuit

import "errors"

var (
	// ErrDuplicateRegister indicates a register name is already taken on the circuit.
	ErrDuplicateRegister = errors.New("circuit: duplicate register name")
	// ErrBadRegisterSize indicates a register with size < 1 or an empty name.
	ErrBadRegisterSize = errors.New("circuit: invalid register")
	// ErrUnknownQubit indicates a qubit operand that is absent or foreign to the circuit.
	ErrUnknownQubit = errors.New("circuit: unknown qubit")
	// ErrUnknownClbit indicates a classical operand that is foreign to the circuit.
	ErrUnknownClbit = errors.New("circuit: unknown classical bit")
	// ErrSizeMismatch indicates a register-wide measurement over registers of different sizes.
	ErrSizeMismatch = errors.New("circuit: register size mismatch")
)
