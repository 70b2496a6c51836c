// SPDX-License-Identifier: MIT

package lattice

import "errors"

// Sentinel errors. Callers branch with errors.Is; messages carry context via %w.
var (
	// ErrConfiguration indicates missing, invalid or inconsistent lattice parameters.
	ErrConfiguration = errors.New("lattice: invalid lattice configuration")

	// ErrMissingDataGroup indicates a geometry that does not declare exactly one data group.
	ErrMissingDataGroup = errors.New("lattice: missing data qubit group")

	// ErrReadoutParse indicates a readout string that cannot be decoded.
	ErrReadoutParse = errors.New("lattice: cannot parse readout")

	// ErrInvalidArgument indicates a violated call contract.
	ErrInvalidArgument = errors.New("lattice: invalid argument")

	// ErrNoAncilla indicates a logical readout on a lattice without an ancilla group.
	ErrNoAncilla = errors.New("lattice: no ancilla qubit group")
)
