// SPDX-License-Identifier: MIT

package lattice

import (
	"github.com/katalvlaran/qtlattice/circuit"
)

// Geometry is implemented by a code family. A Lattice holds one and asks it
// for everything layout-specific; the Lattice itself never assumes a grid shape.
type Geometry interface {
	// Family names the code family, e.g. "xxzz" or "repetition".
	Family() string

	// Validate checks the geometry's parameters. Errors should wrap ErrConfiguration.
	Validate() error

	// Groups declares the qubit groups to allocate, in allocation order.
	// Exactly one must be KindData.
	Groups() []GroupSpec

	// Blueprint derives the plaquette list over the allocated groups. It must
	// be deterministic: the same groups yield the same plaquettes in the same order.
	Blueprint(g *Groups) (Blueprint, error)

	// LogicalSupport returns the data-group indices on which the logical
	// operator of the given basis acts.
	LogicalSupport(b Basis) []int

	// Reset emits the sequence that prepares the logical +1 eigenstate of
	// the given basis.
	Reset(c *circuit.Circuit, g *Groups, b Basis) error
}

// ResetProduct is the common Reset: every data qubit to |0>, followed by a
// Hadamard on each of them for the X basis.
func ResetProduct(c *circuit.Circuit, g *Groups, b Basis) error {
	data := g.Data().Quantum.Qubits()
	if err := c.Reset(data...); err != nil {
		return err
	}
	if b == BasisX {
		return c.H(data...)
	}

	return nil
}
