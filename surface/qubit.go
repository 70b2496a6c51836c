// SPDX-License-Identifier: MIT

package surface

import (
	"github.com/katalvlaran/qtlattice/circuit"
	"github.com/katalvlaran/qtlattice/lattice"
	"github.com/katalvlaran/qtlattice/logical"
)

// NewQubit builds a d × d XXZZ logical qubit on c (a fresh circuit when nil).
func NewQubit(d int, name string, c *circuit.Circuit, opts ...lattice.Option) (*logical.Qubit, error) {
	g, err := New(WithDistance(d))
	if err != nil {
		return nil, err
	}

	return logical.New(g, name, c, opts...)
}
