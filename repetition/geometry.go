// SPDX-License-Identifier: MIT

package repetition

import (
	"fmt"

	"github.com/katalvlaran/qtlattice/circuit"
	"github.com/katalvlaran/qtlattice/lattice"
	"github.com/katalvlaran/qtlattice/logical"
)

// Family is the code family name reported by Geometry.Family.
const Family = "repetition"

// MinDistance is the smallest supported number of data qubits.
const MinDistance = 2

// Group and stabilizer names.
const (
	SyndromeZ    = "Z"
	GroupData    = "data"
	GroupMZ      = "mz"
	GroupAncilla = "ancilla"
)

// Params are the validated and derived parameters of a repetition code.
type Params struct {
	D           int
	NumData     int
	NumSyndrome int
}

func (p Params) validate() error {
	if p.D < MinDistance {
		return fmt.Errorf("%w: repetition: distance must be ≥ %d, got %d", lattice.ErrConfiguration, MinDistance, p.D)
	}
	if p.NumData != p.D || p.NumSyndrome != p.D-1 {
		return fmt.Errorf("%w: repetition: inconsistent params %+v", lattice.ErrConfiguration, p)
	}

	return nil
}

// Geometry is the repetition code layout. It is immutable.
type Geometry struct {
	p Params
}

var _ lattice.Geometry = (*Geometry)(nil)

// New builds a validated geometry over d data qubits.
func New(d int) (*Geometry, error) {
	p := Params{D: d, NumData: d, NumSyndrome: d - 1}
	if err := p.validate(); err != nil {
		return nil, err
	}

	return &Geometry{p: p}, nil
}

// NewQubit builds a repetition-code logical qubit on c (a fresh circuit when nil).
func NewQubit(d int, name string, c *circuit.Circuit, opts ...lattice.Option) (*logical.Qubit, error) {
	g, err := New(d)
	if err != nil {
		return nil, err
	}

	return logical.New(g, name, c, opts...)
}

// Params returns the derived parameters.
func (g *Geometry) Params() Params { return g.p }

// Family implements lattice.Geometry.
func (g *Geometry) Family() string { return Family }

// Validate implements lattice.Geometry.
func (g *Geometry) Validate() error { return g.p.validate() }

// Groups implements lattice.Geometry.
func (g *Geometry) Groups() []lattice.GroupSpec {
	return []lattice.GroupSpec{
		{Name: GroupData, Kind: lattice.KindData, Size: g.p.NumData},
		{Name: GroupMZ, Kind: lattice.KindSyndrome, Size: g.p.NumSyndrome, Syndrome: SyndromeZ, Basis: lattice.BasisZ},
		{Name: GroupAncilla, Kind: lattice.KindAncilla, Size: 1},
	}
}

// Blueprint implements lattice.Geometry.
func (g *Geometry) Blueprint(groups *lattice.Groups) (lattice.Blueprint, error) {
	mz := groups.Syndrome(SyndromeZ)
	if mz == nil {
		return nil, fmt.Errorf("%w: repetition: missing syndrome group", lattice.ErrConfiguration)
	}
	data := groups.Data().Quantum
	bp := make(lattice.Blueprint, g.p.NumSyndrome)
	for i := range bp {
		bp[i] = lattice.Plaquette{
			Qubits:     []circuit.Qubit{mz.Quantum.Qubit(i), data.Qubit(i), data.Qubit(i + 1)},
			Stabilizer: lattice.NewZCheck,
			Syndrome:   SyndromeZ,
			Index:      i,
			At:         lattice.Coordinate{Row: 0, Col: i},
		}
	}

	return bp, nil
}

// LogicalSupport implements lattice.Geometry.
func (g *Geometry) LogicalSupport(b lattice.Basis) []int {
	if b == lattice.BasisZ {
		return []int{0}
	}
	out := make([]int, g.p.NumData)
	for i := range out {
		out[i] = i
	}

	return out
}

// Reset implements lattice.Geometry.
func (g *Geometry) Reset(c *circuit.Circuit, groups *lattice.Groups, b lattice.Basis) error {
	data := groups.Data().Quantum.Qubits()
	if err := c.Reset(data...); err != nil {
		return err
	}
	if b == lattice.BasisZ {
		return nil
	}
	if err := c.H(data[0]); err != nil {
		return err
	}
	for _, q := range data[1:] {
		if err := c.CX(data[0], q); err != nil {
			return err
		}
	}

	return nil
}
