// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"

	"github.com/katalvlaran/qtlattice/circuit"
	"github.com/katalvlaran/qtlattice/lattice"
)

// Family is the code family name reported by Geometry.Family.
const Family = "xxzz"

// Stabilizer types and group names.
const (
	SyndromeX = "X"
	SyndromeZ = "Z"

	GroupData    = "data"
	GroupMX      = "mx"
	GroupMZ      = "mz"
	GroupAncilla = "ancilla"
)

// Geometry is the rotated surface code layout. It is immutable.
type Geometry struct {
	p Params
}

var _ lattice.Geometry = (*Geometry)(nil)

// New builds a validated geometry. WithDistance or WithDimensions is required.
func New(opts ...Option) (*Geometry, error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	p, err := newParams(s)
	if err != nil {
		return nil, err
	}

	return &Geometry{p: p}, nil
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
		{Name: GroupMX, Kind: lattice.KindSyndrome, Size: g.p.NumX, Syndrome: SyndromeX, Basis: lattice.BasisX},
		{Name: GroupMZ, Kind: lattice.KindSyndrome, Size: g.p.NumZ, Syndrome: SyndromeZ, Basis: lattice.BasisZ},
		{Name: GroupAncilla, Kind: lattice.KindAncilla, Size: 1},
	}
}

// Blueprint implements lattice.Geometry. Plaquettes are emitted in row-major
// order of their (i, j) position.
//
// Returns lattice.ErrConfiguration if groups lacks the X or Z syndrome group
// or if the plaquette counts disagree with Params.
//
// Complexity: O(Rows·Cols).
func (g *Geometry) Blueprint(groups *lattice.Groups) (lattice.Blueprint, error) {
	data := groups.Data().Quantum
	mx, mz := groups.Syndrome(SyndromeX), groups.Syndrome(SyndromeZ)
	if mx == nil || mz == nil {
		return nil, fmt.Errorf("%w: xxzz: missing syndrome groups", lattice.ErrConfiguration)
	}

	bp := make(lattice.Blueprint, 0, g.p.NumData-1)
	nx, nz := 0, 0
	for i := 0; i <= g.p.Rows; i++ {
		for j := 0; j <= g.p.Cols; j++ {
			typ, ok := g.plaquetteType(i, j)
			if !ok {
				continue
			}
			c := g.corners(i, j)
			p := lattice.Plaquette{Syndrome: typ, At: lattice.Coordinate{Row: i, Col: j}}
			var order [4]int
			if typ == SyndromeX {
				if nx >= mx.Size {
					return nil, fmt.Errorf("%w: xxzz: more X plaquettes than %d", lattice.ErrConfiguration, mx.Size)
				}
				order = [4]int{c[0], c[1], c[2], c[3]}
				p.Index, p.Stabilizer = nx, lattice.NewXCheck
				p.Qubits = []circuit.Qubit{mx.Quantum.Qubit(nx)}
				nx++
			} else {
				if nz >= mz.Size {
					return nil, fmt.Errorf("%w: xxzz: more Z plaquettes than %d", lattice.ErrConfiguration, mz.Size)
				}
				order = [4]int{c[0], c[2], c[1], c[3]}
				p.Index, p.Stabilizer = nz, lattice.NewZCheck
				p.Qubits = []circuit.Qubit{mz.Quantum.Qubit(nz)}
				nz++
			}
			for _, idx := range order {
				if idx < 0 {
					p.Qubits = append(p.Qubits, circuit.Qubit{})
					continue
				}
				p.Qubits = append(p.Qubits, data.Qubit(idx))
			}
			bp = append(bp, p)
		}
	}
	if nx != g.p.NumX || nz != g.p.NumZ {
		return nil, fmt.Errorf("%w: xxzz: blueprint has %d X / %d Z plaquettes, want %d / %d",
			lattice.ErrConfiguration, nx, nz, g.p.NumX, g.p.NumZ)
	}

	return bp, nil
}

// LogicalSupport implements lattice.Geometry: Z on row 0, X on column 0.
func (g *Geometry) LogicalSupport(b lattice.Basis) []int {
	if b == lattice.BasisX {
		out := make([]int, g.p.Rows)
		for r := range out {
			out[r] = g.index(r, 0)
		}
		return out
	}
	out := make([]int, g.p.Cols)
	for c := range out {
		out[c] = g.index(0, c)
	}

	return out
}

// Reset implements lattice.Geometry with a product-state preparation.
func (g *Geometry) Reset(c *circuit.Circuit, groups *lattice.Groups, b lattice.Basis) error {
	return lattice.ResetProduct(c, groups, b)
}
