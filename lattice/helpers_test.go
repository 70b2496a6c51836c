package lattice_test

import (
	"errors"

	"github.com/katalvlaran/qtlattice/circuit"
	"github.com/katalvlaran/qtlattice/lattice"
)

// fakeGeometry is a configurable two-data-qubit code with one Z check.
type fakeGeometry struct {
	validateErr error
	groups      []lattice.GroupSpec
	blueprint   func(*lattice.Groups) (lattice.Blueprint, error)
	support     map[lattice.Basis][]int
}

func newFake() *fakeGeometry {
	return &fakeGeometry{
		groups: []lattice.GroupSpec{
			{Name: "data", Kind: lattice.KindData, Size: 2},
			{Name: "mz", Kind: lattice.KindSyndrome, Size: 1, Syndrome: "Z", Basis: lattice.BasisZ},
		},
		blueprint: func(g *lattice.Groups) (lattice.Blueprint, error) {
			d := g.Data().Quantum
			return lattice.Blueprint{{
				Qubits:     []circuit.Qubit{g.Syndrome("Z").Quantum.Qubit(0), d.Qubit(0), d.Qubit(1)},
				Stabilizer: lattice.NewZCheck,
				Syndrome:   "Z",
				At:         lattice.Coordinate{Row: 0, Col: 0},
			}}, nil
		},
	}
}

func (f *fakeGeometry) Family() string              { return "fake" }
func (f *fakeGeometry) Validate() error             { return f.validateErr }
func (f *fakeGeometry) Groups() []lattice.GroupSpec { return f.groups }

func (f *fakeGeometry) LogicalSupport(b lattice.Basis) []int {
	if idx, ok := f.support[b]; ok {
		return idx
	}

	return []int{0}
}

func (f *fakeGeometry) Blueprint(g *lattice.Groups) (lattice.Blueprint, error) {
	return f.blueprint(g)
}

func (f *fakeGeometry) Reset(c *circuit.Circuit, g *lattice.Groups, b lattice.Basis) error {
	return lattice.ResetProduct(c, g, b)
}

var errPlain = errors.New("plain failure")

// listing renders instructions as strings for order comparisons.
func listing(ins []circuit.Instruction) []string {
	out := make([]string, len(ins))
	for i, in := range ins {
		out[i] = in.String()
	}

	return out
}
