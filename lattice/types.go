// SPDX-License-Identifier: MIT

package lattice

import (
	"github.com/katalvlaran/qtlattice/circuit"
)

// Basis selects the logical X or Z frame.
type Basis int

const (
	// BasisZ is the computational basis.
	BasisZ Basis = iota
	// BasisX is the Hadamard-rotated basis.
	BasisX
)

// String returns "Z" or "X".
func (b Basis) String() string {
	if b == BasisX {
		return "X"
	}

	return "Z"
}

// GroupKind classifies a qubit group.
type GroupKind int

const (
	// KindData holds the encoded logical state. Exactly one per lattice.
	KindData GroupKind = iota
	// KindSyndrome holds the ancillas of one stabilizer type.
	KindSyndrome
	// KindAncilla holds helper qubits, e.g. for logical readout.
	KindAncilla
)

// GroupSpec is what a geometry declares about one qubit group.
type GroupSpec struct {
	// Name is the group suffix; registers are named "<prefix>_<Name>".
	Name string
	Kind GroupKind
	Size int
	// Syndrome is the stabilizer type measured by a syndrome group ("X", "Z").
	Syndrome string
	// Basis is the data readout basis from which this syndrome type can be
	// recomputed (Z-type checks from a Z-basis readout, and so on).
	Basis Basis
}

// Group is an allocated qubit group.
type Group struct {
	GroupSpec
	Quantum *circuit.QuantumRegister
}

// Groups indexes the allocated groups of one lattice. Order is the
// geometry's declaration order.
type Groups struct {
	list []*Group
	data *Group
	anc  *Group
}

// All returns the groups in declaration order.
func (g *Groups) All() []*Group { return append([]*Group(nil), g.list...) }

// Data returns the data group.
func (g *Groups) Data() *Group { return g.data }

// Ancilla returns the first ancilla group, or nil.
func (g *Groups) Ancilla() *Group { return g.anc }

// Syndromes returns the syndrome groups in declaration order.
func (g *Groups) Syndromes() []*Group {
	var out []*Group
	for _, grp := range g.list {
		if grp.Kind == KindSyndrome {
			out = append(out, grp)
		}
	}

	return out
}

// Syndrome returns the syndrome group measuring the given stabilizer type, or nil.
func (g *Groups) Syndrome(name string) *Group {
	for _, grp := range g.list {
		if grp.Kind == KindSyndrome && grp.Syndrome == name {
			return grp
		}
	}

	return nil
}

// Coordinate is a planar lattice position.
type Coordinate struct {
	Row, Col int
}

// Event is one syndrome hit: the syndrome at (Row, Col) changed value
// between two consecutive rounds. Time 0 is the most recent comparison.
//
// Time indexes the comparisons of one syndrome type and is not aligned
// across types. A full data readout adds a synthetic newest round only to
// the types its basis can recompute, so after a Z-basis readout Z time 1
// and X time 0 compare the same pair of measured rounds.
type Event struct {
	Time int `json:"time"`
	Row  int `json:"row"`
	Col  int `json:"col"`
}

// Readout is a decoded result string.
type Readout struct {
	Logical   int                `json:"logical"`
	Syndromes map[string][]Event `json:"syndromes"`
}

// ReadoutType hints how the first token of a readout string is to be read.
type ReadoutType string

const (
	// ReadoutAuto classifies by token length; full readouts default to the Z basis.
	ReadoutAuto ReadoutType = ""
	// ReadoutLogical expects a single logical bit.
	ReadoutLogical ReadoutType = "logical"
	// ReadoutLatticeX expects a full data readout taken in the X basis.
	ReadoutLatticeX ReadoutType = "lattice_x"
	// ReadoutLatticeZ expects a full data readout taken in the Z basis.
	ReadoutLatticeZ ReadoutType = "lattice_z"
)

// Plaquette is one blueprint entry. Qubits[0] is the syndrome qubit; the
// rest are data qubits in gate order, with the zero circuit.Qubit marking
// an absent (boundary) position.
type Plaquette struct {
	Qubits     []circuit.Qubit
	Stabilizer StabilizerFactory
	// Syndrome is the stabilizer type, matching a syndrome group's Syndrome.
	Syndrome string
	// Index is the syndrome qubit's index within its group.
	Index int
	// At is the reported coordinate of this plaquette's syndrome events.
	At Coordinate
}

// Blueprint is the ordered plaquette list of a lattice.
type Blueprint []Plaquette

// Clone deep-copies the blueprint.
func (b Blueprint) Clone() Blueprint {
	out := make(Blueprint, len(b))
	for i, p := range b {
		out[i] = p
		out[i].Qubits = append([]circuit.Qubit(nil), p.Qubits...)
	}

	return out
}
