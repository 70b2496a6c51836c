package logical

import (
	"fmt"

	"github.com/katalvlaran/qtlattice/circuit"
	"github.com/katalvlaran/qtlattice/lattice"
)

// Qubit is one logical qubit built on a shared circuit.
type Qubit struct {
	name    string
	circ    *circuit.Circuit
	lattice *lattice.Lattice
}

// New constructs the lattice for geom under the given name. A nil circuit
// gets a fresh one.
func New(geom lattice.Geometry, name string, c *circuit.Circuit, opts ...lattice.Option) (*Qubit, error) {
	if c == nil {
		c = circuit.New()
	}
	l, err := lattice.New(geom, name, c, opts...)
	if err != nil {
		return nil, err
	}

	return &Qubit{name: l.Name(), circ: c, lattice: l}, nil
}

// Name returns the register name prefix.
func (q *Qubit) Name() string { return q.name }

// Circuit returns the circuit the qubit is built on.
func (q *Qubit) Circuit() *circuit.Circuit { return q.circ }

// Lattice returns the underlying lattice.
func (q *Qubit) Lattice() *lattice.Lattice { return q.lattice }

// String renders the whole circuit listing.
func (q *Qubit) String() string { return q.circ.String() }

// Draw renders the circuit as OpenQASM 2.0.
func (q *Qubit) Draw() string { return q.circ.QASM() }

// Stabilize runs one round of stabilizer measurements.
func (q *Qubit) Stabilize() error { return q.lattice.Stabilize() }

// ID inserts an identity on every qubit of the lattice, then a barrier.
func (q *Qubit) ID() error {
	for _, g := range q.lattice.Groups().All() {
		if err := q.circ.ID(g.Quantum.Qubits()...); err != nil {
			return err
		}
	}

	return q.circ.Barrier()
}

// IDData inserts an identity on the data qubits only, then a barrier.
func (q *Qubit) IDData() error {
	if err := q.circ.ID(q.lattice.Groups().Data().Quantum.Qubits()...); err != nil {
		return err
	}

	return q.circ.Barrier()
}

// ResetX prepares logical |+>.
func (q *Qubit) ResetX() error { return q.lattice.ResetX() }

// ResetZ prepares logical |0>.
func (q *Qubit) ResetZ() error { return q.lattice.ResetZ() }

// X applies the logical X operator.
func (q *Qubit) X() error { return q.lattice.X() }

// Z applies the logical Z operator.
func (q *Qubit) Z() error { return q.lattice.Z() }

// XIf applies logical X when cr equals value at execution time.
func (q *Qubit) XIf(cr *circuit.ClassicalRegister, value int) error { return q.lattice.XIf(cr, value) }

// ZIf applies logical Z when cr equals value at execution time.
func (q *Qubit) ZIf(cr *circuit.ClassicalRegister, value int) error { return q.lattice.ZIf(cr, value) }

// CX is a logical controlled-X with an external qubit. Exactly one of
// control and target must be given: with control, the external qubit
// controls this logical qubit; with target, this logical qubit controls it.
func (q *Qubit) CX(control, target *circuit.Qubit) error {
	if (control == nil) == (target == nil) {
		return fmt.Errorf("%w: cx needs exactly one of control or target", lattice.ErrInvalidArgument)
	}

	return q.lattice.CX(control, target)
}

// ReadoutX measures the logical X value into cr, or a fresh register when nil.
func (q *Qubit) ReadoutX(cr *circuit.ClassicalRegister) error { return q.lattice.ReadoutX(cr) }

// ReadoutZ measures the logical Z value into cr, or a fresh register when nil.
func (q *Qubit) ReadoutZ(cr *circuit.ClassicalRegister) error { return q.lattice.ReadoutZ(cr) }

// ReadoutRegister returns the register written by the latest readout, or nil.
func (q *Qubit) ReadoutRegister() *circuit.ClassicalRegister { return q.lattice.ReadoutRegister() }

// LatticeReadoutX measures every data qubit in the X basis.
func (q *Qubit) LatticeReadoutX() error { return q.lattice.LatticeReadoutX() }

// LatticeReadoutZ measures every data qubit in the Z basis.
func (q *Qubit) LatticeReadoutZ() error { return q.lattice.LatticeReadoutZ() }

// ParseReadout decodes a result string; see lattice.Lattice.ParseReadout.
func (q *Qubit) ParseReadout(s string, t lattice.ReadoutType) (lattice.Readout, error) {
	return q.lattice.ParseReadout(s, t)
}
