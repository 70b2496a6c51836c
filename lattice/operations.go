// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"

	"github.com/katalvlaran/qtlattice/circuit"
)

// Entangle drives every plaquette's stabilizer in blueprint order with a
// barrier after each plaquette. A non-empty override replaces the stored
// blueprint for this call only; it must reference this lattice's qubits.
func (l *Lattice) Entangle(override ...Plaquette) error {
	bp := l.blueprint
	if len(override) > 0 {
		if err := l.checkPlaquettes(override); err != nil {
			return err
		}
		bp = override
	}
	for _, p := range bp {
		s := p.Stabilizer(l.circ, append([]circuit.Qubit(nil), p.Qubits...))
		if err := s.Entangle(); err != nil {
			return fmt.Errorf("entangle %s[%d]: %w", p.Syndrome, p.Index, err)
		}
		if err := l.circ.Barrier(); err != nil {
			return err
		}
	}
	l.log.Debug().Int("plaquettes", len(bp)).Bool("override", len(override) > 0).Msg("entangled")

	return nil
}

// Stabilize emits one measurement round: reset the syndrome groups,
// entangle, then measure each syndrome group into a fresh classical
// register "<prefix>_c<round>_<group>" in group declaration order.
func (l *Lattice) Stabilize() error {
	syndromes := l.groups.Syndromes()
	for _, g := range syndromes {
		if err := l.circ.Reset(g.Quantum.Qubits()...); err != nil {
			return err
		}
	}
	if err := l.Entangle(); err != nil {
		return err
	}
	for _, g := range syndromes {
		cr, err := l.classical(fmt.Sprintf("%s_c%d_%s", l.name, l.rounds, g.Name), g.Size)
		if err != nil {
			return err
		}
		if err := l.circ.MeasureRegister(g.Quantum, cr); err != nil {
			return err
		}
	}
	if err := l.circ.Barrier(); err != nil {
		return err
	}
	l.rounds++

	return nil
}

func (l *Lattice) classical(name string, size int) (*circuit.ClassicalRegister, error) {
	cr, err := l.circ.AddClassicalRegister(name, size)
	if err != nil {
		return nil, err
	}
	l.registered = append(l.registered, cr.Name())

	return cr, nil
}

// ResetX prepares the logical |+> state.
func (l *Lattice) ResetX() error { return l.geom.Reset(l.circ, l.groups, BasisX) }

// ResetZ prepares the logical |0> state.
func (l *Lattice) ResetZ() error { return l.geom.Reset(l.circ, l.groups, BasisZ) }

// support maps the logical support of b onto data qubits.
func (l *Lattice) support(b Basis) []circuit.Qubit {
	idx := l.geom.LogicalSupport(b)
	qs := make([]circuit.Qubit, len(idx))
	for i, j := range idx {
		qs[i] = l.groups.data.Quantum.Qubit(j)
	}

	return qs
}

// X applies the logical X operator.
func (l *Lattice) X() error { return l.circ.X(l.support(BasisX)...) }

// Z applies the logical Z operator.
func (l *Lattice) Z() error { return l.circ.Z(l.support(BasisZ)...) }

// XIf applies the logical X operator when cr holds value at execution time.
func (l *Lattice) XIf(cr *circuit.ClassicalRegister, value int) error {
	return l.circ.If(cr, value).X(l.support(BasisX)...)
}

// ZIf applies the logical Z operator when cr holds value at execution time.
func (l *Lattice) ZIf(cr *circuit.ClassicalRegister, value int) error {
	return l.circ.If(cr, value).Z(l.support(BasisZ)...)
}

// CX is a logical controlled-X with an external qubit. With control set,
// the external qubit controls a logical X on this lattice. With target set,
// this lattice's logical Z parity controls an X on the target. Nil operands
// are skipped; enforcing exactly one is the caller's job.
//
// Returns ErrInvalidArgument, with nothing emitted, if an operand belongs to
// this lattice or is not a qubit of the circuit.
func (l *Lattice) CX(control, target *circuit.Qubit) error {
	for _, q := range []*circuit.Qubit{control, target} {
		if err := l.checkExternal(q); err != nil {
			return err
		}
	}
	if control != nil {
		for _, q := range l.support(BasisX) {
			if err := l.circ.CX(*control, q); err != nil {
				return err
			}
		}
	}
	if target != nil {
		for _, q := range l.support(BasisZ) {
			if err := l.circ.CX(q, *target); err != nil {
				return err
			}
		}
	}

	return nil
}

func (l *Lattice) checkExternal(q *circuit.Qubit) error {
	switch {
	case q == nil:
		return nil
	case l.owns(*q):
		return fmt.Errorf("%w: cx operand %s belongs to lattice %q", ErrInvalidArgument, *q, l.name)
	case !l.circ.Owns(*q):
		return fmt.Errorf("%w: cx operand %s: %w", ErrInvalidArgument, *q, circuit.ErrUnknownQubit)
	}

	return nil
}

// ReadoutX measures the logical X value onto the ancilla and into cr, or
// into a fresh "<prefix>_readout_<n>" register when cr is nil.
func (l *Lattice) ReadoutX(cr *circuit.ClassicalRegister) error { return l.readout(BasisX, cr) }

// ReadoutZ measures the logical Z value; see ReadoutX.
func (l *Lattice) ReadoutZ(cr *circuit.ClassicalRegister) error { return l.readout(BasisZ, cr) }

func (l *Lattice) readout(b Basis, cr *circuit.ClassicalRegister) error {
	anc := l.groups.Ancilla()
	if anc == nil {
		return fmt.Errorf("%w: %s readout on %q", ErrNoAncilla, b, l.name)
	}
	if cr == nil {
		var err error
		cr, err = l.classical(fmt.Sprintf("%s_readout_%d", l.name, l.readouts), 1)
		if err != nil {
			return err
		}
		l.readouts++
	}
	data := l.groups.data.Quantum.Qubits()
	target := anc.Quantum.Qubit(0)

	if err := l.circ.Reset(target); err != nil {
		return err
	}
	if b == BasisX {
		if err := l.circ.H(data...); err != nil {
			return err
		}
	}
	for _, q := range l.support(b) {
		if err := l.circ.CX(q, target); err != nil {
			return err
		}
	}
	if b == BasisX {
		if err := l.circ.H(data...); err != nil {
			return err
		}
	}
	if err := l.circ.Measure(target, cr.Bit(0)); err != nil {
		return err
	}
	l.lastRead = cr

	return l.circ.Barrier()
}

// LatticeReadoutX measures every data qubit in the X basis into a fresh
// "<prefix>_lattice_readout_<n>" register. The result carries the logical X
// value and one extra round of X-type checks.
func (l *Lattice) LatticeReadoutX() error { return l.latticeReadout(BasisX) }

// LatticeReadoutZ measures every data qubit in the Z basis; see LatticeReadoutX.
func (l *Lattice) LatticeReadoutZ() error { return l.latticeReadout(BasisZ) }

func (l *Lattice) latticeReadout(b Basis) error {
	data := l.groups.data
	cr, err := l.classical(fmt.Sprintf("%s_lattice_readout_%d", l.name, l.lreadouts), data.Size)
	if err != nil {
		return err
	}
	l.lreadouts++
	if b == BasisX {
		if err := l.circ.H(data.Quantum.Qubits()...); err != nil {
			return err
		}
	}
	if err := l.circ.MeasureRegister(data.Quantum, cr); err != nil {
		return err
	}
	l.lastRead = cr

	return l.circ.Barrier()
}
