// SPDX-License-Identifier: MIT

package lattice

import (
	"github.com/katalvlaran/qtlattice/circuit"
)

// Stabilizer emits the parity-check circuit of one plaquette.
type Stabilizer interface {
	Entangle() error
}

// StabilizerFactory builds the Stabilizer for one plaquette's qubits.
// Stabilizers are created per Entangle pass and then discarded.
type StabilizerFactory func(c *circuit.Circuit, qubits []circuit.Qubit) Stabilizer

// ZCheck measures the Z parity of its data qubits onto the syndrome qubit.
type ZCheck struct {
	c      *circuit.Circuit
	qubits []circuit.Qubit
}

// NewZCheck is the StabilizerFactory for ZCheck.
func NewZCheck(c *circuit.Circuit, qubits []circuit.Qubit) Stabilizer {
	return &ZCheck{c: c, qubits: qubits}
}

// Entangle emits CX(data -> syndrome) for every present data qubit.
func (s *ZCheck) Entangle() error {
	if len(s.qubits) == 0 {
		return nil
	}
	syn := s.qubits[0]
	for _, q := range s.qubits[1:] {
		if q.Register == nil {
			continue
		}
		if err := s.c.CX(q, syn); err != nil {
			return err
		}
	}

	return nil
}

// XCheck measures the X parity of its data qubits onto the syndrome qubit.
type XCheck struct {
	c      *circuit.Circuit
	qubits []circuit.Qubit
}

// NewXCheck is the StabilizerFactory for XCheck.
func NewXCheck(c *circuit.Circuit, qubits []circuit.Qubit) Stabilizer {
	return &XCheck{c: c, qubits: qubits}
}

// Entangle emits H(syndrome), CX(syndrome -> data) for every present data
// qubit, H(syndrome).
func (s *XCheck) Entangle() error {
	if len(s.qubits) == 0 {
		return nil
	}
	syn := s.qubits[0]
	if err := s.c.H(syn); err != nil {
		return err
	}
	for _, q := range s.qubits[1:] {
		if q.Register == nil {
			continue
		}
		if err := s.c.CX(syn, q); err != nil {
			return err
		}
	}

	return s.c.H(syn)
}
