// SPDX-License-Identifier: MIT

package circuit

import "fmt"

// append validates every operand and appends in as one instruction.
// Returns ErrUnknownQubit or ErrUnknownClbit for an operand, or a condition
// register, that is not owned by c; nothing is appended then.
//
// Complexity: O(k) for k operands.
func (c *Circuit) append(in Instruction) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, q := range in.Qubits {
		if !c.ownsQubit(q) {
			return fmt.Errorf("%w: %s operand %s", ErrUnknownQubit, in.Op, q)
		}
	}
	for _, b := range in.Clbits {
		if !c.ownsClbit(b) {
			return fmt.Errorf("%w: %s operand %s", ErrUnknownClbit, in.Op, b)
		}
	}
	if in.Condition != nil {
		if _, ok := c.cowned[in.Condition.Register]; !ok {
			return fmt.Errorf("%w: condition on foreign register", ErrUnknownClbit)
		}
	}
	c.instrs = append(c.instrs, in)
	c.rec.Instruction(string(in.Op))

	return nil
}

// single appends one single-qubit instruction per operand. Operands are all
// validated before anything is appended.
func (c *Circuit) single(op Op, cond *Condition, qs []Qubit) error {
	c.mu.Lock()
	for _, q := range qs {
		if !c.ownsQubit(q) {
			c.mu.Unlock()
			return fmt.Errorf("%w: %s operand %s", ErrUnknownQubit, op, q)
		}
	}
	c.mu.Unlock()
	for _, q := range qs {
		if err := c.append(Instruction{Op: op, Qubits: []Qubit{q}, Condition: cond}); err != nil {
			return err
		}
	}

	return nil
}

// H applies a Hadamard to each qubit.
func (c *Circuit) H(qs ...Qubit) error { return c.single(OpH, nil, qs) }

// X applies a Pauli X to each qubit.
func (c *Circuit) X(qs ...Qubit) error { return c.single(OpX, nil, qs) }

// Z applies a Pauli Z to each qubit.
func (c *Circuit) Z(qs ...Qubit) error { return c.single(OpZ, nil, qs) }

// ID inserts an identity on each qubit. Identities are the hook for
// position-controlled error insertion in noise models.
func (c *Circuit) ID(qs ...Qubit) error { return c.single(OpID, nil, qs) }

// Reset resets each qubit to |0>.
func (c *Circuit) Reset(qs ...Qubit) error { return c.single(OpReset, nil, qs) }

// CX applies a controlled-X.
func (c *Circuit) CX(control, target Qubit) error {
	if control == target {
		return fmt.Errorf("%w: cx control and target are both %s", ErrUnknownQubit, control)
	}

	return c.append(Instruction{Op: OpCX, Qubits: []Qubit{control, target}})
}

// Barrier inserts a synchronization barrier over qs, or over the whole
// circuit when qs is empty.
func (c *Circuit) Barrier(qs ...Qubit) error {
	return c.append(Instruction{Op: OpBarrier, Qubits: append([]Qubit(nil), qs...)})
}

// Measure measures q into b.
func (c *Circuit) Measure(q Qubit, b Clbit) error {
	return c.append(Instruction{Op: OpMeasure, Qubits: []Qubit{q}, Clbits: []Clbit{b}})
}

// MeasureRegister measures qr[i] into cr[i] for every i.
func (c *Circuit) MeasureRegister(qr *QuantumRegister, cr *ClassicalRegister) error {
	if qr == nil || cr == nil {
		return fmt.Errorf("%w: nil register", ErrUnknownQubit)
	}
	if qr.size != cr.size {
		return fmt.Errorf("%w: %s[%d] into %s[%d]", ErrSizeMismatch, qr.name, qr.size, cr.name, cr.size)
	}
	for i := 0; i < qr.size; i++ {
		if err := c.Measure(qr.Qubit(i), cr.Bit(i)); err != nil {
			return err
		}
	}

	return nil
}

// Conditional emits gates that execute only when a classical register holds
// a given value. The condition is evaluated by whatever runs the circuit.
type Conditional struct {
	c    *Circuit
	cond Condition
}

// If returns an emitter for gates conditioned on register == value.
func (c *Circuit) If(register *ClassicalRegister, value int) *Conditional {
	return &Conditional{c: c, cond: Condition{Register: register, Value: value}}
}

// X applies a conditioned Pauli X to each qubit.
func (k *Conditional) X(qs ...Qubit) error {
	if err := k.check(); err != nil {
		return err
	}
	cond := k.cond

	return k.c.single(OpX, &cond, qs)
}

// Z applies a conditioned Pauli Z to each qubit.
func (k *Conditional) Z(qs ...Qubit) error {
	if err := k.check(); err != nil {
		return err
	}
	cond := k.cond

	return k.c.single(OpZ, &cond, qs)
}

func (k *Conditional) check() error {
	if k.cond.Register == nil {
		return fmt.Errorf("%w: condition register is nil", ErrUnknownClbit)
	}
	if k.cond.Value < 0 || (k.cond.Register.size < 63 && k.cond.Value >= 1<<k.cond.Register.size) {
		return fmt.Errorf("%w: value %d does not fit %s[%d]", ErrSizeMismatch, k.cond.Value, k.cond.Register.name, k.cond.Register.size)
	}

	return nil
}
