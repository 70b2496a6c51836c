// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"
	"strings"
)

// Op names an instruction kind. Values are the OpenQASM 2.0 mnemonics.
type Op string

const (
	OpH       Op = "h"
	OpX       Op = "x"
	OpZ       Op = "z"
	OpID      Op = "id"
	OpCX      Op = "cx"
	OpReset   Op = "reset"
	OpBarrier Op = "barrier"
	OpMeasure Op = "measure"
)

// QuantumRegister is a named, fixed-size group of qubits.
type QuantumRegister struct {
	name string
	size int
}

// Name returns the register name as registered on the circuit.
func (r *QuantumRegister) Name() string { return r.name }

// Size returns the number of qubits in the register.
func (r *QuantumRegister) Size() int { return r.size }

// Qubit returns the handle for qubit i. Out-of-range indices yield a handle
// that every gate rejects with ErrUnknownQubit.
func (r *QuantumRegister) Qubit(i int) Qubit {
	return Qubit{Register: r, Index: i}
}

// Qubits returns all handles in index order.
func (r *QuantumRegister) Qubits() []Qubit {
	qs := make([]Qubit, r.size)
	for i := range qs {
		qs[i] = Qubit{Register: r, Index: i}
	}

	return qs
}

// ClassicalRegister is a named, fixed-size group of classical bits.
type ClassicalRegister struct {
	name string
	size int
}

// Name returns the register name as registered on the circuit.
func (r *ClassicalRegister) Name() string { return r.name }

// Size returns the number of bits in the register.
func (r *ClassicalRegister) Size() int { return r.size }

// Bit returns the handle for bit i.
func (r *ClassicalRegister) Bit(i int) Clbit {
	return Clbit{Register: r, Index: i}
}

// Qubit addresses one qubit of a QuantumRegister.
// The zero value is the "absent" qubit used for missing boundary positions.
type Qubit struct {
	Register *QuantumRegister
	Index    int
}

// Valid reports whether q addresses an in-range qubit of some register.
func (q Qubit) Valid() bool {
	return q.Register != nil && q.Index >= 0 && q.Index < q.Register.size
}

// String renders q as "name[i]", or "-" when absent.
func (q Qubit) String() string {
	if q.Register == nil {
		return "-"
	}

	return fmt.Sprintf("%s[%d]", q.Register.name, q.Index)
}

// Clbit addresses one bit of a ClassicalRegister.
type Clbit struct {
	Register *ClassicalRegister
	Index    int
}

// Valid reports whether b addresses an in-range bit of some register.
func (b Clbit) Valid() bool {
	return b.Register != nil && b.Index >= 0 && b.Index < b.Register.size
}

// String renders b as "name[i]".
func (b Clbit) String() string {
	if b.Register == nil {
		return "-"
	}

	return fmt.Sprintf("%s[%d]", b.Register.name, b.Index)
}

// Condition gates an instruction on the integer value of a classical register.
type Condition struct {
	Register *ClassicalRegister
	Value    int
}

// Instruction is one appended circuit element.
// For OpCX, Qubits is {control, target}. For OpMeasure, Qubits[0] is
// measured into Clbits[0]. A barrier with no qubits spans the whole circuit.
type Instruction struct {
	Op        Op
	Qubits    []Qubit
	Clbits    []Clbit
	Condition *Condition
}

// String renders the instruction as one listing line, e.g. "cx q[0], q[1]".
func (in Instruction) String() string {
	var sb strings.Builder
	if in.Condition != nil {
		fmt.Fprintf(&sb, "if(%s==%d) ", in.Condition.Register.name, in.Condition.Value)
	}
	sb.WriteString(string(in.Op))
	operands := make([]string, 0, len(in.Qubits)+len(in.Clbits))
	for _, q := range in.Qubits {
		operands = append(operands, q.String())
	}
	if in.Op == OpMeasure && len(in.Clbits) > 0 {
		sb.WriteString(" ")
		sb.WriteString(strings.Join(operands, ", "))
		sb.WriteString(" -> ")
		sb.WriteString(in.Clbits[0].String())
		return sb.String()
	}
	if len(operands) > 0 {
		sb.WriteString(" ")
		sb.WriteString(strings.Join(operands, ", "))
	}

	return sb.String()
}

// clone deep-copies the operand slices so callers cannot mutate history.
func (in Instruction) clone() Instruction {
	out := in
	out.Qubits = append([]Qubit(nil), in.Qubits...)
	out.Clbits = append([]Clbit(nil), in.Clbits...)
	if in.Condition != nil {
		c := *in.Condition
		out.Condition = &c
	}

	return out
}
