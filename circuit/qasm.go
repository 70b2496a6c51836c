// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"
	"strings"
)

// QASM renders the circuit as OpenQASM 2.0. A whole-circuit barrier is
// written over every quantum register.
func (c *Circuit) QASM() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	for _, r := range c.qregs {
		fmt.Fprintf(&sb, "qreg %s[%d];\n", r.name, r.size)
	}
	for _, r := range c.cregs {
		fmt.Fprintf(&sb, "creg %s[%d];\n", r.name, r.size)
	}
	if len(c.qregs)+len(c.cregs) > 0 {
		sb.WriteByte('\n')
	}

	for _, in := range c.instrs {
		if in.Condition != nil {
			fmt.Fprintf(&sb, "if(%s==%d) ", in.Condition.Register.name, in.Condition.Value)
		}
		switch in.Op {
		case OpMeasure:
			fmt.Fprintf(&sb, "measure %s -> %s;\n", in.Qubits[0], in.Clbits[0])
		case OpBarrier:
			operands := make([]string, 0, len(in.Qubits))
			if len(in.Qubits) == 0 {
				for _, r := range c.qregs {
					operands = append(operands, r.name)
				}
			} else {
				for _, q := range in.Qubits {
					operands = append(operands, q.String())
				}
			}
			fmt.Fprintf(&sb, "barrier %s;\n", strings.Join(operands, ","))
		default:
			operands := make([]string, len(in.Qubits))
			for i, q := range in.Qubits {
				operands[i] = q.String()
			}
			fmt.Fprintf(&sb, "%s %s;\n", in.Op, strings.Join(operands, ","))
		}
	}

	return sb.String()
}
