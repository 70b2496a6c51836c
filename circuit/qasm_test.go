package circuit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qtlattice/circuit"
)

func TestQASM(t *testing.T) {
	c := circuit.New()
	q, _ := c.AddQuantumRegister("q", 2)
	a, _ := c.AddQuantumRegister("a", 1)
	m, _ := c.AddClassicalRegister("m", 1)

	require.NoError(t, c.Reset(a.Qubit(0)))
	require.NoError(t, c.H(q.Qubit(0)))
	require.NoError(t, c.CX(q.Qubit(0), a.Qubit(0)))
	require.NoError(t, c.Barrier())
	require.NoError(t, c.Barrier(q.Qubit(1)))
	require.NoError(t, c.Measure(a.Qubit(0), m.Bit(0)))
	require.NoError(t, c.If(m, 1).Z(q.Qubit(1)))

	want := `OPENQASM 2.0;
include "qelib1.inc";

qreg q[2];
qreg a[1];
creg m[1];

reset a[0];
h q[0];
cx q[0],a[0];
barrier q,a;
barrier q[1];
measure a[0] -> m[0];
if(m==1) z q[1];
`
	require.Equal(t, want, c.QASM())
}
