package repetition_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qtlattice/circuit"
	"github.com/katalvlaran/qtlattice/lattice"
	"github.com/katalvlaran/qtlattice/repetition"
)

func lines(c *circuit.Circuit) []string {
	ins := c.Instructions()
	out := make([]string, len(ins))
	for i, in := range ins {
		out[i] = in.String()
	}

	return out
}

func TestNew_Errors(t *testing.T) {
	for _, d := range []int{-1, 0, 1} {
		_, err := repetition.New(d)
		require.ErrorIs(t, err, lattice.ErrConfiguration, "d=%d", d)
	}
	_, err := repetition.NewQubit(1, "r", nil)
	require.ErrorIs(t, err, lattice.ErrConfiguration)
}

func TestParams(t *testing.T) {
	g, err := repetition.New(5)
	require.NoError(t, err)
	require.Equal(t, repetition.Params{D: 5, NumData: 5, NumSyndrome: 4}, g.Params())
	require.Equal(t, repetition.Family, g.Family())
	require.NoError(t, g.Validate())
	require.Equal(t, []int{0}, g.LogicalSupport(lattice.BasisZ))
	require.Equal(t, []int{0, 1, 2, 3, 4}, g.LogicalSupport(lattice.BasisX))
}

func TestBlueprint(t *testing.T) {
	q, err := repetition.NewQubit(3, "r", nil)
	require.NoError(t, err)
	bp := q.Lattice().Blueprint()
	require.Len(t, bp, 2)
	for i, p := range bp {
		require.Equal(t, repetition.SyndromeZ, p.Syndrome)
		require.Equal(t, i, p.Index)
		require.Equal(t, lattice.Coordinate{Row: 0, Col: i}, p.At)
		require.Equal(t, "r_mz", p.Qubits[0].Register.Name())
		require.Equal(t, []int{i, i + 1}, []int{p.Qubits[1].Index, p.Qubits[2].Index})
	}
}

func TestReset(t *testing.T) {
	q, err := repetition.NewQubit(3, "r", nil)
	require.NoError(t, err)

	require.NoError(t, q.ResetZ())
	require.Equal(t, []string{"reset r_data[0]", "reset r_data[1]", "reset r_data[2]"}, lines(q.Circuit()))

	require.NoError(t, q.ResetX())
	require.Equal(t, []string{
		"reset r_data[0]",
		"reset r_data[1]",
		"reset r_data[2]",
		"h r_data[0]",
		"cx r_data[0], r_data[1]",
		"cx r_data[0], r_data[2]",
	}, lines(q.Circuit())[3:])
}

func TestStabilizeAndParse(t *testing.T) {
	q, err := repetition.NewQubit(3, "r", nil)
	require.NoError(t, err)
	require.NoError(t, q.ResetZ())
	require.NoError(t, q.Stabilize())
	require.NoError(t, q.Stabilize())
	require.NoError(t, q.ReadoutZ(nil))
	require.Equal(t, []string{"r_data", "r_mz", "r_ancilla", "r_c0_mz", "r_c1_mz", "r_readout_0"},
		q.Lattice().Registered())

	r, err := q.ParseReadout("0 10 00", lattice.ReadoutLogical)
	require.NoError(t, err)
	require.Equal(t, 0, r.Logical)
	require.Equal(t, []lattice.Event{{Time: 0, Row: 0, Col: 1}}, r.Syndromes[repetition.SyndromeZ])
}

func TestLogicalX(t *testing.T) {
	q, err := repetition.NewQubit(3, "r", nil)
	require.NoError(t, err)
	require.NoError(t, q.X())
	require.NoError(t, q.Z())
	require.Equal(t, []string{"x r_data[0]", "x r_data[1]", "x r_data[2]", "z r_data[0]"}, lines(q.Circuit()))
}
