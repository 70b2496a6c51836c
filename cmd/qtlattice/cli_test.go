package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qtlattice/lattice"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestBuild_QASM(t *testing.T) {
	out, err := run(t, "", "build", "--family", "repetition", "-d", "3", "--rounds", "1")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "OPENQASM 2.0;"))
	require.Contains(t, out, "qreg q_data[3];")
	require.Contains(t, out, "creg q_c0_mz[2];")
	require.Contains(t, out, "creg q_readout_0[1];")
}

func TestBuild_TextFromConfigWithOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exp.toml")
	require.NoError(t, os.WriteFile(path, []byte("name = \"lq\"\nrounds = 2\n"), 0o600))

	out, err := run(t, "", "build", "-c", path, "--rounds", "0", "--readout", "lattice_z", "-f", "text")
	require.NoError(t, err)
	require.Contains(t, out, "qreg lq_data[9]")
	require.Contains(t, out, "measure lq_data[8] -> lq_lattice_readout_0[8]")
	require.NotContains(t, out, "lq_c0_mx")
}

func TestBuild_MetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gates.prom")
	_, err := run(t, "", "build", "--metrics-file", path)
	require.NoError(t, err)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(b), `qtlattice_circuit_instructions_total{op="cx"}`)
}

func TestBuild_Errors(t *testing.T) {
	_, err := run(t, "", "build", "--family", "color")
	require.Error(t, err)
	_, err = run(t, "", "build", "-f", "svg")
	require.Error(t, err)
	_, err = run(t, "", "build", "--log-level", "loud")
	require.Error(t, err)
	_, err = run(t, "", "build", "extra")
	require.Error(t, err)
}

func TestDecode_Args(t *testing.T) {
	out, err := run(t, "", "decode", "1 0100 0000 0000 0100")
	require.NoError(t, err)

	var got decoded
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, 1, got.Logical)
	require.Equal(t, []lattice.Event{{Time: 0, Row: 2, Col: 1}}, got.Syndromes["Z"])
	require.Equal(t, []lattice.Event{{Time: 0, Row: 2, Col: 2}}, got.Syndromes["X"])
}

func TestDecode_StdinAndStore(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "r.db")
	out, err := run(t, "1 01 00\n\n0 00 00\n", "decode", "--family", "repetition", "--db", dsn, "-t", "logical")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	var first, second decoded
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	require.Equal(t, int64(1), first.ID)
	require.Equal(t, int64(2), second.ID)
	require.Equal(t, []lattice.Event{{Time: 0, Row: 0, Col: 0}}, first.Syndromes["Z"])
	require.Empty(t, second.Syndromes["Z"])
}

func TestDecode_Errors(t *testing.T) {
	_, err := run(t, "", "decode", "1 0100")
	require.ErrorIs(t, err, lattice.ErrReadoutParse)
	_, err = run(t, "", "decode", "-t", "sideways", "1 0000 0000")
	require.Error(t, err)
}

func TestParseType(t *testing.T) {
	for in, want := range map[string]lattice.ReadoutType{
		"":          lattice.ReadoutAuto,
		"AUTO":      lattice.ReadoutAuto,
		"logical":   lattice.ReadoutLogical,
		"lattice_x": lattice.ReadoutLatticeX,
		"lattice_z": lattice.ReadoutLatticeZ,
	} {
		got, err := parseType(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}
