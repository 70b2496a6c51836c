package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qtlattice/circuit"
	"github.com/katalvlaran/qtlattice/lattice"
	"github.com/katalvlaran/qtlattice/repetition"
)

func newRepetition(t *testing.T, d int) *lattice.Lattice {
	t.Helper()
	g, err := repetition.New(d)
	require.NoError(t, err)
	l, err := lattice.New(g, "r", circuit.New())
	require.NoError(t, err)

	return l
}

func TestParseReadout_Errors(t *testing.T) {
	l := newRepetition(t, 3)
	cases := []struct {
		name string
		in   string
		typ  lattice.ReadoutType
	}{
		{"Empty", "   ", lattice.ReadoutAuto},
		{"NonBinary", "1 0x 00", lattice.ReadoutAuto},
		{"FirstTokenLength", "01 00 00", lattice.ReadoutAuto},
		{"LogicalHintOnLattice", "011 00", lattice.ReadoutLogical},
		{"LatticeHintOnLogical", "1 00", lattice.ReadoutLatticeZ},
		{"LatticeXHintWrongLength", "0110 00", lattice.ReadoutLatticeX},
		{"UnknownHint", "1 00", lattice.ReadoutType("diagonal")},
		{"SyndromeLength", "1 000 00", lattice.ReadoutAuto},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := l.ParseReadout(tc.in, tc.typ)
			require.ErrorIs(t, err, lattice.ErrReadoutParse)
		})
	}
}

func TestParseReadout_MismatchMessageNamesLength(t *testing.T) {
	l := newRepetition(t, 3)
	_, err := l.ParseReadout("011 00", lattice.ReadoutLogical)
	require.ErrorContains(t, err, "mismatch with token length 3")
}

func TestParseReadout_NoRoundsIsEmptyNotError(t *testing.T) {
	l := newRepetition(t, 3)
	r, err := l.ParseReadout("1", lattice.ReadoutAuto)
	require.NoError(t, err)
	require.Equal(t, 1, r.Logical)
	require.NotNil(t, r.Syndromes["Z"])
	require.Empty(t, r.Syndromes["Z"])
}

func TestParseReadout_Repetition(t *testing.T) {
	l := newRepetition(t, 3)
	cases := []struct {
		name    string
		in      string
		logical int
		events  []lattice.Event
	}{
		{"SingleRound", "1 01", 1, []lattice.Event{}},
		{"Hit", "0 01 00", 0, []lattice.Event{{Time: 0, Row: 0, Col: 0}}},
		{"HitInOlderRound", "0 11 11 10", 0, []lattice.Event{{Time: 1, Row: 0, Col: 0}}},
		// data "011": d0=1, d1=1, d2=0 -> logical Z = d0 = 1, synthetic Z = "10"
		{"LatticeReadout", "011 00", 1, []lattice.Event{{Time: 0, Row: 0, Col: 1}}},
		{"LatticeReadoutMatchesLastRound", "011 10 10", 1, []lattice.Event{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := l.ParseReadout(tc.in, lattice.ReadoutAuto)
			require.NoError(t, err)
			require.Equal(t, tc.logical, r.Logical)
			require.Equal(t, tc.events, r.Syndromes["Z"])
		})
	}
}

func TestParseReadout_LatticeXSkipsZChecks(t *testing.T) {
	l := newRepetition(t, 3)
	// X-basis data readout: logical X = parity of all data = 0, and Z checks
	// cannot be recomputed from it.
	r, err := l.ParseReadout("011 00", lattice.ReadoutLatticeX)
	require.NoError(t, err)
	require.Equal(t, 0, r.Logical)
	require.Empty(t, r.Syndromes["Z"])
}
