package lattice_test

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/qtlattice/circuit"
	"github.com/katalvlaran/qtlattice/lattice"
	"github.com/katalvlaran/qtlattice/metrics"
	"github.com/katalvlaran/qtlattice/repetition"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

func TestNew_ConfigurationErrors(t *testing.T) {
	foreign := circuit.New()
	fq, err := foreign.AddQuantumRegister("x", 1)
	require.NoError(t, err)

	cases := []struct {
		name  string
		build func() (*lattice.Lattice, error)
		err   error
	}{
		{"NilGeometry", func() (*lattice.Lattice, error) {
			return lattice.New(nil, "q", circuit.New())
		}, lattice.ErrConfiguration},
		{"NilCircuit", func() (*lattice.Lattice, error) {
			return lattice.New(newFake(), "q", nil)
		}, lattice.ErrConfiguration},
		{"EmptyName", func() (*lattice.Lattice, error) {
			return lattice.New(newFake(), "  ", circuit.New())
		}, lattice.ErrConfiguration},
		{"ValidateFails", func() (*lattice.Lattice, error) {
			g := newFake()
			g.validateErr = errPlain
			return lattice.New(g, "q", circuit.New())
		}, lattice.ErrConfiguration},
		{"NoDataGroup", func() (*lattice.Lattice, error) {
			g := newFake()
			g.groups = g.groups[1:]
			return lattice.New(g, "q", circuit.New())
		}, lattice.ErrMissingDataGroup},
		{"TwoDataGroups", func() (*lattice.Lattice, error) {
			g := newFake()
			g.groups = append(g.groups, lattice.GroupSpec{Name: "data2", Kind: lattice.KindData, Size: 1})
			return lattice.New(g, "q", circuit.New())
		}, lattice.ErrMissingDataGroup},
		{"ZeroSizeGroup", func() (*lattice.Lattice, error) {
			g := newFake()
			g.groups[0].Size = 0
			return lattice.New(g, "q", circuit.New())
		}, lattice.ErrConfiguration},
		{"ForeignQubitInBlueprint", func() (*lattice.Lattice, error) {
			g := newFake()
			g.blueprint = func(gr *lattice.Groups) (lattice.Blueprint, error) {
				return lattice.Blueprint{{
					Qubits:     []circuit.Qubit{gr.Syndrome("Z").Quantum.Qubit(0), fq.Qubit(0)},
					Stabilizer: lattice.NewZCheck,
					Syndrome:   "Z",
				}}, nil
			}
			return lattice.New(g, "q", circuit.New())
		}, lattice.ErrConfiguration},
		{"UncoveredSyndrome", func() (*lattice.Lattice, error) {
			g := newFake()
			g.blueprint = func(*lattice.Groups) (lattice.Blueprint, error) { return nil, nil }
			return lattice.New(g, "q", circuit.New())
		}, lattice.ErrConfiguration},
		{"SupportOutOfRange", func() (*lattice.Lattice, error) {
			g := newFake()
			g.support = map[lattice.Basis][]int{lattice.BasisX: {0, 2}}
			return lattice.New(g, "q", circuit.New())
		}, lattice.ErrConfiguration},
		{"NegativeSupport", func() (*lattice.Lattice, error) {
			g := newFake()
			g.support = map[lattice.Basis][]int{lattice.BasisZ: {-1}}
			return lattice.New(g, "q", circuit.New())
		}, lattice.ErrConfiguration},
		{"EmptySupport", func() (*lattice.Lattice, error) {
			g := newFake()
			g.support = map[lattice.Basis][]int{lattice.BasisZ: {}}
			return lattice.New(g, "q", circuit.New())
		}, lattice.ErrConfiguration},
		{"BlueprintFails", func() (*lattice.Lattice, error) {
			g := newFake()
			g.blueprint = func(*lattice.Groups) (lattice.Blueprint, error) { return nil, errPlain }
			return lattice.New(g, "q", circuit.New())
		}, lattice.ErrConfiguration},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := tc.build()
			require.ErrorIs(t, err, tc.err)
			require.Nil(t, l)
		})
	}
}

func TestNew_DuplicatePrefixOnSharedCircuit(t *testing.T) {
	c := circuit.New()
	_, err := lattice.New(newFake(), "q", c)
	require.NoError(t, err)

	_, err = lattice.New(newFake(), "q", c)
	require.ErrorIs(t, err, lattice.ErrConfiguration)
	require.ErrorIs(t, err, circuit.ErrDuplicateRegister)
}

func TestNew_RegistersGroups(t *testing.T) {
	c := circuit.New()
	l, err := lattice.New(newFake(), "q", c)
	require.NoError(t, err)

	require.Equal(t, []string{"q_data", "q_mz"}, l.Registered())
	require.Equal(t, 3, c.NumQubits())
	require.Nil(t, l.Groups().Ancilla())
	require.Equal(t, "Z", l.Groups().Syndromes()[0].Syndrome)
}

//----------------------------------------------------------------------------//
// Entangle / Stabilize
//----------------------------------------------------------------------------//

type EntangleSuite struct {
	suite.Suite
	c *circuit.Circuit
	l *lattice.Lattice
}

func (s *EntangleSuite) SetupTest() {
	g, err := repetition.New(3)
	s.Require().NoError(err)
	s.c = circuit.New()
	s.l, err = lattice.New(g, "r", s.c)
	s.Require().NoError(err)
}

func (s *EntangleSuite) TestDeterministic() {
	s.Require().NoError(s.l.Entangle())
	first := listing(s.c.Instructions())
	s.Require().NoError(s.l.Entangle())
	all := listing(s.c.Instructions())

	s.Require().Len(all, 2*len(first))
	s.Require().Equal(first, all[len(first):])
	s.Require().Equal([]string{
		"cx r_data[0], r_mz[0]",
		"cx r_data[1], r_mz[0]",
		"barrier",
		"cx r_data[1], r_mz[1]",
		"cx r_data[2], r_mz[1]",
		"barrier",
	}, first)
}

func (s *EntangleSuite) TestOverrideIsPerCall() {
	bp := s.l.Blueprint()
	reversed := lattice.Blueprint{bp[1], bp[0]}
	s.Require().NoError(s.l.Entangle(reversed...))
	s.Require().Equal("cx r_data[1], r_mz[1]", s.c.Instructions()[0].String())

	s.Require().NoError(s.l.Entangle())
	s.Require().Equal("cx r_data[0], r_mz[0]", s.c.Instructions()[6].String())
}

func (s *EntangleSuite) TestOverrideRejectsForeignQubits() {
	other := circuit.New()
	fq, _ := other.AddQuantumRegister("f", 2)
	bad := lattice.Plaquette{
		Qubits:     []circuit.Qubit{fq.Qubit(0), fq.Qubit(1)},
		Stabilizer: lattice.NewZCheck,
	}
	s.Require().ErrorIs(s.l.Entangle(bad), lattice.ErrConfiguration)
	s.Require().Zero(s.c.Len())
}

func (s *EntangleSuite) TestBlueprintIsACopy() {
	bp := s.l.Blueprint()
	bp[0].Qubits[1] = circuit.Qubit{}
	bp[0].Index = 7
	again := s.l.Blueprint()
	s.Require().True(again[0].Qubits[1].Valid())
	s.Require().Zero(again[0].Index)
}

func (s *EntangleSuite) TestStabilizeAllocatesRoundRegisters() {
	s.Require().NoError(s.l.Stabilize())
	s.Require().NoError(s.l.Stabilize())
	s.Require().Equal(2, s.l.Rounds())

	var names []string
	for _, cr := range s.c.ClassicalRegisters() {
		names = append(names, cr.Name())
	}
	s.Require().Equal([]string{"r_c0_mz", "r_c1_mz"}, names)

	// reset(2) + entangle(6) + measure(2) + barrier(1) per round
	s.Require().Equal(22, s.c.Len())
}

func TestEntangleSuite(t *testing.T) {
	suite.Run(t, new(EntangleSuite))
}

//----------------------------------------------------------------------------//
// Readout emission
//----------------------------------------------------------------------------//

func TestReadout_NoAncilla(t *testing.T) {
	l, err := lattice.New(newFake(), "q", circuit.New())
	require.NoError(t, err)
	require.ErrorIs(t, l.ReadoutZ(nil), lattice.ErrNoAncilla)
	require.ErrorIs(t, l.ReadoutX(nil), lattice.ErrNoAncilla)
}

func TestReadout_CallerRegister(t *testing.T) {
	g, _ := repetition.New(3)
	c := circuit.New()
	l, err := lattice.New(g, "r", c)
	require.NoError(t, err)
	cr, err := c.AddClassicalRegister("mine", 1)
	require.NoError(t, err)

	require.NoError(t, l.ReadoutZ(cr))
	require.Same(t, cr, l.ReadoutRegister())
	require.Equal(t, []string{
		"reset r_ancilla[0]",
		"cx r_data[0], r_ancilla[0]",
		"measure r_ancilla[0] -> mine[0]",
		"barrier",
	}, listing(c.Instructions()))
}

//----------------------------------------------------------------------------//
// Concurrency and metrics
//----------------------------------------------------------------------------//

func TestParseReadout_Concurrent(t *testing.T) {
	g, _ := repetition.New(5)
	l, err := lattice.New(g, "r", circuit.New())
	require.NoError(t, err)
	before := l.Blueprint()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := l.ParseReadout("0 0001 0000", lattice.ReadoutAuto)
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, []lattice.Event{{Time: 0, Row: 0, Col: 0}}, r.Syndromes["Z"])
		}()
	}
	wg.Wait()
	require.Equal(t, len(before), len(l.Blueprint()))
}

func TestParseReadout_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	require.NoError(t, err)
	g, _ := repetition.New(3)
	l, err := lattice.New(g, "r", circuit.New(), lattice.WithRecorder(rec))
	require.NoError(t, err)

	_, err = l.ParseReadout("0 11 00", lattice.ReadoutAuto)
	require.NoError(t, err)
	_, err = l.ParseReadout("0 111 00", lattice.ReadoutAuto)
	require.ErrorIs(t, err, lattice.ErrReadoutParse)

	require.Equal(t, 2, testutil.CollectAndCount(reg, "qtlattice_readout_parses_total"))
	require.Equal(t, 1, testutil.CollectAndCount(reg, "qtlattice_readout_syndrome_hits_total"))
}
