// SPDX-License-Identifier: MIT

package lattice

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/qtlattice/circuit"
	"github.com/katalvlaran/qtlattice/metrics"
)

// Lattice is the set of registers and the plaquette blueprint of one logical
// qubit on a shared circuit. It holds a non-owning reference to the circuit
// plus the names of the registers it allocated there.
//
// Emission methods are meant for a single goroutine. ParseReadout only reads
// state fixed at construction and may be called concurrently.
type Lattice struct {
	geom      Geometry
	name      string
	circ      *circuit.Circuit
	groups    *Groups
	blueprint Blueprint
	dec       *decoder

	registered []string
	rounds     int
	readouts   int
	lreadouts  int
	lastRead   *circuit.ClassicalRegister

	log zerolog.Logger
	rec *metrics.Recorder
}

// New validates geom, allocates its groups on c under the name prefix and
// derives the blueprint.
//
// Returns ErrConfiguration if geom, c or name is missing, if geom fails
// Validate, if a register name is already taken on c (also wrapping
// circuit.ErrDuplicateRegister), if the blueprint references foreign qubits
// or leaves a syndrome qubit uncovered, or if a logical support is empty or
// out of range. Returns ErrMissingDataGroup unless exactly one group is
// KindData.
//
// Complexity: O(Q + P·w) for Q allocated qubits and P plaquettes of weight w.
func New(geom Geometry, name string, c *circuit.Circuit, opts ...Option) (*Lattice, error) {
	if geom == nil {
		return nil, fmt.Errorf("%w: nil geometry", ErrConfiguration)
	}
	if c == nil {
		return nil, fmt.Errorf("%w: nil circuit", ErrConfiguration)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: empty name prefix", ErrConfiguration)
	}
	if err := geom.Validate(); err != nil {
		if errors.Is(err, ErrConfiguration) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrConfiguration, geom.Family(), err)
	}

	cfg := newConfig(opts...)
	l := &Lattice{
		geom: geom,
		name: name,
		circ: c,
		log:  cfg.log.With().Str("lattice", name).Str("family", geom.Family()).Logger(),
		rec:  cfg.rec,
	}

	specs := geom.Groups()
	if err := checkGroupSpecs(specs); err != nil {
		return nil, err
	}
	groups, err := l.allocate(specs)
	if err != nil {
		return nil, err
	}
	l.groups = groups

	bp, err := geom.Blueprint(groups)
	if err != nil {
		if errors.Is(err, ErrConfiguration) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: blueprint: %v", ErrConfiguration, err)
	}
	if err := l.checkBlueprint(bp); err != nil {
		return nil, err
	}
	if err := l.checkSupport(); err != nil {
		return nil, err
	}
	l.blueprint = bp.Clone()
	l.dec = newDecoder(geom, groups, l.blueprint)

	l.log.Debug().
		Int("groups", len(specs)).
		Int("plaquettes", len(bp)).
		Msg("lattice constructed")

	return l, nil
}

func checkGroupSpecs(specs []GroupSpec) error {
	data := 0
	seen := make(map[string]struct{}, len(specs))
	syndromes := make(map[string]struct{})
	for _, s := range specs {
		if s.Kind == KindData {
			data++
		}
		if s.Name == "" || s.Size < 1 {
			return fmt.Errorf("%w: group %q size %d", ErrConfiguration, s.Name, s.Size)
		}
		if _, dup := seen[s.Name]; dup {
			return fmt.Errorf("%w: duplicate group %q", ErrConfiguration, s.Name)
		}
		seen[s.Name] = struct{}{}
		if s.Kind == KindSyndrome {
			if s.Syndrome == "" {
				return fmt.Errorf("%w: syndrome group %q has no stabilizer type", ErrConfiguration, s.Name)
			}
			if _, dup := syndromes[s.Syndrome]; dup {
				return fmt.Errorf("%w: two syndrome groups measure %q", ErrConfiguration, s.Syndrome)
			}
			syndromes[s.Syndrome] = struct{}{}
		}
	}
	if data != 1 {
		return fmt.Errorf("%w: want exactly one data group, got %d", ErrMissingDataGroup, data)
	}

	return nil
}

func (l *Lattice) allocate(specs []GroupSpec) (*Groups, error) {
	g := &Groups{}
	for _, s := range specs {
		qr, err := l.circ.AddQuantumRegister(l.name+"_"+s.Name, s.Size)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
		l.registered = append(l.registered, qr.Name())
		grp := &Group{GroupSpec: s, Quantum: qr}
		g.list = append(g.list, grp)
		switch {
		case s.Kind == KindData:
			g.data = grp
		case s.Kind == KindAncilla && g.anc == nil:
			g.anc = grp
		}
	}

	return g, nil
}

// checkBlueprint enforces that every plaquette references only this
// lattice's qubits and that each syndrome qubit is driven exactly once.
func (l *Lattice) checkBlueprint(bp Blueprint) error {
	if err := l.checkPlaquettes(bp); err != nil {
		return err
	}
	covered := make(map[circuit.Qubit]struct{})
	for i, p := range bp {
		grp := l.groups.Syndrome(p.Syndrome)
		if grp == nil {
			return fmt.Errorf("%w: plaquette %d has unknown syndrome type %q", ErrConfiguration, i, p.Syndrome)
		}
		if p.Qubits[0] != grp.Quantum.Qubit(p.Index) {
			return fmt.Errorf("%w: plaquette %d syndrome qubit %s is not %s index %d",
				ErrConfiguration, i, p.Qubits[0], p.Syndrome, p.Index)
		}
		if _, dup := covered[p.Qubits[0]]; dup {
			return fmt.Errorf("%w: syndrome qubit %s used by two plaquettes", ErrConfiguration, p.Qubits[0])
		}
		covered[p.Qubits[0]] = struct{}{}
	}
	for _, grp := range l.groups.Syndromes() {
		for i := 0; i < grp.Size; i++ {
			if _, ok := covered[grp.Quantum.Qubit(i)]; !ok {
				return fmt.Errorf("%w: syndrome qubit %s has no plaquette", ErrConfiguration, grp.Quantum.Qubit(i))
			}
		}
	}

	return nil
}

// checkSupport requires both logical supports to be non-empty sets of data
// indices in range.
func (l *Lattice) checkSupport() error {
	n := l.groups.data.Size
	for _, b := range []Basis{BasisZ, BasisX} {
		idx := l.geom.LogicalSupport(b)
		if len(idx) == 0 {
			return fmt.Errorf("%w: empty logical %s support", ErrConfiguration, b)
		}
		for _, i := range idx {
			if i < 0 || i >= n {
				return fmt.Errorf("%w: logical %s support index %d outside data[%d]", ErrConfiguration, b, i, n)
			}
		}
	}

	return nil
}

// checkPlaquettes verifies shape and ownership; used for stored and override blueprints.
func (l *Lattice) checkPlaquettes(bp Blueprint) error {
	for i, p := range bp {
		if p.Stabilizer == nil {
			return fmt.Errorf("%w: plaquette %d has no stabilizer", ErrConfiguration, i)
		}
		if len(p.Qubits) == 0 || !p.Qubits[0].Valid() {
			return fmt.Errorf("%w: plaquette %d has no syndrome qubit", ErrConfiguration, i)
		}
		for _, q := range p.Qubits {
			if q.Register == nil {
				continue
			}
			if !l.owns(q) {
				return fmt.Errorf("%w: plaquette %d qubit %s is not owned by lattice %q", ErrConfiguration, i, q, l.name)
			}
		}
	}

	return nil
}

func (l *Lattice) owns(q circuit.Qubit) bool {
	if !q.Valid() {
		return false
	}
	for _, g := range l.groups.list {
		if g.Quantum == q.Register {
			return true
		}
	}

	return false
}

// Name returns the register name prefix.
func (l *Lattice) Name() string { return l.name }

// Geometry returns the code family definition.
func (l *Lattice) Geometry() Geometry { return l.geom }

// Circuit returns the shared circuit.
func (l *Lattice) Circuit() *circuit.Circuit { return l.circ }

// Groups returns the allocated groups.
func (l *Lattice) Groups() *Groups { return l.groups }

// Registered returns the names of the registers this lattice allocated, in order.
func (l *Lattice) Registered() []string { return append([]string(nil), l.registered...) }

// Blueprint returns a copy of the plaquette blueprint.
func (l *Lattice) Blueprint() Blueprint { return l.blueprint.Clone() }

// Rounds returns the number of Stabilize rounds emitted so far.
func (l *Lattice) Rounds() int { return l.rounds }

// ReadoutRegister returns the register written by the latest ReadoutX/Z, or nil.
func (l *Lattice) ReadoutRegister() *circuit.ClassicalRegister { return l.lastRead }
