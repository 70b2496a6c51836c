package config

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qtlattice/circuit"
	"github.com/katalvlaran/qtlattice/lattice"
	"github.com/katalvlaran/qtlattice/logical"
	"github.com/katalvlaran/qtlattice/repetition"
	"github.com/katalvlaran/qtlattice/surface"
)

// Readout kinds accepted by Experiment.Readout.
const (
	ReadoutLogicalX = "logical_x"
	ReadoutLogicalZ = "logical_z"
	ReadoutLatticeX = "lattice_x"
	ReadoutLatticeZ = "lattice_z"
)

// Experiment describes one logical qubit and the program run on it.
type Experiment struct {
	Name     string `toml:"name" yaml:"name"`
	Family   string `toml:"family" yaml:"family"`
	Distance int    `toml:"distance" yaml:"distance"`
	Rows     int    `toml:"rows" yaml:"rows"`
	Cols     int    `toml:"cols" yaml:"cols"`
	Rounds   int    `toml:"rounds" yaml:"rounds"`
	Reset    string `toml:"reset" yaml:"reset"`
	Readout  string `toml:"readout" yaml:"readout"`
}

// Default returns a distance-3 XXZZ experiment with one round.
func Default() Experiment {
	return Experiment{
		Name:     "q",
		Family:   surface.Family,
		Distance: 3,
		Rounds:   1,
		Reset:    "z",
		Readout:  ReadoutLogicalZ,
	}
}

// Normalize trims the string settings and lowercases the enumerations.
func (e *Experiment) Normalize() {
	e.Name = strings.TrimSpace(e.Name)
	e.Family = strings.ToLower(strings.TrimSpace(e.Family))
	e.Reset = strings.ToLower(strings.TrimSpace(e.Reset))
	e.Readout = strings.ToLower(strings.TrimSpace(e.Readout))
}

// Validate checks the program settings. Geometry sizes are checked by
// the geometry constructors.
func (e Experiment) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalid)
	}
	if e.Rounds < 0 {
		return fmt.Errorf("%w: rounds must be ≥ 0, got %d", ErrInvalid, e.Rounds)
	}
	if e.Reset != "x" && e.Reset != "z" {
		return fmt.Errorf("%w: reset basis %q", ErrInvalid, e.Reset)
	}
	switch e.Readout {
	case ReadoutLogicalX, ReadoutLogicalZ, ReadoutLatticeX, ReadoutLatticeZ:
	default:
		return fmt.Errorf("%w: readout %q", ErrInvalid, e.Readout)
	}
	if (e.Rows == 0) != (e.Cols == 0) {
		return fmt.Errorf("%w: rows and cols must be set together", ErrInvalid)
	}

	return nil
}

// Geometry builds the code family geometry.
func (e Experiment) Geometry() (lattice.Geometry, error) {
	switch e.Family {
	case surface.Family:
		opt := surface.WithDistance(e.Distance)
		if e.Rows != 0 {
			opt = surface.WithDimensions(e.Rows, e.Cols)
		}
		g, err := surface.New(opt)
		if err != nil {
			return nil, err
		}
		return g, nil
	case repetition.Family:
		if e.Rows != 0 {
			return nil, fmt.Errorf("%w: repetition takes a distance, not rows/cols", ErrInvalid)
		}
		g, err := repetition.New(e.Distance)
		if err != nil {
			return nil, err
		}
		return g, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, e.Family)
}

// ParseType is the readout type hint matching the experiment's final
// readout.
func (e Experiment) ParseType() lattice.ReadoutType {
	switch e.Readout {
	case ReadoutLatticeX:
		return lattice.ReadoutLatticeX
	case ReadoutLatticeZ:
		return lattice.ReadoutLatticeZ
	}

	return lattice.ReadoutLogical
}

// Build constructs the logical qubit on c (a fresh circuit when nil) and
// emits the reset, the stabilizer rounds and the readout.
func (e Experiment) Build(c *circuit.Circuit, opts ...lattice.Option) (*logical.Qubit, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	g, err := e.Geometry()
	if err != nil {
		return nil, err
	}
	q, err := logical.New(g, e.Name, c, opts...)
	if err != nil {
		return nil, err
	}

	reset := q.ResetZ
	if e.Reset == "x" {
		reset = q.ResetX
	}
	if err := reset(); err != nil {
		return nil, fmt.Errorf("reset: %w", err)
	}
	for r := 0; r < e.Rounds; r++ {
		if err := q.Stabilize(); err != nil {
			return nil, fmt.Errorf("stabilize round %d: %w", r, err)
		}
	}

	switch e.Readout {
	case ReadoutLogicalX:
		err = q.ReadoutX(nil)
	case ReadoutLogicalZ:
		err = q.ReadoutZ(nil)
	case ReadoutLatticeX:
		err = q.LatticeReadoutX()
	case ReadoutLatticeZ:
		err = q.LatticeReadoutZ()
	}
	if err != nil {
		return nil, fmt.Errorf("readout %s: %w", e.Readout, err)
	}

	return q, nil
}
