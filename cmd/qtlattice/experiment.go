package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/qtlattice/config"
)

// experimentFlags binds the experiment settings to command flags. Flags
// that are set override the values loaded from --config.
type experimentFlags struct {
	path string
	e    config.Experiment
}

func (f *experimentFlags) bind(c *cobra.Command) {
	d := config.Default()
	fs := c.Flags()
	fs.StringVarP(&f.path, "config", "c", "", "experiment file (.toml, .yaml, .yml)")
	fs.StringVar(&f.e.Name, "name", d.Name, "register name prefix")
	fs.StringVar(&f.e.Family, "family", d.Family, "code family (xxzz, repetition)")
	fs.IntVarP(&f.e.Distance, "distance", "d", d.Distance, "code distance")
	fs.IntVar(&f.e.Rows, "rows", 0, "rows of a rectangular xxzz patch")
	fs.IntVar(&f.e.Cols, "cols", 0, "columns of a rectangular xxzz patch")
	fs.IntVar(&f.e.Rounds, "rounds", d.Rounds, "stabilizer rounds")
	fs.StringVar(&f.e.Reset, "reset", d.Reset, "reset basis (x, z)")
	fs.StringVar(&f.e.Readout, "readout", d.Readout, "final readout (logical_x, logical_z, lattice_x, lattice_z)")
}

// resolve returns the file experiment (or defaults) with changed flags applied.
func (f *experimentFlags) resolve(c *cobra.Command) (config.Experiment, error) {
	e := config.Default()
	if f.path != "" {
		var err error
		if e, err = config.Load(f.path); err != nil {
			return config.Experiment{}, err
		}
	}

	fs := c.Flags()
	if fs.Changed("name") {
		e.Name = f.e.Name
	}
	if fs.Changed("family") {
		e.Family = f.e.Family
	}
	if fs.Changed("distance") {
		e.Distance = f.e.Distance
	}
	if fs.Changed("rows") {
		e.Rows = f.e.Rows
	}
	if fs.Changed("cols") {
		e.Cols = f.e.Cols
	}
	if fs.Changed("rounds") {
		e.Rounds = f.e.Rounds
	}
	if fs.Changed("reset") {
		e.Reset = f.e.Reset
	}
	if fs.Changed("readout") {
		e.Readout = f.e.Readout
	}
	e.Normalize()
	if err := e.Validate(); err != nil {
		return config.Experiment{}, err
	}

	return e, nil
}
