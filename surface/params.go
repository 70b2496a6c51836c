// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"

	"github.com/katalvlaran/qtlattice/lattice"
)

// MinDistance is the smallest supported side length.
const MinDistance = 3

// Params are the validated and derived parameters of a rotated surface code.
type Params struct {
	Rows, Cols int
	NumData    int
	NumX       int
	NumZ       int
}

// newParams validates the raw settings and derives group sizes.
func newParams(s settings) (Params, error) {
	if s.rows == 0 && s.cols == 0 {
		return Params{}, fmt.Errorf("%w: xxzz: missing distance d", lattice.ErrConfiguration)
	}
	for _, v := range [2]int{s.rows, s.cols} {
		if v < MinDistance {
			return Params{}, fmt.Errorf("%w: xxzz: distance must be ≥ %d, got %dx%d",
				lattice.ErrConfiguration, MinDistance, s.rows, s.cols)
		}
		if v%2 == 0 {
			return Params{}, fmt.Errorf("%w: xxzz: distance must be odd, got %dx%d",
				lattice.ErrConfiguration, s.rows, s.cols)
		}
	}
	bulk := (s.rows - 1) * (s.cols - 1) / 2
	p := Params{
		Rows:    s.rows,
		Cols:    s.cols,
		NumData: s.rows * s.cols,
		NumX:    bulk + (s.cols - 1),
		NumZ:    bulk + (s.rows - 1),
	}

	return p, p.validate()
}

func (p Params) validate() error {
	if p.Rows < MinDistance || p.Cols < MinDistance || p.Rows%2 == 0 || p.Cols%2 == 0 {
		return fmt.Errorf("%w: xxzz: bad dimensions %dx%d", lattice.ErrConfiguration, p.Rows, p.Cols)
	}
	if p.NumData != p.Rows*p.Cols {
		return fmt.Errorf("%w: xxzz: num_data %d != %d*%d", lattice.ErrConfiguration, p.NumData, p.Rows, p.Cols)
	}
	if p.NumX+p.NumZ != p.NumData-1 {
		return fmt.Errorf("%w: xxzz: %d X + %d Z checks for %d data qubits",
			lattice.ErrConfiguration, p.NumX, p.NumZ, p.NumData)
	}

	return nil
}
