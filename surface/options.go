// SPDX-License-Identifier: MIT

package surface

// Option sets a geometry parameter. Values are validated by New.
type Option func(*settings)

type settings struct {
	rows, cols int
}

// WithDistance sets a square d × d lattice.
func WithDistance(d int) Option {
	return func(s *settings) {
		s.rows, s.cols = d, d
	}
}

// WithDimensions sets a rectangular rows × cols lattice.
func WithDimensions(rows, cols int) Option {
	return func(s *settings) {
		s.rows, s.cols = rows, cols
	}
}
