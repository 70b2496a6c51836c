// SPDX-License-Identifier: MIT

package surface

import "github.com/katalvlaran/qtlattice/lattice"

// inBounds reports whether data qubit (r, c) exists.
func (g *Geometry) inBounds(r, c int) bool {
	return r >= 0 && r < g.p.Rows && c >= 0 && c < g.p.Cols
}

// index maps data qubit (r, c) to its row-major index.
func (g *Geometry) index(r, c int) int {
	return r*g.p.Cols + c
}

// DataCoordinate converts a data index back to (row, col).
func (g *Geometry) DataCoordinate(idx int) lattice.Coordinate {
	return lattice.Coordinate{Row: idx / g.p.Cols, Col: idx % g.p.Cols}
}

// plaquetteType reports the stabilizer type at plaquette (i, j) and whether
// that plaquette exists at all.
func (g *Geometry) plaquetteType(i, j int) (string, bool) {
	typ := SyndromeZ
	if (i+j)%2 == 0 {
		typ = SyndromeX
	}
	rowEdge := i == 0 || i == g.p.Rows
	colEdge := j == 0 || j == g.p.Cols
	switch {
	case rowEdge && colEdge:
		return "", false
	case rowEdge:
		return typ, typ == SyndromeX
	case colEdge:
		return typ, typ == SyndromeZ
	}

	return typ, true
}

// corners returns the data indices around plaquette (i, j) as
// TL, TR, BL, BR, with -1 for positions off the lattice.
func (g *Geometry) corners(i, j int) [4]int {
	pos := [4][2]int{{i - 1, j - 1}, {i - 1, j}, {i, j - 1}, {i, j}}
	var out [4]int
	for k, rc := range pos {
		out[k] = -1
		if g.inBounds(rc[0], rc[1]) {
			out[k] = g.index(rc[0], rc[1])
		}
	}

	return out
}
