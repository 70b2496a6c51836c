// SPDX-License-Identifier: MIT

// Package surface implements the rotated XXZZ surface code as a
// lattice.Geometry.
//
// Layout (Rows × Cols data qubits, both odd, ≥ 3):
//
//   - Data qubit (r, c) has index r*Cols + c.
//   - Plaquette (i, j), 0 ≤ i ≤ Rows, 0 ≤ j ≤ Cols, sits between data rows
//     i-1, i and columns j-1, j. It is X-type when i+j is even, Z-type otherwise.
//   - Bulk plaquettes are weight 4. On the top and bottom edges only X-type
//     weight-2 plaquettes are kept; on the left and right edges only Z-type
//     ones; corners are dropped. This gives Rows*Cols-1 checks.
//   - Syndrome indices count X and Z plaquettes separately in row-major order.
//     Syndrome events report the plaquette position (i, j) as (row, col).
//
// For d = 3:
//
//	    (0,2)X
//	  D0 -- D1 -- D2
//	(1,0)Z  (1,1)X  (1,2)Z
//	  D3 -- D4 -- D5
//	      (2,1)Z  (2,2)X  (2,3)Z
//	  D6 -- D7 -- D8
//	    (3,1)X
//
// Gate order: X checks use TL, TR, BL, BR ("Z" shape); Z checks use
// TL, BL, TR, BR ("N" shape), so hook errors run perpendicular to the
// matching logical operator.
//
// Logical operators: Z acts on data row 0, X on data column 0.
//
// Groups are declared as data, mx, mz, ancilla. A stabilize round therefore
// reads "<Z-syndrome> <X-syndrome>" in a result string.
package surface
