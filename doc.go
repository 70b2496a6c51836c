// Package qtlattice models topological quantum error-correcting logical
// qubits: a lattice of physical qubits encoding one logical qubit, the
// stabilizer circuits that extract its syndromes round after round, and the
// decoding of raw result strings into (time, row, col) syndrome events.
//
// The module is organized in small packages, leaf first:
//
//	circuit/    — shared, append-only circuit resource (registers, gates, OpenQASM 2.0)
//	lattice/    — code-family independent core: Geometry, blueprint, Stabilizer, ParseReadout
//	surface/    — rotated XXZZ surface code geometry (square or rectangular)
//	repetition/ — bit-flip repetition code geometry
//	logical/    — logical qubit facade over a Lattice
//	metrics/    — Prometheus counters for gates, registers and decoding
//	config/     — experiment files (TOML, YAML)
//	store/      — decoded readouts in SQLite or Postgres
//	cmd/qtlattice — build and decode from the command line
//
// Quick example, a distance-3 XXZZ qubit with two stabilizer rounds:
//
//	q, _ := surface.NewQubit(3, "q", nil)
//	_ = q.ResetZ()
//	_ = q.Stabilize()
//	_ = q.Stabilize()
//	_ = q.ReadoutZ(nil)
//	fmt.Println(q.Draw())
//
//	r, _ := q.ParseReadout("1 0000 0000 0100 0000", lattice.ReadoutLogical)
//	// r.Syndromes["Z"] == []lattice.Event{{Time: 0, Row: 2, Col: 1}}
package qtlattice
