// Package logical is the application-facing facade over one lattice.
//
// A Qubit composes exactly one *lattice.Lattice and forwards every lattice
// operation. It adds the exactly-one-of check on CX, identity insertion
// hooks (ID, IDData) for later noise modeling, and circuit rendering.
//
// Several Qubits may share one *circuit.Circuit; give each a distinct name.
//
//	c := circuit.New()
//	a, _ := surface.NewQubit(3, "a", c)
//	b, _ := surface.NewQubit(3, "b", c)
//	_ = a.ResetZ()
//	_ = a.Stabilize()
//	_ = a.ReadoutZ(nil)
//	_ = b.XIf(a.ReadoutRegister(), 1)
package logical
