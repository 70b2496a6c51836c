package logical_test

import (
	"fmt"

	"github.com/katalvlaran/qtlattice/circuit"
	"github.com/katalvlaran/qtlattice/logical"
	"github.com/katalvlaran/qtlattice/repetition"
)

// ExampleQubit_CX entangles an external qubit with a repetition-code qubit.
func ExampleQubit_CX() {
	c := circuit.New()
	g, _ := repetition.New(2)
	q, _ := logical.New(g, "r", c)
	ext, _ := c.AddQuantumRegister("ext", 1)
	e := ext.Qubit(0)

	if err := q.CX(&e, &e); err != nil {
		fmt.Println("rejected")
	}
	_ = q.CX(&e, nil)
	_ = q.CX(nil, &e)

	for _, in := range c.Instructions() {
		fmt.Println(in)
	}

	// Output:
	// rejected
	// cx ext[0], r_data[0]
	// cx ext[0], r_data[1]
	// cx r_data[0], ext[0]
}
