// Command qtlattice builds logical-qubit circuits from experiment files and
// decodes their result strings into syndrome events.
//
//	qtlattice build --config exp.toml --metrics-file gates.prom
//	qtlattice decode --distance 3 "1 0100 0000 0000 0100"
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
