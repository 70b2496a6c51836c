package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/qtlattice/circuit"
	"github.com/katalvlaran/qtlattice/lattice"
	"github.com/katalvlaran/qtlattice/metrics"
)

func buildCmd(a *app) *cobra.Command {
	var (
		flags       experimentFlags
		format      string
		metricsFile string
	)

	c := &cobra.Command{
		Use:   "build",
		Short: "Emit the circuit of an experiment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			if format != "qasm" && format != "text" {
				return fmt.Errorf("unknown format %q (want qasm or text)", format)
			}

			reg := prometheus.NewRegistry()
			rec, err := metrics.NewRecorder(reg)
			if err != nil {
				return err
			}
			circ := circuit.New(circuit.WithLogger(a.log), circuit.WithRecorder(rec))
			q, err := e.Build(circ, lattice.WithLogger(a.log), lattice.WithRecorder(rec))
			if err != nil {
				return err
			}
			a.log.Info().
				Str("family", e.Family).
				Int("rounds", e.Rounds).
				Int("qubits", circ.NumQubits()).
				Int("instructions", circ.Len()).
				Msg("circuit built")

			out := q.Draw()
			if format == "text" {
				out = q.String()
			}
			if _, err := fmt.Fprint(cmd.OutOrStdout(), out); err != nil {
				return err
			}

			if metricsFile != "" {
				if err := prometheus.WriteToTextfile(metricsFile, reg); err != nil {
					return fmt.Errorf("write metrics: %w", err)
				}
			}
			return nil
		},
	}

	flags.bind(c)
	c.Flags().StringVarP(&format, "format", "f", "qasm", "output format (qasm, text)")
	c.Flags().StringVar(&metricsFile, "metrics-file", "", "write gate and register counters in Prometheus text format")
	return c
}
