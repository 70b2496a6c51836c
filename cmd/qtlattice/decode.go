package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qtlattice/lattice"
	"github.com/katalvlaran/qtlattice/logical"
	"github.com/katalvlaran/qtlattice/store"
)

// decoded is one output line of the decode command.
type decoded struct {
	ID        int64                      `json:"id,omitempty"`
	Raw       string                     `json:"raw"`
	Logical   int                        `json:"logical"`
	Syndromes map[string][]lattice.Event `json:"syndromes"`
}

func decodeCmd(a *app) *cobra.Command {
	var (
		flags experimentFlags
		kind  string
		dsn   string
	)

	c := &cobra.Command{
		Use:   "decode [readout...]",
		Short: "Decode result strings into syndrome events",
		Long: "Decode result strings into the logical value and (time, row, col) syndrome events.\n" +
			"Strings are read from the arguments, or one per line from stdin when none are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			t, err := parseType(kind)
			if err != nil {
				return err
			}
			g, err := e.Geometry()
			if err != nil {
				return err
			}
			q, err := logical.New(g, e.Name, nil, lattice.WithLogger(a.log))
			if err != nil {
				return err
			}

			inputs := args
			if len(inputs) == 0 {
				if inputs, err = readLines(cmd); err != nil {
					return err
				}
			}

			var db *store.Store
			if dsn != "" {
				if db, err = store.Open(cmd.Context(), dsn); err != nil {
					return err
				}
				defer func() { _ = db.Close() }()
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, raw := range inputs {
				r, err := q.ParseReadout(raw, t)
				if err != nil {
					return fmt.Errorf("decode %q: %w", raw, err)
				}
				line := decoded{Raw: raw, Logical: r.Logical, Syndromes: r.Syndromes}
				if db != nil {
					line.ID, err = db.Save(cmd.Context(), store.Record{
						Lattice: e.Name,
						Family:  g.Family(),
						Raw:     raw,
						Type:    t,
						Readout: r,
					})
					if err != nil {
						return err
					}
				}
				if err := enc.Encode(line); err != nil {
					return err
				}
			}
			a.log.Debug().Int("readouts", len(inputs)).Bool("stored", db != nil).Msg("decode finished")
			return nil
		},
	}

	flags.bind(c)
	c.Flags().StringVarP(&kind, "type", "t", "auto", "readout type (auto, logical, lattice_x, lattice_z)")
	c.Flags().StringVar(&dsn, "db", "", "store decoded readouts (SQLite path or postgres:// URL)")
	return c
}

func parseType(s string) (lattice.ReadoutType, error) {
	switch t := lattice.ReadoutType(strings.ToLower(strings.TrimSpace(s))); t {
	case "auto", lattice.ReadoutAuto:
		return lattice.ReadoutAuto, nil
	case lattice.ReadoutLogical, lattice.ReadoutLatticeX, lattice.ReadoutLatticeZ:
		return t, nil
	}

	return "", fmt.Errorf("unknown readout type %q", s)
}

func readLines(cmd *cobra.Command) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			out = append(out, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	return out, nil
}
