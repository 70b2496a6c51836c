package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const envLogLevel = "QTLATTICE_LOG_LEVEL"

// app is the state shared by the subcommands.
type app struct {
	level string
	log   zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:          "qtlattice",
		Short:        "Build and decode topological logical-qubit circuits",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			l, err := newLogger(cmd.ErrOrStderr(), a.level)
			if err != nil {
				return err
			}
			a.log = l
			return nil
		},
	}

	level := os.Getenv(envLogLevel)
	if level == "" {
		level = zerolog.WarnLevel.String()
	}
	cmd.PersistentFlags().StringVar(&a.level, "log-level", level,
		"log level (trace, debug, info, warn, error); defaults to $"+envLogLevel)

	cmd.AddCommand(buildCmd(a), decodeCmd(a))
	return cmd
}

func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("log level %q: %w", level, err)
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}

	return zerolog.New(out).Level(lvl).With().Timestamp().Str("app", "qtlattice").Logger(), nil
}
