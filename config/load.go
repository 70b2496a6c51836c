package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads an experiment from a .toml, .yaml or .yml file. Keys absent
// from the file keep their Default values.
func Load(path string) (Experiment, error) {
	var (
		e   Experiment
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		e, err = loadTOML(path)
	case ".yaml", ".yml":
		e, err = loadYAML(path)
	default:
		return Experiment{}, fmt.Errorf("%w: %q", ErrFormat, path)
	}
	if err != nil {
		return Experiment{}, err
	}
	e.Normalize()
	if err := e.Validate(); err != nil {
		return Experiment{}, fmt.Errorf("%s: %w", path, err)
	}

	return e, nil
}

func loadTOML(path string) (Experiment, error) {
	e := Default()

	var raw Experiment
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Experiment{}, fmt.Errorf("load experiment: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Experiment{}, fmt.Errorf("%w: unknown key %q in %s", ErrInvalid, undecoded[0].String(), path)
	}

	if meta.IsDefined("name") {
		e.Name = raw.Name
	}
	if meta.IsDefined("family") {
		e.Family = raw.Family
	}
	if meta.IsDefined("distance") {
		e.Distance = raw.Distance
	}
	if meta.IsDefined("rows") {
		e.Rows = raw.Rows
	}
	if meta.IsDefined("cols") {
		e.Cols = raw.Cols
	}
	if meta.IsDefined("rounds") {
		e.Rounds = raw.Rounds
	}
	if meta.IsDefined("reset") {
		e.Reset = raw.Reset
	}
	if meta.IsDefined("readout") {
		e.Readout = raw.Readout
	}

	return e, nil
}

func loadYAML(path string) (Experiment, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Experiment{}, fmt.Errorf("load experiment: %w", err)
	}

	// Decoding over the defaults leaves absent keys untouched.
	e := Default()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&e); err != nil && !errors.Is(err, io.EOF) {
		return Experiment{}, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
	}

	return e, nil
}
