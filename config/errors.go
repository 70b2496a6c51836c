package config

import "errors"

var (
	// ErrUnknownFamily is returned for a family name no geometry implements.
	ErrUnknownFamily = errors.New("config: unknown code family")

	// ErrInvalid is returned when an experiment fails validation.
	ErrInvalid = errors.New("config: invalid experiment")

	// ErrFormat is returned for a file extension with no decoder.
	ErrFormat = errors.New("config: unsupported file format")
)
