package store

import "errors"

// ErrNotFound is returned by Get for an unknown record id.
var ErrNotFound = errors.New("store: record not found")
