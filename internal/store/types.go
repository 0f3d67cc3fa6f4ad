package store

import "errors"

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("store: key not found")
