package errs

import (
	"errors"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidJSON      = errors.New("invalid JSON data")
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrStaleState       = errors.New("stale state version")
	ErrInvalidVersion   = errors.New("invalid state version")
)
