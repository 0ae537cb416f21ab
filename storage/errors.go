package storage

import "errors"

// ErrUnavailable is returned by every operation of an unavailable backend.
var ErrUnavailable = errors.New("storage unavailable")

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown storage backend")
