package catalog

import "errors"

var (
	// ErrBackendRequired is returned by write operations when the
	// remote backend is unconfigured. Writes have no meaningful effect
	// against the read-only static snapshot, so there is no fallback.
	ErrBackendRequired = errors.New("catalog: remote backend required")

	// ErrValidation is returned when an entity fails local validation
	// before it reaches the remote store.
	ErrValidation = errors.New("catalog: validation failed")
)
