package etl

import "errors"

// Error classes for the stages of a pipeline run. Stage implementations wrap
// these with %w so callers can classify failures with errors.Is. Errors
// returned by the transform task itself are never wrapped into one of these
// classes; they propagate unmodified.
var (
	// ErrConfiguration marks a malformed or unloadable pipeline definition.
	ErrConfiguration = errors.New("invalid pipeline configuration")

	// ErrFileNotFound marks a missing extract source file.
	ErrFileNotFound = errors.New("source file not found")

	// ErrDecode marks a source file with invalid byte encoding.
	ErrDecode = errors.New("source decode failure")

	// ErrTaskResolution marks a transform task identifier with no
	// registered implementation.
	ErrTaskResolution = errors.New("transform task not registered")

	// ErrSchemaMismatch marks a record set whose rows do not share the
	// declared schema.
	ErrSchemaMismatch = errors.New("record set schema mismatch")

	// ErrWrite marks an I/O or encoding failure in the load stage.
	ErrWrite = errors.New("load write failure")
)
