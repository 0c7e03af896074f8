package analysis

import "errors"

// ErrNotFound indicates a history index outside the current range.
var ErrNotFound = errors.New("analysis not found")

// ErrNotImplemented is returned by history operations the contract excludes
// (delete, reorder). Callers get an explicit signal instead of a silent no-op.
var ErrNotImplemented = errors.New("not implemented")

// ErrUnsupportedFormat indicates an export format other than json or markdown.
var ErrUnsupportedFormat = errors.New("unsupported format")

// ErrEmptyIdea indicates an analyze request without an idea description.
var ErrEmptyIdea = errors.New("idea cannot be empty")

// ErrEmptyHistory indicates no analysis has been run yet.
var ErrEmptyHistory = errors.New("analysis history is empty")
