package runner

import "errors"

// Sentinel errors for run failure modes.
// Callers should use errors.Is() to check for these.
var (
	// ErrClosed indicates the run was already closed and accepts no
	// further records.
	ErrClosed = errors.New("runner: run already closed")
)
