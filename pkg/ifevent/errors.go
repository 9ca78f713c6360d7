package ifevent

import (
	"errors"
	"fmt"
)

// Sentinel errors for the analysis contract. Callers distinguish bad
// parameters (no partial result) from store failures (propagated
// unchanged) from valid empty results (no error at all).
var (
	// ErrInvalidParameter indicates a caller-supplied parameter outside
	// its documented domain: a non-positive threshold, an end time before
	// the start time, or an unrecognized category filter.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrQuery indicates the event store failed to return the requested
	// range. The engine attaches no retry logic.
	ErrQuery = errors.New("event query failed")

	// ErrQueryTimeout indicates the event store did not answer in time.
	ErrQueryTimeout = errors.New("event query timed out")
)

// NormalizeError reports a raw record that cannot be converted to an
// InterfaceEvent. The batch normalizer skips the record and continues.
type NormalizeError struct {
	Field  string // Required field that was missing or unparseable
	Reason string
}

func (e *NormalizeError) Error() string {
	return fmt.Sprintf("normalize event: field %q: %s", e.Field, e.Reason)
}
