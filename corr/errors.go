// SPDX-License-Identifier: MIT

package corr

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownRegion indicates a lookup referenced a region the matrix was not built with.
	ErrUnknownRegion = errors.New("corr: unknown region")

	// ErrMalformedInput indicates the delta table violates its shape contract.
	ErrMalformedInput = errors.New("corr: malformed input table")
)

// LookupError reports the region that failed a lookup.
// It matches ErrUnknownRegion under errors.Is.
type LookupError struct {
	Region string
}

// Error implements error.
func (e *LookupError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnknownRegion, e.Region)
}

// Unwrap exposes the sentinel.
func (e *LookupError) Unwrap() error { return ErrUnknownRegion }

// malformedf wraps ErrMalformedInput with formatted context.
func malformedf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformedInput, fmt.Sprintf(format, args...))
}
