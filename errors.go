/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package dateparser

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrecognized is returned when no matcher's shape predicate accepted
	// the input. Every matcher declined.
	ErrUnrecognized = errors.New("dateparser: unrecognized date/time format")

	// ErrInvalid is returned when a matcher accepted the shape of the input
	// but the extracted fields do not form a valid instant (out-of-range
	// field, impossible calendar date, or a wall-clock that does not exist
	// in the resolved zone). Use errors.As to recover the offending format
	// name and reason via *InvalidError.
	ErrInvalid = errors.New("dateparser: invalid date/time value")
)

// InvalidError carries the format family that committed to a shape match
// and the reason the resulting value was rejected. It wraps ErrInvalid so
// callers can use errors.Is(err, ErrInvalid) without caring about the
// specific format, or errors.As to inspect Format and Reason.
type InvalidError struct {
	Format string // name of the format family that matched the shape
	Reason string // human-readable reason the value was rejected
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("dateparser: %s: %s", e.Format, e.Reason)
}

func (e *InvalidError) Unwrap() error {
	return ErrInvalid
}

func invalidf(format, reason string, args ...interface{}) error {
	return &InvalidError{Format: format, Reason: fmt.Sprintf(reason, args...)}
}
