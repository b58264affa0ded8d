package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrMalformedInput is returned when caller-supplied input cannot be parsed
	// into a domain value. Calls failing with it never return partial results.
	// This is usually wrapped with a more specific error.
	ErrMalformedInput = errors.New("malformed input")

	// ErrInvalidSex is returned when a sex token is not recognized.
	ErrInvalidSex = fmt.Errorf("%w: invalid sex", ErrMalformedInput)

	// ErrInvalidDate is returned when a birth date is malformed or outside
	// the supported calendar.
	ErrInvalidDate = fmt.Errorf("%w: invalid birth date", ErrMalformedInput)

	// ErrInvalidDateRange is returned when a range starts after it ends.
	ErrInvalidDateRange = fmt.Errorf("%w: invalid date range", ErrMalformedInput)

	// ErrInvalidSequence is returned when a sequence number is not in 0..999.
	ErrInvalidSequence = fmt.Errorf("%w: invalid sequence number", ErrMalformedInput)

	// ErrInvalidCode is returned when a code or one of its fields cannot be decoded.
	ErrInvalidCode = fmt.Errorf("%w: invalid code", ErrMalformedInput)

	// ErrInvalidCount is returned when a requested batch size is negative.
	ErrInvalidCount = fmt.Errorf("%w: invalid count", ErrMalformedInput)
)

// IsMalformedInput reports whether err is any kind of malformed input error.
func IsMalformedInput(err error) bool {
	return errors.Is(err, ErrMalformedInput)
}
