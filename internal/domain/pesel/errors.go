package pesel

import "errors"

// Common errors returned by the generator
var (
	// ErrEnumerationTooLarge is returned when exhaustive enumeration would
	// materialize more than MaxEnumeration codes.
	ErrEnumerationTooLarge = errors.New("feasible space too large to enumerate")

	// ErrUnknownStrategy is returned for a Strategy value outside the defined set.
	ErrUnknownStrategy = errors.New("unknown generation strategy")
)
