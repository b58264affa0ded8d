package domain

import (
	"fmt"
	"strings"
)

// Sex represents the sex encoded at position 9 of a code
type Sex string

// Possible sex values
const (
	SexFemale Sex = "female"
	SexMale   Sex = "male"

	// SexUnspecified is only meaningful to the validator, where it disables
	// the sex check.
	SexUnspecified Sex = ""
)

var (
	femaleDigits = [5]int{0, 2, 4, 6, 8}
	maleDigits   = [5]int{1, 3, 5, 7, 9}
)

// ParseSex converts a user-supplied token into a Sex.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseSex(token string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "f", "female", "k", "kobieta":
		return SexFemale, nil
	case "m", "male", "mezczyzna":
		return SexMale, nil
	case "", "any", "*":
		return SexUnspecified, nil
	default:
		return SexUnspecified, fmt.Errorf("%w: %q", ErrInvalidSex, token)
	}
}

// SexFromDigit returns the sex denoted by a single decimal digit.
func SexFromDigit(d int) Sex {
	if d%2 == 0 {
		return SexFemale
	}
	return SexMale
}

// Digits returns the five digits that encode s, or nil for SexUnspecified.
func (s Sex) Digits() []int {
	switch s {
	case SexFemale:
		d := femaleDigits
		return d[:]
	case SexMale:
		d := maleDigits
		return d[:]
	default:
		return nil
	}
}

// Matches reports whether digit d encodes s. SexUnspecified matches any digit.
func (s Sex) Matches(d int) bool {
	if s == SexUnspecified {
		return true
	}
	return SexFromDigit(d) == s
}

// IsSpecified reports whether s is Female or Male.
func (s Sex) IsSpecified() bool {
	return s == SexFemale || s == SexMale
}

// String returns a readable name, "unspecified" for the zero value.
func (s Sex) String() string {
	if s == SexUnspecified {
		return "unspecified"
	}
	return string(s)
}
