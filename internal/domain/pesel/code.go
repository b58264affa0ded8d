package pesel

import (
	"fmt"

	"github.com/phrazzld/pesel/internal/domain"
)

// CodeLength is the number of digits in a complete code.
const CodeLength = 11

// Field offsets within a code.
const (
	yearOffset     = 0
	monthOffset    = 2
	dayOffset      = 4
	sequenceOffset = 6
	sexOffset      = 9
	checkOffset    = 10
)

// Code is an 11-digit identifier. Values produced by this package are always
// well formed; use ParseCode to obtain one from untrusted input.
type Code string

// ParseCode checks that s is a complete, internally consistent code: eleven
// digits, a decodable birth date and a matching check digit.
func ParseCode(s string) (Code, error) {
	if !isDigits(s, CodeLength) {
		return "", fmt.Errorf("%w: %q must be %d digits", domain.ErrInvalidCode, s, CodeLength)
	}
	if _, err := DecodeBirthDate(s); err != nil {
		return "", err
	}
	want, err := Checksum(s[:checkOffset])
	if err != nil {
		return "", err
	}
	if digitAt(s, checkOffset) != want {
		return "", fmt.Errorf("%w: check digit of %q", domain.ErrInvalidCode, s)
	}
	return Code(s), nil
}

// Year returns the two-digit year field.
func (c Code) Year() string { return string(c[yearOffset:monthOffset]) }

// EncodedMonth returns the month field including its century offset.
func (c Code) EncodedMonth() string { return string(c[monthOffset:dayOffset]) }

// Day returns the day field.
func (c Code) Day() string { return string(c[dayOffset:sequenceOffset]) }

// Sequence returns the three-digit sequence discriminator.
func (c Code) Sequence() string { return string(c[sequenceOffset:sexOffset]) }

// SexDigit returns the digit at position 9.
func (c Code) SexDigit() int { return digitAt(string(c), sexOffset) }

// CheckDigit returns the final digit.
func (c Code) CheckDigit() int { return digitAt(string(c), checkOffset) }

// Sex returns the sex encoded by the sex digit.
func (c Code) Sex() domain.Sex { return domain.SexFromDigit(c.SexDigit()) }

// BirthDate decodes the embedded birth date.
func (c Code) BirthDate() (domain.BirthDate, error) { return DecodeBirthDate(string(c)) }

// String returns the code digits.
func (c Code) String() string { return string(c) }

func digitAt(s string, i int) int {
	return int(s[i] - '0')
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
