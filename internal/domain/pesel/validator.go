package pesel

import (
	"github.com/phrazzld/pesel/internal/domain"
)

// Result classifies a code against expected values
type Result string

// Possible validation results, in the order checks are applied
const (
	ResultValid            Result = "valid"
	ResultLengthMismatch   Result = "length_mismatch"
	ResultSexMismatch      Result = "sex_mismatch"
	ResultDateMismatch     Result = "date_mismatch"
	ResultChecksumMismatch Result = "checksum_mismatch"
)

// Valid reports whether r is ResultValid.
func (r Result) Valid() bool {
	return r == ResultValid
}

// Validate classifies code against the expected sex and birth date and
// returns the first failing check, in the order length, sex, birth date,
// checksum. SexUnspecified skips the sex check and a nil date skips the date
// check. A code whose date fields cannot be decoded fails the date check.
// sex must come from domain.ParseSex or be one of the domain constants; any
// other value matches no digit and reports ResultSexMismatch.
func Validate(code string, sex domain.Sex, date *domain.BirthDate) Result {
	if !isDigits(code, CodeLength) {
		return ResultLengthMismatch
	}

	if sex != domain.SexUnspecified && !sex.Matches(digitAt(code, sexOffset)) {
		return ResultSexMismatch
	}

	if date != nil {
		got, err := DecodeBirthDate(code)
		if err != nil || !got.Equal(*date) {
			return ResultDateMismatch
		}
	}

	// the prefix is already known to be digits
	want, _ := Checksum(code[:checkOffset])
	if digitAt(code, checkOffset) != want {
		return ResultChecksumMismatch
	}

	return ResultValid
}

// ValidateAll validates every code and counts the results.
func ValidateAll(codes []string, sex domain.Sex, date *domain.BirthDate) map[Result]int {
	counts := make(map[Result]int)
	for _, c := range codes {
		counts[Validate(c, sex, date)]++
	}
	return counts
}
