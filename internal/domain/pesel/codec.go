package pesel

import (
	"fmt"
	"strconv"

	"github.com/phrazzld/pesel/internal/domain"
)

// Century band offsets added to the month field.
const (
	offset1800s = 80
	offset1900s = 0
	offset2000s = 20
	offset2100s = 40
	offset2200s = 60
)

// checksumWeights are applied to digits 0..9.
var checksumWeights = [10]int{1, 3, 7, 9, 1, 3, 7, 9, 1, 3}

// CenturyOffset returns the month offset for a four-digit year.
func CenturyOffset(year int) int {
	switch {
	case year < 1900:
		return offset1800s
	case year <= 1999:
		return offset1900s
	case year <= 2099:
		return offset2000s
	case year <= 2199:
		return offset2100s
	default:
		return offset2200s
	}
}

// EncodeDate maps a year and month to the two-digit year and month fields.
func EncodeDate(year, month int) (yy, mm string, err error) {
	if year < domain.MinBirthYear || year > domain.MaxBirthYear {
		return "", "", fmt.Errorf("%w: year %d", domain.ErrInvalidDate, year)
	}
	if month < 1 || month > 12 {
		return "", "", fmt.Errorf("%w: month %d", domain.ErrInvalidDate, month)
	}
	return fmt.Sprintf("%02d", year%100), fmt.Sprintf("%02d", month+CenturyOffset(year)), nil
}

// DecodeDate is the inverse of EncodeDate. The tens digit of the month field
// selects the century; fields outside 1-12, 21-32, 41-52, 61-72 and 81-92
// are rejected.
func DecodeDate(yy, mm string) (year, month int, err error) {
	if !isDigits(yy, 2) || !isDigits(mm, 2) {
		return 0, 0, fmt.Errorf("%w: date fields %q %q", domain.ErrInvalidCode, yy, mm)
	}
	y, _ := strconv.Atoi(yy)
	m, _ := strconv.Atoi(mm)

	switch {
	case m >= 1 && m <= 12:
		return 1900 + y, m - offset1900s, nil
	case m >= 21 && m <= 32:
		return 2000 + y, m - offset2000s, nil
	case m >= 41 && m <= 52:
		return 2100 + y, m - offset2100s, nil
	case m >= 61 && m <= 72:
		return 2200 + y, m - offset2200s, nil
	case m >= 81 && m <= 92:
		return 1800 + y, m - offset1800s, nil
	default:
		return 0, 0, fmt.Errorf("%w: month field %q", domain.ErrInvalidCode, mm)
	}
}

// DecodeBirthDate recovers the birth date embedded in the first six digits of s.
// Only the date fields are inspected; s may be a code or a longer prefix of one.
func DecodeBirthDate(s string) (domain.BirthDate, error) {
	if len(s) < sequenceOffset {
		return domain.BirthDate{}, fmt.Errorf("%w: %q too short", domain.ErrInvalidCode, s)
	}
	year, month, err := DecodeDate(s[yearOffset:monthOffset], s[monthOffset:dayOffset])
	if err != nil {
		return domain.BirthDate{}, err
	}
	dd := s[dayOffset:sequenceOffset]
	if !isDigits(dd, 2) {
		return domain.BirthDate{}, fmt.Errorf("%w: day field %q", domain.ErrInvalidCode, dd)
	}
	day, _ := strconv.Atoi(dd)
	d, err := domain.NewBirthDate(year, month, day)
	if err != nil {
		return domain.BirthDate{}, fmt.Errorf("%w: %w", domain.ErrInvalidCode, err)
	}
	return d, nil
}

// Checksum computes the check digit over the first ten digits.
//
// Each digit is multiplied by its weight; a product above 9 is replaced by
// its last digit (not its digit sum). The check digit is 0 when the sum is a
// multiple of 10 and 10 - sum%10 otherwise.
func Checksum(prefix string) (int, error) {
	if !isDigits(prefix, checkOffset) {
		return 0, fmt.Errorf("%w: checksum input %q must be %d digits",
			domain.ErrInvalidCode, prefix, checkOffset)
	}
	var digits [10]int
	for i := range digits {
		digits[i] = digitAt(prefix, i)
	}
	return checksumDigits(digits), nil
}

func checksumDigits(d [10]int) int {
	sum := 0
	for i, w := range checksumWeights {
		sum += foldProduct(d[i] * w)
	}
	return checkDigitFromSum(sum)
}

func foldProduct(p int) int {
	if p > 9 {
		return p % 10
	}
	return p
}

func checkDigitFromSum(sum int) int {
	if sum%10 == 0 {
		return 0
	}
	return 10 - sum%10
}

// Assemble builds a complete code from a birth date, a sequence number in
// 0..999 and a sex digit.
func Assemble(date domain.BirthDate, seq, sexDigit int) (Code, error) {
	if date.IsZero() {
		return "", fmt.Errorf("%w: birth date is required", domain.ErrInvalidDate)
	}
	if seq < 0 || seq > 999 {
		return "", fmt.Errorf("%w: %d", domain.ErrInvalidSequence, seq)
	}
	if sexDigit < 0 || sexDigit > 9 {
		return "", fmt.Errorf("%w: sex digit %d", domain.ErrInvalidSex, sexDigit)
	}
	p := newDatePrefix(date)
	return p.code(seq, sexDigit), nil
}

// datePrefix caches the six date digits and their partial weighted sum so
// enumeration only pays for the sequence and sex digits per code.
type datePrefix struct {
	digits  [6]byte
	partial int
}

func newDatePrefix(date domain.BirthDate) datePrefix {
	year := date.Year()
	month := date.Month() + CenturyOffset(year)
	vals := [6]int{
		(year % 100) / 10, year % 10,
		month / 10, month % 10,
		date.Day() / 10, date.Day() % 10,
	}

	var p datePrefix
	for i, v := range vals {
		p.digits[i] = byte('0' + v)
		p.partial += foldProduct(v * checksumWeights[i])
	}
	return p
}

func (p datePrefix) code(seq, sexDigit int) Code {
	s := [3]int{seq / 100, (seq / 10) % 10, seq % 10}

	sum := p.partial
	for i, v := range s {
		sum += foldProduct(v * checksumWeights[sequenceOffset+i])
	}
	sum += foldProduct(sexDigit * checksumWeights[sexOffset])

	var b [CodeLength]byte
	copy(b[:], p.digits[:])
	b[6] = byte('0' + s[0])
	b[7] = byte('0' + s[1])
	b[8] = byte('0' + s[2])
	b[9] = byte('0' + sexDigit)
	b[10] = byte('0' + checkDigitFromSum(sum))
	return Code(b[:])
}
