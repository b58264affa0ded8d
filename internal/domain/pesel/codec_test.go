package pesel

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/pesel/internal/domain"
)

func TestEncodeDate(t *testing.T) {
	t.Parallel() // Enable parallel execution

	testCases := []struct {
		year, month int
		yy, mm      string
	}{
		{1850, 12, "50", "92"},
		{1899, 1, "99", "81"},
		{1900, 1, "00", "01"},
		{1996, 3, "96", "03"},
		{1999, 12, "99", "12"},
		{2000, 1, "00", "21"},
		{2003, 5, "03", "25"},
		{2099, 12, "99", "32"},
		{2150, 6, "50", "46"},
		{2299, 12, "99", "72"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%d-%02d", tc.year, tc.month), func(t *testing.T) {
			yy, mm, err := EncodeDate(tc.year, tc.month)
			require.NoError(t, err)
			assert.Equal(t, tc.yy, yy)
			assert.Equal(t, tc.mm, mm)
		})
	}

	_, _, err := EncodeDate(1996, 13)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
	_, _, err = EncodeDate(1700, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel() // Enable parallel execution

	for year := domain.MinBirthYear; year <= domain.MaxBirthYear; year++ {
		for month := 1; month <= 12; month++ {
			yy, mm, err := EncodeDate(year, month)
			require.NoError(t, err)

			gotYear, gotMonth, err := DecodeDate(yy, mm)
			require.NoError(t, err)
			if gotYear != year || gotMonth != month {
				t.Fatalf("round trip %d-%02d produced %d-%02d", year, month, gotYear, gotMonth)
			}
		}
	}
}

func TestDecodeDateRejectsUnknownBands(t *testing.T) {
	t.Parallel() // Enable parallel execution

	for _, mm := range []string{"00", "13", "20", "33", "40", "53", "60", "73", "80", "93", "99", "1a"} {
		_, _, err := DecodeDate("96", mm)
		assert.ErrorIs(t, err, domain.ErrInvalidCode, "month field %q", mm)
	}
}

func TestCenturyOffset2003(t *testing.T) {
	t.Parallel() // Enable parallel execution

	assert.Equal(t, 20, CenturyOffset(2003))

	code, err := Assemble(domain.MustBirthDate(2003, 7, 14), 123, 5)
	require.NoError(t, err)
	assert.Equal(t, "27", code.EncodedMonth())

	got, err := DecodeBirthDate(code.String())
	require.NoError(t, err)
	assert.Equal(t, 2003, got.Year())
	assert.Equal(t, 7, got.Month())
	assert.Equal(t, 14, got.Day())
}

func TestChecksum(t *testing.T) {
	t.Parallel() // Enable parallel execution

	testCases := []struct {
		name     string
		prefix   string
		expected int
	}{
		{"female 1996-03-20", "9603206048", 4},
		{"all zeros", "0000000000", 0},
		// 9*9=81 folds to 1, a digit sum would give 9
		{"fold not digit sum", "0009000000", 9},
		{"single nine weight three", "0300000000", 1},
		{"sum multiple of ten", "1300000000", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Checksum(tc.prefix)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}

	for _, bad := range []string{"", "123", "960320604", "96032060484", "96032060a8"} {
		_, err := Checksum(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidCode, "prefix %q", bad)
	}
}

func TestCheckDigitMatchesModuloFormula(t *testing.T) {
	t.Parallel() // Enable parallel execution

	// the largest possible folded sum is ten positions of 9
	for sum := 0; sum <= 90; sum++ {
		assert.Equal(t, (10-sum%10)%10, checkDigitFromSum(sum), "sum %d", sum)
	}
}

func TestChecksumIsTotalAndDeterministic(t *testing.T) {
	t.Parallel() // Enable parallel execution

	rng := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 2000; i++ {
		prefix := fmt.Sprintf("%010d", rng.IntN(10_000_000_000))
		first, err := Checksum(prefix)
		require.NoError(t, err)
		second, err := Checksum(prefix)
		require.NoError(t, err)
		assert.Equal(t, first, second)
		assert.GreaterOrEqual(t, first, 0)
		assert.LessOrEqual(t, first, 9)
	}
}

func TestAssemble(t *testing.T) {
	t.Parallel() // Enable parallel execution

	code, err := Assemble(domain.MustBirthDate(1996, 3, 20), 604, 8)
	require.NoError(t, err)
	assert.Equal(t, Code("96032060484"), code)
	assert.Equal(t, "96", code.Year())
	assert.Equal(t, "03", code.EncodedMonth())
	assert.Equal(t, "20", code.Day())
	assert.Equal(t, "604", code.Sequence())
	assert.Equal(t, 8, code.SexDigit())
	assert.Equal(t, 4, code.CheckDigit())
	assert.Equal(t, domain.SexFemale, code.Sex())

	_, err = Assemble(domain.MustBirthDate(1996, 3, 20), 1000, 8)
	assert.ErrorIs(t, err, domain.ErrInvalidSequence)
	_, err = Assemble(domain.MustBirthDate(1996, 3, 20), 1, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidSex)
	_, err = Assemble(domain.BirthDate{}, 1, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestAssembleAgreesWithChecksum(t *testing.T) {
	t.Parallel() // Enable parallel execution

	rng := rand.New(rand.NewPCG(3, 5))
	r, err := domain.ParseDateRange("1800-01-01", "2299-12-31")
	require.NoError(t, err)

	for i := 0; i < 5000; i++ {
		d := randomDate(rng, r)
		code, err := Assemble(d, rng.IntN(1000), rng.IntN(10))
		require.NoError(t, err)

		want, err := Checksum(code.String()[:10])
		require.NoError(t, err)
		assert.Equal(t, want, code.CheckDigit(), "code %s", code)

		got, err := code.BirthDate()
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
}

func TestParseCode(t *testing.T) {
	t.Parallel() // Enable parallel execution

	code, err := ParseCode("96032060484")
	require.NoError(t, err)
	assert.Equal(t, Code("96032060484"), code)

	for _, bad := range []string{
		"9603206048",  // too short
		"9603206048a", // not digits
		"96032060485", // wrong check digit
		"96132060484", // month field 13
		"96023060484", // february 30
	} {
		_, err := ParseCode(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidCode, "code %q", bad)
		assert.True(t, domain.IsMalformedInput(err), "code %q", bad)
	}
}
