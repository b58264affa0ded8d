package pesel

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/pesel/internal/domain"
)

// Global validator instance for reuse
var validate = validator.New()

// Request describes one batch: the sex every code must encode, the inclusive
// birth date range and the number of codes wanted.
type Request struct {
	Sex   domain.Sex
	Range domain.DateRange
	Count int
}

// Validate checks if the Request has valid data.
func (r Request) Validate() error {
	if !r.Sex.IsSpecified() {
		return fmt.Errorf("%w: generation requires female or male, got %s",
			domain.ErrInvalidSex, r.Sex)
	}
	if _, err := domain.NewDateRange(r.Range.From, r.Range.To); err != nil {
		return err
	}
	if r.Count < 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidCount, r.Count)
	}
	return nil
}

// RawRequest is the untyped form of a Request, as read from configuration or
// another external source.
type RawRequest struct {
	Sex      string `mapstructure:"sex" validate:"required,oneof=f m female male k kobieta mezczyzna"`
	DateFrom string `mapstructure:"date_from" validate:"required,len=10,datetime=2006-01-02"`
	DateTo   string `mapstructure:"date_to" validate:"required,len=10,datetime=2006-01-02"`
	Count    int    `mapstructure:"count" validate:"gte=0"`
}

// ParseRequest validates raw and converts it into a Request. Any failure is
// reported as malformed input; nothing is generated for a bad request.
func ParseRequest(raw RawRequest) (Request, error) {
	raw.Sex = strings.ToLower(strings.TrimSpace(raw.Sex))
	raw.DateFrom = strings.TrimSpace(raw.DateFrom)
	raw.DateTo = strings.TrimSpace(raw.DateTo)

	if err := validate.Struct(raw); err != nil {
		return Request{}, fmt.Errorf("%w: %v", domain.ErrMalformedInput, err)
	}

	sex, err := domain.ParseSex(raw.Sex)
	if err != nil {
		return Request{}, err
	}
	rng, err := domain.ParseDateRange(raw.DateFrom, raw.DateTo)
	if err != nil {
		return Request{}, err
	}

	req := Request{Sex: sex, Range: rng, Count: raw.Count}
	if err := req.Validate(); err != nil {
		return Request{}, err
	}
	return req, nil
}
